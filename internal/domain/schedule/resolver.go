package schedule

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// ResolveShiftWindows produces the expected shift windows for an employee on
// the given calendar date. A dated override takes precedence over the standing
// weekday override; recurring availability contributes independently, so a
// manual window and an automatic window can both be returned for the same day.
// Callers pick the nearest one. An empty result means "not scheduled".
//
// The result is stably sorted by start time, manual windows first on ties, so
// nearest-shift selection is deterministic for split shifts.
func ResolveShiftWindows(s WeekSchedule, date time.Time) []ShiftWindow {
	var windows []ShiftWindow

	if ov, ok := manualOverrideFor(s, date); ok {
		if ov.Working && ov.StartTime != "" && ov.EndTime != "" {
			windows = append(windows, ShiftWindow{
				StartTime: ov.StartTime,
				EndTime:   ov.EndTime,
				Source:    SourceManual,
			})
		}
	}

	day := WeekdayOf(date)
	for _, shift := range canonicalShifts {
		if s.Recurring[day][shift.Name] {
			windows = append(windows, ShiftWindow{
				StartTime: shift.Start,
				EndTime:   shift.End,
				Source:    SourceAutomatic,
			})
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].StartTime < windows[j].StartTime
	})

	return windows
}

// manualOverrideFor returns the manual override applicable to date, if any.
// A dated override suppresses the weekday override entirely, including a
// "not working" dated override cancelling a standing shift.
func manualOverrideFor(s WeekSchedule, date time.Time) (DayOverride, bool) {
	if ov, ok := s.DateOverrides[date.Format(dateLayout)]; ok {
		return ov, true
	}
	if ov, ok := s.WeekdayOverrides[WeekdayOf(date)]; ok {
		return ov, true
	}
	return DayOverride{}, false
}

// BoundaryOn anchors an HH:MM clock time onto the calendar day of base,
// preserving base's location.
func BoundaryOn(base time.Time, clockTime string) time.Time {
	t, err := time.Parse("15:04", clockTime)
	if err != nil {
		return base
	}
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location())
}

// WindowEnd returns the end boundary of w anchored on the day of base,
// rolling overnight windows (end clock-time before start) into the next day.
func WindowEnd(w ShiftWindow, base time.Time) time.Time {
	end := BoundaryOn(base, w.EndTime)
	if w.EndTime < w.StartTime {
		end = end.Add(24 * time.Hour)
	}
	return end
}
