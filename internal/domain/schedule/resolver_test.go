package schedule

import (
	"testing"
	"time"
)

// 2025-03-10 is a Monday.
var monday = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestResolveShiftWindows_Empty(t *testing.T) {
	windows := ResolveShiftWindows(WeekSchedule{}, monday)
	if len(windows) != 0 {
		t.Fatalf("expected no windows for empty schedule, got %v", windows)
	}
}

func TestResolveShiftWindows_RecurringOnly(t *testing.T) {
	s := WeekSchedule{
		Recurring: map[Weekday]map[ShiftName]bool{
			Monday: {ShiftMorning: true, ShiftAfternoon: true},
		},
	}

	windows := ResolveShiftWindows(s, monday)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %v", windows)
	}
	if windows[0].StartTime != "06:00" || windows[0].EndTime != "14:00" || windows[0].Source != SourceAutomatic {
		t.Errorf("unexpected first window: %+v", windows[0])
	}
	if windows[1].StartTime != "14:00" || windows[1].EndTime != "22:00" {
		t.Errorf("unexpected second window: %+v", windows[1])
	}
}

func TestResolveShiftWindows_ManualAndAutomaticBothReturned(t *testing.T) {
	s := WeekSchedule{
		WeekdayOverrides: map[Weekday]DayOverride{
			Monday: {Working: true, StartTime: "10:00", EndTime: "18:00"},
		},
		Recurring: map[Weekday]map[ShiftName]bool{
			Monday: {ShiftAfternoon: true},
		},
	}

	windows := ResolveShiftWindows(s, monday)
	if len(windows) != 2 {
		t.Fatalf("expected manual and automatic windows, got %v", windows)
	}
	if windows[0].Source != SourceManual || windows[0].StartTime != "10:00" {
		t.Errorf("expected manual window first by start time, got %+v", windows[0])
	}
	if windows[1].Source != SourceAutomatic || windows[1].StartTime != "14:00" {
		t.Errorf("expected automatic afternoon window, got %+v", windows[1])
	}
}

func TestResolveShiftWindows_DateOverrideBeatsWeekdayOverride(t *testing.T) {
	s := WeekSchedule{
		DateOverrides: map[string]DayOverride{
			"2025-03-10": {Working: true, StartTime: "08:00", EndTime: "12:00"},
		},
		WeekdayOverrides: map[Weekday]DayOverride{
			Monday: {Working: true, StartTime: "10:00", EndTime: "18:00"},
		},
	}

	windows := ResolveShiftWindows(s, monday)
	if len(windows) != 1 || windows[0].StartTime != "08:00" {
		t.Fatalf("expected dated override to win, got %v", windows)
	}
}

func TestResolveShiftWindows_NonWorkingDateOverrideCancelsManual(t *testing.T) {
	s := WeekSchedule{
		DateOverrides: map[string]DayOverride{
			"2025-03-10": {Working: false},
		},
		WeekdayOverrides: map[Weekday]DayOverride{
			Monday: {Working: true, StartTime: "10:00", EndTime: "18:00"},
		},
		Recurring: map[Weekday]map[ShiftName]bool{
			Monday: {ShiftEvening: true},
		},
	}

	windows := ResolveShiftWindows(s, monday)
	if len(windows) != 1 || windows[0].Source != SourceAutomatic {
		t.Fatalf("expected only the recurring evening window, got %v", windows)
	}
}

func TestResolveShiftWindows_IncompleteManualOverrideIgnored(t *testing.T) {
	s := WeekSchedule{
		WeekdayOverrides: map[Weekday]DayOverride{
			Monday: {Working: true, StartTime: "10:00"}, // no end time
		},
	}

	if windows := ResolveShiftWindows(s, monday); len(windows) != 0 {
		t.Fatalf("expected incomplete override to be skipped, got %v", windows)
	}
}

func TestWindowEnd_OvernightWrap(t *testing.T) {
	evening := ShiftWindow{StartTime: "22:00", EndTime: "06:00", Source: SourceAutomatic}
	end := WindowEnd(evening, monday)

	want := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("WindowEnd = %v, want %v", end, want)
	}

	day := ShiftWindow{StartTime: "06:00", EndTime: "14:00", Source: SourceAutomatic}
	if end := WindowEnd(day, monday); end.Day() != 10 || end.Hour() != 14 {
		t.Fatalf("WindowEnd for day shift = %v", end)
	}
}

func TestWeekdayOf(t *testing.T) {
	if got := WeekdayOf(monday); got != Monday {
		t.Errorf("WeekdayOf(monday) = %s", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := WeekdayOf(sunday); got != Sunday {
		t.Errorf("WeekdayOf(sunday) = %s", got)
	}
}
