package schedule

import "time"

// Weekday is the schedule lookup key. Stored lowercase in employee records.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var WeekdayValues = []string{
	string(Monday),
	string(Tuesday),
	string(Wednesday),
	string(Thursday),
	string(Friday),
	string(Saturday),
	string(Sunday),
}

// WeekdayOf returns the schedule key for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ShiftName identifies one of the canonical recurring restaurant shifts.
type ShiftName string

const (
	ShiftMorning   ShiftName = "morning"
	ShiftAfternoon ShiftName = "afternoon"
	ShiftEvening   ShiftName = "evening"
)

var ShiftNameValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
	string(ShiftEvening),
}

// canonicalShifts maps each recurring shift to its fixed times. The evening
// shift ends past midnight, so its end clock-time is earlier than its start.
var canonicalShifts = []struct {
	Name  ShiftName
	Start string
	End   string
}{
	{ShiftMorning, "06:00", "14:00"},
	{ShiftAfternoon, "14:00", "22:00"},
	{ShiftEvening, "22:00", "06:00"},
}

type WindowSource string

const (
	SourceManual    WindowSource = "manual"
	SourceAutomatic WindowSource = "automatic"
)

// ShiftWindow is one expected working window for an employee on a given day.
// Windows are recomputed on demand and never persisted standalone.
type ShiftWindow struct {
	StartTime string       `json:"start_time"` // HH:MM
	EndTime   string       `json:"end_time"`   // HH:MM
	Source    WindowSource `json:"source"`
}

// DayOverride is a manager- or employee-initiated override of the recurring
// availability for one weekday or one calendar date.
type DayOverride struct {
	Working   bool   `json:"working"`
	StartTime string `json:"start_time,omitempty"` // HH:MM
	EndTime   string `json:"end_time,omitempty"`   // HH:MM
}

// WeekSchedule is the stored schedule of a single employee: dated overrides
// (approved one-off changes), weekday overrides (standing manual shifts) and
// the recurring availability per canonical shift.
type WeekSchedule struct {
	DateOverrides    map[string]DayOverride         `json:"date_overrides,omitempty"`    // keyed by YYYY-MM-DD
	WeekdayOverrides map[Weekday]DayOverride        `json:"weekday_overrides,omitempty"` // standing manual shifts
	Recurring        map[Weekday]map[ShiftName]bool `json:"recurring,omitempty"`
}
