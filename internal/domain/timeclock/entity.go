package timeclock

import (
	"time"

	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// QR capability tokens. One restaurant-wide token per clock action; any other
// scanned value is rejected.
const (
	ClockInToken  = "CLOCK_IN_RESTAURANT_GENERAL"
	ClockOutToken = "CLOCK_OUT_RESTAURANT_GENERAL"
)

type EntryStatus string

const (
	EntryStatusPendingApproval EntryStatus = "PENDING_APPROVAL"
	EntryStatusApproved        EntryStatus = "APPROVED"
	EntryStatusDenied          EntryStatus = "DENIED"
)

type ApprovalReason string

const (
	ReasonEarlyClockIn ApprovalReason = "EARLY_CLOCK_IN"
	ReasonLateClockIn  ApprovalReason = "LATE_CLOCK_IN"
)

// TimeEntry is the central durable record of one worked (or in-progress)
// attendance session. At most one open entry (ClockOutTime nil) may exist per
// employee per day.
type TimeEntry struct {
	ID               string
	EmployeeID       string
	Date             string // work day, YYYY-MM-DD
	ClockInTime      time.Time
	ClockOutTime     *time.Time
	ScheduledShift   schedule.ShiftWindow
	GraceStatus      schedule.GraceStatus
	Status           EntryStatus
	ApprovalRequired bool
	ApprovalReason   *ApprovalReason
	TotalHours       *decimal.Decimal
	AutoClockOut     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// Open reports whether the entry has a clock-in but no clock-out yet.
func (e TimeEntry) Open() bool {
	return e.ClockOutTime == nil
}

// ClockStatus is the denormalized per-employee projection consumed by the UI.
// Rebuilt on every clock-in, clock-out and reconciliation; must always agree
// with whether an open TimeEntry exists for the employee.
type ClockStatus struct {
	EmployeeID         string
	IsCurrentlyClocked bool
	CurrentTimeEntryID *string
	LastClockIn        *time.Time
	LastClockOut       *time.Time
	CurrentShift       *schedule.ShiftWindow
	UpdatedAt          time.Time
}

// WorkedHours computes elapsed wall-clock hours between in and out, rounded
// to 2 decimals. A clock-out time-of-day earlier than clock-in crosses
// midnight and gains 24 hours.
func WorkedHours(in, out time.Time) decimal.Decimal {
	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	return decimal.NewFromFloat(d.Hours()).Round(2)
}
