package reconcile

import "time"

type NudgeType string

const (
	NudgeForgotClockOut NudgeType = "FORGOT_CLOCK_OUT"
	NudgeShiftOverdue   NudgeType = "SHIFT_OVERDUE"
)

type NudgeStatus string

const (
	StatusPending      NudgeStatus = "PENDING"
	StatusConfirmed    NudgeStatus = "CONFIRMED"
	StatusNeedsManager NudgeStatus = "NEEDS_MANAGER"
)

// ClockOutNudge is a system-generated prompt asking an employee to confirm a
// suspected missed clock-out. Terminal once resolved.
type ClockOutNudge struct {
	ID         string
	EmployeeID string
	Type       NudgeType

	// PotentialClockOutTime is the moment presence was lost
	// (FORGOT_CLOCK_OUT) or nil for overrun nudges.
	PotentialClockOutTime *time.Time

	// ScheduledEndTime is the overrun shift end (SHIFT_OVERDUE) or nil.
	ScheduledEndTime *time.Time

	// SuggestedTime is the likely true clock-out moment offered to the
	// employee.
	SuggestedTime time.Time

	Status                NudgeStatus
	RequiresManagerAction bool
	CreatedAt             time.Time
	ResolvedAt            *time.Time
}
