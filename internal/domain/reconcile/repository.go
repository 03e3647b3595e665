package reconcile

import (
	"context"
)

// NudgeRepository defines data access for clock-out nudges.
type NudgeRepository interface {
	Create(ctx context.Context, nudge ClockOutNudge) (ClockOutNudge, error)
	GetByID(ctx context.Context, id string) (ClockOutNudge, error)
	ListPendingByEmployee(ctx context.Context, employeeID string) ([]ClockOutNudge, error)

	// HasPending reports whether the employee already has an unresolved
	// nudge, used to avoid stacking prompts.
	HasPending(ctx context.Context, employeeID string) (bool, error)

	Update(ctx context.Context, nudge ClockOutNudge) error
}

// ReconcileService is the forgotten-clockout reconciliation engine: two
// periodic detection sweeps plus the employee response path.
type ReconcileService interface {
	// CheckPresence compares the current on-premises signal with the last
	// observed one and records or flushes clock-out candidates.
	CheckPresence(ctx context.Context) error

	// CheckOverruns nudges employees whose open entry has run more than
	// the overrun threshold past a scheduled window end.
	CheckOverruns(ctx context.Context) error

	// Respond reconciles an employee answer into the time entry (YES) or
	// escalates to a manager (NO).
	Respond(ctx context.Context, req RespondRequest) (NudgeResponse, error)

	// ListMine returns the signed-in employee's pending nudges.
	ListMine(ctx context.Context) ([]NudgeResponse, error)
}
