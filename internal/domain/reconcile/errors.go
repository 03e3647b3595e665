package reconcile

import "errors"

// Reconciliation domain errors
var (
	ErrNudgeNotFound        = errors.New("clock-out nudge not found")
	ErrNudgeAlreadyResolved = errors.New("clock-out nudge has already been resolved")
	ErrNudgeNotYours        = errors.New("clock-out nudge belongs to another employee")
	ErrInvalidAnswer        = errors.New("answer must be YES or NO")
)
