package approval

import "errors"

// Approval domain errors
var (
	ErrRequestNotFound = errors.New("approval request not found")

	// Resolution is terminal: a second resolve on the same request is an
	// error, never a silent re-apply.
	ErrRequestAlreadyResolved = errors.New("approval request has already been resolved")

	ErrInvalidChange = errors.New("availability change payload is invalid")
)
