package timeclock

import "errors"

// Time clock domain errors. All rejections are returned as typed errors with
// a stable code, never panics crossing the service boundary; the caller must
// fix the precondition and re-attempt.
var (
	ErrInvalidQR                  = errors.New("scanned code is not a valid clock token")
	ErrNotLoggedIn                = errors.New("no employee identity on this request")
	ErrLocationVerificationFailed = errors.New("device is not verified on the restaurant premises")
	ErrAlreadyClockedIn           = errors.New("you are already clocked in today")
	ErrNotClockedIn               = errors.New("you are not clocked in")
	ErrNoShiftScheduled           = errors.New("no shift scheduled for today")
	ErrTimeEntryNotFound          = errors.New("time entry not found")
	ErrClockStatusNotFound        = errors.New("clock status not found")
)

// Stable error codes carried to the API layer.
const (
	CodeInvalidQR        = "INVALID_QR"
	CodeNotLoggedIn      = "NOT_LOGGED_IN"
	CodeLocationFailed   = "LOCATION_VERIFICATION_FAILED"
	CodeAlreadyClockedIn = "ALREADY_CLOCKED_IN"
	CodeNotClockedIn     = "NOT_CLOCKED_IN"
	CodeNoShiftScheduled = "NO_SHIFT_SCHEDULED"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeProcessingError  = "PROCESSING_ERROR"
)

// Code maps a domain error to its stable API code. Unknown errors are
// processing errors: unexpected failures during commit.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidQR):
		return CodeInvalidQR
	case errors.Is(err, ErrNotLoggedIn):
		return CodeNotLoggedIn
	case errors.Is(err, ErrLocationVerificationFailed):
		return CodeLocationFailed
	case errors.Is(err, ErrAlreadyClockedIn):
		return CodeAlreadyClockedIn
	case errors.Is(err, ErrNotClockedIn):
		return CodeNotClockedIn
	case errors.Is(err, ErrNoShiftScheduled):
		return CodeNoShiftScheduled
	default:
		return CodeProcessingError
	}
}
