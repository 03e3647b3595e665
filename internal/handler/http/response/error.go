package response

import (
	"errors"
	"net/http"

	"github.com/restoops/timeclock-backend-go/internal/domain/approval"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/domain/reconcile"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Time clock domain errors carry their own stable code
	switch {
	case errors.Is(err, timeclock.ErrInvalidQR):
		Error(w, http.StatusBadRequest, timeclock.Code(err), err.Error())
	case errors.Is(err, timeclock.ErrNotLoggedIn):
		Error(w, http.StatusUnauthorized, timeclock.Code(err), err.Error())
	case errors.Is(err, timeclock.ErrLocationVerificationFailed):
		Error(w, http.StatusForbidden, timeclock.Code(err), err.Error())
	case errors.Is(err, timeclock.ErrAlreadyClockedIn),
		errors.Is(err, timeclock.ErrNotClockedIn):
		Error(w, http.StatusConflict, timeclock.Code(err), err.Error())
	case errors.Is(err, timeclock.ErrNoShiftScheduled):
		Error(w, http.StatusUnprocessableEntity, timeclock.Code(err), err.Error())
	case errors.Is(err, timeclock.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeclock.ErrClockStatusNotFound):
		NotFound(w, "Clock status not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrRequestAlreadyResolved):
		Conflict(w, "Approval request already resolved")
	case errors.Is(err, approval.ErrInvalidChange):
		BadRequest(w, "Availability change payload is invalid", nil)

	// Reconciliation domain errors
	case errors.Is(err, reconcile.ErrNudgeNotFound):
		NotFound(w, "Clock-out nudge not found")
	case errors.Is(err, reconcile.ErrNudgeAlreadyResolved):
		Conflict(w, "Clock-out nudge already resolved")
	case errors.Is(err, reconcile.ErrNudgeNotYours):
		Forbidden(w, "This nudge belongs to another employee")
	case errors.Is(err, reconcile.ErrInvalidAnswer):
		BadRequest(w, "Answer must be YES or NO", nil)

	// Default
	default:
		Error(w, http.StatusInternalServerError, timeclock.CodeProcessingError, "An unexpected error occurred")
	}
}
