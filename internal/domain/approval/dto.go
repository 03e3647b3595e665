package approval

import (
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// APPROVAL DTOs
// ========================================

type SubmitAvailabilityChangeRequest struct {
	Kind      ChangeKind `json:"kind"`
	Date      string     `json:"date,omitempty"`
	Working   bool       `json:"working,omitempty"`
	StartTime string     `json:"start_time,omitempty"`
	EndTime   string     `json:"end_time,omitempty"`
	Weekday   string     `json:"weekday,omitempty"`
	Shift     string     `json:"shift,omitempty"`
	Available bool       `json:"available,omitempty"`
	Reason    string     `json:"reason"`
}

func (r *SubmitAvailabilityChangeRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Kind {
	case ChangeDateOverride:
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
		if r.Working {
			if !validator.IsValidClockTime(r.StartTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time",
					Message: "start_time must be in HH:MM format",
				})
			}
			if !validator.IsValidClockTime(r.EndTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end_time must be in HH:MM format",
				})
			}
		}
	case ChangeRecurring:
		if !validator.IsInSlice(r.Weekday, schedule.WeekdayValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "weekday must be a valid day name",
			})
		}
		if !validator.IsInSlice(r.Shift, schedule.ShiftNameValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift",
				Message: "shift must be one of morning, afternoon, evening",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be date_override or recurring",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Change converts the submission into the stored mutation payload.
func (r *SubmitAvailabilityChangeRequest) ToChange() AvailabilityChange {
	if r.Kind == ChangeDateOverride {
		return AvailabilityChange{
			Kind: ChangeDateOverride,
			Date: r.Date,
			Override: schedule.DayOverride{
				Working:   r.Working,
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
			},
		}
	}
	return AvailabilityChange{
		Kind:      ChangeRecurring,
		Weekday:   schedule.Weekday(r.Weekday),
		Shift:     schedule.ShiftName(r.Shift),
		Available: r.Available,
	}
}

type ResolveRequest struct {
	RequestID string `json:"request_id"`
	Approved  bool   `json:"approved"`
	Notes     string `json:"notes,omitempty"`
}

func (r *ResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApprovalRequestResponse struct {
	ID            string              `json:"id"`
	Type          RequestType         `json:"type"`
	EmployeeID    string              `json:"employee_id"`
	EmployeeName  *string             `json:"employee_name,omitempty"`
	TimeEntryID   *string             `json:"time_entry_id,omitempty"`
	Reason        string              `json:"reason"`
	Change        *AvailabilityChange `json:"change,omitempty"`
	Status        RequestStatus       `json:"status"`
	RequestedAt   string              `json:"requested_at"`
	ApprovedBy    *string             `json:"approved_by,omitempty"`
	ApprovedAt    *string             `json:"approved_at,omitempty"`
	ApprovalNotes *string             `json:"approval_notes,omitempty"`
}
