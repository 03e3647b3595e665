package reconcile

import (
	"time"

	"github.com/restoops/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// RECONCILIATION DTOs
// ========================================

const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

type RespondRequest struct {
	NudgeID      string     `json:"nudge_id"`
	Answer       string     `json:"answer"` // YES or NO
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
}

func (r *RespondRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NudgeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nudge_id",
			Message: "nudge_id is required",
		})
	}

	if !validator.IsInSlice(r.Answer, []string{AnswerYes, AnswerNo}) {
		errs = append(errs, validator.ValidationError{
			Field:   "answer",
			Message: "answer must be YES or NO",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NudgeResponse struct {
	ID                    string      `json:"id"`
	EmployeeID            string      `json:"employee_id"`
	Type                  NudgeType   `json:"type"`
	PotentialClockOutTime *string     `json:"potential_clock_out_time,omitempty"`
	ScheduledEndTime      *string     `json:"scheduled_end_time,omitempty"`
	SuggestedTime         string      `json:"suggested_time"`
	Status                NudgeStatus `json:"status"`
	RequiresManagerAction bool        `json:"requires_manager_action"`
	CreatedAt             string      `json:"created_at"`
}
