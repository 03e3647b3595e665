package timeclock

import (
	"github.com/restoops/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// TIME CLOCK DTOs
// ========================================

type ClockInRequest struct {
	QRToken string `json:"qr_token"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_token",
			Message: "qr_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	QRToken string `json:"qr_token"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_token",
			Message: "qr_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryResponse struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	EmployeeName     *string          `json:"employee_name,omitempty"`
	Date             string           `json:"date"`
	ClockInTime      string           `json:"clock_in_time"`
	ClockOutTime     *string          `json:"clock_out_time,omitempty"`
	ShiftStart       string           `json:"shift_start"`
	ShiftEnd         string           `json:"shift_end"`
	ShiftSource      string           `json:"shift_source"`
	Status           EntryStatus      `json:"status"`
	ApprovalRequired bool             `json:"approval_required"`
	ApprovalReason   *ApprovalReason  `json:"approval_reason,omitempty"`
	TotalHours       *decimal.Decimal `json:"total_hours,omitempty"`
	AutoClockOut     bool             `json:"auto_clock_out,omitempty"`
	MinutesEarly     int              `json:"minutes_early"`
	MinutesLate      int              `json:"minutes_late"`
}

// ClockResponse is the result of a clock action. An approval-required clock-in
// is still a success; RequiresApproval lets the caller render a "pending
// manager approval" state instead of a failure.
type ClockResponse struct {
	Entry            TimeEntryResponse `json:"entry"`
	RequiresApproval bool              `json:"requires_approval"`
	Message          string            `json:"message"`
}

type ClockStatusResponse struct {
	EmployeeID         string  `json:"employee_id"`
	IsCurrentlyClocked bool    `json:"is_currently_clocked"`
	CurrentTimeEntryID *string `json:"current_time_entry_id,omitempty"`
	LastClockIn        *string `json:"last_clock_in,omitempty"`
	LastClockOut       *string `json:"last_clock_out,omitempty"`
	ShiftStart         *string `json:"shift_start,omitempty"`
	ShiftEnd           *string `json:"shift_end,omitempty"`
}

type EntryFilter struct {
	EmployeeID string
	StartDate  string // YYYY-MM-DD, inclusive
	EndDate    string // YYYY-MM-DD, inclusive
	Status     string
	Page       int
	Limit      int
}

func (f *EntryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type ListEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []TimeEntryResponse `json:"entries"`
}
