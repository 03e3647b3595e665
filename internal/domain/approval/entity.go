package approval

import (
	"time"

	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
)

type RequestType string

const (
	TypeClockInApproval    RequestType = "CLOCK_IN_APPROVAL"
	TypeAvailabilityChange RequestType = "AVAILABILITY_CHANGE"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusDenied   RequestStatus = "DENIED"
)

// AvailabilityChange is the schedule mutation carried by an
// AVAILABILITY_CHANGE request and applied on approval. Either a dated
// override for a single calendar day or a permanent recurring change.
type AvailabilityChange struct {
	Kind ChangeKind `json:"kind"`

	// Dated override fields
	Date      string               `json:"date,omitempty"` // YYYY-MM-DD
	Override  schedule.DayOverride `json:"override,omitempty"`

	// Recurring change fields
	Weekday   schedule.Weekday   `json:"weekday,omitempty"`
	Shift     schedule.ShiftName `json:"shift,omitempty"`
	Available bool               `json:"available,omitempty"`
}

type ChangeKind string

const (
	ChangeDateOverride ChangeKind = "date_override"
	ChangeRecurring    ChangeKind = "recurring"
)

// ApprovalRequest holds one pending manager decision. Created by the clock
// event processor (out-of-window clock-ins) or by the availability-change
// submission path, and resolved exactly once.
type ApprovalRequest struct {
	ID            string
	Type          RequestType
	EmployeeID    string
	TimeEntryID   *string
	Reason        string
	Change        *AvailabilityChange
	Status        RequestStatus
	RequestedAt   time.Time
	ApprovedBy    *string
	ApprovedAt    *time.Time
	ApprovalNotes *string

	// DTO
	EmployeeName *string
}
