package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeClockInPendingApproval NotificationType = "clock_in_pending_approval"
	TypeClockInApproved        NotificationType = "clock_in_approved"
	TypeClockInDenied          NotificationType = "clock_in_denied"
	TypeAvailabilityRequested  NotificationType = "availability_change_requested"
	TypeAvailabilityApproved   NotificationType = "availability_change_approved"
	TypeAvailabilityDenied     NotificationType = "availability_change_denied"
	TypeClockOutNudge          NotificationType = "clock_out_nudge"
	TypeShiftOverdue           NotificationType = "shift_overdue"
	TypeCorrectionNeeded       NotificationType = "clock_out_correction_needed"
	TypeEntryAutoClosed        NotificationType = "time_entry_auto_closed"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
