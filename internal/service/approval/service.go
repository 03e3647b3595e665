package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/restoops/timeclock-backend-go/internal/domain/approval"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/domain/notification"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
	"github.com/restoops/timeclock-backend-go/internal/repository/postgresql"
)

type ApprovalServiceImpl struct {
	db    *database.DB
	clock clock.Clock
	approval.ApprovalRequestRepository
	timeclock.TimeEntryRepository
	employee.EmployeeRepository
	notificationService notification.Service
}

func employeeFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", timeclock.ErrNotLoggedIn
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", timeclock.ErrNotLoggedIn
	}

	return employeeID, nil
}

// SubmitAvailabilityChange implements approval.ApprovalService.
func (s *ApprovalServiceImpl) SubmitAvailabilityChange(ctx context.Context, req approval.SubmitAvailabilityChangeRequest) (approval.ApprovalRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalRequestResponse{}, err
	}

	employeeID, err := employeeFromClaims(ctx)
	if err != nil {
		return approval.ApprovalRequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return approval.ApprovalRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	change := req.ToChange()
	request := approval.ApprovalRequest{
		ID:          uuid.New().String(),
		Type:        approval.TypeAvailabilityChange,
		EmployeeID:  employeeID,
		Reason:      req.Reason,
		Change:      &change,
		Status:      approval.StatusPending,
		RequestedAt: s.clock.Now(),
	}

	request, err = s.ApprovalRequestRepository.Create(ctx, request)
	if err != nil {
		return approval.ApprovalRequestResponse{}, fmt.Errorf("failed to create approval request: %w", err)
	}

	s.notifyManagers(ctx, emp, request)

	return toResponse(request), nil
}

// Resolve implements approval.ApprovalService. Resolution is terminal and
// guarded inside a transaction: the request row is locked, so a concurrent
// second resolve observes the terminal status and fails instead of re-applying
// the side effects.
func (s *ApprovalServiceImpl) Resolve(ctx context.Context, req approval.ResolveRequest) (approval.ApprovalRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalRequestResponse{}, err
	}

	managerID, err := employeeFromClaims(ctx)
	if err != nil {
		return approval.ApprovalRequestResponse{}, err
	}

	now := s.clock.Now()

	var request approval.ApprovalRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err = s.ApprovalRequestRepository.GetByID(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != approval.StatusPending {
			return approval.ErrRequestAlreadyResolved
		}

		request.Status = approval.StatusApproved
		if !req.Approved {
			request.Status = approval.StatusDenied
		}
		request.ApprovedBy = &managerID
		request.ApprovedAt = &now
		if req.Notes != "" {
			request.ApprovalNotes = &req.Notes
		}

		if err := s.ApprovalRequestRepository.Update(txCtx, request); err != nil {
			return err
		}

		switch request.Type {
		case approval.TypeClockInApproval:
			return s.propagateToTimeEntry(txCtx, request)
		case approval.TypeAvailabilityChange:
			if req.Approved {
				return s.applyAvailabilityChange(txCtx, request)
			}
		}
		return nil
	})
	if err != nil {
		return approval.ApprovalRequestResponse{}, err
	}

	s.notifyRequester(ctx, request)

	return toResponse(request), nil
}

// ListPending implements approval.ApprovalService.
func (s *ApprovalServiceImpl) ListPending(ctx context.Context) ([]approval.ApprovalRequestResponse, error) {
	if _, err := employeeFromClaims(ctx); err != nil {
		return nil, err
	}

	requests, err := s.ApprovalRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approval requests: %w", err)
	}

	return toResponses(requests), nil
}

// ListMine implements approval.ApprovalService.
func (s *ApprovalServiceImpl) ListMine(ctx context.Context) ([]approval.ApprovalRequestResponse, error) {
	employeeID, err := employeeFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.ApprovalRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}

	return toResponses(requests), nil
}

// propagateToTimeEntry carries the resolved status onto the linked entry. A
// denied entry stays closed or open as it was; only its status changes.
func (s *ApprovalServiceImpl) propagateToTimeEntry(ctx context.Context, request approval.ApprovalRequest) error {
	if request.TimeEntryID == nil {
		return nil
	}

	entry, err := s.TimeEntryRepository.GetByID(ctx, *request.TimeEntryID)
	if err != nil {
		if errors.Is(err, timeclock.ErrTimeEntryNotFound) {
			return nil
		}
		return err
	}

	entry.Status = timeclock.EntryStatusApproved
	if request.Status == approval.StatusDenied {
		entry.Status = timeclock.EntryStatusDenied
	}

	return s.TimeEntryRepository.Update(ctx, entry)
}

// applyAvailabilityChange writes the approved mutation into the employee's
// stored schedule: a dated override for a single day, or a permanent flip of
// one recurring shift.
func (s *ApprovalServiceImpl) applyAvailabilityChange(ctx context.Context, request approval.ApprovalRequest) error {
	if request.Change == nil {
		return approval.ErrInvalidChange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	sched := emp.Schedule
	change := *request.Change

	switch change.Kind {
	case approval.ChangeDateOverride:
		if sched.DateOverrides == nil {
			sched.DateOverrides = make(map[string]schedule.DayOverride)
		}
		sched.DateOverrides[change.Date] = change.Override
	case approval.ChangeRecurring:
		if sched.Recurring == nil {
			sched.Recurring = make(map[schedule.Weekday]map[schedule.ShiftName]bool)
		}
		if sched.Recurring[change.Weekday] == nil {
			sched.Recurring[change.Weekday] = make(map[schedule.ShiftName]bool)
		}
		sched.Recurring[change.Weekday][change.Shift] = change.Available
	default:
		return approval.ErrInvalidChange
	}

	return s.EmployeeRepository.UpdateSchedule(ctx, request.EmployeeID, sched)
}

func (s *ApprovalServiceImpl) notifyManagers(ctx context.Context, emp employee.Employee, request approval.ApprovalRequest) {
	managers, err := s.EmployeeRepository.GetManagers(ctx)
	if err != nil {
		return
	}

	reqs := make([]notification.CreateNotificationRequest, 0, len(managers))
	for _, m := range managers {
		if m.UserID == nil {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: *m.UserID,
			Type:        notification.TypeAvailabilityRequested,
			Title:       "Availability change requested",
			Message:     fmt.Sprintf("%s requested an availability change: %s", emp.FullName, request.Reason),
			Data: map[string]interface{}{
				"employee_id": emp.ID,
				"request_id":  request.ID,
			},
		})
	}
	_ = s.notificationService.QueueBulkNotification(ctx, reqs)
}

func (s *ApprovalServiceImpl) notifyRequester(ctx context.Context, request approval.ApprovalRequest) {
	emp, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}

	approved := request.Status == approval.StatusApproved

	var nt notification.NotificationType
	var title, message string
	switch request.Type {
	case approval.TypeClockInApproval:
		nt, title, message = notification.TypeClockInApproved, "Clock-in approved", "Your clock-in has been approved."
		if !approved {
			nt, title, message = notification.TypeClockInDenied, "Clock-in denied", "Your clock-in has been denied."
		}
	case approval.TypeAvailabilityChange:
		nt, title, message = notification.TypeAvailabilityApproved, "Availability change approved", "Your availability change has been applied."
		if !approved {
			nt, title, message = notification.TypeAvailabilityDenied, "Availability change denied", "Your availability change was denied."
		}
	default:
		return
	}

	_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: *emp.UserID,
		SenderID:    request.ApprovedBy,
		Type:        nt,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"request_id": request.ID,
		},
	})
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toResponse(request approval.ApprovalRequest) approval.ApprovalRequestResponse {
	return approval.ApprovalRequestResponse{
		ID:            request.ID,
		Type:          request.Type,
		EmployeeID:    request.EmployeeID,
		EmployeeName:  request.EmployeeName,
		TimeEntryID:   request.TimeEntryID,
		Reason:        request.Reason,
		Change:        request.Change,
		Status:        request.Status,
		RequestedAt:   request.RequestedAt.Format("2006-01-02 15:04:05"),
		ApprovedBy:    request.ApprovedBy,
		ApprovedAt:    timePtrToString(request.ApprovedAt),
		ApprovalNotes: request.ApprovalNotes,
	}
}

func toResponses(requests []approval.ApprovalRequest) []approval.ApprovalRequestResponse {
	responses := make([]approval.ApprovalRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses
}

func NewApprovalService(
	db *database.DB,
	clk clock.Clock,
	approvalRepo approval.ApprovalRequestRepository,
	timeEntryRepo timeclock.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
) approval.ApprovalService {
	return &ApprovalServiceImpl{
		db:                        db,
		clock:                     clk,
		ApprovalRequestRepository: approvalRepo,
		TimeEntryRepository:       timeEntryRepo,
		EmployeeRepository:        employeeRepo,
		notificationService:       notificationService,
	}
}
