package timeclock

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
	"github.com/restoops/timeclock-backend-go/internal/domain/presence"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
	"github.com/restoops/timeclock-backend-go/internal/repository/postgresql"
)

type TimeClockServiceImpl struct {
	db    *database.DB
	clock clock.Clock
	gate  presence.Gate
	timeclock.TimeEntryRepository
	timeclock.ClockStatusRepository
	employee.EmployeeRepository
	approval.ApprovalRequestRepository
	notificationService notification.Service
}

// EmployeeFromClaims extracts the authenticated employee id from the request
// context. A missing or empty claim means the caller has no employee identity.
func EmployeeFromClaims(ctx context.Context) (string, error) {
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

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements timeclock.TimeClockService.
//
// Rejection order is fixed: invalid token, missing identity, failed location
// verification, already clocked in, no shift scheduled. Among the resolved
// windows the one whose start is nearest to now wins; out-of-window clock-ins
// still succeed but land as PENDING_APPROVAL with a queued manager request.
func (s *TimeClockServiceImpl) ClockIn(ctx context.Context, req timeclock.ClockInRequest) (timeclock.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ClockResponse{}, err
	}

	if req.QRToken != timeclock.ClockInToken {
		return timeclock.ClockResponse{}, timeclock.ErrInvalidQR
	}

	employeeID, err := EmployeeFromClaims(ctx)
	if err != nil {
		return timeclock.ClockResponse{}, err
	}

	if err := s.verifyPresence(ctx); err != nil {
		return timeclock.ClockResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.ClockResponse{}, timeclock.ErrNotLoggedIn
		}
		return timeclock.ClockResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// The open-entry check comes before window resolution: an employee
	// still clocked in (an overnight entry, or a schedule since emptied)
	// is already clocked in, not unscheduled. The transaction re-checks
	// under a row lock.
	if _, err := s.TimeEntryRepository.GetOpen(ctx, employeeID); err == nil {
		return timeclock.ClockResponse{}, timeclock.ErrAlreadyClockedIn
	} else if !errors.Is(err, timeclock.ErrTimeEntryNotFound) {
		return timeclock.ClockResponse{}, fmt.Errorf("failed to check open time entry: %w", err)
	}

	now := s.clock.Now()

	windows := schedule.ResolveShiftWindows(emp.Schedule, now)
	if len(windows) == 0 {
		return timeclock.ClockResponse{}, timeclock.ErrNoShiftScheduled
	}

	window, grace := nearestWindow(windows, now)

	entry := timeclock.TimeEntry{
		ID:             uuid.New().String(),
		EmployeeID:     employeeID,
		Date:           now.Format("2006-01-02"),
		ClockInTime:    now,
		ScheduledShift: window,
		GraceStatus:    grace,
		Status:         timeclock.EntryStatusApproved,
	}

	var request approval.ApprovalRequest
	if !grace.WithinGrace {
		entry.Status = timeclock.EntryStatusPendingApproval
		entry.ApprovalRequired = true
		reason := timeclock.ReasonLateClockIn
		if grace.Early {
			reason = timeclock.ReasonEarlyClockIn
		}
		entry.ApprovalReason = &reason
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// The open-entry lookup takes a row lock here, so two clock-ins
		// for the same employee cannot both pass this check.
		_, err := s.TimeEntryRepository.GetOpen(txCtx, employeeID)
		if err == nil {
			return timeclock.ErrAlreadyClockedIn
		}
		if !errors.Is(err, timeclock.ErrTimeEntryNotFound) {
			return fmt.Errorf("failed to check open time entry: %w", err)
		}

		entry, err = s.TimeEntryRepository.Create(txCtx, entry)
		if err != nil {
			return err
		}

		if entry.ApprovalRequired {
			request = approval.ApprovalRequest{
				ID:          uuid.New().String(),
				Type:        approval.TypeClockInApproval,
				EmployeeID:  employeeID,
				TimeEntryID: &entry.ID,
				Reason:      approvalReasonText(entry, grace),
				Status:      approval.StatusPending,
				RequestedAt: now,
			}
			if request, err = s.ApprovalRequestRepository.Create(txCtx, request); err != nil {
				return err
			}
		}

		return s.ClockStatusRepository.Upsert(txCtx, timeclock.ClockStatus{
			EmployeeID:         employeeID,
			IsCurrentlyClocked: true,
			CurrentTimeEntryID: &entry.ID,
			LastClockIn:        &entry.ClockInTime,
			CurrentShift:       &window,
		})
	})
	if err != nil {
		return timeclock.ClockResponse{}, err
	}

	message := "Clocked in successfully."
	if entry.ApprovalRequired {
		message = "Clocked in. Your clock-in is pending manager approval."
		s.notifyManagers(ctx, emp, entry, request)
	}

	return timeclock.ClockResponse{
		Entry:            toEntryResponse(entry),
		RequiresApproval: entry.ApprovalRequired,
		Message:          message,
	}, nil
}

// ClockOut implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) ClockOut(ctx context.Context, req timeclock.ClockOutRequest) (timeclock.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ClockResponse{}, err
	}

	if req.QRToken != timeclock.ClockOutToken {
		return timeclock.ClockResponse{}, timeclock.ErrInvalidQR
	}

	employeeID, err := EmployeeFromClaims(ctx)
	if err != nil {
		return timeclock.ClockResponse{}, err
	}

	if err := s.verifyPresence(ctx); err != nil {
		return timeclock.ClockResponse{}, err
	}

	now := s.clock.Now()

	var entry timeclock.TimeEntry
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		entry, err = s.TimeEntryRepository.GetOpen(txCtx, employeeID)
		if err != nil {
			if errors.Is(err, timeclock.ErrTimeEntryNotFound) {
				return timeclock.ErrNotClockedIn
			}
			return fmt.Errorf("failed to get open time entry: %w", err)
		}

		total := timeclock.WorkedHours(entry.ClockInTime, now)
		entry.ClockOutTime = &now
		entry.TotalHours = &total

		if err := s.TimeEntryRepository.Update(txCtx, entry); err != nil {
			return err
		}

		return s.ClockStatusRepository.Upsert(txCtx, timeclock.ClockStatus{
			EmployeeID:   employeeID,
			LastClockIn:  &entry.ClockInTime,
			LastClockOut: &now,
		})
	})
	if err != nil {
		return timeclock.ClockResponse{}, err
	}

	return timeclock.ClockResponse{
		Entry:   toEntryResponse(entry),
		Message: "Clocked out successfully.",
	}, nil
}

// GetStatus implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) GetStatus(ctx context.Context) (timeclock.ClockStatusResponse, error) {
	employeeID, err := EmployeeFromClaims(ctx)
	if err != nil {
		return timeclock.ClockStatusResponse{}, err
	}

	status, err := s.ClockStatusRepository.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, timeclock.ErrClockStatusNotFound) {
			// Never clocked before: a valid, empty status.
			return timeclock.ClockStatusResponse{EmployeeID: employeeID}, nil
		}
		return timeclock.ClockStatusResponse{}, fmt.Errorf("failed to get clock status: %w", err)
	}

	resp := timeclock.ClockStatusResponse{
		EmployeeID:         status.EmployeeID,
		IsCurrentlyClocked: status.IsCurrentlyClocked,
		CurrentTimeEntryID: status.CurrentTimeEntryID,
		LastClockIn:        timePtrToString(status.LastClockIn),
		LastClockOut:       timePtrToString(status.LastClockOut),
	}
	if status.CurrentShift != nil {
		resp.ShiftStart = &status.CurrentShift.StartTime
		resp.ShiftEnd = &status.CurrentShift.EndTime
	}

	return resp, nil
}

// GetMyEntries implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) GetMyEntries(ctx context.Context, filter timeclock.EntryFilter) (timeclock.ListEntriesResponse, error) {
	employeeID, err := EmployeeFromClaims(ctx)
	if err != nil {
		return timeclock.ListEntriesResponse{}, err
	}

	filter.EmployeeID = employeeID
	return s.listEntries(ctx, filter)
}

// ListEntries implements timeclock.TimeClockService. Manager surface; role
// enforcement happens in the HTTP middleware.
func (s *TimeClockServiceImpl) ListEntries(ctx context.Context, filter timeclock.EntryFilter) (timeclock.ListEntriesResponse, error) {
	if _, err := EmployeeFromClaims(ctx); err != nil {
		return timeclock.ListEntriesResponse{}, err
	}

	return s.listEntries(ctx, filter)
}

func (s *TimeClockServiceImpl) listEntries(ctx context.Context, filter timeclock.EntryFilter) (timeclock.ListEntriesResponse, error) {
	filter.Normalize()

	entries, total, err := s.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return timeclock.ListEntriesResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeclock.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return timeclock.ListEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Entries:    responses,
	}, nil
}

func (s *TimeClockServiceImpl) verifyPresence(ctx context.Context) error {
	p, err := s.gate.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify presence: %w", err)
	}
	if !p.Verified {
		return timeclock.ErrLocationVerificationFailed
	}
	return nil
}

// nearestWindow picks the window whose start-time grace difference is smallest
// in absolute value. Windows arrive sorted by start time, so ties go to the
// earlier shift deterministically.
func nearestWindow(windows []schedule.ShiftWindow, now time.Time) (schedule.ShiftWindow, schedule.GraceStatus) {
	best := windows[0]
	bestGrace := schedule.EvaluateGrace(best.StartTime, now)

	for _, w := range windows[1:] {
		g := schedule.EvaluateGrace(w.StartTime, now)
		if abs(g.TimeDifference) < abs(bestGrace.TimeDifference) {
			best = w
			bestGrace = g
		}
	}

	return best, bestGrace
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func approvalReasonText(entry timeclock.TimeEntry, grace schedule.GraceStatus) string {
	if grace.Early {
		return fmt.Sprintf("Clocked in %d minutes before the %s shift start", grace.MinutesEarly, entry.ScheduledShift.StartTime)
	}
	return fmt.Sprintf("Clocked in %d minutes after the %s shift start", grace.MinutesLate, entry.ScheduledShift.StartTime)
}

// notifyManagers queues a pending-approval notification to every manager.
// Best effort: a full queue never fails the clock-in itself.
func (s *TimeClockServiceImpl) notifyManagers(ctx context.Context, emp employee.Employee, entry timeclock.TimeEntry, request approval.ApprovalRequest) {
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
			Type:        notification.TypeClockInPendingApproval,
			Title:       "Clock-in needs approval",
			Message:     fmt.Sprintf("%s clocked in outside the grace window and needs approval", emp.FullName),
			Data: map[string]interface{}{
				"employee_id":   emp.ID,
				"time_entry_id": entry.ID,
				"request_id":    request.ID,
				"reason":        request.Reason,
			},
		})
	}
	_ = s.notificationService.QueueBulkNotification(ctx, reqs)
}

func toEntryResponse(entry timeclock.TimeEntry) timeclock.TimeEntryResponse {
	return timeclock.TimeEntryResponse{
		ID:               entry.ID,
		EmployeeID:       entry.EmployeeID,
		EmployeeName:     entry.EmployeeName,
		Date:             entry.Date,
		ClockInTime:      entry.ClockInTime.Format("2006-01-02 15:04:05"),
		ClockOutTime:     timePtrToString(entry.ClockOutTime),
		ShiftStart:       entry.ScheduledShift.StartTime,
		ShiftEnd:         entry.ScheduledShift.EndTime,
		ShiftSource:      string(entry.ScheduledShift.Source),
		Status:           entry.Status,
		ApprovalRequired: entry.ApprovalRequired,
		ApprovalReason:   entry.ApprovalReason,
		TotalHours:       entry.TotalHours,
		AutoClockOut:     entry.AutoClockOut,
		MinutesEarly:     entry.GraceStatus.MinutesEarly,
		MinutesLate:      entry.GraceStatus.MinutesLate,
	}
}

func NewTimeClockService(
	db *database.DB,
	clk clock.Clock,
	gate presence.Gate,
	timeEntryRepo timeclock.TimeEntryRepository,
	clockStatusRepo timeclock.ClockStatusRepository,
	employeeRepo employee.EmployeeRepository,
	approvalRepo approval.ApprovalRequestRepository,
	notificationService notification.Service,
) timeclock.TimeClockService {
	return &TimeClockServiceImpl{
		db:                        db,
		clock:                     clk,
		gate:                      gate,
		TimeEntryRepository:       timeEntryRepo,
		ClockStatusRepository:     clockStatusRepo,
		EmployeeRepository:        employeeRepo,
		ApprovalRequestRepository: approvalRepo,
		notificationService:       notificationService,
	}
}
