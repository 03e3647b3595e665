package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/domain/notification"
	"github.com/restoops/timeclock-backend-go/internal/domain/presence"
	"github.com/restoops/timeclock-backend-go/internal/domain/reconcile"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
	"github.com/restoops/timeclock-backend-go/internal/repository/postgresql"
)

const (
	// OverrunThreshold is how far past a shift end an open entry may run
	// before an overdue nudge fires.
	OverrunThreshold = 15 * time.Minute

	// SuggestionWindow bounds how far a scheduled shift end may lie from a
	// presence-loss moment and still be offered as the likely clock-out.
	SuggestionWindow = 30 * time.Minute
)

type ReconcileServiceImpl struct {
	db    *database.DB
	clock clock.Clock
	gate  presence.Gate
	reconcile.NudgeRepository
	timeclock.TimeEntryRepository
	timeclock.ClockStatusRepository
	employee.EmployeeRepository
	notificationService notification.Service

	// Sweep state. The candidate map survives between presence sweeps and
	// is flushed into nudges when the signal comes back.
	mu           sync.Mutex
	seeded       bool
	lastVerified bool
	candidates   map[string]time.Time // employee id -> moment presence was lost
	overdueSent  map[string]string    // employee id -> date an overdue nudge went out
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

// CheckPresence implements reconcile.ReconcileService.
//
// The premises signal is restaurant-wide. Losing it while entries are open
// records a clock-out candidate per open entry; regaining it turns every
// recorded candidate into a FORGOT_CLOCK_OUT nudge. The first observation
// only seeds the comparison baseline.
func (s *ReconcileServiceImpl) CheckPresence(ctx context.Context) error {
	p, err := s.gate.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read presence gate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.seeded = true
		s.lastVerified = p.Verified
		return nil
	}

	switch {
	case s.lastVerified && !p.Verified:
		if err := s.recordCandidates(ctx); err != nil {
			return err
		}
	case !s.lastVerified && p.Verified:
		if err := s.flushCandidates(ctx); err != nil {
			return err
		}
	}

	s.lastVerified = p.Verified
	return nil
}

// recordCandidates stamps the presence-loss moment for every employee with an
// open entry. One candidate per employee; a later loss never overwrites an
// earlier pending one.
func (s *ReconcileServiceImpl) recordCandidates(ctx context.Context) error {
	open, err := s.TimeEntryRepository.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open entries: %w", err)
	}

	lostAt := s.clock.Now()
	for _, entry := range open {
		if _, ok := s.candidates[entry.EmployeeID]; ok {
			continue
		}
		s.candidates[entry.EmployeeID] = lostAt
	}
	return nil
}

// flushCandidates converts recorded candidates into nudges once presence is
// back. Candidates whose entry closed in the meantime are dropped silently.
func (s *ReconcileServiceImpl) flushCandidates(ctx context.Context) error {
	var errs []error
	for employeeID, lostAt := range s.candidates {
		if err := s.nudgeForCandidate(ctx, employeeID, lostAt); err != nil {
			errs = append(errs, err)
		}
	}
	s.candidates = make(map[string]time.Time)
	return errors.Join(errs...)
}

func (s *ReconcileServiceImpl) nudgeForCandidate(ctx context.Context, employeeID string, lostAt time.Time) error {
	entry, err := s.TimeEntryRepository.GetOpen(ctx, employeeID)
	if err != nil {
		if errors.Is(err, timeclock.ErrTimeEntryNotFound) {
			return nil
		}
		return err
	}

	pending, err := s.NudgeRepository.HasPending(ctx, employeeID)
	if err != nil {
		return err
	}
	if pending {
		return nil
	}

	suggested := s.suggestClockOut(ctx, entry, lostAt)

	nudge := reconcile.ClockOutNudge{
		ID:                    uuid.New().String(),
		EmployeeID:            employeeID,
		Type:                  reconcile.NudgeForgotClockOut,
		PotentialClockOutTime: &lostAt,
		SuggestedTime:         suggested,
		Status:                reconcile.StatusPending,
		CreatedAt:             s.clock.Now(),
	}
	if nudge, err = s.NudgeRepository.Create(ctx, nudge); err != nil {
		return err
	}

	s.notifyEmployee(ctx, employeeID, notification.CreateNotificationRequest{
		Type:    notification.TypeClockOutNudge,
		Title:   "Did you forget to clock out?",
		Message: fmt.Sprintf("It looks like you left around %s without clocking out. Did you forget?", suggested.Format("15:04")),
		Data: map[string]interface{}{
			"nudge_id":       nudge.ID,
			"suggested_time": suggested.Format(time.RFC3339),
		},
	})
	return nil
}

// suggestClockOut picks the likely true clock-out moment: a scheduled shift
// end within the suggestion window of the presence loss, else the loss moment
// itself. Window ends anchor on the entry's clock-in day so overnight shifts
// resolve to the correct calendar day.
func (s *ReconcileServiceImpl) suggestClockOut(ctx context.Context, entry timeclock.TimeEntry, lostAt time.Time) time.Time {
	emp, err := s.EmployeeRepository.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		return lostAt
	}

	for _, w := range schedule.ResolveShiftWindows(emp.Schedule, entry.ClockInTime) {
		end := schedule.WindowEnd(w, entry.ClockInTime)
		delta := lostAt.Sub(end)
		if delta < 0 {
			delta = -delta
		}
		if delta <= SuggestionWindow {
			return end
		}
	}
	return lostAt
}

// CheckOverruns implements reconcile.ReconcileService. An entry still open
// more than OverrunThreshold past its last scheduled window end gets a
// SHIFT_OVERDUE nudge, at most one per employee per day.
func (s *ReconcileServiceImpl) CheckOverruns(ctx context.Context) error {
	open, err := s.TimeEntryRepository.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open entries: %w", err)
	}

	now := s.clock.Now()
	today := now.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, entry := range open {
		if s.overdueSent[entry.EmployeeID] == today {
			continue
		}
		if err := s.nudgeIfOverrun(ctx, entry, now, today); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *ReconcileServiceImpl) nudgeIfOverrun(ctx context.Context, entry timeclock.TimeEntry, now time.Time, today string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return err
	}

	windows := schedule.ResolveShiftWindows(emp.Schedule, entry.ClockInTime)
	if len(windows) == 0 {
		return nil
	}

	// The last window end of the day is the deadline: an employee rolling
	// from a morning into an afternoon shift is not overdue at 14:20.
	var deadline time.Time
	for _, w := range windows {
		if end := schedule.WindowEnd(w, entry.ClockInTime); end.After(deadline) {
			deadline = end
		}
	}

	if now.Sub(deadline) <= OverrunThreshold {
		return nil
	}

	pending, err := s.NudgeRepository.HasPending(ctx, entry.EmployeeID)
	if err != nil {
		return err
	}
	if pending {
		return nil
	}

	nudge := reconcile.ClockOutNudge{
		ID:               uuid.New().String(),
		EmployeeID:       entry.EmployeeID,
		Type:             reconcile.NudgeShiftOverdue,
		ScheduledEndTime: &deadline,
		SuggestedTime:    deadline,
		Status:           reconcile.StatusPending,
		CreatedAt:        s.clock.Now(),
	}
	if nudge, err = s.NudgeRepository.Create(ctx, nudge); err != nil {
		return err
	}
	s.overdueSent[entry.EmployeeID] = today

	s.notifyEmployee(ctx, entry.EmployeeID, notification.CreateNotificationRequest{
		Type:    notification.TypeShiftOverdue,
		Title:   "Still clocked in?",
		Message: fmt.Sprintf("Your shift ended at %s and you are still clocked in. Did you forget to clock out?", deadline.Format("15:04")),
		Data: map[string]interface{}{
			"nudge_id":           nudge.ID,
			"scheduled_end_time": deadline.Format(time.RFC3339),
		},
	})
	return nil
}

// Respond implements reconcile.ReconcileService. YES auto-finalizes the open
// entry at the suggested (or employee-supplied) time; NO escalates to a
// manager and leaves the entry open.
func (s *ReconcileServiceImpl) Respond(ctx context.Context, req reconcile.RespondRequest) (reconcile.NudgeResponse, error) {
	if err := req.Validate(); err != nil {
		return reconcile.NudgeResponse{}, err
	}

	employeeID, err := employeeFromClaims(ctx)
	if err != nil {
		return reconcile.NudgeResponse{}, err
	}

	now := s.clock.Now()

	var nudge reconcile.ClockOutNudge
	var clockOut time.Time
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		nudge, err = s.NudgeRepository.GetByID(txCtx, req.NudgeID)
		if err != nil {
			return err
		}
		if nudge.EmployeeID != employeeID {
			return reconcile.ErrNudgeNotYours
		}
		if nudge.Status != reconcile.StatusPending {
			return reconcile.ErrNudgeAlreadyResolved
		}

		if req.Answer == reconcile.AnswerYes {
			nudge.Status = reconcile.StatusConfirmed
			nudge.ResolvedAt = &now
			if err := s.NudgeRepository.Update(txCtx, nudge); err != nil {
				return err
			}
			clockOut = nudge.SuggestedTime
			if req.ClockOutTime != nil {
				clockOut = *req.ClockOutTime
			}
			return s.finalizeEntry(txCtx, employeeID, clockOut)
		}

		nudge.Status = reconcile.StatusNeedsManager
		nudge.RequiresManagerAction = true
		nudge.ResolvedAt = &now
		return s.NudgeRepository.Update(txCtx, nudge)
	})
	if err != nil {
		return reconcile.NudgeResponse{}, err
	}

	if nudge.Status == reconcile.StatusNeedsManager {
		s.notifyManagers(ctx, nudge)
	} else {
		s.notifyEmployee(ctx, employeeID, notification.CreateNotificationRequest{
			Type:    notification.TypeEntryAutoClosed,
			Title:   "Time entry closed",
			Message: fmt.Sprintf("Your time entry was closed at %s based on your confirmation.", clockOut.Format("15:04")),
			Data: map[string]interface{}{
				"nudge_id": nudge.ID,
			},
		})
	}

	return toResponse(nudge), nil
}

// ListMine implements reconcile.ReconcileService.
func (s *ReconcileServiceImpl) ListMine(ctx context.Context) ([]reconcile.NudgeResponse, error) {
	employeeID, err := employeeFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	nudges, err := s.NudgeRepository.ListPendingByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nudges: %w", err)
	}

	responses := make([]reconcile.NudgeResponse, 0, len(nudges))
	for _, nudge := range nudges {
		responses = append(responses, toResponse(nudge))
	}
	return responses, nil
}

// finalizeEntry backfills the clock-out on the employee's open entry. A
// already-closed entry is not an error: the employee clocked out on their own
// between nudge and answer.
func (s *ReconcileServiceImpl) finalizeEntry(ctx context.Context, employeeID string, clockOut time.Time) error {
	entry, err := s.TimeEntryRepository.GetOpen(ctx, employeeID)
	if err != nil {
		if errors.Is(err, timeclock.ErrTimeEntryNotFound) {
			return nil
		}
		return err
	}

	total := timeclock.WorkedHours(entry.ClockInTime, clockOut)
	entry.ClockOutTime = &clockOut
	entry.TotalHours = &total
	entry.AutoClockOut = true

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return err
	}

	return s.ClockStatusRepository.Upsert(ctx, timeclock.ClockStatus{
		EmployeeID:   employeeID,
		LastClockIn:  &entry.ClockInTime,
		LastClockOut: &clockOut,
	})
}

func (s *ReconcileServiceImpl) notifyEmployee(ctx context.Context, employeeID string, req notification.CreateNotificationRequest) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	req.RecipientID = *emp.UserID
	_ = s.notificationService.QueueNotification(ctx, req)
}

func (s *ReconcileServiceImpl) notifyManagers(ctx context.Context, nudge reconcile.ClockOutNudge) {
	emp, err := s.EmployeeRepository.GetByID(ctx, nudge.EmployeeID)
	if err != nil {
		return
	}
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
			Type:        notification.TypeCorrectionNeeded,
			Title:       "Clock-out correction needed",
			Message:     fmt.Sprintf("%s says the suggested clock-out time is wrong. Their entry needs a manual correction.", emp.FullName),
			Data: map[string]interface{}{
				"employee_id": emp.ID,
				"nudge_id":    nudge.ID,
			},
		})
	}
	_ = s.notificationService.QueueBulkNotification(ctx, reqs)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toResponse(nudge reconcile.ClockOutNudge) reconcile.NudgeResponse {
	return reconcile.NudgeResponse{
		ID:                    nudge.ID,
		EmployeeID:            nudge.EmployeeID,
		Type:                  nudge.Type,
		PotentialClockOutTime: timePtrToString(nudge.PotentialClockOutTime),
		ScheduledEndTime:      timePtrToString(nudge.ScheduledEndTime),
		SuggestedTime:         nudge.SuggestedTime.Format("2006-01-02 15:04:05"),
		Status:                nudge.Status,
		RequiresManagerAction: nudge.RequiresManagerAction,
		CreatedAt:             nudge.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewReconcileService(
	db *database.DB,
	clk clock.Clock,
	gate presence.Gate,
	nudgeRepo reconcile.NudgeRepository,
	timeEntryRepo timeclock.TimeEntryRepository,
	clockStatusRepo timeclock.ClockStatusRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
) reconcile.ReconcileService {
	return &ReconcileServiceImpl{
		db:                    db,
		clock:                 clk,
		gate:                  gate,
		NudgeRepository:       nudgeRepo,
		TimeEntryRepository:   timeEntryRepo,
		ClockStatusRepository: clockStatusRepo,
		EmployeeRepository:    employeeRepo,
		notificationService:   notificationService,
		candidates:            make(map[string]time.Time),
		overdueSent:           make(map[string]string),
	}
}
