package timeclock

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/approval"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/domain/notification"
	"github.com/restoops/timeclock-backend-go/internal/domain/presence"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database/databasetest"
	presencepkg "github.com/restoops/timeclock-backend-go/internal/pkg/presence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authedCtx(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ===== In-memory fakes =====

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries map[string]timeclock.TimeEntry
	seq     int
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]timeclock.TimeEntry)}
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry timeclock.TimeEntry) (timeclock.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%d", r.seq)
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, id string) (timeclock.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return timeclock.TimeEntry{}, timeclock.ErrTimeEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) GetOpen(ctx context.Context, employeeID string) (timeclock.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID && entry.ClockOutTime == nil {
			return entry, nil
		}
	}
	return timeclock.TimeEntry{}, timeclock.ErrTimeEntryNotFound
}

func (r *fakeEntryRepo) ListOpen(ctx context.Context) ([]timeclock.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var open []timeclock.TimeEntry
	for _, entry := range r.entries {
		if entry.ClockOutTime == nil {
			open = append(open, entry)
		}
	}
	return open, nil
}

func (r *fakeEntryRepo) Update(ctx context.Context, entry timeclock.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return timeclock.ErrTimeEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) List(ctx context.Context, filter timeclock.EntryFilter) ([]timeclock.TimeEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []timeclock.TimeEntry
	for _, entry := range r.entries {
		if filter.EmployeeID != "" && entry.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(entry.Status) != filter.Status {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeEntryRepo) openCount(employeeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID && entry.ClockOutTime == nil {
			n++
		}
	}
	return n
}

type fakeStatusRepo struct {
	mu       sync.Mutex
	statuses map[string]timeclock.ClockStatus
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{statuses: make(map[string]timeclock.ClockStatus)}
}

func (r *fakeStatusRepo) Get(ctx context.Context, employeeID string) (timeclock.ClockStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status, ok := r.statuses[employeeID]
	if !ok {
		return timeclock.ClockStatus{}, timeclock.ErrClockStatusNotFound
	}
	return status, nil
}

func (r *fakeStatusRepo) Upsert(ctx context.Context, status timeclock.ClockStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	status.UpdatedAt = time.Now()
	r.statuses[status.EmployeeID] = status
	return nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []employee.Employee
	for _, e := range r.employees {
		if e.EmploymentStatus == employee.EmploymentStatusActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *fakeEmployeeRepo) GetManagers(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var managers []employee.Employee
	for _, e := range r.employees {
		if e.Role == employee.RoleManager || e.Role == employee.RoleOwner {
			managers = append(managers, e)
		}
	}
	return managers, nil
}

func (r *fakeEmployeeRepo) UpdateSchedule(ctx context.Context, id string, s schedule.WeekSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Schedule = s
	r.employees[id] = emp
	return nil
}

type fakeApprovalRepo struct {
	mu       sync.Mutex
	requests map[string]approval.ApprovalRequest
}

func newFakeApprovalRepo() *fakeApprovalRepo {
	return &fakeApprovalRepo{requests: make(map[string]approval.ApprovalRequest)}
}

func (r *fakeApprovalRepo) Create(ctx context.Context, request approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeApprovalRepo) GetByID(ctx context.Context, id string) (approval.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return approval.ApprovalRequest{}, approval.ErrRequestNotFound
	}
	return request, nil
}

func (r *fakeApprovalRepo) ListPending(ctx context.Context) ([]approval.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []approval.ApprovalRequest
	for _, request := range r.requests {
		if request.Status == approval.StatusPending {
			pending = append(pending, request)
		}
	}
	return pending, nil
}

func (r *fakeApprovalRepo) ListByEmployee(ctx context.Context, employeeID string) ([]approval.ApprovalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var mine []approval.ApprovalRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			mine = append(mine, request)
		}
	}
	return mine, nil
}

func (r *fakeApprovalRepo) Update(ctx context.Context, request approval.ApprovalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[request.ID]; !ok {
		return approval.ErrRequestNotFound
	}
	r.requests[request.ID] = request
	return nil
}

type fakeNotificationService struct {
	mu     sync.Mutex
	queued []notification.CreateNotificationRequest
}

func (s *fakeNotificationService) QueueNotification(ctx context.Context, req notification.CreateNotificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, req)
	return nil
}

func (s *fakeNotificationService) QueueBulkNotification(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, reqs...)
	return nil
}

func (s *fakeNotificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}

func (s *fakeNotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (s *fakeNotificationService) MarkAsRead(ctx context.Context, userID string, req notification.MarkAsReadRequest) error {
	return nil
}

func (s *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func (s *fakeNotificationService) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	return ch, func() { close(ch) }
}

func (s *fakeNotificationService) Stop() {}

func (s *fakeNotificationService) byType(nt notification.NotificationType) []notification.CreateNotificationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notification.CreateNotificationRequest
	for _, req := range s.queued {
		if req.Type == nt {
			out = append(out, req)
		}
	}
	return out
}

// ===== Fixture =====

type fixture struct {
	service   timeclock.TimeClockService
	entries   *fakeEntryRepo
	statuses  *fakeStatusRepo
	employees *fakeEmployeeRepo
	approvals *fakeApprovalRepo
	notifs    *fakeNotificationService
	gate      *presencepkg.StaticGate
	clock     *clock.Mock
}

func strPtr(s string) *string { return &s }

func splitShiftEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:               id,
		UserID:           strPtr("user-" + id),
		FullName:         "Dana Cook",
		Role:             employee.RoleStaff,
		EmploymentStatus: employee.EmploymentStatusActive,
		Schedule: schedule.WeekSchedule{
			Recurring: map[schedule.Weekday]map[schedule.ShiftName]bool{
				schedule.Monday: {
					schedule.ShiftMorning:   true,
					schedule.ShiftAfternoon: true,
				},
			},
		},
	}
}

func eveningShiftEmployee(id string) employee.Employee {
	emp := splitShiftEmployee(id)
	emp.Schedule = schedule.WeekSchedule{
		Recurring: map[schedule.Weekday]map[schedule.ShiftName]bool{
			schedule.Monday: {schedule.ShiftEvening: true},
		},
	}
	return emp
}

// monday is a fixed reference day so recurring schedules resolve predictably.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(monday.Year(), monday.Month(), monday.Day(), hour, min, 0, 0, time.UTC)
}

func newFixture(t *testing.T, employees ...employee.Employee) *fixture {
	t.Helper()

	f := &fixture{
		entries:   newFakeEntryRepo(),
		statuses:  newFakeStatusRepo(),
		employees: newFakeEmployeeRepo(employees...),
		approvals: newFakeApprovalRepo(),
		notifs:    &fakeNotificationService{},
		gate:      presencepkg.NewStaticGate(presence.Presence{Verified: true, LocationID: "main", Confidence: 1}),
		clock:     clock.NewMock(at(14, 0)),
	}
	f.service = NewTimeClockService(
		databasetest.NullDB(),
		f.clock,
		f.gate,
		f.entries,
		f.statuses,
		f.employees,
		f.approvals,
		f.notifs,
	)
	return f
}

// ===== Clock-in =====

func TestClockIn_WithinGrace(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")
	f.clock.Set(at(14, 3))

	resp, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	require.NoError(t, err)
	assert.False(t, resp.RequiresApproval)
	assert.Equal(t, timeclock.EntryStatusApproved, resp.Entry.Status)
	assert.Equal(t, "14:00", resp.Entry.ShiftStart)

	status, err := f.statuses.Get(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, status.IsCurrentlyClocked)
	require.NotNil(t, status.CurrentTimeEntryID)
	assert.Equal(t, resp.Entry.ID, *status.CurrentTimeEntryID)
}

func TestClockIn_InvalidQR(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: "SOME_OTHER_CODE"})

	assert.ErrorIs(t, err, timeclock.ErrInvalidQR)
	assert.Equal(t, timeclock.CodeInvalidQR, timeclock.Code(err))
}

func TestClockIn_NotLoggedIn(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))

	_, err := f.service.ClockIn(context.Background(), timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	assert.ErrorIs(t, err, timeclock.ErrNotLoggedIn)
}

func TestClockIn_LocationVerificationFailed(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")
	f.gate.SetVerified(false)

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	assert.ErrorIs(t, err, timeclock.ErrLocationVerificationFailed)
}

func TestClockIn_NoShiftScheduled(t *testing.T) {
	t.Parallel()
	emp := splitShiftEmployee("emp-1")
	emp.Schedule = schedule.WeekSchedule{}
	f := newFixture(t, emp)
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	assert.ErrorIs(t, err, timeclock.ErrNoShiftScheduled)
}

func TestClockIn_NoDoubleClockIn(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)

	_, err = f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
	assert.Equal(t, 1, f.entries.openCount("emp-1"))
}

func TestClockIn_OpenEntryBeatsEmptySchedule(t *testing.T) {
	t.Parallel()
	emp := splitShiftEmployee("emp-1")
	emp.Schedule = schedule.WeekSchedule{}
	f := newFixture(t, emp)
	ctx := authedCtx(t, "emp-1")

	// An overnight entry is still open while today's schedule resolves to
	// nothing; being clocked in takes precedence over being unscheduled.
	clockIn := at(22, 0).Add(-24 * time.Hour)
	_, err := f.entries.Create(ctx, timeclock.TimeEntry{
		EmployeeID:  "emp-1",
		Date:        clockIn.Format("2006-01-02"),
		ClockInTime: clockIn,
		Status:      timeclock.EntryStatusApproved,
	})
	require.NoError(t, err)

	_, err = f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
	assert.NotErrorIs(t, err, timeclock.ErrNoShiftScheduled)
}

func TestClockIn_ClosestShiftWins(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	// 13:58 is late for the 06:00 shift but 2 minutes early for the 14:00
	// shift; the closer window is selected.
	f.clock.Set(at(13, 58))

	resp, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.Entry.ShiftStart)
	assert.False(t, resp.RequiresApproval)
}

func TestClockIn_LateBeyondGraceRequiresApproval(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")
	f.clock.Set(at(14, 6))

	resp, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	require.NoError(t, err)
	assert.True(t, resp.RequiresApproval)
	assert.Equal(t, timeclock.EntryStatusPendingApproval, resp.Entry.Status)
	require.NotNil(t, resp.Entry.ApprovalReason)
	assert.Equal(t, timeclock.ReasonLateClockIn, *resp.Entry.ApprovalReason)
	assert.Equal(t, 6, resp.Entry.MinutesLate)

	pending, err := f.approvals.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, approval.TypeClockInApproval, pending[0].Type)
	require.NotNil(t, pending[0].TimeEntryID)
	assert.Equal(t, resp.Entry.ID, *pending[0].TimeEntryID)
}

func TestClockIn_ExactlyFiveMinutesLateIsWithinGrace(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")
	f.clock.Set(at(14, 5))

	resp, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	require.NoError(t, err)
	assert.False(t, resp.RequiresApproval)

	pending, err := f.approvals.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestClockIn_EarlyBeyondGraceNotifiesManagers(t *testing.T) {
	t.Parallel()
	manager := splitShiftEmployee("mgr-1")
	manager.Role = employee.RoleManager
	f := newFixture(t, splitShiftEmployee("emp-1"), manager)
	ctx := authedCtx(t, "emp-1")
	f.clock.Set(at(13, 40))

	resp, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})

	require.NoError(t, err)
	assert.True(t, resp.RequiresApproval)
	require.NotNil(t, resp.Entry.ApprovalReason)
	assert.Equal(t, timeclock.ReasonEarlyClockIn, *resp.Entry.ApprovalReason)

	notified := f.notifs.byType(notification.TypeClockInPendingApproval)
	require.Len(t, notified, 1)
	assert.Equal(t, "user-mgr-1", notified[0].RecipientID)
}

// ===== Clock-out =====

func TestClockOut_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)

	f.clock.Set(at(22, 0))
	resp, err := f.service.ClockOut(ctx, timeclock.ClockOutRequest{QRToken: timeclock.ClockOutToken})

	require.NoError(t, err)
	require.NotNil(t, resp.Entry.TotalHours)
	assert.True(t, resp.Entry.TotalHours.Equal(decimal.NewFromFloat(8)))

	status, err := f.statuses.Get(ctx, "emp-1")
	require.NoError(t, err)
	assert.False(t, status.IsCurrentlyClocked)
	assert.Nil(t, status.CurrentTimeEntryID)
	assert.Equal(t, 0, f.entries.openCount("emp-1"))
}

func TestClockOut_OvernightShiftHours(t *testing.T) {
	t.Parallel()
	f := newFixture(t, eveningShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	f.clock.Set(at(22, 0))
	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)

	// Clock out at 06:00 the next morning.
	f.clock.Set(at(22, 0).Add(8 * time.Hour))
	resp, err := f.service.ClockOut(ctx, timeclock.ClockOutRequest{QRToken: timeclock.ClockOutToken})

	require.NoError(t, err)
	require.NotNil(t, resp.Entry.TotalHours)
	assert.Equal(t, "8", resp.Entry.TotalHours.String())
}

func TestClockOut_NotClockedIn(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockOut(ctx, timeclock.ClockOutRequest{QRToken: timeclock.ClockOutToken})

	assert.ErrorIs(t, err, timeclock.ErrNotClockedIn)
	assert.Equal(t, timeclock.CodeNotClockedIn, timeclock.Code(err))
}

func TestClockOut_InvalidQR(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	// The clock-in token is not valid for clocking out.
	_, err := f.service.ClockOut(ctx, timeclock.ClockOutRequest{QRToken: timeclock.ClockInToken})

	assert.ErrorIs(t, err, timeclock.ErrInvalidQR)
}

// ===== Status and listings =====

func TestGetStatus_NeverClocked(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	resp, err := f.service.GetStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.False(t, resp.IsCurrentlyClocked)
}

func TestGetStatus_AfterClockIn(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"))
	ctx := authedCtx(t, "emp-1")

	_, err := f.service.ClockIn(ctx, timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)

	resp, err := f.service.GetStatus(ctx)

	require.NoError(t, err)
	assert.True(t, resp.IsCurrentlyClocked)
	require.NotNil(t, resp.ShiftStart)
	assert.Equal(t, "14:00", *resp.ShiftStart)
}

func TestGetMyEntries_ScopedToCaller(t *testing.T) {
	t.Parallel()
	f := newFixture(t, splitShiftEmployee("emp-1"), splitShiftEmployee("emp-2"))

	_, err := f.service.ClockIn(authedCtx(t, "emp-1"), timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)
	_, err = f.service.ClockIn(authedCtx(t, "emp-2"), timeclock.ClockInRequest{QRToken: timeclock.ClockInToken})
	require.NoError(t, err)

	resp, err := f.service.GetMyEntries(authedCtx(t, "emp-1"), timeclock.EntryFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "emp-1", resp.Entries[0].EmployeeID)
}
