package postgresql

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (timeclock.TimeEntryRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewTimeEntryRepository(database.NewFromPool(mock)), mock
}

func entryRowFixture(t *testing.T) ([]string, []any) {
	t.Helper()

	shiftJSON, err := json.Marshal(schedule.ShiftWindow{
		StartTime: "14:00",
		EndTime:   "22:00",
		Source:    schedule.SourceAutomatic,
	})
	require.NoError(t, err)
	graceJSON, err := json.Marshal(schedule.GraceStatus{WithinGrace: true, TimeDifference: 3})
	require.NoError(t, err)

	clockIn := time.Date(2025, 3, 10, 14, 3, 0, 0, time.UTC)
	now := time.Now().UTC()

	columns := []string{
		"id", "employee_id", "date", "clock_in", "clock_out",
		"scheduled_shift", "grace_status", "status", "approval_required",
		"approval_reason", "total_hours", "auto_clock_out",
		"created_at", "updated_at",
	}
	values := []any{
		"entry-1", "emp-1", "2025-03-10", clockIn, nil,
		shiftJSON, graceJSON, string(timeclock.EntryStatusApproved), false,
		nil, nil, false,
		now, now,
	}
	return columns, values
}

func TestTimeEntryRepository_GetOpen(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	columns, values := entryRowFixture(t)
	mock.ExpectQuery(`FROM time_entries t\s+WHERE t\.employee_id = \$1\s+AND t\.clock_out IS NULL`).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(values...))

	entry, err := repo.GetOpen(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, "emp-1", entry.EmployeeID)
	assert.True(t, entry.Open())
	assert.Equal(t, "14:00", entry.ScheduledShift.StartTime)
	assert.True(t, entry.GraceStatus.WithinGrace)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_GetOpen_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	columns, _ := entryRowFixture(t)
	mock.ExpectQuery(`FROM time_entries t`).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows(columns))

	_, err := repo.GetOpen(context.Background(), "emp-1")
	assert.ErrorIs(t, err, timeclock.ErrTimeEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_Create(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO time_entries`).
		WithArgs(
			"entry-1", "emp-1", "2025-03-10", pgxmock.AnyArg(), (*time.Time)(nil),
			pgxmock.AnyArg(), pgxmock.AnyArg(), timeclock.EntryStatusApproved, false,
			(*timeclock.ApprovalReason)(nil), (*decimal.Decimal)(nil), false,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	entry := timeclock.TimeEntry{
		ID:          "entry-1",
		EmployeeID:  "emp-1",
		Date:        "2025-03-10",
		ClockInTime: time.Date(2025, 3, 10, 14, 3, 0, 0, time.UTC),
		ScheduledShift: schedule.ShiftWindow{
			StartTime: "14:00",
			EndTime:   "22:00",
			Source:    schedule.SourceAutomatic,
		},
		GraceStatus: schedule.GraceStatus{WithinGrace: true, TimeDifference: 3},
		Status:      timeclock.EntryStatusApproved,
	}

	created, err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE time_entries`).
		WithArgs(
			"entry-missing", (*time.Time)(nil), pgxmock.AnyArg(), pgxmock.AnyArg(),
			timeclock.EntryStatusApproved, false, (*timeclock.ApprovalReason)(nil), (*decimal.Decimal)(nil), false,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), timeclock.TimeEntry{
		ID:     "entry-missing",
		Status: timeclock.EntryStatusApproved,
	})
	assert.ErrorIs(t, err, timeclock.ErrTimeEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_List_Filters(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepo(t)

	columns, values := entryRowFixture(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM time_entries t`).
		WithArgs("emp-1", "2025-03-01").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`FROM time_entries t\s+WHERE 1=1 AND t\.employee_id = \$1 AND t\.date >= \$2`).
		WithArgs("emp-1", "2025-03-01", 20, 0).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(values...))

	entries, total, err := repo.List(context.Background(), timeclock.EntryFilter{
		EmployeeID: "emp-1",
		StartDate:  "2025-03-01",
		Page:       1,
		Limit:      20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, entries, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
