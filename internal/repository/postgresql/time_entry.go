package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeclock.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.employee_id, t.date, t.clock_in, t.clock_out,
	t.scheduled_shift, t.grace_status, t.status, t.approval_required,
	t.approval_reason, t.total_hours, t.auto_clock_out,
	t.created_at, t.updated_at
`

func scanTimeEntry(row pgx.Row) (timeclock.TimeEntry, error) {
	var entry timeclock.TimeEntry
	var shiftJSON, graceJSON []byte

	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockInTime, &entry.ClockOutTime,
		&shiftJSON, &graceJSON, &entry.Status, &entry.ApprovalRequired,
		&entry.ApprovalReason, &entry.TotalHours, &entry.AutoClockOut,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.TimeEntry{}, timeclock.ErrTimeEntryNotFound
		}
		return timeclock.TimeEntry{}, fmt.Errorf("failed to scan time entry: %w", err)
	}

	if err := json.Unmarshal(shiftJSON, &entry.ScheduledShift); err != nil {
		return timeclock.TimeEntry{}, fmt.Errorf("failed to decode scheduled shift: %w", err)
	}
	if err := json.Unmarshal(graceJSON, &entry.GraceStatus); err != nil {
		return timeclock.TimeEntry{}, fmt.Errorf("failed to decode grace status: %w", err)
	}

	return entry, nil
}

// Create implements timeclock.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeclock.TimeEntry) (timeclock.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	shiftJSON, err := json.Marshal(entry.ScheduledShift)
	if err != nil {
		return timeclock.TimeEntry{}, fmt.Errorf("failed to encode scheduled shift: %w", err)
	}
	graceJSON, err := json.Marshal(entry.GraceStatus)
	if err != nil {
		return timeclock.TimeEntry{}, fmt.Errorf("failed to encode grace status: %w", err)
	}

	query := `
		INSERT INTO time_entries (
			id, employee_id, date, clock_in, clock_out,
			scheduled_shift, grace_status, status, approval_required,
			approval_reason, total_hours, auto_clock_out
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.Date,
		entry.ClockInTime,
		entry.ClockOutTime,
		shiftJSON,
		graceJSON,
		entry.Status,
		entry.ApprovalRequired,
		entry.ApprovalReason,
		entry.TotalHours,
		entry.AutoClockOut,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return timeclock.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeclock.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeclock.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.id = $1
	`

	return scanTimeEntry(q.QueryRow(ctx, query, id))
}

// GetOpen implements timeclock.TimeEntryRepository. Inside a transaction the
// row is locked, serializing concurrent clock events for the same employee.
func (r *timeEntryRepository) GetOpen(ctx context.Context, employeeID string) (timeclock.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.employee_id = $1
		  AND t.clock_out IS NULL
		ORDER BY t.clock_in DESC
		LIMIT 1
	`
	if InTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	return scanTimeEntry(q.QueryRow(ctx, query, employeeID))
}

// ListOpen implements timeclock.TimeEntryRepository.
func (r *timeEntryRepository) ListOpen(ctx context.Context) ([]timeclock.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.clock_out IS NULL
		ORDER BY t.clock_in
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open time entries: %w", err)
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

// Update implements timeclock.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeclock.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	shiftJSON, err := json.Marshal(entry.ScheduledShift)
	if err != nil {
		return fmt.Errorf("failed to encode scheduled shift: %w", err)
	}
	graceJSON, err := json.Marshal(entry.GraceStatus)
	if err != nil {
		return fmt.Errorf("failed to encode grace status: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE time_entries
		SET clock_out = $2,
			scheduled_shift = $3,
			grace_status = $4,
			status = $5,
			approval_required = $6,
			approval_reason = $7,
			total_hours = $8,
			auto_clock_out = $9,
			updated_at = NOW()
		WHERE id = $1
	`,
		entry.ID,
		entry.ClockOutTime,
		shiftJSON,
		graceJSON,
		entry.Status,
		entry.ApprovalRequired,
		entry.ApprovalReason,
		entry.TotalHours,
		entry.AutoClockOut,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrTimeEntryNotFound
	}

	return nil
}

// List implements timeclock.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeclock.EntryFilter) ([]timeclock.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	addArg := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argIdx))
		args = append(args, value)
		argIdx++
	}

	if filter.EmployeeID != "" {
		addArg("t.employee_id = $%d", filter.EmployeeID)
	}
	if filter.StartDate != "" {
		addArg("t.date >= $%d", filter.StartDate)
	}
	if filter.EndDate != "" {
		addArg("t.date <= $%d", filter.EndDate)
	}
	if filter.Status != "" {
		addArg("t.status = $%d", filter.Status)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_entries t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE ` + where + `
		ORDER BY t.date DESC, t.clock_in DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectTimeEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func collectTimeEntries(rows pgx.Rows) ([]timeclock.TimeEntry, error) {
	var entries []timeclock.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}
	return entries, nil
}
