package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/reconcile"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

type nudgeRepository struct {
	db *database.DB
}

func NewNudgeRepository(db *database.DB) reconcile.NudgeRepository {
	return &nudgeRepository{db: db}
}

const nudgeColumns = `
	n.id, n.employee_id, n.type, n.potential_clock_out, n.scheduled_end,
	n.suggested_time, n.status, n.requires_manager_action, n.created_at, n.resolved_at
`

func scanNudge(row pgx.Row) (reconcile.ClockOutNudge, error) {
	var nudge reconcile.ClockOutNudge

	err := row.Scan(
		&nudge.ID, &nudge.EmployeeID, &nudge.Type, &nudge.PotentialClockOutTime, &nudge.ScheduledEndTime,
		&nudge.SuggestedTime, &nudge.Status, &nudge.RequiresManagerAction, &nudge.CreatedAt, &nudge.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reconcile.ClockOutNudge{}, reconcile.ErrNudgeNotFound
		}
		return reconcile.ClockOutNudge{}, fmt.Errorf("failed to scan clock-out nudge: %w", err)
	}

	return nudge, nil
}

// Create implements reconcile.NudgeRepository.
func (r *nudgeRepository) Create(ctx context.Context, nudge reconcile.ClockOutNudge) (reconcile.ClockOutNudge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clockout_nudges (
			id, employee_id, type, potential_clock_out, scheduled_end,
			suggested_time, status, requires_manager_action, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		nudge.ID,
		nudge.EmployeeID,
		nudge.Type,
		nudge.PotentialClockOutTime,
		nudge.ScheduledEndTime,
		nudge.SuggestedTime,
		nudge.Status,
		nudge.RequiresManagerAction,
		nudge.CreatedAt,
	)
	if err != nil {
		return reconcile.ClockOutNudge{}, fmt.Errorf("failed to create clock-out nudge: %w", err)
	}

	return nudge, nil
}

// GetByID implements reconcile.NudgeRepository.
func (r *nudgeRepository) GetByID(ctx context.Context, id string) (reconcile.ClockOutNudge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + nudgeColumns + `
		FROM clockout_nudges n
		WHERE n.id = $1
	`
	if InTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	return scanNudge(q.QueryRow(ctx, query, id))
}

// ListPendingByEmployee implements reconcile.NudgeRepository.
func (r *nudgeRepository) ListPendingByEmployee(ctx context.Context, employeeID string) ([]reconcile.ClockOutNudge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + nudgeColumns + `
		FROM clockout_nudges n
		WHERE n.employee_id = $1 AND n.status = 'PENDING'
		ORDER BY n.created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending nudges: %w", err)
	}
	defer rows.Close()

	var nudges []reconcile.ClockOutNudge
	for rows.Next() {
		nudge, err := scanNudge(rows)
		if err != nil {
			return nil, err
		}
		nudges = append(nudges, nudge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nudges: %w", err)
	}

	return nudges, nil
}

// HasPending implements reconcile.NudgeRepository.
func (r *nudgeRepository) HasPending(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM clockout_nudges
			WHERE employee_id = $1 AND status = 'PENDING'
		)
	`, employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending nudges: %w", err)
	}

	return exists, nil
}

// Update implements reconcile.NudgeRepository.
func (r *nudgeRepository) Update(ctx context.Context, nudge reconcile.ClockOutNudge) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE clockout_nudges
		SET status = $2,
			requires_manager_action = $3,
			resolved_at = $4
		WHERE id = $1
	`,
		nudge.ID,
		nudge.Status,
		nudge.RequiresManagerAction,
		nudge.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock-out nudge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reconcile.ErrNudgeNotFound
	}

	return nil
}
