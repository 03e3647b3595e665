package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

type clockStatusRepository struct {
	db *database.DB
}

func NewClockStatusRepository(db *database.DB) timeclock.ClockStatusRepository {
	return &clockStatusRepository{db: db}
}

// Get implements timeclock.ClockStatusRepository.
func (r *clockStatusRepository) Get(ctx context.Context, employeeID string) (timeclock.ClockStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, is_currently_clocked, current_time_entry_id,
			   last_clock_in, last_clock_out, current_shift, updated_at
		FROM clock_statuses
		WHERE employee_id = $1
	`

	var status timeclock.ClockStatus
	var shiftJSON []byte
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&status.EmployeeID, &status.IsCurrentlyClocked, &status.CurrentTimeEntryID,
		&status.LastClockIn, &status.LastClockOut, &shiftJSON, &status.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.ClockStatus{}, timeclock.ErrClockStatusNotFound
		}
		return timeclock.ClockStatus{}, fmt.Errorf("failed to get clock status: %w", err)
	}

	if len(shiftJSON) > 0 {
		if err := json.Unmarshal(shiftJSON, &status.CurrentShift); err != nil {
			return timeclock.ClockStatus{}, fmt.Errorf("failed to decode current shift: %w", err)
		}
	}

	return status, nil
}

// Upsert implements timeclock.ClockStatusRepository.
func (r *clockStatusRepository) Upsert(ctx context.Context, status timeclock.ClockStatus) error {
	q := GetQuerier(ctx, r.db)

	var shiftJSON []byte
	if status.CurrentShift != nil {
		var err error
		shiftJSON, err = json.Marshal(status.CurrentShift)
		if err != nil {
			return fmt.Errorf("failed to encode current shift: %w", err)
		}
	}

	_, err := q.Exec(ctx, `
		INSERT INTO clock_statuses (
			employee_id, is_currently_clocked, current_time_entry_id,
			last_clock_in, last_clock_out, current_shift, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			is_currently_clocked = EXCLUDED.is_currently_clocked,
			current_time_entry_id = EXCLUDED.current_time_entry_id,
			last_clock_in = EXCLUDED.last_clock_in,
			last_clock_out = EXCLUDED.last_clock_out,
			current_shift = EXCLUDED.current_shift,
			updated_at = NOW()
	`,
		status.EmployeeID,
		status.IsCurrentlyClocked,
		status.CurrentTimeEntryID,
		status.LastClockIn,
		status.LastClockOut,
		shiftJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert clock status: %w", err)
	}

	return nil
}
