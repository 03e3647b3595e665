package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, user_id, full_name, role, employment_status, schedule, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var scheduleJSON []byte

	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.FullName, &emp.Role, &emp.EmploymentStatus,
		&scheduleJSON, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}

	if len(scheduleJSON) > 0 {
		if err := json.Unmarshal(scheduleJSON, &emp.Schedule); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode employee schedule: %w", err)
		}
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employment_status = 'active' AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// GetManagers implements employee.EmployeeRepository.
func (r *employeeRepository) GetManagers(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE role IN ('manager', 'owner')
		  AND employment_status = 'active'
		  AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// UpdateSchedule implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateSchedule(ctx context.Context, id string, s schedule.WeekSchedule) error {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode employee schedule: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET schedule = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id, scheduleJSON)
	if err != nil {
		return fmt.Errorf("failed to update employee schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}
