package employee

import (
	"context"

	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
)

// EmployeeRepository defines read access to the employee directory. The core
// writes back only to the schedule fields, when an availability change is
// approved.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActive retrieves all active employees, used by the reconciliation
	// sweeps.
	GetActive(ctx context.Context) ([]Employee, error)

	// GetManagers retrieves employees with a manager or owner role, the
	// recipients of escalation notifications.
	GetManagers(ctx context.Context) ([]Employee, error)

	// UpdateSchedule replaces the stored schedule of one employee.
	UpdateSchedule(ctx context.Context, id string, s schedule.WeekSchedule) error
}
