package employee

import (
	"time"

	"github.com/restoops/timeclock-backend-go/internal/domain/schedule"
)

type Employee struct {
	ID               string
	UserID           *string
	FullName         string
	Role             Role
	EmploymentStatus EmploymentStatus
	Schedule         schedule.WeekSchedule
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
