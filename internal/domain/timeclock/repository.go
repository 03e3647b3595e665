package timeclock

import (
	"context"
)

// TimeEntryRepository defines data access for time entries. Read-modify-write
// sequences on a single entry must run inside a transaction scope; GetOpen
// takes a row lock when called within one, which is the per-employee critical
// section enforcing the single-open-entry invariant.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetOpen retrieves the employee's open entry (clock-in without
	// clock-out), or ErrTimeEntryNotFound.
	GetOpen(ctx context.Context, employeeID string) (TimeEntry, error)

	// ListOpen retrieves every open entry across employees, for the
	// reconciliation sweeps.
	ListOpen(ctx context.Context) ([]TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error

	// List retrieves entries with filters and pagination.
	List(ctx context.Context, filter EntryFilter) ([]TimeEntry, int64, error)
}

// ClockStatusRepository stores the per-employee clock projection.
type ClockStatusRepository interface {
	Get(ctx context.Context, employeeID string) (ClockStatus, error)
	Upsert(ctx context.Context, status ClockStatus) error
}

// TimeClockService defines the clock event processor.
type TimeClockService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (ClockResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockResponse, error)
	GetStatus(ctx context.Context) (ClockStatusResponse, error)
	GetMyEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)
}
