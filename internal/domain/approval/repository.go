package approval

import (
	"context"
)

// ApprovalRequestRepository defines data access for approval requests.
type ApprovalRequestRepository interface {
	Create(ctx context.Context, request ApprovalRequest) (ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (ApprovalRequest, error)
	ListPending(ctx context.Context) ([]ApprovalRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ApprovalRequest, error)
	Update(ctx context.Context, request ApprovalRequest) error
}

// ApprovalService defines the approval queue operations.
type ApprovalService interface {
	// SubmitAvailabilityChange files an AVAILABILITY_CHANGE request on
	// behalf of the signed-in employee.
	SubmitAvailabilityChange(ctx context.Context, req SubmitAvailabilityChangeRequest) (ApprovalRequestResponse, error)

	// Resolve applies a manager decision to a pending request. Resolution
	// is terminal; resolving twice returns ErrRequestAlreadyResolved.
	Resolve(ctx context.Context, req ResolveRequest) (ApprovalRequestResponse, error)

	ListPending(ctx context.Context) ([]ApprovalRequestResponse, error)
	ListMine(ctx context.Context) ([]ApprovalRequestResponse, error)
}
