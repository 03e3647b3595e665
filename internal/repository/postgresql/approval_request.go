package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/approval"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

type approvalRequestRepository struct {
	db *database.DB
}

func NewApprovalRequestRepository(db *database.DB) approval.ApprovalRequestRepository {
	return &approvalRequestRepository{db: db}
}

const approvalColumns = `
	a.id, a.type, a.employee_id, a.time_entry_id, a.reason, a.change,
	a.status, a.requested_at, a.approved_by, a.approved_at, a.approval_notes
`

func scanApprovalRequest(row pgx.Row) (approval.ApprovalRequest, error) {
	var req approval.ApprovalRequest
	var changeJSON []byte

	err := row.Scan(
		&req.ID, &req.Type, &req.EmployeeID, &req.TimeEntryID, &req.Reason, &changeJSON,
		&req.Status, &req.RequestedAt, &req.ApprovedBy, &req.ApprovedAt, &req.ApprovalNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.ApprovalRequest{}, approval.ErrRequestNotFound
		}
		return approval.ApprovalRequest{}, fmt.Errorf("failed to scan approval request: %w", err)
	}

	if len(changeJSON) > 0 {
		if err := json.Unmarshal(changeJSON, &req.Change); err != nil {
			return approval.ApprovalRequest{}, fmt.Errorf("failed to decode availability change: %w", err)
		}
	}

	return req, nil
}

// Create implements approval.ApprovalRequestRepository.
func (r *approvalRequestRepository) Create(ctx context.Context, request approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	var changeJSON []byte
	if request.Change != nil {
		var err error
		changeJSON, err = json.Marshal(request.Change)
		if err != nil {
			return approval.ApprovalRequest{}, fmt.Errorf("failed to encode availability change: %w", err)
		}
	}

	query := `
		INSERT INTO approval_requests (
			id, type, employee_id, time_entry_id, reason, change, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		request.ID,
		request.Type,
		request.EmployeeID,
		request.TimeEntryID,
		request.Reason,
		changeJSON,
		request.Status,
		request.RequestedAt,
	)
	if err != nil {
		return approval.ApprovalRequest{}, fmt.Errorf("failed to create approval request: %w", err)
	}

	return request, nil
}

// GetByID implements approval.ApprovalRequestRepository.
func (r *approvalRequestRepository) GetByID(ctx context.Context, id string) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests a
		WHERE a.id = $1
	`
	if InTransaction(ctx) {
		query += ` FOR UPDATE`
	}

	return scanApprovalRequest(q.QueryRow(ctx, query, id))
}

// ListPending implements approval.ApprovalRequestRepository.
func (r *approvalRequestRepository) ListPending(ctx context.Context) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests a
		WHERE a.status = 'PENDING'
		ORDER BY a.requested_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approval requests: %w", err)
	}
	defer rows.Close()

	return collectApprovalRequests(rows)
}

// ListByEmployee implements approval.ApprovalRequestRepository.
func (r *approvalRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests a
		WHERE a.employee_id = $1
		ORDER BY a.requested_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}
	defer rows.Close()

	return collectApprovalRequests(rows)
}

// Update implements approval.ApprovalRequestRepository.
func (r *approvalRequestRepository) Update(ctx context.Context, request approval.ApprovalRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE approval_requests
		SET status = $2,
			approved_by = $3,
			approved_at = $4,
			approval_notes = $5
		WHERE id = $1
	`,
		request.ID,
		request.Status,
		request.ApprovedBy,
		request.ApprovedAt,
		request.ApprovalNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to update approval request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrRequestNotFound
	}

	return nil
}

func collectApprovalRequests(rows pgx.Rows) ([]approval.ApprovalRequest, error) {
	var requests []approval.ApprovalRequest
	for rows.Next() {
		req, err := scanApprovalRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approval requests: %w", err)
	}
	return requests, nil
}
