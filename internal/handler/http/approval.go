package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/approval"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/response"
)

type ApprovalHandler interface {
	SubmitAvailabilityChange(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{
		approvalService: approvalService,
	}
}

// SubmitAvailabilityChange implements ApprovalHandler.
func (h *approvalHandlerImpl) SubmitAvailabilityChange(w http.ResponseWriter, r *http.Request) {
	var req approval.SubmitAvailabilityChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.approvalService.SubmitAvailabilityChange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Availability change submitted for approval", result)
}

// Resolve implements ApprovalHandler. Manager surface.
func (h *approvalHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req approval.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	result, err := h.approvalService.Resolve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Approval request denied"
	if req.Approved {
		message = "Approval request approved"
	}
	response.SuccessWithMessage(w, message, result)
}

// ListPending implements ApprovalHandler. Manager surface.
func (h *approvalHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.approvalService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements ApprovalHandler.
func (h *approvalHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.approvalService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
