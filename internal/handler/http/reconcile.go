package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/reconcile"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/response"
)

type ReconcileHandler interface {
	Respond(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type reconcileHandlerImpl struct {
	reconcileService reconcile.ReconcileService
}

func NewReconcileHandler(reconcileService reconcile.ReconcileService) ReconcileHandler {
	return &reconcileHandlerImpl{
		reconcileService: reconcileService,
	}
}

// Respond implements ReconcileHandler.
func (h *reconcileHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req reconcile.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.NudgeID = chi.URLParam(r, "id")

	result, err := h.reconcileService.Respond(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Your entry has been flagged for manager review"
	if req.Answer == reconcile.AnswerYes {
		message = "Your time entry has been closed"
	}
	response.SuccessWithMessage(w, message, result)
}

// ListMine implements ReconcileHandler.
func (h *reconcileHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconcileService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
