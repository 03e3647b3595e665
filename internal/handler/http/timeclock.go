package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/restoops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetMyEntries(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type timeClockHandlerImpl struct {
	timeClockService timeclock.TimeClockService
}

func NewTimeClockHandler(timeClockService timeclock.TimeClockService) TimeClockHandler {
	return &timeClockHandlerImpl{
		timeClockService: timeClockService,
	}
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

func entryFilterFromQuery(r *http.Request) timeclock.EntryFilter {
	q := r.URL.Query()
	return timeclock.EntryFilter{
		EmployeeID: q.Get("employee_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Status:     q.Get("status"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 20),
	}
}

// ClockIn implements TimeClockHandler.
func (h *timeClockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeclock.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeClockService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// ClockOut implements TimeClockHandler.
func (h *timeClockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timeclock.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeClockService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// GetStatus implements TimeClockHandler.
func (h *timeClockHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeClockService.GetStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyEntries implements TimeClockHandler.
func (h *timeClockHandlerImpl) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	filter := entryFilterFromQuery(r)
	filter.EmployeeID = "" // scoped to the caller by the service

	result, err := h.timeClockService.GetMyEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// List implements TimeClockHandler. Manager surface.
func (h *timeClockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeClockService.ListEntries(r.Context(), entryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
