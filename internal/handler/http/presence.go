package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/restoops/timeclock-backend-go/internal/domain/presence"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/response"
	"github.com/restoops/timeclock-backend-go/internal/pkg/presence"
)

type PresenceHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
}

type reportLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type presenceResponse struct {
	Verified     bool    `json:"verified"`
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	Confidence   float64 `json:"confidence"`
}

type presenceHandlerImpl struct {
	gate   domain.Gate
	source *presence.ReportedSource
}

// NewPresenceHandler creates the presence handler. The source is nil when
// the gate is not fed by device reports; Report then rejects.
func NewPresenceHandler(gate domain.Gate, source *presence.ReportedSource) PresenceHandler {
	return &presenceHandlerImpl{
		gate:   gate,
		source: source,
	}
}

// Report implements PresenceHandler. The clock-in device posts its position
// here; the gate evaluates it against the premises geofence.
func (h *presenceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		response.BadRequest(w, "Location reporting is not enabled", nil)
		return
	}

	var req reportLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	h.source.Report(req.Latitude, req.Longitude)

	current, err := h.gate.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPresenceResponse(current))
}

// Current implements PresenceHandler.
func (h *presenceHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	current, err := h.gate.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toPresenceResponse(current))
}

func toPresenceResponse(p domain.Presence) presenceResponse {
	return presenceResponse{
		Verified:     p.Verified,
		LocationID:   p.LocationID,
		LocationName: p.LocationName,
		Confidence:   p.Confidence,
	}
}
