package schedule

import (
	"math"
	"time"
)

// Grace period around a scheduled shift boundary inside which a clock event
// requires no manager approval.
const (
	GracePeriodBefore = 5 * time.Minute
	GracePeriodAfter  = 5 * time.Minute
)

// GraceStatus classifies one observed clock event against one shift boundary.
// Exactly one of WithinGrace, Early, Late is true.
type GraceStatus struct {
	WithinGrace    bool `json:"within_grace"`
	Early          bool `json:"early"`
	Late           bool `json:"late"`
	MinutesEarly   int  `json:"minutes_early"`
	MinutesLate    int  `json:"minutes_late"`
	TimeDifference int  `json:"time_difference"` // signed minutes, observed minus boundary
}

// EvaluateGrace classifies observed against the HH:MM boundary anchored on
// observed's calendar day. The boundary is inclusive: exactly 5 minutes early
// or late is still within grace.
func EvaluateGrace(boundary string, observed time.Time) GraceStatus {
	boundaryAt := BoundaryOn(observed, boundary)
	diff := int(math.Round(observed.Sub(boundaryAt).Minutes()))

	before := int(GracePeriodBefore.Minutes())
	after := int(GracePeriodAfter.Minutes())

	status := GraceStatus{TimeDifference: diff}
	switch {
	case diff < -before:
		status.Early = true
		status.MinutesEarly = -diff
	case diff > after:
		status.Late = true
		status.MinutesLate = diff
	default:
		status.WithinGrace = true
	}
	return status
}
