package presence

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
)

// ErrNoLocationReported is returned when no device position has been
// reported yet, or the last report is older than the freshness window.
var ErrNoLocationReported = errors.New("no fresh device location reported")

// ReportedSource is a LocationSource fed by the clock-in device itself: the
// client posts its position periodically and the gate reads the last fresh
// report.
type ReportedSource struct {
	mu         sync.RWMutex
	clock      clock.Clock
	maxAge     time.Duration
	last       Coordinates
	reportedAt time.Time
}

func NewReportedSource(clk clock.Clock, maxAge time.Duration) *ReportedSource {
	return &ReportedSource{clock: clk, maxAge: maxAge}
}

// Report records the device position.
func (s *ReportedSource) Report(latitude, longitude float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Coordinates{Latitude: latitude, Longitude: longitude}
	s.reportedAt = s.clock.Now()
}

func (s *ReportedSource) Current(ctx context.Context) (Coordinates, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.reportedAt.IsZero() || s.clock.Now().Sub(s.reportedAt) > s.maxAge {
		return Coordinates{}, ErrNoLocationReported
	}
	return s.last, nil
}
