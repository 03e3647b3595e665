// Package presence provides the pluggable implementations of the
// presence.Gate boundary: a geofence check against the restaurant premises
// and an in-memory gate for tests and local simulation.
package presence

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/restoops/timeclock-backend-go/internal/domain/presence"
	"github.com/restoops/timeclock-backend-go/internal/pkg/geo"
)

// Coordinates is the last reported device position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// LocationSource reports the current device position. Implementations wrap
// whatever the client platform provides (browser geolocation report, mobile
// SDK, network-derived position).
type LocationSource interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Premises describes the restaurant geofence.
type Premises struct {
	LocationID   string
	LocationName string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// GeofenceGate verifies presence by haversine distance between the reported
// device position and the premises center.
type GeofenceGate struct {
	premises Premises
	source   LocationSource
}

func NewGeofenceGate(premises Premises, source LocationSource) *GeofenceGate {
	return &GeofenceGate{premises: premises, source: source}
}

func (g *GeofenceGate) Current(ctx context.Context) (domain.Presence, error) {
	pos, err := g.source.Current(ctx)
	if errors.Is(err, ErrNoLocationReported) {
		// A silent device is off premises, not a failure.
		return domain.Presence{
			LocationID:   g.premises.LocationID,
			LocationName: g.premises.LocationName,
		}, nil
	}
	if err != nil {
		return domain.Presence{}, fmt.Errorf("failed to read device location: %w", err)
	}

	distance := geo.HaversineDistance(pos.Latitude, pos.Longitude, g.premises.Latitude, g.premises.Longitude)
	verified := distance <= g.premises.RadiusMeters

	// Confidence decays linearly toward the fence edge.
	confidence := 1.0 - distance/g.premises.RadiusMeters
	if confidence < 0 {
		confidence = 0
	}

	return domain.Presence{
		Verified:     verified,
		LocationID:   g.premises.LocationID,
		LocationName: g.premises.LocationName,
		Confidence:   confidence,
	}, nil
}
