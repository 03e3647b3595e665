// Package presence defines the on-premises verification boundary. The core
// treats the gate as an opaque precondition: it never embeds its own network
// or location logic.
package presence

import "context"

// Presence is the current on-premises signal for the requesting device.
type Presence struct {
	Verified     bool
	LocationID   string
	LocationName string
	Confidence   float64 // 0.0 - 1.0
}

// Gate supplies the on-premises signal. Polled synchronously before every
// clock action and periodically by the reconciliation engine.
type Gate interface {
	Current(ctx context.Context) (Presence, error)
}
