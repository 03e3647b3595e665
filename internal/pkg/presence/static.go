package presence

import (
	"context"
	"sync"

	domain "github.com/restoops/timeclock-backend-go/internal/domain/presence"
)

// StaticGate is a settable in-memory gate used in tests and when running
// without a location source.
type StaticGate struct {
	mu      sync.RWMutex
	current domain.Presence
}

func NewStaticGate(initial domain.Presence) *StaticGate {
	return &StaticGate{current: initial}
}

func (g *StaticGate) Current(ctx context.Context) (domain.Presence, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current, nil
}

func (g *StaticGate) Set(p domain.Presence) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = p
}

// SetVerified toggles only the verified flag, keeping location fields.
func (g *StaticGate) SetVerified(verified bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current.Verified = verified
}
