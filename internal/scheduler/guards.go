package scheduler

import "sync"

// Guarded operation classes. Each one rejects a concurrent duplicate
// invocation instead of queuing it.
const (
	OpUpdatePrices     = "updatePrices"
	OpUpdateVisibility = "updateVisibilityByFilters"
	OpEnableExtension  = "enableExtension"
	OpDisableExtension = "disableExtension"
)

// GuardRegistry is a single-flight registry keyed by operation name.
// Each operation moves Idle -> InFlight -> Idle; TryAcquire fails while
// InFlight. Callers must release in a final step regardless of outcome.
type GuardRegistry struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewGuardRegistry() *GuardRegistry {
	return &GuardRegistry{inFlight: make(map[string]bool)}
}

// TryAcquire moves an operation to InFlight, reporting false if it
// already is.
func (g *GuardRegistry) TryAcquire(op string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[op] {
		return false
	}
	g.inFlight[op] = true
	return true
}

// Release returns an operation to Idle.
func (g *GuardRegistry) Release(op string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight[op] = false
}

// InFlight reports whether an operation is currently running.
func (g *GuardRegistry) InFlight(op string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inFlight[op]
}
