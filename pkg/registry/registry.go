package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/automkit/adapta/pkg/domain"
)

// Registry manages the pool of named machines. It maps a machine name to the
// start state of its graph and resolves machine-call names for the engine.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*domain.State
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		machines: make(map[string]*domain.State),
	}
}

// Register adds a machine under the given name.
// If a machine with the same name exists, it is overwritten.
func (r *Registry) Register(name string, start *domain.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[name] = start
}

// Resolve returns the start state of the named machine.
// Unknown names surface as domain.ErrMachineNotFound so callers can
// distinguish "call target not found" from ordinary no-match results.
func (r *Registry) Resolve(name string) (*domain.State, error) {
	r.mu.RLock()
	start, ok := r.machines[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, name)
	}
	return start, nil
}

// Names returns the registered machine names, sorted for determinism.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.machines))
	for name := range r.machines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
