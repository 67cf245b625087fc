package ports

import "github.com/automkit/adapta/pkg/domain"

// MachineResolver defines how the engine resolves a machine-call name to the
// called machine's start state. The core carries names without validating
// them; an unknown name must surface as domain.ErrMachineNotFound.
type MachineResolver interface {
	Resolve(name string) (*domain.State, error)
}
