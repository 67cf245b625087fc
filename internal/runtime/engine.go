package runtime

import (
	"fmt"
	"log/slog"

	"github.com/automkit/adapta/internal/logging"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/ports"
)

const (
	// DefaultMaxSteps bounds the number of fired transitions per run. The
	// core has no built-in cancellation, so the engine caps alternate-edge
	// cycles and runaway adaptive growth.
	DefaultMaxSteps = 10000

	// DefaultMaxCallDepth bounds submachine recursion.
	DefaultMaxCallDepth = 64
)

// Engine drives the traversal of adaptive automata. It holds no per-run
// state: each Run call resolves a start state from the resolver and walks it
// against the input sequence.
type Engine struct {
	resolver ports.MachineResolver
	logger   *slog.Logger
	hooks    domain.LifecycleHooks

	maxSteps     int
	maxCallDepth int
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxSteps overrides the fired-transition budget per run.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithMaxCallDepth overrides the submachine recursion budget.
func WithMaxCallDepth(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxCallDepth = n
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(resolver ports.MachineResolver, opts ...EngineOption) *Engine {
	e := &Engine{
		resolver:     resolver,
		logger:       logging.NewNop(),
		maxSteps:     DefaultMaxSteps,
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StepLimitError reports a run that exceeded its fired-transition budget.
type StepLimitError struct {
	Machine string
	Limit   int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("machine %q exceeded the step limit of %d", e.Machine, e.Limit)
}

// CallDepthError reports submachine recursion past the configured budget.
type CallDepthError struct {
	Machine string
	Limit   int
}

func (e *CallDepthError) Error() string {
	return fmt.Sprintf("machine %q exceeded the call depth limit of %d", e.Machine, e.Limit)
}

// ActionError wraps a failure raised by a user-supplied action.
type ActionError struct {
	Machine string
	State   domain.StateKey
	Err     error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action on state %s of machine %q: %v", e.State, e.Machine, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
