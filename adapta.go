package adapta

import (
	"context"
	"log/slog"

	"github.com/automkit/adapta/internal/logging"
	"github.com/automkit/adapta/internal/runtime"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/registry"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// Engine is the high-level entry point for the Adapta library.
// It wraps the internal runtime and a machine registry and provides a
// simplified API for consumers.
type Engine struct {
	registry    *registry.Registry
	runtime     *runtime.Engine
	logger      *slog.Logger
	hooks       domain.LifecycleHooks
	runtimeOpts []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxSteps bounds the number of fired transitions per run.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxSteps(n))
	}
}

// WithMaxCallDepth bounds submachine recursion per run.
func WithMaxCallDepth(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxCallDepth(n))
	}
}

// New initializes a new Adapta Engine with an empty machine registry.
func New(opts ...Option) *Engine {
	eng := &Engine{
		registry: registry.New(),
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)

	eng.runtime = runtime.NewEngine(eng.registry, runtimeOpts...)
	return eng
}

// Register adds a machine under the given name, overwriting any previous
// registration. The state graph reachable from start is used as-is; the
// engine never copies it, so adaptive mutations persist across runs.
func (e *Engine) Register(name string, start *domain.State) {
	e.registry.Register(name, start)
}

// Run executes the named machine over the input sequence.
func (e *Engine) Run(ctx context.Context, machine string, input []string) (*domain.Result, error) {
	return e.runtime.Run(ctx, machine, input)
}

// Registry returns the underlying machine registry, e.g. for sharing it with
// transport adapters.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}
