package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/automkit/adapta"
	"github.com/automkit/adapta/internal/logging"
	"github.com/automkit/adapta/pkg/adapters/memory"
	"github.com/automkit/adapta/pkg/adapters/redis"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/observability"
	"github.com/automkit/adapta/pkg/ports"
	"github.com/automkit/adapta/pkg/runs"
)

// App bundles the wired components behind the CLI commands.
type App struct {
	Config   Config
	Logger   *slog.Logger
	Engine   *adapta.Engine
	Manager  *runs.Manager
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer

	redisStore *redis.Store
}

// NewApp builds the engine, trace store and run manager from the config.
// Demo machines are registered so the CLI is usable out of the box.
func NewApp(cfg Config) (*App, error) {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	promReg := prometheus.NewRegistry()
	metrics := observability.New(promReg)

	engineOpts := []adapta.Option{
		adapta.WithLogger(logger),
		adapta.WithLifecycleHooks(metrics.Hooks()),
	}
	if cfg.MaxSteps > 0 {
		engineOpts = append(engineOpts, adapta.WithMaxSteps(cfg.MaxSteps))
	}
	if cfg.MaxCallDepth > 0 {
		engineOpts = append(engineOpts, adapta.WithMaxCallDepth(cfg.MaxCallDepth))
	}

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Engine:   adapta.New(engineOpts...),
		Metrics:  metrics,
		Gatherer: promReg,
	}
	RegisterDemoMachines(app.Engine)

	var store ports.TraceStore
	managerOpts := []runs.Option{runs.WithLogger(logger)}

	if cfg.Redis.Addr != "" {
		rstore := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		app.redisStore = rstore
		store = rstore
		managerOpts = append(managerOpts, runs.WithLocker(redis.NewLocker(rstore.Client(), "adapta:")))
		logger.Info("Using Redis trace store", "addr", cfg.Redis.Addr)
	} else {
		store = memory.NewStore()
		logger.Debug("Using in-memory trace store")
	}

	app.Manager = runs.NewManager(instrumentedRunner{app.Engine, metrics}, store, managerOpts...)
	return app, nil
}

// Close releases external resources.
func (a *App) Close() error {
	if a.redisStore != nil {
		return a.redisStore.Close()
	}
	return nil
}

// instrumentedRunner records run outcomes on the way through.
type instrumentedRunner struct {
	runner  ports.Runner
	metrics *observability.Metrics
}

func (r instrumentedRunner) Run(ctx context.Context, machine string, input []string) (*domain.Result, error) {
	result, err := r.runner.Run(ctx, machine, input)
	if err == nil {
		r.metrics.ObserveResult(result)
	}
	return result, err
}
