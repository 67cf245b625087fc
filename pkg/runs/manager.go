package runs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/automkit/adapta/internal/logging"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager coordinates run execution and trace persistence. A per-run-ID lock
// (local, plus an optional distributed locker for multi-replica deployments)
// guarantees a run ID is only ever written by one executor at a time.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	runner ports.Runner
	store  ports.TraceStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL overrides the distributed lock TTL.
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a new run Manager.
func NewManager(runner ports.Runner, store ports.TraceStore, opts ...Option) *Manager {
	m := &Manager{
		runner:  runner,
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: 30 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(runID) after
// unlocking.
func (m *Manager) acquire(runID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[runID]
	if !exists {
		entry = &lockEntry{}
		m.locks[runID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches
// zero.
func (m *Manager) release(runID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[runID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, runID)
	}
}

// Execute runs the named machine over the input under the run's lock and
// persists the resulting trace.
func (m *Manager) Execute(ctx context.Context, runID, machine string, input []string) (*domain.Result, error) {
	var result *domain.Result
	err := m.WithLock(ctx, runID, func(ctx context.Context) error {
		var err error
		result, err = m.runner.Run(ctx, machine, input)
		if err != nil {
			return err
		}
		if err := m.store.Save(ctx, runID, result); err != nil {
			return fmt.Errorf("failed to persist trace: %w", err)
		}
		return nil
	})
	return result, err
}

// Trace retrieves a stored run trace.
func (m *Manager) Trace(ctx context.Context, runID string) (*domain.Result, error) {
	var result *domain.Result
	err := m.WithLock(ctx, runID, func(ctx context.Context) error {
		var err error
		result, err = m.store.Load(ctx, runID)
		return err
	})
	return result, err
}

// Delete removes the trace from the store.
func (m *Manager) Delete(ctx context.Context, runID string) error {
	return m.WithLock(ctx, runID, func(ctx context.Context) error {
		return m.store.Delete(ctx, runID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying trace store.
func (m *Manager) Store() ports.TraceStore {
	return m.store
}

// WithLock executes a function while holding the lock for the run.
func (m *Manager) WithLock(ctx context.Context, runID string, fn func(context.Context) error) error {
	entry := m.acquire(runID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(runID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, runID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"run_id", runID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
