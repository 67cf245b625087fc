package runs_test

import (
	"context"
	"sync"
	"testing"

	"github.com/automkit/adapta/internal/runtime"
	"github.com/automkit/adapta/pkg/adapters/memory"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/registry"
	"github.com/automkit/adapta/pkg/runs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) *runtime.Engine {
	t.Helper()

	reg := registry.New()
	a := domain.NewState("A")
	b := domain.NewState("B")
	b.SetAcceptState()
	a.CreateTransitionTo(b, domain.NewConditionSet("a"), nil)
	reg.Register("word", a)

	return runtime.NewEngine(reg)
}

func TestManager_ExecutePersistsTrace(t *testing.T) {
	store := memory.NewStore()
	mgr := runs.NewManager(newTestRunner(t), store)

	ctx := context.Background()
	result, err := mgr.Execute(ctx, "run-1", "word", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, result.Outcome)

	stored, err := mgr.Trace(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, result.Outcome, stored.Outcome)
	assert.Equal(t, result.Final, stored.Final)

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "run-1")
}

func TestManager_ExecuteUnknownMachineDoesNotPersist(t *testing.T) {
	store := memory.NewStore()
	mgr := runs.NewManager(newTestRunner(t), store)

	ctx := context.Background()
	_, err := mgr.Execute(ctx, "run-x", "ghost", []string{"a"})
	require.ErrorIs(t, err, domain.ErrMachineNotFound)

	_, err = mgr.Trace(ctx, "run-x")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestManager_Delete(t *testing.T) {
	store := memory.NewStore()
	mgr := runs.NewManager(newTestRunner(t), store)

	ctx := context.Background()
	_, err := mgr.Execute(ctx, "run-1", "word", []string{"a"})
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, "run-1"))
	_, err = mgr.Trace(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrTraceNotFound)
}

func TestManager_ConcurrentExecutesAreSerialized(t *testing.T) {
	store := memory.NewStore()
	mgr := runs.NewManager(newTestRunner(t), store)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mgr.Execute(ctx, "shared-run", "word", []string{"a"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := mgr.Trace(ctx, "shared-run")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, stored.Outcome)
}
