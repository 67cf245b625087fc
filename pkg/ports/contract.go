package ports

import (
	"context"
	"testing"
	"time"

	"github.com/automkit/adapta/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTraceStoreContract runs a suite of tests to verify that a TraceStore
// implementation adheres to the defined interface contract.
func RunTraceStoreContract(t *testing.T, store TraceStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	sample := func(machine string) *domain.Result {
		return &domain.Result{
			Machine:  machine,
			Outcome:  domain.OutcomeAccepted,
			Final:    domain.StateKey{Name: "done", Type: domain.StateAccept},
			Consumed: 2,
			Steps: []domain.Step{
				{Machine: machine, From: "start", To: "mid", Input: "a", Kind: "symbol"},
				{Machine: machine, From: "mid", To: "done", Input: "b", Kind: "symbol"},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		result := sample("greeting")

		err := store.Save(ctx, runID, result)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, result.Machine, loaded.Machine)
		assert.Equal(t, result.Outcome, loaded.Outcome)
		assert.Equal(t, result.Final, loaded.Final)
		assert.Equal(t, result.Consumed, loaded.Consumed)
		require.Len(t, loaded.Steps, 2)
		assert.Equal(t, result.Steps[0], loaded.Steps[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrTraceNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, sample("greeting"))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrTraceNotFound, "Load after Delete should return ErrTraceNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, sample("first"))
		_ = store.Save(ctx, id2, sample("second"))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
