package memory_test

import (
	"context"
	"testing"

	"github.com/automkit/adapta/pkg/adapters/memory"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunTraceStoreContract(t, memory.NewStore())
}

func TestMemoryStore_IsolatesStoredData(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	result := &domain.Result{
		Machine: "m",
		Outcome: domain.OutcomeAccepted,
		Steps:   []domain.Step{{Machine: "m", From: "a", To: "b", Kind: "symbol"}},
	}
	require.NoError(t, store.Save(ctx, "run-1", result))

	// Mutating the original after Save must not leak into the store.
	result.Steps[0].To = "tampered"

	loaded, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "b", loaded.Steps[0].To)

	// Mutating a loaded copy must not change subsequent loads.
	loaded.Steps[0].From = "tampered"
	again, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Steps[0].From)
}
