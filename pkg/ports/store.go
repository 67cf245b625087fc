package ports

import (
	"context"

	"github.com/automkit/adapta/pkg/domain"
)

// TraceStore defines the interface for persisting run results.
// It enables auditing and replay of past runs by run ID.
type TraceStore interface {
	// Save persists the result for a given run ID.
	Save(ctx context.Context, runID string, result *domain.Result) error

	// Load retrieves the result for a given run ID.
	// Returns domain.ErrTraceNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.Result, error)

	// Delete removes the result for a given run ID.
	Delete(ctx context.Context, runID string) error

	// List returns the stored run IDs.
	List(ctx context.Context) ([]string, error)
}
