package ports

import (
	"context"

	"github.com/automkit/adapta/pkg/domain"
)

// Runner defines the interface for executing a named machine over an input
// sequence. This is the primary interface used by adapters (HTTP, CLI) and
// by the run manager, which coordinate state externally or per-request.
type Runner interface {
	Run(ctx context.Context, machine string, input []string) (*domain.Result, error)
}
