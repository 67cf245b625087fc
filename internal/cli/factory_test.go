package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automkit/adapta/pkg/domain"
)

func TestNewApp_DemoMachinesRunnable(t *testing.T) {
	app, err := NewApp(DefaultConfig())
	require.NoError(t, err)
	defer app.Close()

	ctx := context.Background()

	res, err := app.Manager.Execute(ctx, "run-1", "ab-word", []string{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	res, err = app.Engine.Run(ctx, "number", []string{"#", "4", "2"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	// The one-shot machine mutates its own graph on first use.
	res, err = app.Engine.Run(ctx, "one-shot", []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	res, err = app.Engine.Run(ctx, "one-shot", []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStuck, res.Outcome)
}

func TestRenderResult(t *testing.T) {
	app, err := NewApp(DefaultConfig())
	require.NoError(t, err)
	defer app.Close()

	res, err := app.Engine.Run(context.Background(), "ab-word", []string{"a", "b"})
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderResult(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "machine:  ab-word")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "steps:")
}
