package adapta_test

import (
	"context"
	"testing"

	"github.com/automkit/adapta"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Integration(t *testing.T) {
	eng := adapta.New()

	// Submachine: accepts a single "x".
	subStart := domain.NewState("sub-start")
	subDone := domain.NewState("sub-done")
	subDone.SetAcceptState()
	subStart.CreateTransitionTo(subDone, domain.NewConditionSet("x"), nil)
	eng.Register("single-x", subStart)

	// Main machine: "a", then delegate to the submachine, then "z".
	start := domain.NewState("start")
	mid := domain.NewState("mid")
	ret := domain.NewState("ret")
	done := domain.NewState("done")
	done.SetAcceptState()
	start.CreateTransitionTo(mid, domain.NewConditionSet("a"), nil)
	mid.CreateMachineCallTo(ret, domain.NewConditionSet("c"), "single-x", nil, nil)
	ret.CreateTransitionTo(done, domain.NewConditionSet("z"), nil)
	eng.Register("main", start)

	ctx := context.Background()
	res, err := eng.Run(ctx, "main", []string{"a", "c", "x", "z"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)
	assert.Equal(t, "done", res.Final.Name)
	assert.Equal(t, 4, res.Consumed)
}

func TestFacade_AdaptiveRunsShareTopology(t *testing.T) {
	eng := adapta.New()

	a := domain.NewState("A")
	end := domain.NewState("end")
	end.SetAcceptState()

	var once *domain.Transition
	once = domain.NewTransition(a, end, domain.NewConditionSet("a"),
		domain.ActionFunc(func(ctx context.Context, inv domain.Invocation) error {
			inv.Source.RemoveTransition(once)
			return nil
		}))
	a.AddTransition(once)
	eng.Register("one-shot", a)

	ctx := context.Background()

	res, err := eng.Run(ctx, "one-shot", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	// Registered graphs are shared, so the first run used up the edge.
	res, err = eng.Run(ctx, "one-shot", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStuck, res.Outcome)
}

func TestFacade_UnknownMachine(t *testing.T) {
	eng := adapta.New()

	_, err := eng.Run(context.Background(), "ghost", nil)
	require.ErrorIs(t, err, domain.ErrMachineNotFound)
}
