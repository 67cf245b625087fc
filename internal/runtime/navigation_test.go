package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/automkit/adapta/internal/runtime"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The adaptive core: an action fired on the first "a" removes its own
// transition, so the same symbol resolves differently later in the run.
func TestEngine_Run_SelfRemovingTransition(t *testing.T) {
	reg := registry.New()

	a := domain.NewState("A")
	end := domain.NewState("end")
	end.SetAcceptState()

	var once *domain.Transition
	removeSelf := domain.ActionFunc(func(ctx context.Context, inv domain.Invocation) error {
		inv.Source.RemoveTransition(once)
		return nil
	})

	// "a" loops back to A exactly once; afterwards A only knows "b".
	once = domain.NewTransition(a, a, domain.NewConditionSet("a"), removeSelf)
	a.AddTransition(once)
	a.CreateTransitionTo(end, domain.NewConditionSet("b"), nil)
	reg.Register("adaptive", a)

	eng := runtime.NewEngine(reg)

	res, err := eng.Run(context.Background(), "adaptive", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)

	// The topology mutation persisted: a second "a" now gets stuck.
	res, err = eng.Run(context.Background(), "adaptive", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStuck, res.Outcome)
}

func TestEngine_Run_ActionAddsTransitionMidRun(t *testing.T) {
	reg := registry.New()

	a := domain.NewState("A")
	end := domain.NewState("end")
	end.SetAcceptState()

	learn := domain.ActionFunc(func(ctx context.Context, inv domain.Invocation) error {
		inv.Source.AddTransition(domain.NewTransition(inv.Source, end, domain.NewConditionSet("q"), nil))
		return nil
	})
	a.CreateTransitionTo(a, domain.NewConditionSet("a"), learn)
	reg.Register("learner", a)

	eng := runtime.NewEngine(reg)

	// Without the teaching symbol, "q" is unknown.
	res, err := eng.Run(context.Background(), "learner", []string{"q"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStuck, res.Outcome)

	// After "a" fires, "q" is a live transition within the same run.
	res, err = eng.Run(context.Background(), "learner", []string{"a", "q"})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)
}

func TestEngine_Run_RouterOverridesAlternateDestination(t *testing.T) {
	reg := registry.New()

	a := domain.NewState("A")
	declared := domain.NewState("declared")
	override := domain.NewState("override")
	override.SetAcceptState()

	route := domain.RouteFunc(func(ctx context.Context, inv domain.Invocation) (*domain.State, error) {
		return override, nil
	})
	a.SetAlternateTransition(declared, route)
	reg.Register("routed", a)

	eng := runtime.NewEngine(reg)
	res, err := eng.Run(context.Background(), "routed", []string{"z"})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)
	assert.Equal(t, "override", res.Final.Name)
}

func TestEngine_Run_ActionErrorIsWrapped(t *testing.T) {
	reg := registry.New()

	boom := errors.New("boom")
	a := domain.NewState("A")
	b := domain.NewState("B")
	a.CreateTransitionTo(b, domain.NewConditionSet("a"), domain.ActionFunc(func(ctx context.Context, inv domain.Invocation) error {
		return boom
	}))
	reg.Register("failing", a)

	eng := runtime.NewEngine(reg)
	_, err := eng.Run(context.Background(), "failing", []string{"a"})
	require.Error(t, err)

	var actionErr *runtime.ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "A", actionErr.State.Name)
	assert.ErrorIs(t, err, boom)
}

func TestEngine_Run_StepLimit(t *testing.T) {
	reg := registry.New()

	// Two states bouncing on alternates never consume input.
	a := domain.NewState("A")
	b := domain.NewState("B")
	a.SetAlternateTransition(b, nil)
	b.SetAlternateTransition(a, nil)
	reg.Register("pingpong", a)

	eng := runtime.NewEngine(reg, runtime.WithMaxSteps(10))
	_, err := eng.Run(context.Background(), "pingpong", []string{"never-matches"})
	require.Error(t, err)

	var limitErr *runtime.StepLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 10, limitErr.Limit)
}

func TestEngine_Run_CallDepthLimit(t *testing.T) {
	reg := registry.New()

	// "recur" calls itself on every "x".
	start := domain.NewState("start")
	dest := domain.NewState("dest")
	dest.SetAcceptState()
	start.CreateMachineCallTo(dest, domain.NewConditionSet("x"), "recur", nil, nil)
	reg.Register("recur", start)

	eng := runtime.NewEngine(reg, runtime.WithMaxCallDepth(3))
	input := []string{"x", "x", "x", "x", "x", "x", "x", "x"}
	_, err := eng.Run(context.Background(), "recur", input)
	require.Error(t, err)

	var depthErr *runtime.CallDepthError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 3, depthErr.Limit)
}

func TestEngine_Run_EmitsLifecycleHooks(t *testing.T) {
	reg := registry.New()

	mStart := domain.NewState("m-start")
	mStart.SetAcceptState()
	reg.Register("M", mStart)

	a := domain.NewState("A")
	b := domain.NewState("B")
	end := domain.NewState("end")
	end.SetAcceptState()
	a.CreateTransitionTo(b, domain.NewConditionSet("a"), nil)
	b.CreateMachineCallTo(end, domain.NewConditionSet("m"), "M", nil, nil)
	reg.Register("observed", a)

	var enters, fires, calls, returns int
	hooks := domain.LifecycleHooks{
		OnStateEnter:      func(ctx context.Context, e *domain.StateEvent) { enters++ },
		OnTransitionFired: func(ctx context.Context, e *domain.TransitionEvent) { fires++ },
		OnMachineCalled: func(ctx context.Context, e *domain.MachineCallEvent) {
			calls++
			assert.Equal(t, "M", e.Callee)
		},
		OnMachineReturned: func(ctx context.Context, e *domain.MachineCallEvent) {
			returns++
			assert.Equal(t, domain.OutcomeAccepted, e.Outcome)
		},
	}

	eng := runtime.NewEngine(reg, runtime.WithLifecycleHooks(hooks))
	res, err := eng.Run(context.Background(), "observed", []string{"a", "m"})
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeAccepted, res.Outcome)

	// A, B, m-start (callee), end.
	assert.Equal(t, 4, enters)
	assert.Equal(t, 2, fires)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, returns)
}

func TestEngine_Run_ContextCancellation(t *testing.T) {
	reg := registry.New()
	a := domain.NewState("A")
	a.CreateTransitionTo(a, domain.NewConditionSet("a"), nil)
	reg.Register("loop", a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := runtime.NewEngine(reg)
	_, err := eng.Run(ctx, "loop", []string{"a", "a"})
	require.ErrorIs(t, err, context.Canceled)
}
