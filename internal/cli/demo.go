package cli

import (
	"context"

	"github.com/automkit/adapta"
	"github.com/automkit/adapta/pkg/domain"
)

// RegisterDemoMachines registers a small set of machines that exercise the
// engine's features: plain word recognition, a submachine call and an
// adaptive one-shot edge.
func RegisterDemoMachines(eng *adapta.Engine) {
	eng.Register("ab-word", buildABWord())
	eng.Register("digits", buildDigits())
	eng.Register("number", buildNumber())
	eng.Register("one-shot", buildOneShot())
}

// buildABWord recognizes words of the form a+b.
func buildABWord() *domain.State {
	sawA := domain.NewState("saw-a")
	start := domain.NewState("start")
	done := domain.NewState("done")
	done.SetAcceptState()

	start.CreateTransitionTo(sawA, domain.NewConditionSet("a"), nil)
	sawA.CreateTransitionTo(sawA, domain.NewConditionSet("a"), nil)
	sawA.CreateTransitionTo(done, domain.NewConditionSet("b"), nil)
	return start
}

// buildDigits recognizes one or more decimal digits.
func buildDigits() *domain.State {
	digits := domain.NewConditionSet("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")

	start := domain.NewState("start")
	loop := domain.NewState("digit")
	loop.SetAcceptState()

	start.CreateTransitionTo(loop, digits, nil)
	loop.CreateTransitionTo(loop, digits, nil)
	return start
}

// buildNumber recognizes "#" followed by digits, delegating the digit run to
// the digits machine.
func buildNumber() *domain.State {
	start := domain.NewState("start")
	ret := domain.NewState("after-digits")
	ret.SetAcceptState()

	start.CreateMachineCallTo(ret, domain.NewConditionSet("#"), "digits", nil, nil)
	return start
}

// buildOneShot accepts "go" exactly once: the action removes the edge it
// rode in on, so the second run through the shared graph gets stuck.
func buildOneShot() *domain.State {
	start := domain.NewState("armed")
	done := domain.NewState("fired")
	done.SetAcceptState()

	var edge *domain.Transition
	edge = domain.NewTransition(start, done, domain.NewConditionSet("go"),
		domain.ActionFunc(func(ctx context.Context, inv domain.Invocation) error {
			inv.Source.RemoveTransition(edge)
			return nil
		}))
	start.AddTransition(edge)
	return start
}
