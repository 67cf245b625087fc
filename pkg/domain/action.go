package domain

import "context"

// Invocation carries the context of a firing transition into an action:
// the source state (so the action can call AddTransition/RemoveTransition),
// the transition being fired, and the input symbol that selected it.
// Input is empty for alternate and epsilon firings.
type Invocation struct {
	Source     *State
	Transition *Transition
	Input      string
}

// Action is a side effect bound to a transition. It runs synchronously when
// the transition fires, before the engine moves to the destination, and may
// mutate the source state's edge lists.
type Action interface {
	Execute(ctx context.Context, inv Invocation) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ctx context.Context, inv Invocation) error

// Execute calls f.
func (f ActionFunc) Execute(ctx context.Context, inv Invocation) error {
	return f(ctx, inv)
}

// Router is the variant used on alternate transitions whose action yields an
// explicit next state. When the returned state is non-nil it overrides the
// transition's declared destination. Ordinary and machine-call actions are
// pure side effects and never implement it.
type Router interface {
	Action
	NextState(ctx context.Context, inv Invocation) (*State, error)
}

// RouteFunc adapts a function to the Router interface. Execute is a no-op;
// the routing decision is the whole effect.
type RouteFunc func(ctx context.Context, inv Invocation) (*State, error)

// Execute implements Action. It is a no-op: the engine invokes NextState on
// Router actions instead, so the routing function runs exactly once.
func (f RouteFunc) Execute(ctx context.Context, inv Invocation) error {
	return nil
}

// NextState implements Router.
func (f RouteFunc) NextState(ctx context.Context, inv Invocation) (*State, error) {
	return f(ctx, inv)
}
