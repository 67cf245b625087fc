package runtime

import (
	"context"
	"time"

	"github.com/automkit/adapta/pkg/domain"
)

// runState accumulates the trace and the shared step budget of one Run call,
// across submachine frames.
type runState struct {
	steps []domain.Step
	count int
}

// Run executes the named machine over the input sequence and returns its
// result. Absence of a matching transition is never an error: it surfaces as
// OutcomeStuck. Errors are reserved for unresolvable machine names, failing
// actions, exceeded budgets, and context cancellation.
func (e *Engine) Run(ctx context.Context, machine string, input []string) (*domain.Result, error) {
	start, err := e.resolver.Resolve(machine)
	if err != nil {
		return nil, err
	}

	rs := &runState{}
	final, rest, outcome, err := e.runMachine(ctx, machine, start, input, 0, rs)
	if err != nil {
		return nil, err
	}

	result := &domain.Result{
		Machine:  machine,
		Outcome:  outcome,
		Final:    final.Key(),
		Consumed: len(input) - len(rest),
		Steps:    rs.steps,
	}

	e.logger.Debug("run finished",
		"machine", machine,
		"outcome", result.Outcome,
		"final", result.Final.String(),
		"consumed", result.Consumed,
		"steps", len(result.Steps))

	return result, nil
}

// runMachine walks one machine until it reaches a terminal classification,
// exhausts its input, or gets stuck. It returns the final state, the
// unconsumed input, and the outcome.
func (e *Engine) runMachine(ctx context.Context, machine string, start *domain.State, input []string, depth int, rs *runState) (*domain.State, []string, domain.Outcome, error) {
	if depth > e.maxCallDepth {
		return nil, nil, "", &CallDepthError{Machine: machine, Limit: e.maxCallDepth}
	}

	current := start
	e.emitStateEnter(ctx, machine, current)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, "", err
		}

		// Terminal classification ends the walk regardless of pending input.
		if current.IsErrorState() {
			return current, input, domain.OutcomeRejected, nil
		}
		if current.IsAcceptState() {
			return current, input, domain.OutcomeAccepted, nil
		}

		if len(input) == 0 {
			if e.epsilonAccepts(current) {
				return current, input, domain.OutcomeAccepted, nil
			}
			return current, input, domain.OutcomeRejected, nil
		}

		symbol := input[0]
		tr := current.ResolveTransition(symbol)

		if tr == nil {
			alt := current.AlternateTransition()
			if alt == nil {
				e.logger.Debug("no transition", "machine", machine, "state", current.String(), "input", symbol)
				return current, input, domain.OutcomeStuck, nil
			}
			next, err := e.fireAlternate(ctx, machine, current, alt, rs)
			if err != nil {
				return nil, nil, "", err
			}
			current = next
			e.emitStateEnter(ctx, machine, current)
			continue
		}

		if tr.IsMachineCall() {
			next, rest, outcome, err := e.callMachine(ctx, machine, current, tr, symbol, input[1:], depth, rs)
			if err != nil {
				return nil, nil, "", err
			}
			if outcome != domain.OutcomeAccepted {
				// A rejected or stuck callee ends the whole run where the
				// callee stopped.
				return next, rest, outcome, nil
			}
			input = rest
			current = tr.To
			e.emitStateEnter(ctx, machine, current)
			continue
		}

		if err := e.fireTransition(ctx, machine, current, tr, symbol, rs); err != nil {
			return nil, nil, "", err
		}
		input = input[1:]
		current = tr.To
		e.emitStateEnter(ctx, machine, current)
	}
}

// fireTransition executes the transition's action, then records the move.
// The action runs before the engine advances, so topology mutations it makes
// on the source state are in place for the next lookup.
func (e *Engine) fireTransition(ctx context.Context, machine string, source *domain.State, tr *domain.Transition, symbol string, rs *runState) error {
	if err := e.checkBudget(machine, rs); err != nil {
		return err
	}

	if tr.Action != nil {
		inv := domain.Invocation{Source: source, Transition: tr, Input: symbol}
		if err := tr.Action.Execute(ctx, inv); err != nil {
			return &ActionError{Machine: machine, State: source.Key(), Err: err}
		}
	}

	e.recordStep(ctx, machine, tr, symbol, rs)
	return nil
}

// fireAlternate fires the default edge without consuming input. A Router
// action may override the declared destination.
func (e *Engine) fireAlternate(ctx context.Context, machine string, source *domain.State, alt *domain.Transition, rs *runState) (*domain.State, error) {
	if err := e.checkBudget(machine, rs); err != nil {
		return nil, err
	}

	dest := alt.To
	if alt.Action != nil {
		inv := domain.Invocation{Source: source, Transition: alt}
		if router, ok := alt.Action.(domain.Router); ok {
			next, err := router.NextState(ctx, inv)
			if err != nil {
				return nil, &ActionError{Machine: machine, State: source.Key(), Err: err}
			}
			if next != nil {
				dest = next
			}
		} else if err := alt.Action.Execute(ctx, inv); err != nil {
			return nil, &ActionError{Machine: machine, State: source.Key(), Err: err}
		}
	}

	rs.steps = append(rs.steps, domain.Step{
		Machine: machine,
		From:    source.Name(),
		To:      dest.Name(),
		Kind:    domain.KindAlternate.String(),
	})
	e.emitTransitionFired(ctx, machine, source, dest, "", domain.KindAlternate)
	return dest, nil
}

// callMachine frames a submachine invocation: before action, recursive run on
// the remaining input, after action, then the caller resumes at the call's
// declared destination. The matched symbol is consumed by the call itself.
func (e *Engine) callMachine(ctx context.Context, machine string, source *domain.State, call *domain.Transition, symbol string, rest []string, depth int, rs *runState) (*domain.State, []string, domain.Outcome, error) {
	if err := e.checkBudget(machine, rs); err != nil {
		return nil, nil, "", err
	}

	subStart, err := e.resolver.Resolve(call.MachineName)
	if err != nil {
		return nil, nil, "", err
	}

	inv := domain.Invocation{Source: source, Transition: call, Input: symbol}
	if call.Before != nil {
		if err := call.Before.Execute(ctx, inv); err != nil {
			return nil, nil, "", &ActionError{Machine: machine, State: source.Key(), Err: err}
		}
	}

	e.emitMachineCalled(ctx, machine, source, call.MachineName)
	e.logger.Debug("machine called", "machine", machine, "callee", call.MachineName, "state", source.String())

	final, remaining, outcome, err := e.runMachine(ctx, call.MachineName, subStart, rest, depth+1, rs)
	if err != nil {
		return nil, nil, "", err
	}

	e.emitMachineReturned(ctx, machine, source, call.MachineName, outcome)

	if outcome == domain.OutcomeAccepted {
		if call.After != nil {
			if err := call.After.Execute(ctx, inv); err != nil {
				return nil, nil, "", &ActionError{Machine: machine, State: source.Key(), Err: err}
			}
		}
		rs.steps = append(rs.steps, domain.Step{
			Machine: machine,
			From:    source.Name(),
			To:      call.To.Name(),
			Input:   symbol,
			Kind:    domain.KindMachineCall.String(),
		})
		e.emitTransitionFired(ctx, machine, source, call.To, symbol, domain.KindMachineCall)
	}

	return final, remaining, outcome, nil
}

// epsilonAccepts reports whether the state or anything reachable from it via
// epsilon transitions is an accept state. Visited tracking makes epsilon
// cycles safe.
func (e *Engine) epsilonAccepts(s *domain.State) bool {
	visited := map[*domain.State]bool{}
	queue := []*domain.State{s}
	for len(queue) > 0 {
		st := queue[0]
		queue = queue[1:]
		if visited[st] {
			continue
		}
		visited[st] = true
		if st.IsAcceptState() {
			return true
		}
		queue = append(queue, st.NextEpsilonStates()...)
	}
	return false
}

func (e *Engine) checkBudget(machine string, rs *runState) error {
	rs.count++
	if rs.count > e.maxSteps {
		return &StepLimitError{Machine: machine, Limit: e.maxSteps}
	}
	return nil
}

func (e *Engine) recordStep(ctx context.Context, machine string, tr *domain.Transition, symbol string, rs *runState) {
	rs.steps = append(rs.steps, domain.Step{
		Machine: machine,
		From:    tr.From.Name(),
		To:      tr.To.Name(),
		Input:   symbol,
		Kind:    tr.Kind.String(),
	})
	e.emitTransitionFired(ctx, machine, tr.From, tr.To, symbol, tr.Kind)
	e.logger.Debug("transition fired",
		"machine", machine,
		"from", tr.From.String(),
		"to", tr.To.String(),
		"input", symbol,
		"kind", tr.Kind.String())
}

func (e *Engine) emitStateEnter(ctx context.Context, machine string, s *domain.State) {
	if e.hooks.OnStateEnter == nil {
		return
	}
	e.hooks.OnStateEnter(ctx, &domain.StateEvent{
		EventBase: eventBase(domain.EventStateEnter, machine),
		State:     s.Key(),
	})
}

func (e *Engine) emitTransitionFired(ctx context.Context, machine string, from, to *domain.State, input string, kind domain.TransitionKind) {
	if e.hooks.OnTransitionFired == nil {
		return
	}
	e.hooks.OnTransitionFired(ctx, &domain.TransitionEvent{
		EventBase: eventBase(domain.EventTransitionFired, machine),
		From:      from.Key(),
		To:        to.Key(),
		Input:     input,
		Kind:      kind,
	})
}

func (e *Engine) emitMachineCalled(ctx context.Context, machine string, caller *domain.State, callee string) {
	if e.hooks.OnMachineCalled == nil {
		return
	}
	e.hooks.OnMachineCalled(ctx, &domain.MachineCallEvent{
		EventBase: eventBase(domain.EventMachineCalled, machine),
		Caller:    caller.Key(),
		Callee:    callee,
	})
}

func (e *Engine) emitMachineReturned(ctx context.Context, machine string, caller *domain.State, callee string, outcome domain.Outcome) {
	if e.hooks.OnMachineReturned == nil {
		return
	}
	e.hooks.OnMachineReturned(ctx, &domain.MachineCallEvent{
		EventBase: eventBase(domain.EventMachineReturned, machine),
		Caller:    caller.Key(),
		Callee:    callee,
		Outcome:   outcome,
	})
}

func eventBase(t domain.EventType, machine string) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Machine:   machine,
	}
}
