package domain

// TransitionKind tags the edge category of a Transition.
// The original model expressed machine calls as a subclass; here a single
// tagged type keeps all four categories routable through State.AddTransition.
type TransitionKind int

const (
	// KindSymbol is an ordinary transition enabled by a condition set.
	KindSymbol TransitionKind = iota
	// KindEpsilon is a transition traversable without consuming input.
	KindEpsilon
	// KindMachineCall delegates control to another machine by name.
	KindMachineCall
	// KindAlternate is the default edge fired when nothing else matches.
	KindAlternate
)

// String returns the label used in traces and metrics.
func (k TransitionKind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindEpsilon:
		return "epsilon"
	case KindMachineCall:
		return "machine_call"
	case KindAlternate:
		return "alternate"
	default:
		return "unknown"
	}
}

// Transition is a directed edge between two states.
//
// To is a plain association: the destination is owned by the graph that built
// it, never by the transition. Action, when set, runs as a side effect of
// firing and may mutate the source state's edge lists.
type Transition struct {
	From       *State
	To         *State
	Conditions ConditionSet
	Action     Action

	Kind TransitionKind

	// Machine-call data, set only when Kind is KindMachineCall.
	// Before runs immediately before control transfers into the submachine,
	// After immediately after it returns.
	MachineName string
	Before      Action
	After       Action
}

// NewTransition builds an ordinary symbol transition.
func NewTransition(from, to *State, conditions ConditionSet, action Action) *Transition {
	return &Transition{
		From:       from,
		To:         to,
		Conditions: conditions,
		Action:     action,
		Kind:       KindSymbol,
	}
}

// NewEpsilonTransition builds a transition tagged with the epsilon sentinel.
func NewEpsilonTransition(from, to *State, action Action) *Transition {
	return &Transition{
		From:       from,
		To:         to,
		Conditions: NewConditionSet(Epsilon),
		Action:     action,
		Kind:       KindEpsilon,
	}
}

// NewMachineCall builds a submachine-call transition. The condition set
// decides when the call fires; resolution of machineName is the registry's
// job, this edge only carries it.
func NewMachineCall(from, to *State, conditions ConditionSet, machineName string, before, after Action) *Transition {
	return &Transition{
		From:        from,
		To:          to,
		Conditions:  conditions,
		Kind:        KindMachineCall,
		MachineName: machineName,
		Before:      before,
		After:       after,
	}
}

// NewAlternateTransition builds the unconditional fallback edge.
func NewAlternateTransition(from, to *State, action Action) *Transition {
	return &Transition{
		From:   from,
		To:     to,
		Action: action,
		Kind:   KindAlternate,
	}
}

// IsEpsilon reports whether the transition consumes no input.
func (t *Transition) IsEpsilon() bool {
	return t.Kind == KindEpsilon
}

// IsMachineCall reports whether the transition delegates to another machine.
func (t *Transition) IsMachineCall() bool {
	return t.Kind == KindMachineCall
}
