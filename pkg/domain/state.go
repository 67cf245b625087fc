package domain

// StateType classifies a state. Classification is independent of edge
// structure: an accept state may still have outgoing edges.
type StateType int

const (
	StateNormal StateType = iota
	StateAccept
	StateError
)

// String returns the label used in traces and logs.
func (t StateType) String() string {
	switch t {
	case StateNormal:
		return "normal"
	case StateAccept:
		return "accept"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// StateKey is the value identity of a state: (name, type) only, edge lists
// excluded. Two distinct State instances with the same key are the same state
// to any map or set keyed on it, which graph-building passes rely on for
// deduplication.
type StateKey struct {
	Name string    `json:"name"`
	Type StateType `json:"type"`
}

// String renders "name:type".
func (k StateKey) String() string {
	return k.Name + ":" + k.Type.String()
}

// State is a node of an adaptive finite automaton. It owns its outgoing
// edges, split into four categories: ordinary transitions, epsilon
// transitions, machine calls, and at most one alternate transition.
//
// The edge slices are copy-on-write: AddTransition and RemoveTransition
// replace the slice instead of mutating it, so a lookup that is mid-iteration
// keeps a consistent snapshot and mutations take effect on the next lookup.
// That is what lets an action fired during traversal reshape this same
// state's topology safely.
//
// A State is not safe for concurrent use by multiple goroutines; a single
// traversal is strictly sequential.
type State struct {
	name      string
	stateType StateType

	transitions        []*Transition
	epsilonTransitions []*Transition
	machineCalls       []*Transition
	alternate          *Transition
}

// NewState creates a state classified Normal with no outgoing edges.
func NewState(name string) *State {
	return &State{
		name:      name,
		stateType: StateNormal,
	}
}

// Name returns the state's identifier. Names are not required to be globally
// unique by construction, but together with the type they define equality.
func (s *State) Name() string {
	return s.name
}

// Type returns the current classification.
func (s *State) Type() StateType {
	return s.stateType
}

// Key returns the value identity of the state.
func (s *State) Key() StateKey {
	return StateKey{Name: s.name, Type: s.stateType}
}

// Equal reports value equality: same name and same classification.
// Edge lists are deliberately excluded.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.Key() == other.Key()
}

// String renders "name:type".
func (s *State) String() string {
	return s.Key().String()
}

// CreateTransitionTo appends an ordinary transition enabled by the given
// conditions. Duplicate conditions are legal; lookups resolve them by
// insertion order.
func (s *State) CreateTransitionTo(to *State, conditions ConditionSet, action Action) {
	s.transitions = appendEdge(s.transitions, NewTransition(s, to, conditions, action))
}

// CreateMachineCallTo appends a machine-call edge. The call fires on the
// given conditions; machineName is resolved externally.
func (s *State) CreateMachineCallTo(to *State, conditions ConditionSet, machineName string, before, after Action) {
	s.machineCalls = appendEdge(s.machineCalls, NewMachineCall(s, to, conditions, machineName, before, after))
}

// CreateEpsilonTransitionTo appends an epsilon edge. Multiple epsilon edges
// represent nondeterministic choice; closure is the engine's job.
func (s *State) CreateEpsilonTransitionTo(to *State, action Action) {
	s.epsilonTransitions = appendEdge(s.epsilonTransitions, NewEpsilonTransition(s, to, action))
}

// SetAlternateTransition replaces the single default edge. The overwrite is
// idempotent, not additive.
func (s *State) SetAlternateTransition(to *State, action Action) {
	s.alternate = NewAlternateTransition(s, to, action)
}

// Transitions returns the ordinary transitions, in insertion order.
// Machine calls and epsilon transitions are not included.
func (s *State) Transitions() []*Transition {
	return s.transitions
}

// EpsilonTransitions returns the epsilon edges, in insertion order.
func (s *State) EpsilonTransitions() []*Transition {
	return s.epsilonTransitions
}

// MachineCalls returns the machine-call edges, in insertion order.
func (s *State) MachineCalls() []*Transition {
	return s.machineCalls
}

// AlternateTransition returns the default edge, or nil if none is set.
func (s *State) AlternateTransition() *Transition {
	return s.alternate
}

// HasAlternateTransition reports whether a default edge is set.
func (s *State) HasAlternateTransition() bool {
	return s.alternate != nil
}

// HasEpsilonTransitions reports whether any epsilon edge exists.
func (s *State) HasEpsilonTransitions() bool {
	return len(s.epsilonTransitions) > 0
}

// HasMachineCalls reports whether any machine-call edge exists.
func (s *State) HasMachineCalls() bool {
	return len(s.machineCalls) > 0
}

// AllTransitions returns every outgoing edge except the alternate:
// ordinary, then epsilon, then machine calls.
func (s *State) AllTransitions() []*Transition {
	all := make([]*Transition, 0, len(s.transitions)+len(s.epsilonTransitions)+len(s.machineCalls))
	all = append(all, s.transitions...)
	all = append(all, s.epsilonTransitions...)
	all = append(all, s.machineCalls...)
	return all
}

// ResolveTransition scans ordinary transitions in insertion order and returns
// the first whose conditions contain input; if none match it scans machine
// calls the same way. An ordinary transition on the same symbol therefore
// always shadows a machine call. Returns nil when nothing matches; falling
// back to the alternate transition is the caller's decision.
func (s *State) ResolveTransition(input string) *Transition {
	for _, t := range s.transitions {
		if t.Conditions.Contains(input) {
			return t
		}
	}
	for _, t := range s.machineCalls {
		if t.Conditions.Contains(input) {
			return t
		}
	}
	return nil
}

// NextState returns the destination ResolveTransition would move to, or nil
// when no transition matches.
func (s *State) NextState(input string) *State {
	if t := s.ResolveTransition(input); t != nil {
		return t.To
	}
	return nil
}

// NextEpsilonStates returns the destinations of all epsilon edges.
// Closure computation over the result is the engine's responsibility.
func (s *State) NextEpsilonStates() []*State {
	next := make([]*State, 0, len(s.epsilonTransitions))
	for _, t := range s.epsilonTransitions {
		next = append(next, t.To)
	}
	return next
}

// ContainsTransitionForInput reports whether an ordinary transition matches
// the given input.
func (s *State) ContainsTransitionForInput(input string) bool {
	for _, t := range s.transitions {
		if t.Conditions.Contains(input) {
			return true
		}
	}
	return false
}

// ContainsTransitionTo reports whether any edge (ordinary, epsilon, or
// machine call) leads to the given state.
func (s *State) ContainsTransitionTo(to *State) bool {
	return s.TransitionTo(to) != nil
}

// TransitionTo returns the first edge leading to the given state, searching
// ordinary, epsilon, and machine-call edges in that order. Destination
// comparison uses value equality. Returns nil if no such edge exists.
func (s *State) TransitionTo(to *State) *Transition {
	for _, t := range s.AllTransitions() {
		if t.To.Equal(to) {
			return t
		}
	}
	return nil
}

// ContainsMachineCall reports whether this state calls the named machine.
func (s *State) ContainsMachineCall(machineName string) bool {
	for _, t := range s.machineCalls {
		if t.MachineName == machineName {
			return true
		}
	}
	return false
}

// SetAcceptState classifies the state as accepting.
func (s *State) SetAcceptState() {
	s.stateType = StateAccept
}

// SetErrorState classifies the state as an error state.
func (s *State) SetErrorState() {
	s.stateType = StateError
}

// SetStateType sets the classification directly.
func (s *State) SetStateType(t StateType) {
	s.stateType = t
}

// IsAcceptState reports whether the state is accepting.
func (s *State) IsAcceptState() bool {
	return s.stateType == StateAccept
}

// IsErrorState reports whether the state is an error state.
func (s *State) IsErrorState() bool {
	return s.stateType == StateError
}

// AddTransition routes the edge into the list matching its kind. This is one
// of the two operations adaptive actions use to reshape the automaton while
// it runs. Adding is always accepted; duplicates resolve by first-match at
// lookup time, not by rejection here. An alternate-kind edge overwrites the
// single default slot.
func (s *State) AddTransition(t *Transition) {
	switch t.Kind {
	case KindEpsilon:
		s.epsilonTransitions = appendEdge(s.epsilonTransitions, t)
	case KindMachineCall:
		s.machineCalls = appendEdge(s.machineCalls, t)
	case KindAlternate:
		s.alternate = t
	default:
		s.transitions = appendEdge(s.transitions, t)
	}
}

// RemoveTransition removes the edge from the ordinary list only and reports
// whether removal occurred. Removing an edge that is not present is a no-op
// reporting false, never an error.
func (s *State) RemoveTransition(t *Transition) bool {
	idx := -1
	for i, existing := range s.transitions {
		if existing == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next := make([]*Transition, 0, len(s.transitions)-1)
	next = append(next, s.transitions[:idx]...)
	next = append(next, s.transitions[idx+1:]...)
	s.transitions = next
	return true
}

// appendEdge grows a list copy-on-write so callers iterating the previous
// slice keep their snapshot.
func appendEdge(list []*Transition, t *Transition) []*Transition {
	next := make([]*Transition, len(list), len(list)+1)
	copy(next, list)
	return append(next, t)
}
