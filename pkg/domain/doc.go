/*
Package domain contains the core domain models for the Adapta engine.

It defines the fundamental entities of an adaptive finite automaton: States,
Transitions (including epsilon edges, submachine calls, and the alternate
fallback edge), and the Action capability that lets a firing transition reshape
the automaton's own topology. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - State: a node that owns its outgoing edges and exposes the mutation
    operations adaptive actions use at run time.
  - Transition: a directed edge with a condition set, tagged by kind
    (symbol, epsilon, machine call, alternate).
  - Action: a side effect invoked when a transition fires; it may add or
    remove transitions on the source state.
  - Result: the serializable record of a single run (outcome, final state,
    step trace).
*/
package domain
