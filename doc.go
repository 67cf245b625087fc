/*
Package adapta is an adaptive finite-automaton engine: a state machine whose
transition set can be mutated at run time by actions attached to the
transitions themselves.

It departs from a classical static automaton in two ways. Firing a transition
may execute an action that adds or removes other transitions, so behavior
depends on execution history. And a transition may be a call into another
named automaton (a submachine), with call/return semantics layered on top of
plain edge traversal.

# Concept

States own their outgoing edges in four categories: ordinary transitions,
epsilon transitions, machine calls, and at most one alternate (default)
transition. Resolution scans ordinary transitions first, then machine calls,
first match wins; the alternate fires only when nothing matches. The engine
drives traversal, manages the submachine call stack, and classifies each run
as accepted, rejected, or stuck.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/automkit/adapta"
		"github.com/automkit/adapta/pkg/domain"
	)

	func main() {
		eng := adapta.New()

		a := domain.NewState("A")
		b := domain.NewState("B")
		b.SetAcceptState()
		a.CreateTransitionTo(b, domain.NewConditionSet("a"), nil)
		eng.Register("word", a)

		res, err := eng.Run(context.Background(), "word", []string{"a"})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome) // accepted
	}
*/
package adapta
