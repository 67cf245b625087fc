package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateEnter       EventType = "state_enter"
	EventTransitionFired  EventType = "transition_fired"
	EventMachineCalled    EventType = "machine_called"
	EventMachineReturned  EventType = "machine_returned"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine"`
}

// StateEvent reports entry into a state.
type StateEvent struct {
	EventBase
	State StateKey `json:"state"`
}

// TransitionEvent reports a fired transition.
type TransitionEvent struct {
	EventBase
	From  StateKey       `json:"from"`
	To    StateKey       `json:"to"`
	Input string         `json:"input,omitempty"`
	Kind  TransitionKind `json:"kind"`
}

// MachineCallEvent reports control transferring into, or returning from, a
// submachine. Outcome is set on return only.
type MachineCallEvent struct {
	EventBase
	Caller  StateKey `json:"caller"`
	Callee  string   `json:"callee"`
	Outcome Outcome  `json:"outcome,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnStateEnter      func(context.Context, *StateEvent)
	OnTransitionFired func(context.Context, *TransitionEvent)
	OnMachineCalled   func(context.Context, *MachineCallEvent)
	OnMachineReturned func(context.Context, *MachineCallEvent)
}
