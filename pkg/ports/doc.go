/*
Package ports defines the driven ports (interfaces) for the Adapta engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various machine registries, trace storage
backends, and lockers.

# Key Interfaces

  - MachineResolver: maps a submachine name to its start state.
  - Runner: executes a named machine over an input sequence.
  - TraceStore: persists run results ("traces") by run ID.
  - DistributedLocker: coordinates concurrent access to a run across replicas.
*/
package ports
