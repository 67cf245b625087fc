package domain

import "errors"

// ErrMachineNotFound is returned when a machine-call name cannot be resolved
// by the registry. The core carries call names without validating them, so
// this is the one failure it cannot represent as an absent result.
var ErrMachineNotFound = errors.New("machine not found")

// ErrTraceNotFound is returned when a run ID cannot be found in a trace store.
var ErrTraceNotFound = errors.New("trace not found")
