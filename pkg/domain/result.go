package domain

// Outcome is the terminal classification of a run.
type Outcome string

const (
	// OutcomeAccepted means the run ended in an accept state (directly or
	// through the epsilon closure of the final state).
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejected means the run ended in an error state, or exhausted its
	// input in a non-accepting state.
	OutcomeRejected Outcome = "rejected"
	// OutcomeStuck means no transition, no machine call, and no alternate
	// matched the pending input. Stuckness is data, not an error.
	OutcomeStuck Outcome = "stuck"
)

// Step records one fired transition of a run trace.
type Step struct {
	Machine string `json:"machine"`
	From    string `json:"from"`
	To      string `json:"to"`
	Input   string `json:"input,omitempty"`
	Kind    string `json:"kind"`
}

// Result is the serializable record of a completed run.
type Result struct {
	Machine  string   `json:"machine"`
	Outcome  Outcome  `json:"outcome"`
	Final    StateKey `json:"final"`
	Consumed int      `json:"consumed"`
	Steps    []Step   `json:"steps,omitempty"`
}
