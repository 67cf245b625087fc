package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/automkit/adapta/pkg/domain"
)

// RenderResult writes a human-readable run summary with the outcome colored
// by classification.
func RenderResult(w io.Writer, res *domain.Result) {
	p := termenv.ColorProfile()

	outcome := termenv.String(string(res.Outcome)).Bold()
	switch res.Outcome {
	case domain.OutcomeAccepted:
		outcome = outcome.Foreground(p.Color("#22c55e"))
	case domain.OutcomeRejected:
		outcome = outcome.Foreground(p.Color("#ef4444"))
	case domain.OutcomeStuck:
		outcome = outcome.Foreground(p.Color("#eab308"))
	}

	fmt.Fprintf(w, "machine:  %s\n", res.Machine)
	fmt.Fprintf(w, "outcome:  %s\n", outcome)
	fmt.Fprintf(w, "final:    %s\n", res.Final)
	fmt.Fprintf(w, "consumed: %d\n", res.Consumed)

	if len(res.Steps) == 0 {
		return
	}
	fmt.Fprintln(w, "steps:")
	for i, step := range res.Steps {
		label := step.Input
		if label == "" {
			label = "·"
		}
		fmt.Fprintf(w, "  %2d. [%s] %s --%s--> %s\n", i+1, step.Kind, step.From, label, step.To)
	}
}
