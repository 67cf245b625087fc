package observability

import (
	"context"

	"github.com/automkit/adapta/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	runs         *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	machineCalls *prometheus.CounterVec
	runSteps     prometheus.Histogram
}

// New creates the collectors and registers them with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adapta_runs_total",
				Help: "Completed runs by machine and outcome.",
			},
			[]string{"machine", "outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adapta_transitions_fired_total",
				Help: "Fired transitions by machine and edge kind.",
			},
			[]string{"machine", "kind"},
		),
		machineCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adapta_machine_calls_total",
				Help: "Submachine invocations by caller machine and callee.",
			},
			[]string{"machine", "callee"},
		),
		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "adapta_run_steps",
				Help:    "Fired transitions per completed run.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}

	reg.MustRegister(m.runs, m.transitions, m.machineCalls, m.runSteps)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Wire them into the
// engine via WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransitionFired: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(e.Machine, e.Kind.String()).Inc()
		},
		OnMachineCalled: func(ctx context.Context, e *domain.MachineCallEvent) {
			m.machineCalls.WithLabelValues(e.Machine, e.Callee).Inc()
		},
	}
}

// ObserveResult records a completed run. Callers invoke it once per Run.
func (m *Metrics) ObserveResult(res *domain.Result) {
	if res == nil {
		return
	}
	m.runs.WithLabelValues(res.Machine, string(res.Outcome)).Inc()
	m.runSteps.Observe(float64(len(res.Steps)))
}
