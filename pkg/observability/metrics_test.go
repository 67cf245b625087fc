package observability_test

import (
	"context"
	"testing"

	"github.com/automkit/adapta/internal/runtime"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/observability"
	"github.com/automkit/adapta/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEngineActivity(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics := observability.New(promReg)

	reg := registry.New()

	mStart := domain.NewState("m-start")
	mStart.SetAcceptState()
	reg.Register("M", mStart)

	a := domain.NewState("A")
	b := domain.NewState("B")
	end := domain.NewState("end")
	end.SetAcceptState()
	a.CreateTransitionTo(b, domain.NewConditionSet("a"), nil)
	b.CreateMachineCallTo(end, domain.NewConditionSet("m"), "M", nil, nil)
	reg.Register("observed", a)

	eng := runtime.NewEngine(reg, runtime.WithLifecycleHooks(metrics.Hooks()))

	res, err := eng.Run(context.Background(), "observed", []string{"a", "m"})
	require.NoError(t, err)
	metrics.ObserveResult(res)

	count, err := testutil.GatherAndCount(promReg,
		"adapta_runs_total", "adapta_transitions_fired_total", "adapta_machine_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count, "one runs series, two transition kinds, one call series")
}

func TestMetrics_ObserveResultNilIsSafe(t *testing.T) {
	metrics := observability.New(prometheus.NewRegistry())
	assert.NotPanics(t, func() { metrics.ObserveResult(nil) })
}
