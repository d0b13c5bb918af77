package metrics

import (
	"math"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/tsp"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, OutcomeOptimal, Outcome(tsp.Result{Found: true, Optimal: true, Cost: 3}))
	require.Equal(t, OutcomeNoSolution, Outcome(tsp.Result{Found: false, Optimal: true, Cost: math.Inf(1)}))
	require.Equal(t, OutcomeInterrupted, Outcome(tsp.Result{Found: true, Optimal: false, Cost: 9}))
	require.Equal(t, OutcomeInterrupted, Outcome(tsp.Result{Found: false, Optimal: false, Cost: math.Inf(1)}))
}

func TestObserveSolve(t *testing.T) {
	before := counterValue(t, OutcomeOptimal)
	ObserveSolve(tsp.Result{Found: true, Optimal: true, Cost: 1, Stats: tsp.Stats{Expanded: 10}})
	require.Equal(t, before+1, counterValue(t, OutcomeOptimal))
}

func counterValue(t *testing.T, outcome string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, SolvesTotal.WithLabelValues(outcome).Write(&m))
	return m.GetCounter().GetValue()
}
