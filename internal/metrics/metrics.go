// Package metrics holds the Prometheus collectors of the tspbb service.
// Collectors register with the default registry through promauto and are
// exposed by the server at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/tspbb/tsp"
)

// Solve outcomes.
const (
	OutcomeOptimal     = "optimal"
	OutcomeInterrupted = "interrupted"
	OutcomeNoSolution  = "no_solution"
	OutcomeRejected    = "rejected"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tspbb_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tspbb_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tspbb_solves_total",
			Help: "Solver runs by outcome",
		},
		[]string{"outcome"},
	)

	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tspbb_solve_duration_seconds",
			Help:    "Wall time of one branch-and-bound search",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		},
	)

	// Expanded nodes per search; powers of four up to ~4M.
	NodesExpanded = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tspbb_nodes_expanded",
			Help:    "Search nodes expanded per solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tspbb_cache_lookups_total",
			Help: "Result cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// Outcome classifies a finished search.
func Outcome(res tsp.Result) string {
	switch {
	case !res.Found && res.Optimal:
		return OutcomeNoSolution
	case res.Optimal:
		return OutcomeOptimal
	default:
		return OutcomeInterrupted
	}
}

// ObserveSolve records one finished search.
func ObserveSolve(res tsp.Result) {
	SolvesTotal.WithLabelValues(Outcome(res)).Inc()
	SolveDuration.Observe(res.Stats.Elapsed.Seconds())
	NodesExpanded.Observe(float64(res.Stats.Expanded))
}
