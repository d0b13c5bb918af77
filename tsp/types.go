package tsp

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors. Malformed input is reported before any search work begins.
var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch is returned for nil matrices, n < 2, and malformed tours.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight is returned when an off-diagonal distance is negative.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrNaNWeight is returned when any distance is NaN.
	ErrNaNWeight = errors.New("tsp: NaN edge weight")

	// ErrIncompleteGraph is returned by TourCost when a tour uses a missing (+Inf) edge.
	ErrIncompleteGraph = errors.New("tsp: tour uses a missing edge")

	// ErrStartOutOfRange is returned when a tour start vertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before the search ends.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrNodeBudget is returned when Options.MaxNodes expansions were used up.
	ErrNodeBudget = errors.New("tsp: node budget exhausted")
)

// FrontierKind selects the frontier implementation.
type FrontierKind int

const (
	// FrontierTree keeps open nodes in an ordered B-tree keyed by (bound, seq).
	FrontierTree FrontierKind = iota

	// FrontierScan keeps open nodes in insertion order and finds the minimum by
	// a full linear scan on every pop.
	FrontierScan
)

// String implements fmt.Stringer.
func (k FrontierKind) String() string {
	switch k {
	case FrontierTree:
		return "tree"
	case FrontierScan:
		return "scan"
	default:
		return "unknown"
	}
}

// ParseFrontierKind maps "tree"/"scan" to a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch s {
	case "", "tree":
		return FrontierTree, nil
	case "scan":
		return FrontierScan, nil
	default:
		return 0, ErrUnknownFrontier
	}
}

// ErrUnknownFrontier is returned by ParseFrontierKind for unrecognized names.
var ErrUnknownFrontier = errors.New("tsp: unknown frontier kind")

// DefaultCheckEvery is the default number of search-loop steps between
// context and deadline checks.
const DefaultCheckEvery = 1024

// Options configures Solve and SolveContext.
//
// The zero value is valid and equals DefaultOptions(): tree frontier, no limits.
type Options struct {
	// Frontier selects the open-node container. Both kinds pop nodes in the
	// same order, so results are identical; FrontierTree is O(log k) per pop.
	Frontier FrontierKind

	// TimeLimit bounds wall-clock search time. 0 means unlimited.
	TimeLimit time.Duration

	// MaxNodes bounds the number of expanded nodes. 0 means unlimited.
	MaxNodes int

	// CheckEvery is the number of search-loop steps between context and
	// deadline checks. Values ≤ 0 fall back to DefaultCheckEvery.
	CheckEvery int

	// OnIncumbent, if set, is called each time a strictly cheaper complete
	// tour is found. The tour slice is the one later returned in Result and
	// must not be modified.
	OnIncumbent func(cost float64, tour []int)
}

// DefaultOptions returns Options with the reference behaviour: no limits,
// B-tree frontier, no hooks.
func DefaultOptions() Options {
	return Options{
		Frontier:   FrontierTree,
		CheckEvery: DefaultCheckEvery,
	}
}

// Stats summarizes one search run.
type Stats struct {
	RootBound   float64 // reduction total of the processed input matrix
	Expanded    int     // nodes whose children were generated
	Pushed      int     // nodes inserted into the frontier, root included
	Pruned      int     // popped nodes discarded because bound ≥ incumbent
	Rejected    int     // children discarded before insertion
	Completed   int     // popped nodes holding all n cities
	MaxFrontier int     // peak frontier size
	Elapsed     time.Duration
}

// Result holds the outcome of a solve.
type Result struct {
	// Tour is the cycle of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1. Nil when Found is false.
	Tour []int

	// Cost is the total distance of Tour over the input matrix,
	// or +Inf when no tour exists.
	Cost float64

	// Found reports whether any finite tour was found.
	Found bool

	// Optimal reports whether the search ran to completion. It is false when
	// SolveContext stopped early; Tour is then the best incumbent, if any.
	Optimal bool

	// Stats describes the search effort.
	Stats Stats
}

// noSolution returns the canonical "no tour" result.
func noSolution() Result {
	return Result{Cost: math.Inf(1)}
}
