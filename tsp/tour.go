// Package tsp: tour utilities.
//
// Provided helpers:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - TourCost: sum the directed weights of a closed tour.
//   - EqualTours: element-wise tour equality.
//   - FormatTour: compact "0→1→3→2→0" rendering for logs and CLI output.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspbb/matrix"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist[tour[i]][tour[i+1]] over consecutive pairs, in tour
// direction. Asymmetric matrices are read directionally.
//
// Errors: ErrNonSquare, ErrDimensionMismatch (short tour, index out of range,
// NaN), ErrIncompleteGraph (+Inf edge), ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var n = dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil || math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return sum, nil
}

// EqualTours reports whether a and b list the same vertices in the same order.
func EqualTours(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// FormatTour renders a tour as "0→1→3→2→0"; an empty tour renders as "∅".
func FormatTour(tour []int) string {
	if len(tour) == 0 {
		return "∅"
	}
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteString("→")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
