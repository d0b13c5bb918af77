// Package tsp: matrix reduction (Little's lower bound).
//
// Reduce subtracts, for every row with at least one finite entry, the row
// minimum from all finite entries of that row, then repeats the same procedure
// over the columns of the row-adjusted matrix. The sum of subtracted minima is
// a lower bound on the cost of any tour that uses only finite entries: every
// city must be left once and entered once.
//
// Rows/columns with no finite entry (already closed cities) contribute 0.
// Minima ≤ 0 contribute 0 and leave the line untouched.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspbb/matrix"
)

// Reduce applies row-then-column reduction to m in place and returns the total
// amount subtracted. m must be square; ErrNonSquare otherwise.
//
// Complexity: O(n²) time, O(1) extra space.
func Reduce(m *matrix.Dense) (float64, error) {
	if m == nil {
		return 0, ErrDimensionMismatch
	}
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}

	return reduceFlat(m.Data(), m.Rows()), nil
}

// reduceFlat is the hot-path kernel over a flat row-major n×n buffer.
func reduceFlat(w []float64, n int) float64 {
	var (
		inf   = math.Inf(1)
		total float64
		i, j  int
		m, x  float64
		row   []float64
	)

	// Stage 1: rows.
	for i = 0; i < n; i++ {
		row = w[i*n : (i+1)*n]
		m = inf
		for j = 0; j < n; j++ {
			if x = row[j]; x < m {
				m = x
			}
		}
		if m == inf || m <= 0 {
			continue // closed row, or nothing to subtract
		}
		for j = 0; j < n; j++ {
			if row[j] != inf {
				row[j] -= m
			}
		}
		total += m
	}

	// Stage 2: columns of the row-adjusted matrix.
	for j = 0; j < n; j++ {
		m = inf
		for i = 0; i < n; i++ {
			if x = w[i*n+j]; x < m {
				m = x
			}
		}
		if m == inf || m <= 0 {
			continue
		}
		for i = 0; i < n; i++ {
			if w[i*n+j] != inf {
				w[i*n+j] -= m
			}
		}
		total += m
	}

	return total
}

// eliminate commits edge cur→next in a working buffer:
//   - row cur is closed (cur has been left),
//   - column next is closed (next has been entered),
//   - (next, cur) is forbidden so the edge cannot be immediately reversed.
//
// Complexity: O(n).
func eliminate(w []float64, n, cur, next int) {
	var (
		inf = math.Inf(1)
		k   int
	)
	for k = 0; k < n; k++ {
		w[cur*n+k] = inf
		w[k*n+next] = inf
	}
	w[next*n+cur] = inf
}
