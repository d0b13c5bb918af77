// Package tsp - validation of distance matrices.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"math"

	"github.com/katalvlaran/tspbb/matrix"
)

// processMatrix validates dist and returns the processed matrix: a dense copy
// whose diagonal is forced to matrix.Inf (no self-loops), every other entry
// unchanged. Off-diagonal zeros stay finite edges.
//
// Contract:
//   - dist must be non-nil and square with n ≥ 2.
//   - off-diagonal entries must be ≥ 0 or +Inf; NaN anywhere is rejected.
//   - diagonal values are ignored (overwritten), whatever the caller passed.
//
// Complexity: O(n²) time and memory.
func processMatrix(dist matrix.Matrix) (*matrix.Dense, error) {
	if dist == nil {
		return nil, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return nil, ErrNonSquare
	}
	if nr < 2 {
		return nil, ErrDimensionMismatch
	}

	w, err := matrix.CopyFrom(dist)
	if err != nil {
		return nil, ErrDimensionMismatch
	}

	var (
		n    = nr
		data = w.Data()
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				data[i*n+j] = matrix.Inf // no self-loops regardless of input
				continue
			}
			x = data[i*n+j]
			if math.IsNaN(x) {
				return nil, ErrNaNWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	return w, nil
}

// ValidateRows checks a [][]float64 the way an API boundary should before
// calling Solve: at least two rows, all of length len(rows), no negative or
// NaN off-diagonal values. The diagonal is never inspected; +Inf is accepted
// as "no edge".
//
// Complexity: O(n²).
func ValidateRows(rows [][]float64) error {
	var n = len(rows)
	if n < 2 {
		return ErrDimensionMismatch
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return ErrNonSquare
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x = rows[i][j]
			if math.IsNaN(x) {
				return ErrNaNWeight
			}
			if x < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}
