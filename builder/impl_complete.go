// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspbb/matrix"
)

// Complete returns an n×n instance where every off-diagonal edge has weight
// w. Every permutation is then optimal with cost n·w, and the solver returns
// the lexicographically first one: 0→1→…→n-1→0.
func Complete(n int, w float64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if math.IsNaN(w) || w < 0 {
		return nil, ErrInvalidWeight
	}
	m, err := matrix.NewSquare(n, w)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 0)
	}

	return m, nil
}

// Ring returns a directed cycle 0→1→…→n-1→0 where each ring edge costs w
// and every other edge is missing. The ring is the unique tour.
func Ring(n int, w float64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if math.IsNaN(w) || w < 0 || math.IsInf(w, 1) {
		return nil, ErrInvalidWeight
	}
	m, err := matrix.NewSquare(n, matrix.Inf)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 0)
		_ = m.Set(i, (i+1)%n, w)
	}

	return m, nil
}

// Euclidean returns the symmetric matrix of straight-line distances between
// points.
func Euclidean(points [][2]float64) (*matrix.Dense, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	pts := mat.NewDense(n, 2, nil)
	for i, p := range points {
		pts.SetRow(i, p[:])
	}

	return distances(pts)
}

// RandomPoints scatters n points over a square and returns their Euclidean
// instance. Both coordinates of each point are drawn from the configured
// WeightFn, x first. Requires WithSeed or WithRand; WithMissing and
// WithSymmetric do not apply.
func RandomPoints(n int, opts ...Option) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRand
	}
	pts := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		pts.Set(i, 0, cfg.weightFn(cfg.rng))
		pts.Set(i, 1, cfg.weightFn(cfg.rng))
	}

	return distances(pts)
}

// distances turns an n×2 coordinate matrix into the n×n distance matrix.
// Complexity: O(n²).
func distances(pts *mat.Dense) (*matrix.Dense, error) {
	n, _ := pts.Dims()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h := math.Hypot(pts.At(i, 0)-pts.At(j, 0), pts.At(i, 1)-pts.At(j, 1))
			d.Set(i, j, h)
			d.Set(j, i, h)
		}
	}

	return matrix.FromGonum(d)
}
