// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspbb/matrix"
)

// seedDet is the deterministic seed for generated instances.
const seedDet = int64(20240611)

// Inf is the local alias for the "no edge" sentinel.
var Inf = math.Inf(1)

// dense builds a *matrix.Dense from rows or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustErrIs asserts errors.Is(err, want).
func mustErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error mismatch: got=%v want=%v", err, want)
	}
}

// randomRows returns an n×n matrix with integer weights in [0, maxW] and, with
// probability pMissing, +Inf off-diagonal entries. Asymmetric unless sym.
func randomRows(rng *rand.Rand, n int, maxW int, pMissing float64, sym bool) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if sym && j < i {
				a[i][j] = a[j][i]
				continue
			}
			if rng.Float64() < pMissing {
				a[i][j] = Inf
			} else {
				a[i][j] = float64(rng.Intn(maxW + 1))
			}
		}
	}

	return a
}

// bruteForce enumerates all tours from 0 in lexicographic permutation order
// and returns the optimal cost (or +Inf) and one optimal tour.
func bruteForce(a [][]float64) (float64, []int) {
	var (
		n    = len(a)
		best = Inf
		tour []int
		perm = make([]int, 0, n)
		used = make([]bool, n)
	)
	var rec func(last int, cost float64)
	rec = func(last int, cost float64) {
		if len(perm) == n-1 {
			total := cost + a[last][0]
			if total < best {
				best = total
				tour = append([]int{0}, perm...)
				tour = append(tour, 0)
			}
			return
		}
		for v := 1; v < n; v++ {
			if used[v] || math.IsInf(a[last][v], 1) {
				continue
			}
			used[v] = true
			perm = append(perm, v)
			rec(v, cost+a[last][v])
			perm = perm[:len(perm)-1]
			used[v] = false
		}
	}
	rec(0, 0)

	return best, tour
}
