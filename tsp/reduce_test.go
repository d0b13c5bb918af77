package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

func TestReduce_Classic4(t *testing.T) {
	m := dense(t, [][]float64{
		{Inf, 10, 15, 20},
		{10, Inf, 35, 25},
		{15, 35, Inf, 30},
		{20, 25, 30, Inf},
	})
	total, err := tsp.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, 70.0, total)
	require.Equal(t, [][]float64{
		{Inf, 0, 0, 0},
		{0, Inf, 20, 5},
		{0, 20, Inf, 5},
		{0, 5, 5, Inf},
	}, m.ToRows())
}

func TestReduce_ClosedLinesAndZeroMinima(t *testing.T) {
	// Row 1 and column 2 are fully closed; row 0 already has a zero.
	m := dense(t, [][]float64{
		{Inf, 0, Inf},
		{Inf, Inf, Inf},
		{3, 7, Inf},
	})
	total, err := tsp.Reduce(m)
	require.NoError(t, err)
	// Row 2 contributes 3 → [0, 4, Inf]; columns then have minima 0, 0, none.
	require.Equal(t, 3.0, total)
	require.Equal(t, [][]float64{
		{Inf, 0, Inf},
		{Inf, Inf, Inf},
		{0, 4, Inf},
	}, m.ToRows())
}

func TestReduce_ColumnsUseRowAdjustedValues(t *testing.T) {
	m := dense(t, [][]float64{
		{Inf, 2, 6},
		{4, Inf, 9},
		{5, 8, Inf},
	})
	// Rows: 2, 4, 5 → [[∞,0,4],[0,∞,5],[0,3,∞]]; columns: 0, 0, 4.
	total, err := tsp.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, 15.0, total)
	require.Equal(t, [][]float64{
		{Inf, 0, 0},
		{0, Inf, 1},
		{0, 3, Inf},
	}, m.ToRows())
}

func TestReduce_AllInf(t *testing.T) {
	m, err := matrix.NewSquare(3, matrix.Inf)
	require.NoError(t, err)
	total, err := tsp.Reduce(m)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestReduce_Errors(t *testing.T) {
	_, err := tsp.Reduce(nil)
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	rect, _ := matrix.NewDense(2, 3)
	_, err = tsp.Reduce(rect)
	mustErrIs(t, err, tsp.ErrNonSquare)
}

func TestReduce_RootBoundIsAdmissible(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 10))
	for rep := 0; rep < 30; rep++ {
		a := randomRows(rng, 6, 40, 0.2, rep%3 == 0)
		for i := range a {
			a[i][i] = Inf
		}
		opt, _ := bruteForce(a)
		total, err := tsp.Reduce(dense(t, a))
		require.NoError(t, err)
		require.LessOrEqual(t, total, opt, "rep=%d", rep)
	}
}
