package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name  string
		tour  []int
		n     int
		start int
		want  error
	}{
		{"ok", []int{0, 2, 1, 3, 0}, 4, 0, nil},
		{"ok-n2", []int{0, 1, 0}, 2, 0, nil},
		{"short", []int{0, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"open", []int{0, 1, 2, 1}, 3, 0, tsp.ErrDimensionMismatch},
		{"dup", []int{0, 1, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"oob", []int{0, 5, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"bad-start", []int{0, 1, 0}, 2, 2, tsp.ErrStartOutOfRange},
		{"n0", nil, 0, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n, tc.start)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			mustErrIs(t, err, tc.want)
		})
	}
}

func TestTourCost(t *testing.T) {
	m := dense(t, [][]float64{
		{0, 1, 9},
		{9, 0, 1},
		{1, Inf, 0},
	})

	c, err := tsp.TourCost(m, []int{0, 1, 2, 0})
	if err != nil || c != 3 {
		t.Fatalf("TourCost = %v, %v; want 3, nil", c, err)
	}

	_, err = tsp.TourCost(m, []int{0, 2, 1, 0})
	mustErrIs(t, err, tsp.ErrIncompleteGraph)

	_, err = tsp.TourCost(m, []int{0})
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(m, []int{0, 3, 0})
	mustErrIs(t, err, tsp.ErrDimensionMismatch)

	rect, _ := matrix.NewDense(2, 3)
	_, err = tsp.TourCost(rect, []int{0, 1, 0})
	mustErrIs(t, err, tsp.ErrNonSquare)

	neg := dense(t, [][]float64{{0, -2}, {1, 0}})
	_, err = tsp.TourCost(neg, []int{0, 1, 0})
	mustErrIs(t, err, tsp.ErrNegativeWeight)
}

func TestFormatAndEqualTours(t *testing.T) {
	if got := tsp.FormatTour([]int{0, 1, 3, 2, 0}); got != "0→1→3→2→0" {
		t.Fatalf("FormatTour = %q", got)
	}
	if got := tsp.FormatTour(nil); got != "∅" {
		t.Fatalf("FormatTour(nil) = %q", got)
	}
	if !tsp.EqualTours([]int{0, 1, 0}, []int{0, 1, 0}) {
		t.Fatal("equal tours reported different")
	}
	if tsp.EqualTours([]int{0, 1, 2, 0}, []int{0, 2, 1, 0}) {
		t.Fatal("different tours reported equal")
	}
}

func TestParseFrontierKind(t *testing.T) {
	for in, want := range map[string]tsp.FrontierKind{"": tsp.FrontierTree, "tree": tsp.FrontierTree, "scan": tsp.FrontierScan} {
		got, err := tsp.ParseFrontierKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseFrontierKind(%q) = %v, %v", in, got, err)
		}
	}
	_, err := tsp.ParseFrontierKind("heap")
	mustErrIs(t, err, tsp.ErrUnknownFrontier)
}

func TestValidateRows(t *testing.T) {
	if err := tsp.ValidateRows([][]float64{{0, 1}, {Inf, -5}}); err != nil {
		t.Fatalf("diagonal must not be validated: %v", err)
	}
	mustErrIs(t, tsp.ValidateRows([][]float64{{0}}), tsp.ErrDimensionMismatch)
	mustErrIs(t, tsp.ValidateRows([][]float64{{0, 1}, {1}}), tsp.ErrNonSquare)
	mustErrIs(t, tsp.ValidateRows([][]float64{{0, -1}, {1, 0}}), tsp.ErrNegativeWeight)
	mustErrIs(t, tsp.ValidateRows([][]float64{{0, math.NaN()}, {1, 0}}), tsp.ErrNaNWeight)
	if err := tsp.ValidateRows([][]float64{{math.NaN(), 1}, {1, math.NaN()}}); err != nil {
		t.Fatalf("NaN on the diagonal must be ignored: %v", err)
	}
}
