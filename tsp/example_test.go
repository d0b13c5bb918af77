// Package tsp_test provides runnable, deterministic examples for the
// branch-and-bound solver. Each example prints a tour and cost with a stable
// // Output: block.
package tsp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

// ExampleSolve solves the classic 4-city symmetric instance.
func ExampleSolve() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})

	res, err := tsp.Solve(m, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tsp.FormatTour(res.Tour), res.Cost)
	// Output: 0→1→3→2→0 80
}

// ExampleSolve_noSolution shows an instance where nobody can reach city 2.
func ExampleSolve_noSolution() {
	inf := math.Inf(1)
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{1, 1, 0},
	})

	res, _ := tsp.Solve(m, tsp.DefaultOptions())
	fmt.Println(res.Found, res.Cost)
	// Output: false +Inf
}

// ExampleSolve_asymmetric shows that edges are read in tour direction.
func ExampleSolve_asymmetric() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 9},
		{9, 0, 1},
		{1, 9, 0},
	})

	res, _ := tsp.Solve(m, tsp.DefaultOptions())
	fmt.Println(tsp.FormatTour(res.Tour), res.Cost)
	// Output: 0→1→2→0 3
}

// ExampleReduce prints the root lower bound of the classic instance.
func ExampleReduce() {
	inf := math.Inf(1)
	m, _ := matrix.NewDenseFromRows([][]float64{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	})

	lb, _ := tsp.Reduce(m)
	fmt.Println(lb)
	fmt.Print(m)
	// Output:
	// 70
	// [∞, 0, 0, 0]
	// [0, ∞, 20, 5]
	// [0, 20, ∞, 5]
	// [0, 5, 5, ∞]
}
