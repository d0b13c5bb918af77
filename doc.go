// Package tspbb is an exact solver for the travelling-salesman problem on
// weighted directed graphs given as distance matrices.
//
// The search is best-first branch and bound with Little's reduction as the
// lower bound: every open node carries its own reduced matrix, the frontier
// always yields the node with the smallest bound, and a node is discarded as
// soon as its bound cannot beat the best tour found so far.
//
// Layout:
//
//	matrix/   dense row-major float64 matrices, +Inf marks a missing edge
//	tsp/      reduction, frontier, branch-and-bound engine, tour helpers
//	builder/  seeded random, complete, ring and Euclidean instances
//	internal/ config, cache, metrics, HTTP server and client, CLI
//	cmd/      the tspbb binary
//
// Quick start:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	res, _ := tsp.Solve(m, tsp.DefaultOptions())
//	// res.Tour == [0 1 3 2 0], res.Cost == 80
//
// The same solver runs behind POST /solve (tspbb serve) and from files
// (tspbb solve cities.json).
package tspbb
