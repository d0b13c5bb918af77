// Package tsp provides an exact Travelling Salesman solver based on Little's
// reduction algorithm with a best-first branch-and-bound search.
//
// It works on a dense distance matrix (matrix.Matrix) where:
//   - matrix.Inf (math.Inf(1)) signals "no direct edge",
//   - zero is a valid, finite weight,
//   - the diagonal is ignored (always treated as "no edge"),
//   - w[i][j] and w[j][i] may differ (asymmetric ATSP is honoured).
//
// Entry points:
//
//   - Solve / SolveContext: best-first branch-and-bound. Every node carries a
//     reduced working matrix; its bound is cost-so-far plus the reduction total.
//     The frontier pops the minimum bound, earliest-inserted first on ties, so
//     repeated runs return the same tour.
//
//   - Reduce: row-then-column minimum subtraction, the admissible bound kernel.
//
//   - ValidateTour / TourCost: tour invariants and cost over any matrix.
//
// Tours start and end at city 0: for n cities len(Tour)==n+1 and
// Tour[0]==Tour[n]==0. A matrix without any finite Hamiltonian cycle is not an
// error: Result.Found is false and Result.Cost is +Inf.
//
// Complexity: worst case exponential in n; each expansion costs O(n²) for the
// matrix copy and reduction. SolveContext adds cooperative cancellation,
// a wall-clock limit and a node budget for production use.
package tsp
