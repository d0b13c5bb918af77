// SPDX-License-Identifier: MIT

// Package builder generates distance matrices for the tsp solver: seeded
// random instances, Euclidean instances from 2-D points, and small fixed
// topologies whose optimal tour is known in advance.
//
// All constructors return a fresh *matrix.Dense with a zero diagonal and
// +Inf for missing edges. Randomness flows only through the *rand.Rand set
// with WithSeed or WithRand, so a seed pins the instance.
//
//	m, _ := builder.Random(12, builder.WithSeed(7), builder.WithMissing(0.2))
//	res, _ := tsp.Solve(m, tsp.DefaultOptions())
package builder
