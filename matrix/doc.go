// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance-matrix primitives used by the
// tsp solvers.
//
// What & Why:
//
//	Matrix is a small interface over a two-dimensional mutable array of float64
//	values. Dense is its row-major implementation backed by a single flat slice,
//	which keeps clones to one allocation and lets hot loops index w[i*n+j]
//	without interface dispatch.
//
// Distance conventions:
//
//   - Inf (math.Inf(1)) marks "no usable edge" between two cities.
//   - Zero is a regular, finite weight. It never means "absent".
//   - Diagonal values are left to the consumer; the tsp solvers overwrite them.
//
// Interop:
//
//	FromGonum and ToGonum convert between Dense and gonum's mat.Dense, so
//	instances prepared with gonum can be fed to the solvers directly.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1). Clone and the constructors run in O(r*c).
package matrix
