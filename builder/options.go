// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors validate their arguments and panic on meaningless
// input; constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a constructor by mutating a config before generation.
type Option func(*config)

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator used by Random and
// Complete. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithMissing makes Random drop each off-diagonal edge with probability p.
// Panics unless 0 ≤ p < 1.
func WithMissing(p float64) Option {
	if !(p >= 0 && p < 1) {
		panic(fmt.Sprintf("builder: WithMissing(%v) outside [0,1)", p))
	}
	return func(c *config) {
		c.pMissing = p
	}
}

// WithSymmetric mirrors (i,j) onto (j,i), including missing edges.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}
