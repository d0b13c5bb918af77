// SPDX-License-Identifier: MIT

package builder

import "math/rand"

const defaultMaxWeight = 100

// config aggregates all builder knobs; options apply in order.
type config struct {
	rng       *rand.Rand
	weightFn  WeightFn
	pMissing  float64
	symmetric bool
}

func newConfig(opts ...Option) config {
	cfg := config{weightFn: UniformInt(1, defaultMaxWeight)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
