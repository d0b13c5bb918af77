// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/tspbb/matrix"
)

// Random returns an n×n instance with weights from the configured WeightFn
// and each off-diagonal edge missing with the WithMissing probability.
// Requires WithSeed or WithRand.
//
// Draw order is row-major over (i, j), i ≠ j (upper triangle only when
// symmetric): first the weight, then the missing-edge coin if pMissing > 0.
//
// Complexity: O(n²).
func Random(n int, opts ...Option) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRand
	}

	m, err := matrix.NewSquare(n, 0)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (cfg.symmetric && j < i) {
				continue
			}
			w = cfg.weightFn(cfg.rng)
			if cfg.pMissing > 0 && cfg.rng.Float64() < cfg.pMissing {
				w = matrix.Inf
			}
			_ = m.Set(i, j, w)
			if cfg.symmetric {
				_ = m.Set(j, i, w)
			}
		}
	}

	return m, nil
}
