// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// WeightFn draws one edge weight. r is nil for deterministic builds, so
// stochastic functions must be paired with WithSeed or WithRand.
type WeightFn func(r *rand.Rand) float64

// Const always returns w.
func Const(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformInt draws integers uniformly from [lo, hi]. It returns lo when r is
// nil. Panics if lo > hi or lo < 0.
func UniformInt(lo, hi int) WeightFn {
	if lo < 0 || lo > hi {
		panic("builder: UniformInt needs 0 ≤ lo ≤ hi")
	}
	span := hi - lo + 1
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(span))
	}
}

// UniformFloat draws reals uniformly from [lo, hi). It returns lo when r is
// nil.
func UniformFloat(lo, hi float64) WeightFn {
	if lo < 0 || lo > hi {
		panic("builder: UniformFloat needs 0 ≤ lo ≤ hi")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	}
}
