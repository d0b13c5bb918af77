// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewCities is returned when n < 2.
	ErrTooFewCities = errors.New("builder: need at least 2 cities")

	// ErrInvalidWeight is returned for negative or NaN fixed weights.
	ErrInvalidWeight = errors.New("builder: invalid weight")

	// ErrNeedRand is returned by stochastic constructors without an RNG.
	ErrNeedRand = errors.New("builder: stochastic constructor requires WithSeed or WithRand")
)
