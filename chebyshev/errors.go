// SPDX-License-Identifier: MIT
// Package chebyshev: sentinel error set.

package chebyshev

import "errors"

var (
	// ErrNoCoefficients is returned for an empty coefficient slice.
	ErrNoCoefficients = errors.New("chebyshev: no coefficients")

	// ErrBadOrder is returned for a negative expansion order.
	ErrBadOrder = errors.New("chebyshev: order must be non-negative")

	// ErrNilFunction is returned when Coefficients gets a nil function.
	ErrNilFunction = errors.New("chebyshev: nil function")

	// ErrBadLambdaMax is returned when the spectral upper bound is not a
	// positive finite number.
	ErrBadLambdaMax = errors.New("chebyshev: lmax must be positive and finite")

	// ErrNilOperator is returned when FilterSignal or LambdaMax get a nil operator.
	ErrNilOperator = errors.New("chebyshev: nil operator")
)
