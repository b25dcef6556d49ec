// SPDX-License-Identifier: MIT
// Package: sbmlab/chebyshev
//
// filter.go — scalar evaluation by Clenshaw's recurrence.
//
//	b_{K} = b_{K+1} = 0
//	b_k   = c_k + 2y·b_{k+1} − b_{k+2},   k = K−1 … 1
//	g     = w·c_0 + y·b_1 − b_2            (w = 1, or ½ with WithHalfConstant)
//
// Complexity: O(K) per evaluation, no allocation.

package chebyshev

import "fmt"

const methodApproxFilter = "ApproxFilter"

// Filter evaluates an expansion at x.
type Filter func(x float64) float64

// ApproxFilter returns the evaluator of Σ c_k T_k on the configured interval.
// The coefficients are copied; later changes to coeffs do not affect the
// filter. Points outside the interval are extrapolated by the same polynomial.
func ApproxFilter(coeffs []float64, opts ...Option) (Filter, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodApproxFilter, ErrNoCoefficients)
	}
	cfg := newConfig(opts...)
	c := append([]float64(nil), coeffs...)
	w0 := cfg.constant()

	return func(x float64) float64 {
		return clenshaw(c, w0, cfg.scale(x))
	}, nil
}

func clenshaw(c []float64, w0, y float64) float64 {
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = c[k]+2*y*b1-b2, b1
	}

	return w0*c[0] + y*b1 - b2
}
