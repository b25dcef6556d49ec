// SPDX-License-Identifier: MIT
// Package: sbmlab/chebyshev
//
// coefficients.go — Chebyshev–Gauss interpolation.
//
// With N = order+1 nodes θ_j = π(j+½)/N and x_j = unscale(cos θ_j):
//
//	c_k = (2/N) Σ_j f(x_j) cos(k θ_j)
//
// and c_0 is halved unless WithHalfConstant is set. The result interpolates f
// at the N nodes, so polynomials of degree ≤ order are reproduced exactly (up
// to rounding).

package chebyshev

import (
	"fmt"
	"math"
)

const methodCoefficients = "Coefficients"

// Coefficients fits f on the configured interval and returns order+1
// coefficients suitable for ApproxFilter and FilterSignal with the same options.
func Coefficients(f func(float64) float64, order int, opts ...Option) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", methodCoefficients, ErrNilFunction)
	}
	if order < 0 {
		return nil, fmt.Errorf("%s: order=%d: %w", methodCoefficients, order, ErrBadOrder)
	}
	cfg := newConfig(opts...)

	n := order + 1
	fx := make([]float64, n)
	theta := make([]float64, n)
	for j := 0; j < n; j++ {
		theta[j] = math.Pi * (float64(j) + 0.5) / float64(n)
		fx[j] = f(cfg.unscale(math.Cos(theta[j])))
	}

	c := make([]float64, n)
	for k := 0; k < n; k++ {
		var s float64
		for j := 0; j < n; j++ {
			s += fx[j] * math.Cos(float64(k)*theta[j])
		}
		c[k] = 2 * s / float64(n)
	}
	if !cfg.half {
		c[0] /= 2
	}

	return c, nil
}
