// SPDX-License-Identifier: MIT
// Package: sbmlab/chebyshev
//
// options.go — evaluation conventions.
//
// Defaults: interval [−1, 1], plain Σ c_k T_k.

package chebyshev

import (
	"fmt"
	"math"
)

// Option customizes ApproxFilter and Coefficients.
type Option func(*config)

type config struct {
	a, b float64
	half bool
}

func newConfig(opts ...Option) config {
	cfg := config{a: -1, b: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithInterval sets the approximation interval [a, b].
// Panics unless a < b and both are finite.
func WithInterval(a, b float64) Option {
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("chebyshev: WithInterval(%g, %g): need finite a < b", a, b))
	}
	return func(c *config) {
		c.a, c.b = a, b
	}
}

// WithHalfConstant selects the c_0/2 convention: the constant term is halved
// on evaluation and Coefficients returns the unhalved c_0.
func WithHalfConstant() Option {
	return func(c *config) {
		c.half = true
	}
}

// scale maps x ∈ [a, b] onto y ∈ [−1, 1].
func (c config) scale(x float64) float64 {
	return (2*x - c.a - c.b) / (c.b - c.a)
}

// unscale maps y ∈ [−1, 1] back onto [a, b].
func (c config) unscale(y float64) float64 {
	return 0.5*(c.b-c.a)*y + 0.5*(c.a+c.b)
}

// constant returns the weight of c_0 under the selected convention.
func (c config) constant() float64 {
	if c.half {
		return 0.5
	}

	return 1
}
