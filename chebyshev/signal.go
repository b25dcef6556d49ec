// SPDX-License-Identifier: MIT
// Package: sbmlab/chebyshev
//
// signal.go — graph filtering g(L)·x with the three-term recurrence.
//
// With M = (2/lmax)·L − I (spectrum of L in [0, lmax] mapped onto [−1, 1]):
//
//	T_0 x = x
//	T_1 x = M x
//	T_k x = 2 M T_{k−1} x − T_{k−2} x
//
// Complexity: K−1 calls to MulVec plus O(K·n) vector work; four n-vectors of
// scratch space.

package chebyshev

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/sbmlab/matrix"
)

const (
	methodFilterSignal = "FilterSignal"
	methodLambdaMax    = "LambdaMax"
)

// FilterSignal returns Σ c_k T_k((2/lmax)·L − I)·x. The spectral interval is
// always [0, lmax]; of the options only WithHalfConstant applies.
// L must be square with len(x) == L.Rows(); x is not modified.
func FilterSignal(L matrix.Operator, coeffs []float64, lmax float64, x []float64, opts ...Option) ([]float64, error) {
	if L == nil {
		return nil, fmt.Errorf("%s: %w", methodFilterSignal, ErrNilOperator)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFilterSignal, ErrNoCoefficients)
	}
	if !(lmax > 0) || math.IsInf(lmax, 0) {
		return nil, fmt.Errorf("%s: lmax=%g: %w", methodFilterSignal, lmax, ErrBadLambdaMax)
	}
	n := L.Rows()
	if L.Cols() != n {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodFilterSignal, n, L.Cols(), matrix.ErrNonSquare)
	}
	if len(x) != n {
		return nil, fmt.Errorf("%s: len(x)=%d, n=%d: %w", methodFilterSignal, len(x), n, matrix.ErrDimensionMismatch)
	}
	cfg := newConfig(opts...)

	prev := append([]float64(nil), x...)
	out := make([]float64, n)
	floats.ScaleTo(out, cfg.constant()*coeffs[0], prev)
	if len(coeffs) == 1 {
		return out, nil
	}

	lx := make([]float64, n)
	cur := make([]float64, n)
	if _, err := L.MulVec(lx, prev); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFilterSignal, err)
	}
	floats.ScaleTo(cur, 2/lmax, lx)
	floats.AddScaled(cur, -1, prev)
	floats.AddScaled(out, coeffs[1], cur)

	next := make([]float64, n)
	for k := 2; k < len(coeffs); k++ {
		if _, err := L.MulVec(lx, cur); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFilterSignal, err)
		}
		floats.ScaleTo(next, 4/lmax, lx)
		floats.AddScaled(next, -2, cur)
		floats.AddScaled(next, -1, prev)
		floats.AddScaled(out, coeffs[k], next)
		prev, cur, next = cur, next, prev
	}

	return out, nil
}

// lambdaSeed fixes the start vector of LambdaMax so estimates are repeatable.
const lambdaSeed = 0x5eed

// LambdaMax estimates the largest-magnitude eigenvalue of a symmetric operator
// by power iteration from a fixed pseudo-random start vector. The estimate is
// a Rayleigh quotient, hence a lower bound for positive semi-definite L;
// callers usually pad it by a few percent before using it as lmax.
func LambdaMax(L matrix.Operator, iters int) (float64, error) {
	if L == nil {
		return 0, fmt.Errorf("%s: %w", methodLambdaMax, ErrNilOperator)
	}
	n := L.Rows()
	if L.Cols() != n {
		return 0, fmt.Errorf("%s: %dx%d: %w", methodLambdaMax, n, L.Cols(), matrix.ErrNonSquare)
	}
	if n == 0 {
		return 0, nil
	}

	u := distuv.Uniform{Min: -1, Max: 1, Src: rand.New(rand.NewPCG(lambdaSeed, lambdaSeed))}
	v := make([]float64, n)
	for i := range v {
		v[i] = u.Rand()
	}
	floats.Scale(1/floats.Norm(v, 2), v)

	w := make([]float64, n)
	var lambda float64
	for it := 0; it < max(iters, 1); it++ {
		if _, err := L.MulVec(w, v); err != nil {
			return 0, fmt.Errorf("%s: %w", methodLambdaMax, err)
		}
		lambda = floats.Dot(v, w)
		norm := floats.Norm(w, 2)
		if norm == 0 {
			return 0, nil
		}
		floats.ScaleTo(v, 1/norm, w)
	}

	return lambda, nil
}
