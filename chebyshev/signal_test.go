// SPDX-License-Identifier: MIT
package chebyshev_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sbmlab/chebyshev"
	"github.com/katalvlaran/sbmlab/matrix"
	"github.com/katalvlaran/sbmlab/sbm"
)

// pathLaplacian returns the Laplacian of the path 0-1-…-(n−1).
func pathLaplacian(t *testing.T, n int) *matrix.CSR {
	t.Helper()
	coo, err := matrix.NewCOO(n, n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, coo.Append(i, i+1, 1))
		require.NoError(t, coo.Append(i+1, i, 1))
	}
	l, err := coo.ToCSR().Laplacian()
	require.NoError(t, err)
	return l
}

// spectralApply computes V·diag(g(λ))·Vᵀ·x from a dense eigendecomposition.
func spectralApply(t *testing.T, l *matrix.CSR, g func(float64) float64, x []float64) []float64 {
	t.Helper()
	d, err := l.ToDense()
	require.NoError(t, err)
	n, _ := d.Dims()
	sym := mat.NewSymDense(n, d.RawMatrix().Data)

	var eig mat.EigenSym
	require.True(t, eig.Factorize(sym, true))
	vals := eig.Values(nil)
	var v mat.Dense
	eig.VectorsTo(&v)

	var coef mat.VecDense
	coef.MulVec(v.T(), mat.NewVecDense(n, x))
	for i, lam := range vals {
		coef.SetVec(i, g(lam)*coef.AtVec(i))
	}
	var out mat.VecDense
	out.MulVec(&v, &coef)

	return out.RawVector().Data
}

func TestFilterSignal_MatchesSpectralPolynomial(t *testing.T) {
	l := pathLaplacian(t, 6)
	lmax := 4.0
	coeffs := []float64{0.3, -0.7, 0.25, 0.1, -0.05}
	x := []float64{1, -2, 0.5, 3, 0, -1}

	got, err := chebyshev.FilterSignal(l, coeffs, lmax, x)
	require.NoError(t, err)

	p, err := chebyshev.ApproxFilter(coeffs, chebyshev.WithInterval(0, lmax))
	require.NoError(t, err)
	want := spectralApply(t, l, p, x)
	assert.InDeltaSlice(t, want, got, 1e-10)
	assert.Equal(t, []float64{1, -2, 0.5, 3, 0, -1}, x)
}

func TestFilterSignal_HeatKernel(t *testing.T) {
	g, err := sbm.Generate(40, 2, 4, 0.1, []int{20, 20}, sbm.WithSeed(9))
	require.NoError(t, err)
	l, err := g.Adjacency.Laplacian()
	require.NoError(t, err)

	// Gershgorin: λmax(L) ≤ 2·max degree.
	var dmax float64
	for _, d := range g.Adjacency.Degrees() {
		dmax = math.Max(dmax, d)
	}
	lmax := 2 * dmax
	est, err := chebyshev.LambdaMax(l, 500)
	require.NoError(t, err)
	assert.LessOrEqual(t, est, lmax+1e-9)
	heat := func(lam float64) float64 { return math.Exp(-0.5 * lam) }

	coeffs, err := chebyshev.Coefficients(heat, 30, chebyshev.WithInterval(0, lmax))
	require.NoError(t, err)

	x := make([]float64, 40)
	x[0], x[25] = 1, -1
	got, err := chebyshev.FilterSignal(l, coeffs, lmax, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, spectralApply(t, l, heat, x), got, 1e-6)
}

func TestFilterSignal_HalfConstantConsistent(t *testing.T) {
	l := pathLaplacian(t, 5)
	f := func(lam float64) float64 { return 1 / (1 + lam) }
	x := []float64{0, 1, 0, 0, 2}

	plainC, err := chebyshev.Coefficients(f, 12, chebyshev.WithInterval(0, 4))
	require.NoError(t, err)
	halfC, err := chebyshev.Coefficients(f, 12, chebyshev.WithInterval(0, 4), chebyshev.WithHalfConstant())
	require.NoError(t, err)

	a, err := chebyshev.FilterSignal(l, plainC, 4, x)
	require.NoError(t, err)
	b, err := chebyshev.FilterSignal(l, halfC, 4, x, chebyshev.WithHalfConstant())
	require.NoError(t, err)
	assert.InDeltaSlice(t, a, b, 1e-12)
}

func TestFilterSignal_FirstOrder(t *testing.T) {
	// c = [0, 1], lmax = 2: T_1(L − I)·x = L·x − x.
	l := pathLaplacian(t, 3)
	x := []float64{1, 2, 3}
	got, err := chebyshev.FilterSignal(l, []float64{0, 1}, 2, x)
	require.NoError(t, err)
	lx, err := l.MulVec(nil, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{lx[0] - 1, lx[1] - 2, lx[2] - 3}, got, 1e-15)

	only, err := chebyshev.FilterSignal(l, []float64{2}, 2, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, only)
}

func TestFilterSignal_Errors(t *testing.T) {
	l := pathLaplacian(t, 3)
	x := []float64{1, 2, 3}

	_, err := chebyshev.FilterSignal(nil, []float64{1}, 2, x)
	require.ErrorIs(t, err, chebyshev.ErrNilOperator)
	_, err = chebyshev.FilterSignal(l, nil, 2, x)
	require.ErrorIs(t, err, chebyshev.ErrNoCoefficients)
	_, err = chebyshev.FilterSignal(l, []float64{1}, 0, x)
	require.ErrorIs(t, err, chebyshev.ErrBadLambdaMax)
	_, err = chebyshev.FilterSignal(l, []float64{1}, math.Inf(1), x)
	require.ErrorIs(t, err, chebyshev.ErrBadLambdaMax)
	_, err = chebyshev.FilterSignal(l, []float64{1}, 2, x[:2])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rect, err := matrix.NewCOO(2, 3)
	require.NoError(t, err)
	_, err = chebyshev.FilterSignal(rect.ToCSR(), []float64{1}, 2, x)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLambdaMax(t *testing.T) {
	// Path on 3 vertices: spectrum {0, 1, 3}.
	est, err := chebyshev.LambdaMax(pathLaplacian(t, 3), 200)
	require.NoError(t, err)
	assert.InDelta(t, 3, est, 1e-9)

	empty, err := matrix.NewCOO(0, 0)
	require.NoError(t, err)
	est, err = chebyshev.LambdaMax(empty.ToCSR(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, est)

	_, err = chebyshev.LambdaMax(nil, 10)
	require.ErrorIs(t, err, chebyshev.ErrNilOperator)
}
