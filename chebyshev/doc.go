// Package chebyshev evaluates and applies truncated Chebyshev expansions,
// the usual way to approximate spectral graph filters without an
// eigendecomposition.
//
// A filter g on an interval [a, b] is represented by coefficients c_0..c_{K−1}:
//
//	g(x) ≈ Σ_k c_k T_k(y),   y = (2x − a − b) / (b − a)
//
// where T_k is the Chebyshev polynomial of the first kind. The package offers:
//
//   - ApproxFilter: a scalar evaluator (Clenshaw recurrence).
//   - Coefficients: a Chebyshev–Gauss fit of any function on [a, b].
//   - FilterSignal: g(L)·x for a graph Laplacian L (any matrix.Operator),
//     computed with K−1 matrix–vector products and no dense algebra.
//   - LambdaMax: a power-iteration estimate of the largest eigenvalue, the
//     usual upper end of the spectral interval.
//
// By default the expansion is the plain sum above. WithHalfConstant switches
// to the c_0/2 convention used by graph-signal-processing toolboxes, where
// coefficients come from the same cosine sum for every k.
package chebyshev
