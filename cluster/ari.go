// SPDX-License-Identifier: MIT
// Package: sbmlab/cluster
//
// ari.go — adjusted Rand index (Hubert & Arabie, 1985).
//
// Given partitions a and b of the same n elements, with contingency counts
// n_ij, row sums a_i and column sums b_j:
//
//	t1 = C(n,2)                         total number of pairs
//	t2 = Σ n_ij²
//	t3 = ½(Σ a_i² + Σ b_j²)
//	nc = (n(n²+1) − (n+1)Σa_i² − (n+1)Σb_j² + 2Σa_i²Σb_j²/n) / (2(n−1))
//	ARI = (t1 + t2 − t3 − nc) / (t1 − nc)
//
// When t1 == nc (both partitions trivial) the index is defined as 0.
//
// Complexity: O(n) time, O(ka·kb) worst-case memory for the sparse
// contingency table (only observed label pairs are stored).

package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

const methodARI = "AdjustedRandIndex"

// ariTol is the relative tolerance of the t1 == nc degenerate check.
// For a single shared cluster at n = 10⁶, t1-nc evaluates to ~6e-5, not 0.
const ariTol = 1e-12

// AdjustedRandIndex compares two community assignments of the same elements.
// Label values are arbitrary integers (negative allowed); only equality
// matters. The result is symmetric in a and b.
func AdjustedRandIndex(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%s: len(a)=%d len(b)=%d: %w", methodARI, len(a), len(b), ErrLengthMismatch)
	}
	n := len(a)
	if n < 2 {
		return 0, fmt.Errorf("%s: n=%d: %w", methodARI, n, ErrTooFewElements)
	}

	type pair struct{ x, y int }
	cells := make(map[pair]int)
	rows := make(map[int]int)
	cols := make(map[int]int)
	for i := 0; i < n; i++ {
		cells[pair{a[i], b[i]}]++
		rows[a[i]]++
		cols[b[i]]++
	}

	var t2, nis, njs float64
	for _, v := range cells {
		t2 += float64(v) * float64(v)
	}
	for _, v := range rows {
		nis += float64(v) * float64(v)
	}
	for _, v := range cols {
		njs += float64(v) * float64(v)
	}

	nf := float64(n)
	t1 := float64(combin.Binomial(n, 2))
	t3 := 0.5 * (nis + njs)
	nc := (nf*(nf*nf+1) - (nf+1)*nis - (nf+1)*njs + 2*(nis*njs)/nf) / (2 * (nf - 1))

	if math.Abs(t1-nc) <= ariTol*math.Max(1, t1) {
		return 0, nil
	}

	return (t1 + t2 - t3 - nc) / (t1 - nc), nil
}
