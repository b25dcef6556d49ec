// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// sample.go — random primitives used by Generate.
//
// Determinism:
//   - Draws consume the generator in a fixed order for fixed inputs.
//   - Degenerate draws (p ∈ {0,1}, k ∈ {0,m}) consume nothing, so they work
//     without a generator and do not perturb the stream.

package sbm

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// drawBinomial returns a Binomial(m, p) variate.
// p ≤ 0 yields 0 and p ≥ 1 yields m exactly; rng may be nil in those cases.
func drawBinomial(rng *rand.Rand, m int, p float64) int {
	switch {
	case m <= 0 || p <= 0:
		return 0
	case p >= 1:
		return m
	}
	b := distuv.Binomial{N: float64(m), P: p, Src: rng}

	return int(b.Rand())
}

// sampleDistinct returns k distinct integers chosen uniformly from [0, m)
// without replacement, using Floyd's algorithm: O(k) time and memory no
// matter how large m is. k is clamped to [0, m]. When k == m the full range
// is returned in ascending order without touching rng.
func sampleDistinct(rng *rand.Rand, m, k int) []int {
	if k > m {
		k = m
	}
	if k <= 0 {
		return nil
	}
	out := make([]int, 0, k)
	if k == m {
		for v := 0; v < m; v++ {
			out = append(out, v)
		}
		return out
	}

	seen := make(map[int]struct{}, k)
	for j := m - k; j < m; j++ {
		t := rng.IntN(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
