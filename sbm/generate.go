// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// generate.go — the SBM sampler.
//
// Contract:
//   - q ≥ 1, len(sizes) == q, Σ sizes == n (else ErrSizeMismatch), sizes ≥ 0.
//   - pin, pout ∈ [0,1] after derivation (else ErrInvalidProbability).
//   - A generator is required unless pin and pout are both 0 or 1.
//   - All validation happens before the first draw; on error nothing is built.
//
// Complexity:
//   - Time:  O(q² + n + E log E) where E is the number of sampled edges
//            (the log factor comes from CSR compression).
//   - Space: O(n + E).
//
// Determinism:
//   - Draw order: for k asc {Binomial, pair indices} intra-community, then for
//     k asc {Binomial, pair indices} towards the later block.

package sbm

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sbmlab/matrix"
)

const methodGenerate = "Generate"

// Graph is a sampled SBM instance.
type Graph struct {
	// Adjacency is the symmetric N×N adjacency A + Aᵀ. Entries are 1 for every
	// sampled edge; the diagonal is empty.
	Adjacency *matrix.CSR

	// Truth holds the planted community of every node, 0..q−1, in node order.
	Truth []int

	// Sizes is a copy of the community sizes used for sampling.
	Sizes []int

	// PIn and POut are the derived edge probabilities.
	PIn, POut float64

	// IntraEdges[k] is the number of edges sampled inside community k.
	IntraEdges []int

	// InterEdges[k] is the number of edges sampled between community k and
	// the block of all later communities (len q−1).
	InterEdges []int
}

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.Truth) }

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int {
	total := 0
	for _, e := range g.IntraEdges {
		total += e
	}
	for _, e := range g.InterEdges {
		total += e
	}

	return total
}

// Generate samples an SBM graph with n nodes split into q contiguous
// communities of the given sizes, average degree c and difficulty epsi.
//
// Sampling never produces self-loops or repeated pairs: pair indices are drawn
// without replacement from the strict upper triangle of each diagonal block and
// from the rectangular block above the diagonal towards later communities.
//
// A single node in a single community (n = q = 1) has no pairs at all: the
// pin denominator n-q+(q-1)·epsi·n is zero, so Generate returns
// ErrInvalidProbability rather than an empty graph.
func Generate(n, q int, c, epsi float64, sizes []int, opts ...Option) (*Graph, error) {
	// 1) Validate (fail fast, no side effects on invalid input).
	if q < 1 {
		return nil, fmt.Errorf("%s: q=%d: %w", methodGenerate, q, ErrTooFewCommunities)
	}
	if len(sizes) != q {
		return nil, fmt.Errorf("%s: len(sizes)=%d != q=%d: %w", methodGenerate, len(sizes), q, ErrSizeMismatch)
	}
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total != n {
		return nil, fmt.Errorf("%s: sum(sizes)=%d != n=%d: %w", methodGenerate, total, n, ErrSizeMismatch)
	}
	for k, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("%s: sizes[%d]=%d: %w", methodGenerate, k, s, ErrNegativeSize)
		}
	}

	pin, pout := Probabilities(n, q, c, epsi)
	if !validProbability(pin) || !validProbability(pout) {
		return nil, fmt.Errorf("%s: pin=%g pout=%g not in [0,1]: %w", methodGenerate, pin, pout, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil && (stochastic(pin) || stochastic(pout)) {
		return nil, fmt.Errorf("%s: rng is required: %w", methodGenerate, ErrNeedRandSource)
	}
	rng := cfg.rng
	log := cfg.log.WithFields(logrus.Fields{"n": n, "q": q, "pin": pin, "pout": pout})

	// 2) Ground truth over contiguous ranges.
	off := offsets(sizes)
	truth := make([]int, n)
	for k := 0; k < q; k++ {
		for v := off[k]; v < off[k+1]; v++ {
			truth[v] = k
		}
	}

	var rows, cols []int
	intra := make([]int, q)
	inter := make([]int, max(q-1, 0))

	// 3) Intra-community edges: distinct upper-triangle cells of each diagonal block.
	for k := 0; k < q; k++ {
		s := sizes[k]
		m := s * (s - 1) / 2
		e := drawBinomial(rng, m, pin)
		for _, idx := range sampleDistinct(rng, m, e) {
			i, j := UpperSub(idx + 1)
			rows = append(rows, i-1+off[k])
			cols = append(cols, j-1+off[k])
		}
		intra[k] = e
		log.WithFields(logrus.Fields{"community": k, "size": s, "pairs": m, "edges": e}).
			Debug("sbm: intra-community edges")
	}

	// 4) Inter-community edges: community k against the block of all later ones.
	for k := 0; k < q-1; k++ {
		s := sizes[k]
		rest := n - off[k+1]
		m := s * rest
		e := drawBinomial(rng, m, pout)
		if e != 0 {
			for _, idx := range sampleDistinct(rng, m, e) {
				rows = append(rows, idx/rest+off[k])
				cols = append(cols, idx%rest+off[k+1])
			}
		}
		inter[k] = e
		log.WithFields(logrus.Fields{"community": k, "rest": rest, "pairs": m, "edges": e}).
			Debug("sbm: inter-community edges")
	}

	// 5) Assemble A from the directed pairs and symmetrise: A + Aᵀ.
	adj, err := assemble(n, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return &Graph{
		Adjacency:  adj,
		Truth:      truth,
		Sizes:      append([]int(nil), sizes...),
		PIn:        pin,
		POut:       pout,
		IntraEdges: intra,
		InterEdges: inter,
	}, nil
}

// assemble builds A (unit weights at (rows[i], cols[i])) and returns A + Aᵀ.
func assemble(n int, rows, cols []int) (*matrix.CSR, error) {
	coo, err := matrix.NewCOO(n, n)
	if err != nil {
		return nil, err
	}
	coo.Grow(len(rows))
	for i := range rows {
		if err = coo.Append(rows[i], cols[i], 1); err != nil {
			return nil, err
		}
	}
	a := coo.ToCSR()

	return a.Add(a.T())
}

// validProbability reports p ∈ [0,1] (NaN is rejected).
func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// stochastic reports whether drawing with probability p consumes randomness.
func stochastic(p float64) bool {
	return p > 0 && p < 1
}
