// SPDX-License-Identifier: MIT
// Package: matrix
//
// convert.go - bridges from CSR to gonum types.
//
// Contract:
//   - ToDense materialises the full r×c array (O(r·c) memory); use it for small
//     graphs, spectral checks and golden tests only.
//   - ToGraph maps vertex i to simple.Node(i) and every stored upper-triangle
//     entry (i<j) to one weighted undirected edge. Diagonal entries are ignored.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

const (
	opToDense = "CSR.ToDense"
	opToGraph = "CSR.ToGraph"
)

// ToDense copies m into a gonum dense matrix.
// gonum rejects zero-sized dense matrices, so an empty shape returns ErrBadShape.
func (m *CSR) ToDense() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToDense, m.r, m.c, ErrBadShape)
	}

	return m.sp.ToDense(), nil
}

// ToGraph converts a symmetric square adjacency into a gonum weighted
// undirected graph with nodes 0..n-1 (isolated vertices included).
// Returns ErrNonSquare for rectangular input.
func (m *CSR) ToGraph() (*simple.WeightedUndirectedGraph, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGraph, m.r, m.c, ErrNonSquare)
	}
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < m.r; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.ind[k]
			if j <= i {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), m.data[k]))
		}
	}

	return g, nil
}
