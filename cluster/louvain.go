// SPDX-License-Identifier: MIT
// Package: sbmlab/cluster
//
// louvain.go — community recovery by modularity maximisation.
//
// Stage 1 (validate): adjacency non-nil, square, symmetric, non-negative;
// resolution > 0.
// Stage 2 (bridge): matrix.CSR.ToGraph, one weighted edge per stored pair.
// Stage 3 (detect): gonum community.Modularize (multi-level Louvain).
// Stage 4 (label): flatten the top-level communities and renumber them in
// first-appearance order over node ids 0..n−1.
//
// Determinism: with a non-nil rng the node visiting order, hence the result,
// is reproducible; a nil rng falls back to gonum's global source.

package cluster

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/community"

	"github.com/katalvlaran/sbmlab/matrix"
)

const methodLouvain = "Louvain"

// Louvain partitions the graph with adjacency adj and returns one label per
// node in 0..k−1, numbered by first appearance. Edge weights are taken from
// the stored values of adj; the diagonal is ignored.
func Louvain(adj *matrix.CSR, resolution float64, rng *rand.Rand) ([]int, error) {
	if adj == nil {
		return nil, fmt.Errorf("%s: %w", methodLouvain, ErrNilAdjacency)
	}
	if adj.Rows() != adj.Cols() || !adj.IsSymmetric() {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodLouvain, adj.Rows(), adj.Cols(), ErrNotSymmetric)
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("%s: resolution=%g: %w", methodLouvain, resolution, ErrBadResolution)
	}

	for _, e := range adj.Entries() {
		if e.Value < 0 {
			return nil, fmt.Errorf("%s: A[%d][%d]=%g: %w", methodLouvain, e.Row, e.Col, e.Value, ErrNegativeWeight)
		}
	}

	n := adj.Rows()
	labels := make([]int, n)
	if adj.Nnz() == 0 {
		// No edges: every node is its own community.
		for i := range labels {
			labels[i] = i
		}
		return labels, nil
	}

	g, err := adj.ToGraph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLouvain, err)
	}

	var src rand.Source
	if rng != nil {
		src = rng
	}
	reduced := community.Modularize(g, resolution, src)
	for k, members := range reduced.Communities() {
		for _, v := range members {
			labels[v.ID()] = k
		}
	}

	return Relabel(labels), nil
}

// Relabel renumbers labels to 0..k−1 in order of first appearance, so that two
// assignments describing the same partition compare equal. The input is not
// modified.
func Relabel(labels []int) []int {
	out := make([]int, len(labels))
	seen := make(map[int]int, 8)
	for i, l := range labels {
		id, ok := seen[l]
		if !ok {
			id = len(seen)
			seen[l] = id
		}
		out[i] = id
	}

	return out
}
