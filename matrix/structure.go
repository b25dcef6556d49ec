// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural predicates over CSR adjacency (symmetry, diagonal, binary weights).
//   - Degree vector and the combinatorial Laplacian L = D − A.
//
// Determinism & Performance:
//   - All predicates are O(nnz) (symmetry via one transpose) and allocate at most O(nnz).

package matrix

import "fmt"

const opLaplacian = "CSR.Laplacian"

// IsSymmetric reports whether m equals its transpose exactly.
// Non-square matrices are never symmetric.
func (m *CSR) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	t := m.T()
	if len(t.data) != len(m.data) {
		return false
	}
	for i := range m.indptr {
		if m.indptr[i] != t.indptr[i] {
			return false
		}
	}
	for k := range m.ind {
		if m.ind[k] != t.ind[k] || m.data[k] != t.data[k] {
			return false
		}
	}

	return true
}

// ZeroDiagonal reports whether no entry is stored on the main diagonal.
func (m *CSR) ZeroDiagonal() bool {
	for i := 0; i < m.r && i < m.c; i++ {
		if v, _ := m.At(i, i); v != 0 {
			return false
		}
	}

	return true
}

// IsBinary reports whether every stored value equals 1.
// An SBM adjacency assembled from distinct pairs is always binary.
func (m *CSR) IsBinary() bool {
	for _, v := range m.data {
		if v != 1 {
			return false
		}
	}

	return true
}

// Degrees returns the weighted row sums of m.
// For a binary symmetric adjacency this is the vertex degree.
func (m *CSR) Degrees() []float64 {
	deg := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			deg[i] += m.data[k]
		}
	}

	return deg
}

// Laplacian returns L = D − A for a square matrix A.
// Existing diagonal entries of A are folded into the result.
// Returns ErrNonSquare for rectangular input.
// Complexity: O(rows + nnz).
func (m *CSR) Laplacian() (*CSR, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opLaplacian, m.r, m.c, ErrNonSquare)
	}
	deg := m.Degrees()
	coo, _ := NewCOO(m.r, m.c)
	coo.Grow(len(m.data) + m.r)
	for i := 0; i < m.r; i++ {
		if deg[i] != 0 {
			_ = coo.Append(i, i, deg[i])
		}
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			_ = coo.Append(i, m.ind[k], -m.data[k])
		}
	}

	return coo.ToCSR(), nil
}
