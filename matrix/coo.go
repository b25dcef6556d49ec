// SPDX-License-Identifier: MIT
// Package: matrix
//
// coo.go - coordinate-list builder on top of sparse.COO.
//
// Contract:
//   - Entries are appended in any order; duplicates are allowed and are summed
//     by ToCSR (sparse.COO → sparse.CSR conversion semantics).
//   - Bounds and finiteness are checked at Append time so ToCSR itself cannot fail.
//   - Zero-valued appends are kept as explicit entries until compression,
//     where they are dropped.

package matrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
)

const (
	opNewCOO = "NewCOO"
	opAppend = "COO.Append"
)

// COO accumulates sparse triplets before compression.
// The zero value is not usable; construct with NewCOO.
type COO struct {
	r, c    int
	entries []Entry
}

// NewCOO returns an empty r×c coordinate builder.
// Zero-sized dimensions are allowed (an empty graph has a 0×0 adjacency).
// Complexity: O(1).
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewCOO, rows, cols, ErrBadShape)
	}

	return &COO{r: rows, c: cols}, nil
}

// Grow reserves capacity for n more entries.
func (m *COO) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(m.entries)-len(m.entries) < n {
		grown := make([]Entry, len(m.entries), len(m.entries)+n)
		copy(grown, m.entries)
		m.entries = grown
	}
}

// Rows returns the number of rows.
func (m *COO) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *COO) Cols() int { return m.c }

// Len returns the number of appended triplets, duplicates included.
func (m *COO) Len() int { return len(m.entries) }

// Append records value v at (i, j).
// Returns ErrOutOfRange for bad indices and ErrNaNInf for non-finite values.
// Complexity: amortised O(1).
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%s(%d,%d): %w", opAppend, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s(%d,%d): %w", opAppend, i, j, ErrNaNInf)
	}
	m.entries = append(m.entries, Entry{Row: i, Col: j, Value: v})

	return nil
}

// ToCSR compresses the builder into a CSR matrix.
// Duplicate coordinates are summed; entries whose sum is exactly zero are dropped.
// Column indices inside each row are strictly increasing in the result.
// The builder is left untouched and may be reused.
//
// Complexity: O(nnz log nnz) time, O(rows + nnz) space.
func (m *COO) ToCSR() *CSR {
	if len(m.entries) == 0 || m.r == 0 || m.c == 0 {
		return emptyCSR(m.r, m.c)
	}

	// Triplets go to sparse.NewCOO in row-major order so each compressed
	// row comes out with ascending columns.
	sorted := make([]Entry, len(m.entries))
	copy(sorted, m.entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})
	rows := make([]int, len(sorted))
	cols := make([]int, len(sorted))
	data := make([]float64, len(sorted))
	for k, e := range sorted {
		rows[k], cols[k], data[k] = e.Row, e.Col, e.Value
	}

	return fromSparse(sparse.NewCOO(m.r, m.c, rows, cols, data).ToCSR())
}
