// SPDX-License-Identifier: MIT
// Package: matrix
//
// csr.go - compressed sparse row matrix backed by sparse.CSR.
//
// Layout:
//   - indptr, ind and data are views of the sparse.CSR raw storage;
//     row i owns ind[indptr[i]:indptr[i+1]].
//   - Column indices inside a row are strictly increasing and no stored
//     value is zero. fromSparse restores this after every library call.
//   - CSR values are immutable after construction; every operation that
//     "changes" a matrix returns a fresh CSR.

package matrix

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
)

const (
	opAt       = "CSR.At"
	opAdd      = "CSR.Add"
	opMulVec   = "CSR.MulVec"
	opNeighbor = "CSR.Neighbors"
)

// CSR is an immutable sparse matrix in compressed-sparse-row form.
type CSR struct {
	r, c   int
	sp     *sparse.CSR
	indptr []int
	ind    []int
	data   []float64
}

// emptyCSR returns an r×c matrix with no stored entries.
func emptyCSR(r, c int) *CSR {
	return fromSparse(sparse.NewCSR(r, c, make([]int, r+1), []int{}, []float64{}))
}

// fromSparse wraps sp, first normalising rows with unsorted or repeated
// columns and dropping explicit zeros. Rows that are already canonical
// are not copied.
func fromSparse(sp *sparse.CSR) *CSR {
	raw := sp.RawMatrix()
	r, c := raw.I, raw.J
	nnz := raw.Indptr[r]
	indptr, ind, data := raw.Indptr[:r+1], raw.Ind[:nnz], raw.Data[:nnz]

	if !canonical(r, indptr, ind, data) {
		indptr, ind, data = normalise(r, indptr, ind, data)
		sp = sparse.NewCSR(r, c, indptr, ind, data)
	}

	return &CSR{r: r, c: c, sp: sp, indptr: indptr, ind: ind, data: data}
}

func canonical(r int, indptr, ind []int, data []float64) bool {
	for i := 0; i < r; i++ {
		for k := indptr[i]; k < indptr[i+1]; k++ {
			if data[k] == 0 || (k > indptr[i] && ind[k] <= ind[k-1]) {
				return false
			}
		}
	}

	return true
}

// normalise sorts each row by column, sums repeated columns and drops zeros.
func normalise(r int, indptr, ind []int, data []float64) ([]int, []int, []float64) {
	outPtr := make([]int, r+1)
	outInd := make([]int, 0, len(ind))
	outData := make([]float64, 0, len(data))
	var row []Entry
	for i := 0; i < r; i++ {
		row = row[:0]
		for k := indptr[i]; k < indptr[i+1]; k++ {
			row = append(row, Entry{Row: i, Col: ind[k], Value: data[k]})
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Col < row[b].Col })
		for k := 0; k < len(row); {
			col, sum := row[k].Col, 0.0
			for ; k < len(row) && row[k].Col == col; k++ {
				sum += row[k].Value
			}
			if sum != 0 {
				outInd = append(outInd, col)
				outData = append(outData, sum)
			}
		}
		outPtr[i+1] = len(outData)
	}

	return outPtr, outInd, outData
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// Dims returns (rows, cols), mirroring gonum's mat.Matrix convention.
func (m *CSR) Dims() (int, int) { return m.r, m.c }

// Nnz returns the number of stored (non-zero) entries.
func (m *CSR) Nnz() int { return len(m.data) }

// Sparse exposes the underlying sparse.CSR, which implements mat.Matrix.
// It shares storage with m and must not be mutated.
func (m *CSR) Sparse() *sparse.CSR { return m.sp }

// At returns the value stored at (i, j), or 0 when the cell is empty.
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(d) where d is the number of entries in row i.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}

	return m.sp.At(i, j), nil
}

// Row returns the column indices and values of row i.
// The returned slices alias internal storage and must not be mutated.
func (m *CSR) Row(i int) ([]int, []float64) {
	lo, hi := m.indptr[i], m.indptr[i+1]
	return m.ind[lo:hi], m.data[lo:hi]
}

// Entries returns all stored triplets in row-major order.
// Complexity: O(nnz).
func (m *CSR) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out = append(out, Entry{Row: i, Col: m.ind[k], Value: m.data[k]})
		}
	}

	return out
}

// T returns the transpose as a new CSR.
// Row and column indices swap roles in a fresh sparse.COO which is then
// compressed, so the result owns its storage.
// Complexity: O(rows + cols + nnz).
func (m *CSR) T() *CSR {
	if len(m.data) == 0 {
		return emptyCSR(m.c, m.r)
	}
	rows := make([]int, len(m.ind))
	cols := make([]int, len(m.ind))
	data := make([]float64, len(m.data))
	copy(rows, m.ind)
	copy(data, m.data)
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			cols[k] = i
		}
	}

	return fromSparse(sparse.NewCOO(m.c, m.r, rows, cols, data).ToCSR())
}

// Add returns m + b. Both operands must have the same shape.
// Entries that cancel to exactly zero are dropped.
// Complexity: O(rows + nnz(m) + nnz(b)).
func (m *CSR) Add(b *CSR) (*CSR, error) {
	if b == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if m.r != b.r || m.c != b.c {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opAdd, m.r, m.c, b.r, b.c, ErrDimensionMismatch)
	}
	// Values are immutable, so an empty operand lets the other be shared.
	if len(b.data) == 0 {
		return m, nil
	}
	if len(m.data) == 0 {
		return b, nil
	}

	sum := &sparse.CSR{}
	sum.Add(m.sp, b.sp)

	return fromSparse(sum), nil
}

// MulVec writes m·x into dst and returns it. If dst is nil a new slice is allocated.
// Returns ErrDimensionMismatch when len(x) != Cols() or a non-nil dst has the wrong length.
// Complexity: O(rows + nnz).
func (m *CSR) MulVec(dst, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("%s: len(x)=%d, cols=%d: %w", opMulVec, len(x), m.c, ErrDimensionMismatch)
	}
	if dst == nil {
		dst = make([]float64, m.r)
	} else if len(dst) != m.r {
		return nil, fmt.Errorf("%s: len(dst)=%d, rows=%d: %w", opMulVec, len(dst), m.r, ErrDimensionMismatch)
	}
	// sparse.CSR.MulVecTo accumulates into dst.
	for i := range dst {
		dst[i] = 0
	}
	if len(m.data) > 0 {
		m.sp.MulVecTo(dst, false, x)
	}

	return dst, nil
}

// Neighbors returns the column indices with a stored entry in row i,
// i.e. the adjacency list of vertex i. The slice aliases internal storage.
func (m *CSR) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", opNeighbor, i, ErrOutOfRange)
	}

	return m.ind[m.indptr[i]:m.indptr[i+1]], nil
}
