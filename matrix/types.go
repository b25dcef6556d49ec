// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse kernels.
// This file intentionally contains ONLY domain-facing types and interfaces.
// Errors live in errors.go per the package conventions.
package matrix

// Operator is the minimal read-only surface needed by iterative numeric code
// (Chebyshev recurrences, power iterations): a shape and a matrix-vector product.
//
// Complexity notes: Rows/Cols are O(1); MulVec is expected O(nnz) for sparse
// implementations.
type Operator interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// MulVec writes A·x into dst (len(dst) == Rows(), len(x) == Cols()) and
	// returns dst. Returns ErrDimensionMismatch on bad lengths.
	MulVec(dst, x []float64) ([]float64, error)
}

// Entry is one stored (row, col, value) triplet.
// Used by COO appends and CSR iteration; ordering is documented per producer.
type Entry struct {
	Row, Col int
	Value    float64
}
