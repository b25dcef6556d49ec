// Package matrix offers the sparse adjacency representation used by the
// SBM generator and the helpers that consume it.
//
// The matrix package provides:
//
//   - COO, a coordinate-list builder: append (row, col, value) triplets in any
//     order, duplicates allowed.
//   - CSR, an immutable compressed-sparse-row matrix produced by COO.ToCSR.
//     Duplicate coordinates are summed during compression, exactly like a
//     coordinate matrix converted to CSR in array toolkits.
//
// Storage and kernels come from github.com/james-bowman/sparse; this package
// adds error returns in place of panics, sentinel errors and a canonical
// row layout (sorted columns, no stored zeros). CSR.Sparse exposes the
// library matrix for code that wants a mat.Matrix.
//   - Structural queries (IsSymmetric, ZeroDiagonal, Degrees, Neighbors) and
//     the few algebraic kernels the graph filters need (T, Add, MulVec,
//     Laplacian).
//   - Bridges to gonum: ToDense (mat.Dense) and ToGraph
//     (simple.WeightedUndirectedGraph) for spectral and community code.
//
// Matrices are row-major with 0-based indices. Memory is O(rows + nnz), so
// graphs with tens of thousands of nodes and a few edges per node stay cheap.
//
//	coo, _ := matrix.NewCOO(3, 3)
//	_ = coo.Append(0, 1, 1)
//	a := coo.ToCSR()
//	sym, _ := a.Add(a.T()) // A + Aᵀ
package matrix
