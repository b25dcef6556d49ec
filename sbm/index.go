// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// index.go — subscripts from a linear index into the strict upper triangle.
//
// Enumeration (1-based, column band by column band):
//
//	ind:  1      2      3      4      5      6    ...
//	     (1,2)  (1,3)  (2,3)  (1,4)  (2,4)  (3,4) ...
//
// Column j holds indices (j−1)(j−2)/2+1 .. j(j−1)/2, so a community of size s
// covers exactly 1..s(s−1)/2.

package sbm

import "math"

// UpperSub converts a 1-based linear index into the strictly upper-triangular
// part of a square matrix into 1-based (row, col) subscripts with row < col.
//
// The closed form is the triangular-number inversion evaluated in float64:
//
//	col = round(floor(−0.5 + 0.5·√(1 + 8·(ind−1))) + 2)
//	row = round(col·(3 − col)/2 + ind − 1)
//
// UpperSub(1) == (1, 2). ind must be ≥ 1; no check is made.
// Complexity: O(1).
func UpperSub(ind int) (row, col int) {
	k := float64(ind)
	j := math.Round(math.Floor(-0.5+0.5*math.Sqrt(1+8*(k-1))) + 2)
	i := math.Round(j*(3-j)/2 + k - 1)

	return int(i), int(j)
}

// UpperSubs is the element-wise form of UpperSub.
// Complexity: O(len(ind)).
func UpperSubs(ind []int) (rows, cols []int) {
	rows = make([]int, len(ind))
	cols = make([]int, len(ind))
	for k, v := range ind {
		rows[k], cols[k] = UpperSub(v)
	}

	return rows, cols
}
