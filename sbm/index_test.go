// SPDX-License-Identifier: MIT
package sbm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmlab/sbm"
)

func TestUpperSub_FirstCells(t *testing.T) {
	tests := []struct {
		ind, row, col int
	}{
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 3},
		{4, 1, 4},
		{5, 2, 4},
		{6, 3, 4},
		{7, 1, 5},
		{10, 4, 5},
	}
	for _, tc := range tests {
		row, col := sbm.UpperSub(tc.ind)
		assert.Equal(t, tc.row, row, "row of %d", tc.ind)
		assert.Equal(t, tc.col, col, "col of %d", tc.ind)
	}

	// 0-based convention used by the sampler: index 1 is cell (0,1).
	row, col := sbm.UpperSub(1)
	assert.Equal(t, 0, row-1)
	assert.Equal(t, 1, col-1)
}

// TestUpperSub_Bijection checks that 1..s(s-1)/2 enumerates every strict
// upper-triangle cell of an s×s matrix exactly once.
func TestUpperSub_Bijection(t *testing.T) {
	for _, s := range []int{2, 3, 7, 50, 401} {
		m := s * (s - 1) / 2
		seen := make(map[[2]int]bool, m)
		for ind := 1; ind <= m; ind++ {
			row, col := sbm.UpperSub(ind)
			require.True(t, row >= 1 && row < col && col <= s, "s=%d ind=%d -> (%d,%d)", s, ind, row, col)
			key := [2]int{row, col}
			require.False(t, seen[key], "duplicate cell %v", key)
			seen[key] = true
		}
		require.Len(t, seen, m)
	}
}

func TestUpperSub_LargeIndex(t *testing.T) {
	// Last cell of a 20000-node block: (s-1, s).
	s := 20000
	m := s * (s - 1) / 2
	row, col := sbm.UpperSub(m)
	assert.Equal(t, s-1, row)
	assert.Equal(t, s, col)

	row, col = sbm.UpperSub(m + 1)
	assert.Equal(t, 1, row)
	assert.Equal(t, s+1, col)
}

func TestUpperSubs(t *testing.T) {
	rows, cols := sbm.UpperSubs([]int{1, 3, 6})
	assert.Equal(t, []int{1, 2, 3}, rows)
	assert.Equal(t, []int{2, 3, 4}, cols)

	rows, cols = sbm.UpperSubs(nil)
	assert.Empty(t, rows)
	assert.Empty(t, cols)
}
