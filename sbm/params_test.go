// SPDX-License-Identifier: MIT
package sbm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sbmlab/sbm"
)

func TestParseParams(t *testing.T) {
	p, err := sbm.ParseParams([]byte(`
n: 1000
q: 4
c: 16
epsilon_ratio: 0.25
seed: 42
`))
	require.NoError(t, err)
	assert.Equal(t, 1000, p.N)
	assert.Equal(t, 4, p.Q)
	require.NotNil(t, p.Seed)
	assert.Equal(t, uint64(42), *p.Seed)
	assert.InDelta(t, 0.25*sbm.CriticalEpsilon(16, 4), p.Epsi(), 1e-15)
	assert.Equal(t, []int{250, 250, 250, 250}, p.CommunitySizes())
}

func TestParseParams_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "n: [1, 2"},
		{"n missing", "q: 2\nc: 3\nepsilon: 0.1"},
		{"q > n", "n: 3\nq: 4\nc: 3\nepsilon: 0.1"},
		{"negative epsilon", "n: 10\nq: 2\nc: 3\nepsilon: -0.1"},
		{"negative size", "n: 10\nq: 2\nc: 3\nepsilon: 0.1\nsizes: [11, -1]"},
		{"both epsilons", "n: 10\nq: 2\nc: 3\nepsilon: 0.1\nepsilon_ratio: 0.5"},
		{"no epsilon", "n: 10\nq: 2\nc: 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sbm.ParseParams([]byte(tc.doc))
			require.ErrorIs(t, err, sbm.ErrInvalidParams)
		})
	}
}

func TestParams_Generate(t *testing.T) {
	eps := 0.1
	seed := uint64(7)
	p := sbm.Params{N: 40, Q: 2, C: 4, Epsilon: &eps, Sizes: []int{15, 25}, Seed: &seed}

	g1, err := p.Generate()
	require.NoError(t, err)
	assert.Equal(t, []int{15, 25}, g1.Sizes)

	g2, err := sbm.Generate(40, 2, 4, 0.1, []int{15, 25}, sbm.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, g2.Adjacency.Entries(), g1.Adjacency.Entries())

	// Options passed to Generate win over the preset seed.
	g3, err := p.Generate(sbm.WithSeed(8))
	require.NoError(t, err)
	g4, err := sbm.Generate(40, 2, 4, 0.1, []int{15, 25}, sbm.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, g4.Adjacency.Entries(), g3.Adjacency.Entries())
}

func TestParams_GenerateSizeMismatch(t *testing.T) {
	eps := 0.1
	p := sbm.Params{N: 40, Q: 2, C: 4, Epsilon: &eps, Sizes: []int{15, 20}}
	require.NoError(t, p.Validate())

	_, err := p.Generate(sbm.WithSeed(1))
	require.ErrorIs(t, err, sbm.ErrSizeMismatch)
}
