// SPDX-License-Identifier: MIT
// Package: sbmlab/pointcloud
//
// options.go — functional options for the dataset generators.
// Constructors panic on nil; the generators never do.

package pointcloud

import "math/rand/v2"

// pcgStream is the fixed PCG increment paired with user seeds.
const pcgStream = 0xda942042e4dd58b5

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointcloud: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed uses a fresh PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, pcgStream))
	}
}
