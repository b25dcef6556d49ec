// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil).
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package sbm

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Option customizes Generate by mutating a config before sampling begins.
type Option func(*config)

// WithRand provides an explicit generator. The same *rand.Rand may be shared
// across calls to continue one reproducible stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sbm: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh PCG-backed generator from seed.
// Use this in tests and notebooks to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = newRand(seed)
	}
}

// WithLogger routes diagnostic output (per-community draw counts, at Debug
// level) to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sbm: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}
