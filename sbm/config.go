// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng = nil                       (deterministic unless seeded)
//   • log = logrus.StandardLogger()   (silent at the default Info level)

package sbm

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// pcgStream is the fixed PCG increment paired with user seeds.
const pcgStream = 0x9e3779b97f4a7c15

// config aggregates the knobs used by Generate. Passed by value.
type config struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// newConfig applies opts in order over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		rng: nil,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newRand returns the generator used by WithSeed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}
