// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// params.go — declarative SBM presets.
//
// A preset is a small YAML document a notebook or benchmark can keep next to
// its results:
//
//	n: 10000
//	q: 100
//	c: 16
//	epsilon_ratio: 0.25   # or `epsilon: 0.0123`, exactly one of the two
//	seed: 42              # optional
//	sizes: [...]          # optional, defaults to EqualSizes(n, q)

package sbm

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared struct validator for Params.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Params describes one SBM configuration.
type Params struct {
	// N is the number of nodes.
	N int `yaml:"n" validate:"gt=0"`
	// Q is the number of communities.
	Q int `yaml:"q" validate:"gt=0,ltefield=N"`
	// C is the target average degree.
	C float64 `yaml:"c" validate:"gt=0"`
	// Epsilon is the difficulty pout/pin.
	Epsilon *float64 `yaml:"epsilon,omitempty" validate:"omitempty,gte=0"`
	// EpsilonRatio sets Epsilon as a fraction of CriticalEpsilon(C, Q).
	EpsilonRatio *float64 `yaml:"epsilon_ratio,omitempty" validate:"omitempty,gte=0"`
	// Sizes overrides the equal split.
	Sizes []int `yaml:"sizes,omitempty" validate:"omitempty,dive,gte=0"`
	// Seed, when set, seeds the generator used by Params.Generate.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// ParseParams decodes a YAML preset and validates it.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("ParseParams: %w: %w", ErrInvalidParams, err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Validate checks field ranges and that exactly one of Epsilon and
// EpsilonRatio is set. Size/N consistency is left to Generate so that the
// fatal size mismatch keeps a single source of truth.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("Params.%s: failed %q (value %v): %w", fe.Field(), fe.Tag(), fe.Value(), ErrInvalidParams)
		}
		return fmt.Errorf("Params: %w: %w", ErrInvalidParams, err)
	}
	if (p.Epsilon == nil) == (p.EpsilonRatio == nil) {
		return fmt.Errorf("Params: exactly one of epsilon and epsilon_ratio must be set: %w", ErrInvalidParams)
	}

	return nil
}

// Epsi resolves the difficulty parameter.
func (p Params) Epsi() float64 {
	if p.Epsilon != nil {
		return *p.Epsilon
	}
	if p.EpsilonRatio != nil {
		return *p.EpsilonRatio * CriticalEpsilon(p.C, p.Q)
	}

	return 0
}

// CommunitySizes returns Sizes, or EqualSizes(N, Q) when Sizes is empty.
func (p Params) CommunitySizes() []int {
	if len(p.Sizes) > 0 {
		return p.Sizes
	}

	return EqualSizes(p.N, p.Q)
}

// Generate validates p and samples a graph. A Seed in p is applied before
// opts, so an explicit WithRand/WithSeed in opts takes precedence.
func (p Params) Generate(opts ...Option) (*Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+1)
	if p.Seed != nil {
		all = append(all, WithSeed(*p.Seed))
	}
	all = append(all, opts...)

	return Generate(p.N, p.Q, p.C, p.Epsi(), p.CommunitySizes(), all...)
}
