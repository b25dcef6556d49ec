// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// errors.go — sentinel errors for the sbm package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w` (method name and offending values).
//   • Generate never panics at runtime; option constructors (WithX) panic on nil.
//
// Priority when several validations fail (enforced in tests):
//   ErrTooFewCommunities → ErrSizeMismatch → ErrNegativeSize →
//   ErrInvalidProbability → ErrNeedRandSource.

package sbm

import "errors"

// ErrTooFewCommunities indicates q < 1.
var ErrTooFewCommunities = errors.New("sbm: number of communities must be positive")

// ErrSizeMismatch indicates that the community sizes do not describe N nodes:
// either len(sizes) != q or sum(sizes) != N. Fatal; nothing is sampled.
var ErrSizeMismatch = errors.New("sbm: size mismatch")

// ErrNegativeSize indicates a community with a negative size.
var ErrNegativeSize = errors.New("sbm: negative community size")

// ErrInvalidProbability indicates that the derived pin or pout falls outside
// [0,1] (or is NaN) for the given N, q, c and epsi.
var ErrInvalidProbability = errors.New("sbm: probability out of range")

// ErrNeedRandSource indicates that sampling requires a generator
// (WithSeed / WithRand) because pin or pout lies strictly inside (0,1).
var ErrNeedRandSource = errors.New("sbm: rng is required")

// ErrInvalidParams indicates a Params document that fails validation.
var ErrInvalidParams = errors.New("sbm: invalid parameters")
