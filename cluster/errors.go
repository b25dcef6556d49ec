// SPDX-License-Identifier: MIT
// Package cluster: sentinel error set.
// Functions wrap these with the operation name; tests match them via errors.Is.

package cluster

import "errors"

var (
	// ErrLengthMismatch is returned when two partitions label a different
	// number of elements.
	ErrLengthMismatch = errors.New("cluster: partitions have different lengths")

	// ErrTooFewElements is returned when fewer than two elements are labelled;
	// no pair exists to compare.
	ErrTooFewElements = errors.New("cluster: at least two elements are required")

	// ErrBadResolution is returned for a non-positive or non-finite modularity
	// resolution.
	ErrBadResolution = errors.New("cluster: resolution must be positive and finite")

	// ErrNotSymmetric is returned when community detection receives a
	// non-square or asymmetric adjacency.
	ErrNotSymmetric = errors.New("cluster: adjacency must be square and symmetric")

	// ErrNegativeWeight is returned when the adjacency stores a negative weight;
	// modularity is undefined for those.
	ErrNegativeWeight = errors.New("cluster: negative edge weight")

	// ErrNilAdjacency is returned when the adjacency is nil.
	ErrNilAdjacency = errors.New("cluster: nil adjacency")
)
