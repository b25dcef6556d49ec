// SPDX-License-Identifier: MIT
// Package pointcloud: sentinel error set.

package pointcloud

import "errors"

var (
	// ErrBadSize is returned for negative point counts or an empty dataset.
	ErrBadSize = errors.New("pointcloud: invalid number of points")

	// ErrBadSigma is returned for a negative or NaN noise level.
	ErrBadSigma = errors.New("pointcloud: sigma must be a non-negative number")

	// ErrNeedRandSource is returned when no generator was supplied.
	ErrNeedRandSource = errors.New("pointcloud: random source is required")
)
