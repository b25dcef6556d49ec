// SPDX-License-Identifier: MIT
// Package: sbmlab/sbm
//
// probabilities.go — planted-partition parameterisation helpers.

package sbm

import "math"

// Probabilities returns the intra- and inter-community edge probabilities
// that give an expected average degree c with difficulty epsi = pout/pin:
//
//	pin  = q·c      / (N − q + (q−1)·epsi·N)
//	pout = q·c·epsi / (N − q + (q−1)·epsi·N)
//
// No range check is made here; Generate rejects values outside [0,1].
func Probabilities(n, q int, c, epsi float64) (pin, pout float64) {
	nf, qf := float64(n), float64(q)
	den := nf - qf + (qf-1)*epsi*nf

	return qf * c / den, qf * c * epsi / den
}

// CriticalEpsilon returns the detectability threshold
//
//	epsi_c = (c − √c) / (c + √c·(q − 1))
//
// above which no algorithm can recover the planted partition better than
// chance (for large sparse SBMs). Benchmarks typically use a fraction of it.
func CriticalEpsilon(c float64, q int) float64 {
	sc := math.Sqrt(c)
	return (c - sc) / (c + sc*float64(q-1))
}

// EqualSizes splits n nodes into q contiguous communities of size n/q,
// giving the n mod q leftover nodes to the first communities so the sizes
// always sum to n. Returns nil when q < 1 or n < 0.
func EqualSizes(n, q int) []int {
	if q < 1 || n < 0 {
		return nil
	}
	sizes := make([]int, q)
	base, extra := n/q, n%q
	for k := range sizes {
		sizes[k] = base
		if k < extra {
			sizes[k]++
		}
	}

	return sizes
}

// offsets returns the cumulative start index of every community plus the
// total as a final element: offsets(sizes)[k] is the first node of community k.
func offsets(sizes []int) []int {
	off := make([]int, len(sizes)+1)
	for k, s := range sizes {
		off[k+1] = off[k] + s
	}

	return off
}
