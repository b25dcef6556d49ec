// SPDX-License-Identifier: MIT
// Package: sbmlab/pointcloud
//
// circles.go — two concentric distributions in the plane.
//
// Layout:
//   - rows [0, nOut): a point drawn uniformly in [−1,1]², projected onto the
//     unit circle, plus N(0, sigmaOut²) noise per coordinate; label 0.
//   - rows [nOut, nOut+nIn): N(0, sigmaIn²) per coordinate; label 1.
//
// Complexity: O(nIn + nOut) time and memory.

package pointcloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const methodCircles = "ConcentricCircles"

// ConcentricCircles returns an (nIn+nOut)×2 matrix of points and their labels.
func ConcentricCircles(nIn, nOut int, sigmaIn, sigmaOut float64, opts ...Option) (*mat.Dense, []int, error) {
	if nIn < 0 || nOut < 0 || nIn+nOut == 0 {
		return nil, nil, fmt.Errorf("%s: nIn=%d nOut=%d: %w", methodCircles, nIn, nOut, ErrBadSize)
	}
	if !(sigmaIn >= 0) || !(sigmaOut >= 0) || math.IsInf(sigmaIn, 0) || math.IsInf(sigmaOut, 0) {
		return nil, nil, fmt.Errorf("%s: sigmaIn=%g sigmaOut=%g: %w", methodCircles, sigmaIn, sigmaOut, ErrBadSigma)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCircles, ErrNeedRandSource)
	}

	unit := distuv.Uniform{Min: -1, Max: 1, Src: cfg.rng}
	noiseOut := distuv.Normal{Mu: 0, Sigma: sigmaOut, Src: cfg.rng}
	noiseIn := distuv.Normal{Mu: 0, Sigma: sigmaIn, Src: cfg.rng}

	n := nIn + nOut
	data := mat.NewDense(n, 2, nil)
	truth := make([]int, n)

	for i := 0; i < nOut; i++ {
		x, y := unit.Rand(), unit.Rand()
		r := math.Hypot(x, y)
		for r == 0 {
			x, y = unit.Rand(), unit.Rand()
			r = math.Hypot(x, y)
		}
		data.Set(i, 0, x/r+noiseOut.Rand())
		data.Set(i, 1, y/r+noiseOut.Rand())
	}
	for i := nOut; i < n; i++ {
		data.Set(i, 0, noiseIn.Rand())
		data.Set(i, 1, noiseIn.Rand())
		truth[i] = 1
	}

	return data, truth, nil
}
