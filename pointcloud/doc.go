// Package pointcloud generates small labelled 2-D datasets used to exercise
// graph-based clustering next to SBM graphs.
//
// ConcentricCircles draws a noisy unit ring around a gaussian blob: the ring
// gets label 0 and the blob label 1. Data comes back as an n×2 gonum
// mat.Dense with one point per row.
//
//	data, truth, err := pointcloud.ConcentricCircles(200, 300, 0.1, 0.05, pointcloud.WithSeed(1))
package pointcloud
