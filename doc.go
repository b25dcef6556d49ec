// Package sbmlab generates and studies Stochastic Block Model graphs: random
// graphs with a planted community structure, the standard benchmark for
// community detection and graph-signal-processing methods.
//
// 🚀 What is sbmlab?
//
//	A small numeric toolkit that brings together:
//		• SBM sampling: exact binomial edge counts, pairs drawn without
//		  replacement, sparse symmetric adjacency plus ground truth
//		• Parameterisation: pin/pout from average degree c and difficulty
//		  epsi = pout/pin, detectability threshold epsi_c
//		• Sparse matrices: COO builder, CSR kernels, Laplacian, gonum bridges
//		• Scoring: adjusted Rand index, Louvain recovery
//		• Graph filters: Chebyshev expansions applied with sparse products
//		• Toy point clouds: concentric circles for clustering demos
//
// ✨ Why choose sbmlab?
//
//   - Reproducible – every random draw flows through an explicit *rand.Rand
//   - Sparse end to end – O(N + E) memory, 10⁴–10⁵ nodes are routine
//   - Small surface – plain functions, functional options, sentinel errors
//
// Subpackages:
//
//	sbm/        — the generator, probabilities, index mapping, YAML presets
//	matrix/     — COO/CSR sparse matrices and conversions to gonum
//	cluster/    — adjusted Rand index and Louvain community detection
//	chebyshev/  — Chebyshev filter evaluation and graph filtering
//	pointcloud/ — concentric-circles dataset
//	examples/   — an end-to-end recovery sweep
//
// Quick start:
//
//	n, q, c := 10000, 100, 16.0
//	epsi := sbm.CriticalEpsilon(c, q) / 4
//	g, err := sbm.Generate(n, q, c, epsi, sbm.EqualSizes(n, q), sbm.WithSeed(42))
//
//	go get github.com/katalvlaran/sbmlab
package sbmlab
