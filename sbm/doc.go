// Package sbm generates Stochastic Block Model graphs with a planted
// community structure, for benchmarking graph clustering and coreset
// sampling.
//
// What is an SBM?
//
//	N nodes are split into q contiguous communities. Two nodes in the same
//	community are linked with probability pin, two nodes in different
//	communities with probability pout. pin and pout are derived from the
//	target average degree c and the difficulty epsi = pout/pin:
//
//	  pin  = q·c      / (N − q + (q−1)·epsi·N)
//	  pout = q·c·epsi / (N − q + (q−1)·epsi·N)
//
//	The closer epsi is to CriticalEpsilon(c, q), the harder it is to recover
//	the communities from the graph alone.
//
// Sampling strategy:
//
//   - Per community, the number of internal edges is drawn once from
//     Binomial(s(s−1)/2, pin); that many distinct pair indices are chosen
//     without replacement (Floyd's algorithm, O(edges)), then mapped to
//     (row, col) pairs with UpperSub.
//   - Per community k, all later communities are treated as one contiguous
//     block of width rest: Binomial(s_k·rest, pout) edges are placed by
//     row-major unravelling over an s_k × rest grid.
//   - The directed pairs are assembled into a sparse matrix A and the result
//     is A + Aᵀ, so the adjacency is symmetric with an empty diagonal.
//
// Randomness is explicit: pass WithSeed or WithRand. Parameterisations whose
// probabilities are all 0 or 1 are deterministic and need no generator.
//
// Usage:
//
//	n, q, c := 10000, 100, 16.0
//	epsi := sbm.CriticalEpsilon(c, q) / 4
//	g, err := sbm.Generate(n, q, c, epsi, sbm.EqualSizes(n, q), sbm.WithSeed(42))
//	// g.Adjacency is a symmetric *matrix.CSR, g.Truth the planted labels.
package sbm
