// Package cluster scores and recovers community structure on SBM graphs.
//
// It provides:
//
//   - AdjustedRandIndex, the Hubert & Arabie (1985) agreement between two
//     partitions: 1 for identical partitions, about 0 for a random one, and
//     negative for worse-than-chance agreement.
//   - Louvain, a modularity-based community detection over a matrix.CSR
//     adjacency, backed by gonum's graph/community package.
//   - Relabel, the canonical renumbering (first appearance order) used to
//     compare label vectors directly.
//
// Typical benchmark loop:
//
//	g, _ := sbm.Generate(n, q, c, epsi, sbm.EqualSizes(n, q), sbm.WithSeed(1))
//	found, _ := cluster.Louvain(g.Adjacency, 1, rand.New(rand.NewPCG(1, 2)))
//	ari, _ := cluster.AdjustedRandIndex(g.Truth, found)
package cluster
