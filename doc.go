// Package clusterkit is a library of clustering algorithms over
// fixed-dimension Euclidean point sets.
//
// It brings together:
//
//   - A numeric substrate: Vector, Matrix, and MultivariateGaussian,
//     all sized at construction time rather than via compile-time
//     generics.
//   - Partitional clustering: K-Means and a Gaussian mixture fit by
//     expectation-maximisation, both built from stepwise Init/EStep/
//     MStep primitives plus a driving Run.
//   - Hierarchical clustering: a linkage-agnostic naive algorithm and
//     the specialised SLINK/CLINK algorithms for single and complete
//     linkage, all producing a shared dendrogram representation.
//   - Density-based and message-passing clustering: DBSCAN and
//     affinity propagation.
//
// Every stochastic algorithm takes its randomness as an explicit
// rng.Source parameter rather than reaching for a package-level
// default, so a run is reproducible end to end from its seed.
//
// Under the hood, everything is organised under focused subpackages:
//
//	vecmath/      — Vector, Matrix, MultivariateGaussian, Permutations
//	rng/          — the Source contract and its deterministic facades
//	cerrors/      — sentinel errors shared across every algorithm
//	dsu/          — disjoint-set / union-find with path compression
//	dendrogram/   — the (λ, π) pointer representation and its cuts
//	densematrix/  — rectangular K×N and N×N matrices for GMM/AP
//	seeding/      — Lloyd and K-Means++ initial-mean strategies
//	kmeans/       — K-Means
//	gmm/          — Gaussian mixture expectation-maximisation
//	hierarchical/ — naive, SLINK, CLINK agglomerative clustering
//	dbscan/       — density-based clustering
//	affinityprop/ — affinity propagation
//	samplegen/    — synthetic point clouds for tests and demos
//	posterize/    — an image-posterisation consumer of the above
//	visualizer/   — a tagged-variant facade for rendering live runs
//
//	go get github.com/katalvlaran/clusterkit
package clusterkit
