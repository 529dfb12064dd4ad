// Package rng defines the random-source contract every stochastic
// clusterkit constructor takes as an explicit parameter, plus the
// ranged and weighted discrete draws built on top of it.
//
// No package in clusterkit reads a thread-local or process-global RNG
// implicitly. The one exception is FromSeed, an explicit "default RNG
// facade" a caller may opt into — it is never invoked by the algorithm
// packages themselves.
package rng
