// SPDX-License-Identifier: MIT
// Package vecmath is the numeric substrate every clustering algorithm in
// clusterkit is built on: fixed-dimension Vector and Matrix value types,
// a permutation generator used to compute determinants via the Leibniz
// formula, and a MultivariateGaussian density evaluator.
//
// Dimension D is established at construction (NewVector/NewMatrix) rather
// than at compile time — Go has no const generics, so this is a
// run-time-sized stand-in for a compile-time generic. Binary operations
// between operands of different
// dimension panic, the same way indexing a slice out of bounds panics:
// dimension is established once per sample set / algorithm instance and
// never varies within it, so a mismatch is a programmer error, not a
// recoverable runtime condition.
package vecmath
