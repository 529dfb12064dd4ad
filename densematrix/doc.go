// SPDX-License-Identifier: MIT
// Package densematrix provides a row-major, bounds-checked rectangular
// matrix of float64 for the non-square, run-time-sized arrays the
// clustering algorithms accumulate: affinity propagation's N×N
// similarity/responsibility/availability matrices, and the Gaussian
// mixture model's K×N likelihood and posterior tables.
//
// vecmath.Matrix stays reserved for the small, square, fixed-dimension
// covariance matrices it was built for; this package is its rectangular,
// error-returning counterpart for the larger bookkeeping arrays.
package densematrix
