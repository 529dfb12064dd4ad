// SPDX-License-Identifier: MIT
// Package cerrors defines the sentinel error vocabulary shared by every
// clusterkit algorithm package.
//
// Error policy (same discipline as lvlath/matrix and lvlath/builder):
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites add context with fmt.Errorf("%w: ...", ...) instead.
//   - Algorithms never panic on caller-triggered conditions. Panics, if any,
//     are confined to option constructors (WithX...) validating programmer
//     error, never to the algorithms themselves.
package cerrors

import "errors"

var (
	// ErrInsufficientSamples is returned when N < K at seeding, or N == 0
	// for any algorithm that requires at least one sample.
	ErrInsufficientSamples = errors.New("cluster: insufficient samples")

	// ErrInvalidParameter is returned for K == 0, epsilon <= 0,
	// damping outside [0,1], a non-finite preference, or similar.
	ErrInvalidParameter = errors.New("cluster: invalid parameter")

	// ErrSingularCovariance is returned when a Gaussian Mixture covariance
	// is not invertible during the E-step.
	ErrSingularCovariance = errors.New("cluster: singular covariance")

	// ErrNonFiniteInput is returned when a sample contains NaN or ±Inf.
	ErrNonFiniteInput = errors.New("cluster: non-finite input")

	// ErrBuilderState is returned when a stepwise API method is called out
	// of order, e.g. visualizer.Clusterer.Step before Init for K-Means or
	// the Gaussian mixture.
	ErrBuilderState = errors.New("cluster: builder called out of order")
)
