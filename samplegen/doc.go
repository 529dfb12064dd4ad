// SPDX-License-Identifier: MIT
// Package samplegen generates synthetic point clouds for tests,
// examples, and the visualiser: tight Gaussian blobs, a regular grid,
// and points scattered on a ring. It is a fixture generator only and
// is never imported by the clustering algorithm packages themselves.
//
// Every generator is configured through functional options
// (type Option func(*config)): options compose, validate their
// own inputs, and panic on a nil functional argument since that can
// only be a programmer error, never a data-dependent one.
package samplegen
