// SPDX-License-Identifier: MIT
package samplegen

import "github.com/katalvlaran/clusterkit/rng"

type config struct {
	dim    int
	source rng.Source
	spread float64
}

// Option customises a generator by mutating a config instance before
// points are drawn.
type Option func(*config)

// WithDim records a sample dimension in the config. Panics on a
// non-positive value — a malformed dimension can only be a programmer
// error. No generator reads the recorded value: Blobs takes its
// dimension from the length of each centre, and Grid and Ring always
// produce 2-D points.
func WithDim(dim int) Option {
	if dim <= 0 {
		panic("samplegen: WithDim: dim must be > 0")
	}
	return func(c *config) {
		c.dim = dim
	}
}

// WithSource provides the explicit RNG every generator draws from.
// Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("samplegen: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}

// WithSpread sets the per-blob standard deviation (Blobs) or the ring
// thickness (Ring). Panics on a non-positive value.
func WithSpread(spread float64) Option {
	if spread <= 0 {
		panic("samplegen: WithSpread: spread must be > 0")
	}
	return func(c *config) {
		c.spread = spread
	}
}

func newConfig(opts []Option) config {
	c := config{dim: 2, source: rng.FromSeed(1), spread: 0.5}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
