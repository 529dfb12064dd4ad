// SPDX-License-Identifier: MIT
package samplegen_test

import (
	"testing"

	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/samplegen"
	"github.com/stretchr/testify/assert"
)

func TestBlobsProducesExpectedCount(t *testing.T) {
	centres := [][]float64{{0, 0}, {10, 10}, {-10, 10}}
	points := samplegen.Blobs(centres, 5, samplegen.WithSource(rng.FromSeed(1)), samplegen.WithSpread(0.2))
	assert.Len(t, points, 15)
	for _, p := range points {
		assert.Equal(t, 2, p.Dim())
	}
}

func TestGridProducesRegularLattice(t *testing.T) {
	points := samplegen.Grid(3, 4, 1.0)
	assert.Len(t, points, 12)
	assert.Equal(t, []float64{0, 0}, points[0].Values())
	assert.Equal(t, []float64{3, 2}, points[11].Values())
}

func TestRingProducesExpectedCount(t *testing.T) {
	points := samplegen.Ring([2]float64{0, 0}, 5, 8, samplegen.WithSource(rng.FromSeed(2)), samplegen.WithSpread(0.1))
	assert.Len(t, points, 8)
}

func TestWithDimPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { samplegen.WithDim(0) })
}

func TestWithSourcePanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { samplegen.WithSource(nil) })
}
