// SPDX-License-Identifier: MIT
package vecmath_test

import (
	"testing"

	"github.com/katalvlaran/clusterkit/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultivariateGaussianPeaksAtMean(t *testing.T) {
	mean := vecmath.NewVector([]float64{0, 0})
	cov := vecmath.IdentityMatrix(2)

	g, err := vecmath.NewMultivariateGaussian(mean, cov)
	require.NoError(t, err)

	atMean := g.Density(mean)
	atOffset := g.Density(vecmath.NewVector([]float64{1, 1}))
	assert.Greater(t, atMean, atOffset)
	assert.InDelta(t, 1.0/(2*3.14159265), atMean, 1e-3)
}

func TestMultivariateGaussianSingularCovariance(t *testing.T) {
	mean := vecmath.NewVector([]float64{0, 0})
	singular := vecmath.NewMatrixFromRows([][]float64{
		{1, 1},
		{1, 1},
	})
	_, err := vecmath.NewMultivariateGaussian(mean, singular)
	assert.Error(t, err)
}
