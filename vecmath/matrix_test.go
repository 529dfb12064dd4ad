// SPDX-License-Identifier: MIT
package vecmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clusterkit/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseRoundTrip(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)

	identity := vecmath.IdentityMatrix(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var got float64
			for k := 0; k < 2; k++ {
				got += m.At(i, k) * inv.At(k, j)
			}
			assert.InDelta(t, identity.At(i, j), got, 1e-5)
		}
	}
}

func TestDeterminantIdentity(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{3, 1, 0},
		{0, 2, 0},
		{1, 1, 4},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)

	detA := m.Determinant()
	detInv := inv.Determinant()
	assert.InDelta(t, 1.0, detA*detInv, 1e-5)
}

func TestDeterminant2x2(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	assert.Equal(t, -2.0, m.Determinant())
}

func TestSingularMatrixReturnsError(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := m.Inverse()
	assert.Error(t, err)
}

func TestMulVector(t *testing.T) {
	m := vecmath.IdentityMatrix(3).Scale(2)
	v := vecmath.NewVector([]float64{1, 2, 3})
	assert.Equal(t, []float64{2, 4, 6}, m.MulVector(v).Values())
}

func TestEigenvaluesOfDiagonal(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{2, 0},
		{0, 5},
	})
	eigs, err := vecmath.Eigenvalues(m, 1e-9, 100)
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{2, 5}, roundAll(eigs))
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x*1e6) / 1e6
	}
	return out
}

func TestEigenvaluesRejectsAsymmetric(t *testing.T) {
	m := vecmath.NewMatrixFromRows([][]float64{
		{1, 2},
		{0, 1},
	})
	_, err := vecmath.Eigenvalues(m, 1e-9, 100)
	assert.Error(t, err)
}
