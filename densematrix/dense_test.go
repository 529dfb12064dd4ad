// SPDX-License-Identifier: MIT
package densematrix_test

import (
	"testing"

	"github.com/katalvlaran/clusterkit/densematrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	_, err := densematrix.New(0, 3)
	assert.Error(t, err)
	_, err = densematrix.New(3, -1)
	assert.Error(t, err)
}

func TestSetAndAt(t *testing.T) {
	m, err := densematrix.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5.0))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestAtOutOfBounds(t *testing.T) {
	m, err := densematrix.New(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	assert.Error(t, err)
	_, err = m.At(0, -1)
	assert.Error(t, err)
}

func TestRowAndRowSum(t *testing.T) {
	m, err := densematrix.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, 3))

	assert.Equal(t, []float64{1, 2, 3}, m.Row(0))
	assert.Equal(t, 6.0, m.RowSum(0))
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := densematrix.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 2))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	cv, _ := clone.At(0, 0)
	assert.Equal(t, 2.0, cv)
}
