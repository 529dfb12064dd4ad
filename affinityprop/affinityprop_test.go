package affinityprop_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/clusterkit/affinityprop"
	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three tight 2-D blobs far apart from each other.
func threeBlobs() [][2]float64 {
	return [][2]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{10, 10}, {10.1, 10}, {10, 10.1},
		{-10, 10}, {-10.1, 10}, {-10, 10.1},
	}
}

func negativeSquaredDistance(points [][2]float64) func(i, k int) float64 {
	return func(i, k int) float64 {
		dx := points[i][0] - points[k][0]
		dy := points[i][1] - points[k][1]
		return -(dx*dx + dy*dy)
	}
}

func TestThreeBlobsConvergeToThreeExemplars(t *testing.T) {
	points := threeBlobs()
	sim := negativeSquaredDistance(points)

	var preferences []float64
	for i := range points {
		for k := range points {
			if i != k {
				preferences = append(preferences, sim(i, k))
			}
		}
	}
	// The middle entry of the unsorted similarity list, which here is a
	// within-blob similarity (about -0.02).
	preference := preferences[len(preferences)/2]

	result, err := affinityprop.Run(len(points), sim, preference, 0.9, 200)
	require.NoError(t, err)

	assert.Len(t, result.Exemplars, 3)
	assert.Len(t, result.Labels, len(points))

	firstBlobLabel := result.Labels[0]
	assert.Equal(t, firstBlobLabel, result.Labels[1])
	assert.Equal(t, firstBlobLabel, result.Labels[2])
}

func TestExemplarsAndLabelsAreConsistent(t *testing.T) {
	points := threeBlobs()
	sim := negativeSquaredDistance(points)

	ap, err := affinityprop.New(len(points), sim, -1)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ap.Update(0.5)
	}

	exemplars := ap.Exemplars()
	labels := ap.Labels(exemplars)
	assert.Len(t, labels, len(points))
	for _, l := range labels {
		assert.True(t, l >= 0 && (len(exemplars) == 0 || l < len(exemplars)))
	}
}

func TestLabelsEmptyExemplarsReturnsZero(t *testing.T) {
	points := threeBlobs()
	sim := negativeSquaredDistance(points)
	ap, err := affinityprop.New(len(points), sim, -1)
	require.NoError(t, err)

	labels := ap.Labels(nil)
	for _, l := range labels {
		assert.Equal(t, 0, l)
	}
}

func TestSingleUpdateDoesNotPanic(t *testing.T) {
	points := threeBlobs()
	sim := negativeSquaredDistance(points)
	ap, err := affinityprop.New(len(points), sim, -1)
	require.NoError(t, err)

	ap.Update(0.9)
	labels := ap.Labels(ap.Exemplars())
	assert.Len(t, labels, len(points))
}

func TestNewRejectsZeroSamples(t *testing.T) {
	_, err := affinityprop.New(0, func(i, k int) float64 { return 0 }, -1)
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSamples))
}

func TestNewRejectsNonFinitePreference(t *testing.T) {
	_, err := affinityprop.New(3, func(i, k int) float64 { return 0 }, math.NaN())
	assert.True(t, errors.Is(err, cerrors.ErrInvalidParameter))
}

func TestNewRejectsNonFiniteSimilarity(t *testing.T) {
	sim := func(i, k int) float64 { return math.Inf(1) }
	_, err := affinityprop.New(3, sim, -1)
	assert.True(t, errors.Is(err, cerrors.ErrNonFiniteInput))
}
