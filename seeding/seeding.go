package seeding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// Lloyd draws k initial means by uniform sampling without replacement
// from samples. Fails with cerrors.ErrInsufficientSamples if k exceeds
// len(samples).
func Lloyd(src rng.Source, samples []vecmath.Vector, k int) ([]vecmath.Vector, error) {
	if !vecmath.AllFinite(samples) {
		return nil, fmt.Errorf("seeding: lloyd: %w", cerrors.ErrNonFiniteInput)
	}

	indices, err := rng.ChooseMultipleIndices(src, len(samples), k)
	if err != nil {
		return nil, fmt.Errorf("seeding: lloyd: %w", err)
	}

	means := make([]vecmath.Vector, k)
	for i, idx := range indices {
		means[i] = samples[idx]
	}
	return means, nil
}

// KMeansPlusPlus draws k initial means with the K-Means++ procedure:
// the first mean is uniform, every subsequent mean is drawn with
// weight equal to its squared distance to the nearest mean already
// chosen. If the running weight vector ever collapses to all zero
// (every remaining candidate coincides with a chosen mean), the
// remainder of the draw falls back to uniform sampling with
// replacement rather than failing.
//
// Fails with cerrors.ErrInsufficientSamples if k exceeds len(samples).
func KMeansPlusPlus(src rng.Source, samples []vecmath.Vector, k int) ([]vecmath.Vector, error) {
	n := len(samples)
	if k > n {
		return nil, fmt.Errorf("seeding: kmeans++: %w", cerrors.ErrInsufficientSamples)
	}
	if !vecmath.AllFinite(samples) {
		return nil, fmt.Errorf("seeding: kmeans++: %w", cerrors.ErrNonFiniteInput)
	}

	means := make([]vecmath.Vector, 0, k)
	nearestSquaredDist := make([]float64, n)
	for i := range nearestSquaredDist {
		nearestSquaredDist[i] = math.Inf(1)
	}

	updateDistances := func(mean vecmath.Vector) {
		for i, sample := range samples {
			d := mean.Sub(sample).SquaredLength()
			if d < nearestSquaredDist[i] {
				nearestSquaredDist[i] = d
			}
		}
	}

	first := rng.ChooseIndex(src, n)
	means = append(means, samples[first])
	updateDistances(samples[first])

	for len(means) < k {
		idx, ok := rng.WeightedIndex(src, nearestSquaredDist)
		if !ok {
			break
		}
		means = append(means, samples[idx])
		updateDistances(samples[idx])
	}

	// Weight vector collapsed before k means were drawn: fall back to
	// uniform sampling with replacement for the remainder.
	for len(means) < k {
		idx := rng.ChooseIndex(src, n)
		means = append(means, samples[idx])
		updateDistances(samples[idx])
	}

	return means, nil
}
