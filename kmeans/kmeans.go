package kmeans

import (
	"fmt"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// SeedFunc produces k initial means from samples, e.g.
// seeding.Lloyd or seeding.KMeansPlusPlus.
type SeedFunc func(src rng.Source, samples []vecmath.Vector, k int) ([]vecmath.Vector, error)

// KMeans holds the fixed dimensions of a clustering run: how many
// samples it operates over and how many clusters it produces. It
// carries no mutable state itself — every step takes and returns the
// arrays it operates on, so a caller owns the current state between
// calls.
type KMeans struct {
	sampleCount  int
	clusterCount int
}

// New returns a KMeans configured for sampleCount samples and
// clusterCount clusters. clusterCount must be positive, and
// sampleCount must be at least clusterCount.
func New(sampleCount, clusterCount int) (KMeans, error) {
	if clusterCount <= 0 {
		return KMeans{}, fmt.Errorf("kmeans: new(%d,%d): %w", sampleCount, clusterCount, cerrors.ErrInvalidParameter)
	}
	if sampleCount <= 0 || clusterCount > sampleCount {
		return KMeans{}, fmt.Errorf("kmeans: new(%d,%d): %w", sampleCount, clusterCount, cerrors.ErrInsufficientSamples)
	}
	return KMeans{sampleCount: sampleCount, clusterCount: clusterCount}, nil
}

// Init draws the initial cluster means via seed.
func (k KMeans) Init(src rng.Source, samples []vecmath.Vector, seed SeedFunc) ([]vecmath.Vector, error) {
	if len(samples) != k.sampleCount {
		return nil, fmt.Errorf("kmeans: init: %w", cerrors.ErrInvalidParameter)
	}
	if !vecmath.AllFinite(samples) {
		return nil, fmt.Errorf("kmeans: init: %w", cerrors.ErrNonFiniteInput)
	}
	return seed(src, samples, k.clusterCount)
}

// EStep assigns every sample to its nearest mean under squared
// Euclidean distance, recording that distance as the sample's error.
// Ties are broken by lowest cluster index, since clusters are scanned
// in ascending order and only a strictly smaller error replaces the
// current assignment.
func (k KMeans) EStep(samples, means []vecmath.Vector) (labels []int, sqErrors []float64) {
	labels = make([]int, k.sampleCount)
	sqErrors = make([]float64, k.sampleCount)
	for s := range samples {
		bestLabel := 0
		bestErr := samples[s].Sub(means[0]).SquaredLength()
		for c := 1; c < k.clusterCount; c++ {
			if err := samples[s].Sub(means[c]).SquaredLength(); err < bestErr {
				bestLabel, bestErr = c, err
			}
		}
		labels[s] = bestLabel
		sqErrors[s] = bestErr
	}
	return labels, sqErrors
}

// MStep recomputes each cluster's mean as the arithmetic mean of its
// currently-assigned samples. A cluster with no assigned samples is
// reseeded from a uniformly-drawn sample rather than left as the zero
// vector, so a run can never silently collapse an empty cluster to the
// origin and stay stuck there.
func (k KMeans) MStep(src rng.Source, samples []vecmath.Vector, labels []int) []vecmath.Vector {
	dim := samples[0].Dim()
	totals := make([]vecmath.Vector, k.clusterCount)
	counts := make([]int, k.clusterCount)
	for c := range totals {
		totals[c] = vecmath.ZeroVector(dim)
	}

	for s, label := range labels {
		totals[label] = totals[label].Add(samples[s])
		counts[label]++
	}

	means := make([]vecmath.Vector, k.clusterCount)
	for c := range means {
		if counts[c] > 0 {
			means[c] = totals[c].Div(float64(counts[c]))
		} else {
			means[c] = samples[rng.ChooseIndex(src, len(samples))]
		}
	}
	return means
}

// Result is the converged state of a K-Means run.
type Result struct {
	Means    []vecmath.Vector
	Labels   []int
	SqErrors []float64
	Iters    int
}

// Run drives init/e_step/m_step to convergence: it terminates as soon
// as an E-step produces the same labels as the previous one. maxIter
// bounds the number of M-steps taken as a safety net; it is not a
// correctness requirement since the label sequence is otherwise
// guaranteed to settle.
func (k KMeans) Run(src rng.Source, samples []vecmath.Vector, seed SeedFunc, maxIter int) (Result, error) {
	means, err := k.Init(src, samples, seed)
	if err != nil {
		return Result{}, fmt.Errorf("kmeans: run: %w", err)
	}

	labels, sqErrors := k.EStep(samples, means)
	means = k.MStep(src, samples, labels)

	for iter := 1; iter < maxIter; iter++ {
		newLabels, newSqErrors := k.EStep(samples, means)
		if sameLabels(newLabels, labels) {
			return Result{Means: means, Labels: newLabels, SqErrors: newSqErrors, Iters: iter}, nil
		}
		labels, sqErrors = newLabels, newSqErrors
		means = k.MStep(src, samples, labels)
	}

	return Result{Means: means, Labels: labels, SqErrors: sqErrors, Iters: maxIter}, nil
}

func sameLabels(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
