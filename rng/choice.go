package rng

import "github.com/katalvlaran/clusterkit/cerrors"

// ChooseMultipleIndices draws k distinct indices from [0,n) without
// replacement, via partial Fisher-Yates shuffle of 0..n-1.
//
// Returns cerrors.ErrInsufficientSamples if k > n. Complexity: O(n) time,
// O(n) space.
func ChooseMultipleIndices(src Source, n, k int) ([]int, error) {
	if k > n {
		return nil, cerrors.ErrInsufficientSamples
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k], nil
}

// ChooseIndex draws a single uniform index from [0,n). n must be > 0.
func ChooseIndex(src Source, n int) int {
	return src.Intn(n)
}

// WeightedIndex draws a single index from [0,len(weights)) with
// probability proportional to weights[i]. Weights must be non-negative.
//
// If every weight is zero (all remaining candidates are indistinguishable
// from already-chosen centres, as can happen during K-Means++ seeding),
// ok is false and callers are expected to fall back to ChooseIndex.
//
// Complexity: O(len(weights)) time, O(1) extra space.
func WeightedIndex(src Source, weights []float64) (index int, ok bool) {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, false
	}

	target := src.Float64() * total
	var cumulative float64
	lastWeighted := 0
	for i, w := range weights {
		cumulative += w
		if w > 0 {
			lastWeighted = i
		}
		if target < cumulative {
			return i, true
		}
	}

	// Floating-point rounding may leave a residual; fall back to the
	// last weighted candidate rather than panicking.
	return lastWeighted, true
}
