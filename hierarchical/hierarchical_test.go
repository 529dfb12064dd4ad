package hierarchical_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/hierarchical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A small 1-D line-of-points scenario: three tight pairs spread far
// apart, so every reasonable linkage agrees on the same three clusters
// when cut at K=3.
func points() []float64 {
	return []float64{0, 0.1, 10, 10.1, 20, 20.1}
}

func dissimilarity(pts []float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		return math.Abs(pts[i] - pts[j])
	}
}

func labelsFromClusters(clusters [][]int, n int) []int {
	labels := make([]int, n)
	for label, cluster := range clusters {
		for _, idx := range cluster {
			labels[idx] = label
		}
	}
	return labels
}

func sameClusterPairs(labels []int, pairs [][2]int) bool {
	for _, p := range pairs {
		if labels[p[0]] != labels[p[1]] {
			return false
		}
	}
	return true
}

func TestNaiveSingleLinkageCutsThreePairs(t *testing.T) {
	pts := points()
	d := dissimilarity(pts)
	clusters, err := hierarchical.Naive(len(pts), 3, hierarchical.SingleLinkage(d))
	require.NoError(t, err)
	assert.Len(t, clusters, 3)

	labels := labelsFromClusters(clusters, len(pts))
	assert.True(t, sameClusterPairs(labels, [][2]int{{0, 1}, {2, 3}, {4, 5}}))
	assert.NotEqual(t, labels[0], labels[2])
	assert.NotEqual(t, labels[2], labels[4])
}

func TestNaiveCompleteAndAverageLinkageAgreeHere(t *testing.T) {
	pts := points()
	d := dissimilarity(pts)

	complete, err := hierarchical.Naive(len(pts), 3, hierarchical.CompleteLinkage(d))
	require.NoError(t, err)
	average, err := hierarchical.Naive(len(pts), 3, hierarchical.AverageLinkage(d))
	require.NoError(t, err)

	for _, clusters := range [][][]int{complete, average} {
		labels := labelsFromClusters(clusters, len(pts))
		assert.True(t, sameClusterPairs(labels, [][2]int{{0, 1}, {2, 3}, {4, 5}}))
	}
}

func TestSLINKProducesWellFormedDendrogram(t *testing.T) {
	pts := points()
	d := SLINKDissimilarity(pts)
	dend, err := hierarchical.SLINK(len(pts), d)
	require.NoError(t, err)

	assertWellFormed(t, dend, len(pts))
}

func TestCLINKProducesWellFormedDendrogram(t *testing.T) {
	pts := points()
	d := SLINKDissimilarity(pts)
	dend, err := hierarchical.CLINK(len(pts), d)
	require.NoError(t, err)

	assertWellFormed(t, dend, len(pts))
}

func TestSLINKAgreesWithNaiveSingleLinkageCut(t *testing.T) {
	pts := points()
	d := SLINKDissimilarity(pts)
	dend, err := hierarchical.SLINK(len(pts), d)
	require.NoError(t, err)

	naiveClusters, err := hierarchical.Naive(len(pts), 3, hierarchical.SingleLinkage(dissimilarity(pts)))
	require.NoError(t, err)
	naiveLabels := labelsFromClusters(naiveClusters, len(pts))

	cutLabels := dend.WithClusterCount(3)
	assert.Equal(t, samePartition(naiveLabels), samePartition(cutLabels))
}

func TestNaiveRejectsNonPositiveClusterCount(t *testing.T) {
	_, err := hierarchical.Naive(4, 0, hierarchical.SingleLinkage(dissimilarity(points())))
	assert.True(t, errors.Is(err, cerrors.ErrInvalidParameter))
}

func TestNaiveRejectsMoreClustersThanSamples(t *testing.T) {
	pts := []float64{0, 1}
	_, err := hierarchical.Naive(len(pts), 3, hierarchical.SingleLinkage(dissimilarity(pts)))
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSamples))
}

func TestNaiveRejectsZeroSamples(t *testing.T) {
	_, err := hierarchical.Naive(0, 1, hierarchical.SingleLinkage(dissimilarity(nil)))
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSamples))
}

func TestSLINKRejectsZeroSamples(t *testing.T) {
	_, err := hierarchical.SLINK(0, SLINKDissimilarity(nil))
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSamples))
}

func TestCLINKRejectsZeroSamples(t *testing.T) {
	_, err := hierarchical.CLINK(0, SLINKDissimilarity(nil))
	assert.True(t, errors.Is(err, cerrors.ErrInsufficientSamples))
}

// samePartition normalises a label assignment to a canonical form so
// two partitions that agree up to a relabelling compare equal.
func samePartition(labels []int) []int {
	canon := make(map[int]int)
	out := make([]int, len(labels))
	next := 0
	for i, l := range labels {
		c, ok := canon[l]
		if !ok {
			c = next
			canon[l] = c
			next++
		}
		out[i] = c
	}
	return out
}

func SLINKDissimilarity(pts []float64) func(i, j int) float64 {
	return func(i, j int) float64 {
		return math.Abs(pts[i] - pts[j])
	}
}

func assertWellFormed(t *testing.T, dend interface {
	Len() int
	Height() []float64
	Target() []int
}, n int) {
	t.Helper()
	assert.Equal(t, n, dend.Len())

	height := dend.Height()
	target := dend.Target()

	assert.True(t, math.IsInf(height[n-1], 1))
	assert.Equal(t, n-1, target[n-1])

	for i := 0; i < n-1; i++ {
		assert.Greater(t, target[i], i)
	}
}
