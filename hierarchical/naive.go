package hierarchical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
)

// Linkage measures the distance between two clusters, each given as a
// list of sample indices.
type Linkage func(a, b []int) float64

// SingleLinkage returns a Linkage computing the minimum pairwise
// distance between the two clusters' members.
func SingleLinkage(dissimilarity func(i, j int) float64) Linkage {
	return func(a, b []int) float64 {
		best := math.Inf(1)
		for _, i := range a {
			for _, j := range b {
				if d := dissimilarity(i, j); d < best {
					best = d
				}
			}
		}
		return best
	}
}

// CompleteLinkage returns a Linkage computing the maximum pairwise
// distance between the two clusters' members.
func CompleteLinkage(dissimilarity func(i, j int) float64) Linkage {
	return func(a, b []int) float64 {
		best := math.Inf(-1)
		for _, i := range a {
			for _, j := range b {
				if d := dissimilarity(i, j); d > best {
					best = d
				}
			}
		}
		return best
	}
}

// AverageLinkage returns a Linkage computing the arithmetic mean of
// pairwise distances between the two clusters' members.
func AverageLinkage(dissimilarity func(i, j int) float64) Linkage {
	return func(a, b []int) float64 {
		var total float64
		var count int
		for _, i := range a {
			for _, j := range b {
				total += dissimilarity(i, j)
				count++
			}
		}
		return total / float64(count)
	}
}

// Naive performs agglomerative clustering by repeatedly merging the
// closest pair of clusters (by linkage) until clusterCount remain,
// starting from sampleCount singletons. Ties are broken by whichever
// pair linkage first visits in ascending (i,j) order over the current
// cluster list. clusterCount must be positive and sampleCount must be
// at least clusterCount.
//
// Each merge round evaluates O(n²) pairwise dissimilarities and
// recomputes linkage from scratch every round — it trades performance
// for being usable with any linkage functor, unlike SLINK/CLINK which
// are specialised to a single linkage rule each.
//
// Naive takes sample indices and a Linkage functor rather than raw
// vectors, so it has no samples of its own to check for non-finite
// values — that check belongs to whichever dissimilarity closure the
// caller built Linkage from.
func Naive(sampleCount, clusterCount int, linkage Linkage) ([][]int, error) {
	if clusterCount <= 0 {
		return nil, fmt.Errorf("hierarchical: naive(%d,%d): %w", sampleCount, clusterCount, cerrors.ErrInvalidParameter)
	}
	if sampleCount <= 0 || clusterCount > sampleCount {
		return nil, fmt.Errorf("hierarchical: naive(%d,%d): %w", sampleCount, clusterCount, cerrors.ErrInsufficientSamples)
	}

	clusters := make([][]int, sampleCount)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > clusterCount {
		bestI, bestJ := -1, -1
		bestDist := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				if d := linkage(clusters[i], clusters[j]); d < bestDist {
					bestDist, bestI, bestJ = d, i, j
				}
			}
		}

		clusters[bestI] = append(clusters[bestI], clusters[bestJ]...)
		last := len(clusters) - 1
		clusters[bestJ] = clusters[last]
		clusters = clusters[:last]
	}

	return clusters, nil
}
