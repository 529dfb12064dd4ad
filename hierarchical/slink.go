package hierarchical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/dendrogram"
)

// SLINK builds the single-linkage dendrogram over n samples in O(n²)
// time and space, via Sibson's pointer-representation construction:
// each newly-incorporated sample n updates a scratch array against
// every existing (λ, π) pair before taking its own place at the end
// of the chain.
//
// SLINK takes an index-based dissimilarity functor rather than raw
// vectors, so it has no samples of its own to check for non-finite
// values — that check belongs to whichever closure the caller built
// dissimilarity from.
func SLINK(n int, dissimilarity func(i, j int) float64) (dendrogram.Dendrogram, error) {
	if n <= 0 {
		return dendrogram.Dendrogram{}, fmt.Errorf("hierarchical: slink(%d): %w", n, cerrors.ErrInsufficientSamples)
	}

	height := make([]float64, n)
	target := make([]int, n)
	scratch := make([]float64, n)

	for sample := 0; sample < n; sample++ {
		for i := 0; i < sample; i++ {
			scratch[i] = dissimilarity(i, sample)
		}

		height[sample] = math.Inf(1)
		target[sample] = sample

		for i := 0; i < sample; i++ {
			if bound := math.Max(height[i], scratch[i]); scratch[target[i]] > bound {
				scratch[target[i]] = bound
			}
		}
		for i := 0; i < sample; i++ {
			if bound := math.Max(height[i], scratch[target[i]]); scratch[i] > bound {
				scratch[i] = bound
			}
		}

		for i := 0; i < sample; i++ {
			if height[i] >= scratch[i] {
				height[i] = scratch[i]
				target[i] = sample
			}
		}
		for i := 0; i < sample; i++ {
			if height[i] >= height[target[i]] {
				target[i] = sample
			}
		}
	}

	return dendrogram.New(height, target), nil
}
