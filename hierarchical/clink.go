package hierarchical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/dendrogram"
)

// CLINK builds the complete-linkage dendrogram over n samples in O(n²)
// time and space, via Defays' eight-step pointer-representation
// construction. Unlike SLINK, each new sample must find the single
// tightest attachment point and then cascade that change back through
// the existing chain rather than touching every entry independently.
//
// CLINK takes an index-based dissimilarity functor rather than raw
// vectors, so it has no samples of its own to check for non-finite
// values — that check belongs to whichever closure the caller built
// dissimilarity from.
func CLINK(n int, dissimilarity func(i, j int) float64) (dendrogram.Dendrogram, error) {
	if n <= 0 {
		return dendrogram.Dendrogram{}, fmt.Errorf("hierarchical: clink(%d): %w", n, cerrors.ErrInsufficientSamples)
	}

	target := make([]int, n)
	height := make([]float64, n)
	scratch := make([]float64, n)

	target[0] = 0
	height[0] = math.Inf(1)

	for sample := 1; sample < n; sample++ {
		// 1: the new sample starts as its own chain end.
		target[sample] = sample
		height[sample] = math.Inf(1)

		// 2: dissimilarity to every existing sample.
		for i := 0; i < sample; i++ {
			scratch[i] = dissimilarity(i, sample)
		}

		// 3: fold dissimilarities already superseded by an earlier merge
		// into their merge target.
		for i := 0; i < sample; i++ {
			if height[i] < scratch[i] {
				scratch[target[i]] = math.Max(scratch[target[i]], scratch[i])
				scratch[i] = math.Inf(1)
			}
		}

		// 4: default attachment point is the chain's current tail.
		a := sample - 1

		// 5: scan backward for the tightest attachment point not already
		// excluded by step 3.
		for i := sample - 1; i >= 0; i-- {
			if height[i] >= scratch[target[i]] {
				if scratch[i] < scratch[a] {
					a = i
				}
			} else {
				scratch[i] = math.Inf(1)
			}
		}

		// 6: attach the new sample at a, remembering what a pointed to
		// before.
		b := target[a]
		c := height[a]
		target[a] = sample
		height[a] = scratch[a]

		// 7: cascade the old (b, c) pair through the rest of the chain,
		// since everything past a that used to point beyond it must now
		// be re-threaded through the new sample.
		if a < sample-1 {
			for b < sample-1 {
				d := target[b]
				e := height[b]

				target[b] = sample
				height[b] = c

				b, c = d, e
			}

			if b == sample-1 {
				target[b] = sample
				height[b] = c
			}
		}

		// 8: fix any remaining link whose two-hop target now points at
		// the new sample.
		for i := 0; i < sample; i++ {
			if target[target[i]] == sample {
				if height[i] >= height[target[i]] {
					target[i] = sample
				}
			}
		}
	}

	return dendrogram.New(height, target), nil
}
