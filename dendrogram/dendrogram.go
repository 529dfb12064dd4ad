package dendrogram

import (
	"math"
	"sort"

	"github.com/katalvlaran/clusterkit/dsu"
)

// Dendrogram is a hierarchical-clustering result in pointer
// representation. For n in [0, N), Height[n] is the lowest merge
// height at which sample n ceases to be the rightmost member of its
// cluster, and Target[n] is the identity of the new rightmost member
// at that merge. The last sample's Height is +Inf and its Target is
// its own index.
type Dendrogram struct {
	height []float64
	target []int
}

// New builds a Dendrogram from parallel height/target arrays. Both
// slices must have equal, non-zero length; callers constructing a
// dendrogram from SLINK/CLINK/naive agglomerative output own that
// invariant.
func New(height []float64, target []int) Dendrogram {
	if len(height) != len(target) {
		panic("dendrogram: height and target length mismatch")
	}
	return Dendrogram{height: append([]float64(nil), height...), target: append([]int(nil), target...)}
}

// Len returns N, the number of original samples.
func (d Dendrogram) Len() int {
	return len(d.height)
}

// Height returns a copy of the λ array.
func (d Dendrogram) Height() []float64 {
	return append([]float64(nil), d.height...)
}

// Target returns a copy of the π array.
func (d Dendrogram) Target() []int {
	return append([]int(nil), d.target...)
}

// ForestEdge is one merge edge in a dendrogram section: the spanning
// forest of the equivalence classes induced by a cut.
type ForestEdge struct {
	From, To int
}

// DendrogramSection is the result of cutting a Dendrogram: a label per
// sample (dense in [0, component count)) plus the forest of merge
// edges that produced those components.
type DendrogramSection struct {
	Labels []int
	Edges  []ForestEdge
}

// WithHeight returns cluster labels for the horizontal cut at height
// h: every pair (i, π[i]) with λ[i] ≤ h is merged.
func (d Dendrogram) WithHeight(h float64) []int {
	return d.sectionAtHeight(h).Labels
}

// SectionAtHeight is WithHeight plus the forest edges used to reach it.
func (d Dendrogram) SectionAtHeight(h float64) DendrogramSection {
	return d.sectionAtHeight(h)
}

func (d Dendrogram) sectionAtHeight(h float64) DendrogramSection {
	set := dsu.New(d.Len())
	var edges []ForestEdge
	for i, height := range d.height {
		if height <= h {
			set.Merge(i, d.target[i])
			edges = append(edges, ForestEdge{From: i, To: d.target[i]})
		}
	}
	return DendrogramSection{Labels: set.ConnectedComponentLabels(), Edges: edges}
}

// WithClusterCount returns cluster labels obtained by merging pairs in
// ascending λ order until the component count drops to k or below.
func (d Dendrogram) WithClusterCount(k int) []int {
	return d.sectionAtClusterCount(k).Labels
}

// SectionAtClusterCount is WithClusterCount plus the forest edges used.
func (d Dendrogram) SectionAtClusterCount(k int) DendrogramSection {
	return d.sectionAtClusterCount(k)
}

func (d Dendrogram) sectionAtClusterCount(k int) DendrogramSection {
	order := make([]int, d.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return d.height[order[a]] < d.height[order[b]]
	})

	set := dsu.New(d.Len())
	var edges []ForestEdge
	for _, i := range order {
		if set.Count() <= k {
			break
		}
		set.Merge(i, d.target[i])
		edges = append(edges, ForestEdge{From: i, To: d.target[i]})
	}
	return DendrogramSection{Labels: set.ConnectedComponentLabels(), Edges: edges}
}

// finiteOr returns h if finite, otherwise fallback. Used by the SVG
// renderer to draw the root merge (λ = +Inf) at the frame's top edge
// rather than off-canvas.
func finiteOr(h, fallback float64) float64 {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return fallback
	}
	return h
}
