package visualizer

import (
	"fmt"

	"github.com/katalvlaran/clusterkit/affinityprop"
	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/dbscan"
	"github.com/katalvlaran/clusterkit/gmm"
	"github.com/katalvlaran/clusterkit/hierarchical"
	"github.com/katalvlaran/clusterkit/kmeans"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// Kind tags which clustering family a Clusterer wraps.
type Kind int

const (
	KindKMeans Kind = iota
	KindGMM
	KindDBSCAN
	KindAgglomerativeSingleLinkage
	KindAffinityPropagation
	KindSLINK
	KindCLINK
)

func (k Kind) String() string {
	switch k {
	case KindKMeans:
		return "k-means"
	case KindGMM:
		return "gaussian mixture"
	case KindDBSCAN:
		return "dbscan"
	case KindAgglomerativeSingleLinkage:
		return "agglomerative (single-linkage)"
	case KindAffinityPropagation:
		return "affinity propagation"
	case KindSLINK:
		return "hierarchical (slink)"
	case KindCLINK:
		return "hierarchical (clink)"
	default:
		return "unknown"
	}
}

// Clusterer is a tagged variant that drives any of the seven clustering
// families through the same init/step/inspect/render lifecycle, so a
// caller can swap one algorithm in for another without touching its
// driving loop.
type Clusterer struct {
	kind    Kind
	samples []vecmath.Vector
	src     rng.Source
	iters   int
	done    bool

	km       kmeans.KMeans
	kmSeed   kmeans.SeedFunc
	kmMeans  []vecmath.Vector
	kmLabels []int

	gm       gmm.GMM
	gmSeed   gmm.SeedFunc
	gmParams gmm.Params
	gmLabels []int

	dbscanEpsilon float64
	dbscanMinPts  int
	dbscanResult  dbscan.Result

	aggClusterCount int
	aggLinkage      hierarchical.Linkage
	aggClusters     [][]int
	aggLabels       []int

	hcClusterCount  int
	hcDissimilarity func(i, j int) float64
	hcLabels        []int

	ap              *affinityprop.AffinityPropagation
	apDamping       float64
	apExemplars     []int
	apPrevExemplars []int
	apLabels        []int
}

// NewKMeans wraps a K-Means run over samples.
func NewKMeans(samples []vecmath.Vector, clusterCount int, src rng.Source, seed kmeans.SeedFunc) (*Clusterer, error) {
	km, err := kmeans.New(len(samples), clusterCount)
	if err != nil {
		return nil, err
	}
	return &Clusterer{kind: KindKMeans, samples: samples, src: src, km: km, kmSeed: seed}, nil
}

// NewGMM wraps a Gaussian mixture expectation-maximisation run over samples.
func NewGMM(samples []vecmath.Vector, clusterCount int, src rng.Source, seed gmm.SeedFunc) (*Clusterer, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("visualizer: new gmm: %w", cerrors.ErrInsufficientSamples)
	}
	g, err := gmm.New(len(samples), clusterCount, samples[0].Dim())
	if err != nil {
		return nil, err
	}
	return &Clusterer{kind: KindGMM, samples: samples, src: src, gm: g, gmSeed: seed}, nil
}

// NewDBSCAN wraps a single-shot DBSCAN run over samples.
func NewDBSCAN(samples []vecmath.Vector, epsilon float64, minPts int) *Clusterer {
	return &Clusterer{kind: KindDBSCAN, samples: samples, dbscanEpsilon: epsilon, dbscanMinPts: minPts}
}

// NewAgglomerativeSingleLinkage wraps a single-shot naive agglomerative
// run over samples, cut at clusterCount clusters.
func NewAgglomerativeSingleLinkage(samples []vecmath.Vector, clusterCount int) *Clusterer {
	dissimilarity := func(i, j int) float64 {
		return samples[i].Sub(samples[j]).SquaredLength()
	}
	return &Clusterer{
		kind:            KindAgglomerativeSingleLinkage,
		samples:         samples,
		aggClusterCount: clusterCount,
		aggLinkage:      hierarchical.SingleLinkage(dissimilarity),
	}
}

// NewSLINK wraps a single-shot SLINK (single-linkage) dendrogram build
// over samples, cut at clusterCount clusters.
func NewSLINK(samples []vecmath.Vector, clusterCount int) *Clusterer {
	return &Clusterer{
		kind:            KindSLINK,
		samples:         samples,
		hcClusterCount:  clusterCount,
		hcDissimilarity: squaredDissimilarity(samples),
	}
}

// NewCLINK wraps a single-shot CLINK (complete-linkage) dendrogram
// build over samples, cut at clusterCount clusters.
func NewCLINK(samples []vecmath.Vector, clusterCount int) *Clusterer {
	return &Clusterer{
		kind:            KindCLINK,
		samples:         samples,
		hcClusterCount:  clusterCount,
		hcDissimilarity: squaredDissimilarity(samples),
	}
}

func squaredDissimilarity(samples []vecmath.Vector) func(i, j int) float64 {
	return func(i, j int) float64 {
		return samples[i].Sub(samples[j]).SquaredLength()
	}
}

// NewAffinityPropagation wraps an affinity propagation run over samples.
func NewAffinityPropagation(samples []vecmath.Vector, similarity func(i, k int) float64, preference, damping float64) (*Clusterer, error) {
	ap, err := affinityprop.New(len(samples), similarity, preference)
	if err != nil {
		return nil, err
	}
	return &Clusterer{kind: KindAffinityPropagation, samples: samples, ap: ap, apDamping: damping}, nil
}

// Kind reports which clustering family this Clusterer wraps.
func (c *Clusterer) Kind() Kind {
	return c.kind
}

// Init draws the clusterer's initial state. K-Means and the Gaussian
// mixture draw seeded means; the remaining five families have no
// distinct initial state to draw, so Init is a no-op for them.
func (c *Clusterer) Init() error {
	switch c.kind {
	case KindKMeans:
		means, err := c.km.Init(c.src, c.samples, c.kmSeed)
		if err != nil {
			return err
		}
		c.kmMeans = means
	case KindGMM:
		params, err := c.gm.Init(c.src, c.samples, c.gmSeed)
		if err != nil {
			return err
		}
		c.gmParams = params
	}
	return nil
}

// Step advances the clusterer by one iteration and reports whether it
// has converged. DBSCAN, agglomerative clustering, and the SLINK/CLINK
// dendrogram builds run to completion on their first Step, since none
// of those four are expressed as an iterative refinement.
func (c *Clusterer) Step() (bool, error) {
	if c.done {
		return true, nil
	}
	if (c.kind == KindKMeans && c.kmMeans == nil) || (c.kind == KindGMM && c.gmParams.Means == nil) {
		return false, fmt.Errorf("visualizer: step before init: %w", cerrors.ErrBuilderState)
	}
	c.iters++

	switch c.kind {
	case KindKMeans:
		labels, _ := c.km.EStep(c.samples, c.kmMeans)
		if c.kmLabels != nil && sameInts(labels, c.kmLabels) {
			c.kmLabels = labels
			c.done = true
			return true, nil
		}
		c.kmLabels = labels
		c.kmMeans = c.km.MStep(c.src, c.samples, labels)

	case KindGMM:
		post, err := c.gm.EStep(c.samples, c.gmParams)
		if err != nil {
			return false, err
		}
		newParams := c.gm.MStep(c.samples, post)
		c.gmLabels = gmm.Labels(post, len(newParams.Weights), len(c.samples))
		c.gmParams = newParams

	case KindDBSCAN:
		result, err := dbscan.Run(c.samples, c.dbscanEpsilon, c.dbscanMinPts)
		if err != nil {
			return false, err
		}
		c.dbscanResult = result
		c.done = true
		return true, nil

	case KindAgglomerativeSingleLinkage:
		clusters, err := hierarchical.Naive(len(c.samples), c.aggClusterCount, c.aggLinkage)
		if err != nil {
			return false, err
		}
		c.aggClusters = clusters
		c.aggLabels = labelsFromClusters(len(c.samples), c.aggClusters)
		c.done = true
		return true, nil

	case KindSLINK:
		dend, err := hierarchical.SLINK(len(c.samples), c.hcDissimilarity)
		if err != nil {
			return false, err
		}
		c.hcLabels = dend.WithClusterCount(c.hcClusterCount)
		c.done = true
		return true, nil

	case KindCLINK:
		dend, err := hierarchical.CLINK(len(c.samples), c.hcDissimilarity)
		if err != nil {
			return false, err
		}
		c.hcLabels = dend.WithClusterCount(c.hcClusterCount)
		c.done = true
		return true, nil

	case KindAffinityPropagation:
		c.ap.Update(c.apDamping)
		newExemplars := c.ap.Exemplars()
		converged := len(c.apExemplars) > 0 && sameInts(c.apExemplars, newExemplars)
		c.apPrevExemplars, c.apExemplars = c.apExemplars, newExemplars
		c.apLabels = c.ap.Labels(c.apExemplars)
		if converged {
			c.done = true
			return true, nil
		}
	}

	return false, nil
}

// Labels returns the current per-sample cluster assignment.
func (c *Clusterer) Labels() []int {
	switch c.kind {
	case KindKMeans:
		return c.kmLabels
	case KindGMM:
		return c.gmLabels
	case KindDBSCAN:
		return c.dbscanResult.Labels
	case KindAgglomerativeSingleLinkage:
		return c.aggLabels
	case KindSLINK, KindCLINK:
		return c.hcLabels
	case KindAffinityPropagation:
		return c.apLabels
	default:
		return nil
	}
}

// MeansOrExemplars returns the current cluster representatives: means
// for K-Means and the Gaussian mixture, exemplar samples for affinity
// propagation, and the post-hoc arithmetic mean of each labelled group
// for DBSCAN, agglomerative clustering, and the SLINK/CLINK dendrogram
// cuts (none of which has a notion of a running mean).
func (c *Clusterer) MeansOrExemplars() []vecmath.Vector {
	switch c.kind {
	case KindKMeans:
		return c.kmMeans
	case KindGMM:
		return c.gmParams.Means
	case KindDBSCAN:
		return meansOfLabels(c.samples, c.dbscanResult.Labels, c.dbscanResult.ClusterCount)
	case KindAgglomerativeSingleLinkage:
		return meansOfLabels(c.samples, c.aggLabels, len(c.aggClusters))
	case KindSLINK, KindCLINK:
		return meansOfLabels(c.samples, c.hcLabels, c.hcClusterCount)
	case KindAffinityPropagation:
		out := make([]vecmath.Vector, len(c.apExemplars))
		for i, idx := range c.apExemplars {
			out[i] = c.samples[idx]
		}
		return out
	default:
		return nil
	}
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func labelsFromClusters(sampleCount int, clusters [][]int) []int {
	labels := make([]int, sampleCount)
	for label, cluster := range clusters {
		for _, idx := range cluster {
			labels[idx] = label
		}
	}
	return labels
}

func meansOfLabels(samples []vecmath.Vector, labels []int, clusterCount int) []vecmath.Vector {
	if clusterCount <= 0 || len(samples) == 0 {
		return nil
	}
	dim := samples[0].Dim()
	totals := make([]vecmath.Vector, clusterCount)
	counts := make([]int, clusterCount)
	for c := range totals {
		totals[c] = vecmath.ZeroVector(dim)
	}
	for i, label := range labels {
		if label < 0 || label >= clusterCount {
			continue
		}
		totals[label] = totals[label].Add(samples[i])
		counts[label]++
	}
	means := make([]vecmath.Vector, clusterCount)
	for c := range means {
		if counts[c] > 0 {
			means[c] = totals[c].Div(float64(counts[c]))
		} else {
			means[c] = vecmath.ZeroVector(dim)
		}
	}
	return means
}
