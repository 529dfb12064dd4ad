package posterize

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/gmm"
	"github.com/katalvlaran/clusterkit/hierarchical"
	"github.com/katalvlaran/clusterkit/kmeans"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/seeding"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// Method selects which clustering algorithm assigns pixels to their
// posterised colour.
type Method int

const (
	// MethodKMeans assigns each pixel to its nearest mean.
	MethodKMeans Method = iota
	// MethodGMM assigns each pixel to its argmax-posterior component.
	MethodGMM
	// MethodAgglomerativeSingleLinkage assigns each pixel to the
	// single-linkage cluster it falls into, represented by the
	// arithmetic mean of its members computed after clustering.
	MethodAgglomerativeSingleLinkage
)

// Options configures a Posterize call.
type Options struct {
	Method       Method
	ClusterCount int
	Source       rng.Source
	Seed         kmeans.SeedFunc
	MaxIter      int
}

const labDim = 3

// Posterize clusters img's pixels in Lab colour space and returns a
// new image where every pixel has been replaced by its cluster's
// representative colour.
func Posterize(img image.Image, opts Options) (image.Image, error) {
	if opts.ClusterCount <= 0 {
		return nil, fmt.Errorf("posterize: %w", cerrors.ErrInvalidParameter)
	}
	if opts.Source == nil {
		opts.Source = rng.FromSeed(1)
	}
	if opts.Seed == nil {
		opts.Seed = seeding.KMeansPlusPlus
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 100
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	sampleCount := width * height

	samples := make([]vecmath.Vector, 0, sampleCount)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			cc := colorful.Color{R: float64(r) / 65535, G: float64(g) / 65535, B: float64(b) / 65535}
			l, a, bb := cc.Lab()
			samples = append(samples, vecmath.NewVector([]float64{l, a, bb}))
		}
	}

	labels, representatives, err := assign(samples, opts)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(bounds)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rep := representatives[labels[idx]]
			labColor := colorful.Lab(rep.At(0), rep.At(1), rep.At(2)).Clamped()
			rr, gg, bbb := labColor.RGB255()
			out.Set(x, y, color.RGBA{R: rr, G: gg, B: bbb, A: 255})
			idx++
		}
	}
	return out, nil
}

func assign(samples []vecmath.Vector, opts Options) ([]int, []vecmath.Vector, error) {
	switch opts.Method {
	case MethodKMeans:
		model, err := kmeans.New(len(samples), opts.ClusterCount)
		if err != nil {
			return nil, nil, err
		}
		result, err := model.Run(opts.Source, samples, opts.Seed, opts.MaxIter)
		if err != nil {
			return nil, nil, err
		}
		return result.Labels, result.Means, nil

	case MethodGMM:
		model, err := gmm.New(len(samples), opts.ClusterCount, labDim)
		if err != nil {
			return nil, nil, err
		}
		result, err := model.Run(opts.Source, samples, opts.Seed, opts.MaxIter)
		if err != nil {
			return nil, nil, err
		}
		return result.Labels, result.Params.Means, nil

	case MethodAgglomerativeSingleLinkage:
		dissimilarity := func(i, j int) float64 {
			return samples[i].Sub(samples[j]).SquaredLength()
		}
		clusters, err := hierarchical.Naive(len(samples), opts.ClusterCount, hierarchical.SingleLinkage(dissimilarity))
		if err != nil {
			return nil, nil, err
		}

		labels := make([]int, len(samples))
		representatives := make([]vecmath.Vector, len(clusters))
		for label, cluster := range clusters {
			total := vecmath.ZeroVector(labDim)
			for _, idx := range cluster {
				labels[idx] = label
				total = total.Add(samples[idx])
			}
			representatives[label] = total.Div(float64(len(cluster)))
		}
		return labels, representatives, nil

	default:
		return nil, nil, fmt.Errorf("posterize: unknown method %d: %w", opts.Method, cerrors.ErrInvalidParameter)
	}
}
