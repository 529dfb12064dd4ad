package gmm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/densematrix"
	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// densityFloor prevents a sample arbitrarily far from every component
// from producing a zero marginal likelihood, which would otherwise
// divide by zero in the posterior computation.
const densityFloor = 1e-16

// convergenceThreshold is the mean-squared-change across an M-step
// below which GMM.Run reports convergence.
const convergenceThreshold = 1e-4

// initialCovarianceScale scales the identity matrix used to seed every
// component's covariance.
const initialCovarianceScale = 0.01

// SeedFunc produces k initial means from samples, e.g.
// seeding.Lloyd or seeding.KMeansPlusPlus.
type SeedFunc func(src rng.Source, samples []vecmath.Vector, k int) ([]vecmath.Vector, error)

// GMM holds the fixed dimensions of an expectation-maximisation run.
type GMM struct {
	sampleCount  int
	clusterCount int
	dim          int
}

// New returns a GMM configured for sampleCount samples of dimension
// dim, fit with clusterCount components. clusterCount and dim must be
// positive, and sampleCount must be at least clusterCount.
func New(sampleCount, clusterCount, dim int) (GMM, error) {
	if clusterCount <= 0 || dim <= 0 {
		return GMM{}, fmt.Errorf("gmm: new(%d,%d,%d): %w", sampleCount, clusterCount, dim, cerrors.ErrInvalidParameter)
	}
	if sampleCount <= 0 || clusterCount > sampleCount {
		return GMM{}, fmt.Errorf("gmm: new(%d,%d,%d): %w", sampleCount, clusterCount, dim, cerrors.ErrInsufficientSamples)
	}
	return GMM{sampleCount: sampleCount, clusterCount: clusterCount, dim: dim}, nil
}

// Params is the model's current parameter estimate.
type Params struct {
	Weights     []float64
	Means       []vecmath.Vector
	Covariances []vecmath.Matrix
}

// Posterior is the full set of Bayesian intermediates an E-step
// produces, kept around so an M-step (or a visualiser) can inspect
// them directly.
type Posterior struct {
	Priors      []float64        // length clusterCount
	Likelihoods densematrix.Dense // clusterCount x sampleCount
	Marginal    []float64         // length sampleCount
	Posteriors  densematrix.Dense // clusterCount x sampleCount
}

// Init draws initial means via seed, sets weights uniform at 1/K, and
// sets every covariance to the identity scaled by initialCovarianceScale.
func (g GMM) Init(src rng.Source, samples []vecmath.Vector, seed SeedFunc) (Params, error) {
	if !vecmath.AllFinite(samples) {
		return Params{}, fmt.Errorf("gmm: init: %w", cerrors.ErrNonFiniteInput)
	}

	means, err := seed(src, samples, g.clusterCount)
	if err != nil {
		return Params{}, fmt.Errorf("gmm: init: %w", err)
	}

	weights := make([]float64, g.clusterCount)
	covariances := make([]vecmath.Matrix, g.clusterCount)
	for c := range weights {
		weights[c] = 1.0 / float64(g.clusterCount)
		covariances[c] = vecmath.IdentityMatrix(g.dim).Scale(initialCovarianceScale)
	}

	return Params{Weights: weights, Means: means, Covariances: covariances}, nil
}

// EStep computes priors, per-component likelihoods (floored at
// densityFloor), the marginal likelihood per sample, and the resulting
// posteriors.
func (g GMM) EStep(samples []vecmath.Vector, params Params) (Posterior, error) {
	priors := append([]float64(nil), params.Weights...)

	likelihoods, err := densematrix.New(g.clusterCount, g.sampleCount)
	if err != nil {
		return Posterior{}, err
	}
	for c := 0; c < g.clusterCount; c++ {
		dist, err := vecmath.NewMultivariateGaussian(params.Means[c], params.Covariances[c])
		if err != nil {
			return Posterior{}, fmt.Errorf("gmm: e_step: component %d: %w", c, err)
		}
		for n, sample := range samples {
			density := math.Max(dist.Density(sample), densityFloor)
			if err := likelihoods.Set(c, n, density); err != nil {
				return Posterior{}, err
			}
		}
	}

	marginal := make([]float64, g.sampleCount)
	for n := 0; n < g.sampleCount; n++ {
		var total float64
		for c := 0; c < g.clusterCount; c++ {
			v, _ := likelihoods.At(c, n)
			total += v * priors[c]
		}
		marginal[n] = total
	}

	posteriors, err := densematrix.New(g.clusterCount, g.sampleCount)
	if err != nil {
		return Posterior{}, err
	}
	for c := 0; c < g.clusterCount; c++ {
		for n := 0; n < g.sampleCount; n++ {
			likelihood, _ := likelihoods.At(c, n)
			if err := posteriors.Set(c, n, likelihood*priors[c]/marginal[n]); err != nil {
				return Posterior{}, err
			}
		}
	}

	return Posterior{Priors: priors, Likelihoods: likelihoods, Marginal: marginal, Posteriors: posteriors}, nil
}

// MStep recomputes weights, means, and Bessel-corrected covariances
// from the posteriors produced by EStep.
func (g GMM) MStep(samples []vecmath.Vector, post Posterior) Params {
	weights := make([]float64, g.clusterCount)
	means := make([]vecmath.Vector, g.clusterCount)
	covariances := make([]vecmath.Matrix, g.clusterCount)

	for c := 0; c < g.clusterCount; c++ {
		row := post.Posteriors.Row(c)

		weights[c] = post.Posteriors.RowSum(c) / float64(g.sampleCount)

		meanTotal := vecmath.ZeroVector(g.dim)
		var meanWeight float64
		for n, sample := range samples {
			meanTotal = meanTotal.Add(sample.Scale(row[n]))
			meanWeight += row[n]
		}
		means[c] = meanTotal.Div(meanWeight)

		covTotal := vecmath.ZeroMatrix(g.dim)
		var covWeight float64
		for n, sample := range samples {
			delta := sample.Sub(means[c])
			covTotal = covTotal.Add(delta.OuterProduct(delta).Scale(row[n]))
			covWeight += row[n]
		}
		besselFactor := float64(g.sampleCount) / float64(g.sampleCount-1)
		covariances[c] = covTotal.Scale(besselFactor / covWeight)
	}

	return Params{Weights: weights, Means: means, Covariances: covariances}
}

// Labels assigns each sample to its argmax posterior component.
func Labels(post Posterior, clusterCount, sampleCount int) []int {
	labels := make([]int, sampleCount)
	for n := 0; n < sampleCount; n++ {
		best, bestVal := 0, math.Inf(-1)
		for c := 0; c < clusterCount; c++ {
			v, _ := post.Posteriors.At(c, n)
			if v > bestVal {
				best, bestVal = c, v
			}
		}
		labels[n] = best
	}
	return labels
}

// Result is the converged state of a GMM fit.
type Result struct {
	Params    Params
	Posterior Posterior
	Labels    []int
	Iters     int
}

// Run drives init/e_step/m_step until the mean-squared change in
// (weights, means, covariances) across an M-step falls to
// convergenceThreshold or below, or maxIter is exhausted.
func (g GMM) Run(src rng.Source, samples []vecmath.Vector, seed SeedFunc, maxIter int) (Result, error) {
	params, err := g.Init(src, samples, seed)
	if err != nil {
		return Result{}, fmt.Errorf("gmm: run: %w", err)
	}

	post, err := g.EStep(samples, params)
	if err != nil {
		return Result{}, fmt.Errorf("gmm: run: %w", err)
	}
	params = g.MStep(samples, post)

	for iter := 1; iter < maxIter; iter++ {
		post, err = g.EStep(samples, params)
		if err != nil {
			return Result{}, fmt.Errorf("gmm: run: %w", err)
		}
		newParams := g.MStep(samples, post)
		delta := meanSquaredDelta(params, newParams)
		params = newParams
		if delta <= convergenceThreshold {
			return Result{Params: params, Posterior: post, Labels: Labels(post, g.clusterCount, g.sampleCount), Iters: iter}, nil
		}
	}

	return Result{Params: params, Posterior: post, Labels: Labels(post, g.clusterCount, g.sampleCount), Iters: maxIter}, nil
}

func meanSquaredDelta(prev, next Params) float64 {
	return mse(prev.Weights, next.Weights) + mseVectors(prev.Means, next.Means) + mseMatrices(prev.Covariances, next.Covariances)
}

func mse(a, b []float64) float64 {
	var total float64
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}
	return total / float64(len(a))
}

func mseVectors(a, b []vecmath.Vector) float64 {
	var total float64
	var n int
	for i := range a {
		d := a[i].Sub(b[i])
		for _, x := range d.Values() {
			total += x * x
			n++
		}
	}
	return total / float64(n)
}

func mseMatrices(a, b []vecmath.Matrix) float64 {
	var total float64
	var n int
	for i := range a {
		d := a[i].Sub(b[i])
		dim := d.Dim()
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				x := d.At(r, c)
				total += x * x
				n++
			}
		}
	}
	return total / float64(n)
}
