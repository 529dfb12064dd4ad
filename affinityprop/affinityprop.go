package affinityprop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/densematrix"
)

// lerp blends an updated value toward a damped step: the result keeps
// damping's share of the previous value and (1-damping) of the freshly
// computed one. Sweeping damping toward 1 slows convergence but damps
// the oscillation the message-passing update is prone to.
func lerp(damping, updated, previous float64) float64 {
	return (1-damping)*updated + damping*previous
}

// AffinityPropagation holds the similarity, responsibility, and
// availability matrices for one clustering run.
type AffinityPropagation struct {
	sampleCount      int
	similarities     densematrix.Dense
	responsibilities densematrix.Dense
	availabilities   densematrix.Dense
}

// New builds an AffinityPropagation over sampleCount samples: the
// off-diagonal similarity(i,k) is whatever the caller's similarity
// functor reports, and every diagonal entry is set to preference,
// which controls how many samples end up as exemplars (a lower
// preference yields fewer clusters).
func New(sampleCount int, similarity func(i, k int) float64, preference float64) (*AffinityPropagation, error) {
	if math.IsNaN(preference) || math.IsInf(preference, 0) {
		return nil, fmt.Errorf("affinityprop: new(%d): %w", sampleCount, cerrors.ErrInvalidParameter)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("affinityprop: new(%d): %w", sampleCount, cerrors.ErrInsufficientSamples)
	}

	similarities, err := densematrix.New(sampleCount, sampleCount)
	if err != nil {
		return nil, err
	}
	for i := 0; i < sampleCount; i++ {
		for k := 0; k < sampleCount; k++ {
			v := preference
			if i != k {
				v = similarity(i, k)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("affinityprop: new(%d): %w", sampleCount, cerrors.ErrNonFiniteInput)
			}
			if err := similarities.Set(i, k, v); err != nil {
				return nil, err
			}
		}
	}

	responsibilities, err := densematrix.New(sampleCount, sampleCount)
	if err != nil {
		return nil, err
	}
	availabilities, err := densematrix.New(sampleCount, sampleCount)
	if err != nil {
		return nil, err
	}

	return &AffinityPropagation{
		sampleCount:      sampleCount,
		similarities:     similarities,
		responsibilities: responsibilities,
		availabilities:   availabilities,
	}, nil
}

// Update performs one round of responsibility and availability message
// passing, damped by damping (the previous value's weight).
func (ap *AffinityPropagation) Update(damping float64) {
	n := ap.sampleCount

	newResponsibilities, _ := densematrix.New(n, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			sik, _ := ap.similarities.At(i, k)

			best := math.Inf(-1)
			for kp := 0; kp < n; kp++ {
				if kp == k {
					continue
				}
				a, _ := ap.availabilities.At(i, kp)
				s, _ := ap.similarities.At(i, kp)
				if v := a + s; v > best {
					best = v
				}
			}

			updated := sik - best
			previous, _ := ap.responsibilities.At(i, k)
			_ = newResponsibilities.Set(i, k, lerp(damping, updated, previous))
		}
	}
	ap.responsibilities = newResponsibilities

	newAvailabilities, _ := densematrix.New(n, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			var updated float64
			for ip := 0; ip < n; ip++ {
				if ip == i || ip == k {
					continue
				}
				r, _ := ap.responsibilities.At(ip, k)
				updated += math.Max(r, 0)
			}

			if i != k {
				rkk, _ := ap.responsibilities.At(k, k)
				updated += rkk
				updated = math.Min(updated, 0)
			}

			previous, _ := ap.availabilities.At(i, k)
			_ = newAvailabilities.Set(i, k, lerp(damping, updated, previous))
		}
	}
	ap.availabilities = newAvailabilities
}

// Exemplars returns the indices of samples that are their own
// exemplar: self-responsibility plus self-availability is positive.
func (ap *AffinityPropagation) Exemplars() []int {
	var out []int
	for i := 0; i < ap.sampleCount; i++ {
		r, _ := ap.responsibilities.At(i, i)
		a, _ := ap.availabilities.At(i, i)
		if r+a > 0 {
			out = append(out, i)
		}
	}
	return out
}

// Labels assigns each sample to the exemplar with the highest
// responsibility toward it. If exemplars is empty, every sample is
// labelled 0 by convention.
func (ap *AffinityPropagation) Labels(exemplars []int) []int {
	labels := make([]int, ap.sampleCount)
	if len(exemplars) == 0 {
		return labels
	}

	for i := 0; i < ap.sampleCount; i++ {
		bestLabel := 0
		bestVal := math.Inf(-1)
		for label, k := range exemplars {
			r, _ := ap.responsibilities.At(i, k)
			if r > bestVal {
				bestLabel, bestVal = label, r
			}
		}
		labels[i] = bestLabel
	}
	return labels
}

// Result is the converged outcome of a Run.
type Result struct {
	Exemplars []int
	Labels    []int
	Iters     int
}

// Run repeatedly calls Update until the set of exemplars stabilises
// across two consecutive rounds (and is non-empty), or maxIter is
// exhausted. A damping outside [0,1] is rejected with
// cerrors.ErrInvalidParameter.
func Run(sampleCount int, similarity func(i, k int) float64, preference, damping float64, maxIter int) (Result, error) {
	if !(damping >= 0 && damping <= 1) {
		return Result{}, fmt.Errorf("affinityprop: run: damping %v: %w", damping, cerrors.ErrInvalidParameter)
	}
	ap, err := New(sampleCount, similarity, preference)
	if err != nil {
		return Result{}, err
	}

	ap.Update(damping)
	exemplars := ap.Exemplars()

	for iter := 1; iter < maxIter; iter++ {
		ap.Update(damping)
		newExemplars := ap.Exemplars()
		if len(exemplars) > 0 && sameExemplars(exemplars, newExemplars) {
			return Result{Exemplars: exemplars, Labels: ap.Labels(exemplars), Iters: iter}, nil
		}
		exemplars = newExemplars
	}

	return Result{Exemplars: exemplars, Labels: ap.Labels(exemplars), Iters: maxIter}, nil
}

func sameExemplars(a, b []int) bool {
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
