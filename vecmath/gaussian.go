// SPDX-License-Identifier: MIT
package vecmath

import (
	"fmt"
	"math"
)

// MultivariateGaussian is an immutable multivariate normal density
// evaluator. Constructing one pre-computes the inverse covariance
// (scaled by -½, the "bilinear form") and the normalising constant, so
// that Density is a single bilinear form plus an exp and a multiply —
// the GMM E-step calls it once per (cluster, sample) pair every
// iteration.
type MultivariateGaussian struct {
	mean         Vector
	bilinearForm Matrix
	normalizer   float64
}

// NewMultivariateGaussian constructs a MultivariateGaussian from a mean
// and covariance. Returns cerrors.ErrSingularCovariance if covariance is
// not invertible.
func NewMultivariateGaussian(mean Vector, covariance Matrix) (MultivariateGaussian, error) {
	inv, err := covariance.Inverse()
	if err != nil {
		return MultivariateGaussian{}, fmt.Errorf("vecmath: multivariate gaussian: %w", err)
	}

	det := covariance.Determinant()
	d := float64(mean.Dim())
	normalizer := 1.0 / math.Sqrt(math.Pow(2*math.Pi, d)*det)

	return MultivariateGaussian{
		mean:         mean,
		bilinearForm: inv.Scale(-0.5),
		normalizer:   normalizer,
	}, nil
}

// Density evaluates the PDF at point x:
//
//	pdf(x) = exp((x-μ)ᵀ · (-½Σ⁻¹) · (x-μ)) · (2π)^(-D/2) · |Σ|^(-½)
//
// It does not apply any density floor — that is a consumer policy
// (gmm's E-step), not a property of the density itself.
func (g MultivariateGaussian) Density(x Vector) float64 {
	displacement := x.Sub(g.mean)
	exponent := g.bilinearForm.MulVector(displacement).Dot(displacement)
	return math.Exp(exponent) * g.normalizer
}
