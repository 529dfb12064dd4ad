// SPDX-License-Identifier: MIT
package vecmath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
)

// Eigenvalues returns the eigenvalues of the symmetric matrix m via the
// classical Jacobi rotation method: repeatedly zero the largest
// off-diagonal entry until every off-diagonal entry is within tol of
// zero, then read the eigenvalues off the diagonal.
//
// This exists to verify that covariance matrices produced by Gaussian
// mixture fitting stay symmetric positive semi-definite — it is not on
// any hot path. Returns cerrors.ErrInvalidParameter if m is not
// symmetric within tol, or if the sweep does not converge within
// maxIter.
//
// Complexity: O(maxIter·D²) — each sweep scans the off-diagonal for the
// largest entry and rotates two rows/columns.
func Eigenvalues(m Matrix, tol float64, maxIter int) ([]float64, error) {
	if !m.IsSymmetric(tol) {
		return nil, fmt.Errorf("vecmath: eigenvalues: not symmetric: %w", cerrors.ErrInvalidParameter)
	}

	n := m.Dim()
	a := m.clone()

	iter := 0
	for ; iter < maxIter; iter++ {
		p, q := -1, -1
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.At(i, j)); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := a.At(p, p), a.At(q, q), a.At(p, q)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := a.At(i, p), a.At(i, q)
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			a = a.Set(i, p, newIP)
			a = a.Set(p, i, newIP)
			a = a.Set(i, q, newIQ)
			a = a.Set(q, i, newIQ)
		}
		a = a.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		a = a.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		a = a.Set(p, q, 0)
		a = a.Set(q, p, 0)
	}
	if iter == maxIter {
		return nil, fmt.Errorf("vecmath: eigenvalues: %w", cerrors.ErrInvalidParameter)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.At(i, i)
	}
	return out, nil
}
