// SPDX-License-Identifier: MIT
package vecmath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clusterkit/cerrors"
)

// Matrix is a D×D matrix of float64, stored row-major in a flat slice.
type Matrix struct {
	d    int
	data []float64
}

// ZeroMatrix returns the D×D zero matrix.
func ZeroMatrix(d int) Matrix {
	return Matrix{d: d, data: make([]float64, d*d)}
}

// IdentityMatrix returns the D×D identity matrix.
func IdentityMatrix(d int) Matrix {
	m := ZeroMatrix(d)
	for i := 0; i < d; i++ {
		m.data[i*d+i] = 1
	}
	return m
}

// NewMatrixFromRows builds a D×D Matrix from row-major nested slices.
// Every row must have length D == len(rows).
func NewMatrixFromRows(rows [][]float64) Matrix {
	d := len(rows)
	m := ZeroMatrix(d)
	for i, row := range rows {
		if len(row) != d {
			panic("vecmath: non-square matrix literal")
		}
		copy(m.data[i*d:(i+1)*d], row)
	}
	return m
}

// Dim returns D, the matrix's row/column count.
func (m Matrix) Dim() int {
	return m.d
}

// At returns the (i,j) entry.
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.d+j]
}

// Set returns a copy of m with (i,j) replaced by x.
func (m Matrix) Set(i, j int, x float64) Matrix {
	cp := m.clone()
	cp.data[i*m.d+j] = x
	return cp
}

func (m Matrix) clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return Matrix{d: m.d, data: cp}
}

func requireSameDimMatrix(a, b Matrix) {
	if a.d != b.d {
		panic("vecmath: matrix dimension mismatch")
	}
}

// Add returns the element-wise sum a+b.
//
// Complexity: O(D²).
func (a Matrix) Add(b Matrix) Matrix {
	requireSameDimMatrix(a, b)
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}
	return Matrix{d: a.d, data: out}
}

// Sub returns the element-wise difference a-b.
func (a Matrix) Sub(b Matrix) Matrix {
	requireSameDimMatrix(a, b)
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] - b.data[i]
	}
	return Matrix{d: a.d, data: out}
}

// Scale returns a*s, every entry multiplied by the scalar s.
func (a Matrix) Scale(s float64) Matrix {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] * s
	}
	return Matrix{d: a.d, data: out}
}

// MulVector returns the matrix-vector product m*v.
//
// Complexity: O(D²).
func (m Matrix) MulVector(v Vector) Vector {
	if m.d != v.Dim() {
		panic("vecmath: matrix/vector dimension mismatch")
	}
	out := make([]float64, m.d)
	for i := 0; i < m.d; i++ {
		var total float64
		for j := 0; j < m.d; j++ {
			total += m.data[i*m.d+j] * v.At(j)
		}
		out[i] = total
	}
	return Vector{values: out}
}

// IsSymmetric reports whether m equals its transpose within tol.
//
// Complexity: O(D²).
func (m Matrix) IsSymmetric(tol float64) bool {
	for i := 0; i < m.d; i++ {
		for j := i + 1; j < m.d; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Inverse computes m⁻¹ via Gauss-Jordan elimination with partial
// pivoting, operating in-place on the augmented [A | I]: for each pivot
// column, swap in the first row with a non-zero element at that column,
// normalise the pivot row, then eliminate above and below. Returns
// cerrors.ErrSingularCovariance if no
// non-zero pivot exists in a column — the name is GMM-flavoured because
// that is clusterkit's sole consumer of matrix inversion, but the
// algorithm itself is general.
//
// Complexity: O(D³).
func (m Matrix) Inverse() (Matrix, error) {
	n := m.d
	lhs := m.clone()
	rhs := IdentityMatrix(n)

	for pivot := 0; pivot < n; pivot++ {
		row := -1
		for r := pivot; r < n; r++ {
			if lhs.At(r, pivot) != 0 {
				row = r
				break
			}
		}
		if row == -1 {
			return Matrix{}, fmt.Errorf("vecmath: inverse: %w", cerrors.ErrSingularCovariance)
		}
		if row != pivot {
			swapRows(&lhs, row, pivot)
			swapRows(&rhs, row, pivot)
		}

		c := lhs.At(pivot, pivot)
		lhs = lhs.Set(pivot, pivot, 1)
		for i := pivot + 1; i < n; i++ {
			lhs = lhs.Set(pivot, i, lhs.At(pivot, i)/c)
		}
		for i := 0; i < n; i++ {
			rhs = rhs.Set(pivot, i, rhs.At(pivot, i)/c)
		}

		for j := 0; j < n; j++ {
			if j == pivot {
				continue
			}
			c := lhs.At(j, pivot)
			lhs = lhs.Set(j, pivot, 0)
			for i := pivot + 1; i < n; i++ {
				lhs = lhs.Set(j, i, lhs.At(j, i)-c*lhs.At(pivot, i))
			}
			for i := 0; i < n; i++ {
				rhs = rhs.Set(j, i, rhs.At(j, i)-c*rhs.At(pivot, i))
			}
		}
	}

	return rhs, nil
}

func swapRows(m *Matrix, r1, r2 int) {
	d := m.d
	for c := 0; c < d; c++ {
		i1, i2 := r1*d+c, r2*d+c
		m.data[i1], m.data[i2] = m.data[i2], m.data[i1]
	}
}

// Determinant computes det(m) via the Leibniz formula: the signed sum,
// over every permutation σ of {0..D-1}, of the product Π_i m[i,σ(i)].
// This is deliberately O(D!) — tractable only for small D, which is
// exactly the regime clusterkit's covariance matrices live in.
//
// Complexity: O(D!·D).
func (m Matrix) Determinant() float64 {
	var result float64
	for perm := range Permutations(m.d) {
		product := 1.0
		for i, j := range perm.Indices {
			product *= m.At(i, j)
		}
		if perm.Parity == Even {
			result += product
		} else {
			result -= product
		}
	}
	return result
}
