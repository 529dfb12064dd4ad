// SPDX-License-Identifier: MIT
package vecmath

import "math"

// Vector is a fixed-dimension aggregate of float64 components.
//
// The zero Vector{} has dimension 0 and is only useful as a placeholder;
// use NewVector or ZeroVector to build a usable value.
type Vector struct {
	values []float64
}

// NewVector wraps values as a Vector. The slice is copied, so the caller
// may reuse or mutate it afterwards.
func NewVector(values []float64) Vector {
	cp := make([]float64, len(values))
	copy(cp, values)
	return Vector{values: cp}
}

// ZeroVector returns the D-dimensional zero vector.
func ZeroVector(d int) Vector {
	return Vector{values: make([]float64, d)}
}

// Dim returns the dimension D of v.
func (v Vector) Dim() int {
	return len(v.values)
}

// At returns the i-th component of v.
func (v Vector) At(i int) float64 {
	return v.values[i]
}

// Set returns a copy of v with the i-th component replaced by x.
func (v Vector) Set(i int, x float64) Vector {
	cp := v.clone()
	cp.values[i] = x
	return cp
}

// Values returns a defensive copy of v's components.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

func (v Vector) clone() Vector {
	cp := make([]float64, len(v.values))
	copy(cp, v.values)
	return Vector{values: cp}
}

func requireSameDim(a, b Vector) {
	if a.Dim() != b.Dim() {
		panic("vecmath: vector dimension mismatch")
	}
}

// Add returns the element-wise sum a+b.
//
// Complexity: O(D).
func (a Vector) Add(b Vector) Vector {
	requireSameDim(a, b)
	out := make([]float64, a.Dim())
	for i := range out {
		out[i] = a.values[i] + b.values[i]
	}
	return Vector{values: out}
}

// Sub returns the element-wise difference a-b.
func (a Vector) Sub(b Vector) Vector {
	requireSameDim(a, b)
	out := make([]float64, a.Dim())
	for i := range out {
		out[i] = a.values[i] - b.values[i]
	}
	return Vector{values: out}
}

// Scale returns a*s, every component multiplied by the scalar s.
func (a Vector) Scale(s float64) Vector {
	out := make([]float64, a.Dim())
	for i := range out {
		out[i] = a.values[i] * s
	}
	return Vector{values: out}
}

// Div returns a/s, every component divided by the scalar s.
func (a Vector) Div(s float64) Vector {
	return a.Scale(1 / s)
}

// Dot returns the inner product <a,b> = sum_i a[i]*b[i].
//
// Complexity: O(D).
func (a Vector) Dot(b Vector) float64 {
	requireSameDim(a, b)
	var total float64
	for i := range a.values {
		total += a.values[i] * b.values[i]
	}
	return total
}

// SquaredLength returns <a,a>, the squared Euclidean norm.
func (a Vector) SquaredLength() float64 {
	return a.Dot(a)
}

// Length returns the Euclidean norm of a.
func (a Vector) Length() float64 {
	return math.Sqrt(a.SquaredLength())
}

// OuterProduct returns the D×D matrix u·vᵀ.
//
// Complexity: O(D²).
func (u Vector) OuterProduct(v Vector) Matrix {
	requireSameDim(u, v)
	d := u.Dim()
	m := ZeroMatrix(d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			m.data[i*d+j] = u.values[i] * v.values[j]
		}
	}
	return m
}

// SumVectors returns the element-wise sum of vs. Panics if vs is empty
// (callers must establish D from at least one element).
//
// Complexity: O(N·D).
func SumVectors(vs []Vector) Vector {
	total := ZeroVector(vs[0].Dim())
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}

// IsFinite reports whether every component of v is finite (not NaN, not
// ±Inf) — used at sample-ingestion boundaries to surface
// cerrors.ErrNonFiniteInput.
func (v Vector) IsFinite() bool {
	for _, x := range v.values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// AllFinite reports whether every sample in vs is finite. Every
// algorithm constructor that accepts raw samples calls this before
// touching them, so a caller always gets cerrors.ErrNonFiniteInput
// instead of a NaN silently propagating into a result.
//
// Complexity: O(N·D).
func AllFinite(vs []Vector) bool {
	for _, v := range vs {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}
