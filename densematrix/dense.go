// SPDX-License-Identifier: MIT
package densematrix

import (
	"fmt"

	"github.com/katalvlaran/clusterkit/cerrors"
)

// Dense is an r×c matrix of float64, stored row-major in a flat slice.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns an r×c Dense matrix initialised to zero. Both dimensions
// must be positive.
//
// Complexity: O(r*c).
func New(rows, cols int) (Dense, error) {
	if rows <= 0 || cols <= 0 {
		return Dense{}, fmt.Errorf("densematrix: new(%d,%d): %w", rows, cols, cerrors.ErrInvalidParameter)
	}
	return Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m Dense) Rows() int {
	return m.rows
}

// Cols returns the column count.
func (m Dense) Cols() int {
	return m.cols
}

func (m Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("densematrix: (%d,%d) out of [0,%d)x[0,%d): %w", row, col, m.rows, m.cols, cerrors.ErrInvalidParameter)
	}
	return row*m.cols + col, nil
}

// At returns the (row,col) entry, or an error if out of bounds.
func (m Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set writes v at (row,col), or returns an error if out of bounds.
func (m Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i.
//
// Complexity: O(c).
func (m Dense) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// RowSum returns the sum of row i's entries.
//
// Complexity: O(c).
func (m Dense) RowSum(i int) float64 {
	var total float64
	for _, v := range m.data[i*m.cols : (i+1)*m.cols] {
		total += v
	}
	return total
}

// Clone returns a deep copy of m.
//
// Complexity: O(r*c).
func (m Dense) Clone() Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Dense{rows: m.rows, cols: m.cols, data: data}
}

// String implements fmt.Stringer for debugging.
func (m Dense) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		s += "["
		for j := 0; j < m.cols; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.cols+j])
			if j < m.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
