// SPDX-License-Identifier: MIT
package samplegen

import (
	"math"

	"github.com/katalvlaran/clusterkit/rng"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// Blobs draws countPerBlob samples around each of the given centres,
// each coordinate perturbed by independent Gaussian noise with
// standard deviation WithSpread (default 0.5).
//
// Complexity: O(len(centres)*countPerBlob*D).
func Blobs(centres [][]float64, countPerBlob int, opts ...Option) []vecmath.Vector {
	c := newConfig(opts)

	out := make([]vecmath.Vector, 0, len(centres)*countPerBlob)
	for _, centre := range centres {
		for i := 0; i < countPerBlob; i++ {
			values := make([]float64, len(centre))
			for d, mean := range centre {
				values[d] = mean + c.spread*gaussianNoise(c.source)
			}
			out = append(out, vecmath.NewVector(values))
		}
	}
	return out
}

// Grid returns a rows×cols regular lattice of 2-D points spaced
// cellSize apart, anchored at the origin.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int, cellSize float64) []vecmath.Vector {
	out := make([]vecmath.Vector, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			out = append(out, vecmath.NewVector([]float64{float64(col) * cellSize, float64(r) * cellSize}))
		}
	}
	return out
}

// Ring scatters count 2-D points evenly around a circle of the given
// radius centred at centre, each perturbed radially by WithSpread
// (default 0.5).
//
// Complexity: O(count).
func Ring(centre [2]float64, radius float64, count int, opts ...Option) []vecmath.Vector {
	c := newConfig(opts)

	out := make([]vecmath.Vector, 0, count)
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(count)
		r := radius + c.spread*gaussianNoise(c.source)
		out = append(out, vecmath.NewVector([]float64{
			centre[0] + r*math.Cos(theta),
			centre[1] + r*math.Sin(theta),
		}))
	}
	return out
}

// gaussianNoise draws one standard-normal sample via the Box-Muller
// transform, using two uniform draws from src.
func gaussianNoise(src rng.Source) float64 {
	u1 := math.Max(src.Float64(), 1e-12)
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
