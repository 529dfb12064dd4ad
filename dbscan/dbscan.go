package dbscan

import (
	"fmt"

	"github.com/katalvlaran/clusterkit/cerrors"
	"github.com/katalvlaran/clusterkit/vecmath"
)

// Result is the outcome of a DBSCAN run.
type Result struct {
	ClusterCount int
	Labels       []int
}

// NoiseLabel returns the sentinel label meaning "noise" for a dataset
// of the given size. It equals the sample count, which can never
// collide with a real cluster index.
func NoiseLabel(sampleCount int) int {
	return sampleCount
}

// Run clusters samples by density-reachability: epsilon is the
// neighbourhood radius and minPts is the minimum neighbourhood size
// (including the point itself) for a point to be a core point.
func Run(samples []vecmath.Vector, epsilon float64, minPts int) (Result, error) {
	if epsilon <= 0 || minPts <= 0 {
		return Result{}, fmt.Errorf("dbscan: run: %w", cerrors.ErrInvalidParameter)
	}
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("dbscan: run: %w", cerrors.ErrInsufficientSamples)
	}
	if !vecmath.AllFinite(samples) {
		return Result{}, fmt.Errorf("dbscan: run: %w", cerrors.ErrNonFiniteInput)
	}

	n := len(samples)
	unassigned := NoiseLabel(n)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = unassigned
	}

	epsilonSquared := epsilon * epsilon
	neighboursOf := func(index int) []int {
		var out []int
		for other := 0; other < n; other++ {
			if other == index {
				continue
			}
			if samples[other].Sub(samples[index]).SquaredLength() < epsilonSquared {
				out = append(out, other)
			}
		}
		return out
	}

	nextLabel := 0
	for index := 0; index < n; index++ {
		if labels[index] != unassigned {
			continue
		}

		neighbours := neighboursOf(index)
		if len(neighbours)+1 >= minPts {
			labels[index] = nextLabel

			var pending []int
			for _, neighbour := range neighbours {
				if labels[neighbour] == unassigned {
					labels[neighbour] = nextLabel
					pending = append(pending, neighbour)
				}
			}

			for len(pending) > 0 {
				last := len(pending) - 1
				current := pending[last]
				pending = pending[:last]

				currentNeighbours := neighboursOf(current)
				if len(currentNeighbours)+1 >= minPts {
					for _, neighbour := range currentNeighbours {
						if labels[neighbour] == unassigned {
							labels[neighbour] = nextLabel
							pending = append(pending, neighbour)
						}
					}
				}
			}
		}
		nextLabel++
	}

	return Result{ClusterCount: nextLabel, Labels: labels}, nil
}
