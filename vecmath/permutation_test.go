// SPDX-License-Identifier: MIT
package vecmath_test

import (
	"testing"

	"github.com/katalvlaran/clusterkit/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestPermutations3(t *testing.T) {
	var got []vecmath.Permutation
	for p := range vecmath.Permutations(3) {
		got = append(got, p)
	}

	want := []vecmath.Permutation{
		{Parity: vecmath.Even, Indices: []int{0, 1, 2}},
		{Parity: vecmath.Odd, Indices: []int{0, 2, 1}},
		{Parity: vecmath.Odd, Indices: []int{1, 0, 2}},
		{Parity: vecmath.Even, Indices: []int{1, 2, 0}},
		{Parity: vecmath.Even, Indices: []int{2, 0, 1}},
		{Parity: vecmath.Odd, Indices: []int{2, 1, 0}},
	}
	assert.Equal(t, want, got)
}

func TestPermutationsEarlyStop(t *testing.T) {
	count := 0
	for range vecmath.Permutations(4) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
