package dsu_test

import (
	"testing"

	"github.com/katalvlaran/clusterkit/dsu"
	"github.com/stretchr/testify/assert"
)

func TestDisjointSet(t *testing.T) {
	set := dsu.New(5)

	assert.Equal(t, 0, set.Find(0))
	assert.Equal(t, 1, set.Find(1))
	assert.Equal(t, 2, set.Find(2))
	assert.Equal(t, 3, set.Find(3))
	assert.Equal(t, 4, set.Find(4))

	set.Merge(0, 1)
	assert.Equal(t, 4, set.Count())
	assert.Equal(t, []int{0, 0, 1, 2, 3}, set.ConnectedComponentLabels())

	set.Merge(2, 3)
	assert.Equal(t, 3, set.Count())
	assert.Equal(t, []int{0, 0, 1, 1, 2}, set.ConnectedComponentLabels())

	set.Merge(1, 2)
	assert.Equal(t, 2, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 1}, set.ConnectedComponentLabels())

	// Redundant merges are no-ops.
	set.Merge(0, 1)
	assert.Equal(t, 2, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 1}, set.ConnectedComponentLabels())

	set.Merge(2, 3)
	assert.Equal(t, 2, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 1}, set.ConnectedComponentLabels())

	set.Merge(1, 2)
	assert.Equal(t, 2, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 1}, set.ConnectedComponentLabels())

	assert.Equal(t, set.Find(0), set.Find(2))
	assert.Equal(t, set.Find(1), set.Find(3))
	assert.NotEqual(t, set.Find(0), set.Find(4))
	assert.NotEqual(t, set.Find(1), set.Find(4))

	set.Merge(2, 4)
	assert.Equal(t, 1, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, set.ConnectedComponentLabels())

	set.Merge(2, 4)
	assert.Equal(t, 1, set.Count())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, set.ConnectedComponentLabels())

	assert.Equal(t, set.Find(0), set.Find(3))
	assert.Equal(t, set.Find(1), set.Find(3))
	assert.Equal(t, set.Find(3), set.Find(4))
}
