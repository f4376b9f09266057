package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNoEdges(t *testing.T) {
	g := Build(3, nil)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Neighbors(0))
}

func TestBuildPreservesOrderAndDuplicates(t *testing.T) {
	g := Build(2, [][2]int32{{0, 1}, {0, 1}})
	require.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []int32{1, 1}, g.Neighbors(0))
}

func TestBuildBucketsByVertex(t *testing.T) {
	// 0->1, 0->2, 1->3, 2->3
	g := Build(4, [][2]int32{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	assert.Equal(t, []int32{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int32{3}, g.Neighbors(1))
	assert.Equal(t, []int32{3}, g.Neighbors(2))
	assert.Empty(t, g.Neighbors(3))
	assert.Equal(t, 2, g.OutDegree(0))
}

func TestEmptyGraph(t *testing.T) {
	g := Build(0, nil)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
}

func TestInverseCSR(t *testing.T) {
	g := Build(3, [][2]int32{{0, 1}, {1, 2}})
	inv := g.InverseCSR()
	assert.Empty(t, inv.Neighbors(0))
	assert.Equal(t, []int32{0}, inv.Neighbors(1))
	assert.Equal(t, []int32{1}, inv.Neighbors(2))
}

func TestInverseCSRCached(t *testing.T) {
	g := Build(2, [][2]int32{{0, 1}})
	a := g.InverseCSR()
	b := g.InverseCSR()
	assert.Same(t, a, b)
}
