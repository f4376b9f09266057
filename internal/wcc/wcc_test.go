package wcc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"graphkit/internal/graph"
)

func TestTriangleOneComponent(t *testing.T) {
	g := graph.Build(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	comp := Sequential(g)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[1], comp[2])
	stats := ComputeStats(comp)
	assert.Equal(t, 1, stats.NumComponents)
	assert.Equal(t, 3, stats.LargestComponent)
}

func TestTwoComponents(t *testing.T) {
	g := graph.Build(4, [][2]int32{{0, 1}, {1, 0}, {2, 3}})
	comp := Sequential(g)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[2], comp[3])
	assert.NotEqual(t, comp[0], comp[2])
	stats := ComputeStats(comp)
	assert.Equal(t, 2, stats.NumComponents)
}

func TestSingleNode(t *testing.T) {
	g := graph.Build(1, nil)
	comp := Sequential(g)
	assert.Len(t, comp, 1)
	assert.Equal(t, 1, ComputeStats(comp).NumComponents)
}

func TestEmptyGraph(t *testing.T) {
	g := graph.Build(0, nil)
	comp := Sequential(g)
	assert.Empty(t, comp)
}

func TestFourIsolatedFourComponents(t *testing.T) {
	g := graph.Build(4, nil)
	comp := Sequential(g)
	stats := ComputeStats(comp)
	assert.Equal(t, 4, stats.NumComponents)
	assert.Equal(t, 1, stats.LargestComponent)
}

func TestDuplicateEdgesStillOneComponent(t *testing.T) {
	g := graph.Build(2, [][2]int32{{0, 1}, {0, 1}})
	comp := Sequential(g)
	assert.Equal(t, comp[0], comp[1])
}

func TestComponentSizesSumToVertexCount(t *testing.T) {
	g := graph.Build(4, [][2]int32{{0, 1}, {1, 0}, {2, 3}})
	stats := ComputeStats(Sequential(g))
	sum := 0
	for _, size := range stats.ComponentSizes {
		sum += size
	}
	assert.Equal(t, 4, sum)
}

func TestSizesDescendingSorted(t *testing.T) {
	g := graph.Build(5, [][2]int32{{0, 1}, {1, 2}})
	stats := ComputeStats(Sequential(g))
	sizes := stats.SizesDescending()
	for i := 1; i < len(sizes); i++ {
		assert.GreaterOrEqual(t, sizes[i-1], sizes[i])
	}
}

func TestSamePartitionIgnoresRepresentativeIdentity(t *testing.T) {
	a := []int32{5, 5, 9}
	b := []int32{1, 1, 2}
	assert.True(t, SamePartition(a, b))

	c := []int32{1, 2, 2}
	assert.False(t, SamePartition(a, c))
}

// partitionShape is a representative-independent summary of a WCC
// result's component-size distribution, suitable for structural
// comparison with cmp.Diff: component identity (map keys in Stats) can
// legitimately differ between sequential and parallel runs, but the
// shape of the partition must not.
type partitionShape struct {
	NumComponents     int
	LargestComponent  int
	SmallestComponent int
	Sizes             []int
}

func shapeOf(comp []int32) partitionShape {
	stats := ComputeStats(comp)
	return partitionShape{
		NumComponents:     stats.NumComponents,
		LargestComponent:  stats.LargestComponent,
		SmallestComponent: stats.SmallestComponent,
		Sizes:             stats.SizesDescending(),
	}
}

func TestParallelMatchesSequentialPartition(t *testing.T) {
	g := graph.Build(6, [][2]int32{{0, 1}, {1, 2}, {3, 4}, {4, 5}})
	seq := Sequential(g)
	par := Parallel(g, 4)
	assert.True(t, SamePartition(seq, par))
	if diff := cmp.Diff(shapeOf(seq), shapeOf(par)); diff != "" {
		t.Fatalf("partition shape mismatch (-seq +par):\n%s", diff)
	}
}

func TestParallelMatchesSequentialOnLargeChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-graph agreement check in -short mode")
	}
	n := 100_001
	edges := make([][2]int32, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int32{int32(i), int32(i + 1)})
	}
	g := graph.Build(n, edges)

	seq := Sequential(g)
	par := Parallel(g, 4)
	assert.True(t, SamePartition(seq, par))
	if diff := cmp.Diff(shapeOf(seq), shapeOf(par)); diff != "" {
		t.Fatalf("partition shape mismatch (-seq +par):\n%s", diff)
	}
}
