package pagerank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"graphkit/internal/graph"
)

func sumRanks(r []float64) float64 {
	var s float64
	for _, v := range r {
		s += v
	}
	return s
}

func TestTrianglePageRankUniform(t *testing.T) {
	g := graph.Build(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	res := Sequential(g, DefaultConfig())
	assert.Len(t, res.Ranks, 3)
	for _, r := range res.Ranks {
		assert.InDelta(t, 1.0/3.0, r, 1e-4)
	}
}

func TestSingleVertexPageRank(t *testing.T) {
	g := graph.Build(1, nil)
	res := Sequential(g, DefaultConfig())
	assert.InDelta(t, 1.0, res.Ranks[0], 1e-10)
}

func TestEmptyGraphPageRank(t *testing.T) {
	g := graph.Build(0, nil)
	res := Sequential(g, DefaultConfig())
	assert.Empty(t, res.Ranks)
}

func TestSelfLoopOnlyPageRank(t *testing.T) {
	g := graph.Build(1, [][2]int32{{0, 0}})
	res := Sequential(g, DefaultConfig())
	assert.InDelta(t, 1.0, res.Ranks[0], 1e-6)
}

func TestPageRankSumsToOne(t *testing.T) {
	g := graph.Build(5, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	res := Sequential(g, DefaultConfig())
	assert.InDelta(t, 1.0, sumRanks(res.Ranks), 1e-5)
}

func TestPageRankAllRanksAtLeastTeleportFloor(t *testing.T) {
	g := graph.Build(5, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	cfg := DefaultConfig()
	res := Sequential(g, cfg)
	floor := (1 - cfg.Alpha) / float64(g.NumVertices())
	for _, r := range res.Ranks {
		assert.GreaterOrEqual(t, r, floor-1e-9)
	}
}

func TestAllDanglingConvergesInOneIteration(t *testing.T) {
	g := graph.Build(4, nil)
	cfg := DefaultConfig()
	res := Sequential(g, cfg)
	assert.Equal(t, 1, res.Iterations)
	for _, r := range res.Ranks {
		assert.InDelta(t, 1.0/4.0, r, 1e-9)
	}
}

func TestMaxIterationsRespected(t *testing.T) {
	g := graph.Build(3, [][2]int32{{0, 1}, {1, 2}})
	cfg := Config{Alpha: 0.85, MaxIterations: 1, Tolerance: 1e-15}
	res := Sequential(g, cfg)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Ranks, 3)
}

func TestDiamondAllPositive(t *testing.T) {
	g := graph.Build(4, [][2]int32{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	res := Sequential(g, DefaultConfig())
	for _, r := range res.Ranks {
		assert.Greater(t, r, 0.0)
	}
	assert.InDelta(t, 1.0, sumRanks(res.Ranks), 1e-5)
}

func TestSequentialDeterministic(t *testing.T) {
	g := graph.Build(3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	a := Sequential(g, DefaultConfig())
	b := Sequential(g, DefaultConfig())
	for i := range a.Ranks {
		assert.InDelta(t, a.Ranks[i], b.Ranks[i], 1e-12)
	}
}

func TestParallelAgreesWithSequentialOnLargeChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-graph agreement check in -short mode")
	}
	n := 100_001
	edges := make([][2]int32, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int32{int32(i), int32(i + 1)})
	}
	g := graph.Build(n, edges)
	cfg := Config{Alpha: 0.85, MaxIterations: 50, Tolerance: 1e-6}

	seq := Sequential(g, cfg)
	par := Parallel(g, cfg, 4)
	requireLenEqual(t, seq.Ranks, par.Ranks)

	var maxDiff float64
	for i := range seq.Ranks {
		d := math.Abs(seq.Ranks[i] - par.Ranks[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	assert.Less(t, maxDiff, 1e-4)
}

func TestParallelOptimizedAgreesWithSequentialOnLargeChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-graph agreement check in -short mode")
	}
	n := 100_001
	edges := make([][2]int32, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int32{int32(i), int32(i + 1)})
	}
	g := graph.Build(n, edges)
	cfg := Config{Alpha: 0.85, MaxIterations: 50, Tolerance: 1e-6}

	seq := Sequential(g, cfg)
	opt := ParallelOptimized(g, cfg, 4)
	requireLenEqual(t, seq.Ranks, opt.Ranks)

	var maxDiff float64
	for i := range seq.Ranks {
		d := math.Abs(seq.Ranks[i] - opt.Ranks[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	assert.Less(t, maxDiff, 1e-4)
}

func requireLenEqual(t *testing.T, a, b []float64) {
	t.Helper()
	assert.Equal(t, len(a), len(b))
}
