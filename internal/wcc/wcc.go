// Package wcc implements sequential and parallel weakly connected
// components over a graph.Graph, built on internal/unionfind.
package wcc

import (
	"graphkit/internal/graph"
	"graphkit/internal/reducer"
	"graphkit/internal/unionfind"
)

const smallGraphThreshold = 10_000

// Sequential treats every directed edge (u, v) as an undirected union
// request and returns, for each vertex, the representative of its
// component. The empty graph returns an empty result.
func Sequential(g *graph.Graph) []int32 {
	n := g.NumVertices()
	uf := unionfind.New(n)
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			uf.Union(int32(u), v)
		}
	}

	comp := make([]int32, n)
	for v := 0; v < n; v++ {
		comp[v] = uf.Find(int32(v))
	}
	return comp
}

// Parallel partitions the edge array into contiguous slices processed
// concurrently by workers goroutines, issuing concurrent Union calls
// against a single lock-free UnionFind, then maps comp[v] = Find(v) in
// parallel over vertices. Component membership is deterministic;
// representative identity may vary run to run depending on which
// goroutine wins a given union's CAS race. Falls back to Sequential for
// small graphs or workers <= 1.
func Parallel(g *graph.Graph, workers int) []int32 {
	n := g.NumVertices()
	if n < smallGraphThreshold || workers <= 1 {
		return Sequential(g)
	}

	uf := unionfind.New(n)

	edgeOwner := make([]int32, 0, g.NumEdges())
	for u := 0; u < n; u++ {
		for range g.Neighbors(u) {
			edgeOwner = append(edgeOwner, int32(u))
		}
	}
	edges := g.Edges

	reducer.Fold(len(edges), workers, struct{}{},
		func(lo, hi int) struct{} {
			for i := lo; i < hi; i++ {
				uf.Union(edgeOwner[i], edges[i])
			}
			return struct{}{}
		},
		func(acc, _ struct{}) struct{} { return acc },
	)

	comp := make([]int32, n)
	reducer.Fold(n, workers, struct{}{},
		func(lo, hi int) struct{} {
			for v := lo; v < hi; v++ {
				comp[v] = uf.Find(int32(v))
			}
			return struct{}{}
		},
		func(acc, _ struct{}) struct{} { return acc },
	)

	return comp
}
