// Package graph implements the immutable compressed-sparse-row (CSR)
// directed graph shared by all kernels, and the lazy inverse CSR used by
// PageRank's par-opt pull phase.
package graph

import "sync"

// Graph is an immutable directed graph with V vertices numbered 0..V-1.
// Offsets has length V+1; Offsets[V] == len(Edges). Edges[Offsets[v]:Offsets[v+1]]
// are v's out-neighbors in file-insertion order. Self-loops and duplicate
// edges are permitted and preserved. Built once by Build or the loader;
// read concurrently by every kernel without synchronization.
type Graph struct {
	Offsets []int64
	Edges   []int32

	inverseOnce sync.Once
	inverse     *Graph
}

// NumVertices returns V.
func (g *Graph) NumVertices() int {
	if len(g.Offsets) == 0 {
		return 0
	}
	return len(g.Offsets) - 1
}

// NumEdges returns E.
func (g *Graph) NumEdges() int {
	return len(g.Edges)
}

// Neighbors returns v's out-neighbors as a slice into the shared Edges
// array. The returned slice must not be modified.
func (g *Graph) Neighbors(v int) []int32 {
	return g.Edges[g.Offsets[v]:g.Offsets[v+1]]
}

// OutDegree returns the number of out-neighbors of v.
func (g *Graph) OutDegree(v int) int {
	return int(g.Offsets[v+1] - g.Offsets[v])
}

// Build constructs a CSR graph with v vertices from a list of (u, w) edge
// pairs, in two passes: count out-degrees, prefix-sum into Offsets, then
// bucket the edges, preserving insertion order within each vertex's bucket.
func Build(v int, edges [][2]int32) *Graph {
	offsets := make([]int64, v+1)
	for _, e := range edges {
		offsets[e[0]+1]++
	}
	for i := 0; i < v; i++ {
		offsets[i+1] += offsets[i]
	}

	cursor := make([]int64, v)
	copy(cursor, offsets[:v])

	flat := make([]int32, len(edges))
	for _, e := range edges {
		idx := cursor[e[0]]
		flat[idx] = e[1]
		cursor[e[0]]++
	}

	return &Graph{Offsets: offsets, Edges: flat}
}

// InverseCSR returns the reverse-edge CSR (w -> u for every edge u -> w),
// building it lazily on first call and caching it on g, per the par-opt
// PageRank design.
func (g *Graph) InverseCSR() *Graph {
	g.inverseOnce.Do(func() {
		v := g.NumVertices()
		edges := make([][2]int32, 0, len(g.Edges))
		for u := 0; u < v; u++ {
			for _, w := range g.Neighbors(u) {
				edges = append(edges, [2]int32{w, int32(u)})
			}
		}
		g.inverse = Build(v, edges)
	})
	return g.inverse
}
