// Package bfs implements sequential and level-synchronous parallel
// breadth-first search over a graph.Graph.
package bfs

import (
	"fmt"
	"sync/atomic"

	"graphkit/internal/frontier"
	"graphkit/internal/graph"
	"graphkit/internal/graphkiterrors"
)

// smallGraphThreshold: below this vertex count, parallel kernels fall
// back to the sequential variant to avoid fork-join overhead.
const smallGraphThreshold = 10_000

// Sequential runs standard FIFO BFS from source. dist[v] is the number of
// edges on a shortest path from source to v, or -1 if unreachable.
// dist[source] == 0.
func Sequential(g *graph.Graph, source int) ([]int32, error) {
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source %d out of range [0, %d): %w", source, n, graphkiterrors.ErrArgument)
	}

	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := make([]int32, 0, n)
	queue = append(queue, int32(source))
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, w := range g.Neighbors(int(u)) {
			if dist[w] == -1 {
				dist[w] = dist[u] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist, nil
}

// Parallel runs level-synchronous BFS from source using up to workers
// goroutines per level. Each level's frontier is expanded concurrently;
// a vertex is claimed for the next level via a single atomic CAS on
// dist[w], so each vertex is discovered exactly once regardless of how
// many workers race to claim it. Falls back to Sequential for small
// graphs or workers == 1; workers <= 0 is rejected with ErrArgument.
func Parallel(g *graph.Graph, source int, workers int) ([]int32, error) {
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source %d out of range [0, %d): %w", source, n, graphkiterrors.ErrArgument)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("thread count must be positive, got %d: %w", workers, graphkiterrors.ErrArgument)
	}
	if n < smallGraphThreshold || workers == 1 {
		return Sequential(g, source)
	}

	dist := make([]int32, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	level := int32(0)
	current := []int32{int32(source)}
	for len(current) > 0 {
		level++
		next := frontier.Expand(current, workers, func(u int32) []int32 {
			var claimed []int32
			for _, w := range g.Neighbors(int(u)) {
				if atomic.CompareAndSwapInt32(&dist[w], -1, level) {
					claimed = append(claimed, w)
				}
			}
			return claimed
		})
		current = next
	}
	return dist, nil
}
