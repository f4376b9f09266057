// Package frontier implements the level-synchronous frontier used by
// parallel BFS: a current buffer of vertex indices is partitioned across
// workers, each worker appends discovered vertices to its own
// thread-local next-frontier buffer, and the buffers are concatenated
// into the next level's frontier once all workers quiesce.
//
// Adapted from the goroutine-per-vertex fan-out idiom in Ligra-style
// vertex subsets, trimmed down to the two-buffer, single-source shape
// BFS actually needs (no sparse/dense switch: a BFS level's frontier is
// always a plain vertex list).
package frontier

import (
	"sync"

	"graphkit/internal/reducer"
)

// Expand visits every vertex in current concurrently across workers.
// visit(u) should scan u's out-neighbors and return the subset newly
// claimed at this level. The per-worker results are concatenated, in
// worker order, into the returned next-level frontier; ordering within a
// level is otherwise unspecified.
func Expand(current []int32, workers int, visit func(u int32) []int32) []int32 {
	n := len(current)
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = reducer.DefaultWorkers()
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	locals := make([][]int32, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(idx, lo, hi int) {
			defer wg.Done()
			var local []int32
			for _, u := range current[lo:hi] {
				local = append(local, visit(u)...)
			}
			locals[idx] = local
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, l := range locals {
		total += len(l)
	}
	next := make([]int32, 0, total)
	for _, l := range locals {
		next = append(next, l...)
	}
	return next
}
