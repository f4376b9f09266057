// Package unionfind implements a lock-free disjoint-set forest over
// vertex indices, supporting concurrent Union and Find. Parents are
// stored as atomic int32s; union is by rank with ties broken by the
// lower index, path compression in Find uses halving.
package unionfind

import "sync/atomic"

// UnionFind is a disjoint-set forest over n elements, 0..n-1. All
// operations are safe for concurrent use by multiple goroutines.
type UnionFind struct {
	parent []int32
	rank   []uint32
}

// New creates a UnionFind with n singleton sets.
func New(n int) *UnionFind {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	return &UnionFind{parent: parent, rank: make([]uint32, n)}
}

// Find returns the root of x's set. Each step applies path halving: x is
// atomically repointed from its parent to its grandparent before
// advancing, so repeated Find calls shorten the tree over time.
func (uf *UnionFind) Find(x int32) int32 {
	for {
		p := atomic.LoadInt32(&uf.parent[x])
		if p == x {
			return x
		}
		gp := atomic.LoadInt32(&uf.parent[p])
		atomic.CompareAndSwapInt32(&uf.parent[x], p, gp)
		x = gp
	}
}

// Union merges the sets containing a and b. Safe to call concurrently
// with other Union and Find calls on the same UnionFind; the CAS retries
// from Find on contention, so there is no lost-update even when two
// goroutines race to union the same pair of roots.
func (uf *UnionFind) Union(a, b int32) {
	for {
		ra := uf.Find(a)
		rb := uf.Find(b)
		if ra == rb {
			return
		}

		lo, hi := ra, rb
		rlo, rhi := atomic.LoadUint32(&uf.rank[lo]), atomic.LoadUint32(&uf.rank[hi])
		if rlo > rhi || (rlo == rhi && lo > hi) {
			lo, hi = hi, lo
			rlo, rhi = rhi, rlo
		}

		if !atomic.CompareAndSwapInt32(&uf.parent[lo], lo, hi) {
			continue // lost the race to another union; retry from Find.
		}
		if rlo == rhi {
			atomic.AddUint32(&uf.rank[hi], 1)
		}
		return
	}
}
