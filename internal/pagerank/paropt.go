package pagerank

import (
	"math"

	"graphkit/internal/graph"
	"graphkit/internal/reducer"
)

// ParallelOptimized runs the pull-style par-opt variant: on first call it
// builds (and the Graph caches) the inverse CSR, then for each
// destination vertex u it pulls contributions from u's in-neighbors
// directly into r_{t+1}[u], with no shared mutable contrib vector at all.
// Dangling mass is still computed with a push-style scan over out-degree
// zero vertices, since the inverse CSR doesn't help there. Falls back to
// Sequential for small graphs or workers <= 1.
func ParallelOptimized(g *graph.Graph, cfg Config, workers int) Result {
	n := g.NumVertices()
	if n < smallGraphThreshold || workers <= 1 {
		return Sequential(g, cfg)
	}

	inv := g.InverseCSR()

	r := make([]float64, n)
	for i := range r {
		r[i] = 1.0 / float64(n)
	}

	var iterations int
	var maxDelta float64

	for iterations = 0; iterations < cfg.MaxIterations; iterations++ {
		dangling := reducer.Fold(n, workers, 0.0,
			func(lo, hi int) float64 {
				var d float64
				for v := lo; v < hi; v++ {
					if g.OutDegree(v) == 0 {
						d += r[v]
					}
				}
				return d
			},
			func(acc, p float64) float64 { return acc + p },
		)

		base := (1 - cfg.Alpha) / float64(n)
		danglingShare := cfg.Alpha * dangling / float64(n)
		next := make([]float64, n)

		maxDelta = reducer.Fold(n, workers, 0.0,
			func(lo, hi int) float64 {
				var local float64
				for u := lo; u < hi; u++ {
					var pulled float64
					for _, v := range inv.Neighbors(u) {
						deg := g.OutDegree(int(v))
						if deg > 0 {
							pulled += r[v] / float64(deg)
						}
					}
					next[u] = base + cfg.Alpha*pulled + danglingShare
					if d := math.Abs(next[u] - r[u]); d > local {
						local = d
					}
				}
				return local
			},
			func(acc, p float64) float64 {
				if p > acc {
					return p
				}
				return acc
			},
		)
		r = next

		if maxDelta < cfg.Tolerance {
			iterations++
			break
		}
	}

	return Result{Ranks: r, Iterations: iterations, MaxDelta: maxDelta}
}
