// Package pagerank implements the damped, teleporting PageRank
// iteration in sequential, parallel (thread-local contrib reduction),
// and parallel-optimized (inverse-CSR pull) forms.
package pagerank

import (
	"math"

	"graphkit/internal/graph"
	"graphkit/internal/reducer"
)

const smallGraphThreshold = 10_000

// DefaultAlpha, DefaultMaxIterations and DefaultTolerance are the fixed
// PageRank damping-formulation constants; configurability beyond the
// CLI surface is intentionally not supported.
const (
	DefaultAlpha         = 0.85
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
)

// Config holds the PageRank damping formulation's parameters.
type Config struct {
	Alpha         float64
	MaxIterations int
	Tolerance     float64
}

// DefaultConfig returns the standard fixed-constant PageRank configuration.
func DefaultConfig() Config {
	return Config{Alpha: DefaultAlpha, MaxIterations: DefaultMaxIterations, Tolerance: DefaultTolerance}
}

// Result carries the rank vector plus observable side outputs: how many
// iterations actually ran and the final max per-vertex delta.
type Result struct {
	Ranks      []float64
	Iterations int
	MaxDelta   float64
}

// Sequential runs the reference single-accumulator PageRank iteration.
func Sequential(g *graph.Graph, cfg Config) Result {
	n := g.NumVertices()
	if n == 0 {
		return Result{Ranks: []float64{}}
	}

	r := make([]float64, n)
	for i := range r {
		r[i] = 1.0 / float64(n)
	}

	contrib := make([]float64, n)
	var iterations int
	var maxDelta float64

	for iterations = 0; iterations < cfg.MaxIterations; iterations++ {
		for i := range contrib {
			contrib[i] = 0
		}

		var dangling float64
		for v := 0; v < n; v++ {
			deg := g.OutDegree(v)
			if deg == 0 {
				dangling += r[v]
				continue
			}
			share := r[v] / float64(deg)
			for _, w := range g.Neighbors(v) {
				contrib[w] += share
			}
		}

		base := (1 - cfg.Alpha) / float64(n)
		danglingShare := cfg.Alpha * dangling / float64(n)
		maxDelta = 0
		next := make([]float64, n)
		for u := 0; u < n; u++ {
			next[u] = base + cfg.Alpha*contrib[u] + danglingShare
			if d := math.Abs(next[u] - r[u]); d > maxDelta {
				maxDelta = d
			}
		}
		r = next

		if maxDelta < cfg.Tolerance {
			iterations++
			break
		}
	}

	return Result{Ranks: r, Iterations: iterations, MaxDelta: maxDelta}
}

// Parallel runs PageRank with the push phase partitioned across workers
// goroutines, each writing into its own thread-local contrib vector;
// the N partials are summed element-wise by a single combining thread at
// the end of each iteration (internal/reducer.Fold), avoiding both locks
// and costly atomic floating-point adds. Falls back to Sequential for
// small graphs or workers <= 1.
func Parallel(g *graph.Graph, cfg Config, workers int) Result {
	n := g.NumVertices()
	if n < smallGraphThreshold || workers <= 1 {
		return Sequential(g, cfg)
	}

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

		contrib := reducer.Fold(n, workers, []float64(nil),
			func(lo, hi int) []float64 {
				local := make([]float64, n)
				for v := lo; v < hi; v++ {
					deg := g.OutDegree(v)
					if deg == 0 {
						continue
					}
					share := r[v] / float64(deg)
					for _, w := range g.Neighbors(v) {
						local[w] += share
					}
				}
				return local
			},
			sumVectors,
		)

		base := (1 - cfg.Alpha) / float64(n)
		danglingShare := cfg.Alpha * dangling / float64(n)
		next := make([]float64, n)
		maxDelta = reducer.Fold(n, workers, 0.0,
			func(lo, hi int) float64 {
				var local float64
				for u := lo; u < hi; u++ {
					next[u] = base + cfg.Alpha*contrib[u] + danglingShare
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

// sumVectors combines per-worker contrib vectors element-wise. acc may
// be nil on the first call (reducer.Fold's zero value).
func sumVectors(acc, partial []float64) []float64 {
	if acc == nil {
		return partial
	}
	for i, v := range partial {
		acc[i] += v
	}
	return acc
}
