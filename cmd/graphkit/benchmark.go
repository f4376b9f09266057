package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"graphkit/internal/bfs"
	"graphkit/internal/output"
	"graphkit/internal/pagerank"
	"graphkit/internal/wcc"
)

func newBenchmarkCmd() *cobra.Command {
	var input, out, threadsCSV, logLevel, logFormat string
	var source int

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run bfs, wcc, and pagerank across thread counts and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			threadCounts, err := parseThreadCounts(threadsCSV)
			if err != nil {
				return err
			}

			l, err := newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer l.Sync()

			g, err := loadGraphLogged(l, input)
			if err != nil {
				return err
			}

			var rows []output.BenchmarkRow

			// BFS: sequential baseline, then one row per thread count.
			run := func(algorithm, variant string, threads int, fn func() int) {
				l.Info("running benchmark case", zap.String("algorithm", algorithm), zap.String("variant", variant), zap.Int("threads", threads))
				start := time.Now()
				iterOrLevels := fn()
				elapsed := time.Since(start)
				rows = append(rows, output.BenchmarkRow{
					Algorithm:          algorithm,
					Variant:            variant,
					Threads:            threads,
					Vertices:           g.NumVertices(),
					Edges:              g.NumEdges(),
					Millis:             float64(elapsed.Microseconds()) / 1000.0,
					IterationsOrLevels: iterOrLevels,
				})
			}

			run("bfs", "seq", 1, func() int {
				dist, err := bfs.Sequential(g, source)
				if err != nil {
					l.Warn("bfs sequential failed", zap.Error(err))
					return 0
				}
				return maxInt32(dist) // proxy for levels reached
			})
			for _, t := range threadCounts {
				t := t
				run("bfs", "par", t, func() int {
					dist, err := bfs.Parallel(g, source, t)
					if err != nil {
						l.Warn("bfs parallel failed", zap.Error(err))
						return 0
					}
					return maxInt32(dist)
				})
			}

			run("wcc", "seq", 1, func() int {
				comp := wcc.Sequential(g)
				return wcc.ComputeStats(comp).NumComponents
			})
			for _, t := range threadCounts {
				t := t
				run("wcc", "par", t, func() int {
					comp := wcc.Parallel(g, t)
					return wcc.ComputeStats(comp).NumComponents
				})
			}

			cfg := pagerank.DefaultConfig()
			run("pagerank", "seq", 1, func() int {
				return pagerank.Sequential(g, cfg).Iterations
			})
			for _, t := range threadCounts {
				t := t
				run("pagerank", "par", t, func() int {
					return pagerank.Parallel(g, cfg, t).Iterations
				})
				run("pagerank", "par-opt", t, func() int {
					return pagerank.ParallelOptimized(g, cfg, t).Iterations
				})
			}

			if err := output.WriteBenchmarkCSV(rows, out); err != nil {
				return err
			}
			fmt.Printf("Results saved to: %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input graph file (edge list format)")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex for the bfs benchmark case")
	cmd.Flags().StringVarP(&threadsCSV, "threads", "t", "1,2,4,8", "comma-separated thread counts to benchmark")
	cmd.Flags().StringVarP(&out, "out", "o", "benchmark.csv", "output CSV path")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log format: console or json")
	cmd.MarkFlagRequired("input")

	return cmd
}

func parseThreadCounts(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid thread count %q: %w", p, err)
		}
		if err := validateThreads(n); err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func maxInt32(xs []int32) int {
	max := 0
	for _, x := range xs {
		if int(x) > max {
			max = int(x)
		}
	}
	return max
}
