// Package output writes kernel results to disk: "v value" line files
// for BFS/WCC/PageRank, their companion _stats and _top100 reports, and
// the benchmark CSV.
package output

import (
	"bufio"
	"fmt"
	"os"

	"graphkit/internal/graphkiterrors"
)

// WriteBFS writes one "v d" line per vertex, d being the distance or -1.
func WriteBFS(dist []int32, path string) error {
	return writeLines(path, len(dist), func(w *bufio.Writer, v int) error {
		_, err := fmt.Fprintf(w, "%d %d\n", v, dist[v])
		return err
	})
}

func writeLines(path string, n int, writeOne func(w *bufio.Writer, v int) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for v := 0; v < n; v++ {
		if err := writeOne(w, v); err != nil {
			return fmt.Errorf("write %s: %w", path, graphkiterrors.ErrOutputIO)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	return nil
}
