package output

import (
	"bufio"
	"fmt"
	"os"

	"graphkit/internal/graphkiterrors"
	"graphkit/internal/wcc"
)

// WriteWCC writes one "v c" line per vertex, c being v's component
// representative.
func WriteWCC(comp []int32, path string) error {
	return writeLines(path, len(comp), func(w *bufio.Writer, v int) error {
		_, err := fmt.Fprintf(w, "%d %d\n", v, comp[v])
		return err
	})
}

// WriteWCCStats writes the companion "_stats" report: per-component
// size, component count, and the largest component's size, sizes sorted
// descending.
func WriteWCCStats(stats wcc.Stats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "components %d\n", stats.NumComponents)
	fmt.Fprintf(w, "largest %d\n", stats.LargestComponent)
	fmt.Fprintf(w, "smallest %d\n", stats.SmallestComponent)
	for _, size := range stats.SizesDescending() {
		fmt.Fprintf(w, "size %d\n", size)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	return nil
}
