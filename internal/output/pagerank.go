package output

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"graphkit/internal/graphkiterrors"
)

// WritePageRank writes one "v r" line per vertex, r formatted to at
// least 8 significant digits.
func WritePageRank(ranks []float64, path string) error {
	return writeLines(path, len(ranks), func(w *bufio.Writer, v int) error {
		_, err := fmt.Fprintf(w, "%d %.8g\n", v, ranks[v])
		return err
	})
}

// WritePageRankTop100 writes the top 100 vertices by rank, descending.
func WritePageRankTop100(ranks []float64, path string) error {
	type entry struct {
		v int
		r float64
	}
	entries := make([]entry, len(ranks))
	for v, r := range ranks {
		entries[v] = entry{v, r}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].r > entries[j].r })

	n := len(entries)
	if n > 100 {
		n = 100
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%d %.8g\n", entries[i].v, entries[i].r)
	}
	return w.Flush()
}

// WritePageRankStats writes the companion "_stats" report: sum, min,
// max, mean of the rank vector.
func WritePageRankStats(ranks []float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	defer f.Close()

	var sum, min, max float64
	for i, r := range ranks {
		sum += r
		if i == 0 || r < min {
			min = r
		}
		if i == 0 || r > max {
			max = r
		}
	}
	mean := 0.0
	if len(ranks) > 0 {
		mean = sum / float64(len(ranks))
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "sum %.8g\n", sum)
	fmt.Fprintf(w, "min %.8g\n", min)
	fmt.Fprintf(w, "max %.8g\n", max)
	fmt.Fprintf(w, "mean %.8g\n", mean)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	return nil
}
