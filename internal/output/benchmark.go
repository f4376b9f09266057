package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"graphkit/internal/graphkiterrors"
)

// BenchmarkRow is one row of the benchmark CSV: header
// algorithm,variant,threads,vertices,edges,millis,iterations_or_levels.
type BenchmarkRow struct {
	Algorithm          string
	Variant            string
	Threads            int
	Vertices           int
	Edges              int
	Millis             float64
	IterationsOrLevels int
}

// WriteBenchmarkCSV writes rows to path as CSV with a header row. Uses
// encoding/csv (stdlib): the ecosystem's idiomatic choice for a handful
// of numeric columns, with no third-party CSV writer warranted.
func WriteBenchmarkCSV(rows []BenchmarkRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"algorithm", "variant", "threads", "vertices", "edges", "millis", "iterations_or_levels"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, graphkiterrors.ErrOutputIO)
	}

	for _, r := range rows {
		record := []string{
			r.Algorithm,
			r.Variant,
			strconv.Itoa(r.Threads),
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			strconv.FormatFloat(r.Millis, 'f', 3, 64),
			strconv.Itoa(r.IterationsOrLevels),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, graphkiterrors.ErrOutputIO)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, graphkiterrors.ErrOutputIO)
	}
	return nil
}
