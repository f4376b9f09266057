// Command graphkit is the CLI surface for the graph analytics engine:
// bfs, wcc, pagerank, and benchmark subcommands over a common CSR graph.
// The CLI itself is a thin wrapper around internal/bfs, internal/wcc,
// and internal/pagerank; it contributes no algorithmic content.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "graphkit",
		Short:   "Shared-memory graph analytics engine (BFS, WCC, PageRank)",
		Version: version,
	}

	root.AddCommand(newBFSCmd())
	root.AddCommand(newWCCCmd())
	root.AddCommand(newPageRankCmd())
	root.AddCommand(newBenchmarkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
