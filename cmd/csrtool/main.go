// Command csrtool is a small inspection CLI over the csrgraph
// partition, traverse, and relabel packages.
//
// Usage:
//
//	csrtool partition --edges "0-1,0-2,0-3,0-3" --concurrency 2
//	csrtool relabel --edges "0-1,1-2,1-3,2-0,2-1,2-3,3-0,3-2"
//
// Edge parsing is intentionally minimal ("u-v" pairs, comma
// separated): csrtool is a demonstration harness over the library, not
// a general graph file format parser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "csrtool",
		Short: "Inspect csrgraph partitioning and relabeling over an inline edge list",
	}
	root.AddCommand(newPartitionCmd())
	root.AddCommand(newRelabelCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
