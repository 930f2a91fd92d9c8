// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csrkit/csrgraph/partition"
	"github.com/csrkit/csrgraph/traverse"
)

func newPartitionCmd() *cobra.Command {
	var (
		edges       string
		concurrency int
		mode        string
	)

	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Compute a degree-balanced partition over an inline edge list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return traverse.Supervise(func() {
				runPartition(cmd, edges, concurrency, mode)
			})
		},
	}

	cmd.Flags().StringVar(&edges, "edges", "", `comma-separated "u-v" edge list`)
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of ranges to partition into")
	cmd.Flags().StringVar(&mode, "mode", "undirected", "one of: undirected, out, in")

	return cmd
}

func runPartition(cmd *cobra.Command, edgeSpec string, concurrency int, mode string) {
	edgeList, err := parseEdges(edgeSpec)
	if err != nil {
		panic(err)
	}

	var p partition.Partition
	switch mode {
	case "undirected":
		g, err := buildUndirected(edgeList)
		if err != nil {
			panic(err)
		}
		p = partition.DegreePartition(g, concurrency)
	case "out":
		g, err := buildDirected(edgeList)
		if err != nil {
			panic(err)
		}
		p = partition.OutDegreePartition(g, concurrency)
	case "in":
		g, err := buildDirected(edgeList)
		if err != nil {
			panic(err)
		}
		p = partition.InDegreePartition(g, concurrency)
	default:
		panic(fmt.Sprintf("csrtool: unknown --mode %q, want undirected, out, or in", mode))
	}

	for i, r := range p {
		fmt.Fprintf(cmd.OutOrStdout(), "range[%d] = [%d, %d)\n", i, r.Start.Index(), r.End.Index())
	}
}
