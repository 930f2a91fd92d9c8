// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/csrkit/csrgraph/csr"
	"github.com/csrkit/csrgraph/relabel"
	"github.com/csrkit/csrgraph/traverse"
)

func newRelabelCmd() *cobra.Command {
	var (
		edges   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "relabel",
		Short: "Relabel an inline edge list's node ids in descending degree order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return traverse.Supervise(func() {
				runRelabel(cmd, edges, verbose)
			})
		},
	}

	cmd.Flags().StringVar(&edges, "edges", "", `comma-separated "u-v" edge list`)
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each pipeline phase's duration")

	return cmd
}

func runRelabel(cmd *cobra.Command, edgeSpec string, verbose bool) {
	edgeList, err := parseEdges(edgeSpec)
	if err != nil {
		panic(err)
	}

	g, err := buildUndirected(edgeList)
	if err != nil {
		panic(err)
	}

	var opts []relabel.Option
	if verbose {
		opts = append(opts, relabel.WithLogger(log.New(cmd.ErrOrStderr(), "", 0)))
	}

	relabeled := relabel.ToDegreeOrdered(g, opts...)

	out := cmd.OutOrStdout()
	for v := 0; v < relabeled.NodeCount().Index(); v++ {
		id := csr.NewNodeID(v)
		fmt.Fprintf(out, "node %d: degree=%d neighbors=%v\n", v, relabeled.Degree(id).Index(), neighborInts(relabeled, id))
	}
}

func neighborInts(g *csr.CSR, v csr.NodeID) []int {
	ns := g.Neighbors(v)
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.Index()
	}
	return out
}
