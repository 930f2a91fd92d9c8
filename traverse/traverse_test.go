// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package traverse

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csrkit/csrgraph/csr"
	"github.com/csrkit/csrgraph/partition"
)

// directedGraph is a tiny fixture implementing csr.DirectedGraph.
type directedGraph struct {
	n   int
	out [][]csr.NodeID
	in  [][]csr.NodeID
}

func (g *directedGraph) NodeCount() csr.NodeID { return csr.NewNodeID(g.n) }
func (g *directedGraph) EdgeCount() csr.NodeID {
	var total int
	for _, o := range g.out {
		total += len(o)
	}
	return csr.NewNodeID(total)
}
func (g *directedGraph) OutDegree(v csr.NodeID) csr.NodeID { return csr.NewNodeID(len(g.out[v.Index()])) }
func (g *directedGraph) InDegree(v csr.NodeID) csr.NodeID  { return csr.NewNodeID(len(g.in[v.Index()])) }
func (g *directedGraph) OutNeighbors(v csr.NodeID) []csr.NodeID { return g.out[v.Index()] }
func (g *directedGraph) InNeighbors(v csr.NodeID) []csr.NodeID  { return g.in[v.Index()] }

func threeNodeDigraph() *directedGraph {
	// Edges: (0,1), (0,2), (1,2)
	return &directedGraph{
		n: 3,
		out: [][]csr.NodeID{
			{1, 2},
			{2},
			{},
		},
		in: [][]csr.NodeID{
			{},
			{0},
			{0, 1},
		},
	}
}

// S7: directed graph (0,1),(0,2),(1,2), node_values=[0,0,0], closure
// writes out_degree(v) → [2,1,0].
func TestForEachNodeS7(t *testing.T) {
	g := threeNodeDigraph()
	values := make([]int, 3)

	err := ForEachNode(g, values, func(g *directedGraph, v csr.NodeID, state *int) {
		*state = g.OutDegree(v).Index()
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, values)
}

func TestForEachNodeInvalidBuffer(t *testing.T) {
	g := threeNodeDigraph()
	values := make([]int, 2)

	err := ForEachNode(g, values, func(*directedGraph, csr.NodeID, *int) {})
	assert.ErrorIs(t, err, ErrInvalidNodeValues)
}

func TestForEachNodeVisitsEveryNodeExactlyOnce(t *testing.T) {
	g := threeNodeDigraph()
	seen := make([]int, 3)

	err := ForEachNode(g, seen, func(_ *directedGraph, v csr.NodeID, state *int) {
		*state += v.Index() + 1
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestForEachNodeByPartition(t *testing.T) {
	g := threeNodeDigraph()
	values := make([]int, 3)
	p := partition.Partition{
		{Start: 0, End: 1},
		{Start: 1, End: 3},
	}

	err := ForEachNodeByPartition(p, g, values, func(g *directedGraph, v csr.NodeID, state *int) {
		*state = g.OutDegree(v).Index()
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, values)
}

// S8: a partition whose widths sum to node_count-1 fails with
// ErrInvalidPartitioning.
func TestForEachNodeByPartitionS8(t *testing.T) {
	g := threeNodeDigraph()
	values := make([]int, 3)
	p := partition.Partition{
		{Start: 0, End: 2},
	}

	err := ForEachNodeByPartition(p, g, values, func(*directedGraph, csr.NodeID, *int) {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPartitioning))
}

func TestForEachNodeByPartitionInvalidBuffer(t *testing.T) {
	g := threeNodeDigraph()
	values := make([]int, 2)
	p := partition.Partition{{Start: 0, End: 3}}

	err := ForEachNodeByPartition(p, g, values, func(*directedGraph, csr.NodeID, *int) {})
	assert.ErrorIs(t, err, ErrInvalidNodeValues)
}

func TestSupervise(t *testing.T) {
	err := Supervise(
		func() {},
		func() { panic("boom") },
		func() {},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSuperviseAllOK(t *testing.T) {
	var calls atomic.Int32
	err := Supervise(
		func() { calls.Add(1) },
		func() { calls.Add(1) },
	)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
