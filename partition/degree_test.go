// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csrkit/csrgraph/csr"
)

func buildUndirected(n int, edges [][2]int) *csr.CSR {
	adj := make([][]csr.NodeID, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], csr.NewNodeID(e[1]))
		adj[e[1]] = append(adj[e[1]], csr.NewNodeID(e[0]))
	}

	offsets := make([]csr.NodeID, n+1)
	var targets []csr.NodeID
	for v := 0; v < n; v++ {
		offsets[v] = csr.NewNodeID(len(targets))
		targets = append(targets, adj[v]...)
	}
	offsets[n] = csr.NewNodeID(len(targets))

	return csr.NewCSR(offsets, targets)
}

func buildDirected(n int, edges [][2]int) *csr.DirectedCSR {
	outAdj := make([][]csr.NodeID, n)
	inAdj := make([][]csr.NodeID, n)
	for _, e := range edges {
		outAdj[e[0]] = append(outAdj[e[0]], csr.NewNodeID(e[1]))
		inAdj[e[1]] = append(inAdj[e[1]], csr.NewNodeID(e[0]))
	}

	build := func(adj [][]csr.NodeID) ([]csr.NodeID, []csr.NodeID) {
		offsets := make([]csr.NodeID, n+1)
		var targets []csr.NodeID
		for v := 0; v < n; v++ {
			offsets[v] = csr.NewNodeID(len(targets))
			targets = append(targets, adj[v]...)
		}
		offsets[n] = csr.NewNodeID(len(targets))
		return offsets, targets
	}

	outOffsets, outTargets := build(outAdj)
	inOffsets, inTargets := build(inAdj)
	return csr.NewDirectedCSR(outOffsets, outTargets, inOffsets, inTargets)
}

// S5: undirected multigraph edges (0,1),(0,2),(0,3),(0,3), concurrency
// = 2 → [[0,1), [1,4)]
func TestDegreePartitionS5(t *testing.T) {
	g := buildUndirected(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 3}})

	got := DegreePartition(g, 2)

	assert.Equal(t, ranges([2]int{0, 1}, [2]int{1, 4}), got)
}

func TestOutDegreePartition(t *testing.T) {
	// Edges: 0->1, 0->2, 1->2 — out-degrees [2,1,0], |E|=3.
	g := buildDirected(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})

	got := OutDegreePartition(g, 1)
	assert.Equal(t, ranges([2]int{0, 3}), got)
}

func TestInDegreePartition(t *testing.T) {
	g := buildDirected(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})

	got := InDegreePartition(g, 3)
	assert.Equal(t, csr.NodeID(0), got[0].Start)
	assert.Equal(t, csr.NodeID(3), got[len(got)-1].End)
	assert.LessOrEqual(t, len(got), 3)
}

func TestDegreePartitionEmptyGraph(t *testing.T) {
	g := buildUndirected(0, nil)
	assert.Nil(t, DegreePartition(g, 4))
}
