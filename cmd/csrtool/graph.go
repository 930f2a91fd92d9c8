// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csrkit/csrgraph/csr"
)

// parseEdges parses a comma-separated list of "u-v" pairs into an edge
// list. This is deliberately not a general graph file parser — parsing
// is out of scope for this module; csrtool only needs enough to build
// a small graph inline on the command line.
func parseEdges(s string) ([][2]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	edges := make([][2]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		uv := strings.SplitN(p, "-", 2)
		if len(uv) != 2 {
			return nil, fmt.Errorf("csrtool: malformed edge %q, want \"u-v\"", p)
		}
		u, err := strconv.Atoi(strings.TrimSpace(uv[0]))
		if err != nil {
			return nil, fmt.Errorf("csrtool: malformed edge %q: %w", p, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(uv[1]))
		if err != nil {
			return nil, fmt.Errorf("csrtool: malformed edge %q: %w", p, err)
		}
		edges = append(edges, [2]int{u, v})
	}
	return edges, nil
}

// adjacencyGraph is an inline, in-memory csr.UndirectedGraph built
// straight from an edge list (directedAdjacencyGraph below is the
// csr.DirectedGraph counterpart), so csrtool doesn't need the
// (out-of-scope) builder facade spec.md excludes.
type adjacencyGraph struct {
	n   int
	adj [][]csr.NodeID
}

func buildUndirected(edges [][2]int) (*adjacencyGraph, error) {
	n, err := edgeNodeCount(edges)
	if err != nil {
		return nil, err
	}
	adj := make([][]csr.NodeID, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], csr.NewNodeID(e[1]))
		adj[e[1]] = append(adj[e[1]], csr.NewNodeID(e[0]))
	}
	return &adjacencyGraph{n: n, adj: adj}, nil
}

func (g *adjacencyGraph) NodeCount() csr.NodeID { return csr.NewNodeID(g.n) }
func (g *adjacencyGraph) EdgeCount() csr.NodeID {
	total := 0
	for _, n := range g.adj {
		total += len(n)
	}
	return csr.NewNodeID(total / 2)
}
func (g *adjacencyGraph) Degree(v csr.NodeID) csr.NodeID { return csr.NewNodeID(len(g.adj[v.Index()])) }
func (g *adjacencyGraph) Neighbors(v csr.NodeID) []csr.NodeID { return g.adj[v.Index()] }

type directedAdjacencyGraph struct {
	n       int
	out, in [][]csr.NodeID
}

func buildDirected(edges [][2]int) (*directedAdjacencyGraph, error) {
	n, err := edgeNodeCount(edges)
	if err != nil {
		return nil, err
	}
	out := make([][]csr.NodeID, n)
	in := make([][]csr.NodeID, n)
	for _, e := range edges {
		out[e[0]] = append(out[e[0]], csr.NewNodeID(e[1]))
		in[e[1]] = append(in[e[1]], csr.NewNodeID(e[0]))
	}
	return &directedAdjacencyGraph{n: n, out: out, in: in}, nil
}

func (g *directedAdjacencyGraph) NodeCount() csr.NodeID { return csr.NewNodeID(g.n) }
func (g *directedAdjacencyGraph) EdgeCount() csr.NodeID {
	total := 0
	for _, o := range g.out {
		total += len(o)
	}
	return csr.NewNodeID(total)
}
func (g *directedAdjacencyGraph) OutDegree(v csr.NodeID) csr.NodeID {
	return csr.NewNodeID(len(g.out[v.Index()]))
}
func (g *directedAdjacencyGraph) InDegree(v csr.NodeID) csr.NodeID {
	return csr.NewNodeID(len(g.in[v.Index()]))
}
func (g *directedAdjacencyGraph) OutNeighbors(v csr.NodeID) []csr.NodeID { return g.out[v.Index()] }
func (g *directedAdjacencyGraph) InNeighbors(v csr.NodeID) []csr.NodeID { return g.in[v.Index()] }

func edgeNodeCount(edges [][2]int) (int, error) {
	max := -1
	for _, e := range edges {
		if e[0] < 0 || e[1] < 0 {
			return 0, fmt.Errorf("csrtool: negative node id in edge %v", e)
		}
		if e[0] > max {
			max = e[0]
		}
		if e[1] > max {
			max = e[1]
		}
	}
	return max + 1, nil
}
