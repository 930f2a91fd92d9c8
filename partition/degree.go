// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"github.com/samber/lo"

	"github.com/csrkit/csrgraph/csr"
)

// DegreePartition builds a GreedyPartition over an undirected graph
// using total degree as the cost function. batchSize is
// ceil(2|E| / concurrency) since every edge contributes to two
// endpoints' degrees; maxBatches is concurrency.
func DegreePartition(g csr.UndirectedGraph, concurrency int) Partition {
	concurrency = lo.Max([]int{concurrency, 1})
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	totalDegree := uint64(2) * uint64(g.EdgeCount())
	batchSize := ceilDiv(totalDegree, uint64(concurrency))

	return GreedyPartition(func(v csr.NodeID) uint64 {
		return uint64(g.Degree(v))
	}, n, batchSize, concurrency)
}

// OutDegreePartition builds a GreedyPartition over a directed graph
// using out-degree as the cost function. batchSize is
// ceil(|E| / concurrency); maxBatches is concurrency.
func OutDegreePartition(g csr.DirectedGraph, concurrency int) Partition {
	concurrency = lo.Max([]int{concurrency, 1})
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	batchSize := ceilDiv(uint64(g.EdgeCount()), uint64(concurrency))

	return GreedyPartition(func(v csr.NodeID) uint64 {
		return uint64(g.OutDegree(v))
	}, n, batchSize, concurrency)
}

// InDegreePartition builds a GreedyPartition over a directed graph
// using in-degree as the cost function. batchSize is
// ceil(|E| / concurrency), not ceil(2|E| / concurrency) — the sum of
// in-degrees over all nodes already equals |E|, so no doubling factor
// applies here even though one does for the undirected case. This is
// intentional: do not "correct" it to match DegreePartition's formula.
func InDegreePartition(g csr.DirectedGraph, concurrency int) Partition {
	concurrency = lo.Max([]int{concurrency, 1})
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	batchSize := ceilDiv(uint64(g.EdgeCount()), uint64(concurrency))

	return GreedyPartition(func(v csr.NodeID) uint64 {
		return uint64(g.InDegree(v))
	}, n, batchSize, concurrency)
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
