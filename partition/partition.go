// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package partition

import "github.com/csrkit/csrgraph/csr"

// Partition is an ordered sequence of contiguous, non-overlapping,
// half-open ranges covering [0, n). Partition[0].Start is always 0 and
// Partition[i].End == Partition[i+1].Start for every i.
type Partition []csr.Range

// NodeCount returns the total number of nodes covered by p, i.e. the n
// such that p covers [0, n). It assumes p is well-formed (see the
// Partition type doc); callers that built p themselves are responsible
// for that invariant.
func (p Partition) NodeCount() csr.NodeID {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].End
}

// CostFunc maps a node to a nonnegative workload unit. It must be a
// total function over [0, n).
type CostFunc func(v csr.NodeID) uint64

// GreedyPartition partitions [0, n) into at most maxBatches contiguous
// ranges such that the accumulated cost of every range except possibly
// the last is at least batchSize.
//
// It streams over [0, n) once, closing the current range as soon as its
// running cost total reaches batchSize — unless maxBatches-1 ranges
// have already been closed, in which case the remainder is held open
// until the final node so the result never exceeds maxBatches ranges.
// The last range always closes at n regardless of its accumulated cost.
//
// This is a greedy, single-pass heuristic, not an optimal bin-packing:
// it is deliberately not rebalanced after the fact. Implementations and
// callers must treat its exact range endpoints as part of the contract
// (see the S1-S4 scenarios in partition_test.go), not as an
// implementation detail that may shift between equally "balanced"
// outputs.
func GreedyPartition(costFn CostFunc, n csr.NodeID, batchSize uint64, maxBatches int) Partition {
	var out Partition
	var accum uint64
	start := csr.NodeID(0)

	last := n.Index() - 1
	for v := csr.NodeID(0); v.Index() <= last; v++ {
		accum += costFn(v)

		shouldClose := (len(out) < maxBatches-1 && accum >= batchSize) || v.Index() == last
		if shouldClose {
			out = append(out, csr.Range{Start: start, End: v + 1})
			start = v + 1
			accum = 0
		}
	}

	return out
}
