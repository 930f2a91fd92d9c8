// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package traverse

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/csrkit/csrgraph/csr"
	"github.com/csrkit/csrgraph/partition"
	"github.com/csrkit/csrgraph/workerpool"
)

// Countable is the minimal graph capability the traversal operations
// need directly: the node count, used to validate buffer and
// partition lengths. The per-node callback still receives the full
// graph value g, so it can call Degree, Neighbors, OutDegree, or
// whatever else G exposes.
type Countable interface {
	NodeCount() csr.NodeID
}

var (
	defaultPoolOnce sync.Once
	defaultPool     *workerpool.Pool
)

func defaultWorkerPool() *workerpool.Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = workerpool.New(runtime.GOMAXPROCS(0))
	})
	return defaultPool
}

// ForEachNode invokes f(g, v, &buffer[v]) once for every node
// v in [0, NodeCount), parallelized across a shared default pool.
// Invocations may run concurrently with distinct v and distinct state
// references; f must be safe for that.
//
// It fails with ErrInvalidNodeValues if len(buffer) != g.NodeCount().
func ForEachNode[G Countable, T any](g G, buffer []T, f func(G, csr.NodeID, *T)) error {
	return ForEachNodeWithPool(g, buffer, f, defaultWorkerPool())
}

// ForEachNodeWithPool is ForEachNode against a caller-supplied pool,
// so one pool can be reused across many traversals instead of each
// call paying its own spawn cost.
func ForEachNodeWithPool[G Countable, T any](g G, buffer []T, f func(G, csr.NodeID, *T), pool *workerpool.Pool) error {
	n := g.NodeCount()
	if len(buffer) != n.Index() {
		return fmt.Errorf("%w: len(buffer)=%d, node_count=%d", ErrInvalidNodeValues, len(buffer), n.Index())
	}
	if n.Index() == 0 {
		return nil
	}

	pool.ParallelFor(n.Index(), func(start, end int) {
		for i := start; i < end; i++ {
			v := csr.NewNodeID(i)
			f(g, v, &buffer[i])
		}
	})
	return nil
}

// ForEachNodeByPartition invokes f(g, v, &buffer[v]) once for every
// node, using partition as the parallelization scheme: each range runs
// as one unit of work, and within a range nodes are visited in
// strictly ascending order.
//
// It fails with ErrInvalidNodeValues if len(buffer) != g.NodeCount(),
// and with ErrInvalidPartitioning if the partition's range widths
// don't sum to g.NodeCount(). Contiguity of partition is assumed, not
// re-verified.
func ForEachNodeByPartition[G Countable, T any](p partition.Partition, g G, buffer []T, f func(G, csr.NodeID, *T)) error {
	return ForEachNodeByPartitionWithPool(p, g, buffer, f, defaultWorkerPool())
}

// ForEachNodeByPartitionWithPool is ForEachNodeByPartition against a
// caller-supplied pool.
func ForEachNodeByPartitionWithPool[G Countable, T any](p partition.Partition, g G, buffer []T, f func(G, csr.NodeID, *T), pool *workerpool.Pool) error {
	n := g.NodeCount()
	if len(buffer) != n.Index() {
		return fmt.Errorf("%w: len(buffer)=%d, node_count=%d", ErrInvalidNodeValues, len(buffer), n.Index())
	}

	sum := 0
	for _, r := range p {
		sum += r.Len()
	}
	if sum != n.Index() {
		return fmt.Errorf("%w: range widths sum to %d, node_count=%d", ErrInvalidPartitioning, sum, n.Index())
	}
	if n.Index() == 0 {
		return nil
	}

	subBuffers := partition.SplitByPartition(p, buffer)

	tasks := make([]func(), len(p))
	for i, r := range p {
		i, r := i, r
		tasks[i] = func() {
			sub := subBuffers[i]
			for v := r.Start; v < r.End; v++ {
				f(g, v, &sub[v.Index()-r.Start.Index()])
			}
		}
	}
	pool.Run(tasks...)
	return nil
}
