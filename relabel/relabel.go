// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package relabel

import (
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/csrkit/csrgraph/csr"
	"github.com/csrkit/csrgraph/workerpool"
)

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

type config struct {
	pool   *workerpool.Pool
	logger *log.Logger
}

// Option configures ToDegreeOrdered.
type Option func(*config)

// WithPool runs the relabel pipeline on a caller-supplied pool instead
// of the package's shared default, so the cost of spawning workers can
// be amortized across repeated relabel (and traversal) calls.
func WithPool(pool *workerpool.Pool) Option {
	return func(c *config) { c.pool = pool }
}

// WithLogger turns on a one-line-per-phase debug timer: each of the
// five pipeline phases logs its wall-clock duration through logger
// when it completes. With no WithLogger option the pipeline performs
// no logging at all.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// ToDegreeOrdered builds a new CSR by relabeling graph's node ids in
// descending degree order: the node with the largest degree becomes
// id 0. Ties (equal degree) break toward the larger old id, because
// the pairs are sorted in the reverse of their natural (degree, old_id)
// order — see sort.go.
//
// The result has the same node and edge count as graph, and every
// node's neighbor list is sorted ascending by new id.
func ToDegreeOrdered(graph csr.UndirectedGraph, opts ...Option) *csr.CSR {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	pool := cfg.pool
	if pool == nil {
		pool = defaultWorkerPool()
	}

	timed := func(phase string, fn func()) {
		if cfg.logger == nil {
			fn()
			return
		}
		start := time.Now()
		fn()
		cfg.logger.Printf("relabel: %s took %s", phase, time.Since(start))
	}

	var pairs []degreeNodePair
	timed("build degree-id pairs", func() {
		pairs = buildDegreePairs(pool, graph)
	})

	timed("sort degree-id pairs", func() {
		parallelSortPairs(pool, pairs)
	})

	var newDegrees, idMap []csr.NodeID
	timed("unzip degrees and id map", func() {
		newDegrees, idMap = unzipDegreesAndIDMap(pool, pairs)
	})

	var offsets []csr.NodeID
	timed("prefix sum", func() {
		offsets = prefixSum(newDegrees)
	})

	var targets []csr.NodeID
	timed("relabel and sort targets", func() {
		targets = relabelTargets(pool, graph, idMap, offsets)
	})

	return csr.NewCSR(offsets, targets)
}

// buildDegreePairs computes the (degree, old_id) pair for every node
// in parallel. ids is built with lo.Times up front so the worker pool
// only ever indexes into an already-materialized id sequence.
func buildDegreePairs(pool *workerpool.Pool, graph csr.UndirectedGraph) []degreeNodePair {
	n := graph.NodeCount().Index()
	ids := lo.Times(n, func(i int) csr.NodeID { return csr.NewNodeID(i) })
	pairs := make([]degreeNodePair, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			pairs[i] = degreeNodePair{degree: graph.Degree(ids[i]), id: ids[i]}
		}
	})
	return pairs
}

// unzipDegreesAndIDMap splits sorted (degree, old_id) pairs into
// new_degrees (indexed by new id) and idMap (indexed by old id,
// mapping to the new id). Every old id appears in pairs exactly once,
// so the scatter write into idMap is aliased-but-disjoint across
// goroutines.
func unzipDegreesAndIDMap(pool *workerpool.Pool, pairs []degreeNodePair) (newDegrees, idMap []csr.NodeID) {
	n := len(pairs)
	newDegrees = make([]csr.NodeID, n)
	idMap = make([]csr.NodeID, n)

	pool.ParallelFor(n, func(start, end int) {
		for newID := start; newID < end; newID++ {
			p := pairs[newID]
			newDegrees[newID] = p.degree
			idMap[p.id.Index()] = csr.NewNodeID(newID)
		}
	})
	return newDegrees, idMap
}

// relabelTargets scatters every old node's relabeled neighbor list
// into its new offset range and sorts that range locally. Each old
// node is processed by exactly one goroutine and owns a disjoint
// slice of targets (its new id's offset range), so the writes need no
// synchronization beyond that disjointness.
//
// Degree varies per node, so a fixed equal-width ParallelFor chunking
// would leave some workers with far more neighbor-list work than
// others; ParallelForAtomicBatched work-steals instead, grabbing a
// handful of node indices per atomic increment so the per-grab atomic
// overhead doesn't dominate on graphs with mostly-small degrees.
func relabelTargets(pool *workerpool.Pool, graph csr.UndirectedGraph, idMap []csr.NodeID, offsets []csr.NodeID) []csr.NodeID {
	n := len(idMap)
	edgeCount := offsets[n].Index()
	targets := make([]csr.NodeID, edgeCount)

	pool.ParallelForAtomicBatched(n, relabelBatchSize(n, pool.NumWorkers()), func(start, end int) {
		for i := start; i < end; i++ {
			u := csr.NewNodeID(i)
			newU := idMap[i]
			s := offsets[newU.Index()].Index()
			e := s
			for _, v := range graph.Neighbors(u) {
				targets[e] = idMap[v.Index()]
				e++
			}
			sortNodeIDRange(targets[s:e])
		}
	})
	return targets
}

// relabelBatchSize picks a batch size aiming for roughly 8 grabs per
// worker, so workers finishing an easy batch early can steal another
// before the slowest worker's single batch would otherwise dominate.
func relabelBatchSize(n, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	batch := n / (workers * 8)
	if batch < 1 {
		batch = 1
	}
	return batch
}

func sortNodeIDRange(s []csr.NodeID) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
