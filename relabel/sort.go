// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package relabel

import (
	"sort"

	"github.com/csrkit/csrgraph/csr"
	"github.com/csrkit/csrgraph/workerpool"
)

// degreeNodePair is the (degree, old_id) tuple phase 2 sorts and phase
// 3 unzips. Its sort key is lexicographic descending on (degree,
// old_id): primarily larger degree first, and among equal degrees, the
// larger old id first. This is exactly the reverse of the pairs'
// natural order; precedes compares in that descending order directly,
// with no separate reverse step. The tie-break must be reproduced
// exactly — see spec.md §4.5 phase 1 and §9.
type degreeNodePair struct {
	degree csr.NodeID
	id     csr.NodeID
}

// precedes reports whether a sorts before b under that order.
func (a degreeNodePair) precedes(b degreeNodePair) bool {
	if a.degree != b.degree {
		return a.degree > b.degree
	}
	return a.id > b.id
}

// parallelSortPairs sorts data in place into descending (degree, id)
// order. It splits data into pool.ChunkBounds(n) contiguous chunks,
// sorts each one concurrently via pool.ParallelFor, and then merges
// the sorted chunks back together using those same boundaries.
//
// Id uniqueness (every old id appears exactly once, per §3's id_map
// permutation invariant) means no two pairs ever compare equal, so the
// merge below never needs a stability tie-break.
func parallelSortPairs(pool *workerpool.Pool, data []degreeNodePair) {
	n := len(data)
	if n <= 1 {
		return
	}

	bounds := pool.ChunkBounds(n)
	if len(bounds) <= 1 {
		sortPairsSequential(data)
		return
	}

	pool.ParallelFor(n, func(start, end int) {
		sortPairsSequential(data[start:end])
	})

	chunks := make([][]degreeNodePair, len(bounds))
	for i, b := range bounds {
		chunks[i] = data[b[0]:b[1]]
	}
	merged := mergeAllSorted(chunks)
	copy(data, merged)
}

func sortPairsSequential(data []degreeNodePair) {
	sort.Slice(data, func(i, j int) bool {
		return data[i].precedes(data[j])
	})
}

// mergeAllSorted merges chunks — each already sorted under precedes —
// into one sorted slice via a bottom-up merge tournament.
func mergeAllSorted(chunks [][]degreeNodePair) []degreeNodePair {
	for len(chunks) > 1 {
		var next [][]degreeNodePair
		for i := 0; i+1 < len(chunks); i += 2 {
			next = append(next, mergePairs(chunks[i], chunks[i+1]))
		}
		if len(chunks)%2 == 1 {
			next = append(next, chunks[len(chunks)-1])
		}
		chunks = next
	}
	if len(chunks) == 0 {
		return nil
	}
	return chunks[0]
}

func mergePairs(a, b []degreeNodePair) []degreeNodePair {
	out := make([]degreeNodePair, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].precedes(a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
