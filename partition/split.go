// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"

	"github.com/csrkit/csrgraph/csr"
)

// SplitByPartition carves buffer into len(p) disjoint sub-slices, the
// i-th of length p[i].Len(), so that sub-slice i corresponds exactly to
// the node ids in p[i]. The sub-slices alias buffer's backing array:
// mutating one through its returned slice is visible through buffer,
// but not through any other sub-slice, since Go slices guarantee
// disjoint backing ranges don't overlap when carved contiguously.
//
// It is a programmer error for the partition's range widths not to sum
// to len(buffer); SplitByPartition only checks this when csr.Debug is
// true (see the package-level Debug flag in package csr).
func SplitByPartition[T any](p Partition, buffer []T) [][]T {
	if csr.Debug {
		total := 0
		for _, r := range p {
			total += r.Len()
		}
		if total != len(buffer) {
			panic(fmt.Sprintf("partition: range widths sum to %d, want len(buffer)=%d", total, len(buffer)))
		}
	}

	out := make([][]T, len(p))
	offset := 0
	for i, r := range p {
		width := r.Len()
		out[i] = buffer[offset : offset+width : offset+width]
		offset += width
	}
	return out
}
