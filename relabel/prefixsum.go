// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package relabel

import "github.com/csrkit/csrgraph/csr"

// prefixSum computes the exclusive prefix sum of degrees, returning a
// slice of length len(degrees)+1 suitable for use as CSR offsets:
// result[0] == 0, result[i+1] == result[i] + degrees[i], and
// result[len(degrees)] is the total edge-entry count.
//
// This is run sequentially. The dependency chain between one output
// and the next rules out the parallel chunking the rest of the
// pipeline uses elsewhere.
func prefixSum(degrees []csr.NodeID) []csr.NodeID {
	offsets := make([]csr.NodeID, len(degrees)+1)
	var sum csr.NodeID
	for i, d := range degrees {
		offsets[i] = sum
		sum += d
	}
	offsets[len(degrees)] = sum
	return offsets
}
