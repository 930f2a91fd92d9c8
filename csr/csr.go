// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package csr

import "fmt"

// Debug gates the programmer-error invariant checks described in
// spec.md §7 that this module implements: malformed CSR offsets and
// partition widths that do not sum to a buffer's length. Partition
// contiguity is not checked. It defaults to false so release builds pay nothing for them;
// tests that want the extra checking set it to true for the duration
// of the test.
var Debug = false

// CSR is an undirected compressed sparse row graph. It is constructed
// once from (offsets, targets) and never mutated afterward; reads are
// safe from any number of concurrent goroutines.
type CSR struct {
	offsets []NodeID
	targets []NodeID
}

// NewCSR builds a CSR from an offsets array of length n+1 and a targets
// array of length offsets[n]. offsets[0] must be 0 and offsets must be
// nondecreasing; neighbors(v) is targets[offsets[v]:offsets[v+1]].
//
// These are programmer-error preconditions: NewCSR only validates them
// when Debug is true.
func NewCSR(offsets, targets []NodeID) *CSR {
	if Debug {
		validateOffsets(offsets, targets)
	}
	return &CSR{offsets: offsets, targets: targets}
}

func validateOffsets(offsets, targets []NodeID) {
	if len(offsets) == 0 {
		panic("csr: offsets must have length n+1, got 0")
	}
	if offsets[0] != 0 {
		panic(fmt.Sprintf("csr: offsets[0] must be 0, got %d", offsets[0]))
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			panic(fmt.Sprintf("csr: offsets not nondecreasing at %d: %d < %d", i, offsets[i], offsets[i-1]))
		}
	}
	if int(offsets[len(offsets)-1]) != len(targets) {
		panic(fmt.Sprintf("csr: offsets[n]=%d does not match len(targets)=%d", offsets[len(offsets)-1], len(targets)))
	}
}

// NodeCount returns n, the number of nodes.
func (c *CSR) NodeCount() NodeID {
	return NodeID(len(c.offsets) - 1)
}

// EdgeCount returns the logical edge count |E|. For an undirected CSR,
// the adjacency length offsets[n] is 2|E|, since every edge contributes
// one entry to each of its two endpoints.
func (c *CSR) EdgeCount() NodeID {
	return c.offsets[len(c.offsets)-1] / 2
}

// Degree returns the number of adjacency entries at v.
func (c *CSR) Degree(v NodeID) NodeID {
	return c.offsets[v.Index()+1] - c.offsets[v.Index()]
}

// Neighbors returns the adjacency list of v. The returned slice aliases
// the CSR's internal storage and must not be mutated by the caller.
func (c *CSR) Neighbors(v NodeID) []NodeID {
	start := c.offsets[v.Index()]
	end := c.offsets[v.Index()+1]
	return c.targets[start:end]
}

// Offsets returns the raw offsets array backing this CSR. It is exposed
// read-only for collaborators (such as relabel) that need to reason
// about adjacency ranges directly.
func (c *CSR) Offsets() []NodeID {
	return c.offsets
}

// Targets returns the raw targets array backing this CSR.
func (c *CSR) Targets() []NodeID {
	return c.targets
}
