// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package csr

import "fmt"

// NodeID identifies a node in a graph. The domain is the nonnegative
// integers; all arithmetic on NodeID values is expected to stay
// nonnegative — overflow or underflow past zero is a programmer error,
// not a runtime-checked condition.
type NodeID uint32

// Zero is the identity element for NodeID addition.
const Zero NodeID = 0

// NewNodeID constructs a NodeID from a nonnegative machine integer.
// It panics if v is negative, since the domain of NodeID excludes it.
func NewNodeID(v int) NodeID {
	if v < 0 {
		panic(fmt.Sprintf("csr: NewNodeID: negative value %d", v))
	}
	return NodeID(v)
}

// Index projects a NodeID losslessly to a machine integer, for use as a
// slice index.
func (n NodeID) Index() int {
	return int(n)
}

// Range is a half-open interval [Start, End) over node identifiers.
// A well-formed Range satisfies Start <= End.
type Range struct {
	Start NodeID
	End   NodeID
}

// Len returns the number of node identifiers covered by r.
func (r Range) Len() int {
	return r.End.Index() - r.Start.Index()
}
