// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

// Package csr provides the node identifier type, the graph read
// interfaces, and the compressed sparse row (CSR) container that the
// partition, traverse, and relabel packages operate over.
//
// A CSR graph stores its adjacency as two flat slices: offsets, of length
// n+1, and targets, of length offsets[n]. The neighbors of node v are
// targets[offsets[v]:offsets[v+1]]. This package owns only the
// construction and read side of that layout — it never mutates a graph
// after NewCSR/NewDirectedCSR returns.
package csr
