// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

// Package relabel reassigns node ids in descending degree order: the
// node with the largest degree becomes id 0, the node with the
// smallest degree becomes id n-1. The result is a new CSR with the
// same node and edge count as the input, whose per-node neighbor
// lists are themselves sorted ascending.
//
// ToDegreeOrdered runs five phases, each building directly on the
// last:
//
//  1. build (degree, old_id) pairs for every node, in parallel
//  2. sort those pairs descending by (degree, old_id)
//  3. unzip the sorted pairs into new_degrees and an old-id→new-id map
//  4. exclusive prefix sum over new_degrees to get CSR offsets
//  5. scatter every old node's relabeled neighbor list into its new
//     offset range and sort that range locally, in parallel
//
// Phase 5's scatter writes are aliased-but-disjoint: every old node
// id maps to exactly one new id via the phase-3 permutation, so each
// goroutine owns a distinct, non-overlapping slice of targets by
// construction, with no lock required.
package relabel
