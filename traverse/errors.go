// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package traverse

import "errors"

// ErrInvalidNodeValues is returned when a node-value buffer's length
// does not match the graph's node count.
var ErrInvalidNodeValues = errors.New("traverse: invalid node values")

// ErrInvalidPartitioning is returned when a caller-supplied partition's
// range widths do not sum to the graph's node count. Contiguity itself
// is not re-checked here; callers must supply a well-formed partition.
var ErrInvalidPartitioning = errors.New("traverse: invalid partitioning")
