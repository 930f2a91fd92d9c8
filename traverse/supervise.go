// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package traverse

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Supervise runs each of fns concurrently and recovers any panic into
// a returned error instead of letting it crash the process.
//
// This is deliberately not what ForEachNode/ForEachNodeByPartition do:
// spec.md §7 requires a panic in a user callback to propagate raw at
// the fork-join boundary, and the traversal operations honor that.
// Supervise exists for operator-facing callers — cmd/csrtool, the CLI
// built on this package — that would rather report a clean error for
// one bad invocation than take the whole process down.
func Supervise(fns ...func()) error {
	var eg errgroup.Group
	for _, fn := range fns {
		fn := fn
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("traverse: recovered panic: %v", r)
				}
			}()
			fn()
			return nil
		})
	}
	return eg.Wait()
}
