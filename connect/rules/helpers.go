// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// helpers.go - shared validation and iteration helpers every rule in this
// package uses: range checks that fail eagerly at construction (spec §7),
// and the target-loop iteration pattern of spec §4.2 ("Loop over
// targets... skip pairs whose target is a proxy, advancing array-parameter
// cursors").

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// validateProbability checks p is within [lo, hi].
func validateProbability(name string, p float64, lo, hi float64) error {
	if p < lo || p > hi {
		return fmt.Errorf("%s: probability %g outside [%g,%g]: %w", name, p, lo, hi, connect.ErrBadProperty)
	}
	return nil
}

// validateNonNegative checks n >= 0.
func validateNonNegative(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: %d must be >= 0: %w", name, n, connect.ErrBadProperty)
	}
	return nil
}

// forEachOwnedTarget implements the "loop over targets" regime of spec
// §4.2: it always walks the full, replicated target collection on every
// worker thread (the safe default; forEachOwnedTarget never takes the
// "loop over local nodes" path, which only FixedTotalNumber's per-VP loop
// follows - see DESIGN.md), and for every target
// not owned by thread (because its VP belongs to another thread, or the
// node-location service reports it as a proxy), advances array-parameter
// cursors by skipCost(ti) before moving on, preserving invariant I2.
func forEachOwnedTarget(b *connect.Base, thread int, skipCost func(ti int) int, visit func(ti int, tid nodes.ID) error) error {
	for ti := 0; ti < b.Targets.Size(); ti++ {
		tid := b.Targets.At(ti)
		owned := b.IsLocalToThread(tid, thread)
		if owned {
			handle := b.Location.Get(tid, thread)
			owned = !handle.IsProxy
		}
		if !owned {
			if cost := skipCost(ti); cost > 0 {
				b.SkipConnParameter(thread, cost)
			}
			continue
		}
		if err := visit(ti, tid); err != nil {
			return err
		}
	}
	return nil
}
