// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_fixed_out_degree.go - the FixedOutDegree rule (spec §4.2.4):
// symmetric to FixedInDegree but source-driven and globally coordinated.
// Per source, target indices are drawn once with the rank-synced RNG in a
// sequential pass (so every rank builds the identical target set for that
// source); a parallel emission pass then lets each thread emit only the
// edges whose target it owns.

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// FixedOutDegree connects every source to exactly outdegree targets.
type FixedOutDegree struct {
	outdegree int
}

// NewFixedOutDegree validates outdegree >= 0.
func NewFixedOutDegree(outdegree int) (*FixedOutDegree, error) {
	if err := validateNonNegative("fixed_outdegree: outdegree", outdegree); err != nil {
		return nil, err
	}
	return &FixedOutDegree{outdegree: outdegree}, nil
}

func (r *FixedOutDegree) Name() string                     { return connect.RuleFixedOutDegree.String() }
func (r *FixedOutDegree) SupportsSymmetric() bool           { return false }
func (r *FixedOutDegree) CreatesSymmetricConnections() bool { return false }

func (r *FixedOutDegree) Connect(b *connect.Base) error {
	sourcesLen, targetsLen := b.Sources.Size(), b.Targets.Size()
	if !b.AllowMultapses && r.outdegree > targetsLen {
		return fmt.Errorf("fixed_outdegree: outdegree=%d > |targets|=%d with multapses disabled: %w", r.outdegree, targetsLen, connect.ErrBadProperty)
	}
	if !b.AllowAutapses && r.outdegree == targetsLen && overlaps(b.Sources, b.Targets) {
		b.Warn(r.Name(), "outdegree equals |targets| with autapses disabled and overlapping source/target sets: rejection sampling may exhaust its attempt budget for an overlapping source")
	}
	if float64(r.outdegree) > 0.9*float64(targetsLen) {
		b.Warn(r.Name(), fmt.Sprintf("outdegree=%d exceeds 0.9*|targets|=%g: rejection sampling will be slow", r.outdegree, 0.9*float64(targetsLen)))
	}

	// Sequential structure pass: every rank must draw the identical
	// per-source target-index set, so this loop never runs inside the
	// parallel worker region and consumes only the rank-synced stream.
	syncRNG := b.RNGs.RankSyncedRNG(0)
	plan := make([][]int, sourcesLen)
	for si := 0; si < sourcesLen; si++ {
		srcID := b.Sources.At(si)
		reject := func(chosen []int, candidate int) bool {
			tgtID := b.Targets.At(candidate)
			if !b.AllowAutapses && tgtID == srcID {
				return true
			}
			if !b.AllowMultapses {
				for _, c := range chosen {
					if c == candidate {
						return true
					}
				}
			}
			return false
		}
		picks, err := syncRNG.SampleWithReplacement(targetsLen, r.outdegree, reject)
		if err != nil {
			return fmt.Errorf("fixed_outdegree: source %d: %w", srcID, err)
		}
		plan[si] = picks
	}

	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		return forEachOwnedTarget(b, thread, func(ti int) int { return targetHitCount(plan, ti) }, func(ti int, tgtID nodes.ID) error {
			handle := b.Location.Get(tgtID, thread)
			for si, picks := range plan {
				for _, pick := range picks {
					if pick != ti {
						continue
					}
					if err := b.SingleConnect(b.Sources.At(si), handle, thread, rng); err != nil {
						return err
					}
				}
			}
			return nil
		})
	})
}

func (r *FixedOutDegree) Disconnect(b *connect.Base) error {
	return fmt.Errorf("fixed_outdegree: disconnect is not supported for a stochastic degree rule: %w", connect.ErrNotImplemented)
}

// targetHitCount counts how many times target index ti was picked across
// all sources in plan (a source that picked it twice counts twice), the
// number of array-parameter slots a skipped (non-owned) target consumes.
func targetHitCount(plan [][]int, ti int) int {
	n := 0
	for _, picks := range plan {
		for _, pick := range picks {
			if pick == ti {
				n++
			}
		}
	}
	return n
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
