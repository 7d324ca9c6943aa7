// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_fixed_in_degree.go - the FixedInDegree rule (spec §4.2.3): each
// target draws `indegree` sources uniformly with replacement, rejecting
// autapses/duplicates. A per-target indegree decision never needs
// cross-rank agreement (only the owning thread ever evaluates it), so the
// draw uses the per-VP RNG directly inside the parallel region (spec §5's
// vp_specific_rng list names FixedInDegree explicitly).

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// FixedInDegree connects exactly indegree sources to every target.
type FixedInDegree struct {
	indegree int
}

// NewFixedInDegree validates indegree >= 0 and returns a ready rule; the
// |sources|-dependent checks run at Connect time, once the source
// collection is known.
func NewFixedInDegree(indegree int) (*FixedInDegree, error) {
	if err := validateNonNegative("fixed_indegree: indegree", indegree); err != nil {
		return nil, err
	}
	return &FixedInDegree{indegree: indegree}, nil
}

func (r *FixedInDegree) Name() string                     { return connect.RuleFixedInDegree.String() }
func (r *FixedInDegree) SupportsSymmetric() bool           { return true }
func (r *FixedInDegree) CreatesSymmetricConnections() bool { return false }

func (r *FixedInDegree) Connect(b *connect.Base) error {
	sourcesLen := b.Sources.Size()
	if !b.AllowMultapses && r.indegree > sourcesLen {
		return fmt.Errorf("fixed_indegree: indegree=%d > |sources|=%d with multapses disabled: %w", r.indegree, sourcesLen, connect.ErrBadProperty)
	}
	if !b.AllowAutapses && r.indegree == sourcesLen && overlaps(b.Sources, b.Targets) {
		b.Warn(r.Name(), "indegree equals |sources| with autapses disabled and overlapping source/target sets: rejection sampling may exhaust its attempt budget for an overlapping target")
	}
	if float64(r.indegree) > 0.9*float64(sourcesLen) {
		b.Warn(r.Name(), fmt.Sprintf("indegree=%d exceeds 0.9*|sources|=%g: rejection sampling will be slow", r.indegree, 0.9*float64(sourcesLen)))
	}

	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		return forEachOwnedTarget(b, thread, constSkip(r.indegree), func(ti int, tgtID nodes.ID) error {
			reject := func(chosen []int, candidate int) bool {
				srcID := b.Sources.At(candidate)
				if !b.AllowAutapses && srcID == tgtID {
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
			picks, err := rng.SampleWithReplacement(sourcesLen, r.indegree, reject)
			if err != nil {
				return fmt.Errorf("fixed_indegree: target %d: %w", tgtID, err)
			}
			handle := b.Location.Get(tgtID, thread)
			for _, idx := range picks {
				if err := b.SingleConnect(b.Sources.At(idx), handle, thread, rng); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *FixedInDegree) Disconnect(b *connect.Base) error {
	return fmt.Errorf("fixed_indegree: disconnect is not supported for a stochastic degree rule: %w", connect.ErrNotImplemented)
}

// overlaps reports whether a and b share at least one node id.
func overlaps(a, b *nodes.Collection) bool {
	for _, id := range a.IDs() {
		if b.Contains(id) {
			return true
		}
	}
	return false
}
