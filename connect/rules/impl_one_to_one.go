// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_one_to_one.go - the OneToOne rule (spec §4.2.1): sources and
// targets must be equal length; pair i connects sources[i] to targets[i].

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// OneToOne connects sources[i] to targets[i] for every index i.
type OneToOne struct{}

// NewOneToOne returns a ready-to-use OneToOne rule. It carries no
// parameters of its own.
func NewOneToOne() *OneToOne { return &OneToOne{} }

func (r *OneToOne) Name() string                    { return connect.RuleOneToOne.String() }
func (r *OneToOne) SupportsSymmetric() bool          { return true }
func (r *OneToOne) CreatesSymmetricConnections() bool { return false }

func (r *OneToOne) Connect(b *connect.Base) error {
	if err := r.checkDimensions(b); err != nil {
		return err
	}
	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		return forEachOwnedTarget(b, thread, constSkip(1), func(ti int, tgtID nodes.ID) error {
			srcID := b.Sources.At(ti)
			if !b.AllowAutapses && srcID == tgtID {
				b.SkipConnParameter(thread, 1)
				return nil
			}
			handle := b.Location.Get(tgtID, thread)
			return b.SingleConnect(srcID, handle, thread, rng)
		})
	})
}

func (r *OneToOne) Disconnect(b *connect.Base) error {
	if err := r.checkDimensions(b); err != nil {
		return err
	}
	return b.RunPairRegion(func(thread int) error {
		return forEachOwnedTarget(b, thread, constSkip(0), func(ti int, tgtID nodes.ID) error {
			srcID := b.Sources.At(ti)
			handle := b.Location.Get(tgtID, thread)
			return b.SingleDisconnect(srcID, handle, thread)
		})
	})
}

func (r *OneToOne) checkDimensions(b *connect.Base) error {
	if b.Sources.Size() != b.Targets.Size() {
		return fmt.Errorf("one_to_one: |sources|=%d != |targets|=%d: %w", b.Sources.Size(), b.Targets.Size(), connect.ErrDimensionMismatch)
	}
	return nil
}

// constSkip returns a skipCost function that always reports n, for rules
// whose per-target attempt count never depends on the target's index.
func constSkip(n int) func(ti int) int {
	return func(int) int { return n }
}
