// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_all_to_all.go - the AllToAll rule (spec §4.2.2): every source
// connects to every target, subject to autapse suppression.

package rules

import (
	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// AllToAll connects every source to every target.
type AllToAll struct{}

// NewAllToAll returns a ready-to-use AllToAll rule.
func NewAllToAll() *AllToAll { return &AllToAll{} }

func (r *AllToAll) Name() string                     { return connect.RuleAllToAll.String() }
func (r *AllToAll) SupportsSymmetric() bool           { return true }
func (r *AllToAll) CreatesSymmetricConnections() bool { return false }

func (r *AllToAll) Connect(b *connect.Base) error {
	sourcesLen := b.Sources.Size()
	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		return forEachOwnedTarget(b, thread, constSkip(sourcesLen), func(ti int, tgtID nodes.ID) error {
			handle := b.Location.Get(tgtID, thread)
			for si := 0; si < sourcesLen; si++ {
				srcID := b.Sources.At(si)
				if !b.AllowAutapses && srcID == tgtID {
					b.SkipConnParameter(thread, 1)
					continue
				}
				if err := b.SingleConnect(srcID, handle, thread, rng); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *AllToAll) Disconnect(b *connect.Base) error {
	sourcesLen := b.Sources.Size()
	return b.RunPairRegion(func(thread int) error {
		return forEachOwnedTarget(b, thread, constSkip(0), func(ti int, tgtID nodes.ID) error {
			handle := b.Location.Get(tgtID, thread)
			for si := 0; si < sourcesLen; si++ {
				srcID := b.Sources.At(si)
				if err := b.SingleDisconnect(srcID, handle, thread); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
