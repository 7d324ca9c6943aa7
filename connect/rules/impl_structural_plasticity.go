// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_structural_plasticity.go - the structural-plasticity builder (spec
// §4.2.9). Plain connect()/disconnect() are not supported; the
// structural-plasticity controller instead calls SPConnect/SPDisconnect
// directly each cycle with the pair lists it has already decided on.

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// StructuralPlasticityBuilder implements spec §4.2.9's sp_connect/
// sp_disconnect entry points. It does not implement the normal connect()/
// disconnect() dispatch at all, matching "plain connect() is not
// supported" - Connect and Disconnect both fail loudly so a caller that
// mistakenly routes an SP-mode Base through the regular Rule dispatch
// gets a clear error instead of silently doing the wrong thing.
type StructuralPlasticityBuilder struct{}

// NewStructuralPlasticityBuilder returns a ready-to-use rule.
func NewStructuralPlasticityBuilder() *StructuralPlasticityBuilder {
	return &StructuralPlasticityBuilder{}
}

func (r *StructuralPlasticityBuilder) Name() string { return connect.RuleStructuralPlasticity.String() }
func (r *StructuralPlasticityBuilder) SupportsSymmetric() bool           { return false }
func (r *StructuralPlasticityBuilder) CreatesSymmetricConnections() bool { return false }

func (r *StructuralPlasticityBuilder) Connect(b *connect.Base) error {
	return fmt.Errorf("structural_plasticity: plain connect() is not supported, use SPConnect: %w", connect.ErrNotImplemented)
}

func (r *StructuralPlasticityBuilder) Disconnect(b *connect.Base) error {
	return fmt.Errorf("structural_plasticity: plain disconnect() is not supported, use SPDisconnect: %w", connect.ErrNotImplemented)
}

// SPConnect reserves and, where locally owned, emits one edge per
// (sources[i], targets[i]) pair. Every worker thread walks the full pair
// list; change_connected_synaptic_elements internally limits the actual
// counter increment to whichever side(s) the thread owns, and its
// returned bool tells the thread whether it also owns the target side and
// should emit the edge.
func (r *StructuralPlasticityBuilder) SPConnect(b *connect.Base, sources, targets []nodes.ID) error {
	if len(sources) != len(targets) {
		return fmt.Errorf("structural_plasticity: sp_connect: len(sources)=%d != len(targets)=%d: %w", len(sources), len(targets), connect.ErrDimensionMismatch)
	}
	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		for i, srcID := range sources {
			tgtID := targets[i]
			if !b.AllowAutapses && srcID == tgtID {
				b.SkipConnParameter(thread, 1)
				continue
			}
			local := b.ChangeConnectedSynapticElements(srcID, tgtID, thread, 1)
			if !local {
				b.SkipConnParameter(thread, 1)
				continue
			}
			handle := b.Location.Get(tgtID, thread)
			if err := b.SingleConnect(srcID, handle, thread, rng); err != nil {
				return err
			}
		}
		return nil
	})
}

// SPDisconnect mirrors SPConnect with a synaptic-element delta of -1 and
// no parameter draws (spec §4.2.9 "Disconnect mirrors with -1").
func (r *StructuralPlasticityBuilder) SPDisconnect(b *connect.Base, sources, targets []nodes.ID) error {
	if len(sources) != len(targets) {
		return fmt.Errorf("structural_plasticity: sp_disconnect: len(sources)=%d != len(targets)=%d: %w", len(sources), len(targets), connect.ErrDimensionMismatch)
	}
	return b.RunPairRegion(func(thread int) error {
		for i, srcID := range sources {
			tgtID := targets[i]
			if !b.AllowAutapses && srcID == tgtID {
				continue
			}
			local := b.ChangeConnectedSynapticElements(srcID, tgtID, thread, -1)
			if !local {
				continue
			}
			handle := b.Location.Get(tgtID, thread)
			if err := b.SingleDisconnect(srcID, handle, thread); err != nil {
				return err
			}
		}
		return nil
	})
}
