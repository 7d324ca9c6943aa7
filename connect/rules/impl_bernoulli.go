// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_bernoulli.go - the Bernoulli (pairwise) rule (spec §4.2.6): for
// every target, every source independently connects with probability p.
// The accept/reject decision never needs cross-rank agreement (the owning
// thread alone decides it), so it uses the per-VP RNG directly inside the
// parallel region, matching spec §5's "Bernoulli local structure".

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// Bernoulli connects (source, target) independently with probability p.
type Bernoulli struct {
	p float64
}

// NewBernoulli validates p in [0,1].
func NewBernoulli(p float64) (*Bernoulli, error) {
	if err := validateProbability("pairwise_bernoulli: p", p, 0, 1); err != nil {
		return nil, err
	}
	return &Bernoulli{p: p}, nil
}

func (r *Bernoulli) Name() string                     { return connect.RuleBernoulli.String() }
func (r *Bernoulli) SupportsSymmetric() bool           { return true }
func (r *Bernoulli) CreatesSymmetricConnections() bool { return false }

func (r *Bernoulli) Connect(b *connect.Base) error {
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
				if rng.Float64() >= r.p {
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

func (r *Bernoulli) Disconnect(b *connect.Base) error {
	return fmt.Errorf("pairwise_bernoulli: disconnect is not supported for a stochastic rule: %w", connect.ErrNotImplemented)
}
