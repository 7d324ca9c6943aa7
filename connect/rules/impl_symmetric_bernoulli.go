// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_symmetric_bernoulli.go - the SymmetricBernoulli rule (spec §4.2.7):
// requires allow_multapses, forbids allow_autapses, and requires
// make_symmetric; it sets CreatesSymmetricConnections so Base's
// swap-and-replay never runs. Every draw uses the rank-synced RNG in one
// sequential planning pass (so every rank builds the identical per-target
// source set), followed by a parallel pass that emits both directions of
// each chosen pair wherever the corresponding endpoint is locally owned.

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
)

// SymmetricBernoulli draws a truncated-Binomial(|sources|, p) indegree per
// target and connects both directions for each chosen source.
type SymmetricBernoulli struct {
	p float64
}

// NewSymmetricBernoulli validates p in [0,1).
func NewSymmetricBernoulli(p float64) (*SymmetricBernoulli, error) {
	if err := validateProbability("symmetric_pairwise_bernoulli: p", p, 0, 1); err != nil {
		return nil, err
	}
	if p == 1 {
		return nil, fmt.Errorf("symmetric_pairwise_bernoulli: p must be < 1: %w", connect.ErrBadProperty)
	}
	return &SymmetricBernoulli{p: p}, nil
}

func (r *SymmetricBernoulli) Name() string                     { return connect.RuleSymmetricBernoulli.String() }
func (r *SymmetricBernoulli) SupportsSymmetric() bool           { return true }
func (r *SymmetricBernoulli) CreatesSymmetricConnections() bool { return true }

type symmetricPair struct {
	targetIdx int
	sourceIdx int
}

func (r *SymmetricBernoulli) Connect(b *connect.Base) error {
	if !b.AllowMultapses {
		return fmt.Errorf("symmetric_pairwise_bernoulli: requires allow_multapses=true: %w", connect.ErrBadProperty)
	}
	if b.AllowAutapses {
		return fmt.Errorf("symmetric_pairwise_bernoulli: requires allow_autapses=false: %w", connect.ErrBadProperty)
	}
	if !b.MakeSymmetric {
		return fmt.Errorf("symmetric_pairwise_bernoulli: requires make_symmetric=true: %w", connect.ErrBadProperty)
	}

	sourcesLen, targetsLen := b.Sources.Size(), b.Targets.Size()
	syncRNG := b.RNGs.RankSyncedRNG(0)

	var plan []symmetricPair
	for ti := 0; ti < targetsLen; ti++ {
		tgtID := b.Targets.At(ti)
		indegree, err := syncRNG.TruncatedBinomial(sourcesLen, r.p, sourcesLen)
		if err != nil {
			return fmt.Errorf("symmetric_pairwise_bernoulli: target %d: %w", tgtID, err)
		}
		picks, err := syncRNG.SampleWithoutReplacement(sourcesLen, indegree, func(candidate int) bool {
			return b.Sources.At(candidate) == tgtID
		})
		if err != nil {
			return fmt.Errorf("symmetric_pairwise_bernoulli: target %d: %w", tgtID, err)
		}
		for _, si := range picks {
			plan = append(plan, symmetricPair{targetIdx: ti, sourceIdx: si})
		}
	}

	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		for _, pair := range plan {
			tgtID := b.Targets.At(pair.targetIdx)
			srcID := b.Sources.At(pair.sourceIdx)

			if b.IsLocalToThread(tgtID, thread) {
				handle := b.Location.Get(tgtID, thread)
				if err := b.SingleConnect(srcID, handle, thread, rng); err != nil {
					return err
				}
			} else {
				b.SkipConnParameter(thread, 1)
			}

			if b.IsLocalToThread(srcID, thread) {
				handle := b.Location.Get(srcID, thread)
				if err := b.SingleConnect(tgtID, handle, thread, rng); err != nil {
					return err
				}
			} else {
				b.SkipConnParameter(thread, 1)
			}
		}
		return nil
	})
}

func (r *SymmetricBernoulli) Disconnect(b *connect.Base) error {
	return fmt.Errorf("symmetric_pairwise_bernoulli: disconnect is not supported for a stochastic rule: %w", connect.ErrNotImplemented)
}
