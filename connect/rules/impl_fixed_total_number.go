// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_fixed_total_number.go - the FixedTotalNumber rule (spec §4.2.5): N
// total edges are partitioned across virtual processes by a sequence of
// rank-synced binomial draws (emulating a multinomial), then each worker
// thread draws its own VPs' share of (source, target) pairs independently
// using its per-VP RNG. This is the "loop over local nodes" regime of
// spec §4.2: there is no replicated target collection to walk, so no
// array-parameter skip accounting applies here.

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/rngsvc"
)

// FixedTotalNumber emits exactly N edges in total, partitioned across
// virtual processes in proportion to how many targets each VP owns.
type FixedTotalNumber struct {
	n int
}

// NewFixedTotalNumber validates n >= 0.
func NewFixedTotalNumber(n int) (*FixedTotalNumber, error) {
	if err := validateNonNegative("fixed_total_number: N", n); err != nil {
		return nil, err
	}
	return &FixedTotalNumber{n: n}, nil
}

func (r *FixedTotalNumber) Name() string                     { return connect.RuleFixedTotalNumber.String() }
func (r *FixedTotalNumber) SupportsSymmetric() bool           { return false }
func (r *FixedTotalNumber) CreatesSymmetricConnections() bool { return false }

func (r *FixedTotalNumber) Connect(b *connect.Base) error {
	sourcesLen, targetsLen := b.Sources.Size(), b.Targets.Size()
	if !b.AllowMultapses {
		if r.n > sourcesLen*targetsLen {
			return fmt.Errorf("fixed_total_number: N=%d > |sources|*|targets|=%d: %w", r.n, sourcesLen*targetsLen, connect.ErrBadProperty)
		}
		return fmt.Errorf("fixed_total_number: multapse-suppressed mode is not supported: %w", connect.ErrNotImplemented)
	}

	numVPs := b.VPs.NumVPs()
	targetsByVP := make([][]int, numVPs)
	for ti := 0; ti < targetsLen; ti++ {
		vp := b.VPs.NodeToVP(b.Targets.At(ti))
		targetsByVP[vp] = append(targetsByVP[vp], ti)
	}

	syncRNG := b.RNGs.RankSyncedRNG(0)
	countsByVP := make([]int, numVPs)
	remainingBudget, remainingTargets := r.n, targetsLen
	for vp := 0; vp < numVPs; vp++ {
		nInVP := len(targetsByVP[vp])
		if remainingTargets == 0 || remainingBudget == 0 {
			continue
		}
		p := float64(nInVP) / float64(remainingTargets)
		k := syncRNG.Binomial(remainingBudget, p)
		countsByVP[vp] = k
		remainingBudget -= k
		remainingTargets -= nInVP
	}

	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		for _, vp := range b.VPs.ThreadToVPs(thread) {
			localTargets := targetsByVP[vp]
			if len(localTargets) == 0 {
				continue
			}
			for i := 0; i < countsByVP[vp]; i++ {
				si, ti, err := drawNonAutapsePair(b, rng, sourcesLen, localTargets)
				if err != nil {
					return fmt.Errorf("fixed_total_number: vp %d: %w", vp, err)
				}
				tgtID := b.Targets.At(ti)
				handle := b.Location.Get(tgtID, thread)
				if err := b.SingleConnect(b.Sources.At(si), handle, thread, rng); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *FixedTotalNumber) Disconnect(b *connect.Base) error {
	return fmt.Errorf("fixed_total_number: disconnect is not supported for a stochastic count rule: %w", connect.ErrNotImplemented)
}

// drawNonAutapsePair draws a source index uniformly from [0,sourcesLen)
// and a target index uniformly from localTargets, redrawing on autapse
// when b.AllowAutapses is false.
func drawNonAutapsePair(b *connect.Base, rng *rngsvc.Stream, sourcesLen int, localTargets []int) (int, int, error) {
	for attempt := 0; attempt < rngsvc.MaxRejectionAttempts; attempt++ {
		si := rng.Intn(sourcesLen)
		ti := localTargets[rng.Intn(len(localTargets))]
		if b.AllowAutapses || b.Sources.At(si) != b.Targets.At(ti) {
			return si, ti, nil
		}
	}
	return 0, 0, fmt.Errorf("drawNonAutapsePair: %w", rngsvc.ErrSamplingExhausted)
}
