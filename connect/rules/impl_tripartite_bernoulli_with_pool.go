// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// impl_tripartite_bernoulli_with_pool.go - the TripartiteBernoulliWithPool
// rule (spec §4.2.8): a primary source->target Bernoulli-with-indegree
// pass, plus two conditional auxiliary streams (source->third, third->
// target) driven off a per-target pool of third-population nodes.
//
// Simplification (documented in DESIGN.md): the two auxiliary streams
// reuse the outer Base's single SynapseSpec pipeline rather than an
// independent "auxiliary builder" parameter pipeline per spec's fuller
// description - a faithful third Base/SynapseSpec pair per stream would
// roughly double this rule's surface for attribute bookkeeping the rest
// of this module does not otherwise exercise.

package rules

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/katalvlaran/connbuild/rngsvc"
)

// PoolType selects how TripartiteBernoulliWithPool draws each target's
// pool of candidate third-population nodes.
type PoolType int

const (
	// PoolRandom draws a fresh poolSize-sized pool per target from the
	// full third collection via rejection sampling.
	PoolRandom PoolType = iota
	// PoolBlock assigns each target a deterministic contiguous slice of
	// the third collection.
	PoolBlock
)

// TripartiteBernoulliWithPool connects sources to targets with indegree
// Binomial(|sources|, p_primary), and conditionally routes a subset of
// those edges through a third population node drawn from a per-target
// pool.
type TripartiteBernoulliWithPool struct {
	third              *nodes.Collection
	pPrimary           float64
	pThirdIfPrimary    float64
	poolSize           int
	poolType           PoolType
}

// NewTripartiteBernoulliWithPool validates the two probabilities and
// poolSize >= 1; the sizing requirements against |targets| and |third|
// are checked at Connect time.
func NewTripartiteBernoulliWithPool(third *nodes.Collection, pPrimary, pThirdIfPrimary float64, poolSize int, poolType PoolType) (*TripartiteBernoulliWithPool, error) {
	if third == nil {
		return nil, fmt.Errorf("tripartite_bernoulli_with_pool: nil third collection: %w", connect.ErrBadProperty)
	}
	if err := validateProbability("tripartite_bernoulli_with_pool: p_primary", pPrimary, 0, 1); err != nil {
		return nil, err
	}
	if err := validateProbability("tripartite_bernoulli_with_pool: p_third_if_primary", pThirdIfPrimary, 0, 1); err != nil {
		return nil, err
	}
	if poolSize < 1 || poolSize > third.Size() {
		return nil, fmt.Errorf("tripartite_bernoulli_with_pool: pool_size=%d outside [1,%d]: %w", poolSize, third.Size(), connect.ErrBadProperty)
	}
	return &TripartiteBernoulliWithPool{
		third:           third,
		pPrimary:        pPrimary,
		pThirdIfPrimary: pThirdIfPrimary,
		poolSize:        poolSize,
		poolType:        poolType,
	}, nil
}

func (r *TripartiteBernoulliWithPool) Name() string { return connect.RuleTripartiteBernoulliWithPool.String() }
func (r *TripartiteBernoulliWithPool) SupportsSymmetric() bool           { return false }
func (r *TripartiteBernoulliWithPool) CreatesSymmetricConnections() bool { return false }

type tripartiteEdge struct {
	targetIdx int
	sourceIdx int
	thirdIdx  int // -1 when this primary edge has no third-factor edge.
}

func (r *TripartiteBernoulliWithPool) Connect(b *connect.Base) error {
	sourcesLen, targetsLen, thirdLen := b.Sources.Size(), b.Targets.Size(), r.third.Size()

	if r.poolType == PoolBlock {
		contiguousPerTarget := r.poolSize > 1 && targetsLen*r.poolSize == thirdLen
		sharedAcrossGroups := r.poolSize == 1 && thirdLen > 0 && targetsLen%thirdLen == 0
		if !contiguousPerTarget && !sharedAcrossGroups {
			return fmt.Errorf("tripartite_bernoulli_with_pool: pool_type=block requires |targets|*pool_size=|third| or (pool_size=1 and |targets| mod |third|=0): %w", connect.ErrBadProperty)
		}
	}

	syncRNG := b.RNGs.RankSyncedRNG(0)

	var plan []tripartiteEdge
	for ti := 0; ti < targetsLen; ti++ {
		tgtID := b.Targets.At(ti)

		indegree := syncRNG.Binomial(sourcesLen, r.pPrimary)
		primaryIdxs, err := syncRNG.SampleWithoutReplacement(sourcesLen, indegree, nil)
		if err != nil {
			return fmt.Errorf("tripartite_bernoulli_with_pool: target %d primary: %w", tgtID, err)
		}

		pool, err := r.poolFor(ti, targetsLen, thirdLen, syncRNG)
		if err != nil {
			return fmt.Errorf("tripartite_bernoulli_with_pool: target %d pool: %w", tgtID, err)
		}

		for _, si := range primaryIdxs {
			edge := tripartiteEdge{targetIdx: ti, sourceIdx: si, thirdIdx: -1}
			if len(pool) > 0 && syncRNG.Float64() < r.pThirdIfPrimary {
				pick := pool[0]
				if len(pool) > 1 {
					pick = pool[syncRNG.Intn(len(pool))]
				}
				edge.thirdIdx = pick
			}
			plan = append(plan, edge)
		}
	}

	return b.RunPairRegion(func(thread int) error {
		rng := b.RNGs.VPSpecificRNG(thread)
		for _, edge := range plan {
			tgtID := b.Targets.At(edge.targetIdx)
			srcID := b.Sources.At(edge.sourceIdx)

			if b.IsLocalToThread(tgtID, thread) {
				if err := b.SingleConnect(srcID, b.Location.Get(tgtID, thread), thread, rng); err != nil {
					return err
				}
			} else {
				b.SkipConnParameter(thread, 1)
			}

			if edge.thirdIdx < 0 {
				continue
			}
			thirdID := r.third.At(edge.thirdIdx)

			if b.IsLocalToThread(thirdID, thread) {
				if err := b.SingleConnect(srcID, b.Location.Get(thirdID, thread), thread, rng); err != nil {
					return err
				}
			} else {
				b.SkipConnParameter(thread, 1)
			}

			if b.IsLocalToThread(tgtID, thread) {
				if err := b.SingleConnect(thirdID, b.Location.Get(tgtID, thread), thread, rng); err != nil {
					return err
				}
			} else {
				b.SkipConnParameter(thread, 1)
			}
		}
		return nil
	})
}

// poolFor returns the local third-collection indices making up target
// ti's pool, per spec §4.2.8's pool_type rules.
func (r *TripartiteBernoulliWithPool) poolFor(ti, targetsLen, thirdLen int, syncRNG *rngsvc.Stream) ([]int, error) {
	switch r.poolType {
	case PoolBlock:
		if r.poolSize > 1 {
			start := ti * r.poolSize
			pool := make([]int, r.poolSize)
			for i := range pool {
				pool[i] = start + i
			}
			return pool, nil
		}
		groupSize := targetsLen / thirdLen
		return []int{ti / groupSize}, nil
	default:
		return syncRNG.SampleWithoutReplacement(thirdLen, r.poolSize, nil)
	}
}

func (r *TripartiteBernoulliWithPool) Disconnect(b *connect.Base) error {
	return fmt.Errorf("tripartite_bernoulli_with_pool: disconnect is not supported for a stochastic rule: %w", connect.ErrNotImplemented)
}
