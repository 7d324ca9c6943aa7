// SPDX-License-Identifier: MIT
// Package: connbuild/rngsvc
//
// stream.go - Stream wraps a *rand.Rand with the sampling primitives every
// rule strategy needs: rejection sampling with replacement (degree rules),
// rejection sampling without replacement (symmetric/tripartite rules), and
// a naive Binomial/truncated-Binomial draw (FixedTotalNumber partitioning,
// SymmetricBernoulli indegree, TripartiteBernoulliWithPool).
//
// Grounded on builder/weight_fn.go's closure-over-*rand.Rand idiom
// (lvlath), generalized from "one value per call" to the structured,
// rejection-bounded draws spec §4.2 describes for each rule.

package rngsvc

import (
	"fmt"
	"math/rand"
)

// MaxRejectionAttempts bounds the rejection-sampling loops used by the
// degree-based and symmetric rules. Spec §4.2.3 treats an unsatisfiable
// rejection loop (e.g. indegree == |sources| with autapses disabled and
// source == target) as a build-time warning, not a runtime hang; this bound
// turns a would-be infinite loop into ErrSamplingExhausted instead.
const MaxRejectionAttempts = 1_000_000

// Stream is a single pseudo-random sequence, either the rank-synced stream
// or one thread's VP-specific stream (see Factory). Stream is not safe for
// concurrent use by multiple goroutines; each VP-specific Stream is owned
// by exactly one worker thread, and the rank-synced Stream is only ever
// consumed from the single sequential "structure decision" pass a rule
// performs before fanning out its parallel emission phase (spec §5).
type Stream struct {
	r *rand.Rand
}

func newStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Intn returns a pseudo-random number in [0, n).
func (s *Stream) Intn(n int) int { return s.r.Intn(n) }

// NormFloat64 returns a normally distributed float64 with mean 0, stddev 1.
func (s *Stream) NormFloat64() float64 { return s.r.NormFloat64() }

// Perm returns a pseudo-random permutation of [0, n).
func (s *Stream) Perm(n int) []int { return s.r.Perm(n) }

// Binomial draws a single sample from Binomial(n, p) by summing n Bernoulli
// trials. Naive but exact, and n is bounded by population sizes in
// practice (spec's rules operate on in-memory node collections).
//
// Complexity: O(n).
func (s *Stream) Binomial(n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	count := 0
	for i := 0; i < n; i++ {
		if s.r.Float64() < p {
			count++
		}
	}
	return count
}

// TruncatedBinomial draws from Binomial(n, p), redrawing while the sample
// is >= ceiling. Used by SymmetricBernoulli (spec §4.2.7: "draw a truncated
// Binomial(|sources|, p) indegree, re-draw while >= |sources|").
//
// Complexity: O(n) expected per draw, bounded by MaxRejectionAttempts total
// redraws.
func (s *Stream) TruncatedBinomial(n int, p float64, ceiling int) (int, error) {
	for attempt := 0; attempt < MaxRejectionAttempts; attempt++ {
		k := s.Binomial(n, p)
		if k < ceiling {
			return k, nil
		}
	}
	return 0, fmt.Errorf("TruncatedBinomial(n=%d,p=%g,ceiling=%d): %w", n, p, ceiling, ErrSamplingExhausted)
}

// SampleWithReplacement draws count indices in [0, n) with replacement,
// redrawing a candidate whenever reject(chosenSoFar, candidate) is true.
// Used by FixedInDegree/FixedOutDegree, whose spec text
// says to "draw ... indices uniformly with replacement ... reject and
// redraw on autapse or (if multapses disabled) duplicate".
//
// Complexity: O(count) expected, bounded by MaxRejectionAttempts per slot.
func (s *Stream) SampleWithReplacement(n, count int, reject func(chosen []int, candidate int) bool) ([]int, error) {
	if count == 0 {
		return nil, nil
	}
	chosen := make([]int, 0, count)
	for len(chosen) < count {
		ok := false
		for attempt := 0; attempt < MaxRejectionAttempts; attempt++ {
			candidate := s.r.Intn(n)
			if reject != nil && reject(chosen, candidate) {
				continue
			}
			chosen = append(chosen, candidate)
			ok = true
			break
		}
		if !ok {
			return nil, fmt.Errorf("SampleWithReplacement(n=%d,count=%d): %w", n, count, ErrSamplingExhausted)
		}
	}
	return chosen, nil
}

// SampleWithoutReplacement draws count distinct indices from [0, n) via
// rejection sampling, skipping any candidate for which exclude returns
// true. Used by SymmetricBernoulli (distinct sources per target) and
// TripartiteBernoulliWithPool (sampling sources/third-pool members without
// replacement).
//
// Complexity: O(count) expected, bounded by MaxRejectionAttempts per slot.
func (s *Stream) SampleWithoutReplacement(n, count int, exclude func(candidate int) bool) ([]int, error) {
	if count == 0 {
		return nil, nil
	}
	seen := make(map[int]struct{}, count)
	chosen := make([]int, 0, count)
	for len(chosen) < count {
		ok := false
		for attempt := 0; attempt < MaxRejectionAttempts; attempt++ {
			candidate := s.r.Intn(n)
			if _, dup := seen[candidate]; dup {
				continue
			}
			if exclude != nil && exclude(candidate) {
				continue
			}
			seen[candidate] = struct{}{}
			chosen = append(chosen, candidate)
			ok = true
			break
		}
		if !ok {
			return nil, fmt.Errorf("SampleWithoutReplacement(n=%d,count=%d): %w", n, count, ErrSamplingExhausted)
		}
	}
	return chosen, nil
}
