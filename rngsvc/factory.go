// SPDX-License-Identifier: MIT
// Package: connbuild/rngsvc
//
// factory.go - Factory, the reference implementation of the RNG factory
// collaborator spec §6 requires ("rank_synced_rng(thread)",
// "vp_specific_rng(thread)").
//
// Rank synchronization across real MPI ranks is out of scope (spec §1 lists
// the MPI manager as an external collaborator); this module simulates a
// single rank with multiple worker threads. Within one rank, "every rank
// makes identical draws" degenerates to "the structure-deciding draws are
// made exactly once, sequentially, before any thread-parallel emission
// begins" - so RankSyncedRNG returns the *same* Stream for every thread,
// and callers are expected to consume it only from the single sequential
// pass a rule performs ahead of its parallel region (see connect.Base and
// the rule implementations under connect/rules). VPSpecificRNG returns an
// independent stream per thread for concurrent, lock-free use.
package rngsvc

// Factory hands out the two RNG resources spec §5 describes, seeded
// deterministically so that re-running a build with the same seed and the
// same thread count reproduces the same draws (spec §8 "Re-running the
// same build with the same seeds produces the same edge set").
type Factory struct {
	rankSynced *Stream
	vpSpecific []*Stream
}

// NewFactory builds a Factory for a simulated rank with numThreads worker
// threads. seed determines every derived stream; changing it (and nothing
// else) changes the whole graph deterministically.
//
// Complexity: O(numThreads).
func NewFactory(seed int64, numThreads int) *Factory {
	f := &Factory{
		rankSynced: newStream(seed),
		vpSpecific: make([]*Stream, numThreads),
	}
	for t := 0; t < numThreads; t++ {
		// Offset by a large odd constant so the per-thread seeds never
		// collide with the rank-synced seed or each other for any
		// reasonable numThreads.
		f.vpSpecific[t] = newStream(seed + 1 + int64(t)*7919)
	}
	return f
}

// RankSyncedRNG returns the single stream shared by every thread for
// structure-deciding draws. The thread argument is accepted (and ignored)
// to satisfy the spec §6 contract `rank_synced_rng(thread)`; the returned
// Stream is the same instance regardless of thread.
func (f *Factory) RankSyncedRNG(thread int) *Stream {
	return f.rankSynced
}

// VPSpecificRNG returns the independent stream owned by the given worker
// thread, used for per-edge attribute sampling and local structural draws.
func (f *Factory) VPSpecificRNG(thread int) *Stream {
	return f.vpSpecific[thread]
}

// NumThreads reports how many VP-specific streams this factory manages.
func (f *Factory) NumThreads() int {
	return len(f.vpSpecific)
}
