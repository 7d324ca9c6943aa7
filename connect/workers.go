// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// workers.go - the fixed-size parallel worker region of spec §5 ("Parallel
// worker threads (team size = number of worker threads on this rank) for
// every build") and the per-thread captured-failure handoff of spec §9.
//
// Grounded on golang.org/x/sync/errgroup, already present in the example
// pack's dependency graph (SynapticNetworks-temporal-neuron's nested
// experiments module) and the idiomatic Go replacement for a hand-rolled
// sync.WaitGroup-plus-mutex worker team with first-error capture.

package connect

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunWorkers runs fn once per worker thread in [0, VPs.NumThreads()).
// Every worker's panic is recovered and turned into a wrapped thread
// error (spec §4.2 "every worker catches any exception it raises... it
// never lets an exception cross the parallel boundary"); after all
// workers finish, the first populated per-thread slot (by thread index,
// not completion order) is returned, matching spec §9's "A post-region
// pass converts the first populated slot into a caller-visible error;
// others are suppressed".
func (b *Base) RunWorkers(fn func(thread int) error) error {
	numThreads := b.VPs.NumThreads()
	b.threadErrs = make([]error, numThreads)

	g := new(errgroup.Group)
	for t := 0; t < numThreads; t++ {
		thread := t
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("worker thread %d panicked: %v: %w", thread, r, ErrWrappedThreadException)
				}
				if err != nil {
					b.threadErrs[thread] = err
				}
			}()
			return fn(thread)
		})
	}
	_ = g.Wait() // every worker has now exited cleanly; no exception crossed the boundary unwrapped.

	for _, err := range b.threadErrs {
		if err != nil {
			return err
		}
	}
	return nil
}

// RunPairRegion is the entry point every rule uses for its target-loop pass
// (spec §4.2). It is RunWorkers under a name that documents intent at the
// call site: each worker thread walks the full, replicated target
// collection and owns its own SynapseSpec parameter clones (see
// connparam.Parameter.Clone and SynapseSpec.WeightFor/DelayFor/AttrFor), so
// an Array parameter's cursor advances deterministically within a thread
// regardless of what any other thread is doing concurrently - invariant I2
// holds without serializing the region.
func (b *Base) RunPairRegion(fn func(thread int) error) error {
	return b.RunWorkers(fn)
}
