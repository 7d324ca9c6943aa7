// SPDX-License-Identifier: MIT
// Package: connbuild/vprt
//
// manager.go - Manager, a reference connect.VPManager for a single
// simulated rank with a fixed number of worker threads and virtual
// processes per thread.

package vprt

import (
	"fmt"

	"github.com/katalvlaran/connbuild/nodes"
)

// Manager assigns every virtual process to exactly one worker thread on
// this (single, simulated) rank, and routes node IDs to VPs by modulus.
// Every VP is local, since vprt never models more than one rank.
type Manager struct {
	numThreads   int
	vpsPerThread int
	threadOfVP   []int
}

// NewManager builds a Manager with numThreads worker threads, each owning
// vpsPerThread virtual processes (spec §6 "thread_to_vps(thread)").
func NewManager(numThreads, vpsPerThread int) (*Manager, error) {
	if numThreads <= 0 {
		return nil, fmt.Errorf("NewManager: numThreads must be positive, got %d", numThreads)
	}
	if vpsPerThread <= 0 {
		return nil, fmt.Errorf("NewManager: vpsPerThread must be positive, got %d", vpsPerThread)
	}

	numVPs := numThreads * vpsPerThread
	threadOfVP := make([]int, numVPs)
	for vp := 0; vp < numVPs; vp++ {
		threadOfVP[vp] = vp % numThreads
	}

	return &Manager{numThreads: numThreads, vpsPerThread: vpsPerThread, threadOfVP: threadOfVP}, nil
}

// NumThreads returns the worker-thread count.
func (m *Manager) NumThreads() int { return m.numThreads }

// NumVPs returns the total virtual-process count.
func (m *Manager) NumVPs() int { return len(m.threadOfVP) }

// ThreadToVPs returns the virtual processes owned by thread.
func (m *Manager) ThreadToVPs(thread int) []int {
	var out []int
	for vp, t := range m.threadOfVP {
		if t == thread {
			out = append(out, vp)
		}
	}
	return out
}

// VPToOwningThread returns the worker thread that owns vp.
func (m *Manager) VPToOwningThread(vp int) int {
	return m.threadOfVP[vp]
}

// IsLocalVP always reports true: vprt never models more than one rank.
func (m *Manager) IsLocalVP(vp int) bool { return true }

// NodeToVP maps a node ID to its owning virtual process by modulus, the
// same "round-robin by global index" placement NEST uses by default.
func (m *Manager) NodeToVP(id nodes.ID) int {
	n := m.NumVPs()
	v := int64(id) % int64(n)
	if v < 0 {
		v += int64(n)
	}
	return int(v)
}
