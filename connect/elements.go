// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// elements.go - per-node synaptic-element counters for structural
// plasticity (spec §3, §4.1 "change_connected_synaptic_elements").

package connect

import (
	"sync"

	"github.com/katalvlaran/connbuild/nodes"
)

// ElementCounters tracks, per node, how many pre- and post-synaptic
// elements are currently consumed by connections this builder created.
// Mutated only by the thread that owns the node's virtual process (spec
// §5 "Synaptic-element counters: mutated only by the thread that owns the
// endpoint"); the mutex exists only to make concurrent reads from tests or
// diagnostics safe, not because two worker threads are ever expected to
// race on the same node.
type ElementCounters struct {
	mu   sync.Mutex
	pre  map[nodes.ID]int
	post map[nodes.ID]int
}

// NewElementCounters returns an empty ElementCounters.
func NewElementCounters() *ElementCounters {
	return &ElementCounters{pre: make(map[nodes.ID]int), post: make(map[nodes.ID]int)}
}

// AddPre adjusts id's pre-synaptic element count by delta.
func (c *ElementCounters) AddPre(id nodes.ID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pre[id] += delta
}

// AddPost adjusts id's post-synaptic element count by delta.
func (c *ElementCounters) AddPost(id nodes.ID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.post[id] += delta
}

// Pre returns id's current pre-synaptic element count.
func (c *ElementCounters) Pre(id nodes.ID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pre[id]
}

// Post returns id's current post-synaptic element count.
func (c *ElementCounters) Post(id nodes.ID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.post[id]
}
