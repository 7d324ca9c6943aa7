// SPDX-License-Identifier: MIT
// Package: connbuild/connstore
//
// store.go - Store, a mutex-guarded in-memory connect.ConnectionStore.

package connstore

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connparam"
	"github.com/katalvlaran/connbuild/nodes"
)

// Connection is one stored edge: a source node, a target Handle, the
// resolved synapse model, the worker thread that emitted it, and its
// attribute/delay/weight values. Weight and Delay are nil when the synapse
// spec never supplied them, meaning "use the model default" (spec §6).
type Connection struct {
	ID     string
	Src    nodes.ID
	Target connect.Handle
	Thread int
	Model  connect.ModelID
	Attrs  map[string]connparam.Value
	Delay  *float64
	Weight *float64
}

// Store is a thread-safe connect.ConnectionStore. mu guards conns; nextID
// is bumped atomically so callers never need to hold mu just to mint an
// ID, mirroring core.Graph's nextEdgeID.
type Store struct {
	mu     sync.RWMutex
	conns  map[string]*Connection
	nextID uint64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{conns: make(map[string]*Connection)}
}

// Connect records one connection. It never rejects on duplicate
// (src, target, model) pairs; multapse suppression is the calling rule's
// responsibility (spec §4.2's "reject and redraw on ... duplicate"), not
// the store's.
func (s *Store) Connect(src nodes.ID, target connect.Handle, thread int, model connect.ModelID, attrs map[string]connparam.Value, delay, weight *float64) error {
	id := s.nextConnID()

	cp := make(map[string]connparam.Value, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}

	c := &Connection{
		ID:     id,
		Src:    src,
		Target: target,
		Thread: thread,
		Model:  model,
		Attrs:  cp,
		Delay:  delay,
		Weight: weight,
	}

	s.mu.Lock()
	s.conns[id] = c
	s.mu.Unlock()
	return nil
}

// Disconnect removes one connection matching (src, target, model, thread),
// an arbitrary one if multapses produced several. It is a no-op, not an
// error, if no match exists.
func (s *Store) Disconnect(src nodes.ID, target connect.Handle, thread int, model connect.ModelID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.conns {
		if c.Src == src && c.Target.ID == target.ID && c.Thread == thread && c.Model == model {
			delete(s.conns, id)
			return nil
		}
	}
	return nil
}

// Count returns the number of connections currently stored.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conns)
}

// Connections returns a snapshot of every stored connection. The returned
// slice is a copy; mutating it does not affect the Store.
func (s *Store) Connections() []*Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Connection, 0, len(s.conns))
	for _, c := range s.conns {
		out = append(out, c)
	}
	return out
}

// HasConnection reports whether any stored connection joins src and
// target.ID regardless of model or thread.
func (s *Store) HasConnection(src, target nodes.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conns {
		if c.Src == src && c.Target.ID == target {
			return true
		}
	}
	return false
}

func (s *Store) nextConnID() string {
	n := atomic.AddUint64(&s.nextID, 1)
	return "c" + strconv.FormatUint(n, 10)
}
