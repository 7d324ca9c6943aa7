// SPDX-License-Identifier: MIT
// Package: connbuild/vprt
//
// location.go - Location, a reference connect.NodeLocation over a single
// simulated rank (every node is local; no proxies are ever handed out).

package vprt

import (
	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/nodes"
)

// Location answers node-location queries against a Manager. Since vprt
// never models more than one rank, IsLocal is always true and Get never
// returns a proxy Handle.
type Location struct {
	vps *Manager
}

// NewLocation builds a Location backed by vps.
func NewLocation(vps *Manager) *Location {
	return &Location{vps: vps}
}

// IsLocal always reports true: every node lives on this simulated rank.
func (l *Location) IsLocal(id nodes.ID) bool { return true }

// Get resolves id to a non-proxy Handle for the given worker thread.
// thread is accepted for interface-compatibility; a single-rank simulation
// never needs to hand back a different Handle per thread.
func (l *Location) Get(id nodes.ID, thread int) connect.Handle {
	return connect.Handle{ID: id, IsProxy: false}
}

// LocalNodes is not derivable from a Manager alone; Location has no
// record of which node IDs exist, only how VPs map to threads. Callers
// that need this (e.g. a structural-plasticity scan) should derive it
// from their own nodes.Collection by filtering on IsLocalToThread instead.
func (l *Location) LocalNodes(thread int) []nodes.ID {
	return nil
}

// GetLID returns collection's local index for id, delegating directly to
// nodes.Collection.IndexOf.
func (l *Location) GetLID(id nodes.ID, collection *nodes.Collection) (int, bool) {
	return collection.IndexOf(id)
}
