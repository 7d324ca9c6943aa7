// SPDX-License-Identifier: MIT
// Package: connbuild/nodes
//
// collection.go - the NodeCollection data type (spec §3).
//
// Contract (strict):
//   - A Collection is built once via NewCollection and never mutated again;
//     callers that need a different node set build a new Collection.
//   - IndexOf is the reverse lookup ("local index within collection")
//     vprt.Location.GetLID relies on.
//   - Duplicate IDs are rejected at construction: every rule's size-based
//     arithmetic (|sources|, |targets|) assumes a set, not a multiset.
//
// Grounded on core/types.go's map-backed Vertex catalog (lvlath), generalized
// from a mutable, mutex-guarded vertex map to an immutable ordered ID slice
// with an accompanying reverse-index map; no locking is needed because a
// Collection is read-only for the lifetime of a build (spec §3 "Lifecycles").

package nodes

import "fmt"

// ID identifies a single node. The simulator hands out dense, caller-defined
// integer identifiers; connbuild never interprets them beyond equality and
// ordering within a Collection.
type ID int64

// Collection is an ordered, finite, duplicate-free sequence of node IDs with
// O(1) forward (index->ID) and reverse (ID->index) lookup.
type Collection struct {
	ids   []ID
	index map[ID]int
}

// NewCollection builds a Collection from ids, preserving their given order.
// Returns ErrEmptyCollection if ids is empty and ErrDuplicateID on the first
// repeated identifier encountered.
//
// Complexity: O(n) time, O(n) space.
func NewCollection(ids []ID) (*Collection, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyCollection
	}

	index := make(map[ID]int, len(ids))
	cp := make([]ID, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("NewCollection: id %d: %w", id, ErrDuplicateID)
		}
		index[id] = i
		cp[i] = id
	}

	return &Collection{ids: cp, index: index}, nil
}

// Size returns the number of nodes in the collection.
// Complexity: O(1).
func (c *Collection) Size() int {
	return len(c.ids)
}

// At returns the node ID at the given index. Panics if idx is out of range,
// since every caller derives idx from Size() and a correct loop bound is a
// programmer invariant, not a runtime condition.
// Complexity: O(1).
func (c *Collection) At(idx int) ID {
	return c.ids[idx]
}

// IDs returns the collection's IDs in their original order. The returned
// slice is a copy; mutating it does not affect the Collection.
// Complexity: O(n) time, O(n) space.
func (c *Collection) IDs() []ID {
	out := make([]ID, len(c.ids))
	copy(out, c.ids)
	return out
}

// IndexOf returns the local index of id within the collection and true, or
// (0, false) if id is not a member. This is the "reverse local index within
// collection" lookup spec §3 requires.
// Complexity: O(1).
func (c *Collection) IndexOf(id ID) (int, bool) {
	idx, ok := c.index[id]
	return idx, ok
}

// Contains reports whether id is a member of the collection.
// Complexity: O(1).
func (c *Collection) Contains(id ID) bool {
	_, ok := c.index[id]
	return ok
}
