// SPDX-License-Identifier: MIT
// Package: connbuild/nodes
//
// errors.go - sentinel errors for the nodes package.

package nodes

import "errors"

// ErrEmptyCollection indicates a Collection was constructed with no IDs.
// NewCollection returns it for an empty ID list, so an empty source or
// target collection never reaches a rule.
var ErrEmptyCollection = errors.New("nodes: collection is empty")

// ErrDuplicateID indicates NewCollection received the same ID more than
// once; a Collection models a set, not a multiset.
var ErrDuplicateID = errors.New("nodes: duplicate id")
