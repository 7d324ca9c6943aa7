// SPDX-License-Identifier: MIT
// Package: connbuild/connparam
//
// constant.go - the Constant scalar variant (spec §3 "Constant scalar
// (double or long)").

package connparam

import "github.com/katalvlaran/connbuild/nodes"

// Constant is a fixed scalar value, independent of rng and node.
type Constant struct {
	value Value
}

// NewConstantLong returns a Constant producing the given integer value.
func NewConstantLong(v int64) *Constant {
	return &Constant{value: Value{Kind: KindLong, Long: v}}
}

// NewConstantDouble returns a Constant producing the given floating-point
// value.
func NewConstantDouble(v float64) *Constant {
	return &Constant{value: Value{Kind: KindDouble, Double: v}}
}

func (c *Constant) IsScalar() bool     { return true }
func (c *Constant) ProvidesLong() bool { return c.value.Kind == KindLong }
func (c *Constant) Reset()             {}

func (c *Constant) Value(rng Stream, node nodes.ID) (Value, error) {
	return c.value, nil
}

func (c *Constant) RequiresSkipping() bool { return false }
func (c *Constant) Skip(n int)             {}

// Clone returns c itself: a Constant carries no mutable state, so sharing
// the single instance across threads is safe.
func (c *Constant) Clone() Parameter { return c }
