// SPDX-License-Identifier: MIT
// Package: connbuild/connparam
//
// array.go - the Array variant: indexed by a cursor that advances once per
// *attempted* pair so indexing stays in lockstep across the distributed
// loop (spec §3, invariant I2). These are the "parameters requiring
// skipping".

package connparam

import (
	"fmt"

	"github.com/katalvlaran/connbuild/nodes"
)

// Array is a Parameter backed by a caller-supplied slice, advancing an
// internal cursor on every Value or Skip call. Its length must equal
// either the source or the target collection size (spec §4.2.10); the
// caller (connect.Base, building Parameters from a synapse spec) is
// responsible for checking that against the actual collection sizes,
// since Array itself has no notion of which collection it indexes.
type Array struct {
	longValues   []int64
	doubleValues []float64
	isLong       bool
	cursor       int
}

// NewArrayLong builds an integer-valued Array. expectedLen must match
// len(values); it exists so construction fails loudly when a caller
// passes mismatched data instead of silently truncating.
func NewArrayLong(values []int64, expectedLen int) (*Array, error) {
	if len(values) != expectedLen {
		return nil, fmt.Errorf("NewArrayLong: len=%d want=%d: %w", len(values), expectedLen, ErrArrayLengthMismatch)
	}
	cp := make([]int64, len(values))
	copy(cp, values)
	return &Array{longValues: cp, isLong: true}, nil
}

// NewArrayDouble builds a floating-point-valued Array.
func NewArrayDouble(values []float64, expectedLen int) (*Array, error) {
	if len(values) != expectedLen {
		return nil, fmt.Errorf("NewArrayDouble: len=%d want=%d: %w", len(values), expectedLen, ErrArrayLengthMismatch)
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return &Array{doubleValues: cp}, nil
}

func (a *Array) IsScalar() bool     { return false }
func (a *Array) ProvidesLong() bool { return a.isLong }

// Reset rewinds the cursor to the start, required for the make_symmetric
// replay (spec invariant I5).
func (a *Array) Reset() {
	a.cursor = 0
}

// Len reports the array's fixed length.
func (a *Array) Len() int {
	if a.isLong {
		return len(a.longValues)
	}
	return len(a.doubleValues)
}

func (a *Array) Value(rng Stream, node nodes.ID) (Value, error) {
	if a.cursor >= a.Len() {
		return Value{}, fmt.Errorf("Array.Value: cursor=%d len=%d: %w", a.cursor, a.Len(), ErrArrayExhausted)
	}
	var v Value
	if a.isLong {
		v = Value{Kind: KindLong, Long: a.longValues[a.cursor]}
	} else {
		v = Value{Kind: KindDouble, Double: a.doubleValues[a.cursor]}
	}
	a.cursor++
	return v, nil
}

func (a *Array) RequiresSkipping() bool { return true }

// Skip advances the cursor by n attempted pairs without producing a value,
// the mechanism spec invariant I2 relies on to keep array-indexed
// parameters decomposition-invariant: they must advance even on pairs
// skipped for non-locality.
func (a *Array) Skip(n int) {
	a.cursor += n
}

// Clone returns an independent Array with its own copy of the backing
// values and its own cursor starting at 0, so each worker thread can walk the full
// replicated target loop and land on the same logical index as every
// other thread for any given pair, without racing on a shared cursor.
func (a *Array) Clone() Parameter {
	cp := &Array{isLong: a.isLong}
	if a.isLong {
		cp.longValues = append([]int64(nil), a.longValues...)
	} else {
		cp.doubleValues = append([]float64(nil), a.doubleValues...)
	}
	return cp
}
