// SPDX-License-Identifier: MIT
// Package: connbuild/connparam
//
// parameter.go - the Parameter interface and the Value it produces.

package connparam

import "github.com/katalvlaran/connbuild/nodes"

// Kind tags whether a Value carries an integer or a floating-point number.
// Synapse scratch dictionaries (spec §3 SynapseSpec) need the numeric kind
// fixed at build time per attribute, which Kind exists to express.
type Kind int

const (
	// KindLong marks a Value whose Long field is meaningful.
	KindLong Kind = iota
	// KindDouble marks a Value whose Double field is meaningful.
	KindDouble
)

// Value is the scalar a Parameter produces for one (source, target) pair.
type Value struct {
	Kind   Kind
	Long   int64
	Double float64
}

// AsFloat64 returns the value as a float64 regardless of Kind, the form the
// connection storage and most attribute consumers want.
func (v Value) AsFloat64() float64 {
	if v.Kind == KindLong {
		return float64(v.Long)
	}
	return v.Double
}

// Parameter is a polymorphic value producer (spec §3 ConnParameter).
// Implementations need only be safe for use by a single goroutine; the
// builder gives every synapse type and worker thread its own Clone, and
// only stateless implementations (Constant, Distribution) return the same
// instance from Clone and so are shared across worker threads.
type Parameter interface {
	// IsScalar reports whether every call to Value returns the same
	// result regardless of rng/node (true for Constant, false otherwise).
	IsScalar() bool

	// ProvidesLong reports whether this parameter's natural Kind is
	// KindLong, used by the builder to pick the scratch dictionary's
	// numeric kind at build time (spec invariant I1).
	ProvidesLong() bool

	// Reset restores the parameter to its initial deterministic state.
	// Required for the make_symmetric replay (spec invariant I5): an
	// asymmetric run followed by a swapped-endpoints run must produce
	// identical draws, which requires every Parameter's internal state
	// (distribution RNG consumption aside, array cursors in particular)
	// to restart from scratch.
	Reset()

	// Value produces the parameter's value for one attempted pair. Constant
	// and Array parameters ignore rng (it may be nil; they never consume
	// randomness); Distribution parameters require a non-nil rng.
	Value(rng Stream, node nodes.ID) (Value, error)

	// RequiresSkipping reports whether this parameter's internal cursor
	// must be advanced even on pairs that are not locally emitted (spec
	// invariant I2). Only Array parameters return true.
	RequiresSkipping() bool

	// Skip advances the parameter's cursor by n attempted pairs without
	// producing a value. Only meaningful (and only ever called) when
	// RequiresSkipping reports true; other implementations no-op.
	Skip(n int)

	// Clone returns a parameter with the same configuration (constant
	// value, distribution function, array values) but its own cursor
	// state; implementations without mutable state may return themselves.
	// The builder clones one
	// Parameter per worker thread so each thread can walk the full,
	// replicated target-loop iteration (spec §4.2's "target-loop") and
	// advance its own array cursor without racing another thread's
	// (spec invariant I2: the array value delivered for a given pair is
	// independent of rank/thread count, which requires each thread's
	// cursor to reach the identical position when it processes that
	// pair, regardless of decomposition).
	Clone() Parameter
}

// Stream is the minimal RNG surface a Distribution parameter consumes. It
// is satisfied by *rngsvc.Stream; declaring it here (instead of importing
// rngsvc) keeps connparam free of a dependency on the RNG service package,
// since connparam only needs to call into whatever stream the rule handed
// it.
type Stream interface {
	Float64() float64
	NormFloat64() float64
	Intn(n int) int
}
