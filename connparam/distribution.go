// SPDX-License-Identifier: MIT
// Package: connbuild/connparam
//
// distribution.go - the Distribution variant: samples from a named
// distribution using the RNG the rule passes to Value (spec §3).

package connparam

import "github.com/katalvlaran/connbuild/nodes"

// Sampler draws one value from a distribution given an RNG stream. It is
// the caller-supplied "named distribution" of spec §3; connbuild does not
// hardcode any specific distribution family so that model-level code
// (out of scope per spec §1) owns the actual shapes (normal, uniform,
// lognormal, ...).
type Sampler func(rng Stream) Value

// Distribution is a Parameter that samples afresh on every call.
type Distribution struct {
	sample Sampler
	isLong bool
}

// NewDistribution wraps sample as a double-producing Parameter.
func NewDistribution(sample Sampler) *Distribution {
	return &Distribution{sample: sample}
}

// NewLongDistribution wraps sample as a long-producing Parameter, used for
// attributes like synapse delay expressed in discrete simulation steps.
func NewLongDistribution(sample Sampler) *Distribution {
	return &Distribution{sample: sample, isLong: true}
}

func (d *Distribution) IsScalar() bool     { return false }
func (d *Distribution) ProvidesLong() bool { return d.isLong }

// Reset is a no-op: a Distribution's only state is the RNG stream it is
// handed, which is owned and reset by its caller, not by the Parameter
// itself.
func (d *Distribution) Reset() {}

func (d *Distribution) Value(rng Stream, node nodes.ID) (Value, error) {
	if rng == nil {
		return Value{}, ErrDistributionNeedsRNG
	}
	v := d.sample(rng)
	if d.isLong {
		v.Kind = KindLong
	} else {
		v.Kind = KindDouble
	}
	return v, nil
}

func (d *Distribution) RequiresSkipping() bool { return false }
func (d *Distribution) Skip(n int)             {}

// Clone returns d itself: a Distribution's only state is the RNG stream
// its caller passes in on every call, so sharing the single instance
// across threads is safe.
func (d *Distribution) Clone() Parameter { return d }
