// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// synapsespec.go - SynapseSpec (spec §3 "SynapseSpec (internal state per
// synapse type k)") and ConnParameter construction from a raw spec map
// (spec §4.2.10).

package connect

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connparam"
)

// reservedSkipKeys are the synapse-spec keys that are never turned into a
// ConnParameter attribute: weight and delay get their own dedicated
// pipelines, min_delay/max_delay/num_connections are rule bookkeeping and
// are not used by the builder, synapse_model is the model selector, and the two
// structural-plasticity element names are consumed directly by NewBase.
var reservedSkipKeys = map[string]struct{}{
	"weight":                {},
	"delay":                 {},
	"min_delay":             {},
	"max_delay":             {},
	"num_connections":       {},
	"synapse_model":         {},
	"pre_synaptic_element":  {},
	"post_synaptic_element": {},
}

// SynapseSpec bundles everything the builder needs for one synapse type:
// the resolved model, optional weight/delay pipelines (nil means "use the
// model default", which selects a faster emission path), the remaining
// settable attributes, and one pre-allocated scratch dictionary per worker
// thread (spec invariant I1: "the numeric kind fixed at build time").
//
// Weight, Delay and Attrs are the canonical parameter instances (the
// ResetParameters target for the make_symmetric replay); weightPerThread,
// delayPerThread and attrsPerThread are per-worker-thread Parameter clones
// (see connparam.Parameter.Clone) so every thread can walk the full,
// replicated target loop and advance its own array-parameter cursor
// without racing another thread's.
type SynapseSpec struct {
	Name  string
	Model ModelID

	WeightUserSupplied bool
	DelayUserSupplied  bool
	Weight              connparam.Parameter
	Delay               connparam.Parameter
	Attrs               map[string]connparam.Parameter

	weightPerThread []connparam.Parameter
	delayPerThread  []connparam.Parameter
	attrsPerThread  []map[string]connparam.Parameter

	PreElement  string
	PostElement string

	scratch []map[string]connparam.Value
}

// WeightFor returns this thread's clone of the weight parameter, or nil if
// weight was not user-supplied.
func (s *SynapseSpec) WeightFor(thread int) connparam.Parameter {
	if s.weightPerThread == nil {
		return nil
	}
	return s.weightPerThread[thread]
}

// DelayFor returns this thread's clone of the delay parameter, or nil if
// delay was not user-supplied.
func (s *SynapseSpec) DelayFor(thread int) connparam.Parameter {
	if s.delayPerThread == nil {
		return nil
	}
	return s.delayPerThread[thread]
}

// AttrFor returns this thread's clone of the named attribute parameter.
func (s *SynapseSpec) AttrFor(thread int, name string) connparam.Parameter {
	return s.attrsPerThread[thread][name]
}

// AttrNames returns the names of every settable attribute this synapse
// spec carries (excluding weight/delay), in no particular order.
func (s *SynapseSpec) AttrNames() []string {
	names := make([]string, 0, len(s.Attrs))
	for name := range s.Attrs {
		names = append(names, name)
	}
	return names
}

// newSynapseSpec resolves one raw synapse-spec map (spec §6 "each
// recognizes synapse_model (required), weight, delay,
// pre_synaptic_element, post_synaptic_element, plus any model-declared
// attribute") into a SynapseSpec, allocating numThreads scratch
// dictionaries.
func newSynapseSpec(raw map[string]any, models SynapseModelRegistry, numThreads, sourcesLen, targetsLen int) (*SynapseSpec, error) {
	nameRaw, ok := raw["synapse_model"]
	if !ok {
		return nil, fmt.Errorf("newSynapseSpec: missing synapse_model: %w", ErrBadProperty)
	}
	name, ok := nameRaw.(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("newSynapseSpec: synapse_model must be a non-empty string: %w", ErrBadProperty)
	}

	model, err := models.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("newSynapseSpec: %q: %w", name, ErrUnknownSynapseType)
	}
	if err := models.CheckSynapseParams(model, raw); err != nil {
		return nil, fmt.Errorf("newSynapseSpec: %q: %w", name, err)
	}

	spec := &SynapseSpec{Name: name, Model: model}

	if w, ok := raw["weight"]; ok {
		p, err := resolveParameter(w, sourcesLen, targetsLen)
		if err != nil {
			return nil, fmt.Errorf("newSynapseSpec: %q: weight: %w", name, err)
		}
		spec.Weight = p
		spec.WeightUserSupplied = true
	}
	if d, ok := raw["delay"]; ok {
		p, err := resolveParameter(d, sourcesLen, targetsLen)
		if err != nil {
			return nil, fmt.Errorf("newSynapseSpec: %q: delay: %w", name, err)
		}
		spec.Delay = p
		spec.DelayUserSupplied = true
	}

	spec.Attrs = make(map[string]connparam.Parameter)
	for key, val := range raw {
		if _, skip := reservedSkipKeys[key]; skip {
			continue
		}
		p, err := resolveParameter(val, sourcesLen, targetsLen)
		if err != nil {
			return nil, fmt.Errorf("newSynapseSpec: %q: attribute %q: %w", name, key, err)
		}
		spec.Attrs[key] = p
	}

	if pe, ok := raw["pre_synaptic_element"]; ok {
		s, ok := pe.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("newSynapseSpec: %q: pre_synaptic_element must be a non-empty string: %w", name, ErrBadProperty)
		}
		spec.PreElement = s
	}
	if pe, ok := raw["post_synaptic_element"]; ok {
		s, ok := pe.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("newSynapseSpec: %q: post_synaptic_element must be a non-empty string: %w", name, ErrBadProperty)
		}
		spec.PostElement = s
	}

	spec.scratch = make([]map[string]connparam.Value, numThreads)
	for t := range spec.scratch {
		spec.scratch[t] = make(map[string]connparam.Value, len(spec.Attrs))
	}

	if spec.Weight != nil {
		spec.weightPerThread = make([]connparam.Parameter, numThreads)
		for t := range spec.weightPerThread {
			spec.weightPerThread[t] = spec.Weight.Clone()
		}
	}
	if spec.Delay != nil {
		spec.delayPerThread = make([]connparam.Parameter, numThreads)
		for t := range spec.delayPerThread {
			spec.delayPerThread[t] = spec.Delay.Clone()
		}
	}
	spec.attrsPerThread = make([]map[string]connparam.Parameter, numThreads)
	for t := range spec.attrsPerThread {
		clones := make(map[string]connparam.Parameter, len(spec.Attrs))
		for key, p := range spec.Attrs {
			clones[key] = p.Clone()
		}
		spec.attrsPerThread[t] = clones
	}

	return spec, nil
}

// ResetParameters restores every ConnParameter owned by this spec to its
// initial deterministic state, used by the make_symmetric replay (spec
// invariant I5).
func (s *SynapseSpec) ResetParameters() {
	if s.Weight != nil {
		s.Weight.Reset()
		for _, p := range s.weightPerThread {
			p.Reset()
		}
	}
	if s.Delay != nil {
		s.Delay.Reset()
		for _, p := range s.delayPerThread {
			p.Reset()
		}
	}
	for _, p := range s.Attrs {
		p.Reset()
	}
	for _, clones := range s.attrsPerThread {
		for _, p := range clones {
			p.Reset()
		}
	}
}

// resolveParameter implements the ConnParameter creation rules of spec
// §4.2.10: a numeric literal becomes a Constant, a Sampler becomes a
// Distribution, and a slice whose length matches one of the two
// collections becomes an Array ("requires skipping").
func resolveParameter(v any, sourcesLen, targetsLen int) (connparam.Parameter, error) {
	switch val := v.(type) {
	case connparam.Parameter:
		return val, nil
	case connparam.Sampler:
		return connparam.NewDistribution(val), nil
	case int:
		return connparam.NewConstantLong(int64(val)), nil
	case int64:
		return connparam.NewConstantLong(val), nil
	case float64:
		return connparam.NewConstantDouble(val), nil
	case []float64:
		switch len(val) {
		case sourcesLen:
			return connparam.NewArrayDouble(val, sourcesLen)
		case targetsLen:
			return connparam.NewArrayDouble(val, targetsLen)
		default:
			return nil, fmt.Errorf("resolveParameter: array length %d matches neither |sources|=%d nor |targets|=%d: %w", len(val), sourcesLen, targetsLen, ErrBadProperty)
		}
	case []int64:
		switch len(val) {
		case sourcesLen:
			return connparam.NewArrayLong(val, sourcesLen)
		case targetsLen:
			return connparam.NewArrayLong(val, targetsLen)
		default:
			return nil, fmt.Errorf("resolveParameter: array length %d matches neither |sources|=%d nor |targets|=%d: %w", len(val), sourcesLen, targetsLen, ErrBadProperty)
		}
	default:
		return nil, fmt.Errorf("resolveParameter: unsupported parameter spec type %T: %w", v, ErrBadProperty)
	}
}
