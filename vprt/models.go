// SPDX-License-Identifier: MIT
// Package: connbuild/vprt
//
// models.go - ModelRegistry, a reference connect.SynapseModelRegistry
// mapping synapse model names to defaults, a symmetry requirement flag,
// and an accepted-parameter set.

package vprt

import (
	"fmt"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connparam"
)

// modelDef is one registered synapse model's static properties.
type modelDef struct {
	id                connect.ModelID
	defaults          map[string]connparam.Value
	requiresSymmetric bool
	accepted          map[string]struct{}
}

// ModelRegistry is a small, static connect.SynapseModelRegistry built by
// RegisterModel calls. It never mutates after a build starts.
type ModelRegistry struct {
	byName map[string]*modelDef
	nextID connect.ModelID
}

// NewModelRegistry returns an empty ModelRegistry.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{byName: make(map[string]*modelDef)}
}

// RegisterModel adds a synapse model named name with the given defaults
// and symmetry requirement. acceptedExtra lists additional attribute keys
// (beyond weight/delay) the model accepts; CheckSynapseParams rejects any
// other key. Returns the assigned ModelID.
func (r *ModelRegistry) RegisterModel(name string, defaults map[string]connparam.Value, requiresSymmetric bool, acceptedExtra ...string) connect.ModelID {
	id := r.nextID
	r.nextID++

	accepted := make(map[string]struct{}, len(acceptedExtra)+2)
	accepted["weight"] = struct{}{}
	accepted["delay"] = struct{}{}
	for _, k := range acceptedExtra {
		accepted[k] = struct{}{}
	}

	r.byName[name] = &modelDef{id: id, defaults: defaults, requiresSymmetric: requiresSymmetric, accepted: accepted}
	return id
}

// Resolve looks up model by name.
func (r *ModelRegistry) Resolve(name string) (connect.ModelID, error) {
	def, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("ModelRegistry.Resolve: %q is not registered: %w", name, connect.ErrUnknownSynapseType)
	}
	return def.id, nil
}

// Defaults returns model's default attribute values.
func (r *ModelRegistry) Defaults(model connect.ModelID) map[string]connparam.Value {
	for _, def := range r.byName {
		if def.id == model {
			out := make(map[string]connparam.Value, len(def.defaults))
			for k, v := range def.defaults {
				out[k] = v
			}
			return out
		}
	}
	return nil
}

// RequiresSymmetric reports whether model demands symmetric connectivity.
func (r *ModelRegistry) RequiresSymmetric(model connect.ModelID) bool {
	for _, def := range r.byName {
		if def.id == model {
			return def.requiresSymmetric
		}
	}
	return false
}

// CheckSynapseParams rejects any spec key outside the synapse_model,
// pre/post_synaptic_element, min_delay, max_delay and num_connections
// bookkeeping keys and the model's accepted set.
func (r *ModelRegistry) CheckSynapseParams(model connect.ModelID, spec map[string]any) error {
	var def *modelDef
	for _, d := range r.byName {
		if d.id == model {
			def = d
			break
		}
	}
	if def == nil {
		return fmt.Errorf("ModelRegistry.CheckSynapseParams: unknown model id %d", model)
	}

	reserved := map[string]struct{}{
		"synapse_model":         {},
		"pre_synaptic_element":  {},
		"post_synaptic_element": {},
		"min_delay":             {},
		"max_delay":             {},
		"num_connections":       {},
	}
	for key := range spec {
		if _, ok := reserved[key]; ok {
			continue
		}
		if _, ok := def.accepted[key]; !ok {
			return fmt.Errorf("ModelRegistry.CheckSynapseParams: attribute %q is not accepted by this model", key)
		}
	}
	return nil
}
