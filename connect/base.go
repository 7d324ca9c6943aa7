// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// base.go - Base, the builder base of spec §4.1: construction, the public
// connect()/disconnect() dispatch, and the helpers rules use
// (single_connect, change_connected_synaptic_elements, skip_conn_parameter).
//
// Grounded on lvlath's builder.BuildGraph (builder/api.go): one orchestrator
// resolves configuration, then hands control to the caller-supplied
// strategy, wrapping any error once at the boundary. Base.Connect plays the
// same role for a Rule instead of a Constructor.

package connect

import (
	"fmt"

	"github.com/katalvlaran/connbuild/nodes"
	"github.com/katalvlaran/connbuild/rngsvc"
)

// Collaborators bundles the five external contracts spec §6 names. Base
// never constructs these itself; a caller wires in the simulator's real
// registry/storage/location/VP-manager/RNG-factory, or the reference
// implementations under vprt for testing.
type Collaborators struct {
	Models   SynapseModelRegistry
	Store    ConnectionStore
	Location NodeLocation
	VPs      VPManager
	RNGs     RNGFactory
}

// BaseOption customizes Base construction, mirroring lvlath's
// BuilderOption/builderConfig functional-option idiom (builder/options.go).
type BaseOption func(*baseParams)

type baseParams struct {
	allowAutapses  bool
	allowMultapses bool
	makeSymmetric  bool
}

func defaultBaseParams() baseParams {
	return baseParams{allowAutapses: true, allowMultapses: true, makeSymmetric: false}
}

// WithAutapses sets allow_autapses (default true per spec §6).
func WithAutapses(allow bool) BaseOption {
	return func(p *baseParams) { p.allowAutapses = allow }
}

// WithMultapses sets allow_multapses (default true per spec §6).
func WithMultapses(allow bool) BaseOption {
	return func(p *baseParams) { p.allowMultapses = allow }
}

// WithMakeSymmetric sets make_symmetric (default false per spec §6).
func WithMakeSymmetric(on bool) BaseOption {
	return func(p *baseParams) { p.makeSymmetric = on }
}

// Base is the builder state of spec §3 "Builder state".
type Base struct {
	Sources *nodes.Collection
	Targets *nodes.Collection

	AllowAutapses  bool
	AllowMultapses bool
	MakeSymmetric  bool

	UseStructuralPlasticity bool
	PreElementName          string
	PostElementName         string

	Synapses []*SynapseSpec

	Models   SynapseModelRegistry
	Store    ConnectionStore
	Location NodeLocation
	VPs      VPManager
	RNGs     RNGFactory

	Diagnostics []Diagnostic

	elements   *ElementCounters
	threadErrs []error
}

// NewBase validates and constructs a Base from two node collections, a
// list of raw synapse-spec maps (spec §6 "A list of synapse specs"), the
// external collaborators, and any rule-parameter options.
//
// Construction resolves every synapse model, builds its ConnParameter
// pipelines and per-thread scratch dictionaries, and detects structural
// plasticity mode (spec §4.1 "If any synapse spec carries
// pre_synaptic_element and/or post_synaptic_element").
func NewBase(sources, targets *nodes.Collection, synapseSpecs []map[string]any, collab Collaborators, opts ...BaseOption) (*Base, error) {
	if sources == nil || targets == nil {
		return nil, fmt.Errorf("NewBase: nil node collection: %w", ErrBadProperty)
	}
	if len(synapseSpecs) == 0 {
		return nil, fmt.Errorf("NewBase: at least one synapse spec is required: %w", ErrBadProperty)
	}
	if collab.VPs == nil {
		return nil, fmt.Errorf("NewBase: nil VP manager: %w", ErrBadProperty)
	}

	params := defaultBaseParams()
	for _, opt := range opts {
		opt(&params)
	}

	b := &Base{
		Sources:        sources,
		Targets:        targets,
		AllowAutapses:  params.allowAutapses,
		AllowMultapses: params.allowMultapses,
		MakeSymmetric:  params.makeSymmetric,
		Models:         collab.Models,
		Store:          collab.Store,
		Location:       collab.Location,
		VPs:            collab.VPs,
		RNGs:           collab.RNGs,
	}

	numThreads := collab.VPs.NumThreads()
	sourcesLen, targetsLen := sources.Size(), targets.Size()

	for _, raw := range synapseSpecs {
		syn, err := newSynapseSpec(raw, collab.Models, numThreads, sourcesLen, targetsLen)
		if err != nil {
			return nil, err
		}
		if syn.PreElement != "" || syn.PostElement != "" {
			if syn.PreElement == "" || syn.PostElement == "" {
				return nil, fmt.Errorf("NewBase: synapse %q: both pre_synaptic_element and post_synaptic_element must be set: %w", syn.Name, ErrBadProperty)
			}
			b.UseStructuralPlasticity = true
			b.PreElementName = syn.PreElement
			b.PostElementName = syn.PostElement
		}
		b.Synapses = append(b.Synapses, syn)
	}

	if b.UseStructuralPlasticity {
		if len(b.Synapses) != 1 {
			return nil, fmt.Errorf("NewBase: structural plasticity requires exactly one synapse spec: %w", ErrKernelException)
		}
		if b.MakeSymmetric {
			return nil, fmt.Errorf("NewBase: structural plasticity is incompatible with make_symmetric: %w", ErrNotImplemented)
		}
		b.elements = NewElementCounters()
	}

	return b, nil
}

// Elements returns the structural-plasticity element counters, or nil if
// this Base was not built in structural-plasticity mode.
func (b *Base) Elements() *ElementCounters {
	return b.elements
}

// validateSymmetryRequirements implements spec §4.1 connect() validation
// (a)/(b): any synapse model that requires symmetric connectivity must be
// satisfied by either an intrinsically symmetric rule or make_symmetric;
// and make_symmetric itself requires the rule to support it.
func (b *Base) validateSymmetryRequirements(rule Rule) error {
	for _, syn := range b.Synapses {
		if b.Models.RequiresSymmetric(syn.Model) && !rule.CreatesSymmetricConnections() && !b.MakeSymmetric {
			return fmt.Errorf("Connect: synapse %q requires symmetric connectivity but rule %s is not symmetric and make_symmetric is off: %w", syn.Name, rule.Name(), ErrNotImplemented)
		}
	}
	if b.MakeSymmetric && !rule.CreatesSymmetricConnections() && !rule.SupportsSymmetric() {
		return fmt.Errorf("Connect: make_symmetric requested but rule %s does not support symmetrization: %w", rule.Name(), ErrNotImplemented)
	}
	return nil
}

// Connect validates rule-level and symmetry requirements, then dispatches
// to rule.Connect. If make_symmetric is requested on a rule that does not
// create symmetric edges intrinsically, Base resets every parameter, swaps
// source/target collections, re-runs rule.Connect, then swaps back (spec
// §4.1).
func (b *Base) Connect(rule Rule) error {
	if b.UseStructuralPlasticity {
		return fmt.Errorf("Connect: structural plasticity builders only support SPConnect/SPDisconnect: %w", ErrNotImplemented)
	}
	if err := b.validateSymmetryRequirements(rule); err != nil {
		return err
	}

	if err := rule.Connect(b); err != nil {
		return err
	}

	if b.MakeSymmetric && !rule.CreatesSymmetricConnections() {
		b.resetParameters()
		b.Sources, b.Targets = b.Targets, b.Sources
		err := rule.Connect(b)
		b.Sources, b.Targets = b.Targets, b.Sources
		if err != nil {
			return err
		}
	}

	return nil
}

// Disconnect validates rule-level requirements and dispatches to
// rule.Disconnect; unlike Connect, there is no symmetrization replay.
func (b *Base) Disconnect(rule Rule) error {
	if b.UseStructuralPlasticity {
		return fmt.Errorf("Disconnect: structural plasticity builders only support SPConnect/SPDisconnect: %w", ErrNotImplemented)
	}
	if err := b.validateSymmetryRequirements(rule); err != nil {
		return err
	}
	return rule.Disconnect(b)
}

func (b *Base) resetParameters() {
	for _, syn := range b.Synapses {
		syn.ResetParameters()
	}
}

// SingleConnect is the per-pair hot path (spec §4.1 "single_connect"): for
// every synapse type, it fills the thread's pre-allocated scratch
// dictionary from each attribute's ConnParameter, resolves weight/delay
// (nil when not user-supplied, selecting the connection store's default
// fast path), and emits the edge.
func (b *Base) SingleConnect(src nodes.ID, target Handle, thread int, rng *rngsvc.Stream) error {
	for _, syn := range b.Synapses {
		scratch := syn.scratch[thread]
		for k := range scratch {
			delete(scratch, k)
		}
		for _, name := range syn.AttrNames() {
			v, err := syn.AttrFor(thread, name).Value(rng, target.ID)
			if err != nil {
				return fmt.Errorf("SingleConnect: synapse %q attribute %q: %w", syn.Name, name, err)
			}
			scratch[name] = v
		}

		var weightPtr, delayPtr *float64
		if syn.WeightUserSupplied {
			v, err := syn.WeightFor(thread).Value(rng, target.ID)
			if err != nil {
				return fmt.Errorf("SingleConnect: synapse %q weight: %w", syn.Name, err)
			}
			f := v.AsFloat64()
			weightPtr = &f
		}
		if syn.DelayUserSupplied {
			v, err := syn.DelayFor(thread).Value(rng, target.ID)
			if err != nil {
				return fmt.Errorf("SingleConnect: synapse %q delay: %w", syn.Name, err)
			}
			f := v.AsFloat64()
			delayPtr = &f
		}

		if err := b.Store.Connect(src, target, thread, syn.Model, scratch, delayPtr, weightPtr); err != nil {
			return fmt.Errorf("SingleConnect: synapse %q: %w", syn.Name, err)
		}
	}
	return nil
}

// SingleDisconnect is the per-pair hot path for the removal direction: for
// every synapse type it asks the connection store to remove one matching
// edge. Unlike SingleConnect it draws no parameters, since a removed edge
// carries no new attribute values.
func (b *Base) SingleDisconnect(src nodes.ID, target Handle, thread int) error {
	for _, syn := range b.Synapses {
		if err := b.Store.Disconnect(src, target, thread, syn.Model); err != nil {
			return fmt.Errorf("SingleDisconnect: synapse %q: %w", syn.Name, err)
		}
	}
	return nil
}

// SkipConnParameter advances every array-indexed ("requires skipping")
// parameter across all synapse types by count attempted pairs (default 1),
// preserving invariant I2 on pairs that were considered but not emitted on
// this thread.
func (b *Base) SkipConnParameter(thread int, count ...int) {
	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	if n == 0 {
		return
	}
	for _, syn := range b.Synapses {
		if w := syn.WeightFor(thread); w != nil && w.RequiresSkipping() {
			w.Skip(n)
		}
		if d := syn.DelayFor(thread); d != nil && d.RequiresSkipping() {
			d.Skip(n)
		}
		for _, name := range syn.AttrNames() {
			p := syn.AttrFor(thread, name)
			if p.RequiresSkipping() {
				p.Skip(n)
			}
		}
	}
}

// IsLocalToThread reports whether id's virtual process is both local to
// this process and owned by the given worker thread.
func (b *Base) IsLocalToThread(id nodes.ID, thread int) bool {
	vp := b.VPs.NodeToVP(id)
	return b.VPs.IsLocalVP(vp) && b.VPs.VPToOwningThread(vp) == thread
}

// ChangeConnectedSynapticElements implements spec §4.1's structural
// plasticity reservation: it increments/decrements the source's
// pre-element count only when the source is local to thread, and the
// target's post-element count only when the target is local to thread.
// The returned bool reports whether the target's side was local - i.e.
// whether the edge should actually be emitted on this thread.
func (b *Base) ChangeConnectedSynapticElements(srcID, tgtID nodes.ID, thread int, delta int) bool {
	if b.IsLocalToThread(srcID, thread) {
		b.elements.AddPre(srcID, delta)
	}
	local := b.IsLocalToThread(tgtID, thread)
	if local {
		b.elements.AddPost(tgtID, delta)
	}
	return local
}
