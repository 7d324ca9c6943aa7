// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// interfaces.go - the external collaborator contracts of spec §6. connbuild
// never implements the model registry, the connection storage backend, the
// node-location/proxy service, or the VP manager itself (spec §1 scopes
// them out as "external collaborators, referenced only via interfaces");
// package vprt and connstore ship small reference implementations so this
// module is end-to-end testable, but connect only ever programs against
// these interfaces.

package connect

import (
	"github.com/katalvlaran/connbuild/connparam"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/katalvlaran/connbuild/rngsvc"
)

// ModelID identifies a resolved synapse model within the model registry.
type ModelID int

// Handle is what the node-location service hands back for a node id: its
// resolved identity plus whether it is a local node or a proxy standing in
// for a node owned by another virtual process.
type Handle struct {
	ID      nodes.ID
	IsProxy bool
}

// SynapseModelRegistry resolves synapse model names to IDs and exposes
// their defaults and properties (spec §6).
type SynapseModelRegistry interface {
	// Resolve looks up model by name, returning ErrUnknownSynapseType
	// (wrapped) if it does not exist.
	Resolve(name string) (ModelID, error)

	// Defaults returns the model's default attribute values (including
	// weight and delay), used whenever a synapse spec does not supply
	// its own.
	Defaults(model ModelID) map[string]connparam.Value

	// RequiresSymmetric reports whether the model demands that every
	// connection be mirrored (spec §4.1 "if any selected synapse model
	// requires symmetric connectivity").
	RequiresSymmetric(model ModelID) bool

	// CheckSynapseParams validates a synapse spec's attribute map against
	// the model's accepted parameter set.
	CheckSynapseParams(model ModelID, spec map[string]any) error
}

// ConnectionStore is the thread-safe connection storage backend edges are
// emitted into (spec §6). weight and delay are nil to mean "use the
// model's default", mirroring the NaN sentinel of the source design but
// expressed the idiomatic Go way.
type ConnectionStore interface {
	Connect(src nodes.ID, target Handle, thread int, model ModelID, attrs map[string]connparam.Value, delay, weight *float64) error

	// Disconnect removes one matching connection (src, target, model) owned
	// by thread, used by disconnect() and sp_disconnect (spec §4.1's
	// "Disconnect mirrors with -1"). It is a no-op returning nil if no such
	// connection exists: disconnect on a non-existent pair is not an error
	// (spec §4.2.2's OneToOne disconnect over the same index pairing never
	// raises on a pair that was never connected).
	Disconnect(src nodes.ID, target Handle, thread int, model ModelID) error
}

// NodeLocation is the node-location/proxy service (spec §6).
type NodeLocation interface {
	// IsLocal reports whether id is owned by the calling process.
	IsLocal(id nodes.ID) bool

	// Get resolves id to its Handle for the given worker thread: either
	// the real local node or a proxy standing in for a remote owner.
	Get(id nodes.ID, thread int) Handle

	// LocalNodes returns the nodes owned by the given worker thread's
	// virtual processes.
	LocalNodes(thread int) []nodes.ID

	// GetLID returns the local index of id within collection, the
	// "local index within collection" lookup spec §6 names.
	GetLID(id nodes.ID, collection *nodes.Collection) (int, bool)
}

// VPManager is the virtual-process manager (spec §6).
type VPManager interface {
	NumThreads() int
	NumVPs() int
	ThreadToVPs(thread int) []int
	VPToOwningThread(vp int) int
	IsLocalVP(vp int) bool
	NodeToVP(id nodes.ID) int
}

// RNGFactory hands out the two RNG resources spec §5/§6 describe.
type RNGFactory interface {
	RankSyncedRNG(thread int) *rngsvc.Stream
	VPSpecificRNG(thread int) *rngsvc.Stream
}
