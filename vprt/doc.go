// SPDX-License-Identifier: MIT
// Package: connbuild/vprt
//
// Package vprt ships small, single-process reference implementations of
// connect.VPManager and connect.NodeLocation: the virtual-process manager
// and node-location/proxy service spec §6 treats as external collaborators.
// A real simulator wires its own MPI-aware implementations; vprt exists so
// connbuild's own tests, and any caller experimenting without a full
// simulator, have something to build a connect.Base against.
//
// Grounded on core.Graph's mutex-guarded map storage (lvlath), generalized
// from vertex/edge bookkeeping to node->VP->thread routing.
package vprt
