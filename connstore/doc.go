// SPDX-License-Identifier: MIT
// Package: connbuild/connstore
//
// Package connstore ships Store, a reference implementation of
// connect.ConnectionStore: thread-safe in-memory storage for the edges a
// build emits. A real simulator backs this with its own connection
// infrastructure (spec §1 lists connection storage as an external
// collaborator); connstore exists so connbuild's own tests, and any caller
// experimenting without a full simulator, have something to connect
// against and inspect afterwards.
//
// Grounded on core.Graph (lvlath): a monotonic atomic ID counter plus a
// mutex-guarded map, generalized from Vertex/Edge records to
// (source, target, synapse model, thread) connection records carrying
// arbitrary attribute values instead of a single integer weight.
package connstore
