// SPDX-License-Identifier: MIT
// Package connect implements the builder base of spec §4.1: parameter
// binding, per-synapse-type pipelines, the common connect()/disconnect()
// dispatch, single_connect, change_connected_synaptic_elements,
// skip_conn_parameter, and the per-thread captured-failure slots that
// spec §9 describes.
//
// The nine rule strategies of spec §4.2 live in the sibling package
// connect/rules, which depends on connect for Base and the Rule interface
// but never the reverse - Base has no notion of which concrete rule drives
// it.
//
// Grounded on lvlath's builder package: BuildGraph's "resolve config, apply
// constructors, wrap errors once at the boundary" shape (builder/api.go)
// is the direct ancestor of Base.Connect's "validate, dispatch to the
// rule, aggregate per-thread failures" shape; the sentinel-error-plus-wrap
// convention is lvlath's builder/errors.go verbatim.
package connect
