// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// errors.go - sentinel errors for the connect package, covering the error
// taxonomy of spec §7. As with lvlath's builder/errors.go, only sentinel
// variables are exported; callers branch with errors.Is, and every
// returned error wraps one of these via %w for context.

package connect

import "errors"

// ErrBadProperty indicates user input violates a range/structure
// constraint: negative counts, probabilities out of [0,1], pool-sizing
// mismatch, empty collections, size mismatches, missing required keys.
var ErrBadProperty = errors.New("connect: bad property")

// ErrUnknownSynapseType indicates a named synapse model does not exist in
// the model registry.
var ErrUnknownSynapseType = errors.New("connect: unknown synapse type")

// ErrIllegalConnection indicates a rule requires proxies on the target
// side but the target is proxyless (a device node).
var ErrIllegalConnection = errors.New("connect: illegal connection")

// ErrNotImplemented indicates an unsupported combination: FixedTotalNumber
// with multapse suppression, symmetry requested on a non-supporting rule,
// structural plasticity combined with make_symmetric, and similar.
var ErrNotImplemented = errors.New("connect: not implemented")

// ErrDimensionMismatch indicates OneToOne or structural-plasticity source
// and target arrays differ in length.
var ErrDimensionMismatch = errors.New("connect: dimension mismatch")

// ErrKernelException indicates structural plasticity combined with more
// than one synapse spec, or otherwise invalid collections.
var ErrKernelException = errors.New("connect: kernel exception")

// ErrWrappedThreadException is re-raised on the caller's goroutine after
// the parallel worker region to carry a single worker's failure across the
// goroutine boundary (spec §7, §9).
var ErrWrappedThreadException = errors.New("connect: wrapped thread exception")
