// SPDX-License-Identifier: MIT
// Package: connbuild/rngsvc

package rngsvc

import "errors"

// ErrSamplingExhausted indicates a rejection-sampling loop did not converge
// within MaxRejectionAttempts. This is the runtime counterpart of the
// build-time warnings in spec §4.2.3 ("indegree == |sources| and autapses
// disabled and source ∩ target non-empty" etc.) for the rare case where a
// build-time warning was not enough to prevent an unsatisfiable draw.
var ErrSamplingExhausted = errors.New("rngsvc: rejection sampling exhausted attempts")
