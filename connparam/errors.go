// SPDX-License-Identifier: MIT
// Package: connbuild/connparam

package connparam

import "errors"

// ErrDistributionNeedsRNG indicates Value was called on a Distribution
// parameter with a nil Stream.
var ErrDistributionNeedsRNG = errors.New("connparam: distribution parameter requires a non-nil rng")

// ErrArrayLengthMismatch indicates an Array parameter was built with a
// length that does not match either the source or the target collection
// size, which spec §4.2.10 requires ("array of length |sources| or
// |targets|").
var ErrArrayLengthMismatch = errors.New("connparam: array length does not match source or target collection size")

// ErrArrayExhausted indicates an Array parameter's cursor advanced past the
// end of its backing slice. This signals a mismatch between the rule's
// iteration schedule and the array's declared length (spec invariant I2),
// i.e. a programmer/config error rather than a user input error.
var ErrArrayExhausted = errors.New("connparam: array parameter cursor exhausted")
