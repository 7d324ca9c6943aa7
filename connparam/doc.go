// SPDX-License-Identifier: MIT
// Package connparam implements ConnParameter (spec §3, §4.2.10): the
// polymorphic value producer behind every weight, delay, and synapse
// attribute a rule strategy binds. Three variants exist:
//
//   - Constant: a fixed scalar (long or double).
//   - Distribution: samples from a caller-supplied distribution function
//     using the RNG passed to Value.
//   - Array: backed by a slice indexed by a cursor that advances once per
//     *attempted* pair, including pairs skipped for non-locality - the
//     "parameters requiring skipping" of spec invariant I2.
//
// Grounded on builder/weight_fn.go's WeightFn (func(*rand.Rand) float64)
// idiom from lvlath, generalized into a Parameter interface so the
// array-indexed variant can carry cursor state that weight_fn.go's pure
// closures never needed.
package connparam
