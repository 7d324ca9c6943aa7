// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// preview.go - Preview, a dry-run validation pass. Grounded on the
// teacher's BuildGraph pattern (builder/api.go) of resolving and
// validating configuration before mutating anything: a caller that wants
// to know "would this connect() call fail" without touching the
// connection storage calls Preview instead.

package connect

// Preview runs every build-time check Connect would run - structural
// plasticity mode exclusivity and the rule's own symmetry requirements -
// without invoking the rule's Connect/Disconnect body, so no edges are
// emitted and no synaptic-element counters change. Range checks that need
// only the rule's own parameters (negative counts, probability ranges,
// pool_size bounds) fail at rule construction. Checks that depend on the
// collections or on Base's flags (indegree/outdegree against
// |sources|/|targets|, block-pool sizing, SymmetricBernoulli's flag
// preconditions, FixedTotalNumber's multapse restriction) run inside the
// rule's Connect and are not performed by Preview; Preview only
// re-validates the checks Base itself performs at connect()/disconnect()
// time.
func (b *Base) Preview(rule Rule) error {
	if b.UseStructuralPlasticity {
		return ErrNotImplemented
	}
	return b.validateSymmetryRequirements(rule)
}
