// SPDX-License-Identifier: MIT
// Package: connbuild/connect
//
// rule.go - the Rule interface every strategy under connect/rules
// implements (spec §4.2, design note "Polymorphism without inheritance").

package connect

// Rule is one connection-rule strategy (OneToOne, AllToAll, FixedInDegree,
// ...). Base consumes Rule as a capability-dispatch object rather than a
// base class, per the design note: "the rule catalog is naturally a tagged
// variant over the nine strategies; shared logic ... is a context object
// the strategies consume".
type Rule interface {
	// Name identifies the rule for diagnostics and error messages.
	Name() string

	// SupportsSymmetric reports whether Base's symmetrization replay
	// (reset parameters, swap endpoints, re-run, swap back) applies to
	// this rule. Rules that can never produce a sensible symmetric graph
	// (e.g. FixedOutDegree, whose in-degree is not controlled) return
	// false.
	SupportsSymmetric() bool

	// CreatesSymmetricConnections reports whether the rule intrinsically
	// emits a symmetric edge set on its own (only SymmetricBernoulli),
	// which exempts it from Base's replay mechanism.
	CreatesSymmetricConnections() bool

	// Connect runs the rule's forward connection pass against b.
	Connect(b *Base) error

	// Disconnect runs the rule's removal pass against b. Rules that do
	// not support disconnect return an error wrapping ErrNotImplemented.
	Disconnect(b *Base) error
}
