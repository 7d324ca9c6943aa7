// SPDX-License-Identifier: MIT
// Package nodes provides the ordered, finite node-identifier sequence used
// throughout connbuild as the unit of iteration for every connection rule:
// Collection.
//
// A Collection is immutable once built: it offers constant-time forward
// lookup (index -> ID) and reverse lookup (ID -> local index): rule
// strategies use the forward lookup to drive their iteration, and the
// reverse lookup satisfies the node-location service's "get_lid" contract
// (see vprt.Location.GetLID).
package nodes
