// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules
//
// Package rules ships the nine connection-rule strategies of spec §4.2,
// one impl_*.go file per strategy (ground: the teacher's builder/impl_*.go
// one-file-per-topology convention). Every strategy implements
// connect.Rule and is driven entirely through connect.Base; none of them
// touch a connection store, node-location service, or RNG factory
// directly.
package rules
