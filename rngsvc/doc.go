// SPDX-License-Identifier: MIT
// Package rngsvc models the two RNG resources spec §5 requires every rule
// to keep scrupulously separate:
//
//   - RankSynced: one stream whose sequence is identical across every
//     simulated MPI rank, consumed in identical order, used for draws that
//     decide graph structure (FixedOutDegree, FixedTotalNumber's partition
//     step, SymmetricBernoulli, TripartiteBernoulliWithPool).
//   - VPSpecific: independent per-VP streams used for per-edge attribute
//     sampling and for local structural draws in non-globally-coordinating
//     rules (FixedInDegree, AllToAll, Bernoulli, FixedTotalNumber's per-VP
//     draws).
//
// Mixing the two is forbidden by contract (spec §5); Factory keeps them on
// separate accessors so a rule can never reach for the wrong one by
// accident.
package rngsvc
