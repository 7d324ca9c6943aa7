// SPDX-License-Identifier: MIT
// Package: connbuild/connect/rules (external test package)

package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connstore"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/katalvlaran/connbuild/rngsvc"
	"github.com/katalvlaran/connbuild/vprt"
	"github.com/stretchr/testify/require"
)

// newFixture builds a Base with numThreads worker threads, a fresh
// in-memory store and one "static_synapse" model, over the given source
// and target ID ranges.
func newFixture(t *testing.T, numThreads int, sourceIDs, targetIDs []nodes.ID, opts ...connect.BaseOption) (*connect.Base, *connstore.Store) {
	t.Helper()

	sources, err := nodes.NewCollection(sourceIDs)
	require.NoError(t, err)
	targets, err := nodes.NewCollection(targetIDs)
	require.NoError(t, err)

	models := vprt.NewModelRegistry()
	models.RegisterModel("static_synapse", nil, false)
	store := connstore.NewStore()
	vps, err := vprt.NewManager(numThreads, 1)
	require.NoError(t, err)
	loc := vprt.NewLocation(vps)
	rngs := rngsvc.NewFactory(7, numThreads)

	collab := connect.Collaborators{Models: models, Store: store, Location: loc, VPs: vps, RNGs: rngs}
	b, err := connect.NewBase(sources, targets, []map[string]any{{"synapse_model": "static_synapse"}}, collab, opts...)
	require.NoError(t, err)
	return b, store
}

func idRange(lo, hi int64) []nodes.ID {
	out := make([]nodes.ID, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, nodes.ID(v))
	}
	return out
}
