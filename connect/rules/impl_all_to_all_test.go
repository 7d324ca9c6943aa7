package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connect/rules"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllToAll_ExactCartesianProduct(t *testing.T) {
	sources := idRange(1, 2)
	targets := idRange(3, 4)
	b, store := newFixture(t, 2, sources, targets)

	require.NoError(t, b.Connect(rules.NewAllToAll()))

	require.Equal(t, 4, store.Count())
	want := map[[2]nodes.ID]bool{
		{1, 3}: true, {1, 4}: true, {2, 3}: true, {2, 4}: true,
	}
	for _, c := range store.Connections() {
		assert.True(t, want[[2]nodes.ID{c.Src, c.Target.ID}], "unexpected pair (%d,%d)", c.Src, c.Target.ID)
	}
}

func TestAllToAll_AutapsesDisabled_OverlappingSets(t *testing.T) {
	ids := idRange(1, 4)
	b, store := newFixture(t, 3, ids, ids, connect.WithAutapses(false))

	require.NoError(t, b.Connect(rules.NewAllToAll()))

	// |sources|*|targets| - |overlap| = 16 - 4 self-loops.
	assert.Equal(t, 12, store.Count())
	for _, c := range store.Connections() {
		assert.NotEqual(t, c.Src, c.Target.ID)
	}
}
