package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connect/rules"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneToOne_AutapsesDisabled_SameSetYieldsNoEdges(t *testing.T) {
	ids := idRange(1, 3)
	b, store := newFixture(t, 2, ids, ids, connect.WithAutapses(false))

	rule := rules.NewOneToOne()
	require.NoError(t, b.Connect(rule))

	assert.Equal(t, 0, store.Count())
}

func TestOneToOne_DistinctSets_ExactPairing(t *testing.T) {
	sources := idRange(1, 3)
	targets := idRange(4, 6)
	b, store := newFixture(t, 2, sources, targets)

	require.NoError(t, b.Connect(rules.NewOneToOne()))

	require.Equal(t, 3, store.Count())
	want := map[[2]nodes.ID]bool{{1, 4}: true, {2, 5}: true, {3, 6}: true}
	for _, c := range store.Connections() {
		assert.True(t, want[[2]nodes.ID{c.Src, c.Target.ID}], "unexpected pair (%d,%d)", c.Src, c.Target.ID)
	}
}

func TestOneToOne_RejectsDimensionMismatch(t *testing.T) {
	b, _ := newFixture(t, 1, idRange(1, 3), idRange(1, 2))
	err := b.Connect(rules.NewOneToOne())
	assert.ErrorIs(t, err, connect.ErrDimensionMismatch)
}

func TestOneToOne_Disconnect_RemovesSamePairing(t *testing.T) {
	sources := idRange(1, 3)
	targets := idRange(4, 6)
	b, store := newFixture(t, 2, sources, targets)

	rule := rules.NewOneToOne()
	require.NoError(t, b.Connect(rule))
	require.Equal(t, 3, store.Count())

	require.NoError(t, b.Disconnect(rule))
	assert.Equal(t, 0, store.Count())
}
