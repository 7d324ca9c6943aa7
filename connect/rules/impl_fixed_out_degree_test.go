package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connect/rules"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedOutDegree_ExactOutdegree(t *testing.T) {
	sources := idRange(1, 10)
	targets := idRange(11, 20)
	b, store := newFixture(t, 3, sources, targets, connect.WithMultapses(false))

	rule, err := rules.NewFixedOutDegree(3)
	require.NoError(t, err)
	require.NoError(t, b.Connect(rule))

	require.Equal(t, 30, store.Count())

	perSource := make(map[nodes.ID]int)
	for _, c := range store.Connections() {
		perSource[c.Src]++
	}
	for _, sid := range sources {
		assert.Equal(t, 3, perSource[sid])
	}
}

func TestFixedOutDegree_DeterministicAcrossThreadCounts(t *testing.T) {
	sources := idRange(1, 8)
	targets := idRange(9, 16)

	edgeSet := func(numThreads int) map[[2]nodes.ID]bool {
		b, store := newFixture(t, numThreads, sources, targets, connect.WithMultapses(false))
		rule, err := rules.NewFixedOutDegree(2)
		require.NoError(t, err)
		require.NoError(t, b.Connect(rule))
		set := make(map[[2]nodes.ID]bool)
		for _, c := range store.Connections() {
			set[[2]nodes.ID{c.Src, c.Target.ID}] = true
		}
		return set
	}

	assert.Equal(t, edgeSet(1), edgeSet(4))
}

func TestFixedOutDegree_RejectsNegativeOutdegree(t *testing.T) {
	_, err := rules.NewFixedOutDegree(-1)
	assert.ErrorIs(t, err, connect.ErrBadProperty)
}
