package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connect/rules"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedInDegree_ExactIndegreeNoDuplicates(t *testing.T) {
	sources := idRange(1, 100)
	targets := idRange(101, 110)
	b, store := newFixture(t, 4, sources, targets, connect.WithAutapses(false), connect.WithMultapses(false))

	rule, err := rules.NewFixedInDegree(5)
	require.NoError(t, err)
	require.NoError(t, b.Connect(rule))

	require.Equal(t, 50, store.Count())

	perTarget := make(map[nodes.ID]map[nodes.ID]bool)
	for _, c := range store.Connections() {
		if perTarget[c.Target.ID] == nil {
			perTarget[c.Target.ID] = make(map[nodes.ID]bool)
		}
		assert.False(t, perTarget[c.Target.ID][c.Src], "duplicate (src=%d,tgt=%d)", c.Src, c.Target.ID)
		perTarget[c.Target.ID][c.Src] = true
	}
	for _, tid := range targets {
		assert.Len(t, perTarget[tid], 5)
	}
}

func TestFixedInDegree_RejectsNegativeIndegree(t *testing.T) {
	_, err := rules.NewFixedInDegree(-1)
	assert.ErrorIs(t, err, connect.ErrBadProperty)
}

func TestFixedInDegree_ZeroIndegreeYieldsNoEdges(t *testing.T) {
	b, store := newFixture(t, 2, idRange(1, 10), idRange(11, 15))
	rule, err := rules.NewFixedInDegree(0)
	require.NoError(t, err)
	require.NoError(t, b.Connect(rule))
	assert.Equal(t, 0, store.Count())
}
