package rules_test

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connect/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricBernoulli_EdgeSetIsSymmetricWithNoAutapses(t *testing.T) {
	ids := idRange(1, 10)
	b, store := newFixture(t, 3, ids, ids,
		connect.WithAutapses(false),
		connect.WithMultapses(true),
		connect.WithMakeSymmetric(true),
	)

	rule, err := rules.NewSymmetricBernoulli(0.5)
	require.NoError(t, err)
	require.NoError(t, b.Connect(rule))

	forward := make(map[[2]int64]bool)
	for _, c := range store.Connections() {
		assert.NotEqual(t, c.Src, c.Target.ID)
		forward[[2]int64{int64(c.Src), int64(c.Target.ID)}] = true
	}
	for pair := range forward {
		assert.True(t, forward[[2]int64{pair[1], pair[0]}], "edge (%d,%d) has no mirror", pair[0], pair[1])
	}
}

func TestSymmetricBernoulli_RequiresMakeSymmetric(t *testing.T) {
	ids := idRange(1, 5)
	b, _ := newFixture(t, 1, ids, ids, connect.WithAutapses(false))

	rule, err := rules.NewSymmetricBernoulli(0.5)
	require.NoError(t, err)

	err = b.Connect(rule)
	assert.ErrorIs(t, err, connect.ErrBadProperty)
}

func TestSymmetricBernoulli_RejectsPEqualsOne(t *testing.T) {
	_, err := rules.NewSymmetricBernoulli(1.0)
	assert.ErrorIs(t, err, connect.ErrBadProperty)
}
