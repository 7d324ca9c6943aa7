package connparam_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/connbuild/connparam"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstant_IsScalarAndStable(t *testing.T) {
	c := connparam.NewConstantDouble(3.5)
	assert.True(t, c.IsScalar())
	assert.False(t, c.ProvidesLong())
	assert.False(t, c.RequiresSkipping())

	v1, err := c.Value(nil, 1)
	require.NoError(t, err)
	v2, err := c.Value(nil, 999)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 3.5, v1.AsFloat64())
}

func TestConstantLong(t *testing.T) {
	c := connparam.NewConstantLong(7)
	assert.True(t, c.ProvidesLong())
	v, err := c.Value(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Long)
	assert.Equal(t, float64(7), v.AsFloat64())
}

type fakeStream struct{ f float64 }

func (s fakeStream) Float64() float64     { return s.f }
func (s fakeStream) NormFloat64() float64 { return s.f }
func (s fakeStream) Intn(n int) int       { return 0 }

func TestDistribution_RequiresRNG(t *testing.T) {
	d := connparam.NewDistribution(func(rng connparam.Stream) connparam.Value {
		return connparam.Value{Double: rng.Float64() * 10}
	})
	_, err := d.Value(nil, 1)
	assert.True(t, errors.Is(err, connparam.ErrDistributionNeedsRNG))

	v, err := d.Value(fakeStream{f: 0.5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.AsFloat64())
	assert.False(t, d.IsScalar())
}

func TestArray_LengthMismatch(t *testing.T) {
	_, err := connparam.NewArrayDouble([]float64{1, 2}, 3)
	assert.True(t, errors.Is(err, connparam.ErrArrayLengthMismatch))
}

func TestArray_AdvancesOnValueAndSkip(t *testing.T) {
	a, err := connparam.NewArrayDouble([]float64{10, 20, 30}, 3)
	require.NoError(t, err)
	assert.True(t, a.RequiresSkipping())

	v, err := a.Value(nil, nodes.ID(0))
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.AsFloat64())

	a.Skip(1) // skip index 1 (value 20)

	v, err = a.Value(nil, nodes.ID(0))
	require.NoError(t, err)
	assert.Equal(t, 30.0, v.AsFloat64())

	_, err = a.Value(nil, nodes.ID(0))
	assert.True(t, errors.Is(err, connparam.ErrArrayExhausted))
}

func TestArray_CloneHasIndependentCursor(t *testing.T) {
	a, err := connparam.NewArrayDouble([]float64{10, 20, 30}, 3)
	require.NoError(t, err)

	_, err = a.Value(nil, 0) // advance original to index 1
	require.NoError(t, err)

	clone := a.Clone()
	assert.True(t, clone.RequiresSkipping())

	v, err := clone.Value(nil, 0) // clone starts fresh at index 0
	require.NoError(t, err)
	assert.Equal(t, 10.0, v.AsFloat64())

	// Advancing the clone must not affect the original's cursor.
	v, err = a.Value(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v.AsFloat64())
}

func TestConstant_CloneSharesSingleInstance(t *testing.T) {
	c := connparam.NewConstantDouble(1.5)
	assert.Same(t, c, c.Clone())
}

func TestArray_ResetRewindsCursor(t *testing.T) {
	a, err := connparam.NewArrayLong([]int64{1, 2, 3}, 3)
	require.NoError(t, err)
	_, _ = a.Value(nil, 0)
	_, _ = a.Value(nil, 0)
	a.Reset()
	v, err := a.Value(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Long)
}
