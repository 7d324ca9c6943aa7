package rngsvc_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/connbuild/rngsvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_RankSyncedIsSharedAcrossThreads(t *testing.T) {
	f := rngsvc.NewFactory(42, 4)
	a := f.RankSyncedRNG(0)
	b := f.RankSyncedRNG(3)
	assert.Same(t, a, b)
}

func TestFactory_VPSpecificIsIndependentPerThread(t *testing.T) {
	f := rngsvc.NewFactory(42, 4)
	a := f.VPSpecificRNG(0)
	b := f.VPSpecificRNG(1)
	assert.NotSame(t, a, b)

	// Each stream can be drawn from on its own; the drawn values are not
	// compared.
	av := a.Float64()
	bv := b.Float64()
	_ = av
	_ = bv
}

func TestFactory_DeterministicForSameSeed(t *testing.T) {
	f1 := rngsvc.NewFactory(7, 2)
	f2 := rngsvc.NewFactory(7, 2)

	assert.Equal(t, f1.RankSyncedRNG(0).Float64(), f2.RankSyncedRNG(0).Float64())
	assert.Equal(t, f1.VPSpecificRNG(1).Intn(1000), f2.VPSpecificRNG(1).Intn(1000))
}

func TestStream_SampleWithReplacement_RejectsDuplicatesAndAutapses(t *testing.T) {
	f := rngsvc.NewFactory(1, 1)
	s := f.VPSpecificRNG(0)

	const n = 5
	target := 2
	reject := func(chosen []int, candidate int) bool {
		if candidate == target {
			return true // autapse
		}
		for _, c := range chosen {
			if c == candidate {
				return true // multapse
			}
		}
		return false
	}

	out, err := s.SampleWithReplacement(n, 4, reject)
	require.NoError(t, err)
	require.Len(t, out, 4)

	seen := map[int]bool{}
	for _, v := range out {
		assert.NotEqual(t, target, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestStream_SampleWithReplacement_ExhaustsWhenUnsatisfiable(t *testing.T) {
	f := rngsvc.NewFactory(1, 1)
	s := f.VPSpecificRNG(0)

	// n=1 but we demand 2 distinct values (always rejected) -> must exhaust.
	reject := func(chosen []int, candidate int) bool {
		return len(chosen) > 0
	}
	_, err := s.SampleWithReplacement(1, 2, reject)
	assert.True(t, errors.Is(err, rngsvc.ErrSamplingExhausted))
}

func TestStream_SampleWithoutReplacement(t *testing.T) {
	f := rngsvc.NewFactory(1, 1)
	s := f.VPSpecificRNG(0)

	out, err := s.SampleWithoutReplacement(10, 5, nil)
	require.NoError(t, err)
	require.Len(t, out, 5)
	seen := map[int]bool{}
	for _, v := range out {
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestStream_TruncatedBinomial(t *testing.T) {
	f := rngsvc.NewFactory(1, 1)
	s := f.VPSpecificRNG(0)

	k, err := s.TruncatedBinomial(5, 0.9, 5)
	require.NoError(t, err)
	assert.Less(t, k, 5)
}

func TestStream_Binomial_Edges(t *testing.T) {
	f := rngsvc.NewFactory(1, 1)
	s := f.VPSpecificRNG(0)

	assert.Equal(t, 0, s.Binomial(10, 0))
	assert.Equal(t, 10, s.Binomial(10, 1))
	assert.Equal(t, 0, s.Binomial(0, 0.5))
}
