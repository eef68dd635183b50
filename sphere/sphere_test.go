// SPDX-License-Identifier: MIT

package sphere_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphworld/core"
	"github.com/katalvlaran/graphworld/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacci_OnUnitSphere(t *testing.T) {
	pts, err := sphere.Fibonacci(200)
	require.NoError(t, err)
	require.Len(t, pts, 200)

	prevZ := math.Inf(1)
	for i, p := range pts {
		assert.InDelta(t, 1.0, p.Norm2(), 1e-12, "point %d off the sphere", i)
		assert.Less(t, p.Z, prevZ, "z must decrease strictly")
		assert.Greater(t, p.Z, -1.0)
		assert.Less(t, p.Z, 1.0)
		prevZ = p.Z
	}
}

func TestFibonacci_KnownValues(t *testing.T) {
	pts, err := sphere.Fibonacci(4)
	require.NoError(t, err)

	// i=0: z = 1 - 1/4, azimuth 0.
	assert.InDelta(t, 0.75, pts[0].Z, 1e-12)
	assert.InDelta(t, math.Sqrt(1-0.75*0.75), pts[0].X, 1e-12)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-12)
	// z is evenly spaced by 2/n.
	assert.InDelta(t, -0.75, pts[3].Z, 1e-12)
	assert.InDelta(t, 0.25, pts[1].Z, 1e-12)

	again, err := sphere.Fibonacci(4)
	require.NoError(t, err)
	assert.Equal(t, pts, again, "spiral is deterministic")
}

func TestFibonacci_Invalid(t *testing.T) {
	for _, n := range []int{0, -3, sphere.MaxPoolSize + 1} {
		_, err := sphere.Fibonacci(n)
		require.ErrorIs(t, err, core.ErrInvalidArgument)
	}
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 50, sphere.PoolSize(50, 1))
	assert.Equal(t, 100, sphere.PoolSize(50, 2))
	assert.Equal(t, 2, sphere.PoolSize(1, 2.5), "halves round to even")
	assert.Equal(t, 4, sphere.PoolSize(1, 3.5))
}

func TestSample_SubsetOfSpiral(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts, err := sphere.Sample(30, 2, rng)
	require.NoError(t, err)
	require.Len(t, pts, 30)

	pool, err := sphere.Fibonacci(60)
	require.NoError(t, err)
	index := make(map[core.Point]bool, len(pool))
	for _, p := range pool {
		index[p] = true
	}
	seen := make(map[core.Point]bool, len(pts))
	for _, p := range pts {
		assert.True(t, index[p], "sampled point not from the spiral pool")
		assert.False(t, seen[p], "sampled twice")
		seen[p] = true
	}
}

func TestSample_AlphaOneIsPermutation(t *testing.T) {
	pts, err := sphere.Sample(25, 1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	pool, err := sphere.Fibonacci(25)
	require.NoError(t, err)
	assert.ElementsMatch(t, pool, pts)
}

func TestSample_SeedDeterminism(t *testing.T) {
	a, err := sphere.Sample(40, 1.5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	b, err := sphere.Sample(40, 1.5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		n     int
		alpha float64
		rng   *rand.Rand
	}{
		{"zero n", 0, 1, rng},
		{"negative n", -1, 1, rng},
		{"alpha below one", 10, 0.5, rng},
		{"alpha NaN", 10, math.NaN(), rng},
		{"alpha Inf", 10, math.Inf(1), rng},
		{"nil rng", 10, 1, nil},
		{"pool above bound", 10, 1e12, rng},
		{"pool overflows int", 1 << 20, 1e300, rng},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sphere.Sample(tc.n, tc.alpha, tc.rng)
			require.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
}
