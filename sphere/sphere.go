// SPDX-License-Identifier: MIT

package sphere

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/katalvlaran/graphworld/core"
)

// Method tags for error context.
const (
	methodFibonacci = "Fibonacci"
	methodSample    = "Sample"
)

// MinAlpha is the smallest oversampling factor Sample accepts.
const MinAlpha = 1.0

// MaxPoolSize bounds round(n·alpha) and the length of a Fibonacci spiral.
// Larger requests are rejected before any allocation.
const MaxPoolSize = 1 << 24

// Phi is the golden ratio (1+√5)/2.
var Phi = (1 + math.Sqrt(5)) / 2

// Fibonacci returns n points on the unit sphere along a golden-ratio spiral.
//
// For i in [0,n): z_i = 1 − (1+2i)/n and azimuth θ_i = 2π·i·φ, i.e. the
// s2 point at latitude asin(z_i), longitude θ_i. The output is a pure
// function of n; n must lie in [1, MaxPoolSize].
//
// Complexity: O(n) time and space.
func Fibonacci(n int) ([]core.Point, error) {
	if n <= 0 || n > MaxPoolSize {
		return nil, fmt.Errorf("%s: n=%d outside [1,%d]: %w", methodFibonacci, n, MaxPoolSize, core.ErrInvalidArgument)
	}
	pts := make([]core.Point, n)
	fn := float64(n)
	for i := range pts {
		z := 1 - (1+2*float64(i))/fn
		ll := s2.LatLng{
			Lat: s1.Angle(math.Asin(z)),
			Lng: s1.Angle(2 * math.Pi * float64(i) * Phi),
		}
		pts[i] = s2.PointFromLatLng(ll).Vector
	}

	return pts, nil
}

// PoolSize returns round(n·alpha), the number of spiral candidates Sample draws
// from. Halves round to even. Sample rejects results above MaxPoolSize.
func PoolSize(n int, alpha float64) int {
	return int(math.RoundToEven(float64(n) * alpha))
}

// Sample draws n distinct points from a Fibonacci spiral of PoolSize(n, alpha)
// candidates, uniformly at random without replacement.
//
// Contract:
//   - n ≥ 1, alpha ≥ MinAlpha and n ≤ PoolSize(n, alpha) ≤ MaxPoolSize
//     (else ErrInvalidArgument).
//   - rng must be non-nil (else ErrInvalidArgument).
//   - Output order follows the permutation drawn from rng, not spiral order.
//
// Complexity: O(n·alpha) time and space.
func Sample(n int, alpha float64, rng *rand.Rand) ([]core.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d must be positive: %w", methodSample, n, core.ErrInvalidArgument)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < MinAlpha {
		return nil, fmt.Errorf("%s: alpha=%g < %g: %w", methodSample, alpha, MinAlpha, core.ErrInvalidArgument)
	}
	if float64(n)*alpha > MaxPoolSize {
		return nil, fmt.Errorf("%s: n·alpha=%g > %d: %w", methodSample, float64(n)*alpha, MaxPoolSize, core.ErrInvalidArgument)
	}
	pool := PoolSize(n, alpha)
	if pool < n {
		return nil, fmt.Errorf("%s: pool=%d < n=%d: %w", methodSample, pool, n, core.ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodSample, core.ErrInvalidArgument)
	}

	candidates, err := Fibonacci(pool)
	if err != nil {
		return nil, err
	}
	out := make([]core.Point, n)
	for k, idx := range rng.Perm(pool)[:n] {
		out[k] = candidates[idx]
	}

	return out, nil
}
