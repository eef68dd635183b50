// SPDX-License-Identifier: MIT

// Package sphere places points quasi-uniformly on the unit sphere.
//
// Fibonacci(n) lays n points on a golden-ratio spiral: z is evenly spaced in
// (−1, 1) and the azimuth advances by 2π·φ per point, which gives
// low-discrepancy coverage with no randomness at all.
//
// Sample(n, alpha, rng) oversamples the spiral to round(n·alpha) candidates
// and draws exactly n of them uniformly without replacement. The draw order is
// random; the spiral structure is not preserved in the output order.
//
// All randomness flows through the caller's *rand.Rand; there is no global state.
package sphere
