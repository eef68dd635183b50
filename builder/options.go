// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Collaborator options (WithRand, WithTriangulator, WithLogger) PANIC on
//     nil: that is a programmer error.
//   • Parameter options (WithAlpha, WithDegree) never panic; their values are
//     validated when a generation runs and surface as ErrInvalidAlpha /
//     ErrInvalidDegree.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/graphworld/hull"
)

// BuilderOption customizes a generation by mutating a builderConfig
// instance before the first stage runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithAlpha sets the oversampling factor: round(n·alpha) spiral candidates
// are generated and n of them are drawn. Must be ≥ 1.
func WithAlpha(alpha float64) BuilderOption {
	return func(c *builderConfig) {
		c.alpha = alpha
	}
}

// WithDegree sets the minimum retained degree for the Labyrinth stage.
// Must be ≥ MinDegree.
func WithDegree(degree int) BuilderOption {
	return func(c *builderConfig) {
		c.degree = degree
	}
}

// WithRand provides an explicit RNG for the point subsample.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTriangulator replaces the geometry collaborator used by Triangulate.
// Panics on nil.
func WithTriangulator(t hull.Triangulator) BuilderOption {
	if t == nil {
		panic("builder: WithTriangulator(nil)")
	}
	return func(c *builderConfig) {
		c.triangulator = t
	}
}

// WithLogger routes stage logs to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
