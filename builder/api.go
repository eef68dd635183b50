// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(n, opts, stages...). Samples the blank world,
//     resolves cfg once, runs stages in order.
//   - GenerateBlank/GenerateTriangulated/GenerateLabyrinth are thin wrappers
//     that validate their own minimums first (fail fast, zero work on bad input).
//   - Stages are implemented in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphworld/core"
	"github.com/katalvlaran/graphworld/sphere"
)

// Stage applies one deterministic step of the pipeline to g using the
// resolved builderConfig. Stages MUST:
//   - Validate their own preconditions and return sentinel-wrapped errors.
//   - Mutate g only through AddEdge/RemoveEdge.
//   - Be deterministic for a given g and config.
type Stage func(g *core.Graph, cfg builderConfig) error

// Build samples n vertices on the unit sphere (the blank world) and applies
// stages in order. Any error aborts the call and no Graph is returned.
//
// Complexity: O(n·alpha) for sampling plus Σ cost of stages.
func Build(n int, opts []BuilderOption, stages ...Stage) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodBuild); err != nil {
		return nil, err
	}
	if n < MinBlankVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodBuild, n, MinBlankVertices, ErrTooFewVertices)
	}

	points, err := sphere.Sample(n, cfg.alpha, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	g := core.NewGraph(points)
	cfg.logger.Debug("sampled blank world",
		"vertices", n, "alpha", cfg.alpha, "pool", sphere.PoolSize(n, cfg.alpha))

	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("%s: nil stage at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err := st(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return g, nil
}

// Apply runs stages on an existing graph, e.g. one built over hand-picked
// points. g is mutated in place; on error it may hold a partial result and
// should be discarded by the caller.
func Apply(g *core.Graph, opts []BuilderOption, stages ...Stage) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", MethodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodBuild); err != nil {
		return err
	}
	for i, st := range stages {
		if st == nil {
			return fmt.Errorf("%s: nil stage at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err := st(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return nil
}

// GenerateBlank returns n sampled vertices with no edges.
// Options: WithAlpha, WithSeed/WithRand.
func GenerateBlank(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < MinBlankVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodBlank, n, MinBlankVertices, ErrTooFewVertices)
	}

	return Build(n, opts)
}

// GenerateTriangulated returns the blank world with every edge of its
// convex-hull triangulation.
// Options: WithAlpha, WithSeed/WithRand, WithTriangulator, WithLogger.
func GenerateTriangulated(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < MinHullVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodTriangulated, n, MinHullVertices, ErrTooFewVertices)
	}

	return Build(n, opts, Triangulate())
}

// GenerateLabyrinth returns the triangulated world pruned to its MST plus the
// non-tree edges that could not be removed without dropping an endpoint to
// `degree` neighbors or fewer.
// Options: WithAlpha, WithDegree, WithSeed/WithRand, WithTriangulator, WithLogger.
func GenerateLabyrinth(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < MinHullVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodLabyrinth, n, MinHullVertices, ErrTooFewVertices)
	}
	if err := newBuilderConfig(opts...).validateDegree(MethodLabyrinth); err != nil {
		return nil, err
	}

	return Build(n, opts, Triangulate(), Labyrinth())
}
