// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// impl_triangulate.go - the blank → triangulated stage.
//
// Contract:
//   - VertexCount() ≥ MinHullVertices (else ErrTooFewVertices).
//   - Every simplex returned by cfg.triangulator contributes its three edges;
//     edges shared by two faces collapse in the edge set.
//   - Triangulator errors are returned wrapped, never swallowed.
//
// Determinism:
//   - Edges are added in simplex order; the resulting set does not depend on it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphworld/core"
)

// Triangulate returns the Stage that meshes g through its triangulator.
func Triangulate() Stage {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < MinHullVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodTriangulate, n, MinHullVertices, ErrTooFewVertices)
		}

		simplices, err := cfg.triangulator.Triangulate(g.Vertices())
		if err != nil {
			return fmt.Errorf("%s: %w", MethodTriangulate, err)
		}
		for k, s := range simplices {
			for _, e := range s.Edges() {
				if err := g.AddEdge(e.U, e.V); err != nil {
					return fmt.Errorf("%s: simplex %d %v: %w", MethodTriangulate, k, s, err)
				}
			}
		}
		cfg.logger.Debug("triangulated",
			"simplices", len(simplices), "edges", g.EdgeCount())

		return nil
	}
}
