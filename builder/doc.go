// SPDX-License-Identifier: MIT

// Package builder generates graph worlds: sampled sphere points, their
// convex-hull triangulation, and the degree-constrained labyrinth derived
// from it.
//
// The package offers the following key components:
//
//   - Entry points:
//     – GenerateBlank(n, opts...):        n sampled vertices, no edges.
//     – GenerateTriangulated(n, opts...): blank + every hull simplex edge.
//     – GenerateLabyrinth(n, opts...):    triangulated + MST-preserving pruning.
//   - Stages (composable through Build):
//     – Triangulate(): add the three edges of every simplex.
//     – Labyrinth():   drop non-tree edges, longest first, while both
//     endpoints keep more than `degree` neighbors.
//   - Configuration primitives (BuilderOption):
//     – WithAlpha, WithDegree:        generation parameters (validated at build time).
//     – WithSeed, WithRand:           explicit randomness for the subsample.
//     – WithTriangulator:             geometry collaborator (default hull.QuickHull).
//     – WithLogger:                   structured stage logging (default discard).
//
// Guarantees:
//
//   - Stages run strictly in order: blank → triangulated → labyrinth.
//   - Invalid n/alpha/degree fail before any work with errors wrapping
//     core.ErrInvalidArgument; geometry failures wrap hull.ErrGeometry.
//   - No partially built Graph is ever returned alongside an error.
//   - For a fixed seed (or a fixed point set) every stage is deterministic.
//   - MST edges are never removed, so a labyrinth of a connected triangulation
//     stays connected.
package builder
