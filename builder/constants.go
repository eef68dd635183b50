// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the generation stages.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the entry point or stage name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBlank is the canonical name for GenerateBlank.
	MethodBlank = "GenerateBlank"
	// MethodTriangulated is the canonical name for GenerateTriangulated.
	MethodTriangulated = "GenerateTriangulated"
	// MethodLabyrinth is the canonical name for GenerateLabyrinth.
	MethodLabyrinth = "GenerateLabyrinth"
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
	// MethodTriangulate is the canonical name for the Triangulate stage.
	MethodTriangulate = "Triangulate"
	// MethodPrune is the canonical name for the Labyrinth stage.
	MethodPrune = "Labyrinth"
)

//-----------------------------------------------------------------------------
// Minimums and Defaults
//-----------------------------------------------------------------------------

// MinBlankVertices is the smallest n accepted by GenerateBlank.
const MinBlankVertices = 1

// MinHullVertices is the smallest n that can span a 3D convex hull.
const MinHullVertices = 4

// MinDegree is the smallest minimum-retained-degree accepted by Labyrinth.
const MinDegree = 1

// DefaultAlpha is the default oversampling factor (no oversampling).
const DefaultAlpha = 1.0

// DefaultDegree is the default minimum retained degree after pruning.
const DefaultDegree = 3
