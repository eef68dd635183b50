// SPDX-License-Identifier: MIT

// Package graphworld generates "graph worlds": vertices spread over the unit
// sphere, connected first by the triangulation of their convex hull and then
// thinned into a labyrinth that stays connected and keeps every vertex above
// a minimum degree.
//
// The pipeline is split across small subpackages:
//
//	core/     — Point, Edge, EdgeSet and the Graph with its minimum spanning forest
//	sphere/   — Fibonacci spiral sampling with random subsampling
//	hull/     — 3D convex hull triangulation (quickhull-go adapter) and static fixtures
//	builder/  — GenerateBlank, GenerateTriangulated, GenerateLabyrinth + options
//	render/   — Wavefront OBJ and JSON writers for external viewers
//	config/   — YAML settings for the graphworld CLI
//
// Quick example:
//
//	g, err := builder.GenerateLabyrinth(50,
//		builder.WithAlpha(2),
//		builder.WithDegree(3),
//		builder.WithSeed(42),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(g.Stats())
//
// The cmd/graphworld binary wraps the same pipeline:
//
//	go install github.com/katalvlaran/graphworld/cmd/graphworld@latest
//	graphworld labyrinth -n 200 --seed 42 --format obj --out world.obj
package graphworld
