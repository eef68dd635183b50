// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Read-only vertex queries: VertexCount/Vertex/Vertices/Neighbors/Degree.
// Vertices are fixed at construction; only edges ever change.

package core

import (
	"fmt"
	"sort"
)

// validateIndex checks that i is in [0, VertexCount()).
func (g *Graph) validateIndex(method string, i int) error {
	if i < 0 || i >= len(g.vertices) {
		return fmt.Errorf("%s(%d): %d vertices: %w", method, i, len(g.vertices), ErrIndexOutOfRange)
	}

	return nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the point of vertex i.
func (g *Graph) Vertex(i int) (Point, error) {
	if err := g.validateIndex("Vertex", i); err != nil {
		return Point{}, err
	}

	return g.vertices[i], nil
}

// Vertices returns a copy of the vertex sequence in index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Point {
	out := make([]Point, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Neighbors returns the indices adjacent to i, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Neighbors(i int) ([]int, error) {
	if err := g.validateIndex("Neighbors", i); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.neighbors[i]))
	for j := range g.neighbors[i] {
		out = append(out, j)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of i.
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	if err := g.validateIndex("Degree", i); err != nil {
		return 0, err
	}

	return len(g.neighbors[i]), nil
}
