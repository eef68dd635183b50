// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"

	"github.com/katalvlaran/graphworld/core"
)

// Static is a Triangulator that ignores coordinates and returns a fixed face
// list. Indices are checked against the point count on every call.
type Static []Simplex

// Triangulate returns a copy of s, or ErrGeometry if a face references an
// index outside [0, len(points)).
func (s Static) Triangulate(points []core.Point) ([]Simplex, error) {
	out := make([]Simplex, len(s))
	for k, f := range s {
		for _, idx := range f {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("Static: face %d index %d outside %d points: %w", k, idx, len(points), ErrGeometry)
			}
		}
		out[k] = f
	}

	return out, nil
}

// Octahedron is the 6-vertex, 8-face closed triangulation. Vertices 0 and 1
// are the poles; 2,3,4,5 form the equator in cyclic order 2-4-3-5.
var Octahedron = Static{
	{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
	{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
}

// Icosahedron is the 12-vertex, 20-face closed triangulation: pole 0, upper
// ring 1..5, lower ring 6..10, pole 11. Upper vertex i touches lower i+5 and
// (i mod 5)+6; every vertex has degree 5.
var Icosahedron = Static{
	// cap around the top pole
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
	// band between the rings
	{1, 6, 7}, {1, 7, 2}, {2, 7, 8}, {2, 8, 3}, {3, 8, 9},
	{3, 9, 4}, {4, 9, 10}, {4, 10, 5}, {5, 10, 6}, {5, 6, 1},
	// cap around the bottom pole
	{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
}
