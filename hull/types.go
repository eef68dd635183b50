// SPDX-License-Identifier: MIT

package hull

import (
	"errors"

	"github.com/katalvlaran/graphworld/core"
)

// ErrGeometry is the single error kind for degenerate hull input.
// Callers branch with errors.Is(err, ErrGeometry).
var ErrGeometry = errors.New("hull: degenerate geometry")

// MinPoints is the fewest points that can span a 3D hull.
const MinPoints = 4

// Simplex is a triangular face given by three indices into the input points.
type Simplex [3]int

// Edges returns the three unordered edges of s.
func (s Simplex) Edges() [3]core.Edge {
	return [3]core.Edge{
		core.NewEdge(s[0], s[1]),
		core.NewEdge(s[0], s[2]),
		core.NewEdge(s[1], s[2]),
	}
}

// Triangulator computes a triangulated surface over points.
type Triangulator interface {
	Triangulate(points []core.Point) ([]Simplex, error)
}

// TriangulatorFunc adapts a plain function to Triangulator.
type TriangulatorFunc func(points []core.Point) ([]Simplex, error)

// Triangulate calls f(points).
func (f TriangulatorFunc) Triangulate(points []core.Point) ([]Simplex, error) {
	return f(points)
}
