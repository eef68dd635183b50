// SPDX-License-Identifier: MIT

// File: quickhull.go
// Role: 3D convex hull through github.com/markus-wa/quickhull-go.
// Determinism:
//   - The library is deterministic for a given point order; faces are
//     reported in its output order.

package hull

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"

	"github.com/katalvlaran/graphworld/core"
)

const methodQuickHull = "QuickHull"

// DefaultEpsilon is the relative tolerance of the span check when
// QuickHull.Epsilon is zero. It is multiplied by the largest absolute
// coordinate of the input.
const DefaultEpsilon = 1e-10

// QuickHull is the default Triangulator: the convex hull of the input,
// triangulated, with indices into the original points.
//
// Points strictly inside the hull are not hull vertices and appear in no
// simplex. Faces share one consistent orientation.
//
// Complexity: O(n log n) expected time, O(n) space.
type QuickHull struct {
	// Epsilon overrides DefaultEpsilon when positive.
	Epsilon float64
}

// Triangulate returns the hull faces of points.
//
// Steps:
//  1. Validate: at least MinPoints finite points.
//  2. Check the points span 3D; fail with ErrGeometry if all points are
//     coincident, collinear or coplanar.
//  3. Run quickhull with original indices and counter-clockwise winding.
//  4. Group the index stream into simplices, rejecting malformed faces.
func (h QuickHull) Triangulate(points []core.Point) ([]Simplex, error) {
	// 1) Validate input size and coordinates.
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%s: %d points < %d: %w", methodQuickHull, len(points), MinPoints, ErrGeometry)
	}
	scale := 0.0
	for i, p := range points {
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%s: point %d is not finite: %w", methodQuickHull, i, ErrGeometry)
			}
			scale = math.Max(scale, math.Abs(c))
		}
	}
	eps := h.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	// 2) Affine span.
	if err := checkSpan(points, eps*math.Max(scale, math.SmallestNonzeroFloat64)); err != nil {
		return nil, err
	}

	// 3) Hull.
	indices, err := runQuickHull(points)
	if err != nil {
		return nil, err
	}

	// 4) Faces.
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%s: %d indices is not a triangle list: %w", methodQuickHull, len(indices), ErrGeometry)
	}
	out := make([]Simplex, 0, len(indices)/3)
	for k := 0; k < len(indices); k += 3 {
		s := Simplex{indices[k], indices[k+1], indices[k+2]}
		for _, idx := range s {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("%s: face %d index %d outside %d points: %w", methodQuickHull, k/3, idx, len(points), ErrGeometry)
			}
		}
		if s[0] == s[1] || s[1] == s[2] || s[0] == s[2] {
			return nil, fmt.Errorf("%s: face %d %v repeats a vertex: %w", methodQuickHull, k/3, s, ErrGeometry)
		}
		out = append(out, s)
	}

	return out, nil
}

// runQuickHull converts a library panic into ErrGeometry.
func runQuickHull(points []r3.Vector) (indices []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			indices, err = nil, fmt.Errorf("%s: %v: %w", methodQuickHull, r, ErrGeometry)
		}
	}()
	ch := new(quickhull.QuickHull).ConvexHull(points, true, true, 0)

	return ch.Indices, nil
}

// checkSpan verifies that points contain four affinely independent members:
// an extreme point, the point farthest from it, the point farthest from that
// line and the point farthest from that plane.
func checkSpan(pts []r3.Vector, tol float64) error {
	i0 := 0
	for i, p := range pts {
		if p.X < pts[i0].X {
			i0 = i
		}
	}
	o := pts[i0]

	i1, best := -1, 0.0
	for i, p := range pts {
		if d := p.Sub(o).Norm(); d > best {
			i1, best = i, d
		}
	}
	if i1 < 0 || best <= tol {
		return fmt.Errorf("%s: all points coincide: %w", methodQuickHull, ErrGeometry)
	}

	axis := pts[i1].Sub(o)
	i2, best := -1, 0.0
	for i, p := range pts {
		if d := axis.Cross(p.Sub(o)).Norm(); d > best {
			i2, best = i, d
		}
	}
	if i2 < 0 || best/axis.Norm() <= tol {
		return fmt.Errorf("%s: all points are collinear: %w", methodQuickHull, ErrGeometry)
	}

	n := axis.Cross(pts[i2].Sub(o)).Normalize()
	best = 0.0
	for _, p := range pts {
		best = math.Max(best, math.Abs(n.Dot(p.Sub(o))))
	}
	if best <= tol {
		return fmt.Errorf("%s: all points are coplanar: %w", methodQuickHull, ErrGeometry)
	}

	return nil
}
