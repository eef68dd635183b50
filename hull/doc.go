// SPDX-License-Identifier: MIT

// Package hull turns a point sequence into a triangulated surface.
//
// The Triangulator interface is the only thing the generation pipeline needs:
// points in, triangular simplices out, each a triple of indices into the input.
//
//   - QuickHull computes the 3D convex hull with
//     github.com/markus-wa/quickhull-go. Faces share one orientation and
//     reference the original point indices.
//   - Static returns a fixed list of simplices; it lets MST and pruning logic be
//     tested on hand-built triangulations without any geometry.
//
// Failure modes of the geometry (fewer than four points, all points collinear
// or coplanar, non-finite coordinates) are reported as ErrGeometry.
package hull
