// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph behind a graph world: a fixed,
// ordered sequence of 3D points and a mutable set of undirected edges between
// them, with a neighbor map kept as the exact symmetric closure of the edges.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are identified by their index into the point sequence and are
//     never inserted or removed after NewGraph.
//   - Edges are unordered pairs {i,j}, i ≠ j, stored normalized as Edge{U<V};
//     the edge set holds no duplicates and no self-loops.
//   - Weights are derived, never stored: Weight(i,j) is the squared Euclidean
//     distance between the two points and works for any valid pair.
//
// Core Methods:
//
//	// Edge lifecycle
//	AddEdge(i, j int) error            // O(1), idempotent
//	RemoveEdge(i, j int) error         // O(1), idempotent
//	Weight(i, j int) (float64, error)  // O(1)
//
//	// Queries
//	Edges() []Edge                     // O(E log E), sorted by (U,V)
//	Neighbors(i int) ([]int, error)    // O(d log d), sorted
//	Degree(i int) (int, error)         // O(1)
//	Components() [][]int               // O(V+E)
//
//	// Spanning tree
//	MWST() EdgeSet                     // O(E log E), Kruskal + disjoint sets
//
// Errors:
//
// Every validation failure wraps ErrInvalidArgument. Equal indices wrap
// ErrSameVertex; indices outside [0, VertexCount()) wrap ErrIndexOutOfRange.
// Branch with errors.Is.
//
// Concurrency:
//
// A Graph has no internal locking. It is owned by one generation call while it
// is built and treated as read-only afterwards.
package core
