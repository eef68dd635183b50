// SPDX-License-Identifier: MIT

// Package core defines the central Point, Edge, EdgeSet and Graph types of a
// graph world: a fixed sequence of points on (or near) the unit sphere plus a
// mutable set of undirected edges between them.
//
// This file declares the data model, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument  - the single validation kind; every failure below wraps it.
//	ErrSameVertex       - both endpoints of an edge operation are the same index.
//	ErrIndexOutOfRange  - a vertex index lies outside [0, VertexCount()).
package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/geo/r3"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the only error kind raised by graph validation.
	// Callers branch with errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrSameVertex indicates an edge operation was called with i == j.
	ErrSameVertex = fmt.Errorf("indices must not be equal: %w", ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = fmt.Errorf("index out of bounds: %w", ErrInvalidArgument)
)

// Point is a 3D coordinate. It is r3.Vector, so Add, Sub, Dot, Cross, Mul,
// Norm and Norm2 come from github.com/golang/geo. Points produced by the
// sphere sampler lie on or near the unit sphere.
type Point = r3.Vector

// Edge is an unordered pair of distinct vertex indices.
//
// The pair is always stored normalized (U < V), so Edge{0,1} built by
// NewEdge(1, 0) and NewEdge(0, 1) compare equal and hash to the same map key.
type Edge struct {
	// U is the smaller endpoint index.
	U int

	// V is the larger endpoint index.
	V int
}

// NewEdge returns the normalized unordered pair {i, j}.
// It does not validate indices; Graph methods do.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}

	return Edge{U: i, V: j}
}

// String renders the edge as "{u,v}".
func (e Edge) String() string { return fmt.Sprintf("{%d,%d}", e.U, e.V) }

// less orders edges lexicographically by (U, V).
func (e Edge) less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// EdgeSet is a set of unordered edges without duplicates.
type EdgeSet map[Edge]struct{}

// Has reports whether e is in the set.
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[e]

	return ok
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int { return len(s) }

// Sorted returns the members ordered by (U, V) ascending.
// Complexity: O(E log E).
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Difference returns a new set holding the edges of s that are not in other.
// Complexity: O(|s|).
func (s EdgeSet) Difference(other EdgeSet) EdgeSet {
	out := make(EdgeSet, len(s))
	for e := range s {
		if !other.Has(e) {
			out[e] = struct{}{}
		}
	}

	return out
}

// sortEdges sorts edges in place by (U, V) ascending.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].less(edges[j]) })
}

// Graph owns a fixed vertex sequence, a mutable edge set and a neighbor map.
//
// Invariant: neighbors is the exact symmetric closure of edges. For every
// {i,j} in edges, j ∈ neighbors[i] and i ∈ neighbors[j]; no other adjacency
// exists. AddEdge and RemoveEdge are the only mutators and keep it atomically.
//
// A Graph is not safe for concurrent mutation. Build independent instances
// when generating in parallel.
type Graph struct {
	vertices  []Point
	edges     EdgeSet
	neighbors []map[int]struct{}
}

// NewGraph creates a Graph over a copy of points with no edges.
// Complexity: O(V).
func NewGraph(points []Point) *Graph {
	g := &Graph{
		vertices:  make([]Point, len(points)),
		edges:     make(EdgeSet),
		neighbors: make([]map[int]struct{}, len(points)),
	}
	copy(g.vertices, points)
	for i := range g.neighbors {
		g.neighbors[i] = make(map[int]struct{})
	}

	return g
}
