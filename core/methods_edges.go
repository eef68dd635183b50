// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus the geometric Weight query.
// Determinism:
//   - Edges() returns edges sorted by (U,V) asc.
// Invariants:
//   - Every mutation updates the edge set and both neighbor sets together.

package core

import "fmt"

// validatePair checks i != j and that both indices are in range.
// The returned error wraps ErrSameVertex or ErrIndexOutOfRange.
func (g *Graph) validatePair(method string, i, j int) error {
	if i == j {
		return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrSameVertex)
	}
	n := len(g.vertices)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%s(%d,%d): %d vertices: %w", method, i, j, n, ErrIndexOutOfRange)
	}

	return nil
}

// AddEdge inserts the unordered edge {i,j}.
//
// Re-adding an existing edge is a no-op.
//
// Steps:
//  1. Validate i != j and both indices in [0, VertexCount()).
//  2. Insert NewEdge(i,j) into the edge set.
//  3. Insert j into neighbors(i) and i into neighbors(j).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int) error {
	if err := g.validatePair("AddEdge", i, j); err != nil {
		return err
	}
	g.edges[NewEdge(i, j)] = struct{}{}
	g.neighbors[i][j] = struct{}{}
	g.neighbors[j][i] = struct{}{}

	return nil
}

// RemoveEdge deletes the unordered edge {i,j}.
//
// Removing an absent edge is a no-op; only index validation can fail.
// Complexity: O(1).
func (g *Graph) RemoveEdge(i, j int) error {
	if err := g.validatePair("RemoveEdge", i, j); err != nil {
		return err
	}
	delete(g.edges, NewEdge(i, j))
	delete(g.neighbors[i], j)
	delete(g.neighbors[j], i)

	return nil
}

// Weight returns the squared Euclidean distance between vertices i and j.
//
// {i,j} need not be an edge; this is a pure geometric query. The value is
// recomputed on every call and never cached.
// Complexity: O(1).
func (g *Graph) Weight(i, j int) (float64, error) {
	if err := g.validatePair("Weight", i, j); err != nil {
		return 0, err
	}

	return g.vertices[i].Sub(g.vertices[j]).Norm2(), nil
}

// weight is the unchecked form of Weight for edges already known to be valid.
func (g *Graph) weight(e Edge) float64 {
	return g.vertices[e.U].Sub(g.vertices[e.V]).Norm2()
}

// HasEdge reports whether {i,j} is currently an edge.
// Invalid indices simply report false.
func (g *Graph) HasEdge(i, j int) bool {
	return g.edges.Has(NewEdge(i, j))
}

// Edges returns all edges sorted by (U,V) asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	return g.edges.Sorted()
}

// EdgeSet returns a copy of the edge set.
// Complexity: O(E).
func (g *Graph) EdgeSet() EdgeSet {
	out := make(EdgeSet, len(g.edges))
	for e := range g.edges {
		out[e] = struct{}{}
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TotalWeight sums Weight over edges. Edges must reference valid vertices.
// Complexity: O(E).
func (g *Graph) TotalWeight(edges EdgeSet) (float64, error) {
	var total float64
	for e := range edges {
		w, err := g.Weight(e.U, e.V)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
