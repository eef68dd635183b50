// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Deep copies of a Graph.

package core

// Clone returns a deep copy: vertices, edges and neighbor sets.
// Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(g.vertices)
	for e := range g.edges {
		c.edges[e] = struct{}{}
		c.neighbors[e.U][e.V] = struct{}{}
		c.neighbors[e.V][e.U] = struct{}{}
	}

	return c
}

// CloneEmpty returns a Graph with the same vertices and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return NewGraph(g.vertices)
}
