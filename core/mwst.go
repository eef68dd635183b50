// SPDX-License-Identifier: MIT

// File: mwst.go
// Role: Minimum-weight spanning tree (forest) of the current edge set.

package core

import "sort"

// MWST computes the minimum-weight spanning forest of g's current edges,
// weighted by squared Euclidean distance.
//
// It is Kruskal's algorithm over a disjoint-set forest with path compression
// and union by rank. A connected graph yields a tree with VertexCount()-1
// edges; a disconnected one yields one tree per component, never an error.
//
// Tie-break: edges of equal weight are taken in (U,V) ascending order, so the
// result is a pure function of the vertex points and the edge set.
//
// Steps:
//  1. Collect edges in (U,V) order and stable-sort them by ascending weight.
//  2. Give every vertex its own set (parent[v] = v, rank[v] = 0).
//  3. For each edge, skip it if both endpoints share a root (cycle);
//     otherwise add it to the result and union the two sets.
//  4. Stop early once VertexCount()-1 edges are selected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func (g *Graph) MWST() EdgeSet {
	n := len(g.vertices)
	mst := make(EdgeSet, n)
	if n < 2 {
		return mst
	}

	// 1. Deterministic base order, then stable sort by weight.
	edges := g.edges.Sorted()
	weights := make(map[Edge]float64, len(edges))
	for _, e := range edges {
		weights[e] = g.weight(e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return weights[edges[i]] < weights[edges[j]]
	})

	// 2. Disjoint-set forest over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank of two distinct roots.
	union := func(ru, rv int) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	// 3. Scan edges in ascending weight.
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst[e] = struct{}{}
		// 4. A spanning tree is complete.
		if len(mst) == n-1 {
			break
		}
	}

	return mst
}
