// SPDX-License-Identifier: MIT

package core

import "sort"

// Components returns the connected components of g.
//
// Each component lists its vertex indices in ascending order; components are
// ordered by their smallest vertex. Isolated vertices form singleton components.
//
// Time:   O(V + E·log d) (neighbor lists are sorted for determinism).
// Memory: O(V).
func (g *Graph) Components() [][]int {
	n := len(g.vertices)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := range g.neighbors[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	return len(g.Components())
}
