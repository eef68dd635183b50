// SPDX-License-Identifier: MIT

package core

// Stats summarizes the shape of a Graph.
type Stats struct {
	Vertices    int
	Edges       int
	Components  int
	MinDegree   int
	MaxDegree   int
	MeanDegree  float64
	TotalWeight float64
}

// Stats computes degree extremes, component count and total edge weight.
// An empty graph reports zero for every field.
// Complexity: O(V + E log d).
func (g *Graph) Stats() Stats {
	s := Stats{
		Vertices: len(g.vertices),
		Edges:    len(g.edges),
	}
	if s.Vertices == 0 {
		return s
	}
	s.Components = g.ComponentCount()
	s.MinDegree = len(g.neighbors[0])
	sum := 0
	for _, nb := range g.neighbors {
		d := len(nb)
		sum += d
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.MeanDegree = float64(sum) / float64(s.Vertices)
	for e := range g.edges {
		s.TotalWeight += g.weight(e)
	}

	return s
}
