// SPDX-License-Identifier: MIT

package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphworld/core"
	"github.com/stretchr/testify/require"
)

// linePoints returns n points on the X axis at x = 0, 1, 2, ...
// Weights between them are (i-j)², which keeps expectations easy to read.
func linePoints(n int) []core.Point {
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.Point{X: float64(i)}
	}

	return pts
}

// randomPoints returns n points with coordinates in [-1,1) from a seeded rng.
func randomPoints(r *rand.Rand, n int) []core.Point {
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.Point{X: 2*r.Float64() - 1, Y: 2*r.Float64() - 1, Z: 2*r.Float64() - 1}
	}

	return pts
}

// randomGraph builds a graph over n random points where each pair is an
// edge with probability p.
func randomGraph(t *testing.T, r *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(randomPoints(r, n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				require.NoError(t, g.AddEdge(i, j))
			}
		}
	}

	return g
}

// requireSymmetric asserts the neighbor map is the exact symmetric closure
// of the edge set.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	set := g.EdgeSet()
	adjacent := 0
	for i := 0; i < g.VertexCount(); i++ {
		nbrs, err := g.Neighbors(i)
		require.NoError(t, err)
		for _, j := range nbrs {
			back, err := g.Neighbors(j)
			require.NoError(t, err)
			require.Contains(t, back, i, "neighbor %d of %d is not mirrored", j, i)
			require.True(t, set.Has(core.NewEdge(i, j)), "adjacency %d-%d has no edge", i, j)
			adjacent++
		}
	}
	require.Equal(t, 2*set.Len(), adjacent, "every edge must appear twice in the neighbor map")
}

// isForest reports whether edges over n vertices contain no cycle.
func isForest(n int, edges []core.Edge) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			return false
		}
		parent[ru] = rv
	}

	return true
}
