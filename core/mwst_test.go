// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphworld/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMWST_Triangle: points at x=0,1,3 give weights 1 (0-1), 4 (1-2), 9 (0-2).
func TestMWST_Triangle(t *testing.T) {
	g := core.NewGraph([]core.Point{{X: 0}, {X: 1}, {X: 3}})
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	mst := g.MWST()
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, mst.Sorted())
	total, err := g.TotalWeight(mst)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
	// MWST is a query; the graph keeps all edges.
	assert.Equal(t, 3, g.EdgeCount())
}

func TestMWST_Trivial(t *testing.T) {
	assert.Zero(t, core.NewGraph(nil).MWST().Len())
	assert.Zero(t, core.NewGraph(linePoints(1)).MWST().Len())
	assert.Zero(t, core.NewGraph(linePoints(5)).MWST().Len(), "no edges, no tree")
}

// TestMWST_TieBreak: a unit square has four equal sides; the lexicographically
// smallest three edges must win.
func TestMWST_TieBreak(t *testing.T) {
	g := core.NewGraph([]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(0, 3))

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}}, g.MWST().Sorted())
}

func TestMWST_DisconnectedForest(t *testing.T) {
	g := core.NewGraph(linePoints(7))
	// component A: 0-1-2 triangle; component B: 3-4; 5 and 6 isolated
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(3, 4))

	mst := g.MWST()
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}}, mst.Sorted())
	assert.Equal(t, g.VertexCount()-g.ComponentCount(), mst.Len())
}

// TestMWST_ForestProperties checks, over many random graphs, that the result
// is acyclic, a subset of the input, and has V - components edges.
func TestMWST_ForestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(30)
		g := randomGraph(t, r, n, 0.05+0.5*r.Float64())

		mst := g.MWST()
		edges := mst.Sorted()
		require.True(t, isForest(n, edges), "trial %d: cycle in MWST", trial)
		require.Equal(t, n-g.ComponentCount(), len(edges), "trial %d", trial)
		for _, e := range edges {
			require.True(t, g.HasEdge(e.U, e.V), "trial %d: %v not in graph", trial, e)
		}
	}
}

// TestMWST_BruteForceOptimal compares the MWST weight with the minimum over
// every spanning forest of small graphs (5–8 vertices).
func TestMWST_BruteForceOptimal(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 30; trial++ {
		n := 5 + r.Intn(4)
		g := randomGraph(t, r, n, 0.45)
		edges := g.Edges()
		if len(edges) > 16 {
			edges = edges[:16] // keep 2^E tractable
			h := g.CloneEmpty()
			for _, e := range edges {
				require.NoError(t, h.AddEdge(e.U, e.V))
			}
			g = h
		}
		want := n - g.ComponentCount()

		best := math.Inf(1)
		for mask := 0; mask < 1<<len(edges); mask++ {
			var pick []core.Edge
			for k, e := range edges {
				if mask&(1<<k) != 0 {
					pick = append(pick, e)
				}
			}
			if len(pick) != want || !isForest(n, pick) {
				continue
			}
			var w float64
			for _, e := range pick {
				ew, err := g.Weight(e.U, e.V)
				require.NoError(t, err)
				w += ew
			}
			best = math.Min(best, w)
		}

		got, err := g.TotalWeight(g.MWST())
		require.NoError(t, err)
		require.InDelta(t, best, got, 1e-9, "trial %d", trial)
	}
}
