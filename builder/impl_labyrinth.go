// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// impl_labyrinth.go - the triangulated → labyrinth stage.
//
// Canonical model:
//   - T = g.MWST(); candidates = E(g) − T.
//   - Candidates are visited by weight descending (longest first), ties by
//     (U,V) ascending.
//   - {u,v} is removed iff deg(u) > degree AND deg(v) > degree, using live
//     degrees: earlier removals change later eligibility. Greedy, single pass.
//
// Guarantees:
//   - T ⊆ E(result), so connectivity of the input is preserved.
//   - No vertex loses an edge while it has `degree` neighbors or fewer.
//
// Complexity:
//   - Time: O(E log E) (MST + candidate sort) + O(E) pruning.
//   - Space: O(E).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphworld/core"
)

// Labyrinth returns the Stage that prunes non-tree edges of g subject to the
// minimum-degree constraint cfg.degree.
func Labyrinth() Stage {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := cfg.validateDegree(MethodPrune); err != nil {
			return err
		}

		// 1) Spanning tree and removal candidates.
		tree := g.MWST()
		candidates := g.EdgeSet().Difference(tree).Sorted()

		// 2) Longest first; stable sort keeps (U,V) order among equal weights.
		weights := make(map[core.Edge]float64, len(candidates))
		for _, e := range candidates {
			w, err := g.Weight(e.U, e.V)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodPrune, err)
			}
			weights[e] = w
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return weights[candidates[i]] > weights[candidates[j]]
		})

		// 3) Greedy pass over live degrees.
		removed := 0
		for _, e := range candidates {
			du, err := g.Degree(e.U)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodPrune, err)
			}
			dv, err := g.Degree(e.V)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodPrune, err)
			}
			if du > cfg.degree && dv > cfg.degree {
				if err := g.RemoveEdge(e.U, e.V); err != nil {
					return fmt.Errorf("%s: %w", MethodPrune, err)
				}
				removed++
			}
		}
		cfg.logger.Debug("pruned to labyrinth",
			"tree_edges", tree.Len(), "candidates", len(candidates),
			"removed", removed, "edges", g.EdgeCount(), "degree", cfg.degree)

		return nil
	}
}
