// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphworld/builder"
	"github.com/katalvlaran/graphworld/core"
)

// worldKind names one generation entry point of the builder package.
type worldKind struct {
	use      string
	short    string
	generate func(n int, opts ...builder.BuilderOption) (*core.Graph, error)
}

var (
	kindBlank = worldKind{
		use:      "blank",
		short:    "Sample vertices on the sphere, no edges",
		generate: builder.GenerateBlank,
	}
	kindTriangulated = worldKind{
		use:      "triangulate",
		short:    "Connect sampled vertices by their convex hull triangulation",
		generate: builder.GenerateTriangulated,
	}
	kindLabyrinth = worldKind{
		use:      "labyrinth",
		short:    "Prune the triangulation to a spanning tree plus degree-protected edges",
		generate: builder.GenerateLabyrinth,
	}
)

func newGenerateCmd(opts *cliOptions, kind worldKind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.use,
		Short: kind.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			g, err := kind.generate(cfg.Vertices, builderOptions(cfg, logger, 0)...)
			if err != nil {
				return err
			}
			stats := g.Stats()
			logger.Info("generated world", "kind", kind.use,
				"vertices", stats.Vertices, "edges", stats.Edges, "components", stats.Components)

			out := cmd.OutOrStdout()
			if !wantsOutput(cfg) {
				printStats(out, kind.use, stats)
				return nil
			}
			if !toStdout(cfg.Output.Path) {
				printStats(out, kind.use, stats)
			}

			return writeGraph(out, g, cfg.Output.Format, cfg.Output.Path)
		},
	}
}
