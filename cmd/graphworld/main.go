// SPDX-License-Identifier: MIT

// graphworld generates sphere graph worlds: sampled vertices, their convex
// hull triangulation and degree-constrained labyrinths.
//
// Usage:
//
//	graphworld blank       [-n 50] [--alpha 2] [--seed 1]
//	graphworld triangulate [-n 50] [--format obj --out world.obj]
//	graphworld labyrinth   [-n 50] [--degree 3] [--format json --out -]
//	graphworld batch       [--count 8 --workers 4] [--format obj --out world.obj]
//
// Every flag may also come from a YAML file given with --config; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   "graphworld",
		Short: "Generate graph worlds on the unit sphere",
		Long: "graphworld samples points on the unit sphere, triangulates their convex hull\n" +
			"and prunes the triangulation into a labyrinth that keeps a minimum degree.",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	opts.bind(root)

	root.AddCommand(newGenerateCmd(opts, kindBlank))
	root.AddCommand(newGenerateCmd(opts, kindTriangulated))
	root.AddCommand(newGenerateCmd(opts, kindLabyrinth))
	root.AddCommand(newBatchCmd(opts))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
