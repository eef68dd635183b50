// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphworld/builder"
	"github.com/katalvlaran/graphworld/core"
)

var errBatchStdout = errors.New("batch output needs a file path")

func newBatchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Generate several independent labyrinths concurrently",
		Long: "batch generates --count labyrinths with at most --workers running at once.\n" +
			"With --seed S member i uses seed S+i. With --out world.obj member i is\n" +
			"written to world-00i.obj.",
		Args: cobra.NoArgs,
		RunE: runBatch(opts),
	}
}

func runBatch(opts *cliOptions) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := opts.resolve(cmd)
		if err != nil {
			return err
		}
		write := wantsOutput(cfg)
		if write && toStdout(cfg.Output.Path) {
			return errBatchStdout
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg)

		stats := make([]core.Stats, cfg.Batch.Count)
		g, gCtx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Batch.Workers)
		for i := 0; i < cfg.Batch.Count; i++ {
			i := i
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				world, err := builder.GenerateLabyrinth(cfg.Vertices,
					builderOptions(cfg, logger.With("member", i), int64(i))...)
				if err != nil {
					return fmt.Errorf("member %d: %w", i, err)
				}
				stats[i] = world.Stats()
				if !write {
					return nil
				}

				return writeGraph(nil, world, cfg.Output.Format, memberPath(cfg.Output.Path, i))
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, s := range stats {
			printStats(out, fmt.Sprintf("world %d", i), s)
		}

		return nil
	}
}

// memberPath inserts a zero-padded member index before the extension:
// "world.obj" -> "world-003.obj".
func memberPath(path string, i int) string {
	ext := filepath.Ext(path)

	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}
