// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphworld/builder"
	"github.com/katalvlaran/graphworld/config"
	"github.com/katalvlaran/graphworld/core"
	"github.com/katalvlaran/graphworld/render"
)

// cliOptions receives the raw persistent flags of the root command.
type cliOptions struct {
	configPath string
	logLevel   string
	vertices   int
	alpha      float64
	degree     int
	seed       int64
	format     string
	out        string
	count      int
	workers    int
}

func (o *cliOptions) bind(root *cobra.Command) {
	d := config.Defaults()
	f := root.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML config file (missing file means defaults)")
	f.StringVar(&o.logLevel, "log-level", d.Log.Level, "log level: debug, info, warn, error")
	f.IntVarP(&o.vertices, "vertices", "n", d.Vertices, "number of vertices")
	f.Float64Var(&o.alpha, "alpha", d.Alpha, "oversampling factor (>= 1)")
	f.IntVar(&o.degree, "degree", d.Degree, "minimum retained degree of labyrinth pruning")
	f.Int64Var(&o.seed, "seed", 0, "RNG seed (unset: time-seeded)")
	f.StringVar(&o.format, "format", d.Output.Format, "output format: obj, json, none")
	f.StringVarP(&o.out, "out", "o", d.Output.Path, "output path (empty or - for stdout)")
	f.IntVar(&o.count, "count", d.Batch.Count, "batch: number of worlds")
	f.IntVar(&o.workers, "workers", d.Batch.Workers, "batch: concurrent generations")
}

// resolve loads the config file and overlays every flag set on the command line.
func (o *cliOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFromFile(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("vertices") {
		cfg.Vertices = o.vertices
	}
	if flags.Changed("alpha") {
		cfg.Alpha = o.alpha
	}
	if flags.Changed("degree") {
		cfg.Degree = o.degree
	}
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("out") {
		cfg.Output.Path = o.out
	}
	if flags.Changed("count") {
		cfg.Batch.Count = o.count
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = o.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger writes text logs to w at the configured level.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	lvl, _ := cfg.Log.SlogLevel() // validated by resolve

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// builderOptions maps cfg onto builder options. offset shifts the seed so
// batch members differ while staying reproducible.
func builderOptions(cfg *config.Config, logger *slog.Logger, offset int64) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithAlpha(cfg.Alpha),
		builder.WithDegree(cfg.Degree),
		builder.WithLogger(logger),
	}
	if cfg.Seed != nil {
		opts = append(opts, builder.WithSeed(*cfg.Seed+offset))
	}

	return opts
}

func toStdout(path string) bool { return path == "" || path == "-" }

func wantsOutput(cfg *config.Config) bool {
	return !strings.EqualFold(cfg.Output.Format, config.FormatNone) && cfg.Output.Format != ""
}

// writeGraph renders g to path, or to stdout when path is empty or "-".
func writeGraph(stdout io.Writer, g *core.Graph, format, path string) error {
	if toStdout(path) {
		return render.Write(stdout, g, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := render.Write(f, g, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func printStats(w io.Writer, label string, s core.Stats) {
	fmt.Fprintf(w, "%s: vertices=%d edges=%d components=%d degree=%d..%d mean=%.2f weight=%.4f\n",
		label, s.Vertices, s.Edges, s.Components, s.MinDegree, s.MaxDegree, s.MeanDegree, s.TotalWeight)
}
