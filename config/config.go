// SPDX-License-Identifier: MIT

// Package config loads CLI settings for graphworld from YAML.
//
// Precedence: built-in defaults, then the YAML file, then command-line flags
// (applied by the caller). A missing file is not an error.
//
// Example file:
//
//	vertices: 50
//	alpha: 2
//	degree: 3
//	seed: 42
//	output:
//	  format: obj
//	  path: world.obj
//	batch:
//	  count: 8
//	  workers: 4
//	log:
//	  level: info
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Output format names.
const (
	FormatOBJ  = "obj"
	FormatJSON = "json"
	FormatNone = "none"
)

// Config holds every knob of the CLI.
type Config struct {
	Vertices int     `yaml:"vertices"`
	Alpha    float64 `yaml:"alpha"`
	Degree   int     `yaml:"degree"`
	// Seed is nil when each run should draw fresh randomness.
	Seed   *int64       `yaml:"seed,omitempty"`
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig selects where and how the finished graph is written.
type OutputConfig struct {
	Format string `yaml:"format"`
	// Path "" or "-" means stdout.
	Path string `yaml:"path"`
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Count   int `yaml:"count"`
	Workers int `yaml:"workers"`
}

// LogConfig sets the slog level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Defaults returns the classic demo settings: 50 vertices, alpha 2,
// degree 3, no output file.
func Defaults() *Config {
	return &Config{
		Vertices: 50,
		Alpha:    2,
		Degree:   3,
		Output:   OutputConfig{Format: FormatNone},
		Batch:    BatchConfig{Count: 4, Workers: 4},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadFromFile reads path over Defaults(). Keys absent from the file keep
// their defaults; a missing file returns the defaults unchanged.
func LoadFromFile(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if c.Vertices < 1 {
		return fmt.Errorf("vertices=%d must be positive: %w", c.Vertices, ErrInvalidConfig)
	}
	if math.IsNaN(c.Alpha) || math.IsInf(c.Alpha, 0) || c.Alpha < 1 {
		return fmt.Errorf("alpha=%g must be >= 1: %w", c.Alpha, ErrInvalidConfig)
	}
	if c.Degree < 1 {
		return fmt.Errorf("degree=%d must be >= 1: %w", c.Degree, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatOBJ, FormatJSON, FormatNone, "":
	default:
		return fmt.Errorf("output.format=%q: %w", c.Output.Format, ErrInvalidConfig)
	}
	if c.Batch.Count < 1 || c.Batch.Workers < 1 {
		return fmt.Errorf("batch count=%d workers=%d must be positive: %w",
			c.Batch.Count, c.Batch.Workers, ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps Level to a slog.Level. Empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrInvalidConfig)
	}
}
