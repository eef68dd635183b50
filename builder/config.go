// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • alpha        = DefaultAlpha   (1, no oversampling)
//   • degree       = DefaultDegree  (3)
//   • triangulator = hull.QuickHull{}
//   • logger       = discard
//   • rng          = fresh time-seeded source, created per call, so that two
//                    unseeded generations draw independent subsamples.

package builder

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/graphworld/hull"
	"github.com/katalvlaran/graphworld/sphere"
)

// builderConfig aggregates all knobs used by the stages.
// It is passed by VALUE to stages (immutable to callers).
type builderConfig struct {
	alpha        float64
	degree       int
	rng          *rand.Rand
	triangulator hull.Triangulator
	logger       *slog.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		alpha:        DefaultAlpha,
		degree:       DefaultDegree,
		triangulator: hull.QuickHull{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// validate checks the parameters shared by every entry point. Degree is
// only read by the Labyrinth stage and is checked by validateDegree.
func (c builderConfig) validate(method string) error {
	if math.IsNaN(c.alpha) || math.IsInf(c.alpha, 0) || c.alpha < sphere.MinAlpha {
		return fmt.Errorf("%s: alpha=%g must be ≥ %g: %w", method, c.alpha, sphere.MinAlpha, ErrInvalidAlpha)
	}

	return nil
}

// validateDegree checks the minimum retained degree.
func (c builderConfig) validateDegree(method string) error {
	if c.degree < MinDegree {
		return fmt.Errorf("%s: degree=%d < min=%d: %w", method, c.degree, MinDegree, ErrInvalidDegree)
	}

	return nil
}
