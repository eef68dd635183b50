// SPDX-License-Identifier: MIT

// Package: graphworld/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Validation sentinels wrap core.ErrInvalidArgument, so callers may branch
//     on the single kind or on the specific parameter.
//   • Geometry failures from the triangulator are passed through with %w and
//     keep hull.ErrGeometry reachable via errors.Is.
//   • Context is attached as "<Method>: <detail>: %w".

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphworld/core"
)

// ErrTooFewVertices indicates n is below the minimum of the requested stage
// (1 for a blank world, MinHullVertices once triangulation is involved).
var ErrTooFewVertices = fmt.Errorf("builder: too few vertices: %w", core.ErrInvalidArgument)

// ErrInvalidAlpha indicates an oversampling factor below 1 or not finite.
var ErrInvalidAlpha = fmt.Errorf("builder: invalid alpha: %w", core.ErrInvalidArgument)

// ErrInvalidDegree indicates a minimum retained degree below MinDegree.
var ErrInvalidDegree = fmt.Errorf("builder: invalid degree: %w", core.ErrInvalidArgument)

// ErrConstructFailed indicates a programmer error in stage composition
// (e.g., a nil Stage passed to Build).
var ErrConstructFailed = errors.New("builder: construction failed")
