// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: …").
//   • Option constructors panic instead of returning these.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, or a draft that
// network.New or the cost model rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownNode indicates a constructor referring to a label no earlier
// constructor added.
var ErrUnknownNode = errors.New("builder: unknown node")
