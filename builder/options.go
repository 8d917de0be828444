// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed/WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Build call.
type Option func(*config)

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand provides the RNG for RandomSparse and random cost functions.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn sets the per-edge polynomial row generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}

// WithCapacity sets the flow bounds of every generated edge. Panics
// on NaN or lb > ub.
func WithCapacity(lb, ub float64) Option {
	if math.IsNaN(lb) || math.IsNaN(ub) || lb > ub {
		panic(fmt.Sprintf("builder: WithCapacity(%g, %g)", lb, ub))
	}
	return func(c *config) { c.lb, c.ub = lb, ub }
}

// WithName sets the network name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger receives a debug line per Build. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
