// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// config.go — resolved builder configuration.

package builder

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// config is the immutable result of applying every Option. Constructors
// receive it by value.
type config struct {
	idFn   IDFn
	rng    *rand.Rand
	costFn CostFn
	lb, ub float64
	name   string
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   DefaultIDFn,
		costFn: ZeroCostFn,
		lb:     0,
		ub:     math.Inf(1),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
