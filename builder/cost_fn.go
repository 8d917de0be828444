// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// cost_fn.go — per-edge polynomial cost generators.
//
// A CostFn returns the coefficient row c0, c1, … of one edge. Rows of
// different lengths are padded with zeros when Build assembles the model.
// Random generators fall back to their deterministic midpoint when no RNG
// is configured, so a build without WithSeed stays reproducible.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// CostFn generates one polynomial row. The returned slice must not be
// retained by the function.
type CostFn func(rng *rand.Rand) []float64

// bprAlpha and bprPower are the Bureau of Public Roads constants.
const (
	bprAlpha = 0.15
	bprPower = 4
)

// ZeroCostFn gives every edge zero cost.
func ZeroCostFn(_ *rand.Rand) []float64 { return []float64{0} }

// ConstantCostFn gives every edge the same row. Panics on an empty or
// non-finite row.
func ConstantCostFn(row ...float64) CostFn {
	if len(row) == 0 {
		panic("ConstantCostFn: empty row")
	}
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("ConstantCostFn: non-finite coefficient %g", v))
		}
	}
	return func(_ *rand.Rand) []float64 {
		return append([]float64(nil), row...)
	}
}

// UniformLinearCostFn draws c0 from [minFree, maxFree] and c1 from
// [minSlope, maxSlope]. Panics when a range is inverted.
func UniformLinearCostFn(minFree, maxFree, minSlope, maxSlope float64) CostFn {
	if maxFree < minFree || maxSlope < minSlope {
		panic(fmt.Sprintf("UniformLinearCostFn: inverted range [%g,%g] [%g,%g]", minFree, maxFree, minSlope, maxSlope))
	}
	draw := func(rng *rand.Rand, lo, hi float64) float64 {
		if rng == nil {
			return (lo + hi) / 2
		}
		return lo + rng.Float64()*(hi-lo)
	}
	return func(rng *rand.Rand) []float64 {
		free := draw(rng, minFree, maxFree)
		return []float64{free, draw(rng, minSlope, maxSlope)}
	}
}

// BPRCostFn is the Bureau of Public Roads link cost
// t0·(1 + 0.15·(x/capacity)^4) as a degree-4 polynomial. Panics unless
// t0 ≥ 0 and capacity > 0.
func BPRCostFn(t0, capacity float64) CostFn {
	if t0 < 0 || !(capacity > 0) {
		panic(fmt.Sprintf("BPRCostFn: need t0 ≥ 0 and capacity > 0, got %g, %g", t0, capacity))
	}
	c4 := t0 * bprAlpha / math.Pow(capacity, bprPower)
	return ConstantCostFn(t0, 0, 0, 0, c4)
}

// WithConstantCost is WithCostFn(ConstantCostFn(row...)).
func WithConstantCost(row ...float64) Option {
	return WithCostFn(ConstantCostFn(row...))
}

// WithBPRCost is WithCostFn(BPRCostFn(t0, capacity)).
func WithBPRCost(t0, capacity float64) Option {
	return WithCostFn(BPRCostFn(t0, capacity))
}
