// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// impl_complete.go — Complete(n) and RandomSparse(n, p).
//
// Contract:
//   - Nodes idFn(0..n-1) on a circle of radius 1.
//   - Ordered pairs (i, j), i ≠ j, visited with i then j ascending.
//   - RandomSparse keeps a pair when rng.Float64() < p; p=0 and p=1 need
//     no RNG.
//
// Complexity: O(n²).

package builder

import (
	"fmt"
	"math"
)

const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	minCompleteNodes   = 2
	minSparseNodes     = 1
	probMin            = 0.0
	probMax            = 1.0
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		return pairs(d, cfg, methodComplete, n, func() bool { return true })
	}
}

// RandomSparse returns a Constructor that keeps each ordered pair with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg config) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		return pairs(d, cfg, methodRandomSparse, n, keep)
	}
}

func pairs(d *Draft, cfg config, method string, n int, keep func() bool) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		angle := 2 * math.Pi * float64(i) / float64(n)
		if _, err := d.addNode(id, math.Cos(angle), math.Sin(angle)); err != nil {
			return fmt.Errorf("%s: addNode(%s): %w", method, id, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !keep() {
				continue
			}
			d.addEdge(cfg.idFn(i), cfg.idFn(j), cfg)
		}
	}
	return nil
}
