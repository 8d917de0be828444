// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// impl_star.go — Star(n).
//
// Contract:
//   - Hub "center" at the origin; leaves idFn(1..n-1) on the unit circle.
//   - For each leaf: center→leaf then leaf→center.
//
// Complexity: O(n).

package builder

import (
	"fmt"
	"math"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "center"
)

// Star returns a Constructor that builds a two-way star with n nodes.
func Star(n int) Constructor {
	return func(d *Draft, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if _, err := d.addNode(centerVertexID, 0, 0); err != nil {
			return fmt.Errorf("%s: addNode(%s): %w", methodStar, centerVertexID, err)
		}

		step := 2 * math.Pi / float64(n-1)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			angle := step * float64(i-1)
			if _, err := d.addNode(leaf, math.Cos(angle), math.Sin(angle)); err != nil {
				return fmt.Errorf("%s: addNode(%s): %w", methodStar, leaf, err)
			}
			d.addEdge(centerVertexID, leaf, cfg)
			d.addEdge(leaf, centerVertexID, cfg)
		}
		return nil
	}
}
