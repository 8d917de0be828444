// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Contract:
//   - Nodes idFn(0..n-1) at X=i, Y=0, added in index order.
//   - Edges i-1→i for i=1..n-1; Cycle adds n-1→0 last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(d *Draft, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		return line(d, cfg, methodPath, n)
	}
}

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := line(d, cfg, methodCycle, n); err != nil {
			return err
		}
		d.addEdge(cfg.idFn(n-1), cfg.idFn(0), cfg)
		return nil
	}
}

func line(d *Draft, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := d.addNode(id, float64(i), 0); err != nil {
			return fmt.Errorf("%s: addNode(%s): %w", method, id, err)
		}
	}
	for i := 1; i < n; i++ {
		d.addEdge(cfg.idFn(i-1), cfg.idFn(i), cfg)
	}
	return nil
}
