// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// impl_grid.go — Grid(rows, cols).
//
// Contract:
//   - Cells "r,c" in row-major order at X=c, Y=r. The coordinate labels
//     ignore cfg.idFn.
//   - For each cell, right neighbour then bottom neighbour, each as a pair
//     u→v, v→u.
//   - rows*cols ≥ 2.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg config) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := d.addNode(id, float64(c), float64(r)); err != nil {
					return fmt.Errorf("%s: addNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					v := fmt.Sprintf(gridIDFmt, r, c+1)
					d.addEdge(u, v, cfg)
					d.addEdge(v, u, cfg)
				}
				if r+1 < rows {
					v := fmt.Sprintf(gridIDFmt, r+1, c)
					d.addEdge(u, v, cfg)
					d.addEdge(v, u, cfg)
				}
			}
		}
		return nil
	}
}
