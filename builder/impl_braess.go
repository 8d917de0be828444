// SPDX-License-Identifier: MIT
// Package: costnet/builder
//
// impl_braess.go — the Braess paradox network.
//
//	      a
//	   ↗  |  ↘
//	 s    |    t
//	   ↘  ↓  ↗
//	      b
//
// Edges in order: s→a 10x, s→b 50+x, a→t 50+x, b→t 10x, a→b 10+x.
// Demand 6 leaves s and reaches t. The costs and bounds are fixed; the
// configured CostFn and capacity do not apply.

package builder

import (
	"fmt"
	"math"
)

const (
	methodBraess = "Braess"
	braessDemand = 6
)

type braessLink struct {
	from, to string
	row      []float64
}

var braessLinks = []braessLink{
	{"s", "a", []float64{0, 10}},
	{"s", "b", []float64{50, 1}},
	{"a", "t", []float64{50, 1}},
	{"b", "t", []float64{0, 10}},
	{"a", "b", []float64{10, 1}},
}

// Braess returns a Constructor that adds the classic Braess network.
func Braess() Constructor {
	return func(d *Draft, _ config) error {
		coords := []struct {
			id   string
			x, y float64
		}{{"s", 0, 0}, {"a", 1, 1}, {"b", 1, -1}, {"t", 2, 0}}
		for _, c := range coords {
			if _, err := d.addNode(c.id, c.x, c.y); err != nil {
				return fmt.Errorf("%s: addNode(%s): %w", methodBraess, c.id, err)
			}
		}
		for _, l := range braessLinks {
			d.addEdgeRow(l.from, l.to, 0, math.Inf(1), append([]float64(nil), l.row...))
		}
		if err := Zone("s", "t")(d, config{}); err != nil {
			return err
		}
		if err := Demand("s", -braessDemand)(d, config{}); err != nil {
			return err
		}
		return Demand("t", braessDemand)(d, config{})
	}
}
