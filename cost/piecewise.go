// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// piecewise.go — PiecewiseQuadratic variant (electrical networks).
//
// Per edge e with coefficients a, b, tau, lw (lap_weight):
//
//	f >= tau:  F(f) = a·f² + b·f               F'(f) = 2·a·f + b
//	f <  tau:  F(f) = lw·f² − b·f + K          F'(f) = 2·lw·f − b
//	           K    = (a − lw)·tau² + 2·b·tau  (F is continuous at tau)
//
// tau = -Inf keeps the upper regime active for every finite flow. The
// regime is recomputed from (f, tau) on every call; nothing is stored.
//
// Defaults: an edge without a block has a=0, b=0, tau=-Inf, lw=0. Inside a
// block a missing tau is -Inf, a missing lap_weight is a, and a missing
// a or b is 0.

package cost

import (
	"fmt"
	"math"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/xmltree"
)

// Piecewise-quadratic coefficient names, as used in XML.
const (
	CoefTau       = "tau"
	CoefLapWeight = "lap_weight"
)

var piecewiseNames = []string{CoefA, CoefB, CoefTau, CoefLapWeight}

// Regime is the per-edge state of a PiecewiseQuadratic at a given flow.
type Regime int

const (
	// BelowTau: f < tau, the lower quadratic applies.
	BelowTau Regime = iota
	// AtOrAboveTau: f >= tau, the upper quadratic applies.
	AtOrAboveTau
)

func (r Regime) String() string {
	if r == BelowTau {
		return "below-tau"
	}
	return "at-or-above-tau"
}

// PiecewiseCoefficients is the store of a PiecewiseQuadratic model. Nil
// columns take the block defaults: A and B zero, Tau -Inf, LapWeight = A.
type PiecewiseCoefficients struct {
	A, B, Tau, LapWeight []float64
}

// PiecewiseQuadratic is a two-regime quadratic cost split at tau.
type PiecewiseQuadratic struct {
	a, b, tau, lw []float64
	edges         int
}

// NewPiecewiseQuadratic builds a model for edges edges. A, B and LapWeight
// must be finite; Tau may be -Inf but not NaN or +Inf.
func NewPiecewiseQuadratic(edges int, coeffs PiecewiseCoefficients) (*PiecewiseQuadratic, error) {
	if edges < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrColumnLength, edges)
	}
	given := [][]float64{coeffs.A, coeffs.B, coeffs.Tau, coeffs.LapWeight}
	for i, col := range given {
		if col != nil && len(col) != edges {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrColumnLength, piecewiseNames[i], len(col), edges)
		}
	}

	p := &PiecewiseQuadratic{
		a:     filled(coeffs.A, edges, 0),
		b:     filled(coeffs.B, edges, 0),
		tau:   filled(coeffs.Tau, edges, math.Inf(-1)),
		edges: edges,
	}
	if coeffs.LapWeight != nil {
		p.lw = filled(coeffs.LapWeight, edges, 0)
	} else {
		p.lw = append([]float64(nil), p.a...)
	}

	for e := 0; e < edges; e++ {
		for i, v := range []float64{p.a[e], p.b[e], p.lw[e]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s of edge %d is %v", ErrNonFinite, [...]string{CoefA, CoefB, CoefLapWeight}[i], e, v)
			}
		}
		if t := p.tau[e]; math.IsNaN(t) || math.IsInf(t, 1) {
			return nil, fmt.Errorf("%w: tau of edge %d is %v", ErrNonFinite, e, t)
		}
	}

	return p, nil
}

func (*PiecewiseQuadratic) isModel() {}

// Kind reports KindPiecewiseQuadratic.
func (*PiecewiseQuadratic) Kind() Kind { return KindPiecewiseQuadratic }

// NumEdges reports the column length.
func (p *PiecewiseQuadratic) NumEdges() int { return p.edges }

// Regime reports which quadratic applies to edge e at the given flow.
func (p *PiecewiseQuadratic) Regime(e int, flow float64) (Regime, error) {
	if err := checkEdge(e, p.edges); err != nil {
		return BelowTau, err
	}
	return p.regime(e, flow), nil
}

func (p *PiecewiseQuadratic) regime(e int, f float64) Regime {
	if f >= p.tau[e] {
		return AtOrAboveTau
	}
	return BelowTau
}

// Evaluate implements Model.
func (p *PiecewiseQuadratic) Evaluate(flow []float64) ([]float64, error) {
	if err := checkFlow(flow, p.edges); err != nil {
		return nil, err
	}
	out := make([]float64, p.edges)
	for e, f := range flow {
		a, b := p.a[e], p.b[e]
		if p.regime(e, f) == AtOrAboveTau {
			out[e] = a*f*f + b*f
			continue
		}
		lw, tau := p.lw[e], p.tau[e]
		k := (a-lw)*tau*tau + 2*b*tau
		out[e] = lw*f*f - b*f + k
	}
	return out, nil
}

// DDX implements Model.
func (p *PiecewiseQuadratic) DDX(flow []float64) ([]float64, error) {
	if err := checkFlow(flow, p.edges); err != nil {
		return nil, err
	}
	out := make([]float64, p.edges)
	for e, f := range flow {
		if p.regime(e, f) == AtOrAboveTau {
			out[e] = 2*p.a[e]*f + p.b[e]
			continue
		}
		out[e] = 2*p.lw[e]*f - p.b[e]
	}
	return out, nil
}

// Coefficients implements Model; names are a, b, tau, lap_weight.
func (p *PiecewiseQuadratic) Coefficients() Coefficients {
	return newCoefficients(p.edges, piecewiseNames, [][]float64{p.a, p.b, p.tau, p.lw})
}

// AddToTree implements Model with the same append/overwrite rules as
// Symbolic, under edge/cost/piecewise-quadratic.
func (p *PiecewiseQuadratic) AddToTree(edge *etree.Element, index int, overwrite bool) error {
	if err := checkEdge(index, p.edges); err != nil {
		return err
	}
	block := xmltree.Ensure(xmltree.Ensure(edge, tagCost), TagPiecewiseQuadratic)
	vals := [...]float64{p.a[index], p.b[index], p.tau[index], p.lw[index]}
	for i, name := range piecewiseNames {
		writeValue(block, name, vals[i], overwrite)
	}
	return nil
}
