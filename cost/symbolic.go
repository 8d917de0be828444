// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// symbolic.go — Symbolic variant: one network-wide formula F(x; a, b, c, …)
// with per-edge coefficient values.
//
// Contract:
//   - The formula is parsed and differentiated in x exactly once
//     (expression.Compile caches the pair); both F and dF/dx are bound to
//     the slot order [x, a, b, c, extra…] so per-edge evaluation is a
//     closure call, not a tree walk.
//   - Columns A, B, C always exist; every other identifier the formula
//     references gets an Extra column. Missing columns default to zero.
//   - Coefficients must be finite.

package cost

import (
	"fmt"
	"math"
	"sort"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/expression"
	"github.com/katalvlaran/costnet/xmltree"
)

// FlowVariable is the name the flow takes inside a symbolic formula.
const FlowVariable = "x"

// Fixed symbolic coefficient names.
const (
	CoefA = "a"
	CoefB = "b"
	CoefC = "c"
)

// SymbolicCoefficients is the store of a Symbolic model. A nil column is
// filled with zeros.
type SymbolicCoefficients struct {
	A, B, C []float64

	// Extra holds coefficients other than a, b and c, keyed by the name
	// used in the formula.
	Extra map[string][]float64
}

// Symbolic is a cost given by a shared formula of x and named coefficients.
type Symbolic struct {
	src   *expression.Compiled
	f, df *expression.Program

	names []string    // column order: a, b, c, extras ascending
	cols  [][]float64 // parallel to names
	edges int
}

// NewSymbolic compiles formula and binds it to edges coefficient rows.
func NewSymbolic(formula string, edges int, coeffs SymbolicCoefficients) (*Symbolic, error) {
	if formula == "" {
		return nil, ErrNoExpression
	}
	if edges < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrColumnLength, edges)
	}
	compiled, err := expression.Compile(formula, FlowVariable)
	if err != nil {
		return nil, fmt.Errorf("cost: symbolic formula: %w", err)
	}

	extra := make(map[string][]float64, len(coeffs.Extra))
	for name, col := range coeffs.Extra {
		switch name {
		case CoefA, CoefB, CoefC, FlowVariable, "":
			return nil, fmt.Errorf("%w: %q is reserved", ErrUnknownCoefficient, name)
		}
		extra[name] = col
	}
	// Parameters the formula references but nobody supplied broadcast to 0.
	for _, p := range compiled.Params() {
		switch p {
		case CoefA, CoefB, CoefC:
			continue
		}
		if _, ok := extra[p]; !ok {
			extra[p] = nil
		}
	}
	extraNames := make([]string, 0, len(extra))
	for name := range extra {
		extraNames = append(extraNames, name)
	}
	sort.Strings(extraNames)

	names := append([]string{CoefA, CoefB, CoefC}, extraNames...)
	given := [][]float64{coeffs.A, coeffs.B, coeffs.C}
	for _, name := range extraNames {
		given = append(given, extra[name])
	}

	cols := make([][]float64, len(names))
	for i, col := range given {
		if col != nil && len(col) != edges {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrColumnLength, names[i], len(col), edges)
		}
		cols[i] = filled(col, edges, 0)
		for e, v := range cols[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s of edge %d is %v", ErrNonFinite, names[i], e, v)
			}
		}
	}

	slots := append([]string{FlowVariable}, names...)
	f, err := compiled.F.Bind(slots...)
	if err != nil {
		return nil, fmt.Errorf("cost: symbolic formula: %w", err)
	}
	df, err := compiled.DF.Bind(slots...)
	if err != nil {
		return nil, fmt.Errorf("cost: symbolic derivative: %w", err)
	}

	return &Symbolic{src: compiled, f: f, df: df, names: names, cols: cols, edges: edges}, nil
}

func (*Symbolic) isModel() {}

// Kind reports KindSymbolic.
func (*Symbolic) Kind() Kind { return KindSymbolic }

// NumEdges reports the column length.
func (s *Symbolic) NumEdges() int { return s.edges }

// Formula returns the formula as it was supplied.
func (s *Symbolic) Formula() string { return s.src.F.Source() }

// Derivative returns dF/dx in printed form.
func (s *Symbolic) Derivative() string { return s.src.DF.String() }

// Evaluate implements Model.
func (s *Symbolic) Evaluate(flow []float64) ([]float64, error) {
	return s.run(s.f, flow)
}

// DDX implements Model.
func (s *Symbolic) DDX(flow []float64) ([]float64, error) {
	return s.run(s.df, flow)
}

// run evaluates prog once per edge. The slot buffer is local to the call.
func (s *Symbolic) run(prog *expression.Program, flow []float64) ([]float64, error) {
	if err := checkFlow(flow, s.edges); err != nil {
		return nil, err
	}
	out := make([]float64, s.edges)
	vals := make([]float64, len(s.names)+1)
	for e, f := range flow {
		vals[0] = f
		for i, col := range s.cols {
			vals[i+1] = col[e]
		}
		out[e] = prog.Eval(vals)
	}
	return out, nil
}

// Coefficients implements Model; names are a, b, c followed by the extra
// coefficients in ascending order.
func (s *Symbolic) Coefficients() Coefficients {
	return newCoefficients(s.edges, s.names, s.cols)
}

// AddToTree implements Model. Coefficients are written as children of
// edge/cost/symbolic. overwrite=false appends a child per coefficient even
// when one with that name exists; overwrite=true updates every existing
// child with that name and creates only the missing ones.
func (s *Symbolic) AddToTree(edge *etree.Element, index int, overwrite bool) error {
	if err := checkEdge(index, s.edges); err != nil {
		return err
	}
	block := xmltree.Ensure(xmltree.Ensure(edge, tagCost), TagSymbolic)
	for i, name := range s.names {
		writeValue(block, name, s.cols[i][index], overwrite)
	}
	return nil
}
