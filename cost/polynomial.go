// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// polynomial.go — Polynomial variant.
//
// Contract:
//   - Store: columns c0…ck, each of length NumEdges; column i holds the
//     coefficient of f^i for every edge. Edges of lower degree are
//     zero-padded. Trailing all-zero columns are dropped (k ≥ 0).
//   - Evaluate(f)_e = Σ_i c_i[e]·f_e^i
//   - DDX(f)_e      = Σ_{i≥1} i·c_i[e]·f_e^(i-1)
//   - Default row for an edge without a block: all zero.
//
// Complexity:
//   - Evaluate/DDX: O(m·(k+1)) time, O(m) space for the result.

package cost

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/polynomial"
	"github.com/katalvlaran/costnet/xmltree"
)

// Polynomial is a per-edge polynomial cost.
type Polynomial struct {
	cols  [][]float64
	edges int
}

// NewPolynomial builds a model from coefficient columns: cols[i][e] is the
// coefficient of f^i on edge e. All columns must share one length.
func NewPolynomial(cols [][]float64) (*Polynomial, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs at least column c0", ErrColumnLength)
	}
	edges := len(cols[0])
	own := make([][]float64, len(cols))
	for i, col := range cols {
		if len(col) != edges {
			return nil, fmt.Errorf("%w: column c%d has %d values, want %d", ErrColumnLength, i, len(col), edges)
		}
		for e, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: c%d of edge %d is %v", ErrNonFinite, i, e, v)
			}
		}
		own[i] = append([]float64(nil), col...)
	}

	return &Polynomial{cols: trimColumns(own), edges: edges}, nil
}

// NewPolynomialFromRows builds a model from per-edge coefficient rows;
// rows may have different lengths and are zero-padded to the longest.
func NewPolynomialFromRows(rows [][]float64) (*Polynomial, error) {
	width := 1
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	cols := make([][]float64, width)
	for i := range cols {
		cols[i] = make([]float64, len(rows))
	}
	for e, r := range rows {
		for i, v := range r {
			cols[i][e] = v
		}
	}
	return NewPolynomial(cols)
}

// ZeroPolynomial returns a model in which every edge has zero cost.
func ZeroPolynomial(edges int) *Polynomial {
	return &Polynomial{cols: [][]float64{make([]float64, edges)}, edges: edges}
}

// trimColumns drops trailing columns that are zero on every edge.
func trimColumns(cols [][]float64) [][]float64 {
	k := len(cols)
	for k > 1 && allZero(cols[k-1]) {
		k--
	}
	return cols[:k]
}

func allZero(col []float64) bool {
	for _, v := range col {
		if v != 0 {
			return false
		}
	}
	return true
}

func (*Polynomial) isModel() {}

// Kind reports KindPolynomial.
func (*Polynomial) Kind() Kind { return KindPolynomial }

// NumEdges reports the column length.
func (p *Polynomial) NumEdges() int { return p.edges }

// Degree is the highest power with a non-zero coefficient on some edge.
func (p *Polynomial) Degree() int { return len(p.cols) - 1 }

// Row returns edge e's coefficients [c0…cj] without trailing zeros.
func (p *Polynomial) Row(e int) ([]float64, error) {
	if err := checkEdge(e, p.edges); err != nil {
		return nil, err
	}
	row := make([]float64, len(p.cols))
	for i, col := range p.cols {
		row[i] = col[e]
	}
	return polynomial.Trim(row), nil
}

// Evaluate implements Model.
func (p *Polynomial) Evaluate(flow []float64) ([]float64, error) {
	if err := checkFlow(flow, p.edges); err != nil {
		return nil, err
	}
	out := make([]float64, p.edges)
	for e, f := range flow {
		y := 0.0
		for i := len(p.cols) - 1; i >= 0; i-- {
			y = y*f + p.cols[i][e]
		}
		out[e] = y
	}
	return out, nil
}

// DDX implements Model.
func (p *Polynomial) DDX(flow []float64) ([]float64, error) {
	if err := checkFlow(flow, p.edges); err != nil {
		return nil, err
	}
	out := make([]float64, p.edges)
	for e, f := range flow {
		y := 0.0
		for i := len(p.cols) - 1; i >= 1; i-- {
			y = y*f + float64(i)*p.cols[i][e]
		}
		out[e] = y
	}
	return out, nil
}

// Coefficients implements Model; columns are named c0, c1, ….
func (p *Polynomial) Coefficients() Coefficients {
	names := make([]string, len(p.cols))
	for i := range names {
		names[i] = polyTag(i)
	}
	return newCoefficients(p.edges, names, p.cols)
}

// AddToTree implements Model. The polynomial is written as text, e.g.
// <polynomial>3 + 8x</polynomial>. overwrite=false appends a new
// <polynomial> block after any existing ones; overwrite=true rewrites every
// existing block (dropping <cN> children) or creates one.
func (p *Polynomial) AddToTree(edge *etree.Element, index int, overwrite bool) error {
	row, err := p.Row(index)
	if err != nil {
		return err
	}
	text := polynomial.Format(row)
	costEl := xmltree.Ensure(edge, tagCost)

	blocks := xmltree.Children(costEl, TagPolynomial)
	if !overwrite || len(blocks) == 0 {
		costEl.CreateElement(TagPolynomial).SetText(text)
		return nil
	}
	for _, b := range blocks {
		for _, c := range b.ChildElements() {
			b.RemoveChild(c)
		}
		b.SetText(text)
	}
	return nil
}

func polyTag(i int) string { return "c" + strconv.Itoa(i) }
