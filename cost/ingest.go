// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// ingest.go — build one Model from the <edges> of a network document.
//
// Contract:
//   - Edges are visited in document order; edge i of the document is
//     row i of every coefficient column.
//   - The variant is WithKind's, or detected from the first edge whose
//     <cost> block carries a variant tag (the first one among its
//     children; unrelated children such as <note/> are skipped). An edge
//     whose non-empty block has no variant tag at all is an
//     ErrUnknownVariant. A later edge that
//     lacks the detected tag but carries another variant tag is an
//     *AmbiguousVariantError. A document with no cost data is Polynomial.
//   - An edge without the variant's block is filled with the variant
//     defaults when WithDefaultEdgeCost(true) is set and is a
//     *MissingCostError otherwise.
//   - Repeated blocks or repeated coefficient tags: the last one wins.
//
// Complexity: O(E + total coefficient children) time and space.

package cost

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/xmltree"
)

// FromXML reads the cost model of the network rooted at root. root is the
// <network> element (any element with <edges> and optional <metadata>
// children works).
func FromXML(root *etree.Element, opts ...Option) (Model, error) {
	cfg := newIngestConfig(opts)
	edges := xmltree.Children(xmltree.Child(root, "edges"), "edge")

	kind := cfg.kind
	if kind == KindAuto {
		var err error
		if kind, err = detectKind(edges); err != nil {
			return nil, err
		}
		cfg.logger.Debug("cost variant detected", zap.Stringer("kind", kind), zap.Int("edges", len(edges)))
	}

	switch kind {
	case KindPolynomial:
		return readPolynomialModel(edges, cfg)
	case KindSymbolic:
		formula := cfg.expression
		if formula == "" {
			if f := xmltree.Descend(root, "metadata", "costfuncs", "F"); f != nil {
				formula = strings.TrimSpace(f.Text())
			}
		}
		formula = stripFormulaHead(formula)
		if formula == "" {
			return nil, ErrNoExpression
		}
		return readSymbolicModel(edges, formula, cfg)
	default:
		return readPiecewiseModel(edges, cfg)
	}
}

// detectKind implements the auto-detection rule described in the file
// header.
func detectKind(edges []*etree.Element) (Kind, error) {
	detected := KindAuto
	for i, edge := range edges {
		costEl := xmltree.Child(edge, tagCost)
		if costEl == nil {
			continue
		}
		blocks := costEl.ChildElements()
		if len(blocks) == 0 {
			continue
		}
		if detected == KindAuto {
			k, ok := firstVariant(blocks)
			if !ok {
				return KindAuto, fmt.Errorf("%w: <%s> on edge %d (%s→%s)", ErrUnknownVariant,
					blocks[0].Tag, i, edge.SelectAttrValue("from", ""), edge.SelectAttrValue("to", ""))
			}
			detected = k
			continue
		}
		if lastBlock(edge, detected.Tag()) != nil {
			continue
		}
		for _, b := range blocks {
			if k, ok := kindOfTag(b.Tag); ok && k != detected {
				return KindAuto, &AmbiguousVariantError{
					Edge: i,
					From: edge.SelectAttrValue("from", ""),
					To:   edge.SelectAttrValue("to", ""),
					Want: detected,
					Got:  k,
				}
			}
		}
	}
	if detected == KindAuto {
		return KindPolynomial, nil
	}
	return detected, nil
}

func firstVariant(blocks []*etree.Element) (Kind, bool) {
	for _, b := range blocks {
		if k, ok := kindOfTag(b.Tag); ok {
			return k, true
		}
	}
	return KindAuto, false
}

// formulaHead matches the "F(x) =" some files write in front of <F>.
var formulaHead = regexp.MustCompile(`^\s*F\s*\(\s*x\s*\)\s*=`)

func stripFormulaHead(formula string) string {
	return strings.TrimSpace(formulaHead.ReplaceAllString(formula, ""))
}

// missing applies the default-or-fail policy to edge i. It returns nil
// when the caller should fill defaults.
func missing(cfg ingestConfig, edge *etree.Element, i int, kind Kind) error {
	from, to := edge.SelectAttrValue("from", ""), edge.SelectAttrValue("to", "")
	if !cfg.defaultEdgeCost {
		return &MissingCostError{Edge: i, From: from, To: to, Kind: kind}
	}
	cfg.logger.Debug("edge cost defaulted",
		zap.Int("edge", i), zap.String("from", from), zap.String("to", to), zap.Stringer("kind", kind))
	return nil
}

func readPolynomialModel(edges []*etree.Element, cfg ingestConfig) (Model, error) {
	rows := make([][]float64, len(edges))
	for i, edge := range edges {
		block := lastBlock(edge, TagPolynomial)
		if block == nil {
			if err := missing(cfg, edge, i, KindPolynomial); err != nil {
				return nil, err
			}
			rows[i] = []float64{0}
			continue
		}
		row, err := readPolynomial(block)
		if err != nil {
			return nil, fmt.Errorf("cost: edge %d: %w", i, err)
		}
		rows[i] = row
	}
	return NewPolynomialFromRows(rows)
}

func readSymbolicModel(edges []*etree.Element, formula string, cfg ingestConfig) (Model, error) {
	m := len(edges)
	cols := make(map[string][]float64)
	column := func(name string) []float64 {
		if cols[name] == nil {
			cols[name] = make([]float64, m)
		}
		return cols[name]
	}
	for _, name := range []string{CoefA, CoefB, CoefC} {
		column(name)
	}

	for i, edge := range edges {
		block := lastBlock(edge, TagSymbolic)
		if block == nil {
			if err := missing(cfg, edge, i, KindSymbolic); err != nil {
				return nil, err
			}
			continue
		}
		vals, err := readValues(block, nil)
		if err != nil {
			return nil, fmt.Errorf("cost: edge %d: %w", i, err)
		}
		for name, v := range vals {
			column(name)[i] = v
		}
	}

	coeffs := SymbolicCoefficients{A: cols[CoefA], B: cols[CoefB], C: cols[CoefC]}
	for name, col := range cols {
		switch name {
		case CoefA, CoefB, CoefC:
			continue
		}
		if coeffs.Extra == nil {
			coeffs.Extra = make(map[string][]float64)
		}
		coeffs.Extra[name] = col
	}
	return NewSymbolic(formula, m, coeffs)
}

var piecewiseAllowed = map[string]bool{CoefA: true, CoefB: true, CoefTau: true, CoefLapWeight: true}

func readPiecewiseModel(edges []*etree.Element, cfg ingestConfig) (Model, error) {
	m := len(edges)
	c := PiecewiseCoefficients{
		A:         make([]float64, m),
		B:         make([]float64, m),
		Tau:       make([]float64, m),
		LapWeight: make([]float64, m),
	}
	for i, edge := range edges {
		c.Tau[i] = math.Inf(-1)
		block := lastBlock(edge, TagPiecewiseQuadratic)
		if block == nil {
			if err := missing(cfg, edge, i, KindPiecewiseQuadratic); err != nil {
				return nil, err
			}
			continue
		}
		vals, err := readValues(block, piecewiseAllowed)
		if err != nil {
			return nil, fmt.Errorf("cost: edge %d: %w", i, err)
		}
		c.A[i] = vals[CoefA]
		c.B[i] = vals[CoefB]
		if v, ok := vals[CoefTau]; ok {
			c.Tau[i] = v
		}
		if v, ok := vals[CoefLapWeight]; ok {
			c.LapWeight[i] = v
		} else {
			c.LapWeight[i] = c.A[i]
		}
	}
	return NewPiecewiseQuadratic(m, c)
}
