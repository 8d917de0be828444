// SPDX-License-Identifier: MIT
// Package: costnet/cost
//
// model.go — the Model sum type, variant kinds and the read-only
// coefficient view shared by all variants.

package cost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"gonum.org/v1/gonum/floats"
)

// Kind enumerates cost variants. The zero value, KindAuto, asks FromXML to
// detect the variant from the data.
type Kind int

const (
	KindAuto Kind = iota
	KindPolynomial
	KindSymbolic
	KindPiecewiseQuadratic
)

// Variant tags used in <cost> blocks.
const (
	TagPolynomial         = "polynomial"
	TagSymbolic           = "symbolic"
	TagPiecewiseQuadratic = "piecewise-quadratic"
)

// Tag returns the XML tag of the variant; empty for KindAuto.
func (k Kind) Tag() string {
	switch k {
	case KindPolynomial:
		return TagPolynomial
	case KindSymbolic:
		return TagSymbolic
	case KindPiecewiseQuadratic:
		return TagPiecewiseQuadratic
	default:
		return ""
	}
}

func (k Kind) String() string {
	if k == KindAuto {
		return "auto"
	}
	if t := k.Tag(); t != "" {
		return t
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared constants.
func (k Kind) Valid() bool {
	return k >= KindAuto && k <= KindPiecewiseQuadratic
}

// ParseKind maps a variant name (its tag, "auto" or "") to a Kind.
// Matching ignores case and accepts '_' for '-'.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch norm {
	case "", "auto":
		return KindAuto, nil
	case TagPolynomial:
		return KindPolynomial, nil
	case TagSymbolic:
		return KindSymbolic, nil
	case TagPiecewiseQuadratic:
		return KindPiecewiseQuadratic, nil
	}
	return KindAuto, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// kindOfTag is ParseKind restricted to concrete variant tags.
func kindOfTag(tag string) (Kind, bool) {
	switch tag {
	case TagPolynomial:
		return KindPolynomial, true
	case TagSymbolic:
		return KindSymbolic, true
	case TagPiecewiseQuadratic:
		return KindPiecewiseQuadratic, true
	}
	return KindAuto, false
}

// Model is a per-edge cost function over a flow vector. The set of
// implementations is closed: *Polynomial, *Symbolic, *PiecewiseQuadratic.
// Switch on the concrete type, or on Kind(), to handle each variant.
type Model interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// NumEdges is the length of every coefficient column.
	NumEdges() int

	// Evaluate returns the per-edge cost at the per-edge flow values.
	Evaluate(flow []float64) ([]float64, error)

	// DDX returns the per-edge marginal cost dF/df at the given flow.
	DDX(flow []float64) ([]float64, error)

	// Coefficients returns a read-only, by-name copy of the store.
	Coefficients() Coefficients

	// AddToTree writes the coefficients of edge index into edge/cost.
	AddToTree(edge *etree.Element, index int, overwrite bool) error

	isModel()
}

// Coefficients is a read-only snapshot of a coefficient store: named
// columns, each with one value per edge.
type Coefficients struct {
	names []string
	cols  map[string][]float64
	edges int
}

// newCoefficients copies the columns so callers cannot reach model state.
func newCoefficients(edges int, names []string, cols [][]float64) Coefficients {
	c := Coefficients{
		names: append([]string(nil), names...),
		cols:  make(map[string][]float64, len(names)),
		edges: edges,
	}
	for i, n := range names {
		c.cols[n] = append([]float64(nil), cols[i]...)
	}
	return c
}

// Names lists the column names in the variant's canonical order.
func (c Coefficients) Names() []string { return append([]string(nil), c.names...) }

// Column returns a copy of the named column.
func (c Coefficients) Column(name string) ([]float64, bool) {
	col, ok := c.cols[name]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), col...), true
}

// NumEdges is the common column length.
func (c Coefficients) NumEdges() int { return c.edges }

// Row returns the values of edge i keyed by column name.
func (c Coefficients) Row(i int) (map[string]float64, error) {
	if i < 0 || i >= c.edges {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrEdgeRange, i, c.edges)
	}
	row := make(map[string]float64, len(c.names))
	for _, n := range c.names {
		row[n] = c.cols[n][i]
	}
	return row, nil
}

// TotalCost is Σ_e F_e(flow_e), the objective most solvers report.
func TotalCost(m Model, flow []float64) (float64, error) {
	per, err := m.Evaluate(flow)
	if err != nil {
		return 0, err
	}
	return floats.Sum(per), nil
}

// checkFlow enforces len(flow) == edges for Evaluate and DDX.
func checkFlow(flow []float64, edges int) error {
	if len(flow) != edges {
		return fmt.Errorf("%w: got %d values, want %d", ErrFlowLength, len(flow), edges)
	}
	return nil
}

// checkEdge enforces 0 <= index < edges for AddToTree.
func checkEdge(index, edges int) error {
	if index < 0 || index >= edges {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrEdgeRange, index, edges)
	}
	return nil
}

// columnLength returns the shared length of the non-nil columns, or -1
// when all are nil. Unequal lengths are ErrColumnLength.
func columnLength(named map[string][]float64) (int, error) {
	n := -1
	keys := make([]string, 0, len(named))
	for k := range named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		col := named[k]
		if col == nil {
			continue
		}
		if n == -1 {
			n = len(col)
			continue
		}
		if len(col) != n {
			return 0, fmt.Errorf("%w: column %q has %d values, want %d", ErrColumnLength, k, len(col), n)
		}
	}
	return n, nil
}

// filled returns col, or a fresh column of n copies of v when col is nil.
func filled(col []float64, n int, v float64) []float64 {
	if col != nil {
		return append([]float64(nil), col...)
	}
	out := make([]float64, n)
	if v != 0 {
		for i := range out {
			out[i] = v
		}
	}
	return out
}
