// SPDX-License-Identifier: MIT

package expression

import (
	"fmt"
	"math"
)

// Expr is a parsed formula. The zero value is not usable; build one with
// Parse, MustParse or Compile.
type Expr struct {
	src  string
	root Node
}

// Source returns the text the expression was parsed from. For derived
// expressions it is the printed form of the derivative.
func (e *Expr) Source() string { return e.src }

// String prints the tree with minimal parentheses.
func (e *Expr) String() string { return e.root.String() }

// Root exposes the tree for callers that walk it themselves.
func (e *Expr) Root() Node { return e.root }

// Vars lists the free variables in ascending order (constants excluded).
func (e *Expr) Vars() []string {
	set := make(map[string]struct{})
	freeVars(e.root, set)
	return sortedKeys(set)
}

// Derivative differentiates the expression with respect to v.
func (e *Expr) Derivative(v string) *Expr {
	d := derive(e.root, v)
	return &Expr{src: d.String(), root: d}
}

// Eval evaluates the expression once with values taken from env. It is the
// convenient form for single points; use Bind for repeated evaluation.
func (e *Expr) Eval(env map[string]float64) (float64, error) {
	names := e.Vars()
	vals := make([]float64, len(names))
	for i, n := range names {
		v, ok := env[n]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, n)
		}
		vals[i] = v
	}
	p, err := e.Bind(names...)
	if err != nil {
		return 0, err
	}
	return p.Eval(vals), nil
}

// Program is an expression bound to a fixed variable order, compiled into
// closures. It is immutable and safe for concurrent use.
type Program struct {
	names []string
	fn    func([]float64) float64
}

// Bind compiles e so that variable names[i] reads vals[i] in Program.Eval.
// Every free variable of e must appear in names; extra names are allowed.
func (e *Expr) Bind(names ...string) (*Program, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	fn, err := compile(e.root, idx)
	if err != nil {
		return nil, err
	}
	return &Program{names: append([]string(nil), names...), fn: fn}, nil
}

// Names returns the bound variable order.
func (p *Program) Names() []string { return append([]string(nil), p.names...) }

// Eval runs the program. len(vals) must equal len(p.Names()).
func (p *Program) Eval(vals []float64) float64 { return p.fn(vals) }

func compile(n Node, idx map[string]int) (func([]float64) float64, error) {
	switch t := n.(type) {
	case Num:
		v := t.V
		return func([]float64) float64 { return v }, nil

	case Var:
		if c, ok := constants[t.Name]; ok {
			return func([]float64) float64 { return c }, nil
		}
		slot, ok := idx[t.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnboundVariable, t.Name)
		}
		return func(vals []float64) float64 { return vals[slot] }, nil

	case Neg:
		x, err := compile(t.X, idx)
		if err != nil {
			return nil, err
		}
		return func(vals []float64) float64 { return -x(vals) }, nil

	case Call:
		arg, err := compile(t.Arg, idx)
		if err != nil {
			return nil, err
		}
		f, ok := functions[t.Fn]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, t.Fn)
		}
		return func(vals []float64) float64 { return f(arg(vals)) }, nil

	case Binary:
		l, err := compile(t.L, idx)
		if err != nil {
			return nil, err
		}
		r, err := compile(t.R, idx)
		if err != nil {
			return nil, err
		}
		switch t.Op {
		case '+':
			return func(vals []float64) float64 { return l(vals) + r(vals) }, nil
		case '-':
			return func(vals []float64) float64 { return l(vals) - r(vals) }, nil
		case '*':
			return func(vals []float64) float64 { return l(vals) * r(vals) }, nil
		case '/':
			return func(vals []float64) float64 { return l(vals) / r(vals) }, nil
		case '^':
			return func(vals []float64) float64 { return powf(l(vals), r(vals)) }, nil
		}
	}
	return nil, fmt.Errorf("expression: cannot compile node %T", n)
}

// powf special-cases small integer exponents so x^2 is exactly x*x.
func powf(x, y float64) float64 {
	switch y {
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	}
	return math.Pow(x, y)
}
