// SPDX-License-Identifier: MIT
// Package: costnet/expression
//
// ast.go — immutable expression tree and its printer.
//
// Every node constructor used by the differentiator goes through the
// folding helpers in simplify.go, so trees never carry "0*x" or "x^1"
// residue that would make printed derivatives hard to read.

package expression

import (
	"sort"
	"strconv"
	"strings"
)

// Node is one vertex of an expression tree. Implementations are immutable.
type Node interface {
	// String renders the subtree in infix form with minimal parentheses.
	String() string

	prec() int
}

// Operator precedences used by the printer.
const (
	precAdd = iota + 1
	precMul
	precUnary
	precPow
	precAtom
)

// Num is a numeric literal.
type Num struct{ V float64 }

// Var is a named free variable (x, a, b, …) or the constant pi.
type Var struct{ Name string }

// Neg is unary minus.
type Neg struct{ X Node }

// Binary is one of + - * / ^.
type Binary struct {
	Op   byte
	L, R Node
}

// Call applies a built-in unary function.
type Call struct {
	Fn  string
	Arg Node
}

func (n Num) String() string {
	return strconv.FormatFloat(n.V, 'g', -1, 64)
}

func (n Num) prec() int {
	if n.V < 0 {
		return precUnary
	}
	return precAtom
}

func (v Var) String() string { return v.Name }
func (v Var) prec() int      { return precAtom }

func (n Neg) String() string { return "-" + wrap(n.X, precUnary, false) }
func (n Neg) prec() int      { return precUnary }

func (c Call) String() string { return c.Fn + "(" + c.Arg.String() + ")" }
func (c Call) prec() int      { return precAtom }

func (b Binary) prec() int {
	switch b.Op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

func (b Binary) String() string {
	p := b.prec()
	var sb strings.Builder
	if b.Op == '^' {
		// Right-associative: the left operand needs parens at equal precedence.
		sb.WriteString(wrap(b.L, p, true))
		sb.WriteByte('^')
		sb.WriteString(wrap(b.R, p, false))
		return sb.String()
	}
	sb.WriteString(wrap(b.L, p, false))
	sb.WriteByte(' ')
	sb.WriteByte(b.Op)
	sb.WriteByte(' ')
	// Left-associative: - and / need parens on an equal-precedence right side.
	sb.WriteString(wrap(b.R, p, b.Op == '-' || b.Op == '/'))
	return sb.String()
}

// wrap parenthesizes n when its precedence is lower than the context's,
// or equal to it and strict is set.
func wrap(n Node, ctx int, strict bool) string {
	if n.prec() < ctx || (strict && n.prec() == ctx) {
		return "(" + n.String() + ")"
	}
	return n.String()
}

// freeVars collects variable names of n into set, skipping constants.
func freeVars(n Node, set map[string]struct{}) {
	switch t := n.(type) {
	case Var:
		if _, isConst := constants[t.Name]; !isConst {
			set[t.Name] = struct{}{}
		}
	case Neg:
		freeVars(t.X, set)
	case Binary:
		freeVars(t.L, set)
		freeVars(t.R, set)
	case Call:
		freeVars(t.Arg, set)
	}
}

// dependsOn reports whether variable v occurs in n.
func dependsOn(n Node, v string) bool {
	switch t := n.(type) {
	case Var:
		return t.Name == v
	case Neg:
		return dependsOn(t.X, v)
	case Binary:
		return dependsOn(t.L, v) || dependsOn(t.R, v)
	case Call:
		return dependsOn(t.Arg, v)
	default:
		return false
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
