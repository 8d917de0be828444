// SPDX-License-Identifier: MIT
// Package: costnet/expression
//
// derive.go — symbolic differentiation.
//
// Contract:
//   - derive(n, v) returns d n / d v as a new tree; n is not modified.
//   - Subtrees that do not mention v differentiate to Num{0} without
//     being walked further.
//   - u^c with c free of v uses the power rule; c^u uses the exponential
//     rule; the general u^w case uses u^w·(w'·log u + w·u'/u).

package expression

func derive(n Node, v string) Node {
	if !dependsOn(n, v) {
		return Num{V: 0}
	}

	switch t := n.(type) {
	case Var:
		// dependsOn guarantees t.Name == v here.
		return Num{V: 1}

	case Neg:
		return neg(derive(t.X, v))

	case Binary:
		dl, dr := derive(t.L, v), derive(t.R, v)
		switch t.Op {
		case '+':
			return add(dl, dr)
		case '-':
			return sub(dl, dr)
		case '*':
			return add(mul(dl, t.R), mul(t.L, dr))
		case '/':
			if !dependsOn(t.R, v) {
				return div(dl, t.R)
			}
			// (u'w - uw') / w^2
			return div(sub(mul(dl, t.R), mul(t.L, dr)), pow(t.R, Num{V: 2}))
		case '^':
			switch {
			case !dependsOn(t.R, v):
				return mul(mul(t.R, pow(t.L, sub(t.R, Num{V: 1}))), dl)
			case !dependsOn(t.L, v):
				return mul(mul(n, call("log", t.L)), dr)
			default:
				return mul(n, add(mul(dr, call("log", t.L)), div(mul(t.R, dl), t.L)))
			}
		}

	case Call:
		du := derive(t.Arg, v)
		var outer Node
		switch t.Fn {
		case "exp":
			outer = n
		case "log":
			outer = div(Num{V: 1}, t.Arg)
		case "sqrt":
			outer = div(Num{V: 1}, mul(Num{V: 2}, n))
		case "sin":
			outer = call("cos", t.Arg)
		case "cos":
			outer = neg(call("sin", t.Arg))
		case "abs":
			outer = call("sign", t.Arg)
		case "sign":
			outer = Num{V: 0}
		}
		return mul(outer, du)
	}

	return Num{V: 0}
}
