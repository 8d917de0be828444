// SPDX-License-Identifier: MIT

// Package expression parses small arithmetic formulas over named variables,
// differentiates them symbolically and evaluates them numerically.
//
// It backs the symbolic edge-cost model: one network-wide formula such as
//
//	F = a*x + b*x^2/2 + c
//
// is parsed and differentiated once; both trees are then bound to a fixed
// variable order and evaluated per edge with that edge's coefficients.
//
// Grammar (precedence low → high, '^' is right-associative):
//
//	expr   := term   { ('+'|'-') term }
//	term   := unary  { ('*'|'/') unary }
//	unary  := '-' unary | power
//	power  := atom [ '^' unary ]
//	atom   := number | ident | ident '(' expr ')' | '(' expr ')'
//
// Functions: exp, log, sqrt, sin, cos, abs, sign. Constant: pi.
//
// Compile caches parsed formulas and their derivatives in a bounded LRU,
// so repeated network loads with the same formula skip re-parsing. All
// trees are immutable and safe to share across goroutines.
package expression
