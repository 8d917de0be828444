// SPDX-License-Identifier: MIT

// Package polynomial turns human-written polynomial strings such as
// "3 + 8x + 16x^2 - 99.2x^3" into dense coefficient slices and back.
//
// A coefficient slice c is read as
//
//	P(x) = c[0] + c[1]·x + c[2]·x² + … + c[k]·x^k
//
// # Grammar
//
// Terms are separated by '+' or '-'. Whitespace may surround a term or a
// sign but not appear inside a term, so "3 8x" is rejected. Each term is
//
//	[literal] [e^K] [x[^N]]
//
// where literal is a plain decimal (no exponent notation, so "e" is never
// part of a number), K and N are non-negative integers, and N defaults to 1
// when x is present and to 0 otherwise. Terms with the same exponent are
// summed.
//
// The e^K factor follows the behavior the cost files were written against:
//
//	"… + e^2"   the term has no x factor and is dropped
//	"… + e^2x"  the term contributes literal·K (here 2) to c[1]
//
// so "3 + 8x + e^2x" parses to [3 10].
//
// # Errors
//
// Every malformed input yields a *ParseError naming the offending term;
// match it with errors.Is(err, ErrParse).
package polynomial
