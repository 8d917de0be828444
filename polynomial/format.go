// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// Format renders coefficients in the canonical form read by Parse, e.g.
// [3 -8 0 1] → "3 - 8x + x^3". Zero terms are skipped and an all-zero
// slice renders as "0". Literals are written in plain decimal so that
// Parse(Format(c)) reproduces every finite coefficient bit for bit
// (up to trailing zeros).
func Format(coeffs []float64) string {
	var b strings.Builder
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		mag := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteByte('-')
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}

		if i == 0 || mag != 1 {
			b.WriteString(strconv.FormatFloat(mag, 'f', -1, 64))
		}
		if i >= 1 {
			b.WriteByte('x')
		}
		if i >= 2 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(i))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Eval evaluates the polynomial at x using Horner's scheme.
func Eval(coeffs []float64, x float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

// Derivative returns the coefficients of dP/dx. A constant (or empty)
// polynomial yields [0].
func Derivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{0}
	}
	d := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		d[i-1] = float64(i) * coeffs[i]
	}
	return d
}

// Trim drops trailing zero coefficients, keeping at least one entry.
func Trim(coeffs []float64) []float64 {
	n := len(coeffs)
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []float64{0}
	}
	return coeffs[:n]
}
