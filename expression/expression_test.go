// SPDX-License-Identifier: MIT

package expression_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costnet/expression"
)

func TestParse_Print(t *testing.T) {
	cases := map[string]string{
		"2*b*x + a":       "2 * b * x + a",
		"a - (b - c)":     "a - (b - c)",
		"(a - b) - c":     "a - b - c",
		"x^2^3":           "x^2^3",
		"(x^2)^3":         "(x^2)^3",
		"-x^2":            "-x^2",
		"(-x)^2":          "(-x)^2",
		"a / (b * c)":     "a / (b * c)",
		"exp(-a*x) + 1e3": "exp(-a * x) + 1000",
		"+x":              "x",
	}
	for in, want := range cases {
		e, err := expression.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, e.String(), in)

		// Printing is stable under re-parsing.
		again := expression.MustParse(e.String())
		assert.Equal(t, e.String(), again.String(), in)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "  ", "a +", "(a", "a)", "2 $ x", "foo(x)", "sin x", "1..2", "a b"} {
		_, err := expression.Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, expression.ErrSyntax), in)
	}

	_, err := expression.Parse("foo(x)")
	assert.True(t, errors.Is(err, expression.ErrUnknownFunction))

	var se *expression.SyntaxError
	_, err = expression.Parse("a + $")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 4, se.Pos)
}

func TestVars(t *testing.T) {
	e := expression.MustParse("a*x^2 + b*x + c + pi + sin(d)")
	assert.Equal(t, []string{"a", "b", "c", "d", "x"}, e.Vars())
}

func TestDerivative_Printed(t *testing.T) {
	cases := map[string]string{
		"2*b*x + a":     "2 * b",
		"a*x^2 + b*x":   "a * 2 * x + b",
		"c":             "0",
		"x":             "1",
		"-x":            "-1",
		"exp(x)":        "exp(x)",
		"log(x)":        "1 / x",
		"abs(x)":        "sign(x)",
		"a + b*x^3 / 3": "b * 3 * x^2 / 3",
	}
	for in, want := range cases {
		d := expression.MustParse(in).Derivative("x")
		assert.Equal(t, want, d.String(), in)
	}
}

// TestDerivative_FiniteDifference compares symbolic derivatives with a
// central difference at a few points.
func TestDerivative_FiniteDifference(t *testing.T) {
	formulas := []string{
		"a*x^2 + b*x + c",
		"x^x",
		"2^x",
		"sqrt(x) * cos(x)",
		"sin(a*x) / (1 + x^2)",
		"log(1 + exp(x))",
		"-(x - a)^3",
		"pi*x",
	}
	env := map[string]float64{"a": 1.5, "b": -2, "c": 0.25}
	const h = 1e-6
	for _, src := range formulas {
		e := expression.MustParse(src)
		d := e.Derivative("x")
		for _, x := range []float64{0.3, 1, 2.5} {
			env["x"] = x + h
			hi, err := e.Eval(env)
			require.NoError(t, err)
			env["x"] = x - h
			lo, err := e.Eval(env)
			require.NoError(t, err)
			env["x"] = x

			got, err := d.Eval(env)
			require.NoError(t, err, src)
			assert.InDelta(t, (hi-lo)/(2*h), got, 1e-5, "%s at x=%g", src, x)
		}
	}
}

func TestBind(t *testing.T) {
	e := expression.MustParse("a + b*x")
	p, err := e.Bind("x", "a", "b", "unused")
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Eval([]float64{2, 1, 3, 99}))
	assert.Equal(t, []string{"x", "a", "b", "unused"}, p.Names())

	_, err = e.Bind("x", "a")
	assert.True(t, errors.Is(err, expression.ErrUnboundVariable))

	_, err = e.Eval(map[string]float64{"x": 1})
	assert.True(t, errors.Is(err, expression.ErrUnboundVariable))
}

func TestEval_Functions(t *testing.T) {
	v, err := expression.MustParse("abs(-2) + sign(-3) + sqrt(16) + exp(0) + log(1) + cos(0) + sin(0)").
		Eval(map[string]float64{})
	require.NoError(t, err)
	assert.Equal(t, 2.0-1+4+1+0+1+0, v)

	v, err = expression.MustParse("2^-1").Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = expression.MustParse("sign(0)").Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.False(t, math.Signbit(v))
}

func TestCompile_Cache(t *testing.T) {
	c1, err := expression.Compile("a + 2*b*x + c*x^2", "x")
	require.NoError(t, err)
	c2, err := expression.Compile("a + 2*b*x + c*x^2", "x")
	require.NoError(t, err)
	assert.Same(t, c1, c2)

	assert.Equal(t, []string{"a", "b", "c"}, c1.Params())
	assert.Equal(t, "2 * b + c * 2 * x", c1.DF.String())

	c3, err := expression.Compile("a + 2*b*x + c*x^2", "b")
	require.NoError(t, err)
	assert.NotSame(t, c1, c3)
	assert.Equal(t, []string{"a", "c", "x"}, c3.Params())

	_, err = expression.Compile("a +", "x")
	assert.True(t, errors.Is(err, expression.ErrSyntax))
}
