package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costnet/cost"
)

func TestParseKind(t *testing.T) {
	cases := map[string]cost.Kind{
		"":                    cost.KindAuto,
		"auto":                cost.KindAuto,
		"polynomial":          cost.KindPolynomial,
		"Symbolic":            cost.KindSymbolic,
		"piecewise-quadratic": cost.KindPiecewiseQuadratic,
		"piecewise_quadratic": cost.KindPiecewiseQuadratic,
	}
	for in, want := range cases {
		got, err := cost.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := cost.ParseKind("cubic")
	require.ErrorIs(t, err, cost.ErrUnknownVariant)

	assert.Equal(t, "piecewise-quadratic", cost.KindPiecewiseQuadratic.String())
	assert.Equal(t, "auto", cost.KindAuto.String())
	assert.Equal(t, "Kind(9)", cost.Kind(9).String())
	assert.False(t, cost.Kind(9).Valid())
}

func TestNewPolynomial(t *testing.T) {
	_, err := cost.NewPolynomial(nil)
	require.ErrorIs(t, err, cost.ErrColumnLength)

	_, err = cost.NewPolynomial([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, cost.ErrColumnLength)

	_, err = cost.NewPolynomial([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, cost.ErrNonFinite)

	// Trailing all-zero columns are dropped.
	p, err := cost.NewPolynomial([][]float64{{1, 2}, {0, 3}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, []string{"c0", "c1"}, p.Coefficients().Names())

	z := cost.ZeroPolynomial(4)
	got, err := z.DDX([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)
}

func TestNewPolynomialFromRows_ZeroPadding(t *testing.T) {
	p, err := cost.NewPolynomialFromRows([][]float64{{1}, {0, 0, 2}, {3, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())

	col, ok := p.Coefficients().Column("c2")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 2, 0}, col)

	val, err := p.Evaluate([]float64{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 8, 5}, val)
}

// DDX must agree with a central difference of Evaluate for every variant.
func TestDDX_MatchesFiniteDifference(t *testing.T) {
	poly, err := cost.NewPolynomialFromRows([][]float64{{1, -2, 0.5, 0.25}, {0, 3}, {2}})
	require.NoError(t, err)
	sym, err := cost.NewSymbolic("a*exp(b*x) + c*sqrt(x)", 3, cost.SymbolicCoefficients{
		A: []float64{1, 2, 0.5},
		B: []float64{0.1, -0.3, 1},
		C: []float64{0, 1, 2},
	})
	require.NoError(t, err)
	pwq, err := cost.NewPiecewiseQuadratic(3, cost.PiecewiseCoefficients{
		A:         []float64{1, 0.5, 2},
		B:         []float64{0, 4, 1},
		Tau:       []float64{math.Inf(-1), 0, 1},
		LapWeight: []float64{1, 0.5, 3},
	})
	require.NoError(t, err)

	const h = 1e-6
	for _, m := range []cost.Model{poly, sym, pwq} {
		for _, f := range []float64{0.3, 1.7, 2.5} {
			flow := uniform(3, f)
			d, err := m.DDX(flow)
			require.NoError(t, err)
			hi, err := m.Evaluate(uniform(3, f+h))
			require.NoError(t, err)
			lo, err := m.Evaluate(uniform(3, f-h))
			require.NoError(t, err)
			for e := range d {
				assert.InDelta(t, (hi[e]-lo[e])/(2*h), d[e], 1e-4, "%s edge %d flow %v", m.Kind(), e, f)
			}
		}
	}
}

func TestFlowLength(t *testing.T) {
	models := []cost.Model{cost.ZeroPolynomial(2)}
	s, err := cost.NewSymbolic("a*x", 2, cost.SymbolicCoefficients{})
	require.NoError(t, err)
	p, err := cost.NewPiecewiseQuadratic(2, cost.PiecewiseCoefficients{})
	require.NoError(t, err)
	models = append(models, s, p)

	for _, m := range models {
		_, err := m.Evaluate([]float64{1})
		assert.ErrorIs(t, err, cost.ErrFlowLength, m.Kind().String())
		_, err = m.DDX([]float64{1, 2, 3})
		assert.ErrorIs(t, err, cost.ErrFlowLength, m.Kind().String())
	}
}

func TestPiecewise_Regime(t *testing.T) {
	p, err := cost.NewPiecewiseQuadratic(2, cost.PiecewiseCoefficients{
		A:   []float64{1, 1},
		Tau: []float64{math.Inf(-1), 0.5},
	})
	require.NoError(t, err)

	r, err := p.Regime(0, -1e9)
	require.NoError(t, err)
	assert.Equal(t, cost.AtOrAboveTau, r)

	r, err = p.Regime(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, cost.AtOrAboveTau, r)

	r, err = p.Regime(1, 0.4)
	require.NoError(t, err)
	assert.Equal(t, cost.BelowTau, r)
	assert.Equal(t, "below-tau", r.String())

	_, err = p.Regime(2, 0)
	require.ErrorIs(t, err, cost.ErrEdgeRange)

	// lap_weight defaults to a.
	lw, _ := p.Coefficients().Column(cost.CoefLapWeight)
	assert.Equal(t, []float64{1, 1}, lw)
}

func TestPiecewise_ContinuousAtTau(t *testing.T) {
	p, err := cost.NewPiecewiseQuadratic(1, cost.PiecewiseCoefficients{
		A: []float64{0.5}, B: []float64{4}, Tau: []float64{1.5}, LapWeight: []float64{3},
	})
	require.NoError(t, err)

	at, err := p.Evaluate([]float64{1.5})
	require.NoError(t, err)
	below, err := p.Evaluate([]float64{1.5 - 1e-9})
	require.NoError(t, err)
	assert.InDelta(t, at[0], below[0], 1e-6)
}

func TestNewSymbolic_Validation(t *testing.T) {
	_, err := cost.NewSymbolic("", 1, cost.SymbolicCoefficients{})
	require.ErrorIs(t, err, cost.ErrNoExpression)

	_, err = cost.NewSymbolic("a*x", 2, cost.SymbolicCoefficients{A: []float64{1}})
	require.ErrorIs(t, err, cost.ErrColumnLength)

	_, err = cost.NewSymbolic("a*x", 1, cost.SymbolicCoefficients{Extra: map[string][]float64{"x": {1}}})
	require.ErrorIs(t, err, cost.ErrUnknownCoefficient)

	_, err = cost.NewSymbolic("a*x +", 1, cost.SymbolicCoefficients{})
	require.Error(t, err)

	s, err := cost.NewSymbolic("a*x^2 + d*x", 2, cost.SymbolicCoefficients{A: []float64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Coefficients().Names())
	assert.Equal(t, "a*x^2 + d*x", s.Formula())
	assert.NotEmpty(t, s.Derivative())
}

func TestCoefficients_AreCopies(t *testing.T) {
	a := []float64{1, 2}
	p, err := cost.NewPiecewiseQuadratic(2, cost.PiecewiseCoefficients{A: a})
	require.NoError(t, err)
	a[0] = 99

	view := p.Coefficients()
	col, _ := view.Column(cost.CoefA)
	assert.Equal(t, []float64{1, 2}, col)
	col[1] = 42
	again, _ := view.Column(cost.CoefA)
	assert.Equal(t, []float64{1, 2}, again)

	row, err := view.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, row[cost.CoefA])
	assert.True(t, math.IsInf(row[cost.CoefTau], -1))

	_, err = view.Row(2)
	require.ErrorIs(t, err, cost.ErrEdgeRange)

	_, ok := view.Column("nope")
	assert.False(t, ok)
}

func TestTotalCost(t *testing.T) {
	p, err := cost.NewPolynomialFromRows([][]float64{{1, 1}, {0, 0, 1}})
	require.NoError(t, err)
	total, err := cost.TotalCost(p, []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 12.0, total)

	_, err = cost.TotalCost(p, nil)
	require.ErrorIs(t, err, cost.ErrFlowLength)
}

func BenchmarkDDX(b *testing.B) {
	const m = 4096
	a, bb, tau := make([]float64, m), make([]float64, m), make([]float64, m)
	flow := make([]float64, m)
	for i := range a {
		a[i], bb[i], tau[i] = float64(i%7)+0.5, float64(i%3), float64(i%5)-2
		flow[i] = float64(i%11) - 5
	}
	pwq, _ := cost.NewPiecewiseQuadratic(m, cost.PiecewiseCoefficients{A: a, B: bb, Tau: tau})
	poly, _ := cost.NewPolynomial([][]float64{bb, a, tau})
	sym, _ := cost.NewSymbolic("a*x^2 + b*x + c", m, cost.SymbolicCoefficients{A: a, B: bb, C: tau})

	for _, model := range []cost.Model{poly, sym, pwq} {
		b.Run(model.Kind().String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := model.DDX(flow); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
