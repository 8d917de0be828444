package network_test

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/network"
)

// requireSameNetwork compares everything a round trip must preserve.
func requireSameNetwork(t *testing.T, want, got *network.Network) {
	t.Helper()
	require.Equal(t, want.Name(), got.Name())
	require.Equal(t, want.Nodes(), got.Nodes())
	require.Equal(t, want.Edges(), got.Edges())
	require.Equal(t, want.Model().Kind(), got.Model().Kind())

	wc, gc := want.Model().Coefficients(), got.Model().Coefficients()
	require.Equal(t, wc.Names(), gc.Names())
	for _, name := range wc.Names() {
		w, _ := wc.Column(name)
		g, _ := gc.Column(name)
		require.Equal(t, w, g, "column %s", name)
	}
}

func symbolicNetwork(t *testing.T) *network.Network {
	t.Helper()
	model, err := cost.NewSymbolic("a + b*x^c", 3, cost.SymbolicCoefficients{
		A: []float64{1, 2.5, 0},
		B: []float64{0.15, 1e-3, 7},
		C: []float64{4, 4, 1},
	})
	require.NoError(t, err)
	n, err := network.New(
		[]network.Node{{Label: "o", Zone: true, Demand: -3}, {Label: "m", X: 0.1, Y: -2}, {Label: "d", Zone: true, Demand: 3}},
		[]network.Edge{{From: "o", To: "m", UB: math.Inf(1)}, {From: "m", To: "d", LB: -1, UB: 8}, {From: "o", To: "d", UB: 2}},
		model, network.WithName("bpr"))
	require.NoError(t, err)
	return n
}

func TestRoundTrip_Fixtures(t *testing.T) {
	fromFile := func(path string) func(t *testing.T) *network.Network {
		return func(t *testing.T) *network.Network {
			n, err := network.FromXML(path)
			require.NoError(t, err)
			return n
		}
	}
	cases := map[string]func(t *testing.T) *network.Network{
		"polynomial": fromFile("testdata/road.xml"),
		"piecewise":  fromFile("testdata/electrical5.xml"),
		"symbolic":   symbolicNetwork,
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			orig := build(t)
			for _, pretty := range []bool{false, true} {
				out, err := orig.ToXML(pretty)
				require.NoError(t, err)

				back, err := network.FromXML(out)
				require.NoError(t, err)
				requireSameNetwork(t, orig, back)

				again, err := back.ToXML(pretty)
				require.NoError(t, err)
				require.Equal(t, out, again, "ToXML must be stable across a second round trip")
			}
		})
	}
}

func TestRoundTrip_PiecewiseDDXSurvives(t *testing.T) {
	orig, err := network.FromXML("testdata/electrical5.xml")
	require.NoError(t, err)
	out, err := orig.ToXML(true)
	require.NoError(t, err)
	back, err := network.FromXML(out)
	require.NoError(t, err)

	d, err := back.DDX([]float64{-1, -1, -1, -1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -5, -4.5, -5, -2}, d)
}

func TestWriteFile(t *testing.T) {
	n := symbolicNetwork(t)
	path := filepath.Join(t.TempDir(), "bpr.xml")
	require.NoError(t, n.WriteFile(path, true))

	back, err := network.FromXML(path)
	require.NoError(t, err)
	requireSameNetwork(t, n, back)

	require.Error(t, n.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.xml"), false))
}

// TestRoundTrip_Property builds random polynomial networks on a ring and
// checks that FromXML(ToXML(n)) reproduces them.
func TestRoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("FromXML(ToXML(n)) == n", prop.ForAll(
		func(rows [][]float64, ub float64) bool {
			nodes := make([]network.Node, len(rows)+1)
			for i := range nodes {
				nodes[i] = network.Node{Label: "n" + string(rune('a'+i%26)) + string(rune('a'+i/26)), X: float64(i) / 3}
			}
			edges := make([]network.Edge, len(rows))
			for i := range edges {
				edges[i] = network.Edge{Source: i, Target: (i + 1) % len(nodes), UB: ub}
			}
			model, err := cost.NewPolynomialFromRows(rows)
			if err != nil {
				return false
			}
			n, err := network.New(nodes, edges, model)
			if err != nil {
				return false
			}
			out, err := n.ToXML(false)
			if err != nil {
				return false
			}
			back, err := network.FromXML(out)
			if err != nil {
				return false
			}
			return sameNetwork(n, back)
		},
		gen.SliceOfN(6, gen.SliceOfN(3, gen.Float64Range(-1e3, 1e3))),
		gen.Float64Range(0, 1e6),
	))

	properties.TestingRun(t)
}

func sameNetwork(a, b *network.Network) bool {
	if !reflect.DeepEqual(a.Nodes(), b.Nodes()) || !reflect.DeepEqual(a.Edges(), b.Edges()) {
		return false
	}
	ac, bc := a.Model().Coefficients(), b.Model().Coefficients()
	if !reflect.DeepEqual(ac.Names(), bc.Names()) {
		return false
	}
	for _, name := range ac.Names() {
		x, _ := ac.Column(name)
		y, _ := bc.Column(name)
		if !reflect.DeepEqual(x, y) {
			return false
		}
	}
	return true
}
