package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/network"
)

func TestIncidenceMatrix(t *testing.T) {
	n, err := network.FromXML("testdata/road.xml")
	require.NoError(t, err)

	dense, err := n.IncidenceMatrix(network.FormatDense)
	require.NoError(t, err)
	r, c := dense.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)

	// s→a is column 0.
	assert.Equal(t, -1.0, dense.At(0, 0))
	assert.Equal(t, 1.0, dense.At(1, 0))
	assert.Equal(t, 0.0, dense.At(3, 0))

	for j := 0; j < c; j++ {
		assert.Zero(t, floats.Sum(mat.Col(nil, j, dense)), "column %d", j)
	}

	sparse, err := n.IncidenceMatrix(network.FormatTriplet)
	require.NoError(t, err)
	trip, ok := sparse.(*network.Triplet)
	require.True(t, ok)
	assert.Equal(t, 10, trip.NNZ())
	assert.True(t, mat.Equal(dense, sparse))
	assert.True(t, mat.Equal(dense, trip.Dense()))
	assert.Equal(t, dense.At(2, 3), trip.T().At(3, 2))

	_, err = n.IncidenceMatrix(network.Format(7))
	require.ErrorIs(t, err, network.ErrUnknownFormat)

	f, err := network.ParseFormat("coo")
	require.NoError(t, err)
	assert.Equal(t, network.FormatTriplet, f)
	_, err = network.ParseFormat("csr")
	require.ErrorIs(t, err, network.ErrUnknownFormat)
}

// A·f is the net inflow per node; on a feasible flow it equals demand.
func TestIncidenceMatrix_Conservation(t *testing.T) {
	n, err := network.FromXML("testdata/road.xml")
	require.NoError(t, err)
	a, err := n.IncidenceMatrix(network.FormatDense)
	require.NoError(t, err)

	flow := mat.NewVecDense(5, []float64{4, 2, 2, 4, 2})
	var inflow mat.VecDense
	inflow.MulVec(a, flow)
	assert.Equal(t, n.Demand(), inflow.RawVector().Data)
}

func TestIncidenceMatrix_SelfLoopAndEmpty(t *testing.T) {
	n, err := network.New([]network.Node{{Label: "x"}, {Label: "y"}},
		[]network.Edge{{From: "x", To: "x"}, {From: "x", To: "y"}}, nil)
	require.NoError(t, err)
	a, err := n.IncidenceMatrix(network.FormatDense)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, mat.Col(nil, 0, a))

	empty, err := network.New([]network.Node{{Label: "x"}}, nil, nil)
	require.NoError(t, err)
	_, err = empty.IncidenceMatrix(network.FormatDense)
	require.ErrorIs(t, err, network.ErrEmptyNetwork)
	_, err = empty.Laplacian(nil)
	require.ErrorIs(t, err, network.ErrEmptyNetwork)
}

func TestLaplacian(t *testing.T) {
	n, err := network.FromXML("testdata/electrical5.xml")
	require.NoError(t, err)
	lw, ok := n.Model().Coefficients().Column(cost.CoefLapWeight)
	require.True(t, ok)

	l, err := n.Laplacian(lw)
	require.NoError(t, err)
	r, c := l.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)
	assert.True(t, mat.EqualApprox(l, l.T(), 1e-12))
	for i := 0; i < r; i++ {
		assert.InDelta(t, 0, floats.Sum(mat.Row(nil, i, l)), 1e-12, "row %d", i)
	}
	// Node 1 touches edges 1→2 (w=1) and 5→1 (w=1).
	assert.Equal(t, 2.0, l.At(0, 0))
	assert.Equal(t, -1.0, l.At(0, 1))

	_, err = n.Laplacian([]float64{1})
	require.ErrorIs(t, err, network.ErrWeightLength)
}

func TestDirectedGraph(t *testing.T) {
	n, err := network.New(
		[]network.Node{{Label: "p"}, {Label: "q"}, {Label: "r"}},
		[]network.Edge{{From: "p", To: "q", UB: 5}, {From: "p", To: "q", UB: 7}, {From: "q", To: "r", UB: 1}},
		nil)
	require.NoError(t, err)

	g, err := n.DirectedGraph(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())
	assert.Equal(t, 2, g.Lines(0, 1).Len(), "parallel edges are kept")
	assert.False(t, g.HasEdgeFromTo(1, 0))

	var ws []float64
	lines := g.WeightedLines(0, 1)
	for lines.Next() {
		ws = append(ws, lines.WeightedLine().Weight())
	}
	assert.ElementsMatch(t, []float64{5, 7}, ws)

	d, err := n.DDX([]float64{1, 1, 1})
	require.NoError(t, err)
	g, err = n.DirectedGraph(d)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Lines(1, 2).Len())

	_, err = n.DirectedGraph([]float64{1})
	require.ErrorIs(t, err, network.ErrWeightLength)
}
