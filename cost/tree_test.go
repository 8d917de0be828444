package cost_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/xmltree"
)

// AddToTreeSuite exercises the append/overwrite serialization modes.
type AddToTreeSuite struct {
	suite.Suite
	root *etree.Element
}

func (s *AddToTreeSuite) SetupTest() {
	s.root = loadRoot(s.T(), "testdata/symbolic.xml")
}

func tags(block *etree.Element) []string {
	var out []string
	for _, c := range block.ChildElements() {
		out = append(out, c.Tag)
	}
	return out
}

func texts(block *etree.Element) []string {
	var out []string
	for _, c := range block.ChildElements() {
		out = append(out, c.Text())
	}
	return out
}

// TestSymbolicAppend: overwrite=false doubles the tag list in order.
func (s *AddToTreeSuite) TestSymbolicAppend() {
	m, err := cost.FromXML(s.root)
	require.NoError(s.T(), err)

	edge := edgesOf(s.root)[0]
	require.NoError(s.T(), m.AddToTree(edge, 1, false))

	block := xmltree.Descend(edge, "cost", "symbolic")
	require.Equal(s.T(), []string{"a", "b", "c", "a", "b", "c"}, tags(block))
	require.Equal(s.T(), []string{"1", "2", "0", "4", "0.5", "1"}, texts(block))

	// Last occurrence wins on read: edge 0 now carries edge 1's values.
	again, err := cost.FromXML(s.root)
	require.NoError(s.T(), err)
	row, err := again.Coefficients().Row(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[string]float64{"a": 4, "b": 0.5, "c": 1}, row)
}

// TestSymbolicOverwrite: overwrite=true keeps the tag list, updates values.
func (s *AddToTreeSuite) TestSymbolicOverwrite() {
	m, err := cost.FromXML(s.root)
	require.NoError(s.T(), err)

	edge := edgesOf(s.root)[0]
	require.NoError(s.T(), m.AddToTree(edge, 2, true))

	block := xmltree.Descend(edge, "cost", "symbolic")
	require.Equal(s.T(), []string{"a", "b", "c"}, tags(block))
	require.Equal(s.T(), []string{"0", "1", "3"}, texts(block))
}

// TestCreatesMissingBlocks: an edge without <cost> gets one.
func (s *AddToTreeSuite) TestCreatesMissingBlocks() {
	m, err := cost.NewPiecewiseQuadratic(1, cost.PiecewiseCoefficients{
		A: []float64{0.5}, Tau: []float64{0},
	})
	require.NoError(s.T(), err)

	edge := etree.NewElement("edge")
	require.NoError(s.T(), m.AddToTree(edge, 0, true))
	block := xmltree.Descend(edge, "cost", "piecewise-quadratic")
	require.NotNil(s.T(), block)
	require.Equal(s.T(), []string{"a", "b", "tau", "lap_weight"}, tags(block))
	require.Equal(s.T(), []string{"0.5", "0", "0", "0.5"}, texts(block))

	// -Inf survives as text.
	def, err := cost.NewPiecewiseQuadratic(1, cost.PiecewiseCoefficients{})
	require.NoError(s.T(), err)
	fresh := etree.NewElement("edge")
	require.NoError(s.T(), def.AddToTree(fresh, 0, false))
	require.Equal(s.T(), "-Inf", xmltree.Descend(fresh, "cost", "piecewise-quadratic", "tau").Text())
}

// TestPolynomialModes: text blocks are appended or rewritten whole.
func (s *AddToTreeSuite) TestPolynomialModes() {
	root := loadRoot(s.T(), "testdata/road.xml")
	m, err := cost.FromXML(root)
	require.NoError(s.T(), err)

	edge := edgesOf(root)[2] // <c0>4</c0><c1>0.5</c1>
	require.NoError(s.T(), m.AddToTree(edge, 0, false))
	blocks := xmltree.Children(xmltree.Child(edge, "cost"), "polynomial")
	require.Len(s.T(), blocks, 2)
	require.Equal(s.T(), "3 + 8x + 16x^2", blocks[1].Text())

	require.NoError(s.T(), m.AddToTree(edge, 1, true))
	blocks = xmltree.Children(xmltree.Child(edge, "cost"), "polynomial")
	require.Len(s.T(), blocks, 2)
	for _, b := range blocks {
		require.Empty(s.T(), b.ChildElements())
		require.Equal(s.T(), "1 + 2x^3", b.Text())
	}
}

// TestRoundTrip: writing every edge into an empty tree and reading it back
// reproduces the columns exactly.
func (s *AddToTreeSuite) TestRoundTrip() {
	for _, fixture := range []string{"testdata/road.xml", "testdata/electrical5.xml", "testdata/symbolic.xml"} {
		src := loadRoot(s.T(), fixture)
		m, err := cost.FromXML(src)
		require.NoError(s.T(), err, fixture)

		dst := etree.NewElement("network")
		edges := dst.CreateElement("edges")
		for i := 0; i < m.NumEdges(); i++ {
			require.NoError(s.T(), m.AddToTree(edges.CreateElement("edge"), i, false))
		}
		if sym, ok := m.(*cost.Symbolic); ok {
			dst.CreateElement("metadata").CreateElement("costfuncs").CreateElement("F").SetText(sym.Formula())
		}

		back, err := cost.FromXML(dst)
		require.NoError(s.T(), err, fixture)
		require.Equal(s.T(), m.Kind(), back.Kind())
		want, got := m.Coefficients(), back.Coefficients()
		require.Equal(s.T(), want.Names(), got.Names(), fixture)
		for _, name := range want.Names() {
			w, _ := want.Column(name)
			g, _ := got.Column(name)
			require.Equal(s.T(), w, g, "%s column %s", fixture, name)
		}
	}
}

func (s *AddToTreeSuite) TestEdgeRange() {
	m := cost.ZeroPolynomial(1)
	require.ErrorIs(s.T(), m.AddToTree(etree.NewElement("edge"), 1, false), cost.ErrEdgeRange)
	require.ErrorIs(s.T(), m.AddToTree(etree.NewElement("edge"), -1, false), cost.ErrEdgeRange)
}

func TestAddToTreeSuite(t *testing.T) {
	suite.Run(t, new(AddToTreeSuite))
}
