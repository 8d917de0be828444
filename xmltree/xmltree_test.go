// SPDX-License-Identifier: MIT

package xmltree_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costnet/xmltree"
)

const sample = `<?xml version="1.0"?>
<gas xmlns:framework="http://example.org/framework">
  <framework:information><title>t</title></framework:information>
  <network name="n">
    <framework:nodes>
      <node id="a" x="1.5" zone="true"/>
      <node id="b" x="oops" zone="maybe"/>
    </framework:nodes>
    <edge><cost><pwq><tau>-inf</tau><a> 2 </a><b>x1</b></pwq></cost></edge>
  </network>
</gas>`

func TestLoad_StringAndPath(t *testing.T) {
	doc, err := xmltree.Load(sample)
	require.NoError(t, err)
	assert.Equal(t, "gas", doc.Root().Tag)

	path := filepath.Join(t.TempDir(), "n.xml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	doc, err = xmltree.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gas", doc.Root().Tag)

	_, err = xmltree.Load("   ")
	assert.ErrorIs(t, err, xmltree.ErrEmptySource)

	_, err = xmltree.Load("<a><b></a>")
	assert.ErrorIs(t, err, xmltree.ErrMalformed)

	_, err = xmltree.Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestRootAndLookup(t *testing.T) {
	doc, err := xmltree.Load(sample)
	require.NoError(t, err)

	net, err := xmltree.Root(doc, "network")
	require.NoError(t, err)
	assert.Equal(t, "n", net.SelectAttrValue("name", ""))

	_, err = xmltree.Root(doc, "nope")
	assert.ErrorIs(t, err, xmltree.ErrRootNotFound)

	nodes := xmltree.Child(net, "nodes")
	require.NotNil(t, nodes, "namespace prefix must be ignored")
	assert.Len(t, xmltree.Children(nodes, "node"), 2)
	assert.Nil(t, xmltree.Child(nil, "x"))
	assert.Nil(t, xmltree.Children(nil, "x"))

	pwq := xmltree.Descend(net, "edge", "cost", "pwq")
	require.NotNil(t, pwq)
	assert.Nil(t, xmltree.Descend(net, "edge", "nothing", "pwq"))

	created := xmltree.Ensure(pwq, "lap_weight")
	assert.Same(t, created, xmltree.Ensure(pwq, "lap_weight"))
}

func TestNumbers(t *testing.T) {
	doc, err := xmltree.Load(sample)
	require.NoError(t, err)
	pwq, err := xmltree.Root(doc, "pwq")
	require.NoError(t, err)

	tau, err := xmltree.Float(xmltree.Child(pwq, "tau"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(tau, -1))

	a, err := xmltree.Float(xmltree.Child(pwq, "a"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, a)

	_, err = xmltree.Float(xmltree.Child(pwq, "b"))
	var ne *xmltree.NumberError
	require.ErrorAs(t, err, &ne)
	assert.True(t, errors.Is(err, xmltree.ErrNumber))
	assert.Equal(t, "x1", ne.Text)
	assert.Contains(t, ne.Path, "pwq/b")

	nodes := xmltree.Children(xmltree.Descend(doc.Root(), "network", "nodes"), "node")
	x, err := xmltree.FloatAttr(nodes[0], "x", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)
	y, err := xmltree.FloatAttr(nodes[0], "y", -7)
	require.NoError(t, err)
	assert.Equal(t, -7.0, y)
	_, err = xmltree.FloatAttr(nodes[1], "x", 0)
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "x", ne.Attr)

	z, err := xmltree.BoolAttr(nodes[0], "zone", false)
	require.NoError(t, err)
	assert.True(t, z)
	_, err = xmltree.BoolAttr(nodes[1], "zone", false)
	assert.Error(t, err)
	d, err := xmltree.BoolAttr(nodes[1], "absent", true)
	require.NoError(t, err)
	assert.True(t, d)
}

func TestFormatFloat(t *testing.T) {
	for _, v := range []float64{0, -1.25, 1e-300, math.Inf(1), math.Inf(-1), 0.1 + 0.2} {
		s := xmltree.FormatFloat(v)
		doc, err := xmltree.Load("<v>" + s + "</v>")
		require.NoError(t, err)
		got, err := xmltree.Float(doc.Root())
		require.NoError(t, err)
		assert.Equal(t, v, got, s)
	}
}
