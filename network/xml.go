// SPDX-License-Identifier: MIT
// Package: costnet/network
//
// xml.go — network XML round trip.
//
// Contract:
//   - FromXML(src) accepts a path or inline XML (first non-blank byte '<').
//   - ToXML writes every node attribute that differs from its default,
//     lb/ub on every edge, each edge's cost block (overwrite mode, so a
//     single block per edge), and metadata/costfuncs/F for symbolic models.
//   - FromXML(ToXML(n)) reproduces n; ToXML is stable under a second trip.

package network

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/katalvlaran/costnet/cost"
	"github.com/katalvlaran/costnet/xmltree"
)

const indent = 2

// FromXML reads a network from a path or an in-memory XML string.
func FromXML(src string, opts ...Option) (*Network, error) {
	doc, err := xmltree.Load(src)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	return FromDocument(doc, opts...)
}

// FromReader reads a network document from r.
func FromReader(r io.Reader, opts ...Option) (*Network, error) {
	doc, err := xmltree.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	return FromDocument(doc, opts...)
}

// FromDocument builds a network from a parsed document. The <network>
// element may be the root or nested anywhere below it.
func FromDocument(doc *etree.Document, opts ...Option) (*Network, error) {
	s := newSettings(opts)
	if s.configErr != nil {
		return nil, fmt.Errorf("network: %w", s.configErr)
	}
	root, err := xmltree.Root(doc, "network")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoNetwork, err)
	}

	nodes, err := readNodes(root)
	if err != nil {
		return nil, err
	}
	edges, err := readEdges(root)
	if err != nil {
		return nil, err
	}
	name := root.SelectAttrValue("name", s.name)
	// Topology first, so endpoint and bound errors win over cost errors.
	n, err := New(nodes, edges, nil, WithName(name), WithLogger(s.logger), WithPrettify(s.prettify))
	if err != nil {
		return nil, err
	}
	model, err := cost.FromXML(root, s.ingest()...)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	if model.NumEdges() != n.NumEdges() {
		return nil, fmt.Errorf("%w: model has %d rows, network has %d edges", ErrEdgeCount, model.NumEdges(), n.NumEdges())
	}
	n.model = model
	s.logger.Debug("network loaded",
		zap.String("name", name),
		zap.Int("nodes", n.NumNodes()),
		zap.Int("edges", n.NumEdges()),
		zap.Stringer("cost", model.Kind()))

	return n, nil
}

func readNodes(root *etree.Element) ([]Node, error) {
	els := xmltree.Children(xmltree.Child(root, "nodes"), "node")
	nodes := make([]Node, len(els))
	for i, el := range els {
		label := strings.TrimSpace(el.SelectAttrValue("label", ""))
		if label == "" {
			return nil, fmt.Errorf("%w: node %d has no label", ErrMissingAttr, i)
		}
		nd := Node{Label: label}
		var err error
		if nd.X, err = xmltree.FloatAttr(el, "x", 0); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		if nd.Y, err = xmltree.FloatAttr(el, "y", 0); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		if nd.Demand, err = xmltree.FloatAttr(el, "demand", 0); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		if nd.Zone, err = xmltree.BoolAttr(el, "zone", false); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		nodes[i] = nd
	}
	return nodes, nil
}

func readEdges(root *etree.Element) ([]Edge, error) {
	els := xmltree.Children(xmltree.Child(root, "edges"), "edge")
	edges := make([]Edge, len(els))
	for i, el := range els {
		e := Edge{
			From: strings.TrimSpace(el.SelectAttrValue("from", "")),
			To:   strings.TrimSpace(el.SelectAttrValue("to", "")),
		}
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d needs from and to", ErrMissingAttr, i)
		}
		var err error
		if e.LB, err = xmltree.FloatAttr(el, "lb", 0); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		if e.UB, err = xmltree.FloatAttr(el, "ub", math.Inf(1)); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		edges[i] = e
	}
	return edges, nil
}

// Document renders the network as a fresh etree document.
func (n *Network) Document() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("network")
	if n.name != "" {
		root.CreateAttr("name", n.name)
	}

	nodesEl := root.CreateElement("nodes")
	for _, nd := range n.nodes {
		el := nodesEl.CreateElement("node")
		el.CreateAttr("label", nd.Label)
		el.CreateAttr("x", xmltree.FormatFloat(nd.X))
		el.CreateAttr("y", xmltree.FormatFloat(nd.Y))
		if nd.Zone {
			el.CreateAttr("zone", "true")
		}
		if nd.Demand != 0 {
			el.CreateAttr("demand", xmltree.FormatFloat(nd.Demand))
		}
	}

	edgesEl := root.CreateElement("edges")
	for i, e := range n.edges {
		el := edgesEl.CreateElement("edge")
		el.CreateAttr("from", e.From)
		el.CreateAttr("to", e.To)
		el.CreateAttr("lb", xmltree.FormatFloat(e.LB))
		el.CreateAttr("ub", xmltree.FormatFloat(e.UB))
		if err := n.model.AddToTree(el, i, true); err != nil {
			return nil, fmt.Errorf("network: edge %d: %w", i, err)
		}
	}

	if sym, ok := n.model.(*cost.Symbolic); ok {
		root.CreateElement("metadata").CreateElement("costfuncs").CreateElement("F").SetText(sym.Formula())
	}

	return doc, nil
}

// ToXML renders the network; prettify indents nested elements.
func (n *Network) ToXML(prettify bool) (string, error) {
	doc, err := n.Document()
	if err != nil {
		return "", err
	}
	if prettify {
		doc.Indent(indent)
	}
	return doc.WriteToString()
}

// XML is ToXML with the prettify setting the network was built with.
func (n *Network) XML() (string, error) { return n.ToXML(n.prettify) }

// Save is WriteFile with the prettify setting the network was built with.
func (n *Network) Save(path string) error { return n.WriteFile(path, n.prettify) }

// WriteFile writes ToXML(prettify) to path.
func (n *Network) WriteFile(path string, prettify bool) error {
	doc, err := n.Document()
	if err != nil {
		return err
	}
	if prettify {
		doc.Indent(indent)
	}
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("network: write %s: %w", path, err)
	}
	n.logger.Debug("network written", zap.String("path", path), zap.Int("edges", len(n.edges)))
	return nil
}
