// SPDX-License-Identifier: MIT
// Package: costnet/gaslib
//
// topology.go — the .net file.
//
// Element and attribute lookups use local names, so the usual
// framework: prefix and the default GasLib namespace are both accepted.

package gaslib

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/lookup"
	"github.com/katalvlaran/costnet/xmltree"
)

// NodeKind classifies topology nodes.
type NodeKind string

// Node kinds, named as the GasLib elements.
const (
	Source NodeKind = "source"
	Sink   NodeKind = "sink"
	Innode NodeKind = "innode"
)

// ConnectionKind classifies topology connections.
type ConnectionKind string

// Connection kinds, named as the GasLib elements.
const (
	Pipe              ConnectionKind = "pipe"
	ShortPipe         ConnectionKind = "shortPipe"
	Valve             ConnectionKind = "valve"
	CompressorStation ConnectionKind = "compressorStation"
	Resistor          ConnectionKind = "resistor"
	ControlValve      ConnectionKind = "controlValve"
)

var connectionKinds = map[string]ConnectionKind{
	string(Pipe):              Pipe,
	string(ShortPipe):         ShortPipe,
	string(Valve):             Valve,
	string(CompressorStation): CompressorStation,
	string(Resistor):          Resistor,
	string(ControlValve):      ControlValve,
}

// Quantity is a physical value with its unit as written in the file.
type Quantity struct {
	Value float64
	Unit  string
}

// Properties maps a property element name (length, flowMax, …) to its
// quantity. Elements without a value attribute are not recorded.
type Properties map[string]Quantity

// Lookup returns the value of property name, or def when absent.
func (p Properties) Lookup(name string, def float64) float64 {
	if q, ok := p[name]; ok {
		return q.Value
	}
	return def
}

// TopologyNode is one <source>, <sink> or <innode>.
type TopologyNode struct {
	ID    string
	Alias string
	Kind  NodeKind
	X, Y  float64
	Props Properties
}

// Connection is one element of <framework:connections>.
type Connection struct {
	ID       string
	Kind     ConnectionKind
	From, To string
	Props    Properties
}

// Topology is a decoded .net file.
type Topology struct {
	Title       string
	Nodes       []TopologyNode
	Connections []Connection
}

// ParseNetwork decodes a topology file given as a path or inline XML.
func ParseNetwork(src string) (*Topology, error) {
	doc, err := xmltree.Load(src)
	if err != nil {
		return nil, fmt.Errorf("gaslib: topology: %w", err)
	}
	root, err := xmltree.Root(doc, "network")
	if err != nil {
		return nil, fmt.Errorf("gaslib: topology: %w", err)
	}

	topo := &Topology{}
	if title := xmltree.Descend(root, "information", "title"); title != nil {
		topo.Title = strings.TrimSpace(title.Text())
	}

	ids := lookup.New(0)
	nodesEl := xmltree.Child(root, "nodes")
	if nodesEl != nil {
		for _, el := range nodesEl.ChildElements() {
			n, err := readNode(el)
			if err != nil {
				return nil, err
			}
			if _, err := ids.Add(n.ID); err != nil {
				return nil, fmt.Errorf("gaslib: node: %w", err)
			}
			topo.Nodes = append(topo.Nodes, n)
		}
	}

	connsEl := xmltree.Child(root, "connections")
	if connsEl != nil {
		for _, el := range connsEl.ChildElements() {
			c, err := readConnection(el)
			if err != nil {
				return nil, err
			}
			for _, end := range [...]string{c.From, c.To} {
				if !ids.Has(end) {
					return nil, fmt.Errorf("%w: %s %q references %q", ErrUnknownNode, c.Kind, c.ID, end)
				}
			}
			topo.Connections = append(topo.Connections, c)
		}
	}

	return topo, nil
}

func readNode(el *etree.Element) (TopologyNode, error) {
	var kind NodeKind
	switch NodeKind(el.Tag) {
	case Source, Sink, Innode:
		kind = NodeKind(el.Tag)
	default:
		return TopologyNode{}, fmt.Errorf("%w: <%s> in nodes", ErrUnknownElement, el.FullTag())
	}
	id := el.SelectAttrValue("id", "")
	if id == "" {
		return TopologyNode{}, fmt.Errorf("%w: %s without id", ErrMissingAttr, kind)
	}

	n := TopologyNode{ID: id, Alias: el.SelectAttrValue("alias", ""), Kind: kind}
	var err error
	if n.X, err = xmltree.FloatAttr(el, "x", 0); err != nil {
		return TopologyNode{}, fmt.Errorf("gaslib: %w", err)
	}
	if n.Y, err = xmltree.FloatAttr(el, "y", 0); err != nil {
		return TopologyNode{}, fmt.Errorf("gaslib: %w", err)
	}
	if n.Props, err = readProperties(el); err != nil {
		return TopologyNode{}, err
	}
	return n, nil
}

func readConnection(el *etree.Element) (Connection, error) {
	kind, ok := connectionKinds[el.Tag]
	if !ok {
		return Connection{}, fmt.Errorf("%w: <%s> in connections", ErrUnknownElement, el.FullTag())
	}
	c := Connection{
		ID:   el.SelectAttrValue("id", ""),
		Kind: kind,
		From: el.SelectAttrValue("from", ""),
		To:   el.SelectAttrValue("to", ""),
	}
	if c.ID == "" || c.From == "" || c.To == "" {
		return Connection{}, fmt.Errorf("%w: %s needs id, from and to", ErrMissingAttr, kind)
	}
	props, err := readProperties(el)
	if err != nil {
		return Connection{}, err
	}
	c.Props = props
	return c, nil
}

// readProperties collects <name value="…" unit="…"/> children. Children
// without a value (nested blocks of compressor stations, for instance)
// are skipped.
func readProperties(el *etree.Element) (Properties, error) {
	props := make(Properties)
	for _, c := range el.ChildElements() {
		if c.SelectAttr("value") == nil {
			continue
		}
		v, err := xmltree.FloatAttr(c, "value", 0)
		if err != nil {
			return nil, fmt.Errorf("gaslib: %w", err)
		}
		props[c.Tag] = Quantity{Value: v, Unit: c.SelectAttrValue("unit", "")}
	}
	return props, nil
}
