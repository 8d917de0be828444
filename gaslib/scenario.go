// SPDX-License-Identifier: MIT
// Package: costnet/gaslib
//
// scenario.go — the .scn boundary-value file.

package gaslib

import (
	"fmt"
	"math"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/xmltree"
)

// NominationType tells whether gas enters or leaves at a boundary node.
type NominationType string

// Nomination types.
const (
	Entry NominationType = "entry"
	Exit  NominationType = "exit"
)

// Bound is an interval nomination. An absent side is ±Inf.
type Bound struct {
	Lower, Upper float64
	Unit         string
	set          bool
}

// Set reports whether the file carried at least one side of the bound.
func (b Bound) Set() bool { return b.set }

// Value collapses the interval into one number: the single finite side, or
// the midpoint when both sides are finite. ok is false for an unset bound.
func (b Bound) Value() (v float64, ok bool) {
	if !b.set {
		return 0, false
	}
	lo, hi := !math.IsInf(b.Lower, 0), !math.IsInf(b.Upper, 0)
	switch {
	case lo && hi:
		return (b.Lower + b.Upper) / 2, true
	case lo:
		return b.Lower, true
	case hi:
		return b.Upper, true
	}
	return 0, false
}

// Nomination is one <node> of a scenario.
type Nomination struct {
	Node     string
	Type     NominationType
	Flow     Bound
	Pressure Bound
}

// Scenario is a decoded .scn file.
type Scenario struct {
	ID          string
	Nominations []Nomination
}

// ParseScenario decodes a boundary-value file given as a path or inline
// XML. Only the first <scenario> is read.
func ParseScenario(src string) (*Scenario, error) {
	doc, err := xmltree.Load(src)
	if err != nil {
		return nil, fmt.Errorf("gaslib: scenario: %w", err)
	}
	root, err := xmltree.Root(doc, "boundaryValue")
	if err != nil {
		return nil, fmt.Errorf("gaslib: scenario: %w", err)
	}
	scn := xmltree.Child(root, "scenario")
	if scn == nil {
		return nil, ErrNoScenario
	}

	out := &Scenario{ID: scn.SelectAttrValue("id", "")}
	for _, el := range xmltree.Children(scn, "node") {
		nom, err := readNomination(el)
		if err != nil {
			return nil, err
		}
		out.Nominations = append(out.Nominations, nom)
	}
	return out, nil
}

func readNomination(el *etree.Element) (Nomination, error) {
	nom := Nomination{
		Node: el.SelectAttrValue("id", ""),
		Type: NominationType(el.SelectAttrValue("type", "")),
	}
	if nom.Node == "" {
		return Nomination{}, fmt.Errorf("%w: scenario node without id", ErrMissingAttr)
	}
	switch nom.Type {
	case Entry, Exit:
	case "":
		return Nomination{}, fmt.Errorf("%w: scenario node %q without type", ErrMissingAttr, nom.Node)
	default:
		return Nomination{}, fmt.Errorf("%w: scenario node %q has type %q", ErrUnknownElement, nom.Node, nom.Type)
	}

	var err error
	if nom.Flow, err = readBound(el, "flow"); err != nil {
		return Nomination{}, err
	}
	if nom.Pressure, err = readBound(el, "pressure"); err != nil {
		return Nomination{}, err
	}
	return nom, nil
}

// readBound folds every <tag bound="lower|upper|both" value=…> child of el
// into one interval. Later children overwrite earlier ones.
func readBound(el *etree.Element, tag string) (Bound, error) {
	b := Bound{Lower: math.Inf(-1), Upper: math.Inf(1)}
	for _, c := range xmltree.Children(el, tag) {
		if c.SelectAttr("value") == nil {
			return Bound{}, fmt.Errorf("%w: <%s> without value", ErrMissingAttr, tag)
		}
		v, err := xmltree.FloatAttr(c, "value", 0)
		if err != nil {
			return Bound{}, fmt.Errorf("gaslib: %w", err)
		}
		switch side := c.SelectAttrValue("bound", "both"); side {
		case "lower":
			b.Lower = v
		case "upper":
			b.Upper = v
		case "both":
			b.Lower, b.Upper = v, v
		default:
			return Bound{}, fmt.Errorf("%w: <%s bound=%q>", ErrUnknownElement, tag, side)
		}
		b.Unit = c.SelectAttrValue("unit", b.Unit)
		b.set = true
	}
	return b, nil
}
