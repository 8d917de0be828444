// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/katalvlaran/costnet/polynomial"
	"github.com/katalvlaran/costnet/xmltree"
)

const tagCost = "cost"

// writeValue stores v under block/name following the AddToTree rules.
func writeValue(block *etree.Element, name string, v float64, overwrite bool) {
	text := xmltree.FormatFloat(v)
	existing := xmltree.Children(block, name)
	if !overwrite || len(existing) == 0 {
		block.CreateElement(name).SetText(text)
		return
	}
	for _, el := range existing {
		el.SetText(text)
	}
}

// readValues parses every child of block as a number keyed by tag. A tag
// that occurs more than once keeps its last value. allowed, when non-nil,
// restricts the tags a block may carry.
func readValues(block *etree.Element, allowed map[string]bool) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, el := range block.ChildElements() {
		if allowed != nil && !allowed[el.Tag] {
			return nil, fmt.Errorf("%w: <%s> in <%s> at %s", ErrUnknownCoefficient, el.Tag, block.Tag, el.GetPath())
		}
		v, err := xmltree.Float(el)
		if err != nil {
			return nil, err
		}
		out[el.Tag] = v
	}
	return out, nil
}

// readPolynomial decodes one <polynomial> block: either text handed to
// polynomial.Parse or <cN> children. An empty block is the zero polynomial.
func readPolynomial(block *etree.Element) ([]float64, error) {
	children := block.ChildElements()
	if len(children) == 0 {
		text := strings.TrimSpace(block.Text())
		if text == "" {
			return []float64{0}, nil
		}
		return polynomial.Parse(text)
	}

	var row []float64
	for _, el := range children {
		i, ok := polyIndex(el.Tag)
		if !ok {
			return nil, fmt.Errorf("%w: <%s> in <%s> at %s", ErrUnknownCoefficient, el.Tag, TagPolynomial, el.GetPath())
		}
		v, err := xmltree.Float(el)
		if err != nil {
			return nil, err
		}
		for len(row) <= i {
			row = append(row, 0)
		}
		row[i] = v
	}
	return row, nil
}

// polyIndex maps "c3" to 3.
func polyIndex(tag string) (int, bool) {
	if len(tag) < 2 || tag[0] != 'c' {
		return 0, false
	}
	i, err := strconv.Atoi(tag[1:])
	if err != nil || i < 0 || i > polynomial.MaxExponent || tag[1] == '+' {
		return 0, false
	}
	return i, true
}

// lastBlock returns the last <tag> child of edge/cost, or nil.
func lastBlock(edge *etree.Element, tag string) *etree.Element {
	blocks := xmltree.Children(xmltree.Child(edge, tagCost), tag)
	if len(blocks) == 0 {
		return nil
	}
	return blocks[len(blocks)-1]
}
