// SPDX-License-Identifier: MIT

// Package xmltree holds the small etree helpers shared by the network and
// GasLib readers: loading a document from a path or an in-memory string,
// root discovery, namespace-agnostic child lookup, and strict numeric
// parsing of element text and attributes.
//
// Lookups compare local names only, so "framework:nodes" and "nodes" are
// the same tag here. That is what both the plain network dialect and the
// namespaced GasLib files need.
package xmltree

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

var (
	// ErrEmptySource is returned by Load for an empty or blank argument.
	ErrEmptySource = errors.New("xmltree: empty source")

	// ErrMalformed wraps XML syntax errors reported by the tokenizer.
	ErrMalformed = errors.New("xmltree: malformed document")

	// ErrRootNotFound reports that no element with the requested tag exists.
	ErrRootNotFound = errors.New("xmltree: root element not found")

	// ErrNumber is matched by every *NumberError.
	ErrNumber = errors.New("xmltree: malformed numeric literal")
)

// NumberError names the element (and attribute, if any) holding a literal
// that is not a float.
type NumberError struct {
	Path string // element path, e.g. /network/edges/edge/cost/symbolic/a
	Attr string // attribute name; empty when the element text was parsed
	Text string // the offending literal
}

func (e *NumberError) Error() string {
	where := e.Path
	if e.Attr != "" {
		where += "@" + e.Attr
	}
	return fmt.Sprintf("xmltree: %s: cannot parse %q as a number", where, e.Text)
}

// Unwrap lets errors.Is(err, ErrNumber) succeed.
func (e *NumberError) Unwrap() error { return ErrNumber }

// LooksLikeXML reports whether src is inline XML rather than a file path.
func LooksLikeXML(src string) bool {
	return strings.HasPrefix(strings.TrimSpace(src), "<")
}

// Load reads a document from src, which is either inline XML (first
// non-blank byte is '<') or a filesystem path.
func Load(src string) (*etree.Document, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptySource
	}
	doc := etree.NewDocument()
	if LooksLikeXML(src) {
		if err := doc.ReadFromString(src); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return doc, nil
	}
	if err := doc.ReadFromFile(src); err != nil {
		return nil, fmt.Errorf("xmltree: read %s: %w", src, err)
	}
	return doc, nil
}

// LoadReader reads a document from r.
func LoadReader(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc, nil
}

// Root returns the document root when its local name is tag, otherwise the
// first element named tag in depth-first document order.
func Root(doc *etree.Document, tag string) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrRootNotFound)
	}
	if el := find(root, tag); el != nil {
		return el, nil
	}
	return nil, fmt.Errorf("%w: <%s>", ErrRootNotFound, tag)
}

func find(el *etree.Element, tag string) *etree.Element {
	if el.Tag == tag {
		return el
	}
	for _, c := range el.ChildElements() {
		if hit := find(c, tag); hit != nil {
			return hit
		}
	}
	return nil
}

// Child returns the first direct child with local name tag, or nil.
func Child(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Children returns every direct child with local name tag, in order.
func Children(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Descend follows a chain of child tags and returns nil as soon as one is
// missing: Descend(edge, "cost", "symbolic").
func Descend(el *etree.Element, tags ...string) *etree.Element {
	for _, t := range tags {
		if el = Child(el, t); el == nil {
			return nil
		}
	}
	return el
}

// Ensure returns the first child named tag, creating it when absent.
func Ensure(el *etree.Element, tag string) *etree.Element {
	if c := Child(el, tag); c != nil {
		return c
	}
	return el.CreateElement(tag)
}

// Float parses the trimmed text of el.
func Float(el *etree.Element) (float64, error) {
	text := strings.TrimSpace(el.Text())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberError{Path: el.GetPath(), Text: text}
	}
	return v, nil
}

// FloatAttr parses attribute key of el, returning def when it is absent.
func FloatAttr(el *etree.Element, key string, def float64) (float64, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return def, nil
	}
	text := strings.TrimSpace(a.Value)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberError{Path: el.GetPath(), Attr: key, Text: text}
	}
	return v, nil
}

// BoolAttr parses attribute key of el as a boolean ("true", "1", "no", …),
// returning def when it is absent.
func BoolAttr(el *etree.Element, key string, def bool) (bool, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(a.Value)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("xmltree: %s@%s: cannot parse %q as a boolean", el.GetPath(), key, a.Value)
}

// FormatFloat renders v so that strconv.ParseFloat returns it exactly;
// infinities print as "Inf"/"-Inf".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
