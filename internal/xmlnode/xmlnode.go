// Package xmlnode provides small, explicit value types for hand-building an
// XML element tree, in place of marshalling a Go struct with struct tags.
// The walk-driven shape of the SOL25 schema (spec.md §4.6) — attributes in a
// fixed order, children built up incrementally as a tree is walked — fits a
// builder of this shape better than encoding/xml's reflection-based
// Marshal. Modelled on the retrieved pack's pkg/xml helper types.
package xmlnode

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Attr is a single name="value" XML attribute. Value is escaped on render.
type Attr struct {
	Name  string
	Value string
}

func (a Attr) String() string {
	sb := new(strings.Builder)
	xml.EscapeText(sb, []byte(a.Value))
	return a.Name + `="` + sb.String() + `"`
}

// Element is an XML element: a name, an ordered list of attributes, and an
// ordered list of children (further Elements or CharData).
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Node is anything that can appear inside an Element: another Element, or
// character data.
type Node interface {
	node()
}

func (e *Element) node() {}

// CharData is escaped text content.
type CharData string

func (CharData) node() {}

// New builds an Element with the given name and no attributes or children.
func New(name string) *Element {
	return &Element{Name: name}
}

// WithAttr appends an attribute and returns the element, for chained
// construction.
func (e *Element) WithAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Append adds one or more children and returns the element.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Render writes the element tree as pretty-indented XML, two spaces per
// depth level, prefixed with the standard XML declaration (spec.md §4.6).
func Render(root *Element) string {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	root.render(&buf, 0)
	buf.WriteString("\n")
	return buf.String()
}

func (e *Element) render(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteString("<")
	buf.WriteString(e.Name)
	for _, a := range e.Attrs {
		buf.WriteString(" ")
		buf.WriteString(a.String())
	}

	if len(e.Children) == 0 {
		buf.WriteString(" />")
		return
	}

	buf.WriteString(">")
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			buf.WriteString("\n")
			n.render(buf, depth+1)
		case CharData:
			sb := new(strings.Builder)
			xml.EscapeText(sb, []byte(n))
			buf.WriteString(sb.String())
		}
	}
	if _, onlyText := soleCharData(e.Children); !onlyText {
		buf.WriteString("\n")
		buf.WriteString(indent)
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteString(">")
}

func soleCharData(nodes []Node) (CharData, bool) {
	if len(nodes) != 1 {
		return "", false
	}
	cd, ok := nodes[0].(CharData)
	return cd, ok
}
