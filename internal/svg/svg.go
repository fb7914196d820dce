// SPDX-License-Identifier: MIT

// Package svg builds SVG documents as a tree of tags with ordered
// attributes. Scalable Vector Graphics is XML, but the emitted markup is
// pinned to a specific human-friendly shape (one-space indentation,
// self-closing ` />` tags, attribute order = insertion order) that generic
// XML encoders do not produce, so the tree renders itself.
package svg

import (
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/base/indent"
)

// DefaultIndent is the indentation width in spaces per nesting level.
const DefaultIndent = 1

// Child is a renderable member of an element: another element, a comment,
// or character data.
type Child interface {
	encode(b *strings.Builder, level, width int)
}

// Attr is a single name="value" pair. Order of attributes on an element is
// the order in which they were first set.
type Attr struct {
	Name  string
	Value string
}

// Node is an SVG element with ordered attributes and ordered children.
type Node struct {
	name     string
	attrs    []Attr
	children []Child
}

// New returns an element with the given tag name.
func New(name string) *Node {
	return &Node{name: name}
}

// Name reports the element's tag name.
func (n *Node) Name() string { return n.name }

// Attr sets an attribute, keeping the position of an existing one.
// It returns n for chaining.
func (n *Node) Attr(name, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return n
}

// AttrNum sets a numeric attribute using the shortest decimal representation.
func (n *Node) AttrNum(name string, v float64) *Node {
	return n.Attr(name, Ftoa(v))
}

// AttrInt sets an integer attribute.
func (n *Node) AttrInt(name string, v int) *Node {
	return n.Attr(name, strconv.Itoa(v))
}

// AttrValue reports the current value of an attribute and whether it is set.
func (n *Node) AttrValue(name string) (string, bool) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			return n.attrs[i].Value, true
		}
	}
	return "", false
}

// Add appends children in order and returns n for chaining.
func (n *Node) Add(children ...Child) *Node {
	n.children = append(n.children, children...)
	return n
}

// Text appends character data and returns n for chaining. An element whose
// children are all character data renders inline on one line.
func (n *Node) Text(s string) *Node {
	n.children = append(n.children, textData(s))
	return n
}

// Len reports the number of children.
func (n *Node) Len() int { return len(n.children) }

// String renders the element with the default indent width.
func (n *Node) String() string {
	return n.StringIndent(DefaultIndent)
}

// StringIndent renders the element using width spaces per nesting level.
func (n *Node) StringIndent(width int) string {
	var b strings.Builder
	n.encode(&b, 0, width)
	return b.String()
}

// StringLevel renders the element as if nested at the given level, which is
// what appending a subtree into an existing document needs.
func (n *Node) StringLevel(level, width int) string {
	var b strings.Builder
	n.encode(&b, level, width)
	return b.String()
}

// WriteTo writes the rendered element followed by a trailing newline.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	m, err := io.WriteString(w, n.String()+"\n")
	return int64(m), err
}

func (n *Node) encode(b *strings.Builder, level, width int) {
	ind := indent.Spaces(level, width)
	b.WriteString(ind)
	b.WriteByte('<')
	b.WriteString(n.name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	if len(n.children) == 0 {
		b.WriteString(" />")
		return
	}
	if n.textOnly() {
		b.WriteByte('>')
		for _, c := range n.children {
			c.encode(b, 0, 0)
		}
		b.WriteString("</")
		b.WriteString(n.name)
		b.WriteByte('>')
		return
	}
	b.WriteString(">\n")
	for _, c := range n.children {
		c.encode(b, level+1, width)
		b.WriteByte('\n')
	}
	b.WriteString(ind)
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
}

func (n *Node) textOnly() bool {
	for _, c := range n.children {
		if _, ok := c.(textData); !ok {
			return false
		}
	}
	return len(n.children) > 0
}

// Comment renders as <!-- text -->.
type Comment string

func (c Comment) encode(b *strings.Builder, level, width int) {
	b.WriteString(indent.Spaces(level, width))
	b.WriteString("<!-- ")
	b.WriteString(string(c))
	b.WriteString(" -->")
}

type textData string

func (t textData) encode(b *strings.Builder, _, _ int) {
	b.WriteString(escapeText(string(t)))
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
func escapeText(s string) string { return textEscaper.Replace(s) }

// Ftoa formats a float with the shortest decimal representation that
// round-trips, the form SVG attribute values use throughout.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
