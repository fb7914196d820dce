// SPDX-License-Identifier: MIT

package svg

import (
	"fmt"
	"io"
)

// Namespace declarations carried on every document root. Inkscape's layer
// extension and xlink (for <use> clones) are part of the output contract.
const (
	NamespaceSVG      = "http://www.w3.org/2000/svg"
	NamespaceInkscape = "http://www.inkscape.org/namespaces/inkscape"
	NamespaceXLink    = "http://www.w3.org/1999/xlink"
)

// Document is a complete SVG file: the <svg> root plus one session layer
// that drawing groups are appended to. Session-scoped definitions (hatch
// patterns, the vertex clone symbol) live inside the layer so that appended
// sessions stay self-contained.
type Document struct {
	Root  *Node
	Layer *Node
}

// NewDocument builds an <svg> root sized in pixels.
func NewDocument(width, height int) *Document {
	root := New("svg").
		Attr("xmlns", NamespaceSVG).
		Attr("xmlns:inkscape", NamespaceInkscape).
		Attr("xmlns:xlink", NamespaceXLink).
		Attr("width", fmt.Sprintf("%dpx", width)).
		Attr("height", fmt.Sprintf("%dpx", height))
	return &Document{Root: root}
}

// AddLayer appends an Inkscape layer group to the root and makes it the
// document's current layer.
func (d *Document) AddLayer(id string) *Node {
	layer := New("g").
		Attr("inkscape:groupmode", "layer").
		Attr("id", id)
	d.Root.Add(layer)
	d.Layer = layer
	return layer
}

// String renders the whole document.
func (d *Document) String() string {
	return d.Root.String()
}

// WriteTo writes the rendered document with a trailing newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.Root.WriteTo(w)
}
