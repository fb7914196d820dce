// SPDX-License-Identifier: MIT

package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyElement(t *testing.T) {
	assert.Equal(t, "<some_name />", New("some_name").String())
}

func TestAttributesKeepInsertionOrder(t *testing.T) {
	n := New("element").Attr("attr1", "val1").Attr("attr2", "val2")
	assert.Equal(t, `<element attr1="val1" attr2="val2" />`, n.String())
}

func TestAttributeResetKeepsPosition(t *testing.T) {
	n := New("element").Attr("a", "1").Attr("b", "2").Attr("a", "3")
	assert.Equal(t, `<element a="3" b="2" />`, n.String())

	v, ok := n.AttrValue("a")
	require.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = n.AttrValue("missing")
	assert.False(t, ok)
}

func TestComment(t *testing.T) {
	var b strings.Builder
	Comment("text").encode(&b, 0, DefaultIndent)
	assert.Equal(t, "<!-- text -->", b.String())
}

func TestNestedFormatting(t *testing.T) {
	root := New("root").Add(
		New("inner"),
		New("nested").Add(
			New("inner"),
			Comment("text"),
		),
	)

	want := strings.Join([]string{
		"<root>",
		" <inner />",
		" <nested>",
		"  <inner />",
		"  <!-- text -->",
		" </nested>",
		"</root>",
	}, "\n")
	assert.Equal(t, want, root.String())
}

func TestIndentWidth(t *testing.T) {
	root := New("root").Add(New("inner"))

	assert.Equal(t, "<root>\n  <inner />\n</root>", root.StringIndent(2))
	assert.Equal(t, "  <root>\n   <inner />\n  </root>", root.StringLevel(2, 1))
}

func TestChainingReturnsReceiver(t *testing.T) {
	n := New("g")
	assert.Same(t, n, n.Attr("id", "x"))
	assert.Same(t, n, n.Add(New("line")))
	assert.Same(t, n, n.Text("label"))
}

func TestInlineText(t *testing.T) {
	n := New("text").AttrNum("x", 12.5).AttrNum("y", 7).Text("42")
	assert.Equal(t, `<text x="12.5" y="7">42</text>`, n.String())
}

func TestEscaping(t *testing.T) {
	n := New("text").Attr("id", `a<b&"c"`).Text("1 < 2 & 3")
	assert.Equal(t, `<text id="a&lt;b&amp;&quot;c&quot;">1 &lt; 2 &amp; 3</text>`, n.String())
}

func TestNumericAttributes(t *testing.T) {
	tests := []struct {
		name string
		set  func(n *Node) *Node
		want string
	}{
		{"trimmed float", func(n *Node) *Node { return n.AttrNum("x", 12.3456) }, `<p x="12.3456" />`},
		{"integral float", func(n *Node) *Node { return n.AttrNum("x", 4) }, `<p x="4" />`},
		{"negative", func(n *Node) *Node { return n.AttrNum("x", -0.5) }, `<p x="-0.5" />`},
		{"int", func(n *Node) *Node { return n.AttrInt("x", 9) }, `<p x="9" />`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set(New("p")).String())
		})
	}
}

func TestDocumentScaffold(t *testing.T) {
	doc := NewDocument(1920, 1080)
	doc.AddLayer("session_1")
	doc.Layer.Add(New("g").Attr("id", "face_edges.Cube"))

	got := doc.String()
	assert.True(t, strings.HasPrefix(got,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:xlink="http://www.w3.org/1999/xlink" width="1920px" height="1080px">`))
	assert.Contains(t, got, "\n <g inkscape:groupmode=\"layer\" id=\"session_1\">")
	assert.Contains(t, got, "\n  <g id=\"face_edges.Cube\" />")
	assert.True(t, strings.HasSuffix(got, "</svg>"))
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewDocument(8, 8)
	doc.AddLayer("l")

	var b strings.Builder
	n, err := doc.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), n)
	assert.True(t, strings.HasSuffix(b.String(), "</svg>\n"))
}
