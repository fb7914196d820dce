// SPDX-License-Identifier: MIT

package svg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestGoldenDocument builds a document shaped like a real export session
// (hatch defs, pattern-filled faces, a stroke group, an escaped label) and
// pins the emitted bytes against testdata/document.golden.svg.
func TestGoldenDocument(t *testing.T) {
	doc := NewDocument(320, 240)
	layer := doc.AddLayer("Mon_Jun_09_14-07-31_2025")

	layer.Add(New("g").Attr("id", "stripe371").Add(
		New("rect").Attr("fill", "rgb(235,235,235)").
			Attr("x", "0").Attr("y", "0").Attr("height", "10").Attr("width", "1"),
		New("rect").Attr("fill", "rgb(0,0,0)").
			Attr("x", "0").Attr("y", "0").Attr("height", "2").Attr("width", "1"),
	))
	layer.Add(New("defs").Add(New("pattern").
		Attr("id", "pat_371_0").
		Attr("patternUnits", "userSpaceOnUse").
		Attr("width", "1").
		AttrNum("height", 2.5).
		Attr("patternTransform", "rotate(-12) scale(1.5)").
		Add(New("use").Attr("xlink:href", "#stripe371"))))

	obj := New("g").Attr("id", "R_D_quad")
	obj.Add(Comment("start R&D quad"))
	obj.Add(New("g").Attr("id", "face_edges.R_D_quad").
		Attr("stroke-width", "1px").
		Attr("stroke-linejoin", "round").
		Attr("stroke-linecap", "round").
		Attr("stroke", "rgb(0,0,0)").
		Add(New("polygon").
			Attr("fill", "url(#pat_371_0)").
			Attr("points", "20,20 300,24 160,220").
			AttrNum("opacity", 0.85)))
	obj.Add(New("g").Attr("id", "bordes.R_D_quad").
		Attr("stroke", "rgb(0,0,0)").
		Attr("stroke-linecap", "round").
		Attr("fill", "none").
		Add(New("line").
			Attr("stroke-width", "1.5").
			AttrNum("x1", 20).AttrNum("y1", 20).
			AttrNum("x2", 300).AttrNum("y2", 24)))
	obj.Add(New("text").
		Attr("font-size", "10").
		Attr("text-anchor", "middle").
		AttrNum("x", 160).AttrNum("y", 230).
		Text("R&D quad"))
	layer.Add(obj, Comment("end R&D quad"))

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("write document: %v", err)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "document.golden.svg"))
	if err != nil {
		t.Fatalf("read golden failed: %v", err)
	}
	if diff := cmp.Diff(string(want), buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
