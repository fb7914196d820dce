// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// sessionDefs emits the reusable definitions a session draws through:
// the editable cross symbol vertex clones reference, and the hatch
// pattern set for pattern fills. Ids carry a random suffix so appended
// sessions do not collide.
func (fr *frame) sessionDefs(layer *svg.Node) {
	st := fr.st

	if st.Vertex != style.VertexNone && st.CloneMarks {
		fr.clone = "X_" + strconv.Itoa(fr.rnd.Intn(999))
		sym := svg.New("g").Attr("id", fr.clone).Attr("stroke-width", "2")
		fr.opacity(sym)
		sym.Attr("stroke", paint.RGBString(st.Palette.Vertices.Color()))
		sym.Add(
			svg.New("line").Attr("x1", "-10").Attr("y1", "0").Attr("x2", "10").Attr("y2", "0"),
			svg.New("line").Attr("x1", "0").Attr("y1", "10").Attr("x2", "0").Attr("y2", "-10"),
		)
		layer.Add(sym)
	}

	if st.Color == style.ColorPattern {
		ran := strconv.Itoa(fr.rnd.Intn(1000))
		fr.patID = "pat_" + ran + "_"
		if st.PatternTransparent {
			fr.fondo = "none"
		} else {
			fr.fondo = paint.RGBString(st.Palette.Faces.Color())
		}
		stripe := svg.New("g").Attr("id", "stripe"+ran).Add(
			svg.New("rect").Attr("fill", fr.fondo).
				Attr("x", "0").Attr("y", "0").Attr("height", "10").Attr("width", "1"),
			svg.New("rect").Attr("fill", paint.RGBString(st.Palette.Edges.Color())).
				Attr("x", "0").Attr("y", "0").Attr("height", "2").Attr("width", "1"),
		)
		layer.Add(stripe)

		defs := svg.New("defs")
		for i, h := range []float64{2.5, 3.5, 5, 7, 10} {
			defs.Add(svg.New("pattern").
				Attr("id", fr.patID+strconv.Itoa(i)).
				Attr("patternUnits", "userSpaceOnUse").
				Attr("width", "1").
				AttrNum("height", h).
				Attr("patternTransform", fmt.Sprintf("rotate(%d) scale(%s)",
					fr.rnd.Intn(90)-45, svg.Ftoa(st.PatternScale))).
				Add(svg.New("use").Attr("xlink:href", "#stripe"+ran)))
		}
		layer.Add(defs)
	}
}
