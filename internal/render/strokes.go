// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// strokeGroup draws the extra stroke pass over the mesh edges that
// survive the visibility, sharpness and length filters. With the
// boundary filter on, open-mesh boundary edges are taken regardless of
// which vertices survived occlusion.
func (fr *frame) strokeGroup(oc *objCtx) *svg.Node {
	st := fr.st
	g := svg.New("g").Attr("id", "bordes."+oc.name).
		Attr("stroke", paint.RGBString(st.Palette.Strokes.Color())).
		Attr("stroke-linecap", "round").
		Attr("fill", "none")

	minAngle := float64(math32.DegToRad(float32(st.StrokeAngle)))
	wid := svg.Ftoa(roundTo(st.StrokeWidth, 2))

	for _, e := range oc.mesh.Edges() {
		vis := oc.fp.alive[e.V[0]] && oc.fp.alive[e.V[1]]
		if st.BoundaryOnly {
			vis = e.Boundary()
		}
		if !vis {
			continue
		}
		if float64(oc.mesh.EdgeAngle(e, math32.Pi/2)) <= minAngle {
			continue
		}
		p1, ok1 := fr.pg.Point(oc.mesh.Verts[e.V[1]])
		p2, ok2 := fr.pg.Point(oc.mesh.Verts[e.V[0]])
		if !ok1 || !ok2 {
			continue
		}
		delta := p1.Sub(p2)
		le := delta.Length() * st.Scale
		if le <= st.MinLength {
			continue
		}

		v1, v2 := p1, p2
		switch st.Stroke {
		case style.StrokeExtend:
			if st.ExtendFactor != 0 {
				v1 = v1.Add(delta.Scale(st.ExtendFactor))
				v2 = v2.Sub(delta.Scale(st.ExtendFactor))
			}
			if st.ExtendNoise != 0 {
				v1 = v1.Add(delta.Scale(fr.rnd.Noise(0, st.ExtendNoise)))
				v2 = v2.Sub(delta.Scale(fr.rnd.Noise(0, st.ExtendNoise)))
			}
			g.Add(svg.New("line").
				Attr("stroke-width", wid).
				AttrNum("x1", roundTo(v1.X, fr.pg.prec)).AttrNum("y1", roundTo(v1.Y, fr.pg.prec)).
				AttrNum("x2", roundTo(v2.X, fr.pg.prec)).AttrNum("y2", roundTo(v2.Y, fr.pg.prec)))

		case style.StrokeCurved:
			mid := v1.Sub(delta.Scale(0.5)).Add(Point{
				X: fr.rnd.Noise(0, le*st.CurveNoise),
				Y: fr.rnd.Noise(0, le*st.CurveNoise),
			})
			g.Add(svg.New("path").
				Attr("stroke-width", wid).
				Attr("d", fmt.Sprintf("M %s %s Q %s,%s %s,%s",
					svg.Ftoa(roundTo(v1.X, fr.pg.prec)), svg.Ftoa(roundTo(v1.Y, fr.pg.prec)),
					svg.Ftoa(roundTo(mid.X, fr.pg.prec)), svg.Ftoa(roundTo(mid.Y, fr.pg.prec)),
					svg.Ftoa(roundTo(v2.X, fr.pg.prec)), svg.Ftoa(roundTo(v2.Y, fr.pg.prec)))))

		case style.StrokeBrush:
			w := st.StrokeWidth + le/25
			v1 = v1.Sub(delta.Scale(w / 250))
			v2 = v2.Add(delta.Scale(w / 250))
			mid := v1.Sub(delta.Scale(0.5))
			c1 := mid.Add(Point{X: fr.rnd.Noise(0, w), Y: fr.rnd.Noise(0, w)})
			c2 := mid.Add(Point{X: fr.rnd.Noise(0, w), Y: fr.rnd.Noise(0, w)})
			a, b := svg.Ftoa(roundTo(v1.X, fr.pg.prec)), svg.Ftoa(roundTo(v1.Y, fr.pg.prec))
			c, d := svg.Ftoa(roundTo(v2.X, fr.pg.prec)), svg.Ftoa(roundTo(v2.Y, fr.pg.prec))
			g.Add(svg.New("path").
				Attr("fill", paint.RGBString(st.Palette.Strokes.Color())).
				Attr("d", fmt.Sprintf("M %s,%s Q %s,%s %s,%s Q %s,%s %s,%s",
					a, b,
					svg.Ftoa(roundTo(c1.X, fr.pg.prec)), svg.Ftoa(roundTo(c1.Y, fr.pg.prec)),
					c, d,
					svg.Ftoa(roundTo(c2.X, fr.pg.prec)), svg.Ftoa(roundTo(c2.Y, fr.pg.prec)),
					a, b)))

		case style.StrokeContour:
			sum := vertexFacing(oc.mesh, fr.cam, e.V[0]) + vertexFacing(oc.mesh, fr.cam, e.V[1])
			weight := 10 - roundTo(math.Abs(sum*5), fr.pg.prec)
			if weight <= st.StrokeContrast*9 {
				continue
			}
			g.Add(svg.New("line").
				Attr("stroke-width", svg.Ftoa(roundTo(weight*st.StrokeWidth/5, 2))).
				AttrNum("x1", roundTo(v1.X, fr.pg.prec)).AttrNum("y1", roundTo(v1.Y, fr.pg.prec)).
				AttrNum("x2", roundTo(v2.X, fr.pg.prec)).AttrNum("y2", roundTo(v2.Y, fr.pg.prec)))
		}
		fr.stats.Strokes++
	}
	return g
}
