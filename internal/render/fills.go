// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// faceGroup emits the fill-and-edge group for the object's admitted
// faces, far to near. It returns nil when the combination of color,
// shade and edge modes draws nothing.
func (fr *frame) faceGroup(oc *objCtx) *svg.Node {
	st := fr.st
	fp := oc.fp
	if len(fp.order) == 0 {
		return nil
	}
	if st.Color == style.ColorNone && st.Edge == style.EdgeNone && st.Shade != style.ShadeNone {
		return nil
	}

	g := svg.New("g").Attr("id", "face_edges."+oc.name)
	if st.Edge != style.EdgeNone && st.EdgeWidth != 0 {
		g.Attr("stroke-width", svg.Ftoa(st.EdgeWidth)+"px").
			Attr("stroke-linejoin", string(st.EdgeJoin)).
			Attr("stroke-linecap", "round")
	}
	switch st.Edge {
	case style.EdgeLinear:
		g.Attr("stroke", paint.RGBString(st.Palette.Edges.Color()))
	case style.EdgeDashed:
		g.Attr("stroke", paint.RGBString(st.Palette.Edges.Color())).
			Attr("stroke-dasharray", svg.Ftoa(1+3*st.EdgeWidth)+","+svg.Ftoa(1+1.5*st.EdgeWidth))
	}

	// object-wide base colors draw their randomness before the face loop
	var colObj paint.Color
	switch st.Color {
	case style.ColorObject:
		colObj = paint.Jitter(st.Palette.Objects.Color(), st.ColorNoise, fr.rnd)
	case style.ColorObjectPalette:
		slots := st.Palette.Slots()
		colObj = slots[fr.rnd.Intn(len(slots))].Color()
	}

	needRamp := st.Shade == style.ShadeDepth || st.Effect == style.EffectExplode
	total := len(oc.mesh.Faces)

	for i, f := range fp.order {
		inf := fp.info[f]
		dot := math.Abs(inf.dot)
		var ramp float64
		if needRamp {
			ramp = fp.depthRamp(i)
		}

		var col paint.Color
		fill := ""
		switch st.Color {
		case style.ColorObject, style.ColorObjectPalette:
			col = colObj
		case style.ColorFaces:
			col = paint.Jitter(st.Palette.Faces.Color(), 0.01+st.ColorNoise/2, fr.rnd)
		case style.ColorFacePalette:
			slots := st.Palette.Slots()
			col = slots[fr.rnd.Intn(len(slots))].Color()
		case style.ColorMaterial:
			if mc, ok := oc.obj.MaterialColor(oc.mesh.Faces[f].MatIndex); ok {
				col = paint.Jitter(mc, st.ColorNoise, fr.rnd)
			} else {
				col = st.Palette.Objects.Color()
			}
		case style.ColorIndices:
			col = paint.IndexColor(f, total)
		case style.ColorPattern:
			n := int(5.25*dot - 0.5)
			if n > 4 {
				fill = fr.fondo
			} else {
				fill = "url(#" + fr.patID + strconv.Itoa(n) + ")"
			}
		}

		shaded := col
		switch st.Shade {
		case style.ShadeBackLight:
			shaded = paint.ShadeBackLight(col, dot)
		case style.ShadeFrontLight:
			shaded = paint.ShadeFrontLight(col, dot)
		case style.ShadeIndices:
			shaded = paint.ShadeIndices(col, roundTo(float64(f)/float64(total), 4))
		case style.ShadeColorRamp:
			shaded = paint.ShadeColorRamp(col, dot)
		case style.ShadeSoft:
			shaded = paint.ShadeSoft(col, dot)
		case style.ShadePosterize:
			shaded = paint.ShadePosterize(col, dot, st.PosterizeSteps)
		case style.ShadeDepth:
			shaded = paint.ShadeDepth(col, ramp)
		case style.ShadeBackfaces:
			shaded = paint.ShadeBackfaces(col, inf.dot < 0)
		}

		if st.Color != style.ColorPattern {
			fill = paint.RGBString(shaded)
		}
		if st.Color == style.ColorNone {
			fill = "none"
		}
		stroke := ""
		if st.Color != style.ColorNone && st.Edge == style.EdgeMatchFill {
			stroke = fill
		}

		switch st.Effect {
		case style.EffectSquares, style.EffectCircles:
			if inf.depth == 0 {
				continue
			}
			l := math.Sqrt(float64(oc.mesh.FaceArea(f))) * dot * 100 * st.ShapeSize / inf.depth * st.Scale
			if fr.cam.Ortho {
				l /= 26
			}
			if l <= 1 {
				continue
			}
			var shape *svg.Node
			if st.Effect == style.EffectCircles {
				shape = svg.New("circle").
					AttrNum("cx", inf.page.X).AttrNum("cy", inf.page.Y).AttrNum("r", l)
			} else {
				shape = svg.New("rect").
					AttrNum("x", inf.page.X-l).AttrNum("y", inf.page.Y-l).
					AttrNum("width", l*2).AttrNum("height", l*2)
			}
			if stroke != "" {
				shape.Attr("stroke", stroke)
			}
			shape.Attr("fill", fill)
			fr.opacity(shape)
			g.Add(shape)

		default:
			poly := svg.New("polygon")
			if stroke != "" {
				poly.Attr("stroke", stroke)
			}
			poly.Attr("fill", fill)
			var pts strings.Builder
			for _, v := range oc.mesh.Faces[f].Verts {
				if st.Effect == style.EffectExplode {
					m := math32.Vec3(
						float32(fr.rnd.Noise(0, st.DistortFactor)),
						float32(fr.rnd.Noise(0, st.DistortFactor)),
						float32(fr.rnd.Noise(0, st.DistortFactor)))
					p, ok := fr.pg.Point(oc.mesh.Verts[v].Add(m.DivScalar(50)))
					if !ok {
						continue
					}
					pts.WriteString(p.Pair())
					pts.WriteByte(' ')
				} else {
					pts.WriteString(fp.points[v].Pair())
					pts.WriteByte(' ')
				}
			}
			poly.Attr("points", strings.TrimRight(pts.String(), " "))
			fr.opacity(poly)
			if st.Effect == style.EffectExplode {
				ang := ramp * fr.rnd.Noise(0, st.ExplodeFactor)
				poly.Attr("transform", fmt.Sprintf("rotate(%s,%s)", svg.Ftoa(ang), inf.page.Pair()))
			}
			g.Add(poly)
		}
		fr.stats.Faces++
	}
	return g
}
