// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// markGroup draws the admitted vertices as circles or clone
// references, sized by the configured mode. Marks below one pixel are
// dropped.
func (fr *frame) markGroup(oc *objCtx) *svg.Node {
	st := fr.st
	g := svg.New("g").Attr("id", "vertices."+oc.name).
		Attr("fill", paint.RGBString(st.Palette.Vertices.Color()))
	axis := st.VertexAxis.Index()
	for _, v := range oc.fp.verts {
		if !oc.fp.alive[v] {
			continue
		}
		p, ok := fr.pg.Point(oc.mesh.Verts[v])
		if !ok {
			continue
		}
		var r float64
		switch st.Vertex {
		case style.VertexConstant:
			r = roundTo(st.Scale*st.VertexDiameter, st.Precision)
		case style.VertexNormalIn:
			dot := math.Abs(vertexFacing(oc.mesh, fr.cam, v))
			r = roundTo(st.Scale*st.VertexDiameter*dot, st.Precision)
		case style.VertexNormalOut:
			dot := math.Abs(vertexFacing(oc.mesh, fr.cam, v))
			r = roundTo(st.Scale*st.VertexDiameter*(1-dot), st.Precision)
		default:
			z := comp(oc.mesh.Verts[v], axis)
			if st.VertexSpace == style.SpaceLocal {
				z -= comp(oc.obj.Location(), axis)
			}
			r = roundTo(st.Scale*math.Abs(z)*st.VertexDiameter, st.Precision)
		}
		if r < 1 {
			continue
		}
		if st.CloneMarks {
			s := svg.Ftoa(roundTo(r/10, st.Precision))
			g.Add(svg.New("use").
				Attr("xlink:href", "#"+fr.clone).
				Attr("transform", fmt.Sprintf("translate(%s) scale(%s,%s) rotate(%d)",
					p.Pair(), s, s, int(math.Round(fr.rnd.Float64()*360)))))
		} else {
			c := svg.New("circle").
				AttrNum("cx", p.X).AttrNum("cy", p.Y).
				AttrNum("r", r/2)
			fr.opacity(c)
			g.Add(c)
		}
		fr.stats.Marks++
	}
	return g
}

// stepWalk visits the object's vertices from a random offset with the
// configured stride, wrapping past the end, and hands every projected
// stop to emit. Connect paths and numbering share the walk.
func (fr *frame) stepWalk(oc *objCtx, offset, extra int, emit func(counter int, p Point)) {
	lev := len(oc.mesh.Verts)
	step := fr.st.Step + extra
	off := offset
	for i := 1; i <= lev; i += step {
		if i+off >= lev {
			off -= lev
		}
		if p, ok := fr.pg.Point(oc.mesh.Verts[i+off]); ok {
			emit(i, p)
		}
	}
}

// connectPath threads one closed path through the sampled vertices.
// It returns nil when the walk's starting vertex cannot be projected.
func (fr *frame) connectPath(oc *objCtx, offset, extra int) *svg.Node {
	start, ok := fr.pg.Point(oc.mesh.Verts[offset])
	if !ok {
		return nil
	}
	var d strings.Builder
	d.WriteString("M " + start.Pair() + " " + string(fr.st.Path) + " ")
	fr.stepWalk(oc, offset, extra, func(_ int, p Point) {
		d.WriteString(p.Pair() + " ")
	})
	d.WriteString("z")
	return svg.New("path").
		Attr("id", "path."+oc.name).
		Attr("d", d.String()).
		Attr("stroke", paint.RGBString(fr.st.Palette.Paths.Color())).
		Attr("fill", "none")
}

// numberGroup labels the sampled vertices with their walk counter.
func (fr *frame) numberGroup(oc *objCtx, offset, extra int) *svg.Node {
	if _, ok := fr.pg.Point(oc.mesh.Verts[offset]); !ok {
		return nil
	}
	g := svg.New("g").Attr("id", "indices."+oc.name).
		AttrInt("font-size", fr.st.FontSize).
		Attr("text-anchor", "middle")
	fr.stepWalk(oc, offset, extra, func(counter int, p Point) {
		g.Add(svg.New("text").
			AttrNum("x", p.X).AttrNum("y", p.Y).
			Text(strconv.Itoa(counter)))
	})
	return g
}
