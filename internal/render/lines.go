// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// curvePath draws a curve object as one continuous stroked polyline
// over its sampled points. It returns nil when fewer than two points
// project.
func (fr *frame) curvePath(oc *objCtx) *svg.Node {
	pts := make([]Point, 0, len(oc.mesh.Verts))
	for _, v := range oc.mesh.Verts {
		if p, ok := fr.pg.Point(v); ok {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	var d strings.Builder
	d.WriteString("M " + pts[0].Pair() + " L")
	for _, p := range pts {
		d.WriteString(" " + p.Pair())
	}
	return svg.New("path").
		Attr("id", "curva_3D."+oc.name).
		Attr("d", d.String()).
		Attr("stroke", paint.RGBString(fr.st.Palette.Paths.Color())).
		Attr("stroke-width", svg.Ftoa(roundTo(fr.st.StrokeWidth, 2))).
		Attr("stroke-linecap", "round").
		Attr("fill", "none")
}

// bezierOverlay projects the control cage of every bezier spline
// directly, keeping the strands as true cubic segments an editor can
// pick up. Splines with an unprojectable control point are skipped.
func (fr *frame) bezierOverlay(cur *scene.Curve) []*svg.Node {
	var out []*svg.Node
	for i := range cur.Splines {
		sp := &cur.Splines[i]
		if sp.Kind != scene.SplineBezier || len(sp.Bezier) < 2 {
			continue
		}
		d, ok := fr.bezierData(sp)
		if !ok {
			continue
		}
		out = append(out, svg.New("path").
			Attr("stroke", "black").
			Attr("opacity", ".5").
			Attr("fill", "none").
			Attr("d", d))
	}
	return out
}

func (fr *frame) bezierData(sp *scene.Spline) (string, bool) {
	project := func(w math32.Vector3) (Point, bool) { return fr.pg.Point(w) }
	first, ok := project(sp.Bezier[0].Co)
	if !ok {
		return "", false
	}
	var d strings.Builder
	d.WriteString("M" + first.Pair())
	for i := 1; i < len(sp.Bezier); i++ {
		h1, ok1 := project(sp.Bezier[i-1].HandleRight)
		h2, ok2 := project(sp.Bezier[i].HandleLeft)
		p, ok3 := project(sp.Bezier[i].Co)
		if !ok1 || !ok2 || !ok3 {
			return "", false
		}
		d.WriteString(" C" + h1.Pair() + " " + h2.Pair() + " " + p.Pair())
	}
	if sp.Cyclic {
		last := sp.Bezier[len(sp.Bezier)-1]
		h1, ok1 := project(last.HandleRight)
		h2, ok2 := project(sp.Bezier[0].HandleLeft)
		if !ok1 || !ok2 {
			return "", false
		}
		d.WriteString(" C" + h1.Pair() + " " + h2.Pair() + " " + first.Pair() + "z")
	}
	return d.String(), true
}
