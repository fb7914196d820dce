// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// originGroup marks every exported object's origin with two concentric
// circles sized by the object's dimensions, or with its name as
// slightly rotated text. Bigger objects rotate more.
func (fr *frame) originGroup(objs []*scene.Object, oo []Point) *svg.Node {
	st := fr.st
	g := svg.New("g").Attr("id", "object.origin").
		Attr("fill", paint.RGBString(st.Palette.Paths.Color()))
	for i, o := range objs {
		dims := o.Dimensions()
		flags := 0
		sum := 0.0
		for ax, on := range []bool{st.SizeX, st.SizeY, st.SizeZ} {
			if on {
				flags++
				sum += math.Abs(comp(dims, ax))
			}
		}
		s := math.Max(0.5, sum)
		if flags > 0 {
			s /= float64(flags)
		} else {
			s = 1
		}
		r := roundTo(st.Scale*s*st.OriginDiameter, st.Precision)
		c := oo[i]
		if st.ObjectNames {
			t := svg.New("text").
				Attr("font-size", svg.Ftoa(roundTo(float64(st.FontSize)*r/10, 1))).
				Attr("text-anchor", "middle")
			fr.opacity(t)
			t.Attr("transform", fmt.Sprintf("rotate(%d,%s)",
				int(math.Round(fr.rnd.Noise(0, s*2))), c.Pair())).
				AttrNum("x", c.X).AttrNum("y", c.Y).
				Text(o.Name)
			g.Add(t)
		} else {
			outer := svg.New("circle").AttrNum("cx", c.X).AttrNum("cy", c.Y)
			fr.opacity(outer)
			outer.AttrNum("r", r)
			inner := svg.New("circle").
				Attr("fill", paint.RGBString(paint.Jitter(st.Palette.Faces.Color(), paint.DefaultJitter, fr.rnd))).
				AttrNum("cx", c.X).AttrNum("cy", c.Y)
			fr.opacity(inner)
			inner.AttrNum("r", r/2)
			g.Add(outer, inner)
		}
	}
	return g
}

// unionPath threads a single path through every exported object
// origin, in draw order. Non-linear path kinds get a noisy control
// point between consecutive origins, scaled by their page distance.
func (fr *frame) unionPath(oo []Point) *svg.Node {
	if len(oo) < 2 {
		return nil
	}
	st := fr.st
	var d strings.Builder
	d.WriteString("M " + oo[0].Pair() + " " + string(st.Path) + " ")
	for i := 0; i < len(oo)-1; i++ {
		if i > 0 {
			d.WriteString(oo[i].Pair() + " ")
		}
		if st.Path != style.PathLinear {
			delta := oo[i+1].Sub(oo[i])
			le := math.Round(delta.Length()) * 5
			control := oo[i].Add(delta.Scale(0.5)).Add(Point{
				X: fr.rnd.Noise(0, le*st.CurveNoise),
				Y: fr.rnd.Noise(0, le*st.CurveNoise),
			})
			d.WriteString(control.Pair() + " ")
		}
	}
	d.WriteString(oo[len(oo)-1].Pair())
	return svg.New("path").
		Attr("id", "object.union").
		Attr("d", d.String()).
		Attr("stroke", paint.RGBString(st.Palette.Paths.Color())).
		Attr("fill", "none")
}

// relationGroup draws a line from each exported object's parent origin
// down to the object itself. Parents that cannot be projected are
// skipped.
func (fr *frame) relationGroup(objs []*scene.Object, oo []Point) *svg.Node {
	g := svg.New("g").Attr("id", "relaciones").
		Attr("stroke", paint.RGBString(fr.st.Palette.Paths.Color())).
		Attr("fill", "none")
	for i, o := range objs {
		if o.Parent == nil {
			continue
		}
		pp, ok := fr.pg.Point(o.Parent.Location())
		if !ok {
			continue
		}
		g.Add(svg.New("path").
			Attr("id", "rel."+safeID(o.Name)+"."+safeID(o.Parent.Name)).
			Attr("d", "M "+pp.Pair()+" L "+oo[i].Pair()))
	}
	return g
}
