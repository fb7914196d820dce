// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// Point is a page-space coordinate pair in document pixels, y growing
// downward.
type Point struct {
	X, Y float64
}

// Pair renders the point in the "x,y" form path data and polygon point
// lists use.
func (p Point) Pair() string {
	return svg.Ftoa(p.X) + "," + svg.Ftoa(p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Length returns the euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// page maps projected region coordinates onto the document: user scale
// and offsets plus the flip from the viewport's bottom-left origin to
// the page's top-left one.
type page struct {
	cam    *scene.Camera
	scale  float64
	offX   float64
	offY   float64
	height float64
	prec   int
}

// newPage derives the page mapping from the camera and settings. In
// orthographic views with the fixed scale enabled the mapping is
// recalibrated so one world unit spans 100 page pixels and the world
// origin keeps its horizontal position, whatever the region size.
func newPage(cam *scene.Camera, st *style.Settings) *page {
	pg := &page{
		cam:    cam,
		scale:  st.Scale,
		offX:   float64(st.OffsetX),
		offY:   float64(st.OffsetY),
		height: float64(cam.Height),
		prec:   st.Precision,
	}
	if cam.Ortho && st.FixedScale {
		origin, ok0 := cam.Project(math32.Vector3{})
		unit, ok1 := cam.Project(cam.Right())
		if span := unit.Sub(origin).Length(); ok0 && ok1 && span > 1e-6 {
			pg.scale = 100 / float64(span) * st.Scale
			pg.offX += -float64(origin.X) * pg.scale
			pg.offY += -float64(origin.Y) * pg.scale
		}
	}
	return pg
}

// Point projects a world position into page space. ok is false when
// the camera cannot project the position.
func (pg *page) Point(w math32.Vector3) (Point, bool) {
	pt, ok := pg.cam.Project(w)
	if !ok {
		return Point{}, false
	}
	x := roundTo(float64(pt.X)*pg.scale+pg.offX, pg.prec)
	y := roundTo((pg.height-float64(pt.Y))*pg.scale+pg.offY, pg.prec)
	return Point{X: x, Y: y}, true
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// comp picks a vector component by axis index.
func comp(v math32.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return float64(v.X)
	case 1:
		return float64(v.Y)
	}
	return float64(v.Z)
}
