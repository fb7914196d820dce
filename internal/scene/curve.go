// SPDX-License-Identifier: MIT

package scene

import (
	"cogentcore.org/core/math32"
)

// SplineKind selects how a spline's control data is interpreted.
type SplineKind int

const (
	// SplinePoly connects control points with straight segments.
	SplinePoly SplineKind = iota
	// SplineBezier runs cubic segments between knots using their
	// left/right handles.
	SplineBezier
)

// DefaultCurveResolution is the number of samples per bezier segment
// when a spline does not set its own.
const DefaultCurveResolution = 12

// BezierPoint is a bezier knot with its two handles in the same space
// as the knot itself.
type BezierPoint struct {
	Co          math32.Vector3
	HandleLeft  math32.Vector3
	HandleRight math32.Vector3
}

// Spline is one strand of a curve, either a polyline or a bezier run.
type Spline struct {
	Kind       SplineKind
	Points     []math32.Vector3 // SplinePoly control points
	Bezier     []BezierPoint    // SplineBezier knots
	Cyclic     bool
	Resolution int // samples per bezier segment, DefaultCurveResolution if 0
}

// Curve is a set of splines evaluated together, the line-art analogue
// of a mesh.
type Curve struct {
	Splines []Spline
}

func bezierPoint(p0, h0, h1, p1 math32.Vector3, t float32) math32.Vector3 {
	u := 1 - t
	a := p0.MulScalar(u * u * u)
	b := h0.MulScalar(3 * u * u * t)
	c := h1.MulScalar(3 * u * t * t)
	d := p1.MulScalar(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// Sample returns the spline evaluated as a vertex run. Polylines pass
// their points through. Bezier splines emit Resolution points per
// segment; open splines append the final knot, cyclic splines sample
// the wrap-around segment instead so no point repeats.
func (s *Spline) Sample() []math32.Vector3 {
	switch s.Kind {
	case SplinePoly:
		out := make([]math32.Vector3, len(s.Points))
		copy(out, s.Points)
		return out
	case SplineBezier:
		n := len(s.Bezier)
		if n == 0 {
			return nil
		}
		if n == 1 {
			return []math32.Vector3{s.Bezier[0].Co}
		}
		res := s.Resolution
		if res <= 0 {
			res = DefaultCurveResolution
		}
		segs := n - 1
		if s.Cyclic {
			segs = n
		}
		out := make([]math32.Vector3, 0, segs*res+1)
		for i := 0; i < segs; i++ {
			a := s.Bezier[i]
			b := s.Bezier[(i+1)%n]
			for k := 0; k < res; k++ {
				t := float32(k) / float32(res)
				out = append(out, bezierPoint(a.Co, a.HandleRight, b.HandleLeft, b.Co, t))
			}
		}
		if !s.Cyclic {
			out = append(out, s.Bezier[n-1].Co)
		}
		return out
	}
	return nil
}

// HasBezier reports whether any spline is a bezier run.
func (c *Curve) HasBezier() bool {
	for _, s := range c.Splines {
		if s.Kind == SplineBezier {
			return true
		}
	}
	return false
}

// Polyline evaluates every spline and concatenates the results into a
// single vertex stream, the order mesh conversion would produce.
func (c *Curve) Polyline() []math32.Vector3 {
	var out []math32.Vector3
	for i := range c.Splines {
		out = append(out, c.Splines[i].Sample()...)
	}
	return out
}

// Transformed returns a copy of the curve with all points and handles
// run through the given matrix.
func (c *Curve) Transformed(mat *math32.Matrix4) *Curve {
	out := &Curve{Splines: make([]Spline, len(c.Splines))}
	for i, s := range c.Splines {
		ns := Spline{Kind: s.Kind, Cyclic: s.Cyclic, Resolution: s.Resolution}
		ns.Points = make([]math32.Vector3, len(s.Points))
		for j, p := range s.Points {
			ns.Points[j] = p.MulMatrix4(mat)
		}
		ns.Bezier = make([]BezierPoint, len(s.Bezier))
		for j, b := range s.Bezier {
			ns.Bezier[j] = BezierPoint{
				Co:          b.Co.MulMatrix4(mat),
				HandleLeft:  b.HandleLeft.MulMatrix4(mat),
				HandleRight: b.HandleRight.MulMatrix4(mat),
			}
		}
		out.Splines[i] = ns
	}
	return out
}
