// SPDX-License-Identifier: MIT

package scene

import (
	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
)

// Material is a named surface color slot. Faces reference slots by
// index through Face.MatIndex.
type Material struct {
	Name  string
	Color paint.Color
}

// Object places mesh or curve data in the world. Exactly one of Mesh
// and Curve is set. Matrix is the full local-to-world transform;
// Parent carries no transform inheritance and exists only so relation
// lines can be drawn between origins.
type Object struct {
	Name      string
	Mesh      *Mesh
	Curve     *Curve
	Matrix    math32.Matrix4
	Parent    *Object
	Materials []Material
	Selected  bool
	Hide      bool
}

// NewObject returns a selected mesh object with an identity transform.
func NewObject(name string, m *Mesh) *Object {
	o := &Object{Name: name, Mesh: m, Selected: true}
	o.Matrix.SetIdentity()
	return o
}

// NewCurveObject returns a selected curve object with an identity
// transform.
func NewCurveObject(name string, c *Curve) *Object {
	o := &Object{Name: name, Curve: c, Selected: true}
	o.Matrix.SetIdentity()
	return o
}

// SetTransform rebuilds the object matrix from a location, XYZ euler
// rotation in degrees, and per-axis scale.
func (o *Object) SetTransform(pos, eulerDeg, scale math32.Vector3) {
	var q math32.Quat
	q.SetFromEuler(eulerDeg.MulScalar(math32.DegToRadFactor))
	o.Matrix.SetTransform(pos, q, scale)
}

// Location returns the world position of the object origin.
func (o *Object) Location() math32.Vector3 {
	return math32.Vec3(o.Matrix[12], o.Matrix[13], o.Matrix[14])
}

// ZAxis returns the world direction of the object's local +Z axis.
// A flat plane object oriented by hand this way doubles as a cutting
// plane definition: origin plus ZAxis.
func (o *Object) ZAxis() math32.Vector3 {
	v := math32.Vec3(o.Matrix[8], o.Matrix[9], o.Matrix[10])
	return v.Normal()
}

// IsLine reports whether the object renders as a stroked polyline
// rather than as faces, which is the case for all curve objects.
func (o *Object) IsLine() bool { return o.Curve != nil }

// WorldMesh returns the object's geometry in world space. Mesh objects
// transform their polygon mesh; curve objects evaluate to a vertex run
// with no faces.
func (o *Object) WorldMesh() *Mesh {
	if o.Mesh != nil {
		return o.Mesh.Transformed(&o.Matrix)
	}
	if o.Curve != nil {
		pts := o.Curve.Transformed(&o.Matrix).Polyline()
		return NewMesh(pts, nil)
	}
	return NewMesh(nil, nil)
}

// WorldCurve returns the curve data in world space, or nil for mesh
// objects.
func (o *Object) WorldCurve() *Curve {
	if o.Curve == nil {
		return nil
	}
	return o.Curve.Transformed(&o.Matrix)
}

// Dimensions returns the world axis-aligned bounding box size of the
// object's geometry, zero when there is none.
func (o *Object) Dimensions() math32.Vector3 {
	verts := o.WorldMesh().Verts
	if len(verts) == 0 {
		return math32.Vector3{}
	}
	var bb math32.Box3
	bb.SetEmpty()
	bb.ExpandByPoints(verts)
	return bb.Size()
}

// MaterialColor returns the diffuse color of the given slot and true,
// or false when the slot does not exist.
func (o *Object) MaterialColor(slot int) (paint.Color, bool) {
	if slot < 0 || slot >= len(o.Materials) {
		return paint.Color{}, false
	}
	return o.Materials[slot].Color, true
}
