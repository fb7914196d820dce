// SPDX-License-Identifier: MIT

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nutek/blender-export-svg/internal/paint"
)

func TestObjectTransform(t *testing.T) {
	o := NewObject("cube", NewCube(2))
	o.SetTransform(math32.Vec3(1, 2, 3), math32.Vector3{}, math32.Vec3(1, 1, 1))

	loc := o.Location()
	assert.InDelta(t, 1, float64(loc.X), 1e-6)
	assert.InDelta(t, 2, float64(loc.Y), 1e-6)
	assert.InDelta(t, 3, float64(loc.Z), 1e-6)

	w := o.WorldMesh()
	assert.InDelta(t, 1, float64(w.FaceCenter(0).X), 1e-5)
}

func TestObjectZAxis(t *testing.T) {
	o := NewObject("plane", NewPlane(1))
	assert.InDelta(t, 1, float64(o.ZAxis().Z), 1e-6)

	// +90 degrees around X carries local +Z onto -Y
	o.SetTransform(math32.Vector3{}, math32.Vec3(90, 0, 0), math32.Vec3(1, 1, 1))
	z := o.ZAxis()
	assert.InDelta(t, 0, float64(z.X), 1e-5)
	assert.InDelta(t, -1, float64(z.Y), 1e-5)
	assert.InDelta(t, 0, float64(z.Z), 1e-5)
}

func TestObjectDimensions(t *testing.T) {
	o := NewObject("cube", NewCube(2))
	o.SetTransform(math32.Vec3(5, 5, 5), math32.Vector3{}, math32.Vec3(2, 1, 3))
	dim := o.Dimensions()
	assert.InDelta(t, 4, float64(dim.X), 1e-4)
	assert.InDelta(t, 2, float64(dim.Y), 1e-4)
	assert.InDelta(t, 6, float64(dim.Z), 1e-4)
}

func TestCurveObjectWorldMesh(t *testing.T) {
	c := &Curve{Splines: []Spline{
		{Kind: SplinePoly, Points: []math32.Vector3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}},
	}}
	o := NewCurveObject("wire", c)
	o.SetTransform(math32.Vec3(0, 0, 1), math32.Vector3{}, math32.Vec3(1, 1, 1))

	assert.True(t, o.IsLine())
	m := o.WorldMesh()
	require.Len(t, m.Verts, 3)
	assert.Empty(t, m.Faces)
	assert.InDelta(t, 1, float64(m.Verts[0].Z), 1e-6)

	wc := o.WorldCurve()
	require.NotNil(t, wc)
	assert.InDelta(t, 1, float64(wc.Splines[0].Points[2].Z), 1e-6)
}

func TestMaterialColor(t *testing.T) {
	o := NewObject("cube", NewCube(1))
	o.Materials = []Material{
		{Name: "red", Color: paint.RGB(1, 0, 0)},
		{Name: "blue", Color: paint.RGB(0, 0, 1)},
	}

	c, ok := o.MaterialColor(1)
	require.True(t, ok)
	assert.Equal(t, paint.RGB(0, 0, 1), c)

	_, ok = o.MaterialColor(2)
	assert.False(t, ok)
	_, ok = o.MaterialColor(-1)
	assert.False(t, ok)
}

func TestSceneAddDedupesNames(t *testing.T) {
	s := New("test")
	s.Add(NewObject("cube", NewCube(1)))
	second := s.Add(NewObject("cube", NewCube(1)))
	third := s.Add(NewObject("cube", NewCube(1)))

	assert.Equal(t, "cube.001", second.Name)
	assert.Equal(t, "cube.002", third.Name)
	assert.Len(t, s.Objects, 3)
	assert.Same(t, second, s.Object("cube.001"))
	assert.Nil(t, s.Object("missing"))
}

func TestSceneSelected(t *testing.T) {
	s := New("test")
	a := s.Add(NewObject("a", NewCube(1)))
	b := s.Add(NewObject("b", NewCube(1)))
	c := s.Add(NewObject("c", NewCube(1)))
	b.Selected = false
	c.Hide = true

	sel := s.Selected()
	require.Len(t, sel, 1)
	assert.Same(t, a, sel[0])

	s.SelectAll()
	assert.True(t, b.Selected)
	assert.False(t, c.Selected && !c.Hide)
	assert.Len(t, s.Selected(), 2)
}
