// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/style"
)

func TestGatherFacesCube(t *testing.T) {
	cam := testCam(false)
	st := style.Defaults()
	pg := newPage(cam, &st)

	fp := gatherFaces(scene.NewCube(2), cam, pg, &st)
	require.Len(t, fp.order, 1, "only the side facing the camera survives")
	f := fp.order[0]
	assert.Equal(t, 2, f)
	assert.InDelta(t, -1, fp.info[f].dot, 1e-4)
	assert.InDelta(t, 9, fp.info[f].depth, 1e-4)
	assert.Equal(t, []int{0, 1, 4, 5}, fp.verts)
	for _, v := range fp.verts {
		assert.True(t, fp.alive[v])
		assert.Contains(t, fp.points, v)
	}

	t.Run("all sides without the facing filter", func(t *testing.T) {
		open := style.Defaults()
		open.FacingOnly = false
		fp := gatherFaces(scene.NewCube(2), cam, pg, &open)
		assert.Len(t, fp.order, 6)
		assert.Len(t, fp.verts, 8)
	})

	t.Run("area floor", func(t *testing.T) {
		small := style.Defaults()
		small.MinArea = 5
		fp := gatherFaces(scene.NewCube(2), cam, pg, &small)
		assert.Empty(t, fp.order)
		assert.Equal(t, 0.5, fp.rangeV, "empty pass keeps the ramp divisor safe")
	})

	t.Run("selected faces only", func(t *testing.T) {
		sel := style.Defaults()
		sel.SelectedOnly = true
		sel.FacingOnly = false
		m := scene.NewCube(2)
		m.Faces[1].Select = true
		fp := gatherFaces(m, cam, pg, &sel)
		require.Len(t, fp.order, 1)
		assert.Equal(t, 1, fp.order[0])
	})
}

func TestPainterOrder(t *testing.T) {
	cam := testCam(false)
	st := style.Defaults()
	pg := newPage(cam, &st)

	// two camera-facing quads, the second five units nearer
	m := scene.NewMesh(
		[]math32.Vector3{
			{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
			{-1, -5, -1}, {1, -5, -1}, {1, -5, 1}, {-1, -5, 1},
		},
		[]scene.Face{
			{Verts: []int{0, 1, 2, 3}},
			{Verts: []int{4, 5, 6, 7}},
		},
	)
	fp := gatherFaces(m, cam, pg, &st)
	require.Equal(t, []int{0, 1}, fp.order, "far face paints first")
	assert.InDelta(t, 10, fp.depth[0], 1e-4)
	assert.InDelta(t, 5, fp.depth[1], 1e-4)
	assert.InDelta(t, 0, fp.depthRamp(0), 1e-6)
	assert.InDelta(t, 1, fp.depthRamp(1), 1e-3)

	t.Run("equal depth breaks by face index", func(t *testing.T) {
		m := scene.NewMesh(
			[]math32.Vector3{
				{-3, 0, -1}, {-1, 0, -1}, {-1, 0, 1}, {-3, 0, 1},
				{1, 0, -1}, {3, 0, -1}, {3, 0, 1}, {1, 0, 1},
			},
			[]scene.Face{
				{Verts: []int{0, 1, 2, 3}},
				{Verts: []int{4, 5, 6, 7}},
			},
		)
		fp := gatherFaces(m, cam, pg, &st)
		require.Equal(t, []int{1, 0}, fp.order)
	})
}

func TestOcclusion(t *testing.T) {
	cam := testCam(false)
	st := style.Defaults()
	pg := newPage(cam, &st)

	// a large near quad fully covers the small one three units behind
	m := scene.NewMesh(
		[]math32.Vector3{
			{-4, 0, -4}, {4, 0, -4}, {4, 0, 4}, {-4, 0, 4},
			{-1, 3, -1}, {1, 3, -1}, {1, 3, 1}, {-1, 3, 1},
		},
		[]scene.Face{
			{Verts: []int{0, 1, 2, 3}},
			{Verts: []int{4, 5, 6, 7}},
		},
	)
	fp := gatherFaces(m, cam, pg, &st)
	require.Equal(t, []int{1, 0}, fp.order, "covered face is farther")

	fp.occlude(cam, st.MinArea)
	for _, v := range []int{0, 1, 2, 3} {
		assert.True(t, fp.alive[v], "near corner %d", v)
	}
	for _, v := range []int{4, 5, 6, 7} {
		assert.False(t, fp.alive[v], "covered corner %d", v)
	}

	t.Run("small faces do not occlude", func(t *testing.T) {
		fp := gatherFaces(m, cam, pg, &st)
		fp.occlude(cam, 10) // area gate 100, both quads below it
		for _, v := range fp.verts {
			assert.True(t, fp.alive[v])
		}
	})
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 5, Y: 5}, true},
		{"near edge interior", Point{X: 9.999, Y: 5}, true},
		{"outside", Point{X: 15, Y: 5}, false},
		{"on edge", Point{X: 5, Y: 0}, false},
		{"on corner", Point{X: 0, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointInPolygon(tt.p, square))
		})
	}

	tri := []Point{{0, 0}, {10, 0}, {0, 10}}
	assert.True(t, pointInPolygon(Point{X: 2, Y: 2}, tri))
	assert.False(t, pointInPolygon(Point{X: 8, Y: 8}, tri))
}

func TestVertexFacing(t *testing.T) {
	cam := testCam(false)
	m := scene.NewCube(2)

	// front corners tilt away from the eye ray by the same amount
	for _, v := range []int{0, 1, 4, 5} {
		assert.InDelta(t, -0.4436, vertexFacing(m, cam, v), 0.005, "vertex %d", v)
	}
}
