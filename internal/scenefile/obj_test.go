// SPDX-License-Identifier: MIT

package scenefile

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOBJScene(t *testing.T) {
	path := writeScene(t, "quad.obj", `# a single quad
v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
f 1 2 3 4
`)
	f, err := Load(path)
	require.NoError(t, err)

	sc := f.Scene
	assert.Equal(t, "quad", sc.Name)
	require.Len(t, sc.Objects, 1)
	o := sc.Objects[0]
	assert.Equal(t, "quad", o.Name, "ungrouped geometry takes the file name")
	assert.Len(t, o.Mesh.Verts, 4)
	require.Len(t, o.Mesh.Faces, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, o.Mesh.Faces[0].Verts)

	// The default view direction is kept, pulled back so the bounding
	// sphere (radius sqrt(8)/2) fills the 40 degree field of view.
	cam := sc.Camera
	assert.False(t, cam.Ortho)
	assert.Equal(t, 1920, cam.Width)
	assert.Equal(t, math32.Vec3(1, 1, 0), cam.Target)
	assert.InDelta(t, 3.5829, cam.Pos.X, 1e-3)
	assert.InDelta(t, -1.5829, cam.Pos.Y, 1e-3)
	assert.InDelta(t, 1.9371, cam.Pos.Z, 1e-3)
	assert.InDelta(t, 2.8284, cam.OrthoScale, 1e-3)
}

func TestLoadOBJGroups(t *testing.T) {
	path := writeScene(t, "house.obj", `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
g floor
f 1 2 3 4
g roof
f 5 6 7
f -3 -2 -1
`)
	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Scene.Objects, 2)

	floor := f.Scene.Object("floor")
	require.NotNil(t, floor)
	assert.Len(t, floor.Mesh.Verts, 4, "groups keep only the vertices they reference")
	require.Len(t, floor.Mesh.Faces, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, floor.Mesh.Faces[0].Verts)

	roof := f.Scene.Object("roof")
	require.NotNil(t, roof)
	assert.Len(t, roof.Mesh.Verts, 3)
	require.Len(t, roof.Mesh.Faces, 2)
	assert.Equal(t, []int{0, 1, 2}, roof.Mesh.Faces[0].Verts)
	assert.Equal(t, []int{0, 1, 2}, roof.Mesh.Faces[1].Verts,
		"negative references resolve against the global vertex list")
	assert.Equal(t, math32.Vec3(0, 0, 1), roof.Mesh.Verts[0])
}

func TestLoadOBJFaceForms(t *testing.T) {
	path := writeScene(t, "forms.obj", `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
s off
f 1/1/1 2/1 3//1 4
`)
	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Scene.Objects, 1)
	m := f.Scene.Objects[0].Mesh
	require.Len(t, m.Faces, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Faces[0].Verts)
}

func TestLoadOBJMaterials(t *testing.T) {
	files := map[string]string{
		"tiles.obj": `mtllib cols.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
usemtl red
f 1 2 3
usemtl mystery
f 1 3 4
`,
		"cols.mtl": `# palette
newmtl red
Ka 1 1 1
Kd 1 0 0
`,
	}
	path := writeFiles(t, files, "tiles.obj")
	f, err := Load(path)
	require.NoError(t, err)

	o := f.Scene.Objects[0]
	require.Len(t, o.Materials, 2)
	assert.Equal(t, "red", o.Materials[0].Name)
	assert.InDelta(t, 1, o.Materials[0].Color.R, 1e-9)
	assert.InDelta(t, 0, o.Materials[0].Color.G, 1e-9)
	assert.Equal(t, "mystery", o.Materials[1].Name)
	assert.InDelta(t, 0.8, o.Materials[1].Color.R, 1e-9, "unlisted materials fall back to gray")

	require.Len(t, o.Mesh.Faces, 2)
	assert.Equal(t, 0, o.Mesh.Faces[0].MatIndex)
	assert.Equal(t, 1, o.Mesh.Faces[1].MatIndex)
}

func TestLoadOBJErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"short vertex", "v 1 2\n", "vertex needs 3 coordinates"},
		{"bad coordinate", "v 0 0 0\nv a b c\n", ":2: bad vertex coordinate"},
		{"reference out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n", "out of range"},
		{"zero reference", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "out of range"},
		{"junk reference", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf one 2 3\n", "bad vertex reference"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "face needs at least 3 vertices"},
		{"missing material library", "mtllib nope.mtl\nv 0 0 0\n", "open material library"},
		{"no faces", "v 0 0 0\n", "no faces found"},
		{"empty file", "", "no faces found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScene(t, "bad.obj", tc.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadOBJMaterialLibrary(t *testing.T) {
	t.Run("stray Kd ignored", func(t *testing.T) {
		files := map[string]string{
			"m.obj": "mtllib m.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl x\nf 1 2 3\n",
			"m.mtl": "Kd 1 0 0\nnewmtl x\n",
		}
		f, err := Load(writeFiles(t, files, "m.obj"))
		require.NoError(t, err)
		o := f.Scene.Objects[0]
		require.Len(t, o.Materials, 1)
		assert.InDelta(t, 0.8, o.Materials[0].Color.R, 1e-9, "material without Kd stays gray")
	})

	bad := []struct {
		name    string
		mtl     string
		wantErr string
	}{
		{"short Kd", "newmtl x\nKd 0.5 0.5\n", "Kd needs 3 components"},
		{"junk Kd", "newmtl x\nKd a b c\n", "bad Kd component"},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			files := map[string]string{
				"m.obj": "mtllib m.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n",
				"m.mtl": tc.mtl,
			}
			_, err := Load(writeFiles(t, files, "m.obj"))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
