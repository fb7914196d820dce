// SPDX-License-Identifier: MIT

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveTopology(t *testing.T) {
	tests := []struct {
		name   string
		mesh   *Mesh
		verts  int
		faces  int
		closed bool
	}{
		{"plane", NewPlane(2), 4, 1, false},
		{"grid 2x3", NewGrid(2, 3, 2, 3), 12, 6, false},
		{"cube", NewCube(2), 8, 6, true},
		{"sphere 8x4", NewUVSphere(8, 4, 1), 26, 32, true},
		{"cylinder 6", NewCylinder(6, 1, 2), 12, 8, true},
		{"cone 6", NewCone(6, 1, 0, 2), 7, 7, true},
		{"torus 4x3", NewTorus(4, 3, 2, 0.5), 12, 12, true},
		{"circle 5", NewCircle(5, 1), 5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.mesh.Verts, tt.verts)
			assert.Len(t, tt.mesh.Faces, tt.faces)
			for _, e := range tt.mesh.Edges() {
				if tt.closed {
					assert.Len(t, e.Faces, 2, "closed solids are two-manifold")
				} else {
					assert.LessOrEqual(t, len(e.Faces), 2)
				}
			}
			for i := range tt.mesh.Faces {
				assert.Greater(t, tt.mesh.FaceArea(i), float32(0), "face %d has positive area", i)
			}
		})
	}
}

func TestConvexPrimitivesFaceOutward(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
	}{
		{"cube", NewCube(2)},
		{"sphere", NewUVSphere(12, 6, 1)},
		{"cylinder", NewCylinder(8, 1, 2)},
		{"cone", NewCone(8, 1, 0, 2)},
		{"frustum", NewCone(8, 1, 0.5, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.mesh.Faces {
				d := tt.mesh.FaceNormal(i).Dot(tt.mesh.FaceCenter(i))
				assert.Greater(t, d, float32(0), "face %d points away from the centroid", i)
			}
		})
	}
}

func TestSphereRadius(t *testing.T) {
	m := NewUVSphere(16, 8, 2.5)
	for _, v := range m.Verts {
		assert.InDelta(t, 2.5, float64(v.Length()), 1e-4)
	}
}

func TestGridIsFlat(t *testing.T) {
	m := NewGrid(3, 3, 2, 2)
	require.Len(t, m.Faces, 9)
	for i := range m.Faces {
		n := m.FaceNormal(i)
		assert.InDelta(t, 1, float64(n.Z), 1e-5)
	}
	var total float32
	for i := range m.Faces {
		total += m.FaceArea(i)
	}
	assert.InDelta(t, 4, float64(total), 1e-4)
}

func TestTorusEdgeCount(t *testing.T) {
	m := NewTorus(8, 6, 2, 0.5)
	// quad grid wrapped both ways: E = 2 * F
	assert.Len(t, m.Edges(), 2*len(m.Faces))
}
