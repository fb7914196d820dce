// SPDX-License-Identifier: MIT

package scene

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Face is a polygon over mesh vertex indices, wound counter-clockwise
// when seen from the front side.
type Face struct {
	Verts    []int
	MatIndex int
	Select   bool
}

// Edge is an undirected vertex pair with the faces that share it.
// V[0] < V[1] always holds.
type Edge struct {
	V     [2]int
	Faces []int
}

// Boundary reports whether the edge belongs to exactly one face.
func (e Edge) Boundary() bool { return len(e.Faces) == 1 }

// Mesh is polygon geometry with derived face, vertex and edge data.
// Mutate Verts or Faces directly, then call Recalc before reading any
// derived value.
type Mesh struct {
	Verts []math32.Vector3
	Faces []Face

	faceNormal []math32.Vector3
	faceCenter []math32.Vector3
	faceArea   []float32
	vertNormal []math32.Vector3
	edges      []Edge
}

// NewMesh builds a mesh from vertices and faces, taking ownership of
// both slices, and computes the derived data.
func NewMesh(verts []math32.Vector3, faces []Face) *Mesh {
	m := &Mesh{Verts: verts, Faces: faces}
	m.Recalc()
	return m
}

// Copy returns a deep copy sharing no slices with the receiver.
func (m *Mesh) Copy() *Mesh {
	verts := make([]math32.Vector3, len(m.Verts))
	copy(verts, m.Verts)
	faces := make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		vs := make([]int, len(f.Verts))
		copy(vs, f.Verts)
		faces[i] = Face{Verts: vs, MatIndex: f.MatIndex, Select: f.Select}
	}
	return NewMesh(verts, faces)
}

// polygonCross is the cyclic cross product sum of a polygon. Its
// direction is the face normal and half its length the polygon area,
// exact for planar polygons including concave ones.
func polygonCross(verts []math32.Vector3, face []int) math32.Vector3 {
	var n math32.Vector3
	for i, vi := range face {
		vj := face[(i+1)%len(face)]
		n = n.Add(verts[vi].Cross(verts[vj]))
	}
	return n
}

// Recalc rebuilds face normals, centers, areas, vertex normals and the
// edge table from the current vertices and faces.
func (m *Mesh) Recalc() {
	nf := len(m.Faces)
	m.faceNormal = make([]math32.Vector3, nf)
	m.faceCenter = make([]math32.Vector3, nf)
	m.faceArea = make([]float32, nf)
	m.vertNormal = make([]math32.Vector3, len(m.Verts))

	vsum := make([]math32.Vector3, len(m.Verts))
	for i, f := range m.Faces {
		cr := polygonCross(m.Verts, f.Verts)
		l := cr.Length()
		if l > 0 {
			m.faceNormal[i] = cr.DivScalar(l)
		}
		m.faceArea[i] = l / 2

		var ctr math32.Vector3
		for _, vi := range f.Verts {
			ctr = ctr.Add(m.Verts[vi])
		}
		if len(f.Verts) > 0 {
			ctr = ctr.DivScalar(float32(len(f.Verts)))
		}
		m.faceCenter[i] = ctr

		for _, vi := range f.Verts {
			vsum[vi] = vsum[vi].Add(m.faceNormal[i])
		}
	}
	for vi, s := range vsum {
		if s.LengthSquared() > 0 {
			m.vertNormal[vi] = s.Normal()
		}
	}

	m.buildEdges()
}

func (m *Mesh) buildEdges() {
	type key struct{ a, b int }
	byKey := map[key]int{}
	m.edges = m.edges[:0]
	for fi, f := range m.Faces {
		n := len(f.Verts)
		for i := 0; i < n; i++ {
			a, b := f.Verts[i], f.Verts[(i+1)%n]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			k := key{a, b}
			ei, ok := byKey[k]
			if !ok {
				ei = len(m.edges)
				byKey[k] = ei
				m.edges = append(m.edges, Edge{V: [2]int{a, b}})
			}
			m.edges[ei].Faces = append(m.edges[ei].Faces, fi)
		}
	}
	sort.Slice(m.edges, func(i, j int) bool {
		if m.edges[i].V[0] != m.edges[j].V[0] {
			return m.edges[i].V[0] < m.edges[j].V[0]
		}
		return m.edges[i].V[1] < m.edges[j].V[1]
	})
}

// FaceNormal returns the unit normal of face i, zero for degenerate
// faces.
func (m *Mesh) FaceNormal(i int) math32.Vector3 { return m.faceNormal[i] }

// FaceCenter returns the vertex average of face i.
func (m *Mesh) FaceCenter(i int) math32.Vector3 { return m.faceCenter[i] }

// FaceArea returns the planar area of face i.
func (m *Mesh) FaceArea(i int) float32 { return m.faceArea[i] }

// VertNormal returns the normalized average of the face normals around
// vertex i, zero for vertices on no face.
func (m *Mesh) VertNormal(i int) math32.Vector3 { return m.vertNormal[i] }

// Edges returns the undirected edge table, ordered by vertex pair.
func (m *Mesh) Edges() []Edge { return m.edges }

// EdgeAngle returns the angle in radians between the normals of the
// two faces sharing e, or fallback when e is not shared by exactly two
// faces.
func (m *Mesh) EdgeAngle(e Edge, fallback float32) float32 {
	if len(e.Faces) != 2 {
		return fallback
	}
	d := m.faceNormal[e.Faces[0]].Dot(m.faceNormal[e.Faces[1]])
	return math32.Acos(math32.Clamp(d, -1, 1))
}

// Transformed returns a copy of the mesh with every vertex run through
// the given matrix and all derived data recomputed, so normals stay
// correct under non-uniform scaling.
func (m *Mesh) Transformed(mat *math32.Matrix4) *Mesh {
	c := m.Copy()
	for i, v := range c.Verts {
		c.Verts[i] = v.MulMatrix4(mat)
	}
	c.Recalc()
	return c
}

// Join appends the vertices and faces of other to the receiver,
// shifting face material indices by matOffset, and recalculates.
func (m *Mesh) Join(other *Mesh, matOffset int) {
	base := len(m.Verts)
	m.Verts = append(m.Verts, other.Verts...)
	for _, f := range other.Faces {
		vs := make([]int, len(f.Verts))
		for i, vi := range f.Verts {
			vs[i] = vi + base
		}
		m.Faces = append(m.Faces, Face{
			Verts:    vs,
			MatIndex: f.MatIndex + matOffset,
			Select:   f.Select,
		})
	}
	m.Recalc()
}
