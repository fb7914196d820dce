// SPDX-License-Identifier: MIT

package scene

import (
	"cogentcore.org/core/math32"
)

const bisectEps = 1e-5

type planeSide int

const (
	sideIn planeSide = iota
	sideOn
	sideOut
)

// Bisect cuts the mesh with the plane through co with normal no and
// removes everything on the normal side. Faces crossing the plane are
// clipped with new vertices on the cut; vertices on the kept side
// survive even when no face references them. The result is a new mesh,
// the input is untouched.
func Bisect(m *Mesh, co, no math32.Vector3) *Mesh {
	n := no.Normal()
	side := make([]planeSide, len(m.Verts))
	dist := make([]float32, len(m.Verts))
	for i, v := range m.Verts {
		d := v.Sub(co).Dot(n)
		dist[i] = d
		switch {
		case d > bisectEps:
			side[i] = sideOut
		case d < -bisectEps:
			side[i] = sideIn
		default:
			side[i] = sideOn
		}
	}

	var verts []math32.Vector3
	remap := make([]int, len(m.Verts))
	for i, v := range m.Verts {
		if side[i] == sideOut {
			remap[i] = -1
			continue
		}
		remap[i] = len(verts)
		verts = append(verts, v)
	}

	// one cut vertex per original edge, shared between the faces on it
	type cutKey struct{ a, b int }
	cuts := map[cutKey]int{}
	cutVert := func(a, b int) int {
		if a > b {
			a, b = b, a
		}
		k := cutKey{a, b}
		if vi, ok := cuts[k]; ok {
			return vi
		}
		t := dist[a] / (dist[a] - dist[b])
		p := m.Verts[a].Lerp(m.Verts[b], t)
		vi := len(verts)
		verts = append(verts, p)
		cuts[k] = vi
		return vi
	}

	var faces []Face
	for _, f := range m.Faces {
		nv := len(f.Verts)
		poly := make([]int, 0, nv+2)
		for i := 0; i < nv; i++ {
			a := f.Verts[i]
			b := f.Verts[(i+1)%nv]
			if side[a] != sideOut {
				poly = append(poly, remap[a])
			}
			if (side[a] == sideIn && side[b] == sideOut) ||
				(side[a] == sideOut && side[b] == sideIn) {
				poly = append(poly, cutVert(a, b))
			}
		}
		if len(poly) < 3 {
			continue
		}
		faces = append(faces, Face{Verts: poly, MatIndex: f.MatIndex, Select: f.Select})
	}
	return NewMesh(verts, faces)
}
