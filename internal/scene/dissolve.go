// SPDX-License-Identifier: MIT

package scene

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Dissolve merges faces whose shared edge is flatter than the given
// angle limit in radians, then drops the near-collinear vertices the
// merge leaves on the seams. Used to simplify tessellated geometry
// before emission so flat areas come out as single polygons. Regions
// that do not reduce to one clean boundary loop, such as a whole
// closed solid merging into itself, are left as they were. Returns a
// new mesh.
func Dissolve(m *Mesh, angleLimit float32) *Mesh {
	if angleLimit <= 0 || len(m.Faces) == 0 {
		return m.Copy()
	}

	parent := make([]int, len(m.Faces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, e := range m.Edges() {
		if len(e.Faces) != 2 {
			continue
		}
		if m.EdgeAngle(e, math32.Pi/2) <= angleLimit {
			a, b := find(e.Faces[0]), find(e.Faces[1])
			if a != b {
				parent[b] = a
			}
		}
	}

	groups := map[int][]int{}
	for i := range m.Faces {
		r := find(i)
		groups[r] = append(groups[r], i)
	}
	roots := make([]int, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	var faces []Face
	for _, r := range roots {
		group := groups[r]
		sort.Ints(group)
		if len(group) == 1 {
			f := m.Faces[group[0]]
			vs := make([]int, len(f.Verts))
			copy(vs, f.Verts)
			faces = append(faces, Face{Verts: vs, MatIndex: f.MatIndex, Select: f.Select})
			continue
		}
		if loop, ok := mergeRegion(m, group); ok {
			first := m.Faces[group[0]]
			faces = append(faces, Face{Verts: loop, MatIndex: first.MatIndex, Select: first.Select})
			continue
		}
		for _, fi := range group {
			f := m.Faces[fi]
			vs := make([]int, len(f.Verts))
			copy(vs, f.Verts)
			faces = append(faces, Face{Verts: vs, MatIndex: f.MatIndex, Select: f.Select})
		}
	}

	faces = dissolveVerts(m.Verts, faces, angleLimit)
	return compactMesh(m, faces)
}

// mergeRegion walks the outer boundary of a face group and returns it
// as one polygon loop. ok is false when the region is not a single
// manifold disk: duplicated directed edges, branching boundaries,
// holes, or no boundary at all.
func mergeRegion(m *Mesh, group []int) (loop []int, ok bool) {
	type dedge struct{ a, b int }
	directed := map[dedge]bool{}
	for _, fi := range group {
		f := m.Faces[fi]
		n := len(f.Verts)
		for i := 0; i < n; i++ {
			d := dedge{f.Verts[i], f.Verts[(i+1)%n]}
			if directed[d] {
				return nil, false
			}
			directed[d] = true
		}
	}

	next := map[int]int{}
	count := 0
	for d := range directed {
		if directed[dedge{d.b, d.a}] {
			continue // interior edge
		}
		if _, dup := next[d.a]; dup {
			return nil, false
		}
		next[d.a] = d.b
		count++
	}
	if count < 3 {
		return nil, false
	}

	start := -1
	for v := range next {
		if start < 0 || v < start {
			start = v
		}
	}
	loop = append(loop, start)
	for v := next[start]; v != start; v = next[v] {
		loop = append(loop, v)
		if len(loop) > count {
			return nil, false
		}
	}
	if len(loop) != count {
		return nil, false // more than one boundary loop
	}
	return loop, true
}

// dissolveVerts removes vertices that only connect two near-collinear
// edges in the given face set.
func dissolveVerts(verts []math32.Vector3, faces []Face, angleLimit float32) []Face {
	neighbors := map[int]map[int]bool{}
	addNb := func(a, b int) {
		if neighbors[a] == nil {
			neighbors[a] = map[int]bool{}
		}
		neighbors[a][b] = true
	}
	for _, f := range faces {
		n := len(f.Verts)
		for i := 0; i < n; i++ {
			a, b := f.Verts[i], f.Verts[(i+1)%n]
			addNb(a, b)
			addNb(b, a)
		}
	}

	drop := map[int]bool{}
	for v, nbs := range neighbors {
		if len(nbs) != 2 {
			continue
		}
		pair := make([]int, 0, 2)
		for nb := range nbs {
			pair = append(pair, nb)
		}
		d1 := verts[v].Sub(verts[pair[0]]).Normal()
		d2 := verts[pair[1]].Sub(verts[v]).Normal()
		turn := math32.Acos(math32.Clamp(d1.Dot(d2), -1, 1))
		if turn <= angleLimit {
			drop[v] = true
		}
	}
	if len(drop) == 0 {
		return faces
	}

	out := make([]Face, 0, len(faces))
	for _, f := range faces {
		kept := make([]int, 0, len(f.Verts))
		for _, vi := range f.Verts {
			if !drop[vi] {
				kept = append(kept, vi)
			}
		}
		if len(kept) < 3 {
			kept = f.Verts
		}
		out = append(out, Face{Verts: kept, MatIndex: f.MatIndex, Select: f.Select})
	}
	return out
}

// compactMesh rebuilds a mesh keeping vertices that the new faces use
// plus vertices that were loose to begin with.
func compactMesh(m *Mesh, faces []Face) *Mesh {
	onFace := make([]bool, len(m.Verts))
	for _, f := range m.Faces {
		for _, vi := range f.Verts {
			onFace[vi] = true
		}
	}
	used := make([]bool, len(m.Verts))
	for _, f := range faces {
		for _, vi := range f.Verts {
			used[vi] = true
		}
	}

	remap := make([]int, len(m.Verts))
	var verts []math32.Vector3
	for i, v := range m.Verts {
		if used[i] || !onFace[i] {
			remap[i] = len(verts)
			verts = append(verts, v)
		} else {
			remap[i] = -1
		}
	}
	for fi := range faces {
		for i, vi := range faces[fi].Verts {
			faces[fi].Verts[i] = remap[vi]
		}
	}
	return NewMesh(verts, faces)
}
