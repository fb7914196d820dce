// SPDX-License-Identifier: MIT

package scene

import (
	"cogentcore.org/core/math32"
)

// Primitive builders mirror the stock modeling primitives: Z up,
// centered on the origin, quad-dominant topology with counter-clockwise
// front faces. Quad and ngon faces are kept as-is rather than
// triangulated, since downstream consumers work on whole polygons.

// NewPlane returns a single quad of the given side length in the XY
// plane, facing +Z.
func NewPlane(size float32) *Mesh {
	return NewGrid(1, 1, size, size)
}

// NewGrid returns an nx by ny cell grid in the XY plane spanning
// sx by sy world units, facing +Z.
func NewGrid(nx, ny int, sx, sy float32) *Mesh {
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	verts := make([]math32.Vector3, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			verts = append(verts, math32.Vec3(
				-sx/2+float32(i)*sx/float32(nx),
				-sy/2+float32(j)*sy/float32(ny),
				0,
			))
		}
	}
	idx := func(i, j int) int { return j*(nx+1) + i }
	faces := make([]Face, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			faces = append(faces, Face{Verts: []int{
				idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1),
			}})
		}
	}
	return NewMesh(verts, faces)
}

// NewBox returns a six-quad box with the given edge lengths.
func NewBox(sx, sy, sz float32) *Mesh {
	x, y, z := sx/2, sy/2, sz/2
	verts := []math32.Vector3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	faces := []Face{
		{Verts: []int{0, 3, 2, 1}}, // bottom
		{Verts: []int{4, 5, 6, 7}}, // top
		{Verts: []int{0, 1, 5, 4}}, // front
		{Verts: []int{1, 2, 6, 5}}, // right
		{Verts: []int{2, 3, 7, 6}}, // back
		{Verts: []int{3, 0, 4, 7}}, // left
	}
	return NewMesh(verts, faces)
}

// NewCube returns a box with equal edge lengths.
func NewCube(size float32) *Mesh {
	return NewBox(size, size, size)
}

// NewUVSphere returns a latitude/longitude sphere with the given
// number of segments around the equator and rings from pole to pole.
// Poles are fans of triangles, everything between is quads.
func NewUVSphere(segments, rings int, radius float32) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	verts := []math32.Vector3{{0, 0, radius}}
	for r := 1; r < rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		z := radius * math32.Cos(phi)
		rr := radius * math32.Sin(phi)
		for s := 0; s < segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			verts = append(verts, math32.Vec3(rr*math32.Cos(theta), rr*math32.Sin(theta), z))
		}
	}
	south := len(verts)
	verts = append(verts, math32.Vec3(0, 0, -radius))

	ring := func(r, s int) int { return 1 + (r-1)*segments + s%segments }
	var faces []Face
	for s := 0; s < segments; s++ {
		faces = append(faces, Face{Verts: []int{0, ring(1, s), ring(1, s+1)}})
	}
	for r := 1; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			faces = append(faces, Face{Verts: []int{
				ring(r, s), ring(r+1, s), ring(r+1, s+1), ring(r, s+1),
			}})
		}
	}
	for s := 0; s < segments; s++ {
		faces = append(faces, Face{Verts: []int{south, ring(rings-1, s+1), ring(rings-1, s)}})
	}
	return NewMesh(verts, faces)
}

// NewCylinder returns an n-sided cylinder of the given radius and
// depth, with ngon caps.
func NewCylinder(n int, radius, depth float32) *Mesh {
	return NewCone(n, radius, radius, depth)
}

// NewCone returns an n-sided cone frustum with bottom radius r1 and
// top radius r2 over the given depth. r2 = 0 collapses the top ring
// to an apex vertex with triangle sides.
func NewCone(n int, r1, r2, depth float32) *Mesh {
	if n < 3 {
		n = 3
	}
	pt := func(r float32, s int, z float32) math32.Vector3 {
		theta := 2 * math32.Pi * float32(s%n) / float32(n)
		return math32.Vec3(r*math32.Cos(theta), r*math32.Sin(theta), z)
	}
	var verts []math32.Vector3
	var faces []Face
	for s := 0; s < n; s++ {
		verts = append(verts, pt(r1, s, -depth/2))
	}
	bottom := make([]int, n)
	for s := 0; s < n; s++ {
		bottom[s] = n - 1 - s
	}
	faces = append(faces, Face{Verts: bottom})

	if r2 <= 0 {
		apex := len(verts)
		verts = append(verts, math32.Vec3(0, 0, depth/2))
		for s := 0; s < n; s++ {
			faces = append(faces, Face{Verts: []int{s, (s + 1) % n, apex}})
		}
	} else {
		top := len(verts)
		for s := 0; s < n; s++ {
			verts = append(verts, pt(r2, s, depth/2))
		}
		for s := 0; s < n; s++ {
			faces = append(faces, Face{Verts: []int{
				s, (s + 1) % n, top + (s+1)%n, top + s,
			}})
		}
		lid := make([]int, n)
		for s := 0; s < n; s++ {
			lid[s] = top + s
		}
		faces = append(faces, Face{Verts: lid})
	}
	return NewMesh(verts, faces)
}

// NewTorus returns a torus in the XY plane with majorSegs sections
// around the ring and minorSegs around the tube.
func NewTorus(majorSegs, minorSegs int, majorRadius, minorRadius float32) *Mesh {
	if majorSegs < 3 {
		majorSegs = 3
	}
	if minorSegs < 3 {
		minorSegs = 3
	}
	verts := make([]math32.Vector3, 0, majorSegs*minorSegs)
	for i := 0; i < majorSegs; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegs)
		for j := 0; j < minorSegs; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegs)
			rr := majorRadius + minorRadius*math32.Cos(v)
			verts = append(verts, math32.Vec3(
				rr*math32.Cos(u), rr*math32.Sin(u), minorRadius*math32.Sin(v),
			))
		}
	}
	idx := func(i, j int) int { return (i%majorSegs)*minorSegs + j%minorSegs }
	faces := make([]Face, 0, majorSegs*minorSegs)
	for i := 0; i < majorSegs; i++ {
		for j := 0; j < minorSegs; j++ {
			faces = append(faces, Face{Verts: []int{
				idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1),
			}})
		}
	}
	return NewMesh(verts, faces)
}

// NewCircle returns a filled n-sided polygon of the given radius in
// the XY plane, facing +Z.
func NewCircle(n int, radius float32) *Mesh {
	if n < 3 {
		n = 3
	}
	verts := make([]math32.Vector3, n)
	face := make([]int, n)
	for s := 0; s < n; s++ {
		theta := 2 * math32.Pi * float32(s) / float32(n)
		verts[s] = math32.Vec3(radius*math32.Cos(theta), radius*math32.Sin(theta), 0)
		face[s] = s
	}
	return NewMesh(verts, []Face{{Verts: face}})
}
