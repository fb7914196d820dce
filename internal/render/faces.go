// SPDX-License-Identifier: MIT

package render

import (
	"sort"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/style"
)

// faceInfo is the per-face visibility record: world centroid, its page
// projection, the facing product against the view ray, and the
// distance to the viewer.
type faceInfo struct {
	center math32.Vector3
	page   Point
	dot    float64
	depth  float64
	ok     bool
}

// facePass carries everything the drawing passes need about one
// object's faces: the admitted faces in painter order, the projected
// vertices they use, and the depth spread for the shading ramp.
type facePass struct {
	mesh   *scene.Mesh
	info   []faceInfo
	order  []int     // admitted face indices, far to near
	depth  []float64 // rounded viewer distance per order slot
	rangeV float64   // depth spread of the admitted faces

	verts  []int         // admitted vertex indices, ascending
	points map[int]Point // page position per admitted vertex
	alive  map[int]bool  // admitted vertices surviving occlusion
}

// gatherFaces projects and filters the faces of a world mesh. A face
// is admitted when its centroid and all of its corners project, it is
// larger than the area floor, it passes the selection filter, and,
// with facing-only enabled, it looks toward the viewer.
func gatherFaces(mesh *scene.Mesh, cam *scene.Camera, pg *page, st *style.Settings) *facePass {
	fp := &facePass{
		mesh:   mesh,
		info:   make([]faceInfo, len(mesh.Faces)),
		points: map[int]Point{},
		alive:  map[int]bool{},
	}

	for i := range mesh.Faces {
		center := mesh.FaceCenter(i)
		pagePt, ok := pg.Point(center)
		if !ok {
			continue
		}
		for _, v := range mesh.Faces[i].Verts {
			if _, vok := cam.Project(mesh.Verts[v]); !vok {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		ray := cam.ViewRay(center)
		fp.info[i] = faceInfo{
			center: center,
			page:   pagePt,
			dot:    float64(mesh.FaceNormal(i).Dot(ray)),
			depth:  float64(cam.Depth(center)),
			ok:     true,
		}
	}

	var admitted []int
	for i, f := range mesh.Faces {
		if st.SelectedOnly && !f.Select {
			continue
		}
		if !fp.info[i].ok || float64(mesh.FaceArea(i)) <= st.MinArea {
			continue
		}
		if st.FacingOnly && fp.info[i].dot >= 0 {
			continue
		}
		admitted = append(admitted, i)
	}

	vset := map[int]bool{}
	for _, f := range admitted {
		for _, v := range mesh.Faces[f].Verts {
			vset[v] = true
		}
	}
	for v := range vset {
		fp.verts = append(fp.verts, v)
	}
	sort.Ints(fp.verts)
	for _, v := range fp.verts {
		p, _ := pg.Point(mesh.Verts[v])
		fp.points[v] = p
		fp.alive[v] = true
	}

	// painter's order: far faces first, index breaking ties
	pairs := make([]struct {
		d   float64
		idx int
	}, len(admitted))
	for i, f := range admitted {
		pairs[i].d = roundTo(fp.info[f].depth, pg.prec)
		pairs[i].idx = f
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].d != pairs[b].d {
			return pairs[a].d > pairs[b].d
		}
		return pairs[a].idx > pairs[b].idx
	})
	fp.order = make([]int, len(pairs))
	fp.depth = make([]float64, len(pairs))
	for i, p := range pairs {
		fp.order[i] = p.idx
		fp.depth[i] = p.d
	}

	if len(fp.depth) > 0 {
		fp.rangeV = abs64(fp.depth[0]-fp.depth[len(fp.depth)-1]) + 1e-05
	} else {
		fp.rangeV = 0.5
	}
	return fp
}

// depthRamp is the normalized distance for order slot i: 0 at the
// farthest admitted face, rising toward 1 at the nearest.
func (fp *facePass) depthRamp(i int) float64 {
	return (fp.depth[0] - fp.depth[i]) / fp.rangeV
}

// occlude drops admitted vertices that sit behind a face covering them
// on the page. Only faces above ten times the area floor are tested,
// using containment in the face's first three or four corners plus a
// viewer distance comparison against the face centroid. A face never
// occludes its own corners.
func (fp *facePass) occlude(cam *scene.Camera, minArea float64) {
	for _, fi := range fp.order {
		if float64(fp.mesh.FaceArea(fi)) <= minArea*10 {
			continue
		}
		fv := fp.mesh.Faces[fi].Verts
		n := len(fv)
		if n > 4 {
			n = 4
		}
		poly := make([]Point, n)
		own := make(map[int]bool, len(fv))
		for i, v := range fv {
			if i < n {
				poly[i] = fp.points[v]
			}
			own[v] = true
		}
		center := float64(cam.Distance(fp.info[fi].center))
		for _, v := range fp.verts {
			if !fp.alive[v] || own[v] {
				continue
			}
			if !pointInPolygon(fp.points[v], poly) {
				continue
			}
			if float64(cam.Distance(fp.mesh.Verts[v])) > center {
				fp.alive[v] = false
			}
		}
	}
}

// pointInPolygon reports whether p lies strictly inside the convex
// polygon, by the all-same-side test. Boundary points are outside.
func pointInPolygon(p Point, poly []Point) bool {
	sign := 0.0
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		cr := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cr == 0 {
			return false
		}
		if sign == 0 {
			sign = cr
			continue
		}
		if (cr > 0) != (sign > 0) {
			return false
		}
	}
	return sign != 0
}

// vertexFacing is the facing product of the vertex normal against the
// view ray toward the vertex.
func vertexFacing(m *scene.Mesh, cam *scene.Camera, v int) float64 {
	return float64(m.VertNormal(v).Dot(cam.ViewRay(m.Verts[v])))
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
