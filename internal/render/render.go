// SPDX-License-Identifier: MIT

// Package render projects a scene through its camera and styles the
// result into an SVG document: painter-ordered face fills, stroke and
// vertex passes, curve paths and object annotations, all inside one
// session layer that can be appended to an existing file.
//
// Rendering is deterministic: the same scene, settings, seed and
// timestamp produce the same document.
package render

import (
	"sort"
	"time"

	"cogentcore.org/core/math32"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/scene"
	"github.com/Nutek/blender-export-svg/internal/style"
	"github.com/Nutek/blender-export-svg/internal/svg"
)

// Options carry the per-frame inputs that are not style settings.
type Options struct {
	// Seed feeds the frame's random stream.
	Seed int64
	// Stamp becomes the session layer id.
	Stamp time.Time
}

// Stats summarizes what one rendered frame emitted.
type Stats struct {
	Objects int
	Faces   int
	Strokes int
	Marks   int
}

// frame is the per-render state shared by the drawing passes.
type frame struct {
	st  *style.Settings
	cam *scene.Camera
	pg  *page
	rnd *paint.Source

	clone   string // clone symbol id, set when vertex clones are on
	patID   string // hatch pattern id prefix, set for pattern fills
	fondo   string // pattern background fill
	overlay []*svg.Node

	stats Stats
}

// objCtx is one object prepared for drawing: its world mesh after
// simplification and cutting, plus the face visibility pass.
type objCtx struct {
	obj    *scene.Object
	name   string
	mesh   *scene.Mesh
	isLine bool
	curve  *scene.Curve
	fp     *facePass
}

// Frame renders the scene's selected objects through its camera into a
// fresh single-layer document.
func Frame(sc *scene.Scene, st *style.Settings, opt Options) (*svg.Document, Stats) {
	cam := &sc.Camera
	doc := svg.NewDocument(cam.Width, cam.Height)
	layer := doc.AddLayer(layerID(opt.Stamp))

	fr := &frame{
		st:  st,
		cam: cam,
		pg:  newPage(cam, st),
		rnd: paint.NewSource(opt.Seed),
	}
	fr.sessionDefs(layer)

	// an object named as the bisect plane cuts every exported mesh and
	// is not itself exported
	var bisect *scene.Object
	if st.BisectObject != "" {
		bisect = sc.Object(st.BisectObject)
	}

	admitted := fr.admit(sc, bisect)

	ocs := make([]*objCtx, 0, len(admitted))
	for _, o := range admitted {
		ocs = append(ocs, fr.buildObject(o, bisect))
	}
	if st.JoinObjects && len(ocs) > 1 {
		ocs = []*objCtx{joinContexts(ocs)}
	}

	for _, oc := range ocs {
		fr.drawObject(layer, oc)
	}
	for _, p := range fr.overlay {
		layer.Add(p)
	}

	// annotations always cover the individual objects, joined or not
	oo := make([]Point, len(admitted))
	for i, o := range admitted {
		oo[i], _ = fr.pg.Point(o.Location())
	}
	if st.Origins {
		layer.Add(fr.originGroup(admitted, oo))
	}
	if st.ConnectObjects {
		if p := fr.unionPath(oo); p != nil {
			layer.Add(p)
		}
	}
	if st.Hierarchy {
		layer.Add(fr.relationGroup(admitted, oo))
	}

	return doc, fr.stats
}

// admit filters the scene down to the exported objects: selected,
// visible, not the cutting plane, and with a projectable origin. With
// ordering enabled the farthest origin comes first so later groups
// paint over earlier ones.
func (fr *frame) admit(sc *scene.Scene, bisect *scene.Object) []*scene.Object {
	var out []*scene.Object
	for _, o := range sc.Selected() {
		if o == bisect {
			continue
		}
		if _, ok := fr.pg.Point(o.Location()); ok {
			out = append(out, o)
		}
	}
	if fr.st.OrderObjects {
		sort.SliceStable(out, func(i, j int) bool {
			di := roundTo(float64(fr.cam.DistanceSquared(out[i].Location())), 5)
			dj := roundTo(float64(fr.cam.DistanceSquared(out[j].Location())), 5)
			if di != dj {
				return di > dj
			}
			return out[i].Name > out[j].Name
		})
	}
	return out
}

// buildObject resolves an object into drawable world geometry. Mesh
// objects get the planar dissolve pass; every object is cut by the
// bisect plane when one is present.
func (fr *frame) buildObject(o *scene.Object, bisect *scene.Object) *objCtx {
	oc := &objCtx{obj: o, name: safeID(o.Name), isLine: o.IsLine()}
	mesh := o.WorldMesh()
	if !oc.isLine && fr.st.DissolveAngle > 0 {
		mesh = scene.Dissolve(mesh, math32.DegToRad(float32(fr.st.DissolveAngle)))
	}
	if bisect != nil {
		mesh = scene.Bisect(mesh, bisect.Location(), bisect.ZAxis())
	}
	oc.mesh = mesh
	if o.Curve != nil {
		oc.curve = o.WorldCurve()
	}
	return oc
}

// joinContexts collapses the prepared objects into a single mesh, the
// way face sorting across objects needs. Material slots concatenate in
// draw order.
func joinContexts(ocs []*objCtx) *objCtx {
	combined := scene.NewMesh(nil, nil)
	join := &scene.Object{Name: "join", Selected: true}
	join.Matrix.SetIdentity()
	for _, oc := range ocs {
		combined.Join(oc.mesh, len(join.Materials))
		join.Materials = append(join.Materials, oc.obj.Materials...)
	}
	join.Mesh = combined
	return &objCtx{obj: join, name: "join", mesh: combined}
}

// drawObject emits one object group: curve path, face fills, vertex
// marks, connect paths and the stroke pass, in that order.
func (fr *frame) drawObject(layer *svg.Node, oc *objCtx) {
	st := fr.st
	g := svg.New("g").Attr("id", oc.name)
	g.Add(svg.Comment("start " + oc.obj.Name))

	if oc.isLine {
		if p := fr.curvePath(oc); p != nil {
			g.Add(p)
		}
	}
	if st.BezierOverlay && oc.curve != nil && oc.curve.HasBezier() {
		fr.overlay = append(fr.overlay, fr.bezierOverlay(oc.curve)...)
	}

	oc.fp = gatherFaces(oc.mesh, fr.cam, fr.pg, st)
	if st.OccludeMarks && (st.Stroke != style.StrokeNone || st.Vertex != style.VertexNone) {
		oc.fp.occlude(fr.cam, st.MinArea)
	}

	if fg := fr.faceGroup(oc); fg != nil {
		g.Add(fg)
	}
	if st.Vertex != style.VertexNone {
		g.Add(fr.markGroup(oc))
	}

	// the walk offsets are drawn for every object, used or not, so a
	// fixed seed keeps the rest of the stream stable across toggles
	lev := len(oc.mesh.Verts)
	offset := 0
	if lev > 0 {
		offset = fr.rnd.Intn(lev)
	}
	extra := fr.rnd.Intn(st.StepVariation + 1)

	if st.ConnectVertices && lev > 1 {
		if p := fr.connectPath(oc, offset, extra); p != nil {
			g.Add(p)
		}
	}
	if st.NumberVertices && lev > 1 {
		if ng := fr.numberGroup(oc, offset, extra); ng != nil {
			g.Add(ng)
		}
	}
	if st.Stroke != style.StrokeNone {
		g.Add(fr.strokeGroup(oc))
	}

	layer.Add(g, svg.Comment("end "+oc.obj.Name))
	fr.stats.Objects++
}

// opacity stamps the translucency attribute when the settings ask for
// less than full coverage.
func (fr *frame) opacity(n *svg.Node) *svg.Node {
	if fr.st.Opacity < 1 {
		n.AttrNum("opacity", roundTo(fr.st.Opacity, fr.st.Precision))
	}
	return n
}
