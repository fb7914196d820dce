// SPDX-License-Identifier: MIT

// Package scenefile loads scene descriptions from disk: YAML documents
// describing cameras, objects and materials, and Wavefront OBJ geometry
// either referenced from YAML or exported directly as a one-object
// scene. Parsing is strict in the YAML case (unknown keys are errors)
// and forgiving in the OBJ case (unknown directives are skipped), which
// matches how each format is used in practice.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"

	"github.com/Nutek/blender-export-svg/internal/paint"
	"github.com/Nutek/blender-export-svg/internal/scene"
)

// File is a loaded scene plus the export hints the document carried
// alongside it.
type File struct {
	Scene *scene.Scene

	// Bisect names the cutting-plane object declared by the document,
	// empty when none was.
	Bisect string

	// Turntable is the per-frame orbit in degrees for sequence
	// export, zero when the document declares no animation.
	Turntable float64
}

// Load reads a scene description, dispatching on the file extension:
// .yaml/.yml documents and bare .obj files are supported.
func Load(path string) (*File, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".obj":
		return loadOBJ(path)
	default:
		return nil, fmt.Errorf("scene file %s: unsupported extension %q (want .yaml, .yml or .obj)", path, ext)
	}
}

// document is the YAML scene schema. All keys are optional; pointer
// fields distinguish "absent" from a zero value where that matters.
type document struct {
	Scene     string        `yaml:"scene"`
	Camera    *cameraDoc    `yaml:"camera"`
	Objects   []objectDoc   `yaml:"objects"`
	Bisect    *bisectDoc    `yaml:"bisect"`
	Animation *animationDoc `yaml:"animation"`
}

type cameraDoc struct {
	Position   *[3]float32 `yaml:"position"`
	Target     *[3]float32 `yaml:"target"`
	Up         *[3]float32 `yaml:"up"`
	Ortho      *bool       `yaml:"ortho"`
	FOV        *float32    `yaml:"fov"`
	OrthoScale *float32    `yaml:"ortho_scale"`
	Near       *float32    `yaml:"near"`
	Far        *float32    `yaml:"far"`
	Width      *int        `yaml:"width"`
	Height     *int        `yaml:"height"`
}

type objectDoc struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"`

	// Primitive parameters. Zero values fall back to the stock
	// modeling defaults of the shape.
	Size          float32 `yaml:"size"`
	SizeX         float32 `yaml:"size_x"`
	SizeY         float32 `yaml:"size_y"`
	SizeZ         float32 `yaml:"size_z"`
	XSegments     int     `yaml:"x_segments"`
	YSegments     int     `yaml:"y_segments"`
	Segments      int     `yaml:"segments"`
	Rings         int     `yaml:"rings"`
	Vertices      int     `yaml:"vertices"`
	Radius        float32 `yaml:"radius"`
	Radius2       float32 `yaml:"radius2"`
	Depth         float32 `yaml:"depth"`
	MajorSegments int     `yaml:"major_segments"`
	MinorSegments int     `yaml:"minor_segments"`
	MajorRadius   float32 `yaml:"major_radius"`
	MinorRadius   float32 `yaml:"minor_radius"`

	OBJ   string    `yaml:"obj"`
	Mesh  *meshDoc  `yaml:"mesh"`
	Curve *curveDoc `yaml:"curve"`

	Location [3]float32  `yaml:"location"`
	Rotation [3]float32  `yaml:"rotation"`
	Scale    *[3]float32 `yaml:"scale"`

	Parent        string        `yaml:"parent"`
	Hide          bool          `yaml:"hide"`
	Selected      *bool         `yaml:"selected"`
	Materials     []materialDoc `yaml:"materials"`
	SelectFaces   []int         `yaml:"select_faces"`
	FaceMaterials []int         `yaml:"face_materials"`
}

type meshDoc struct {
	Verts [][3]float32 `yaml:"verts"`
	Faces [][]int      `yaml:"faces"`
}

type curveDoc struct {
	Splines []splineDoc `yaml:"splines"`
}

type splineDoc struct {
	Kind       string       `yaml:"kind"`
	Points     [][3]float32 `yaml:"points"`
	Bezier     []bezierDoc  `yaml:"bezier"`
	Cyclic     bool         `yaml:"cyclic"`
	Resolution int          `yaml:"resolution"`
}

type bezierDoc struct {
	Co          [3]float32  `yaml:"co"`
	HandleLeft  *[3]float32 `yaml:"handle_left"`
	HandleRight *[3]float32 `yaml:"handle_right"`
}

type materialDoc struct {
	Name  string     `yaml:"name"`
	Color [3]float64 `yaml:"color"`
}

type bisectDoc struct {
	Object string      `yaml:"from_object"`
	Point  *[3]float32 `yaml:"point"`
	Normal *[3]float32 `yaml:"normal"`
}

type animationDoc struct {
	Turntable float64 `yaml:"turntable"`
}

func loadYAML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	// An empty document is a valid empty scene; anything after the
	// first document is not.
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse scene file %s: %w", path, err)
		}
	} else if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene file %s: trailing content after document", path)
	}

	name := doc.Scene
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sc := scene.New(name)
	if doc.Camera != nil {
		applyCamera(&sc.Camera, doc.Camera)
	}

	baseDir := filepath.Dir(path)
	built := make([]*scene.Object, len(doc.Objects))
	for i := range doc.Objects {
		o, err := buildObject(&doc.Objects[i], i, baseDir)
		if err != nil {
			return nil, fmt.Errorf("scene file %s: %w", path, err)
		}
		built[i] = sc.Add(o)
	}

	// Parents resolve after every object exists, so forward references
	// work. Add may have renamed a duplicate, lookups use the document
	// name.
	for i := range doc.Objects {
		pname := doc.Objects[i].Parent
		if pname == "" {
			continue
		}
		p := sc.Object(pname)
		if p == nil {
			return nil, fmt.Errorf("scene file %s: object %q: unknown parent %q", path, built[i].Name, pname)
		}
		if p == built[i] {
			return nil, fmt.Errorf("scene file %s: object %q cannot parent itself", path, built[i].Name)
		}
		built[i].Parent = p
	}

	f := &File{Scene: sc}
	if doc.Bisect != nil {
		f.Bisect, err = applyBisect(sc, doc.Bisect)
		if err != nil {
			return nil, fmt.Errorf("scene file %s: %w", path, err)
		}
	}
	if doc.Animation != nil {
		f.Turntable = doc.Animation.Turntable
	}
	return f, nil
}

func applyCamera(c *scene.Camera, d *cameraDoc) {
	if d.Position != nil {
		c.Pos = vec3(*d.Position)
	}
	if d.Target != nil {
		c.Target = vec3(*d.Target)
	}
	if d.Up != nil {
		c.Up = vec3(*d.Up)
	}
	if d.Ortho != nil {
		c.Ortho = *d.Ortho
	}
	if d.FOV != nil {
		c.FOV = *d.FOV
	}
	if d.OrthoScale != nil {
		c.OrthoScale = *d.OrthoScale
	}
	if d.Near != nil {
		c.Near = *d.Near
	}
	if d.Far != nil {
		c.Far = *d.Far
	}
	if d.Width != nil {
		c.Width = *d.Width
	}
	if d.Height != nil {
		c.Height = *d.Height
	}
	c.UpdateMatrix()
}

func buildObject(d *objectDoc, idx int, baseDir string) (*scene.Object, error) {
	name := d.Name
	if name == "" {
		switch {
		case d.Shape != "":
			name = d.Shape
		case d.OBJ != "":
			name = strings.TrimSuffix(filepath.Base(d.OBJ), filepath.Ext(d.OBJ))
		case d.Curve != nil:
			name = "curve"
		default:
			name = "object"
		}
	}

	sources := 0
	for _, set := range []bool{d.Shape != "", d.OBJ != "", d.Mesh != nil, d.Curve != nil} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return nil, fmt.Errorf("object %d (%s): needs one of shape, obj, mesh or curve", idx, name)
	}
	if sources > 1 {
		return nil, fmt.Errorf("object %d (%s): shape, obj, mesh and curve are mutually exclusive", idx, name)
	}

	var o *scene.Object
	switch {
	case d.Shape != "":
		m, err := buildShape(d)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		o = scene.NewObject(name, m)

	case d.OBJ != "":
		p := d.OBJ
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		groups, err := parseOBJ(p)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		m := groups[0].mesh
		mats := groups[0].materials
		for _, g := range groups[1:] {
			m.Join(g.mesh, len(mats))
			mats = append(mats, g.materials...)
		}
		o = scene.NewObject(name, m)
		o.Materials = mats

	case d.Mesh != nil:
		m, err := buildMesh(d.Mesh)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		o = scene.NewObject(name, m)

	case d.Curve != nil:
		c, err := buildCurve(d.Curve)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", name, err)
		}
		o = scene.NewCurveObject(name, c)
	}

	scl := math32.Vec3(1, 1, 1)
	if d.Scale != nil {
		scl = vec3(*d.Scale)
	}
	o.SetTransform(vec3(d.Location), vec3(d.Rotation), scl)
	o.Hide = d.Hide
	o.Selected = d.Selected == nil || *d.Selected

	if len(d.Materials) > 0 {
		o.Materials = make([]scene.Material, len(d.Materials))
		for i, md := range d.Materials {
			mname := md.Name
			if mname == "" {
				mname = fmt.Sprintf("material_%03d", i)
			}
			o.Materials[i] = scene.Material{
				Name:  mname,
				Color: paint.RGB(md.Color[0], md.Color[1], md.Color[2]),
			}
		}
	}

	if len(d.SelectFaces) > 0 {
		if o.Mesh == nil {
			return nil, fmt.Errorf("object %q: select_faces needs mesh geometry", name)
		}
		for _, fi := range d.SelectFaces {
			if fi < 0 || fi >= len(o.Mesh.Faces) {
				return nil, fmt.Errorf("object %q: select_faces index %d out of range (have %d faces)", name, fi, len(o.Mesh.Faces))
			}
			o.Mesh.Faces[fi].Select = true
		}
	}
	if len(d.FaceMaterials) > 0 {
		if o.Mesh == nil {
			return nil, fmt.Errorf("object %q: face_materials needs mesh geometry", name)
		}
		if len(d.FaceMaterials) != len(o.Mesh.Faces) {
			return nil, fmt.Errorf("object %q: face_materials has %d entries, mesh has %d faces", name, len(d.FaceMaterials), len(o.Mesh.Faces))
		}
		for i, slot := range d.FaceMaterials {
			if slot < 0 {
				return nil, fmt.Errorf("object %q: face_materials slot %d is negative", name, slot)
			}
			o.Mesh.Faces[i].MatIndex = slot
		}
	}
	return o, nil
}

// buildShape maps a shape name and its parameters onto the primitive
// builders, filling unset parameters with the stock defaults.
func buildShape(d *objectDoc) (*scene.Mesh, error) {
	size := d.Size
	if size == 0 {
		size = 2
	}
	fallback := func(v, def float32) float32 {
		if v == 0 {
			return def
		}
		return v
	}
	count := func(v, def int) int {
		if v == 0 {
			return def
		}
		return v
	}

	switch d.Shape {
	case "plane":
		return scene.NewPlane(size), nil
	case "grid":
		return scene.NewGrid(
			count(d.XSegments, 10), count(d.YSegments, 10),
			fallback(d.SizeX, size), fallback(d.SizeY, size),
		), nil
	case "box":
		return scene.NewBox(
			fallback(d.SizeX, size), fallback(d.SizeY, size), fallback(d.SizeZ, size),
		), nil
	case "cube":
		return scene.NewCube(size), nil
	case "uv_sphere":
		return scene.NewUVSphere(
			count(d.Segments, 32), count(d.Rings, 16), fallback(d.Radius, 1),
		), nil
	case "cylinder":
		return scene.NewCylinder(
			count(d.Vertices, 32), fallback(d.Radius, 1), fallback(d.Depth, 2),
		), nil
	case "cone":
		return scene.NewCone(
			count(d.Vertices, 32), fallback(d.Radius, 1), d.Radius2, fallback(d.Depth, 2),
		), nil
	case "torus":
		return scene.NewTorus(
			count(d.MajorSegments, 48), count(d.MinorSegments, 12),
			fallback(d.MajorRadius, 1), fallback(d.MinorRadius, 0.25),
		), nil
	case "circle":
		return scene.NewCircle(count(d.Vertices, 32), fallback(d.Radius, 1)), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (want plane, grid, box, cube, uv_sphere, cylinder, cone, torus or circle)", d.Shape)
	}
}

func buildMesh(d *meshDoc) (*scene.Mesh, error) {
	verts := make([]math32.Vector3, len(d.Verts))
	for i, v := range d.Verts {
		verts[i] = vec3(v)
	}
	faces := make([]scene.Face, len(d.Faces))
	for i, fv := range d.Faces {
		if len(fv) < 3 {
			return nil, fmt.Errorf("mesh face %d: needs at least 3 vertices, has %d", i, len(fv))
		}
		for _, vi := range fv {
			if vi < 0 || vi >= len(verts) {
				return nil, fmt.Errorf("mesh face %d: vertex index %d out of range (have %d verts)", i, vi, len(verts))
			}
		}
		faces[i] = scene.Face{Verts: fv}
	}
	return scene.NewMesh(verts, faces), nil
}

func buildCurve(d *curveDoc) (*scene.Curve, error) {
	if len(d.Splines) == 0 {
		return nil, errors.New("curve needs at least one spline")
	}
	c := &scene.Curve{Splines: make([]scene.Spline, len(d.Splines))}
	for i, sd := range d.Splines {
		s, err := buildSpline(&sd)
		if err != nil {
			return nil, fmt.Errorf("spline %d: %w", i, err)
		}
		c.Splines[i] = s
	}
	return c, nil
}

func buildSpline(d *splineDoc) (scene.Spline, error) {
	var s scene.Spline
	if len(d.Points) > 0 && len(d.Bezier) > 0 {
		return s, errors.New("points and bezier are mutually exclusive")
	}

	kind := d.Kind
	if kind == "" {
		kind = "poly"
		if len(d.Bezier) > 0 {
			kind = "bezier"
		}
	}
	switch kind {
	case "poly":
		if len(d.Points) < 2 {
			return s, fmt.Errorf("poly spline needs at least 2 points, has %d", len(d.Points))
		}
		s.Kind = scene.SplinePoly
		s.Points = make([]math32.Vector3, len(d.Points))
		for i, p := range d.Points {
			s.Points[i] = vec3(p)
		}
	case "bezier":
		if len(d.Bezier) < 2 {
			return s, fmt.Errorf("bezier spline needs at least 2 knots, has %d", len(d.Bezier))
		}
		s.Kind = scene.SplineBezier
		s.Bezier = make([]scene.BezierPoint, len(d.Bezier))
		for i, b := range d.Bezier {
			bp := scene.BezierPoint{Co: vec3(b.Co)}
			// Omitted handles collapse onto the knot, which samples as
			// a straight run into the neighbours.
			bp.HandleLeft = bp.Co
			bp.HandleRight = bp.Co
			if b.HandleLeft != nil {
				bp.HandleLeft = vec3(*b.HandleLeft)
			}
			if b.HandleRight != nil {
				bp.HandleRight = vec3(*b.HandleRight)
			}
			s.Bezier[i] = bp
		}
	default:
		return s, fmt.Errorf("unknown spline kind %q (want poly or bezier)", d.Kind)
	}
	s.Cyclic = d.Cyclic
	s.Resolution = d.Resolution
	return s, nil
}

// applyBisect resolves the document's bisect block to an object name,
// synthesizing a plane object when the block gives a point and normal.
func applyBisect(sc *scene.Scene, d *bisectDoc) (string, error) {
	switch {
	case d.Object != "" && (d.Point != nil || d.Normal != nil):
		return "", errors.New("bisect: from_object and point/normal are mutually exclusive")

	case d.Object != "":
		if sc.Object(d.Object) == nil {
			return "", fmt.Errorf("bisect: unknown object %q", d.Object)
		}
		return d.Object, nil

	case d.Point != nil || d.Normal != nil:
		if d.Point == nil || d.Normal == nil {
			return "", errors.New("bisect: point and normal must both be set")
		}
		n := vec3(*d.Normal)
		if n.Length() == 0 {
			return "", errors.New("bisect: normal must be non-zero")
		}
		plane := scene.NewObject("bisect_plane", scene.NewPlane(2))
		var q math32.Quat
		q.SetFromUnitVectors(math32.Vec3(0, 0, 1), n.Normal())
		plane.Matrix.SetTransform(vec3(*d.Point), q, math32.Vec3(1, 1, 1))
		return sc.Add(plane).Name, nil

	default:
		return "", errors.New("bisect: needs from_object or point and normal")
	}
}

// loadOBJ exports a bare OBJ file as a scene of its groups with the
// default camera pulled back far enough to frame everything.
func loadOBJ(path string) (*File, error) {
	groups, err := parseOBJ(path)
	if err != nil {
		return nil, err
	}
	sc := scene.New(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	for _, g := range groups {
		o := scene.NewObject(g.name, g.mesh)
		o.Materials = g.materials
		sc.Add(o)
	}
	frameCamera(&sc.Camera, sc.Objects)
	return &File{Scene: sc}, nil
}

// frameCamera keeps the default view direction but moves the eye so
// the bounding sphere of the given objects fills the vertical field
// of view.
func frameCamera(c *scene.Camera, objs []*scene.Object) {
	var bb math32.Box3
	bb.SetEmpty()
	for _, o := range objs {
		bb.ExpandByPoints(o.WorldMesh().Verts)
	}
	if bb.IsEmpty() {
		return
	}
	center := bb.Center()
	radius := bb.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}

	dir := c.Pos.Sub(c.Target).Normal()
	dist := radius / math32.Sin(math32.DegToRad(c.FOV)/2)
	c.Target = center
	c.Pos = center.Add(dir.MulScalar(dist))
	c.OrthoScale = radius * 2
	if far := dist + radius*2; far > c.Far {
		c.Far = far
	}
	c.UpdateMatrix()
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}
