// SPDX-License-Identifier: MIT

// Package style defines the export settings: every knob the renderer
// understands, with defaults and validation. Settings are plain data so
// they round-trip cleanly through YAML config files.
package style

import (
	"fmt"

	"github.com/Nutek/blender-export-svg/internal/paint"
)

// RGB is a color triple in [0,1], written in YAML as a three-element list.
type RGB [3]float64

// Color converts to the paint color type.
func (c RGB) Color() paint.Color { return paint.RGB(c[0], c[1], c[2]) }

// Palette holds the six base colors the styling algorithms draw from.
type Palette struct {
	Objects  RGB `yaml:"objects"`
	Faces    RGB `yaml:"faces"`
	Edges    RGB `yaml:"edges"`
	Vertices RGB `yaml:"vertices"`
	Paths    RGB `yaml:"paths"`
	Strokes  RGB `yaml:"strokes"`
}

// Slots returns the five palette entries random palette modes pick from.
func (p Palette) Slots() [5]RGB {
	return [5]RGB{p.Objects, p.Faces, p.Edges, p.Vertices, p.Paths}
}

// Settings is the complete export configuration.
type Settings struct {
	// Document geometry.
	Scale      float64 `yaml:"scale"`
	OffsetX    int     `yaml:"offset_x"`
	OffsetY    int     `yaml:"offset_y"`
	FixedScale bool    `yaml:"fixed_scale"` // orthographic views only: 1 unit = 100px
	Precision  int     `yaml:"precision"`

	// Styling algorithms.
	Color  ColorMode  `yaml:"color"`
	Shade  ShadeMode  `yaml:"shade"`
	Edge   EdgeMode   `yaml:"edge"`
	Stroke StrokeMode `yaml:"stroke"`
	Vertex VertexMode `yaml:"vertex"`
	Effect EffectMode `yaml:"effect"`

	Palette    Palette `yaml:"palette"`
	ColorNoise float64 `yaml:"color_noise"`
	Opacity    float64 `yaml:"opacity"`

	// Mesh simplification and admission filters.
	DissolveAngle float64 `yaml:"dissolve_angle"` // degrees; 0 disables
	BisectObject  string  `yaml:"bisect_object"`  // scene object whose XY plane cuts all meshes
	MinArea       float64 `yaml:"min_area"`
	MinLength     float64 `yaml:"min_length"`
	FacingOnly    bool    `yaml:"facing_only"`
	SelectedOnly  bool    `yaml:"selected_only"`
	OrderObjects  bool    `yaml:"order_objects"`
	JoinObjects   bool    `yaml:"join_objects"`
	OccludeMarks  bool    `yaml:"occlude_marks"`
	BoundaryOnly  bool    `yaml:"boundary_only"`

	// Face edges.
	EdgeWidth float64  `yaml:"edge_width"`
	EdgeJoin  LineJoin `yaml:"edge_join"`

	// Hatch pattern fills.
	PatternScale       float64 `yaml:"pattern_scale"`
	PatternTransparent bool    `yaml:"pattern_transparent"`
	PosterizeSteps     int     `yaml:"posterize_steps"`

	// Extra strokes.
	StrokeWidth    float64 `yaml:"stroke_width"`
	StrokeAngle    float64 `yaml:"stroke_angle"` // degrees
	StrokeContrast float64 `yaml:"stroke_contrast"`
	ExtendFactor   float64 `yaml:"extend_factor"`
	ExtendNoise    float64 `yaml:"extend_noise"`
	CurveNoise     float64 `yaml:"curve_noise"`

	// Vertex marks.
	VertexDiameter float64 `yaml:"vertex_diameter"`
	VertexAxis     Axis    `yaml:"vertex_axis"`
	VertexSpace    Space   `yaml:"vertex_space"`
	CloneMarks     bool    `yaml:"clone_marks"`

	// Effects.
	ExplodeFactor float64 `yaml:"explode_factor"`
	DistortFactor float64 `yaml:"distort_factor"`
	ShapeSize     float64 `yaml:"shape_size"`

	// Connect and numbering paths.
	ConnectVertices bool     `yaml:"connect_vertices"`
	NumberVertices  bool     `yaml:"number_vertices"`
	Path            PathKind `yaml:"path"`
	Step            int      `yaml:"step"`
	StepVariation   int      `yaml:"step_variation"`
	FontSize        int      `yaml:"font_size"`

	// Object-level annotations.
	Origins        bool    `yaml:"origins"`
	ObjectNames    bool    `yaml:"object_names"`
	OriginDiameter float64 `yaml:"origin_diameter"`
	SizeX          bool    `yaml:"size_x"`
	SizeY          bool    `yaml:"size_y"`
	SizeZ          bool    `yaml:"size_z"`
	ConnectObjects bool    `yaml:"connect_objects"`
	Hierarchy      bool    `yaml:"hierarchy"`
	BezierOverlay  bool    `yaml:"bezier_overlay"`

	// Randomness.
	FixedSeed bool  `yaml:"fixed_seed"`
	Seed      int64 `yaml:"seed"`
}

// Defaults returns the settings a fresh export starts from.
func Defaults() Settings {
	return Settings{
		Scale:     1,
		Precision: 4,

		Color:  ColorObject,
		Shade:  ShadeSoft,
		Edge:   EdgeMatchFill,
		Stroke: StrokeNone,
		Vertex: VertexNone,
		Effect: EffectNone,

		Palette: Palette{
			Objects:  RGB{0.8, 0.4, 0.1},
			Faces:    RGB{1, 0.9, 0.5},
			Edges:    RGB{0.2, 0.1, 0},
			Vertices: RGB{0.8, 0.1, 0.2},
			Paths:    RGB{0.1, 0.2, 0.3},
			Strokes:  RGB{0, 0, 0},
		},
		ColorNoise: 0.25,
		Opacity:    0.9,

		DissolveAngle: 5,
		BisectObject:  "bisect_plane",
		MinArea:       0.0001,
		MinLength:     0.025,
		FacingOnly:    true,
		OrderObjects:  true,

		EdgeWidth: 1,
		EdgeJoin:  JoinMiter,

		PatternScale:   0.75,
		PosterizeSteps: 3,

		StrokeWidth:    1.5,
		StrokeAngle:    15,
		StrokeContrast: 0.5,
		ExtendFactor:   0.05,
		ExtendNoise:    0.05,
		CurveNoise:     0.05,

		VertexDiameter: 10,
		VertexAxis:     AxisZ,
		VertexSpace:    SpaceLocal,

		ExplodeFactor: 5,
		DistortFactor: 5,
		ShapeSize:     5,

		Path:          PathLinear,
		Step:          4,
		StepVariation: 4,
		FontSize:      9,

		OriginDiameter: 10,
		SizeY:          true,

		Seed: 5555,
	}
}

type rangeCheck struct {
	name     string
	value    float64
	min, max float64
}

// Validate reports the first out-of-range or unknown-enum setting.
func (s *Settings) Validate() error {
	enums := []error{
		oneOf(s.Color, ColorNone, ColorObject, ColorObjectPalette, ColorFaces,
			ColorFacePalette, ColorMaterial, ColorIndices, ColorPattern),
		oneOf(s.Shade, ShadeNone, ShadeBackLight, ShadeFrontLight, ShadeIndices,
			ShadeDepth, ShadeSoft, ShadePosterize, ShadeColorRamp, ShadeBackfaces),
		oneOf(s.Edge, EdgeNone, EdgeLinear, EdgeDashed, EdgeMatchFill),
		oneOf(s.Stroke, StrokeNone, StrokeExtend, StrokeCurved, StrokeContour, StrokeBrush),
		oneOf(s.Vertex, VertexNone, VertexConstant, VertexNormalIn, VertexNormalOut, VertexAlongAxis),
		oneOf(s.Effect, EffectNone, EffectExplode, EffectSquares, EffectCircles),
		oneOf(s.Path, PathLinear, PathQuadratic, PathSmoothQuadratic, PathCubic, PathSmoothCubic),
		oneOf(s.EdgeJoin, JoinMiter, JoinRound, JoinBevel),
		oneOf(s.VertexAxis, AxisX, AxisY, AxisZ),
		oneOf(s.VertexSpace, SpaceLocal, SpaceGlobal),
	}
	names := []string{"color", "shade", "edge", "stroke", "vertex", "effect",
		"path", "edge_join", "vertex_axis", "vertex_space"}
	for i, err := range enums {
		if err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
	}

	ranges := []rangeCheck{
		{"scale", s.Scale, 0.01, 10},
		{"offset_x", float64(s.OffsetX), -10000, 10000},
		{"offset_y", float64(s.OffsetY), -10000, 10000},
		{"precision", float64(s.Precision), 1, 8},
		{"color_noise", s.ColorNoise, 0, 5},
		{"opacity", s.Opacity, 0, 1},
		{"dissolve_angle", s.DissolveAngle, 0, 45},
		{"min_area", s.MinArea, 0, 5},
		{"min_length", s.MinLength, 0, 15},
		{"edge_width", s.EdgeWidth, 0, 50},
		{"pattern_scale", s.PatternScale, 0.25, 5},
		{"posterize_steps", float64(s.PosterizeSteps), 2, 8},
		{"stroke_width", s.StrokeWidth, 0, 10},
		{"stroke_angle", s.StrokeAngle, 0, 135},
		{"stroke_contrast", s.StrokeContrast, 0, 1},
		{"extend_factor", s.ExtendFactor, 0, 0.5},
		{"extend_noise", s.ExtendNoise, 0, 0.5},
		{"curve_noise", s.CurveNoise, 0, 0.5},
		{"vertex_diameter", s.VertexDiameter, 0.1, 1000},
		{"explode_factor", s.ExplodeFactor, 0, 90},
		{"distort_factor", s.DistortFactor, 0, 50},
		{"shape_size", s.ShapeSize, 1, 50},
		{"step", float64(s.Step), 1, 250},
		{"step_variation", float64(s.StepVariation), 0, 250},
		{"font_size", float64(s.FontSize), 4, 96},
		{"origin_diameter", s.OriginDiameter, 0.1, 1000},
		{"seed", float64(s.Seed), 0, 9999},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return fmt.Errorf("%s: %v out of range [%v, %v]", r.name, r.value, r.min, r.max)
		}
	}

	for _, c := range []struct {
		name string
		rgb  RGB
	}{
		{"palette.objects", s.Palette.Objects},
		{"palette.faces", s.Palette.Faces},
		{"palette.edges", s.Palette.Edges},
		{"palette.vertices", s.Palette.Vertices},
		{"palette.paths", s.Palette.Paths},
		{"palette.strokes", s.Palette.Strokes},
	} {
		for _, v := range c.rgb {
			if v < 0 || v > 1 {
				return fmt.Errorf("%s: component %v out of range [0, 1]", c.name, v)
			}
		}
	}
	return nil
}
