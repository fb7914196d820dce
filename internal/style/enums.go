// SPDX-License-Identifier: MIT

package style

import "fmt"

// ColorMode selects the base fill color per face.
type ColorMode string

const (
	ColorNone          ColorMode = "none"
	ColorObject        ColorMode = "object"
	ColorObjectPalette ColorMode = "object_palette"
	ColorFaces         ColorMode = "faces"
	ColorFacePalette   ColorMode = "face_palette"
	ColorMaterial      ColorMode = "material"
	ColorIndices       ColorMode = "indices"
	ColorPattern       ColorMode = "pattern"
)

// ShadeMode modifies the fill color per face.
type ShadeMode string

const (
	ShadeNone       ShadeMode = "none"
	ShadeBackLight  ShadeMode = "back_light"
	ShadeFrontLight ShadeMode = "front_light"
	ShadeIndices    ShadeMode = "indices"
	ShadeDepth      ShadeMode = "depth"
	ShadeSoft       ShadeMode = "soft"
	ShadePosterize  ShadeMode = "posterize"
	ShadeColorRamp  ShadeMode = "color_ramp"
	ShadeBackfaces  ShadeMode = "backfaces"
)

// EdgeMode styles the outline of each face polygon.
type EdgeMode string

const (
	EdgeNone      EdgeMode = "none"
	EdgeLinear    EdgeMode = "linear"
	EdgeDashed    EdgeMode = "dashed"
	EdgeMatchFill EdgeMode = "match_fill"
)

// StrokeMode draws mesh edges as a separate stroke group.
type StrokeMode string

const (
	StrokeNone    StrokeMode = "none"
	StrokeExtend  StrokeMode = "extend"
	StrokeCurved  StrokeMode = "curved"
	StrokeContour StrokeMode = "contour"
	StrokeBrush   StrokeMode = "brush"
)

// VertexMode draws marks on mesh vertices.
type VertexMode string

const (
	VertexNone      VertexMode = "none"
	VertexConstant  VertexMode = "constant"
	VertexNormalIn  VertexMode = "normal_in"
	VertexNormalOut VertexMode = "normal_out"
	VertexAlongAxis VertexMode = "axis"
)

// EffectMode distorts or replaces face geometry.
type EffectMode string

const (
	EffectNone    EffectMode = "none"
	EffectExplode EffectMode = "explode"
	EffectSquares EffectMode = "squares"
	EffectCircles EffectMode = "circles"
)

// PathKind is the SVG path command used by connect paths.
type PathKind string

const (
	PathLinear          PathKind = "L"
	PathQuadratic       PathKind = "Q"
	PathSmoothQuadratic PathKind = "T"
	PathCubic           PathKind = "C"
	PathSmoothCubic     PathKind = "S"
)

// LineJoin is the stroke-linejoin value for face edges.
type LineJoin string

const (
	JoinMiter LineJoin = "miter"
	JoinRound LineJoin = "round"
	JoinBevel LineJoin = "bevel"
)

// Axis selects a coordinate axis.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Index maps the axis to its vector component.
func (a Axis) Index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	default:
		return 2
	}
}

// Space selects the reference frame for axis measurements.
type Space string

const (
	SpaceLocal  Space = "local"
	SpaceGlobal Space = "global"
)

func oneOf[T ~string](v T, valid ...T) error {
	for _, c := range valid {
		if v == c {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q (valid: %v)", string(v), valid)
}
