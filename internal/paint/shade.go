// SPDX-License-Identifier: MIT

package paint

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shading transforms take the base fill color plus a facing ratio (the
// absolute normal·view product) or a normalized depth, and return the
// shaded color. Value near zero maps to black, so back light inverts the
// ratio while the others ride it directly.

// ShadeBackLight lights faces seen edge-on: value = 1-|dot| (floored just
// above black), saturation scaled by |dot|.
func ShadeBackLight(c Color, dot float64) Color {
	h, s, _ := c.Hsv()
	return colorful.Hsv(h, s*dot, math.Max(1-dot, 0.001))
}

// ShadeFrontLight lights faces seen head-on: value = |dot|, saturation
// scaled by 1-|dot|.
func ShadeFrontLight(c Color, dot float64) Color {
	h, s, _ := c.Hsv()
	return colorful.Hsv(h, s*(1-dot), dot)
}

// ShadeIndices darkens along the face index ramp t in [0,1].
func ShadeIndices(c Color, t float64) Color {
	h, _, _ := c.Hsv()
	return colorful.Hsv(h, 0.75-t/2, 1-t)
}

// ShadeColorRamp sets value to |dot| and rotates hue by the same amount.
func ShadeColorRamp(c Color, dot float64) Color {
	h, s, _ := c.Hsv()
	return colorful.Hsv(frac(h/360+dot)*360, s, dot)
}

// ShadeSoft sets value to |dot|.
func ShadeSoft(c Color, dot float64) Color {
	h, s, _ := c.Hsv()
	return colorful.Hsv(h, s, dot)
}

// ShadePosterize quantizes |dot| into steps levels before applying it as
// the value.
func ShadePosterize(c Color, dot float64, steps int) Color {
	h, s, _ := c.Hsv()
	n := math.Round(dot * float64(steps))
	return colorful.Hsv(h, s, n/float64(steps))
}

// ShadeDepth applies the normalized camera distance t to both value and
// saturation.
func ShadeDepth(c Color, t float64) Color {
	h, s, _ := c.Hsv()
	return colorful.Hsv(h, t*s, t)
}

// ShadeBackfaces gives front-facing geometry value 0.75 and backfaces 0.25.
func ShadeBackfaces(c Color, frontFacing bool) Color {
	h, s, _ := c.Hsv()
	v := 0.25
	if frontFacing {
		v = 0.75
	}
	return colorful.Hsv(h, s, v)
}
