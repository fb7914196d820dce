// SPDX-License-Identifier: MIT

// Package paint implements the color algebra behind the exporter's
// stylistic variation: HSV jitter, shading transforms, and the palette
// helpers. Colors are linear RGB in [0,1]; all hue/saturation/value
// manipulation goes through go-colorful's HSV conversions.
package paint

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple in [0,1] per channel.
type Color = colorful.Color

// DefaultJitter is the variation amount used when a caller does not supply
// one, matching the exporter's historical default.
const DefaultJitter = 0.25

// RGB builds a Color from components.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Jitter returns a copy of c with hue shifted uniformly by up to ±amount
// (wrapping), and saturation/value nudged by triangular noise scaled by 0.2
// and 0.4 respectively, clamped to [0,1].
func Jitter(c Color, amount float64, src *Source) Color {
	h, s, v := c.Hsv()
	hf := frac(h/360 + src.Float64()*2*amount - amount)
	s = clamp01(s + 0.2*src.Triangular(-amount, amount))
	v = clamp01(v + 0.4*src.Triangular(-amount, amount))
	return colorful.Hsv(hf*360, s, v)
}

// RGBString renders c as an SVG rgb(r,g,b) functional color with 0-255
// components.
func RGBString(c Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		int(math.Round(c.R*255)), int(math.Round(c.G*255)), int(math.Round(c.B*255)))
}

// HexString renders c as #rrggbb with truncating conversion.
func HexString(c Color) string {
	cast := func(v float64) int {
		n := int(255 * v)
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", cast(c.R), cast(c.G), cast(c.B))
}

// IndexColor maps a face position in [0,n) to the red-to-cyan index ramp.
func IndexColor(i, n int) Color {
	val := roundTo(float64(i)/float64(n), 4)
	return Color{R: 1 - val, G: val, B: val}
}

// frac is the positive fractional part, matching Python's x % 1.
func frac(x float64) float64 {
	return x - math.Floor(x)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
