// SPDX-License-Identifier: MIT

package paint

import "github.com/lucasb-eyer/go-colorful"

// IndexHue spreads sequential indices over the hue circle by reversing the
// low bits, so neighboring indices land far apart. The result is in [0,1).
func IndexHue(idx, bits int) float64 {
	reverse := 0
	for left := bits; left > 0; left-- {
		reverse = reverse<<1 | idx&0x1
		idx >>= 1
	}
	return float64(reverse) / float64(int(1)<<bits)
}

// ByIndex returns a well-separated color for an index at the given
// saturation and value.
func ByIndex(idx int, s, v float64) Color {
	return colorful.Hsv(IndexHue(idx, 8)*360, s, v)
}

// DistinctHex returns the #rrggbb form of ByIndex with the standard
// saturation 0.85 and value 0.8.
func DistinctHex(idx int) string {
	return HexString(ByIndex(idx, 0.85, 0.8))
}
