package sunburst

import (
	"image/color"
)

// palette holds hand-picked distinct colors for top-level categories.
var palette = []string{
	"#BB8FCE", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD",
	"#98D8C8", "#FF6B6B", "#F7DC6F", "#85C1E9", "#F8C471", "#82E0AA",
}

// DistinctColors returns n visually distinct colors. Beyond the palette
// size, colors repeat with progressively darker shades per cycle.
func DistinctColors(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		c := parseHex(palette[i%len(palette)])
		if cycle := i / len(palette); cycle > 0 {
			factor := 1.0 - 0.25*float64(cycle)
			if factor < 0.25 {
				factor = 0.25
			}
			c = scale(c, factor)
		}
		out[i] = c
	}
	return out
}

// Variations derives n shades of base, from a lightened tint up to the base
// color itself, for rings past the color-inheritance level.
func Variations(base color.RGBA, n int) []color.RGBA {
	if n <= 1 {
		return []color.RGBA{base}
	}

	out := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		factor := 0.3 + 0.7*float64(i)/float64(n-1)
		out[i] = color.RGBA{
			R: lighten(base.R, factor),
			G: lighten(base.G, factor),
			B: lighten(base.B, factor),
			A: 255,
		}
	}
	return out
}

// lighten blends a channel toward near-white as factor shrinks.
func lighten(c uint8, factor float64) uint8 {
	v := float64(c)*factor + (1-factor)*0.9*255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func scale(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: 255,
	}
}

func parseHex(s string) color.RGBA {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		r = hexByte(s[1], s[2])
		g = hexByte(s[3], s[4])
		b = hexByte(s[5], s[6])
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
