package choropleth

import (
	"fmt"
	"image/color"
	"math"

	"github.com/carbocation/pfx"
)

// rampBases give the saturated end of each named colour scheme; a ramp runs
// from near-white to its base.
var rampBases = map[string]color.RGBA{
	"blue":   {R: 0x08, G: 0x30, B: 0x6b, A: 255},
	"red":    {R: 0x67, G: 0x00, B: 0x0d, A: 255},
	"green":  {R: 0x00, G: 0x44, B: 0x1b, A: 255},
	"purple": {R: 0x3f, G: 0x00, B: 0x7d, A: 255},
	"orange": {R: 0x7f, G: 0x27, B: 0x04, A: 255},
	"pink":   {R: 0x7a, G: 0x01, B: 0x77, A: 255},
	"brown":  {R: 0x66, G: 0x41, B: 0x1e, A: 255},
	"grey":   {R: 0x20, G: 0x20, B: 0x20, A: 255},
	"teal":   {R: 0x08, G: 0x45, B: 0x81, A: 255},
	"yellow": {R: 0xbd, G: 0x00, B: 0x26, A: 255},
}

// ColourNames lists the accepted -colour values.
func ColourNames() []string {
	return []string{"blue", "red", "green", "purple", "orange", "pink", "brown", "grey", "teal", "yellow"}
}

// Ramp returns a function mapping t in [0,1] to a shade of the named
// colour, light to dark.
func Ramp(name string) (func(t float64) color.RGBA, error) {
	base, ok := rampBases[name]
	if !ok {
		return nil, pfx.Err(fmt.Errorf("unknown colour %q; choose one of %v", name, ColourNames()))
	}

	light := color.RGBA{R: 0xf7, G: 0xfb, B: 0xff, A: 255}
	return func(t float64) color.RGBA {
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		return color.RGBA{
			R: lerpChannel(light.R, base.R, t),
			G: lerpChannel(light.G, base.G, t),
			B: lerpChannel(light.B, base.B, t),
			A: 255,
		}
	}, nil
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// LogNorm scales a count onto [0,1] against the maximum count, both on a
// log10(x+1) scale so a wide count range stays distinguishable.
func LogNorm(count, maxCount int) float64 {
	if maxCount <= 0 || count <= 0 {
		return 0
	}
	return math.Log10(float64(count)+1) / math.Log10(float64(maxCount)+1)
}
