package cvd

import (
	"math"

	"github.com/jmylchreest/cvdlint/internal/colour"
)

// dichromacy holds the Viénot linear-RGB transformation matrices for
// the three dichromatic deficiencies, indexed by Type. The coefficients
// are the published constants; qualitative behaviour (pure red shifting
// towards yellow under protanopia, for example) depends on them.
var dichromacy = map[Type][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
}

// Simulate returns the colour as perceived under the given deficiency.
// It is deterministic and total: any finite colour in, a valid colour
// out. The transform runs in linear RGB -- sRGB gamma is undone, the
// per-type matrix (or BT.709 luminance for achromatopsia) is applied,
// and the result is re-encoded and clamped to 8-bit channels.
func Simulate(c colour.Colour, t Type) colour.Colour {
	r8, g8, b8 := c.RGB()

	r := srgbToLinear(float64(r8) / 255.0)
	g := srgbToLinear(float64(g8) / 255.0)
	b := srgbToLinear(float64(b8) / 255.0)

	var sr, sg, sb float64
	if t == Achromatopsia {
		// ITU-R BT.709 relative luminance.
		y := 0.2126*r + 0.7152*g + 0.0722*b
		sr, sg, sb = y, y, y
	} else {
		m := dichromacy[t]
		sr = m[0][0]*r + m[0][1]*g + m[0][2]*b
		sg = m[1][0]*r + m[1][1]*g + m[1][2]*b
		sb = m[2][0]*r + m[2][1]*g + m[2][2]*b
	}

	return colour.FromRGB(toChannel(sr), toChannel(sg), toChannel(sb))
}

// srgbToLinear undoes the sRGB transfer curve for one channel in [0, 1].
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB re-applies the sRGB transfer curve for one channel.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// toChannel encodes a linear channel to a clamped 8-bit sRGB value.
// Matrix overshoot can push channels slightly out of range, so the
// clamp happens after gamma encoding.
func toChannel(v float64) uint8 {
	s := math.Round(linearToSRGB(v) * 255.0)
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
