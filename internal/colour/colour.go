// Package colour provides the perceptual colour value type and distance
// metrics used by the CVD accessibility engine.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticChroma is the chroma below which a colour carries no
// perceptible hue and is treated as achromatic.
const achromaticChroma = 1e-5

// Colour is an immutable perceptual colour value backed by OKLCH.
// Lightness is in [0, 1], chroma is non-negative (practically below
// ~0.4 for sRGB colours), and hue is in degrees [0, 360) when present.
// Achromatic colours (greys) have no hue at all rather than a sentinel
// hue value.
type Colour struct {
	l, c, h float64
	hasHue  bool
}

// FromHex parses an sRGB hex string ("#rrggbb") into a Colour.
func FromHex(hex string) (Colour, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return fromLinear(r, g, b), nil
}

// MustHex parses an sRGB hex string and panics on failure. Intended for
// constants and tests where the input is known-good.
func MustHex(hex string) Colour {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a Colour from 8-bit sRGB channels.
func FromRGB(r, g, b uint8) Colour {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	lr, lg, lb := c.LinearRgb()
	return fromLinear(lr, lg, lb)
}

// FromOKLCH builds a Colour from an explicit OKLCH triple. Hue is given
// in degrees and wrapped into [0, 360). A chroma at or below the
// achromatic limit produces a grey with no hue.
func FromOKLCH(l, c, h float64) Colour {
	if c < achromaticChroma {
		return Colour{l: clamp01(l)}
	}
	return Colour{l: clamp01(l), c: c, h: wrapHue(h), hasHue: true}
}

// FromGrey builds an achromatic Colour with the given lightness.
func FromGrey(l float64) Colour {
	return Colour{l: clamp01(l)}
}

// Lightness returns the OKLCH lightness in [0, 1].
func (c Colour) Lightness() float64 { return c.l }

// Chroma returns the OKLCH chroma.
func (c Colour) Chroma() float64 { return c.c }

// Hue returns the OKLCH hue in degrees and whether the colour has one.
// Achromatic colours report false; callers that need a numeric hue for
// trigonometry should default it to 0 at the point of use.
func (c Colour) Hue() (float64, bool) {
	if !c.hasHue {
		return 0, false
	}
	return c.h, true
}

// OKLCH returns the full triple with an absent hue defaulted to 0.
func (c Colour) OKLCH() (l, ch, h float64) {
	return c.l, c.c, c.h
}

// RGB returns the 8-bit sRGB channels, gamut-clamped.
func (c Colour) RGB() (r, g, b uint8) {
	lr, lg, lb := c.linear()
	return colorful.LinearRgb(lr, lg, lb).Clamped().RGB255()
}

// Hex returns the colour as a lowercase "#rrggbb" string, gamut-clamped.
func (c Colour) Hex() string {
	lr, lg, lb := c.linear()
	return colorful.LinearRgb(lr, lg, lb).Clamped().Hex()
}

// String returns the hex representation.
func (c Colour) String() string { return c.Hex() }

// WithLightness returns a copy with the lightness replaced (clamped to
// [0, 1]). Chroma and hue are preserved.
func (c Colour) WithLightness(l float64) Colour {
	c.l = clamp01(l)
	return c
}

// WithChroma returns a copy with the chroma replaced. Dropping the
// chroma to the achromatic limit removes the hue; raising the chroma of
// a grey assigns it hue 0.
func (c Colour) WithChroma(ch float64) Colour {
	if ch < achromaticChroma {
		return Colour{l: c.l}
	}
	h := 0.0
	if c.hasHue {
		h = c.h
	}
	return Colour{l: c.l, c: ch, h: h, hasHue: true}
}

// WithHue returns a copy with the hue replaced (wrapped into [0, 360)).
// Achromatic colours are returned unchanged: a grey has no hue to
// rotate.
func (c Colour) WithHue(h float64) Colour {
	if !c.hasHue {
		return c
	}
	c.h = wrapHue(h)
	return c
}

// fromLinear converts linear-RGB channels to OKLCH via OKLab.
// Matrix coefficients are the published OKLab constants.
func fromLinear(r, g, b float64) Colour {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l3 := math.Cbrt(l)
	m3 := math.Cbrt(m)
	s3 := math.Cbrt(s)

	ll := 0.2104542553*l3 + 0.7936177850*m3 - 0.0040720468*s3
	la := 1.9779984951*l3 - 2.4285922050*m3 + 0.4505937099*s3
	lb := 0.0259040371*l3 + 0.7827717662*m3 - 0.8086757660*s3

	ch := math.Hypot(la, lb)
	if ch < achromaticChroma {
		return Colour{l: clamp01(ll)}
	}

	h := math.Atan2(lb, la) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return Colour{l: clamp01(ll), c: ch, h: h, hasHue: true}
}

// linear converts the OKLCH value back to linear-RGB channels. The
// result may fall outside [0, 1] for out-of-gamut colours; callers
// clamp at the 8-bit boundary.
func (c Colour) linear() (r, g, b float64) {
	h := 0.0
	if c.hasHue {
		h = c.h
	}
	rad := h * math.Pi / 180
	la := c.c * math.Cos(rad)
	lb := c.c * math.Sin(rad)

	l3 := c.l + 0.3963377774*la + 0.2158037573*lb
	m3 := c.l - 0.1055613458*la - 0.0638541728*lb
	s3 := c.l - 0.0894841775*la - 1.2914855480*lb

	l := l3 * l3 * l3
	m := m3 * m3 * m3
	s := s3 * s3 * s3

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

// clamp01 clamps a value to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// wrapHue normalizes a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
