package colour

import "math"

// WeightedDeltaE computes a CIE-style perceptual distance between two
// colours in OKLCH, with the hue difference weighted by the chroma of
// both colours so that hue shifts between vivid colours count for more
// than the same shift between near-greys.
//
// The hue term folds the half-angle into the constant (sin(dh*pi/360));
// downstream numeric expectations depend on this exact folding.
// Symmetric under argument swap: the sign of dh flips with the operand
// order and the term is squared.
func WeightedDeltaE(a, b Colour) float64 {
	dl := 100 * (b.l - a.l)
	dc := 100 * (b.c - a.c)

	ah, _ := a.Hue()
	bh, _ := b.Hue()
	dh := hueDelta(bh - ah)

	dhTerm := 2 * math.Sqrt(a.c*b.c) * math.Sin(dh*math.Pi/360) * 100

	return math.Sqrt(dl*dl + dc*dc + dhTerm*dhTerm)
}

// SimpleDeltaE computes the Euclidean distance between two colours in a
// Cartesian projection of OKLCH (L*100, C*100*cos h, C*100*sin h).
// Strictly symmetric and satisfies the triangle inequality; this is the
// metric the distinguishability checks use.
func SimpleDeltaE(a, b Colour) float64 {
	al, ax, ay := cartesian(a)
	bl, bx, by := cartesian(b)

	dl := bl - al
	dx := bx - ax
	dy := by - ay

	return math.Sqrt(dl*dl + dx*dx + dy*dy)
}

// cartesian projects a colour into the scaled Lab-like space used by
// SimpleDeltaE. An absent hue is treated as 0, which is harmless since
// the chroma of an achromatic colour is 0.
func cartesian(c Colour) (l, x, y float64) {
	h, _ := c.Hue()
	rad := h * math.Pi / 180
	return c.l * 100, c.c * 100 * math.Cos(rad), c.c * 100 * math.Sin(rad)
}

// hueDelta normalizes a hue difference into (-180, 180], the shortest
// signed arc around the colour wheel.
func hueDelta(dh float64) float64 {
	for dh > 180 {
		dh -= 360
	}
	for dh <= -180 {
		dh += 360
	}
	return dh
}
