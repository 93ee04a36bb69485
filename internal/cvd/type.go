// Package cvd simulates colour-vision deficiencies. It maps colours
// through published dichromacy transforms in linear RGB so the rest of
// the engine can measure how distinguishable a palette remains for
// affected viewers.
package cvd

import "fmt"

// Type identifies a class of colour-vision deficiency.
type Type int

const (
	// Protanopia is the absence of red-sensitive (L) cones.
	Protanopia Type = iota
	// Deuteranopia is the absence of green-sensitive (M) cones.
	Deuteranopia
	// Tritanopia is the absence of blue-sensitive (S) cones.
	Tritanopia
	// Achromatopsia is total colour blindness; only luminance remains.
	Achromatopsia
)

// Types returns all CVD types in their canonical iteration order.
// Callers that aggregate per-type results rely on this order being
// stable.
func Types() []Type {
	return []Type{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case Protanopia:
		return "protanopia"
	case Deuteranopia:
		return "deuteranopia"
	case Tritanopia:
		return "tritanopia"
	case Achromatopsia:
		return "achromatopsia"
	default:
		return fmt.Sprintf("cvd.Type(%d)", int(t))
	}
}

// ParseType converts a type name into a Type.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown CVD type %q (valid: protanopia, deuteranopia, tritanopia, achromatopsia)", name)
}
