package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
	"github.com/jmylchreest/cvdlint/internal/distinguish"
	"github.com/jmylchreest/cvdlint/internal/score"
)

// parseColourSpecs converts repeatable "name=#hex" flag values into
// named colours, preserving flag order. Names must be unique.
func parseColourSpecs(specs []string) ([]distinguish.NamedColour, error) {
	colours := make([]distinguish.NamedColour, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, spec := range specs {
		name, hex, found := strings.Cut(spec, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid colour format %q: expected 'name=#hex'", spec)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate colour name %q", name)
		}
		seen[name] = true

		c, err := colour.FromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("colour %q: %w", name, err)
		}
		colours = append(colours, distinguish.NamedColour{Name: name, Colour: c})
	}

	return colours, nil
}

// parseTypes converts CVD type names into types, keeping flag order.
// An empty list means all types.
func parseTypes(names []string) ([]cvd.Type, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make([]cvd.Type, 0, len(names))
	for _, name := range names {
		t, err := cvd.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// parseWeights converts repeatable "type=weight" flag values into a
// weight override map.
func parseWeights(specs []string) (score.Weights, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	weights := make(score.Weights, len(specs))
	for _, spec := range specs {
		name, value, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight format %q: expected 'type=weight'", spec)
		}
		t, err := cvd.ParseType(name)
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid weight %q for %s: must be a non-negative number", value, name)
		}
		weights[t] = w
	}
	return weights, nil
}
