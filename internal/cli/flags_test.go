package cli

import (
	"testing"

	"github.com/jmylchreest/cvdlint/internal/cvd"
)

func TestParseColourSpecs(t *testing.T) {
	colours, err := parseColourSpecs([]string{
		"background=#1e1e2e",
		"accent=#f38ba8",
	})
	if err != nil {
		t.Fatalf("parseColourSpecs error: %v", err)
	}
	if len(colours) != 2 {
		t.Fatalf("parsed %d colours, want 2", len(colours))
	}
	if colours[0].Name != "background" || colours[1].Name != "accent" {
		t.Errorf("names = (%q, %q), flag order not preserved", colours[0].Name, colours[1].Name)
	}
	if colours[0].Colour.Hex() != "#1e1e2e" {
		t.Errorf("background parsed as %s", colours[0].Colour.Hex())
	}
}

func TestParseColourSpecsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
	}{
		{name: "missing separator", specs: []string{"background"}},
		{name: "empty name", specs: []string{"=#ffffff"}},
		{name: "bad hex", specs: []string{"background=notahex"}},
		{name: "duplicate name", specs: []string{"a=#ffffff", "a=#000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseColourSpecs(tt.specs); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseTypes(t *testing.T) {
	types, err := parseTypes([]string{"deuteranopia", "protanopia"})
	if err != nil {
		t.Fatalf("parseTypes error: %v", err)
	}
	if len(types) != 2 || types[0] != cvd.Deuteranopia || types[1] != cvd.Protanopia {
		t.Errorf("types = %v", types)
	}

	if _, err := parseTypes([]string{"colourblind"}); err == nil {
		t.Error("expected error for unknown type")
	}

	empty, err := parseTypes(nil)
	if err != nil || empty != nil {
		t.Errorf("parseTypes(nil) = (%v, %v), want (nil, nil)", empty, err)
	}
}

func TestParseWeights(t *testing.T) {
	weights, err := parseWeights([]string{"protanopia=0.5", "achromatopsia=0"})
	if err != nil {
		t.Fatalf("parseWeights error: %v", err)
	}
	if weights[cvd.Protanopia] != 0.5 {
		t.Errorf("protanopia weight = %f", weights[cvd.Protanopia])
	}
	if weights[cvd.Achromatopsia] != 0 {
		t.Errorf("achromatopsia weight = %f", weights[cvd.Achromatopsia])
	}

	for _, specs := range [][]string{
		{"protanopia"},
		{"unknown=1"},
		{"protanopia=-1"},
		{"protanopia=abc"},
	} {
		if _, err := parseWeights(specs); err == nil {
			t.Errorf("parseWeights(%v) expected error", specs)
		}
	}
}
