package distinguish

import (
	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
)

// CheckPair evaluates how distinguishable two colours remain under one
// simulated deficiency.
func CheckPair(a, b colour.Colour, nameA, nameB string, t cvd.Type, opts Options) Result {
	opts = opts.withDefaults()

	normal := colour.SimpleDeltaE(a, b)

	simA := cvd.Simulate(a, t)
	simB := cvd.Simulate(b, t)
	simulated := colour.SimpleDeltaE(simA, simB)

	severity := SeverityError
	switch {
	case simulated >= opts.WarningThreshold:
		severity = SeverityOK
	case simulated >= opts.Threshold:
		severity = SeverityWarning
	}

	return Result{
		NameA:           nameA,
		NameB:           nameB,
		ColourA:         a,
		ColourB:         b,
		Type:            t,
		NormalDeltaE:    normal,
		SimulatedDeltaE: simulated,
		Distinguishable: simulated >= opts.Threshold,
		Severity:        severity,
	}
}

// CheckPalette evaluates every unordered pair of the given colours
// under every requested deficiency. Zero or one colours yield zero
// checks and a vacuous 100% pass rate.
func CheckPalette(colours []NamedColour, opts Options) PaletteResult {
	opts = opts.withDefaults()

	var pairs [][2]NamedColour
	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			pairs = append(pairs, [2]NamedColour{colours[i], colours[j]})
		}
	}

	return checkPairs(pairs, opts)
}

// CheckAdjacentShades evaluates only consecutive pairs of an ordered
// shade ramp. Non-neighbouring steps are allowed to blur together; only
// each step against the next needs to stay distinguishable.
func CheckAdjacentShades(shades []NamedColour, opts Options) PaletteResult {
	opts = opts.withDefaults()

	var pairs [][2]NamedColour
	for i := 0; i+1 < len(shades); i++ {
		pairs = append(pairs, [2]NamedColour{shades[i], shades[i+1]})
	}

	return checkPairs(pairs, opts)
}

// CheckBackgroundText evaluates the full cross product of background
// and text colours. Pair names are prefixed "bg:" and "text:" so the
// two sides stay unambiguous in reports.
func CheckBackgroundText(backgrounds, texts []NamedColour, opts Options) PaletteResult {
	opts = opts.withDefaults()

	var pairs [][2]NamedColour
	for _, bg := range backgrounds {
		for _, txt := range texts {
			pairs = append(pairs, [2]NamedColour{
				{Name: "bg:" + bg.Name, Colour: bg.Colour},
				{Name: "text:" + txt.Name, Colour: txt.Colour},
			})
		}
	}

	return checkPairs(pairs, opts)
}

// checkPairs runs the shared pair × type evaluation and aggregation.
// Iteration order is stable: pairs as supplied, types in canonical
// order, so "first N problems" reporting is reproducible.
func checkPairs(pairs [][2]NamedColour, opts Options) PaletteResult {
	failures := make(map[cvd.Type]int, len(opts.Types))
	for _, t := range opts.Types {
		failures[t] = 0
	}

	var results, problematic []Result
	for _, pair := range pairs {
		for _, t := range opts.Types {
			res := CheckPair(pair[0].Colour, pair[1].Colour, pair[0].Name, pair[1].Name, t, opts)
			results = append(results, res)
			if !res.Distinguishable {
				problematic = append(problematic, res)
				failures[t]++
			}
		}
	}

	passRate := 100.0
	if len(results) > 0 {
		passed := len(results) - len(problematic)
		passRate = 100.0 * float64(passed) / float64(len(results))
	}

	return PaletteResult{
		Results:        results,
		Problematic:    problematic,
		FailuresByType: failures,
		PassRate:       passRate,
	}
}
