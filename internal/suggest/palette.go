package suggest

import (
	"sort"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
	"github.com/jmylchreest/cvdlint/internal/distinguish"
)

// PairResult collects every viable suggestion for one failing pair.
type PairResult struct {
	NameA, NameB string
	Type         cvd.Type

	// OriginalDeltaE is the simulated distance before any adjustment.
	OriginalDeltaE float64

	// TargetDeltaE is the distance the search aimed for.
	TargetDeltaE float64

	// Suggestions is ordered by expected improvement, best first, and
	// capped at Options.MaxSuggestions.
	Suggestions []Suggestion

	// Improvable is false when no axis produced an improvement within
	// the search bounds. An actionable state for callers, not an error.
	Improvable bool
}

// Pair runs all three axis searches for one colour pair. Axes run in a
// fixed priority order (lightness first: the most effective and safest
// adjustment), and the collected suggestions are re-ranked by expected
// improvement.
func Pair(a, b colour.Colour, nameA, nameB string, t cvd.Type, opts Options) PairResult {
	opts = opts.withDefaults()

	current := simulatedDeltaE(a, b, t)

	result := PairResult{
		NameA:          nameA,
		NameB:          nameB,
		Type:           t,
		OriginalDeltaE: current,
		TargetDeltaE:   opts.TargetDeltaE,
	}

	if current >= opts.TargetDeltaE {
		return result
	}

	if s, ok := Lightness(a, b, nameA, nameB, t, opts); ok {
		result.Suggestions = append(result.Suggestions, s)
	}
	if s, ok := Hue(a, b, nameA, nameB, t, opts); ok {
		result.Suggestions = append(result.Suggestions, s)
	}
	if s, ok := Chroma(a, b, nameA, nameB, t, opts); ok {
		result.Suggestions = append(result.Suggestions, s)
	}

	sort.SliceStable(result.Suggestions, func(i, j int) bool {
		return result.Suggestions[i].ExpectedImprovement > result.Suggestions[j].ExpectedImprovement
	})
	if len(result.Suggestions) > opts.MaxSuggestions {
		result.Suggestions = result.Suggestions[:opts.MaxSuggestions]
	}

	result.Improvable = len(result.Suggestions) > 0
	return result
}

// Palette maps Pair over every problematic result of a validation run
// and orders the pairs by their best suggestion's expected improvement,
// most promising first. Pairs with no suggestions rank as improvement 0.
func Palette(validation distinguish.PaletteResult, opts Options) []PairResult {
	opts = opts.withDefaults()

	results := make([]PairResult, 0, len(validation.Problematic))
	for _, problem := range validation.Problematic {
		results = append(results, Pair(
			problem.ColourA, problem.ColourB,
			problem.NameA, problem.NameB,
			problem.Type, opts,
		))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return bestImprovement(results[i]) > bestImprovement(results[j])
	})

	return results
}

// bestImprovement returns the pair's leading suggestion improvement, or
// 0 when the pair has none.
func bestImprovement(r PairResult) float64 {
	if len(r.Suggestions) == 0 {
		return 0
	}
	return r.Suggestions[0].ExpectedImprovement
}
