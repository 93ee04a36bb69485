// Package score condenses per-pair distinguishability results into a
// single weighted accessibility score and letter grade.
package score

import (
	"math"

	"github.com/jmylchreest/cvdlint/internal/cvd"
	"github.com/jmylchreest/cvdlint/internal/distinguish"
)

// Grade is a letter grade derived from the overall score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// gradeDescriptions keys the human-readable summary by grade, not by
// score, so two palettes with the same grade read the same.
var gradeDescriptions = map[Grade]string{
	GradeA: "Excellent: the palette stays distinguishable for virtually all viewers.",
	GradeB: "Good: most colour pairs survive colour-vision deficiencies.",
	GradeC: "Fair: several pairs blur together for affected viewers.",
	GradeD: "Poor: many pairs are hard to tell apart; adjustments recommended.",
	GradeF: "Failing: the palette is largely indistinguishable for affected viewers.",
}

// Description returns the fixed human-readable summary for the grade.
func (g Grade) Description() string { return gradeDescriptions[g] }

// Weights maps each CVD type to its contribution to the overall score.
type Weights map[cvd.Type]float64

// DefaultWeights reflects approximate population prevalence of each
// deficiency.
func DefaultWeights() Weights {
	return Weights{
		cvd.Protanopia:    0.30,
		cvd.Deuteranopia:  0.35,
		cvd.Tritanopia:    0.20,
		cvd.Achromatopsia: 0.15,
	}
}

// Options tunes a scoring run.
type Options struct {
	// Weights overrides the default per-type weights key-by-key;
	// missing keys keep their defaults. A weight of 0 excludes a type
	// from the aggregate while its sub-score is still computed for
	// display.
	Weights Weights

	// Distinguish is passed through to the palette validation.
	Distinguish distinguish.Options
}

// Result is the aggregated accessibility score for one palette.
type Result struct {
	// Overall is the weighted score in [0, 100], rounded to one
	// decimal place.
	Overall float64

	// SubScores holds the per-type pass percentage, rounded to one
	// decimal place.
	SubScores map[cvd.Type]float64

	// Weights records the merged weights the aggregate used.
	Weights Weights

	Grade Grade

	// Palette carries the underlying validation run for reporting.
	Palette distinguish.PaletteResult
}

// Score validates the palette and aggregates per-type pass rates into a
// weighted overall score. Fewer than two colours is a perfect result:
// there is nothing to confuse.
func Score(colours []distinguish.NamedColour, opts Options) Result {
	weights := mergeWeights(opts.Weights)
	types := opts.Distinguish.Types
	if len(types) == 0 {
		types = cvd.Types()
	}

	if len(colours) < 2 {
		subs := make(map[cvd.Type]float64, len(types))
		for _, t := range types {
			subs[t] = 100.0
		}
		return Result{
			Overall:   100.0,
			SubScores: subs,
			Weights:   weights,
			Grade:     GradeA,
			Palette:   distinguish.PaletteResult{FailuresByType: map[cvd.Type]int{}, PassRate: 100.0},
		}
	}

	palette := distinguish.CheckPalette(colours, opts.Distinguish)

	passed := make(map[cvd.Type]int, len(types))
	total := make(map[cvd.Type]int, len(types))
	for _, res := range palette.Results {
		total[res.Type]++
		if res.Distinguishable {
			passed[res.Type]++
		}
	}

	subs := make(map[cvd.Type]float64, len(types))
	var weightedSum, weightSum float64
	for _, t := range types {
		sub := 100.0
		if total[t] > 0 {
			sub = 100.0 * float64(passed[t]) / float64(total[t])
		}
		subs[t] = round1(sub)

		w := weights[t]
		weightedSum += sub * w
		weightSum += w
	}

	overall := 100.0
	if weightSum > 0 {
		overall = weightedSum / weightSum
	}
	overall = round1(overall)

	return Result{
		Overall:   overall,
		SubScores: subs,
		Weights:   weights,
		Grade:     gradeFor(overall),
		Palette:   palette,
	}
}

// mergeWeights overlays caller weights on the defaults key-by-key.
func mergeWeights(overrides Weights) Weights {
	merged := DefaultWeights()
	for t, w := range overrides {
		merged[t] = w
	}
	return merged
}

// gradeFor maps an overall score to its letter grade.
func gradeFor(overall float64) Grade {
	switch {
	case overall >= 90:
		return GradeA
	case overall >= 75:
		return GradeB
	case overall >= 60:
		return GradeC
	case overall >= 40:
		return GradeD
	default:
		return GradeF
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
