// Package suggest searches for minimal colour adjustments that restore
// distinguishability for a failing pair. Each axis (lightness, hue,
// chroma) is explored with a bounded two-directional grid search.
package suggest

import (
	"fmt"
	"math"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
)

// DistinguishabilityTarget is the module-level delta-E a suggested
// adjustment aims for. Deliberately independent of the validator's
// pass threshold: a fix should land comfortably clear of the failure
// band, not just across it.
const DistinguishabilityTarget = 5.0

const (
	lightnessStep = 0.02
	hueStep       = 5.0
	chromaStep    = 0.02

	maxChromaValue = 0.4
)

// Axis identifies which OKLCH component a suggestion adjusts.
type Axis int

const (
	AxisLightness Axis = iota
	AxisHue
	AxisChroma
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisLightness:
		return "lightness"
	case AxisHue:
		return "hue"
	case AxisChroma:
		return "chroma"
	default:
		return fmt.Sprintf("suggest.Axis(%d)", int(a))
	}
}

// Options bounds the search. The zero value means "use defaults".
type Options struct {
	// TargetDeltaE is the simulated distance a suggestion aims for.
	// Defaults to DistinguishabilityTarget.
	TargetDeltaE float64

	// MaxLightness caps the lightness adjustment (default 0.2).
	MaxLightness float64

	// MaxHue caps the hue rotation in degrees (default 30).
	MaxHue float64

	// MaxChroma caps the chroma adjustment (default 0.1).
	MaxChroma float64

	// MaxSuggestions caps how many suggestions a pair keeps (default 3).
	MaxSuggestions int
}

// withDefaults merges the options over the package defaults.
func (o Options) withDefaults() Options {
	if o.TargetDeltaE <= 0 {
		o.TargetDeltaE = DistinguishabilityTarget
	}
	if o.MaxLightness <= 0 {
		o.MaxLightness = 0.2
	}
	if o.MaxHue <= 0 {
		o.MaxHue = 30
	}
	if o.MaxChroma <= 0 {
		o.MaxChroma = 0.1
	}
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = 3
	}
	return o
}

// Suggestion is one proposed edit to a single colour of a failing pair.
type Suggestion struct {
	Axis Axis

	// TargetName identifies which of the pair's colours the edit
	// applies to.
	TargetName string

	Original  colour.Colour
	Suggested colour.Colour

	// Amount is the signed adjustment along the axis (lightness and
	// chroma in OKLCH units, hue in degrees).
	Amount float64

	// Direction is a human-facing label for the adjustment.
	Direction string

	// ExpectedImprovement is the simulated delta-E gained over the
	// unmodified pair.
	ExpectedImprovement float64

	// NewDeltaE is the simulated delta-E of the adjusted pair.
	NewDeltaE float64
}

// candidate tracks the best colour found during one axis search.
type candidate struct {
	colour colour.Colour
	amount float64
	deltaE float64
}

// simulatedDeltaE measures the pair distance after CVD simulation.
func simulatedDeltaE(a, b colour.Colour, t cvd.Type) float64 {
	return colour.SimpleDeltaE(cvd.Simulate(a, t), cvd.Simulate(b, t))
}

// search steps through the adjustment grid in both directions, keeping
// the highest simulated delta-E seen and exiting early once the target
// is reached. Returns false when no candidate was evaluated.
func search(fixed, target colour.Colour, t cvd.Type, targetDeltaE, step, maxAdjust float64,
	apply func(colour.Colour, float64) colour.Colour) (candidate, bool) {

	fixedSim := cvd.Simulate(fixed, t)

	var best candidate
	found := false

	for _, direction := range []float64{1, -1} {
		for amount := step; amount <= maxAdjust+1e-9; amount += step {
			signed := direction * amount
			cand := apply(target, signed)
			deltaE := colour.SimpleDeltaE(cvd.Simulate(cand, t), fixedSim)

			if !found || deltaE > best.deltaE {
				best = candidate{colour: cand, amount: signed, deltaE: deltaE}
				found = true
			}
			// Good enough: stop searching both directions.
			if deltaE >= targetDeltaE {
				return best, true
			}
		}
	}

	return best, found
}

// Lightness searches for a lightness adjustment that separates the
// pair. The lighter colour is perturbed; whether it ends up brighter or
// darker is decided by the search direction, not the role choice.
func Lightness(a, b colour.Colour, nameA, nameB string, t cvd.Type, opts Options) (Suggestion, bool) {
	opts = opts.withDefaults()

	current := simulatedDeltaE(a, b, t)
	if current >= opts.TargetDeltaE {
		return Suggestion{}, false
	}

	target, fixed, targetName := a, b, nameA
	if b.Lightness() > a.Lightness() {
		target, fixed, targetName = b, a, nameB
	}

	best, ok := search(fixed, target, t, opts.TargetDeltaE, lightnessStep, opts.MaxLightness,
		func(c colour.Colour, amount float64) colour.Colour {
			return c.WithLightness(c.Lightness() + amount)
		})
	if !ok || best.deltaE <= current {
		return Suggestion{}, false
	}

	direction := "brighter"
	if best.amount < 0 {
		direction = "darker"
	}

	return Suggestion{
		Axis:                AxisLightness,
		TargetName:          targetName,
		Original:            target,
		Suggested:           best.colour,
		Amount:              best.amount,
		Direction:           direction,
		ExpectedImprovement: best.deltaE - current,
		NewDeltaE:           best.deltaE,
	}, true
}

// Hue searches for a hue rotation that separates the pair. The
// lower-chroma colour is perturbed; muted colours respond more visibly
// to hue shifts.
func Hue(a, b colour.Colour, nameA, nameB string, t cvd.Type, opts Options) (Suggestion, bool) {
	opts = opts.withDefaults()

	current := simulatedDeltaE(a, b, t)
	if current >= opts.TargetDeltaE {
		return Suggestion{}, false
	}

	target, fixed, targetName := a, b, nameA
	if b.Chroma() < a.Chroma() {
		target, fixed, targetName = b, a, nameB
	}

	best, ok := search(fixed, target, t, opts.TargetDeltaE, hueStep, opts.MaxHue,
		func(c colour.Colour, amount float64) colour.Colour {
			h, _ := c.Hue()
			return c.WithHue(h + amount)
		})
	if !ok || best.deltaE <= current {
		return Suggestion{}, false
	}

	return Suggestion{
		Axis:                AxisHue,
		TargetName:          targetName,
		Original:            target,
		Suggested:           best.colour,
		Amount:              best.amount,
		Direction:           fmt.Sprintf("%+g°", best.amount),
		ExpectedImprovement: best.deltaE - current,
		NewDeltaE:           best.deltaE,
	}, true
}

// Chroma searches for a chroma adjustment that separates the pair. The
// higher-chroma colour is perturbed.
func Chroma(a, b colour.Colour, nameA, nameB string, t cvd.Type, opts Options) (Suggestion, bool) {
	opts = opts.withDefaults()

	current := simulatedDeltaE(a, b, t)
	if current >= opts.TargetDeltaE {
		return Suggestion{}, false
	}

	target, fixed, targetName := a, b, nameA
	if b.Chroma() > a.Chroma() {
		target, fixed, targetName = b, a, nameB
	}

	best, ok := search(fixed, target, t, opts.TargetDeltaE, chromaStep, opts.MaxChroma,
		func(c colour.Colour, amount float64) colour.Colour {
			next := math.Max(0, math.Min(maxChromaValue, c.Chroma()+amount))
			return c.WithChroma(next)
		})
	if !ok || best.deltaE <= current {
		return Suggestion{}, false
	}

	direction := "more saturated"
	if best.amount < 0 {
		direction = "less saturated"
	}

	return Suggestion{
		Axis:                AxisChroma,
		TargetName:          targetName,
		Original:            target,
		Suggested:           best.colour,
		Amount:              best.amount,
		Direction:           direction,
		ExpectedImprovement: best.deltaE - current,
		NewDeltaE:           best.deltaE,
	}, true
}
