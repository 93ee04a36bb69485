// Package distinguish validates how distinguishable a palette's colour
// pairs remain under simulated colour-vision deficiencies.
package distinguish

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
)

const (
	// DefaultThreshold is the simulated delta-E below which a colour
	// pair is considered indistinguishable.
	DefaultThreshold = 3.0

	// DefaultWarningThreshold is the simulated delta-E below which a
	// distinguishable pair is still flagged as borderline.
	DefaultWarningThreshold = 5.0
)

// Severity classifies a pair's post-simulation distinguishability.
type Severity int

const (
	// SeverityOK means the pair is comfortably distinguishable.
	SeverityOK Severity = iota
	// SeverityWarning means the pair passes but is borderline.
	SeverityWarning
	// SeverityError means the pair is indistinguishable.
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("distinguish.Severity(%d)", int(s))
	}
}

// NamedColour pairs a stable identifier (palette role or shade name)
// with a colour. Names must be unique within one validation call; that
// is the caller's responsibility.
type NamedColour struct {
	Name   string
	Colour colour.Colour
}

// Options tunes a validation run. The zero value means "use defaults":
// threshold 3.0, warning threshold 5.0, all four CVD types.
type Options struct {
	// Threshold is the minimum simulated delta-E for a pair to count
	// as distinguishable.
	Threshold float64

	// WarningThreshold is the minimum simulated delta-E for a pair to
	// escape the borderline warning band.
	WarningThreshold float64

	// Types restricts which deficiencies are simulated. Empty means
	// all four, in canonical order.
	Types []cvd.Type
}

// withDefaults merges the options over the package defaults.
func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.WarningThreshold <= 0 {
		o.WarningThreshold = DefaultWarningThreshold
	}
	if len(o.Types) == 0 {
		o.Types = cvd.Types()
	}
	return o
}

// Result records one (colour pair, CVD type) evaluation.
type Result struct {
	NameA, NameB     string
	ColourA, ColourB colour.Colour
	Type             cvd.Type

	// NormalDeltaE is the perceptual distance with no simulation.
	NormalDeltaE float64

	// SimulatedDeltaE is the distance after both colours pass through
	// the CVD simulation. Usually at most NormalDeltaE, though edge
	// channels can occasionally gain apparent distance; that is not a
	// contract violation.
	SimulatedDeltaE float64

	Distinguishable bool
	Severity        Severity
}

// PaletteResult aggregates all pair results of one validation run.
type PaletteResult struct {
	// Results holds every evaluation in input order: pairs in the
	// caller's insertion order, CVD types in canonical order within
	// each pair.
	Results []Result

	// Problematic holds the subset of Results that fail the
	// distinguishability threshold, in the same order.
	Problematic []Result

	// FailuresByType counts failures per simulated deficiency. Every
	// requested type has an entry, even at zero.
	FailuresByType map[cvd.Type]int

	// PassRate is the percentage of passing checks in [0, 100].
	// A run with zero checks passes vacuously at 100.
	PassRate float64
}
