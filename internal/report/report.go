// Package report renders plain-text summaries of accessibility results
// for logs and terminals. The exact formatting is not a compatibility
// contract.
package report

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/cvdlint/internal/cvd"
	"github.com/jmylchreest/cvdlint/internal/score"
	"github.com/jmylchreest/cvdlint/internal/suggest"
)

// Score renders a multi-line summary of a scoring run: overall score
// and grade, per-type sub-scores with their weights, and the ranked
// list of problematic pairs.
func Score(result score.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CVD accessibility score: %.1f (grade %s)\n", result.Overall, result.Grade)
	fmt.Fprintf(&b, "%s\n\n", result.Grade.Description())

	types := newTable("Type", "Score", "Weight")
	for _, t := range cvd.Types() {
		sub, ok := result.SubScores[t]
		if !ok {
			continue
		}
		types.addRow(t.String(), fmt.Sprintf("%.1f", sub), fmt.Sprintf("%.2f", result.Weights[t]))
	}
	b.WriteString(types.render())

	if len(result.Palette.Problematic) == 0 {
		b.WriteString("\nNo problematic colour pairs.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nProblematic pairs (%d, pass rate %.1f%%):\n", len(result.Palette.Problematic), result.Palette.PassRate)
	pairs := newTable("#", "Pair", "Type", "Simulated dE", "Severity")
	for i, res := range result.Palette.Problematic {
		pairs.addRow(
			fmt.Sprintf("%d", i+1),
			res.NameA+" / "+res.NameB,
			res.Type.String(),
			fmt.Sprintf("%.2f", res.SimulatedDeltaE),
			res.Severity.String(),
		)
	}
	b.WriteString(pairs.render())

	return b.String()
}

// Improvements renders a multi-line summary of suggested palette fixes:
// per failing pair, each suggestion's axis, direction, before/after hex
// and the expected delta-E gain.
func Improvements(results []suggest.PairResult) string {
	if len(results) == 0 {
		return "No problematic colour pairs; nothing to improve.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Improvement suggestions for %d pair(s):\n", len(results))

	for _, pair := range results {
		fmt.Fprintf(&b, "\n%s / %s under %s (dE %.2f, target %.2f)\n",
			pair.NameA, pair.NameB, pair.Type, pair.OriginalDeltaE, pair.TargetDeltaE)

		if !pair.Improvable {
			b.WriteString("  no adjustment found within the search bounds\n")
			continue
		}

		for _, s := range pair.Suggestions {
			fmt.Fprintf(&b, "  %-9s %-15s %s: %s -> %s (dE %.2f, +%.2f)\n",
				s.Axis, s.Direction, s.TargetName,
				s.Original.Hex(), s.Suggested.Hex(),
				s.NewDeltaE, s.ExpectedImprovement)
		}
	}

	return b.String()
}
