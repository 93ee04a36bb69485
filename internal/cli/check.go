package cli

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/distinguish"
	"github.com/spf13/cobra"
)

var (
	checkColours          []string
	checkTypes            []string
	checkAdjacent         bool
	checkThreshold        float64
	checkWarningThreshold float64
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a palette's distinguishability under CVD simulation",
	Long: `Validate that every colour pair of a palette stays distinguishable
under simulated colour-vision deficiencies.

By default every unordered pair is checked against every CVD type. With
--adjacent only consecutive colours are compared, which suits shade
ramps where non-neighbouring steps are allowed to blur together.

Examples:
  # Check a semantic palette
  cvdlint check --colour success=#2e7d32 --colour error=#c62828 --colour warning=#f9a825

  # Check a shade ramp, neighbours only, red-green deficiencies only
  cvdlint check --adjacent --types protanopia,deuteranopia \
    --colour 100=#dcfce7 --colour 200=#bbf7d0 --colour 300=#86efac`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkColours, "colour", nil, "Palette colour (name=#hex, repeatable)")
	checkCmd.Flags().StringSliceVar(&checkTypes, "types", nil, "CVD types to simulate (default all)")
	checkCmd.Flags().BoolVar(&checkAdjacent, "adjacent", false, "Only compare consecutive colours")
	checkCmd.Flags().Float64Var(&checkThreshold, "threshold", distinguish.DefaultThreshold, "Minimum simulated delta-E to pass")
	checkCmd.Flags().Float64Var(&checkWarningThreshold, "warning-threshold", distinguish.DefaultWarningThreshold, "Minimum simulated delta-E to avoid a warning")
	checkCmd.MarkFlagRequired("colour")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logger()

	colours, err := parseColourSpecs(checkColours)
	if err != nil {
		return err
	}
	types, err := parseTypes(checkTypes)
	if err != nil {
		return err
	}

	opts := distinguish.Options{
		Threshold:        checkThreshold,
		WarningThreshold: checkWarningThreshold,
		Types:            types,
	}

	var result distinguish.PaletteResult
	if checkAdjacent {
		result = distinguish.CheckAdjacentShades(colours, opts)
	} else {
		result = distinguish.CheckPalette(colours, opts)
	}

	log.Debug("palette checked",
		"colours", len(colours),
		"checks", len(result.Results),
		"failures", len(result.Problematic),
		"adjacent", checkAdjacent)

	printPaletteResult(cmd, result)

	if len(result.Problematic) > 0 {
		return fmt.Errorf("%d colour pair(s) are indistinguishable", len(result.Problematic))
	}
	return nil
}

// printPaletteResult writes the shared validation summary used by the
// check and contrast commands.
func printPaletteResult(cmd *cobra.Command, result distinguish.PaletteResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Pass rate: %.1f%% (%d checks, %d failures)\n",
		result.PassRate, len(result.Results), len(result.Problematic))

	if len(result.Problematic) == 0 {
		fmt.Fprintln(out, "All colour pairs are distinguishable.")
		return
	}

	fmt.Fprintln(out, "\nFailing pairs:")
	for _, res := range result.Problematic {
		fmt.Fprintf(out, "  %s / %s  %-13s dE %.2f (normal %.2f)\n",
			res.NameA, res.NameB, res.Type, res.SimulatedDeltaE, res.NormalDeltaE)
	}
}
