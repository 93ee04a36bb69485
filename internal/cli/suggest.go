package cli

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/distinguish"
	"github.com/jmylchreest/cvdlint/internal/report"
	"github.com/jmylchreest/cvdlint/internal/suggest"
	"github.com/spf13/cobra"
)

var (
	suggestColours        []string
	suggestTypes          []string
	suggestThreshold      float64
	suggestTarget         float64
	suggestMaxSuggestions int
	suggestMaxLightness   float64
	suggestMaxHue         float64
	suggestMaxChroma      float64
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest minimal adjustments for indistinguishable pairs",
	Long: `Find the palette's indistinguishable colour pairs and search for the
smallest lightness, hue or chroma adjustment that restores
distinguishability under the affected CVD type.

Example:
  cvdlint suggest --colour ok=#4caf50 --colour bad=#f44336 --target 6`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringArrayVar(&suggestColours, "colour", nil, "Palette colour (name=#hex, repeatable)")
	suggestCmd.Flags().StringSliceVar(&suggestTypes, "types", nil, "CVD types to simulate (default all)")
	suggestCmd.Flags().Float64Var(&suggestThreshold, "threshold", distinguish.DefaultThreshold, "Minimum simulated delta-E to pass validation")
	suggestCmd.Flags().Float64Var(&suggestTarget, "target", suggest.DistinguishabilityTarget, "Simulated delta-E a suggestion aims for")
	suggestCmd.Flags().IntVar(&suggestMaxSuggestions, "max-suggestions", 3, "Maximum suggestions kept per pair")
	suggestCmd.Flags().Float64Var(&suggestMaxLightness, "max-lightness", 0.2, "Maximum lightness adjustment")
	suggestCmd.Flags().Float64Var(&suggestMaxHue, "max-hue", 30, "Maximum hue rotation in degrees")
	suggestCmd.Flags().Float64Var(&suggestMaxChroma, "max-chroma", 0.1, "Maximum chroma adjustment")
	suggestCmd.MarkFlagRequired("colour")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	log := logger()

	colours, err := parseColourSpecs(suggestColours)
	if err != nil {
		return err
	}
	types, err := parseTypes(suggestTypes)
	if err != nil {
		return err
	}

	validation := distinguish.CheckPalette(colours, distinguish.Options{
		Threshold: suggestThreshold,
		Types:     types,
	})

	results := suggest.Palette(validation, suggest.Options{
		TargetDeltaE:   suggestTarget,
		MaxLightness:   suggestMaxLightness,
		MaxHue:         suggestMaxHue,
		MaxChroma:      suggestMaxChroma,
		MaxSuggestions: suggestMaxSuggestions,
	})

	log.Debug("improvements searched",
		"colours", len(colours),
		"failing_pairs", len(validation.Problematic),
		"improvable", countImprovable(results))

	fmt.Fprint(cmd.OutOrStdout(), report.Improvements(results))
	return nil
}

func countImprovable(results []suggest.PairResult) int {
	n := 0
	for _, r := range results {
		if r.Improvable {
			n++
		}
	}
	return n
}
