package cli

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/distinguish"
	"github.com/jmylchreest/cvdlint/internal/report"
	"github.com/jmylchreest/cvdlint/internal/score"
	"github.com/spf13/cobra"
)

var (
	scoreColours   []string
	scoreTypes     []string
	scoreWeights   []string
	scoreThreshold float64
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a palette's overall CVD accessibility",
	Long: `Aggregate per-type pass rates into a single weighted accessibility
score and letter grade. Default weights reflect population prevalence
(protanopia 0.30, deuteranopia 0.35, tritanopia 0.20, achromatopsia
0.15) and can be overridden per type.

Examples:
  cvdlint score --colour red=#d32f2f --colour green=#388e3c --colour blue=#1976d2

  # Weight red-green deficiencies only
  cvdlint score --colour a=#ff8800 --colour b=#0088ff \
    --weight tritanopia=0 --weight achromatopsia=0`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringArrayVar(&scoreColours, "colour", nil, "Palette colour (name=#hex, repeatable)")
	scoreCmd.Flags().StringSliceVar(&scoreTypes, "types", nil, "CVD types to simulate (default all)")
	scoreCmd.Flags().StringArrayVar(&scoreWeights, "weight", nil, "Weight override (type=weight, repeatable)")
	scoreCmd.Flags().Float64Var(&scoreThreshold, "threshold", distinguish.DefaultThreshold, "Minimum simulated delta-E to pass")
	scoreCmd.MarkFlagRequired("colour")
}

func runScore(cmd *cobra.Command, args []string) error {
	log := logger()

	colours, err := parseColourSpecs(scoreColours)
	if err != nil {
		return err
	}
	types, err := parseTypes(scoreTypes)
	if err != nil {
		return err
	}
	weights, err := parseWeights(scoreWeights)
	if err != nil {
		return err
	}

	result := score.Score(colours, score.Options{
		Weights: weights,
		Distinguish: distinguish.Options{
			Threshold: scoreThreshold,
			Types:     types,
		},
	})

	log.Debug("palette scored",
		"colours", len(colours),
		"overall", result.Overall,
		"grade", string(result.Grade))

	fmt.Fprint(cmd.OutOrStdout(), report.Score(result))
	return nil
}
