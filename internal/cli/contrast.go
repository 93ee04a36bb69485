package cli

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/distinguish"
	"github.com/spf13/cobra"
)

var (
	contrastBackgrounds []string
	contrastTexts       []string
	contrastTypes       []string
	contrastThreshold   float64
	contrastWarning     float64
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Validate every background and text colour combination",
	Long: `Validate the full cross product of background and text colours: every
background is checked against every text colour under each simulated
CVD type.

Example:
  cvdlint contrast \
    --background surface=#1e1e2e --background panel=#313244 \
    --text body=#cdd6f4 --text muted=#a6adc8`,
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringArrayVar(&contrastBackgrounds, "background", nil, "Background colour (name=#hex, repeatable)")
	contrastCmd.Flags().StringArrayVar(&contrastTexts, "text", nil, "Text colour (name=#hex, repeatable)")
	contrastCmd.Flags().StringSliceVar(&contrastTypes, "types", nil, "CVD types to simulate (default all)")
	contrastCmd.Flags().Float64Var(&contrastThreshold, "threshold", distinguish.DefaultThreshold, "Minimum simulated delta-E to pass")
	contrastCmd.Flags().Float64Var(&contrastWarning, "warning-threshold", distinguish.DefaultWarningThreshold, "Minimum simulated delta-E to avoid a warning")
	contrastCmd.MarkFlagRequired("background")
	contrastCmd.MarkFlagRequired("text")
}

func runContrast(cmd *cobra.Command, args []string) error {
	log := logger()

	backgrounds, err := parseColourSpecs(contrastBackgrounds)
	if err != nil {
		return err
	}
	texts, err := parseColourSpecs(contrastTexts)
	if err != nil {
		return err
	}
	types, err := parseTypes(contrastTypes)
	if err != nil {
		return err
	}

	result := distinguish.CheckBackgroundText(backgrounds, texts, distinguish.Options{
		Threshold:        contrastThreshold,
		WarningThreshold: contrastWarning,
		Types:            types,
	})

	log.Debug("background/text combinations checked",
		"backgrounds", len(backgrounds),
		"texts", len(texts),
		"checks", len(result.Results),
		"failures", len(result.Problematic))

	printPaletteResult(cmd, result)

	if len(result.Problematic) > 0 {
		return fmt.Errorf("%d background/text combination(s) are indistinguishable", len(result.Problematic))
	}
	return nil
}
