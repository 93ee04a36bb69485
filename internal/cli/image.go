package cli

import (
	"fmt"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/distinguish"
	imageutil "github.com/jmylchreest/cvdlint/internal/image"
	"github.com/jmylchreest/cvdlint/internal/report"
	"github.com/jmylchreest/cvdlint/internal/score"
	"github.com/spf13/cobra"
)

var (
	imageCount     int
	imageScoreOnly bool
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Audit the dominant colours of an image",
	Long: `Extract the dominant colours of an image with k-means clustering and
audit the resulting palette for CVD accessibility.

Supported formats: JPEG, PNG, GIF, WebP.

Examples:
  cvdlint image wallpaper.png
  cvdlint image chart.png --count 6 --score`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	imageCmd.Flags().IntVar(&imageCount, "count", 8, "Number of dominant colours to extract")
	imageCmd.Flags().BoolVar(&imageScoreOnly, "score", false, "Print the full score report instead of pass/fail pairs")
}

func runImage(cmd *cobra.Command, args []string) error {
	log := logger()
	path := args[0]

	if err := imageutil.ValidateImagePath(path); err != nil {
		return err
	}

	img, err := imageutil.NewFileLoader().Load(path)
	if err != nil {
		return err
	}

	extractor, err := colour.NewExtractor(colour.AlgorithmKMeans)
	if err != nil {
		return err
	}
	colours, weights, err := extractor.Extract(img, imageCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	log.Debug("colours extracted", "path", path, "requested", imageCount, "extracted", len(colours))

	out := cmd.OutOrStdout()
	named := make([]distinguish.NamedColour, len(colours))
	fmt.Fprintf(out, "Extracted %d colour(s):\n", len(colours))
	for i, c := range colours {
		name := fmt.Sprintf("colour%d", i+1)
		named[i] = distinguish.NamedColour{Name: name, Colour: c}
		fmt.Fprintf(out, "  %-9s %s (%.1f%%)\n", name, c.Hex(), weights[i]*100)
	}
	fmt.Fprintln(out)

	if imageScoreOnly {
		fmt.Fprint(out, report.Score(score.Score(named, score.Options{})))
		return nil
	}

	result := distinguish.CheckPalette(named, distinguish.Options{})
	printPaletteResult(cmd, result)

	if len(result.Problematic) > 0 {
		return fmt.Errorf("%d colour pair(s) are indistinguishable", len(result.Problematic))
	}
	return nil
}
