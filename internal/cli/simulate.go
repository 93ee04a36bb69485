package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/cvdlint/internal/colour"
	"github.com/jmylchreest/cvdlint/internal/cvd"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var simulateTypes []string

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <hex>",
	Short: "Show how a colour appears under each CVD type",
	Long: `Simulate a colour under each colour-vision deficiency and print the
resulting hex value. When stdout is a terminal, truecolour swatches are
printed alongside.

Example:
  cvdlint simulate '#ff0000'
  cvdlint simulate '#2e7d32' --types deuteranopia`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringSliceVar(&simulateTypes, "types", nil, "CVD types to simulate (default all)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := colour.FromHex(args[0])
	if err != nil {
		return err
	}

	types, err := parseTypes(simulateTypes)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		types = cvd.Types()
	}

	out := cmd.OutOrStdout()
	swatches := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Fprintf(out, "%-14s %s%s\n", "original", c.Hex(), swatch(c, swatches))
	for _, t := range types {
		sim := cvd.Simulate(c, t)
		fmt.Fprintf(out, "%-14s %s%s\n", t.String(), sim.Hex(), swatch(sim, swatches))
	}

	return nil
}

// swatch returns a truecolour terminal block for the colour, or an
// empty string when swatches are disabled.
func swatch(c colour.Colour, enabled bool) string {
	if !enabled {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("  \x1b[48;2;%d;%d;%dm      \x1b[0m", r, g, b)
}
