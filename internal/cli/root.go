// Package cli provides the command-line interface for cvdlint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/cvdlint/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global verbose flag
	globalVerbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cvdlint",
		Short: "A colour-vision-deficiency palette auditor",
		Long: `cvdlint audits colour palettes for colour-vision-deficiency (CVD)
accessibility. It simulates protanopia, deuteranopia, tritanopia and
achromatopsia, measures perceptual distance in OKLCH, validates colour
pairs against distinguishability thresholds, scores whole palettes, and
suggests minimal lightness/hue/chroma adjustments that restore
distinguishability.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Accept American spellings for the colour flags.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(imageCmd)
}

// normalizeFlags maps American flag spellings onto the canonical names.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "color" {
		name = "colour"
	}
	return pflag.NormalizedName(name)
}

// logger returns the command logger: Debug level when --verbose is set,
// otherwise silent.
func logger() hclog.Logger {
	level := hclog.Off
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "cvdlint",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
