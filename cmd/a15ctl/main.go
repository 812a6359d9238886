// A15ctl is a configuration utility for the Redgear A-15 gaming mouse.
//
// It builds the vendor's proprietary feature-report transaction from the
// requested settings (DPI, LED lighting, auto-fire behavior) and replays it
// to the mouse over USB HID. No vendor software is required.
//
// Usage:
//
//	a15ctl [flags] [command]
//
// Running with only setting flags (e.g. --repeat 5) applies those settings;
// subcommands select the top-level operation (dpi, led, led-status, reset).
// See 'a15ctl --help' for details.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skalder/a15ctl/internal/logging"
	"github.com/skalder/a15ctl/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "a15ctl",
	Short: "Redgear A-15 Mouse Configuration Utility",
	Long: `A standalone utility for configuring the Redgear A-15 gaming mouse.

Builds the vendor's binary feature-report transaction from the requested
settings and sends it to the mouse over USB HID.

Setting flags (--repeat, --firing-interval, --continuous, --led-brightness,
--breathing-speed) can be combined with any command. Run with only setting
flags to apply them without changing DPI or LED mode.`,
	Version: version.Version,
	RunE:    runApplySettings,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("a15ctl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
