package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/skalder/a15ctl/internal/config"
	"github.com/skalder/a15ctl/internal/device"
	"github.com/skalder/a15ctl/internal/protocol"
	"github.com/skalder/a15ctl/internal/transport"
	"github.com/skalder/a15ctl/internal/ui"
)

// Setting and behavior flags
var (
	flagRepeat         int
	flagFiringInterval int
	flagContinuous     string
	flagLEDBrightness  string
	flagBreathingSpeed int

	flagConfigPath string
	flagDryRun     bool
	flagDelayMS    int
	flagYes        bool
)

func init() {
	// Ambient setting flags, valid with every command (persistent on root)
	rootCmd.PersistentFlags().IntVarP(&flagRepeat, "repeat", "r", 0, "Auto-fire repeat count (0-255)")
	rootCmd.PersistentFlags().IntVarP(&flagFiringInterval, "firing-interval", "f", 0, "Delay between auto-fire shots (0-255)")
	rootCmd.PersistentFlags().StringVar(&flagContinuous, "continuous", "", "Continuous firing (enable, disable)")
	rootCmd.PersistentFlags().StringVar(&flagLEDBrightness, "led-brightness", "", "LED brightness (full, half)")
	rootCmd.PersistentFlags().IntVar(&flagBreathingSpeed, "breathing-speed", 0, "LED breathing speed (1-8, higher = faster)")

	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.DefaultPath(), "Path to the defaults file")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Print the composed frames instead of sending them")
	rootCmd.PersistentFlags().IntVar(&flagDelayMS, "delay-ms", 0, "Write-to-read settling delay in milliseconds (default 300)")

	// Add subcommands directly to root
	rootCmd.AddCommand(dpiCmd)
	rootCmd.AddCommand(ledCmd)
	rootCmd.AddCommand(ledStatusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(detectCmd)
}

// buildConfig assembles the protocol configuration for this invocation:
// validated setting flags first, then baselines from the defaults file for
// anything the flags left unset.
func buildConfig() (protocol.Config, *config.File, error) {
	var cfg protocol.Config
	flags := rootCmd.PersistentFlags()

	if flags.Changed("repeat") {
		if flagRepeat < 0 || flagRepeat > 255 {
			return cfg, nil, fmt.Errorf("--repeat must be 0-255, got %d", flagRepeat)
		}
		v := uint8(flagRepeat)
		cfg.Repeat = &v
	}
	if flags.Changed("firing-interval") {
		if flagFiringInterval < 0 || flagFiringInterval > 255 {
			return cfg, nil, fmt.Errorf("--firing-interval must be 0-255, got %d", flagFiringInterval)
		}
		v := uint8(flagFiringInterval)
		cfg.FiringInterval = &v
	}
	if flagContinuous != "" {
		v, err := protocol.ParseContinuousFire(flagContinuous)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Continuous = &v
	}
	if flagLEDBrightness != "" {
		v, err := protocol.ParseLEDBrightness(flagLEDBrightness)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Brightness = &v
	}
	if flags.Changed("breathing-speed") {
		v := protocol.BreathingSpeed(flagBreathingSpeed)
		if !v.Valid() {
			return cfg, nil, fmt.Errorf("--breathing-speed must be 1-8, got %d", flagBreathingSpeed)
		}
		cfg.BreathingSpeed = &v
	}

	file, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, nil, err
	}
	file.ApplyTo(&cfg)

	return cfg, file, nil
}

// anySettingRequested reports whether the invocation carries at least one
// explicit ambient setting.
func anySettingRequested(cfg protocol.Config) bool {
	return cfg.Repeat != nil || cfg.FiringInterval != nil || cfg.Continuous != nil ||
		cfg.Brightness != nil || cfg.BreathingSpeed != nil
}

// send composes the transaction for cfg and delivers it, honoring --dry-run
// and the settle-delay overrides.
func send(cfg protocol.Config, file *config.File) error {
	seq := protocol.Compose(cfg)
	return sendSequence(seq, file)
}

func sendSequence(seq protocol.Sequence, file *config.File) error {
	if flagDryRun {
		fmt.Printf("Dry run: %d frames\n", len(seq))
		for i, frame := range seq {
			fmt.Printf("  %2d  %s\n", i, frame)
		}
		return nil
	}

	vid, pid := device.VendorID, device.ProductID
	if file.VendorID != 0 {
		vid = file.VendorID
	}
	if file.ProductID != 0 {
		pid = file.ProductID
	}

	dev, err := device.Open(vid, pid)
	if err != nil {
		fmt.Println(transport.GetTroubleshootingHint(err))
		return err
	}
	defer device.Exit()
	defer dev.Close()

	opts := &transport.Options{}
	if flagDelayMS > 0 {
		opts.SettleDelay = time.Duration(flagDelayMS) * time.Millisecond
	} else if file.SettleDelayMS > 0 {
		opts.SettleDelay = time.Duration(file.SettleDelayMS) * time.Millisecond
	}

	fmt.Printf("Sending %d frames...\n\n", len(seq))
	result := transport.Transmit(dev, seq, opts)
	fmt.Println(ui.RenderTransmitSummary(result))
	return nil
}

// runApplySettings is the root command's behavior: apply the ambient setting
// flags without a terminal selector.
func runApplySettings(cmd *cobra.Command, args []string) error {
	cfg, file, err := buildConfig()
	if err != nil {
		return err
	}
	if !anySettingRequested(cfg) {
		return fmt.Errorf("no settings requested; see 'a15ctl --help'")
	}
	return send(cfg, file)
}

// dpiCmd sets the sensor resolution level
var dpiCmd = &cobra.Command{
	Use:   "dpi <level>",
	Short: "Set the DPI level",
	Long: `Set the sensor resolution to one of the eight hardware levels.

  Level | CPI
  ------+------
  1     | 1000
  2     | 1600
  3     | 2400
  4     | 3200
  5     | 4800
  6     | 6400
  7     | 7200
  8     | 8000

Ambient setting flags given alongside are applied in the same transaction.`,
	Example: `  # Switch to 3200 CPI
  a15ctl dpi 4

  # Switch DPI and tune auto-fire in one transaction
  a15ctl dpi 2 --repeat 5 --firing-interval 10`,
	Args: cobra.ExactArgs(1),
	RunE: runDPI,
}

func runDPI(cmd *cobra.Command, args []string) error {
	level, err := protocol.ParseDPILevel(args[0])
	if err != nil {
		return err
	}

	cfg, file, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Command = level

	fmt.Printf("Setting DPI level %d (%d CPI)\n", int(level), level.CPI())
	return send(cfg, file)
}

// ledCmd sets the LED lighting mode
var ledCmd = &cobra.Command{
	Use:   "led <mode>",
	Short: "Set the LED lighting mode",
	Long: `Set the LED lighting animation.

Available modes: dpi, multi, rainbow, floe-light, waltz, four-seasons, off.
The dpi mode colors the LED according to the active DPI level.`,
	Example: `  # Rainbow cycling
  a15ctl led rainbow

  # Breathing animation at full speed
  a15ctl led waltz --breathing-speed 8`,
	Args: cobra.ExactArgs(1),
	RunE: runLED,
}

func runLED(cmd *cobra.Command, args []string) error {
	mode, err := protocol.ParseLEDMode(args[0])
	if err != nil {
		return err
	}

	cfg, file, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Command = mode

	fmt.Printf("Setting LED mode %s\n", mode)
	return send(cfg, file)
}

// ledStatusCmd enables or disables the LEDs entirely
var ledStatusCmd = &cobra.Command{
	Use:   "led-status <enable|disable>",
	Short: "Enable or disable the LED lights",
	Example: `  # Turn the lights off
  a15ctl led-status disable`,
	Args: cobra.ExactArgs(1),
	RunE: runLEDStatus,
}

func runLEDStatus(cmd *cobra.Command, args []string) error {
	status, err := protocol.ParseLEDStatus(args[0])
	if err != nil {
		return err
	}

	cfg, file, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Command = status

	fmt.Printf("Setting LED status: %s\n", status)
	return send(cfg, file)
}

// resetCmd restores the factory configuration
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all mouse settings to their factory defaults",
	Long: `Replay the factory transaction with every setting at its documented
default: repeat 3, firing interval 8, continuous fire disabled, LED
brightness full, breathing speed 4, factory DPI and LED state.

The reset overwrites every stored setting; a confirmation prompt guards it
unless --yes is given.`,
	Example: `  a15ctl reset

  # Non-interactive (scripts)
  a15ctl reset --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	_, file, err := buildConfig()
	if err != nil {
		return err
	}

	if !flagYes && !flagDryRun {
		if !ui.FactoryResetConfirmation() {
			return nil
		}
	}

	fmt.Println("Resetting mouse to factory defaults")
	return sendSequence(protocol.Reset(), file)
}

// detectCmd lists matching HID interfaces without writing anything
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "List matching HID interfaces",
	Long: `Enumerate HID interfaces matching the A-15's vendor and product ID
without opening or writing to them. Useful for checking cabling and
permissions before configuring.`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	_, file, err := buildConfig()
	if err != nil {
		return err
	}

	vid, pid := device.VendorID, device.ProductID
	if file.VendorID != 0 {
		vid = file.VendorID
	}
	if file.ProductID != 0 {
		pid = file.ProductID
	}

	infos, err := device.List(vid, pid)
	if err != nil {
		return err
	}
	defer device.Exit()

	if len(infos) == 0 {
		fmt.Printf("No HID interfaces matching %04x:%04x found.\n\n", vid, pid)
		fmt.Println("Troubleshooting:")
		fmt.Println("  - Check that the mouse is plugged in")
		fmt.Println("  - Try a different USB port")
		fmt.Println("  - On Linux, hidraw access may require a udev rule or root")
		return nil
	}

	fmt.Printf("Found %d interface(s):\n\n", len(infos))
	for i, info := range infos {
		fmt.Printf("%d. %s %s\n", i+1, info.Manufacturer, info.Product)
		fmt.Printf("   Path:      %s\n", info.Path)
		fmt.Printf("   IDs:       %04x:%04x\n", info.VendorID, info.ProductID)
		fmt.Printf("   Interface: %d\n", info.Interface)
		if info.Serial != "" {
			fmt.Printf("   Serial:    %s\n", info.Serial)
		}
		fmt.Println()
	}
	return nil
}
