package protocol

// Command is the terminal selector of a configuration transaction: the
// single top-level operation resolved per invocation. DPILevel, LEDMode and
// LEDStatus implement it. At most one Command appears in a Config; the CLI's
// subcommand structure makes requesting two impossible.
type Command interface {
	Patch() Patch
	String() string
}

var (
	_ Command = DPILevel(0)
	_ Command = LEDMode(0)
	_ Command = LEDStatus(0)
)

// Config holds the settings requested for one invocation. Nil fields mean
// "use the documented firmware default". Values are expected to be range-
// and enum-validated by the CLI/config layer before they reach Compose.
type Config struct {
	Repeat         *uint8
	FiringInterval *uint8
	Brightness     *LEDBrightness
	Continuous     *ContinuousFire
	BreathingSpeed *BreathingSpeed

	// Command is the terminal selector, or nil when only ambient settings
	// are being applied.
	Command Command
}

// Defaults returns the full factory-default configuration: the documented
// default for every setting, continuous fire explicitly disabled, and no
// terminal selector. This is what a factory reset composes.
func Defaults() Config {
	repeat := uint8(DefaultRepeat)
	interval := uint8(DefaultFiringInterval)
	brightness := DefaultBrightness
	continuous := ContinuousDisabled
	breathing := DefaultBreathingSpeed
	return Config{
		Repeat:         &repeat,
		FiringInterval: &interval,
		Brightness:     &brightness,
		Continuous:     &continuous,
		BreathingSpeed: &breathing,
	}
}

// Compose translates a configuration into the full frame transaction by
// patching the factory template in the fixed stage order the firmware
// expects:
//
//  1. repeat count
//  2. firing interval
//  3. LED brightness (pair)
//  4. continuous fire (composite, overrides the repeat field when enabled)
//  5. breathing speed
//  6. terminal selector
//
// Each stage threads the previous stage's output; the template itself is
// patched exactly once. Unset stages substitute the documented default's
// encoding, which matches the template's own bytes, so an empty Config
// composes to a byte-identical copy of the template. Continuous fire has no
// default substitution: the template frame is the firmware's factory state
// for it, and neither the enable nor the disable command reproduces it.
func Compose(cfg Config) Sequence {
	repeat := uint8(DefaultRepeat)
	if cfg.Repeat != nil {
		repeat = *cfg.Repeat
	}
	interval := uint8(DefaultFiringInterval)
	if cfg.FiringInterval != nil {
		interval = *cfg.FiringInterval
	}
	brightness := DefaultBrightness
	if cfg.Brightness != nil {
		brightness = *cfg.Brightness
	}
	breathing := DefaultBreathingSpeed
	if cfg.BreathingSpeed != nil {
		breathing = *cfg.BreathingSpeed
	}

	seq := Template()
	seq = Apply(seq, RepeatPatch(repeat))
	seq = Apply(seq, FiringIntervalPatch(interval))
	seq = Apply(seq, brightness.Patches()...)
	if cfg.Continuous != nil {
		seq = Apply(seq, cfg.Continuous.Patches()...)
	}
	seq = Apply(seq, breathing.Patch())
	if cfg.Command != nil {
		seq = Apply(seq, cfg.Command.Patch())
	}
	return seq
}

// Reset composes the factory-reset transaction. Reset is nothing special:
// it is the same stage pipeline run over the full default set, with no
// terminal selector (the template's selector frame already encodes the
// factory DPI and LED state).
func Reset() Sequence {
	return Compose(Defaults())
}
