// Package config loads the optional a15ctl defaults file.
//
// The file carries baseline values for the ambient settings so users do not
// have to repeat their preferred flags on every invocation. Command-line
// flags always win over file values, and a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skalder/a15ctl/internal/protocol"
)

// File is the on-disk shape of the defaults file. All fields are optional.
type File struct {
	// Ambient setting baselines, same domains as the CLI flags.
	Repeat         *int   `yaml:"repeat,omitempty"`
	FiringInterval *int   `yaml:"firing_interval,omitempty"`
	ContinuousFire string `yaml:"continuous_fire,omitempty"`
	LEDBrightness  string `yaml:"led_brightness,omitempty"`
	BreathingSpeed *int   `yaml:"breathing_speed,omitempty"`

	// Device identifier overrides, for firmware revisions shipped under a
	// different product ID.
	VendorID  uint16 `yaml:"vendor_id,omitempty"`
	ProductID uint16 `yaml:"product_id,omitempty"`

	// SettleDelayMS overrides the write-to-read settling delay.
	SettleDelayMS int `yaml:"settle_delay_ms,omitempty"`
}

// DefaultPath returns the conventional location of the defaults file,
// e.g. ~/.config/a15ctl/config.yaml on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "a15ctl", "config.yaml")
}

// Load reads and validates the defaults file at path. A missing file (or an
// empty path) yields an empty File rather than an error.
func Load(path string) (*File, error) {
	f := &File{}
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return f, nil
}

// Validate checks every set field against its setting domain.
func (f *File) Validate() error {
	if f.Repeat != nil && (*f.Repeat < 0 || *f.Repeat > 255) {
		return fmt.Errorf("repeat must be 0-255, got %d", *f.Repeat)
	}
	if f.FiringInterval != nil && (*f.FiringInterval < 0 || *f.FiringInterval > 255) {
		return fmt.Errorf("firing_interval must be 0-255, got %d", *f.FiringInterval)
	}
	if f.ContinuousFire != "" {
		if _, err := protocol.ParseContinuousFire(f.ContinuousFire); err != nil {
			return err
		}
	}
	if f.LEDBrightness != "" {
		if _, err := protocol.ParseLEDBrightness(f.LEDBrightness); err != nil {
			return err
		}
	}
	if f.BreathingSpeed != nil && !protocol.BreathingSpeed(*f.BreathingSpeed).Valid() {
		return fmt.Errorf("breathing_speed must be 1-8, got %d", *f.BreathingSpeed)
	}
	if f.SettleDelayMS < 0 {
		return fmt.Errorf("settle_delay_ms must not be negative, got %d", f.SettleDelayMS)
	}
	return nil
}

// ApplyTo copies the file's baselines into a protocol Config, leaving fields
// the file does not set untouched. Fields already set on cfg (from flags)
// are not overwritten.
func (f *File) ApplyTo(cfg *protocol.Config) {
	if cfg.Repeat == nil && f.Repeat != nil {
		v := uint8(*f.Repeat)
		cfg.Repeat = &v
	}
	if cfg.FiringInterval == nil && f.FiringInterval != nil {
		v := uint8(*f.FiringInterval)
		cfg.FiringInterval = &v
	}
	if cfg.Continuous == nil && f.ContinuousFire != "" {
		v, _ := protocol.ParseContinuousFire(f.ContinuousFire)
		cfg.Continuous = &v
	}
	if cfg.Brightness == nil && f.LEDBrightness != "" {
		v, _ := protocol.ParseLEDBrightness(f.LEDBrightness)
		cfg.Brightness = &v
	}
	if cfg.BreathingSpeed == nil && f.BreathingSpeed != nil {
		v := protocol.BreathingSpeed(*f.BreathingSpeed)
		cfg.BreathingSpeed = &v
	}
}
