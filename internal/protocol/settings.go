package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame positions of the configurable fields within the factory transaction.
const (
	brightnessFirstIndex  = 3  // first half of the split brightness state
	brightnessSecondIndex = 10 // second half
	selectorIndex         = 11 // DPI / LED mode / LED status / breathing speed
	repeatIndex           = 43
	continuousIndex       = 45
	intervalIndex         = 44

	repeatOffset   = 4 // value byte inside the repeat frame
	intervalOffset = 4 // value byte inside the interval frame
)

// Documented firmware defaults. These are the values the factory transaction
// itself carries, so composing a configuration with every setting unset
// reproduces the template byte-for-byte.
const (
	DefaultRepeat         = 3
	DefaultFiringInterval = 8
	DefaultBrightness     = BrightnessFull
	DefaultBreathingSpeed = BreathingSpeed(4)
)

// continuousRepeatSentinel is what the firmware expects in the repeat-count
// field while continuous fire is enabled: the independent repeat count is
// meaningless then and must read as disabled.
const continuousRepeatSentinel = 0xff

// RepeatPatch encodes an auto-fire repeat count (0-255) as a single-byte
// patch of the repeat frame.
func RepeatPatch(v uint8) Patch {
	return Patch{Setting: "repeat", Index: repeatIndex, Offset: repeatOffset, Data: []byte{v}}
}

// FiringIntervalPatch encodes the delay between auto-fire shots (0-255) as a
// single-byte patch of the interval frame.
func FiringIntervalPatch(v uint8) Patch {
	return Patch{Setting: "firing-interval", Index: intervalIndex, Offset: intervalOffset, Data: []byte{v}}
}

// DPILevel selects one of the eight sensor resolution steps. Levels are
// whole-frame variants rather than a byte field: the trailing check bytes
// differ per level.
type DPILevel int

const (
	DPI1 DPILevel = iota + 1 // 1000 CPI
	DPI2                     // 1600 CPI
	DPI3                     // 2400 CPI
	DPI4                     // 3200 CPI
	DPI5                     // 4800 CPI
	DPI6                     // 6400 CPI
	DPI7                     // 7200 CPI
	DPI8                     // 8000 CPI
)

var dpiFrames = [...]Frame{
	mustFrame("040700ff817e807f"),
	mustFrame("040701fe817e807f"),
	mustFrame("040702fd817e807f"),
	mustFrame("040703fd817e807f"),
	mustFrame("040704fd817e807f"),
	mustFrame("040705fd817e807f"),
	mustFrame("040706fd817e807f"),
	mustFrame("040707fd817e807f"),
}

var dpiCPI = [...]int{1000, 1600, 2400, 3200, 4800, 6400, 7200, 8000}

// Valid reports whether the level is within the 1-8 range.
func (d DPILevel) Valid() bool { return d >= DPI1 && d <= DPI8 }

// CPI returns the sensor resolution the level maps to.
func (d DPILevel) CPI() int { return dpiCPI[d-1] }

// String returns the level in its CLI form, e.g. "dpi6".
func (d DPILevel) String() string { return fmt.Sprintf("dpi%d", int(d)) }

// Patch returns the whole-frame replacement for the level.
func (d DPILevel) Patch() Patch {
	return Patch{Setting: "dpi", Index: selectorIndex, Data: dpiFrames[d-1].Bytes()}
}

// ParseDPILevel accepts "1".."8" or "dpi1".."dpi8".
func ParseDPILevel(s string) (DPILevel, error) {
	t := strings.TrimPrefix(strings.ToLower(s), "dpi")
	n, err := strconv.Atoi(t)
	if err != nil || !DPILevel(n).Valid() {
		return 0, fmt.Errorf("invalid DPI level %q: want 1-8", s)
	}
	return DPILevel(n), nil
}

// LEDMode selects the lighting animation.
type LEDMode int

const (
	LEDModeDPI LEDMode = iota // color follows the active DPI level
	LEDModeMulti
	LEDModeRainbow
	LEDModeFloeLight
	LEDModeWaltz
	LEDModeFourSeasons
	LEDModeOff
)

var ledModeFrames = map[LEDMode]Frame{
	LEDModeDPI:         mustFrame("040701fe817e807f"),
	LEDModeMulti:       mustFrame("040701fe827d807f"),
	LEDModeRainbow:     mustFrame("040701fe837c807f"),
	LEDModeFloeLight:   mustFrame("040701fe847b807f"),
	LEDModeWaltz:       mustFrame("040701fe857a807f"),
	LEDModeFourSeasons: mustFrame("040701fe8679807f"),
	LEDModeOff:         mustFrame("040701fe8778807f"),
}

var ledModeNames = map[LEDMode]string{
	LEDModeDPI:         "dpi",
	LEDModeMulti:       "multi",
	LEDModeRainbow:     "rainbow",
	LEDModeFloeLight:   "floe-light",
	LEDModeWaltz:       "waltz",
	LEDModeFourSeasons: "four-seasons",
	LEDModeOff:         "off",
}

// String returns the mode in its CLI form.
func (m LEDMode) String() string {
	if name, ok := ledModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("LEDMode(%d)", int(m))
}

// Patch returns the whole-frame replacement for the mode.
func (m LEDMode) Patch() Patch {
	return Patch{Setting: "led-mode", Index: selectorIndex, Data: ledModeFrames[m].Bytes()}
}

// ParseLEDMode resolves a CLI mode name.
func ParseLEDMode(s string) (LEDMode, error) {
	t := strings.ToLower(s)
	for mode, name := range ledModeNames {
		if name == t {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("invalid LED mode %q: want dpi, multi, rainbow, floe-light, waltz, four-seasons or off", s)
}

// LEDStatus switches the lighting on or off entirely.
type LEDStatus int

const (
	LEDEnabled LEDStatus = iota
	LEDDisabled
)

var ledStatusFrames = map[LEDStatus]Frame{
	LEDEnabled:  mustFrame("040701fe817e807f"),
	LEDDisabled: mustFrame("040701fe8976807f"),
}

// String returns "enable" or "disable".
func (s LEDStatus) String() string {
	if s == LEDEnabled {
		return "enable"
	}
	return "disable"
}

// Patch returns the whole-frame replacement for the status.
func (s LEDStatus) Patch() Patch {
	return Patch{Setting: "led-status", Index: selectorIndex, Data: ledStatusFrames[s].Bytes()}
}

// ParseLEDStatus accepts enable/on/true and disable/off/false.
func ParseLEDStatus(s string) (LEDStatus, error) {
	switch strings.ToLower(s) {
	case "enable", "on", "true":
		return LEDEnabled, nil
	case "disable", "off", "false":
		return LEDDisabled, nil
	}
	return 0, fmt.Errorf("invalid LED status %q: want enable or disable", s)
}

// LEDBrightness selects full or half lighting brightness. The firmware
// splits brightness state across two frames, so its encoding is always a
// pair of patches applied together.
type LEDBrightness int

const (
	BrightnessFull LEDBrightness = iota
	BrightnessHalf
)

var brightnessFrames = map[LEDBrightness][2]Frame{
	BrightnessFull: {mustFrame("040745f80638ff00"), mustFrame("0407ff00ffffff71")},
	BrightnessHalf: {mustFrame("040745f80630ff00"), mustFrame("0407ff00ffffff79")},
}

// String returns "full" or "half".
func (b LEDBrightness) String() string {
	if b == BrightnessFull {
		return "full"
	}
	return "half"
}

// Patches returns the pair of whole-frame replacements for the brightness.
// Exactly two frames are touched, never more, never fewer.
func (b LEDBrightness) Patches() []Patch {
	pair := brightnessFrames[b]
	return []Patch{
		{Setting: "led-brightness", Index: brightnessFirstIndex, Data: pair[0].Bytes()},
		{Setting: "led-brightness", Index: brightnessSecondIndex, Data: pair[1].Bytes()},
	}
}

// ParseLEDBrightness accepts full/all and half.
func ParseLEDBrightness(s string) (LEDBrightness, error) {
	switch strings.ToLower(s) {
	case "full", "all":
		return BrightnessFull, nil
	case "half":
		return BrightnessHalf, nil
	}
	return 0, fmt.Errorf("invalid LED brightness %q: want full or half", s)
}

// BreathingSpeed selects the LED breathing animation speed, 1 (slowest) to
// 8 (fastest).
//
// The vendor capture this table was transcribed from carried a 9-byte value
// for speed 5; the leading digit was a transcription artifact and has been
// dropped so the value fits the e1/c1/a1/81/61/41/21/01 progression.
type BreathingSpeed int

var breathingFrames = [...]Frame{
	mustFrame("040701fee11e807f"),
	mustFrame("040701fec13e807f"),
	mustFrame("040701fea15e807f"),
	mustFrame("040701fe817e807f"),
	mustFrame("040701fe619e807f"),
	mustFrame("040701fe41be807f"),
	mustFrame("040701fe21de807f"),
	mustFrame("040701fe01fe807f"),
}

// Valid reports whether the speed is within the 1-8 range.
func (b BreathingSpeed) Valid() bool { return b >= 1 && b <= 8 }

// String returns the speed in its CLI form, e.g. "4".
func (b BreathingSpeed) String() string { return strconv.Itoa(int(b)) }

// Patch returns the whole-frame replacement for the speed.
func (b BreathingSpeed) Patch() Patch {
	return Patch{Setting: "breathing-speed", Index: selectorIndex, Data: breathingFrames[b-1].Bytes()}
}

// ParseBreathingSpeed accepts "1".."8" or "bs1".."bs8".
func ParseBreathingSpeed(s string) (BreathingSpeed, error) {
	t := strings.TrimPrefix(strings.ToLower(s), "bs")
	n, err := strconv.Atoi(t)
	if err != nil || !BreathingSpeed(n).Valid() {
		return 0, fmt.Errorf("invalid breathing speed %q: want 1-8", s)
	}
	return BreathingSpeed(n), nil
}

// ContinuousFire enables or disables indefinite auto-fire. Enabling it is a
// composite encoding: besides its own frame it forces the repeat-count field
// to the disabled sentinel, because the firmware rejects transactions where
// continuous fire and an independent repeat count are both set. The coupling
// lives here, in the type's encoding, rather than as a pipeline ordering
// accident.
type ContinuousFire int

const (
	ContinuousDisabled ContinuousFire = iota
	ContinuousEnabled
)

var continuousFrames = map[ContinuousFire]Frame{
	ContinuousDisabled: mustFrame("0407fdfffffc1bff"),
	ContinuousEnabled:  mustFrame("0407fdfffffc64ff"),
}

// String returns "enable" or "disable".
func (c ContinuousFire) String() string {
	if c == ContinuousEnabled {
		return "enable"
	}
	return "disable"
}

// Patches returns the encoding of the state. For ContinuousEnabled this is
// the mode frame plus the repeat-count sentinel override; for
// ContinuousDisabled only the mode frame.
func (c ContinuousFire) Patches() []Patch {
	mode := Patch{Setting: "continuous-fire", Index: continuousIndex, Data: continuousFrames[c].Bytes()}
	if c == ContinuousEnabled {
		return []Patch{mode, {
			Setting: "continuous-fire",
			Index:   repeatIndex,
			Offset:  repeatOffset,
			Data:    []byte{continuousRepeatSentinel},
		}}
	}
	return []Patch{mode}
}

// ParseContinuousFire accepts enable/on/true and disable/off/false.
func ParseContinuousFire(s string) (ContinuousFire, error) {
	switch strings.ToLower(s) {
	case "enable", "on", "true":
		return ContinuousEnabled, nil
	case "disable", "off", "false":
		return ContinuousDisabled, nil
	}
	return 0, fmt.Errorf("invalid continuous fire state %q: want enable or disable", s)
}
