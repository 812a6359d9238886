package protocol

import (
	"encoding/hex"
	"fmt"
)

const (
	// FrameSize is the fixed length of every feature-report frame in bytes.
	FrameSize = 8

	// TemplateLength is the number of frames in a full configuration
	// transaction.
	TemplateLength = 48
)

// Frame is one fixed-length binary unit exchanged with the mouse via a HID
// feature report. Byte 0 doubles as the HID report ID (0x04 for the A-15).
type Frame [FrameSize]byte

// ParseFrame decodes a frame from its hex-string form (two hex characters
// per byte, most-significant nibble first).
func ParseFrame(s string) (Frame, error) {
	var f Frame
	b, err := hex.DecodeString(s)
	if err != nil {
		return f, fmt.Errorf("invalid frame hex %q: %w", s, err)
	}
	if len(b) != FrameSize {
		return f, fmt.Errorf("frame %q is %d bytes, want %d", s, len(b), FrameSize)
	}
	copy(f[:], b)
	return f, nil
}

// mustFrame is ParseFrame for the package's constant tables. A bad table
// entry is a programming error, not a runtime condition.
func mustFrame(s string) Frame {
	f, err := ParseFrame(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the frame in hex form.
func (f Frame) String() string {
	return hex.EncodeToString(f[:])
}

// Bytes returns a mutable copy of the frame's bytes, suitable for handing to
// a HID write or read call.
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameSize)
	copy(b, f[:])
	return b
}

// Sequence is an ordered list of frames. Order is protocol-significant: the
// device consumes frames in transaction order.
type Sequence []Frame

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two sequences are byte-identical.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// template is the factory configuration transaction captured from the vendor
// software. It is process-wide constant data; callers always go through
// Template() and receive a copy.
var template = Sequence{
	mustFrame("0401000000000000"),
	mustFrame("0403000000000000"),
	mustFrame("04060000ff000000"),
	mustFrame("040745f80638ff00"),
	mustFrame("040702040607090a"),
	mustFrame("0407070104030002"),
	mustFrame("04070506ff007fff"),
	mustFrame("0407ffff00ff00ff"),
	mustFrame("040700ff0000ffff"),
	mustFrame("0407000000ffffff"),
	mustFrame("0407ff00ffffff71"),
	mustFrame("040701fe817e807f"),
	mustFrame("0407ffffffffffff"),
	mustFrame("0407feffffff0101"),
	mustFrame("0407000104000102"),
	mustFrame("0407000108000110"),
	mustFrame("0407000500000700"),
	mustFrame("0407000800000600"),
	mustFrame("0407f00101000104"),
	mustFrame("0407000102000108"),
	mustFrame("0407000110000500"),
	mustFrame("0407000700000800"),
	mustFrame("0407000600f006ff"),
	mustFrame("0407feffffffffff"),
	mustFrame("0407fe990e05010e"),
	mustFrame("040705190e05310e"),
	mustFrame("040705490e05610e"),
	mustFrame("040705790e05910e"),
	mustFrame("040705a90e05c10e"),
	mustFrame("040705d9ffffffff"),
	mustFrame("0407ffffffffffff"),
	mustFrame("0407feffffffffff"),
	mustFrame("0407fdff00ff00ff"),
	mustFrame("040700ff00ff00ff"),
	mustFrame("040700ff00ff00ff"),
	mustFrame("040700ff00ffffff"),
	mustFrame("0407feffffffffff"),
	mustFrame("0407fdffffffff00"),
	mustFrame("04070000ff000000"),
	mustFrame("0407ffffff00ff00"),
	mustFrame("0407ff00ffffff80"),
	mustFrame("040700ff008000ff"),
	mustFrame("040780ffffffffff"),
	mustFrame("04070afd03a1fe03"),
	mustFrame("040721fe08fc94ff"),
	mustFrame("0407fdfffffc94ff"),
	mustFrame("0408000000000000"),
	mustFrame("0402000000000000"),
}

// Template returns a fresh copy of the factory configuration transaction.
// Applying zero patches to it reproduces the device's default state
// byte-for-byte.
func Template() Sequence {
	return template.Clone()
}
