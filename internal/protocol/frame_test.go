package protocol

import (
	"testing"
)

// TestParseFrame tests hex decoding and the frame-length invariant
func TestParseFrame(t *testing.T) {
	t.Run("valid frame", func(t *testing.T) {
		f, err := ParseFrame("04070afd03a1fe03")
		if err != nil {
			t.Fatalf("ParseFrame failed: %v", err)
		}
		if f[0] != 0x04 || f[1] != 0x07 || f[7] != 0x03 {
			t.Errorf("Unexpected frame bytes: %s", f)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if _, err := ParseFrame("0407"); err == nil {
			t.Error("Expected error for 2-byte frame")
		}
	})

	t.Run("too long", func(t *testing.T) {
		// A 9-byte value like the transcription defect in the vendor capture
		if _, err := ParseFrame("1040701fe619e807f"); err == nil {
			t.Error("Expected error for 9-byte frame")
		}
	})

	t.Run("invalid hex", func(t *testing.T) {
		if _, err := ParseFrame("zz070afd03a1fe03"); err == nil {
			t.Error("Expected error for non-hex input")
		}
	})
}

// TestFrameString tests the hex round trip
func TestFrameString(t *testing.T) {
	const in = "040721fe08fc94ff"
	f, err := ParseFrame(in)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if f.String() != in {
		t.Errorf("Expected %q, got %q", in, f.String())
	}
}

// TestFrameBytes tests that Bytes returns an independent copy
func TestFrameBytes(t *testing.T) {
	f := mustFrame("0401000000000000")
	b := f.Bytes()
	b[0] = 0xee
	if f[0] != 0x04 {
		t.Error("Mutating Bytes() result must not affect the frame")
	}
	if len(b) != FrameSize {
		t.Errorf("Expected %d bytes, got %d", FrameSize, len(b))
	}
}

// TestTemplate tests the factory transaction table
func TestTemplate(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		if len(Template()) != TemplateLength {
			t.Errorf("Expected %d frames, got %d", TemplateLength, len(Template()))
		}
	})

	t.Run("known frames", func(t *testing.T) {
		seq := Template()
		if seq[0].String() != "0401000000000000" {
			t.Errorf("Unexpected first frame: %s", seq[0])
		}
		if seq[43].String() != "04070afd03a1fe03" {
			t.Errorf("Unexpected repeat frame: %s", seq[43])
		}
		if seq[47].String() != "0402000000000000" {
			t.Errorf("Unexpected last frame: %s", seq[47])
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		seq := Template()
		seq[0][0] = 0xee
		if Template()[0][0] != 0x04 {
			t.Error("Mutating a Template() result must not affect the shared table")
		}
	})
}

// TestSequenceClone tests deep-copy semantics
func TestSequenceClone(t *testing.T) {
	seq := Template()
	clone := seq.Clone()
	clone[5][3] = 0xaa

	if seq[5][3] == 0xaa {
		t.Error("Clone must not share frame storage with its source")
	}
	if !seq.Equal(Template()) {
		t.Error("Source sequence changed by mutating the clone")
	}
}

// TestSequenceEqual tests byte-wise comparison
func TestSequenceEqual(t *testing.T) {
	a := Template()
	b := Template()

	if !a.Equal(b) {
		t.Error("Two fresh templates must be equal")
	}

	b[10][7] ^= 0xff
	if a.Equal(b) {
		t.Error("Sequences differing in one byte must not be equal")
	}

	if a.Equal(a[:TemplateLength-1]) {
		t.Error("Sequences of different length must not be equal")
	}
}
