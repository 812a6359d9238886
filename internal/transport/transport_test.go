package transport

import (
	"errors"
	"testing"

	"github.com/skalder/a15ctl/internal/protocol"
)

// fakeDevice records feature-report traffic and fails on demand.
type fakeDevice struct {
	writes [][]byte
	reads  int

	failWriteAt map[int]error // write index -> injected error
	failReadAt  map[int]error // read index -> injected error
}

func (d *fakeDevice) SendFeatureReport(p []byte) (int, error) {
	i := len(d.writes)
	if err, ok := d.failWriteAt[i]; ok {
		d.writes = append(d.writes, nil)
		return 0, err
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	d.writes = append(d.writes, buf)
	return len(p), nil
}

func (d *fakeDevice) GetFeatureReport(p []byte) (int, error) {
	i := d.reads
	d.reads++
	if err, ok := d.failReadAt[i]; ok {
		return 0, err
	}
	return len(p), nil
}

// noDelay skips the settling delay so tests run instantly.
var noDelay = &Options{SettleDelay: -1}

// TestTransmitClean tests a fully successful transaction
func TestTransmitClean(t *testing.T) {
	dev := &fakeDevice{}
	seq := protocol.Template()

	result := Transmit(dev, seq, noDelay)

	if !result.Clean() {
		t.Errorf("Expected a clean result, got %d write and %d read errors",
			len(result.WriteErrors), len(result.ReadErrors))
	}
	if result.FramesTotal != protocol.TemplateLength {
		t.Errorf("FramesTotal = %d, want %d", result.FramesTotal, protocol.TemplateLength)
	}
	if result.FramesWritten != protocol.TemplateLength {
		t.Errorf("FramesWritten = %d, want %d", result.FramesWritten, protocol.TemplateLength)
	}
	if len(dev.writes) != protocol.TemplateLength {
		t.Fatalf("Device saw %d writes, want %d", len(dev.writes), protocol.TemplateLength)
	}

	// Frames arrive in transaction order, report ID first.
	for i, w := range dev.writes {
		if w[0] != 0x04 {
			t.Errorf("Write %d does not start with the report ID: %x", i, w)
		}
		if string(w) != string(seq[i].Bytes()) {
			t.Errorf("Write %d = %x, want %s", i, w, seq[i])
		}
	}
	if dev.reads != protocol.TemplateLength {
		t.Errorf("Device saw %d read-backs, want %d", dev.reads, protocol.TemplateLength)
	}
}

// TestTransmitContinuesAfterWriteError tests the continue-on-error policy
func TestTransmitContinuesAfterWriteError(t *testing.T) {
	injected := errors.New("pipe stalled")
	dev := &fakeDevice{failWriteAt: map[int]error{7: injected}}
	seq := protocol.Template()

	result := Transmit(dev, seq, noDelay)

	if result.Clean() {
		t.Fatal("Expected a result with warnings")
	}
	if !result.CompletedWithWarnings() {
		t.Error("CompletedWithWarnings() should be true")
	}
	if result.FramesWritten != protocol.TemplateLength-1 {
		t.Errorf("FramesWritten = %d, want %d", result.FramesWritten, protocol.TemplateLength-1)
	}
	if len(result.WriteErrors) != 1 {
		t.Fatalf("Expected 1 write error, got %d", len(result.WriteErrors))
	}

	werr := result.WriteErrors[0]
	if werr.FrameIndex != 7 {
		t.Errorf("Write error frame index = %d, want 7", werr.FrameIndex)
	}
	if !IsWriteError(werr) {
		t.Error("Recorded error should satisfy IsWriteError")
	}
	if !errors.Is(werr, injected) {
		t.Error("Recorded error should unwrap to the device error")
	}

	// The failed frame's read-back is skipped; every later frame still goes out.
	if len(dev.writes) != protocol.TemplateLength {
		t.Errorf("Device saw %d write attempts, want %d", len(dev.writes), protocol.TemplateLength)
	}
	if dev.reads != protocol.TemplateLength-1 {
		t.Errorf("Device saw %d read-backs, want %d", dev.reads, protocol.TemplateLength-1)
	}
}

// TestTransmitReadErrorsAreNonFatal tests that diagnostic read-back failures
// never block writes
func TestTransmitReadErrorsAreNonFatal(t *testing.T) {
	dev := &fakeDevice{failReadAt: map[int]error{
		0: errors.New("timeout"),
		5: errors.New("timeout"),
	}}

	result := Transmit(dev, protocol.Template(), noDelay)

	if result.FramesWritten != protocol.TemplateLength {
		t.Errorf("FramesWritten = %d, want %d despite read failures",
			result.FramesWritten, protocol.TemplateLength)
	}
	if len(result.WriteErrors) != 0 {
		t.Errorf("Expected no write errors, got %d", len(result.WriteErrors))
	}
	if len(result.ReadErrors) != 2 {
		t.Fatalf("Expected 2 read errors, got %d", len(result.ReadErrors))
	}
	for _, rerr := range result.ReadErrors {
		if !IsReadError(rerr) {
			t.Errorf("Recorded error should satisfy IsReadError: %v", rerr)
		}
	}
	if result.Clean() {
		t.Error("Read errors must surface as warnings")
	}
}

// TestTransmitAllWritesFail tests the worst case: every frame rejected
func TestTransmitAllWritesFail(t *testing.T) {
	fails := make(map[int]error, protocol.TemplateLength)
	for i := 0; i < protocol.TemplateLength; i++ {
		fails[i] = errors.New("unplugged")
	}
	dev := &fakeDevice{failWriteAt: fails}

	result := Transmit(dev, protocol.Template(), noDelay)

	if result.FramesWritten != 0 {
		t.Errorf("FramesWritten = %d, want 0", result.FramesWritten)
	}
	if len(result.WriteErrors) != protocol.TemplateLength {
		t.Errorf("Expected %d write errors, got %d", protocol.TemplateLength, len(result.WriteErrors))
	}
	if dev.reads != 0 {
		t.Errorf("No read-backs expected after failed writes, got %d", dev.reads)
	}
}

// TestOptionsSettleDelay tests the zero/negative delay conventions
func TestOptionsSettleDelay(t *testing.T) {
	if (&Options{}).settleDelay() != DefaultSettleDelay {
		t.Error("Zero delay should fall back to the default")
	}
	var nilOpts *Options
	if nilOpts.settleDelay() != DefaultSettleDelay {
		t.Error("Nil options should fall back to the default")
	}
	if noDelay.settleDelay() != 0 {
		t.Error("Negative delay should disable the sleep")
	}
	if (&Options{SettleDelay: DefaultSettleDelay / 2}).settleDelay() != DefaultSettleDelay/2 {
		t.Error("Positive delay should pass through")
	}
}
