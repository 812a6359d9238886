package transport

import (
	"time"

	"go.uber.org/zap"

	"github.com/skalder/a15ctl/internal/logging"
	"github.com/skalder/a15ctl/internal/protocol"
)

// DefaultSettleDelay is how long the firmware needs to process a set-report
// before it will answer the corresponding get-report.
const DefaultSettleDelay = 300 * time.Millisecond

// Device is the feature-report channel the loop writes to. *hid.Device from
// github.com/sstallion/go-hid satisfies it; tests substitute a fake. The
// first byte of each buffer is the HID report ID.
type Device interface {
	SendFeatureReport(p []byte) (int, error)
	GetFeatureReport(p []byte) (int, error)
}

// Options tunes a transmission. The zero value is usable.
type Options struct {
	// SettleDelay overrides the write-to-read settling delay. Zero means
	// DefaultSettleDelay; negative means no delay (tests).
	SettleDelay time.Duration
}

func (o *Options) settleDelay() time.Duration {
	if o == nil || o.SettleDelay == 0 {
		return DefaultSettleDelay
	}
	if o.SettleDelay < 0 {
		return 0
	}
	return o.SettleDelay
}

// Result reports the outcome of one transaction. The transaction is a
// sequence of mostly independent protocol fields, so a rejected frame does
// not abandon the rest; callers inspect WriteErrors to learn what was
// skipped.
type Result struct {
	// FramesTotal is the length of the transmitted sequence.
	FramesTotal int

	// FramesWritten counts frames the device accepted.
	FramesWritten int

	// WriteErrors holds one entry per rejected frame write.
	WriteErrors []*DeviceError

	// ReadErrors holds one entry per failed diagnostic read-back. These are
	// never fatal and do not affect the written configuration.
	ReadErrors []*DeviceError
}

// Clean reports whether every frame was written and read back without error.
func (r *Result) Clean() bool {
	return len(r.WriteErrors) == 0 && len(r.ReadErrors) == 0
}

// CompletedWithWarnings reports whether the transaction finished but some
// frames failed to write or read back.
func (r *Result) CompletedWithWarnings() bool {
	return !r.Clean()
}

// Transmit sends the sequence to the device one frame at a time, in
// transaction order. For each frame: a feature-report write, the settling
// delay, then a diagnostic feature-report read-back of the same report ID.
//
// Policy is continue-on-error: a rejected write is recorded and the loop
// moves to the next frame (skipping that frame's delay and read-back), so a
// single bad frame cannot abandon the independent fields that follow. Read
// failures are always non-fatal and only recorded. No retries are performed
// and read-back content is not interpreted; it is logged for diagnostics
// only.
//
// The device handle is owned exclusively by this call for its duration;
// frames already accepted by the firmware stay applied regardless of later
// failures.
func Transmit(dev Device, seq protocol.Sequence, opts *Options) *Result {
	delay := opts.settleDelay()
	result := &Result{FramesTotal: len(seq)}

	for i, frame := range seq {
		logging.LogFrame("SET_REPORT", i, frame[:])
		if _, err := dev.SendFeatureReport(frame.Bytes()); err != nil {
			werr := NewWriteError(i, err)
			result.WriteErrors = append(result.WriteErrors, werr)
			logging.Warn("frame write failed",
				zap.Int("frame", i),
				zap.String("data", frame.String()),
				zap.Error(err),
			)
			continue
		}
		result.FramesWritten++

		time.Sleep(delay)

		// Read back into a buffer seeded with the frame so byte 0 carries
		// the report ID the firmware expects.
		buf := frame.Bytes()
		if _, err := dev.GetFeatureReport(buf); err != nil {
			rerr := NewReadError(i, err)
			result.ReadErrors = append(result.ReadErrors, rerr)
			logging.Warn("frame read-back failed",
				zap.Int("frame", i),
				zap.Error(err),
			)
			continue
		}
		logging.LogFrame("GET_REPORT", i, buf)
	}

	logging.Info("transaction finished",
		zap.Int("frames_total", result.FramesTotal),
		zap.Int("frames_written", result.FramesWritten),
		zap.Int("write_errors", len(result.WriteErrors)),
		zap.Int("read_errors", len(result.ReadErrors)),
	)
	return result
}
