package transport

import (
	"fmt"
	"strings"
)

// Error types for device communication

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNotFound indicates no matching device was found on the host
	ErrTypeNotFound ErrorType = iota
	// ErrTypeOpen indicates the device was found but could not be opened
	ErrTypeOpen
	// ErrTypeWrite indicates a feature-report write failed for one frame
	ErrTypeWrite
	// ErrTypeRead indicates a feature-report read-back failed for one frame
	ErrTypeRead
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNotFound:
		return "Device Not Found"
	case ErrTypeOpen:
		return "Device Open Error"
	case ErrTypeWrite:
		return "Write Error"
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeviceError represents an error that occurred while talking to the mouse.
// Write and read errors are local to a single frame; open and not-found
// errors are fatal and occur before any frame is sent.
type DeviceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	FrameIndex int       // Transaction position of the affected frame (-1 if not frame-scoped)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a device-not-found error
func NewNotFoundError(vid, pid uint16) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeNotFound,
		Message:    fmt.Sprintf("no HID device matching %04x:%04x", vid, pid),
		FrameIndex: -1,
	}
}

// NewOpenError creates a device-open error
func NewOpenError(message string, err error) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeOpen,
		Message:    message,
		FrameIndex: -1,
		Err:        err,
	}
}

// NewWriteError creates a per-frame write error
func NewWriteError(frameIndex int, err error) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeWrite,
		Message:    fmt.Sprintf("feature report write failed for frame %d", frameIndex),
		FrameIndex: frameIndex,
		Err:        err,
	}
}

// NewReadError creates a per-frame read-back error
func NewReadError(frameIndex int, err error) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeRead,
		Message:    fmt.Sprintf("feature report read-back failed for frame %d", frameIndex),
		FrameIndex: frameIndex,
		Err:        err,
	}
}

// IsNotFoundError checks if an error is a device-not-found error
func IsNotFoundError(err error) bool {
	if devErr, ok := err.(*DeviceError); ok {
		return devErr.Type == ErrTypeNotFound
	}
	return false
}

// IsOpenError checks if an error is a device-open error
func IsOpenError(err error) bool {
	if devErr, ok := err.(*DeviceError); ok {
		return devErr.Type == ErrTypeOpen
	}
	return false
}

// IsWriteError checks if an error is a per-frame write error
func IsWriteError(err error) bool {
	if devErr, ok := err.(*DeviceError); ok {
		return devErr.Type == ErrTypeWrite
	}
	return false
}

// IsReadError checks if an error is a per-frame read-back error
func IsReadError(err error) bool {
	if devErr, ok := err.(*DeviceError); ok {
		return devErr.Type == ErrTypeRead
	}
	return false
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	devErr, ok := err.(*DeviceError)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch devErr.Type {
	case ErrTypeNotFound:
		return strings.Join([]string{
			"The mouse was not found on the USB bus.",
			"Troubleshooting:",
			"  • Check that the mouse is plugged in",
			"  • Try a different USB port (avoid unpowered hubs)",
			"  • Run 'a15ctl detect' to list matching interfaces",
		}, "\n")

	case ErrTypeOpen:
		return strings.Join([]string{
			"The mouse was found but could not be opened.",
			"Troubleshooting:",
			"  • On Linux, hidraw nodes usually need a udev rule or root",
			"  • Check that no other configuration tool holds the device",
			"  • Unplug and replug the mouse, then retry",
		}, "\n")

	case ErrTypeWrite:
		return strings.Join([]string{
			"One or more frames were rejected during the transaction.",
			"Frames already accepted remain applied; there is no rollback.",
			"Troubleshooting:",
			"  • Re-run the command to replay the full transaction",
			"  • Check the cable and USB port if failures persist",
		}, "\n")

	case ErrTypeRead:
		return "A diagnostic read-back failed. This does not affect the settings that were written."

	default:
		return "An error occurred. Please check the error message for details."
	}
}
