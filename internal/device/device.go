// Package device locates and opens the mouse through the host HID stack.
package device

import (
	"go.uber.org/zap"

	"github.com/sstallion/go-hid"

	"github.com/skalder/a15ctl/internal/logging"
	"github.com/skalder/a15ctl/internal/transport"
)

// USB identifiers of the Redgear A-15.
const (
	VendorID  uint16 = 0x1bcf
	ProductID uint16 = 0x08a0
)

// Info describes one matching HID interface, for the detect command.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
	Interface    int
}

// Open initializes the host HID stack and opens the first device matching
// the given identifiers. Failure here is fatal to the invocation: no frame
// is ever sent without an open handle. Callers must Close the returned
// device and call Exit when done.
func Open(vid, pid uint16) (*hid.Device, error) {
	if err := hid.Init(); err != nil {
		return nil, transport.NewOpenError("HID subsystem init failed", err)
	}

	dev, err := hid.OpenFirst(vid, pid)
	if err != nil {
		return nil, transport.NewOpenError("open failed", err)
	}
	if dev == nil {
		return nil, transport.NewNotFoundError(vid, pid)
	}

	logging.Info("device opened",
		zap.Uint16("vendor_id", vid),
		zap.Uint16("product_id", pid),
	)
	return dev, nil
}

// Exit releases the host HID stack. Safe to defer alongside Device.Close.
func Exit() {
	_ = hid.Exit()
}

// List enumerates HID interfaces matching the given identifiers without
// opening them. Wildcard enumeration (vid or pid zero) follows the hidapi
// convention.
func List(vid, pid uint16) ([]Info, error) {
	if err := hid.Init(); err != nil {
		return nil, transport.NewOpenError("HID subsystem init failed", err)
	}

	var found []Info
	err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		found = append(found, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
			Serial:       info.SerialNbr,
			Interface:    info.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, transport.NewOpenError("enumeration failed", err)
	}
	return found, nil
}
