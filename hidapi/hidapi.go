// Package hidapi implements the pendant transport on top of the hidapi
// library. This is the default backend: input packets arrive as interrupt
// reports and display blocks go out as feature reports.
package hidapi

import (
	"fmt"
	"time"

	"pendant/config"
	"pendant/transport"

	"github.com/sstallion/go-hid"
)

// Client wraps a hidapi connection to the pendant receiver.
type Client struct {
	dev *hid.Device
}

func init() {
	transport.Register("hidapi", NewClient)
}

// NewClient creates an unopened hidapi transport.
func NewClient() (transport.Transport, error) {
	return &Client{}, nil
}

// Open connects to the first HID device matching the configured VID/PID.
func (c *Client) Open() error {
	if c.dev != nil {
		return nil
	}

	if err := hid.Init(); err != nil {
		return fmt.Errorf("hidapi init: %w", err)
	}
	dev, err := hid.OpenFirst(config.VendorID, config.ProductID)
	if err != nil {
		return fmt.Errorf("pendant not found (VID=0x%04X PID=0x%04X): %w",
			config.VendorID, config.ProductID, err)
	}

	c.dev = dev
	return nil
}

// Read waits for one input packet. hidapi signals a timeout as a
// zero-length read, which is mapped to transport.ErrTimeout.
func (c *Client) Read(timeout time.Duration) ([]byte, error) {
	if c.dev == nil {
		return nil, transport.ErrClosed
	}

	buf := make([]byte, transport.PacketSize)
	n, err := c.dev.ReadWithTimeout(buf, timeout)
	if err != nil {
		return nil, fmt.Errorf("hidapi read: %w", err)
	}
	if n == 0 {
		return nil, transport.ErrTimeout
	}
	return buf[:n], nil
}

// WriteBlock sends one display transfer block as a feature report. The
// block's first byte is the report id.
func (c *Client) WriteBlock(block []byte) error {
	if c.dev == nil {
		return transport.ErrClosed
	}
	if len(block) != transport.BlockSize {
		return fmt.Errorf("display block must be %d bytes, got %d",
			transport.BlockSize, len(block))
	}

	if _, err := c.dev.SendFeatureReport(block); err != nil {
		return fmt.Errorf("hidapi feature report: %w", err)
	}
	return nil
}

// Close releases the device and shuts hidapi down.
func (c *Client) Close() error {
	if c.dev == nil {
		return nil
	}

	err := c.dev.Close()
	c.dev = nil
	hid.Exit()
	if err != nil {
		return fmt.Errorf("hidapi close: %w", err)
	}
	return nil
}

// Connected reports whether the device is open.
func (c *Client) Connected() bool {
	return c.dev != nil
}

// Info returns the receiver's manufacturer and product strings for
// status output.
func (c *Client) Info() (*hid.DeviceInfo, error) {
	if c.dev == nil {
		return nil, transport.ErrClosed
	}

	info, err := c.dev.GetDeviceInfo()
	if err != nil {
		return nil, fmt.Errorf("hidapi device info: %w", err)
	}
	return info, nil
}
