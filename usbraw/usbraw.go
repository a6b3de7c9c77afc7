// Package usbraw implements the pendant transport directly over libusb
// for hosts without a usable hidapi. Input packets are read from the
// interrupt IN endpoint; display blocks are sent with HID SET_REPORT
// control transfers.
package usbraw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pendant/config"
	"pendant/transport"

	"github.com/google/gousb"
)

const (
	// Interrupt IN endpoint carrying input packets.
	EndpointIn = 0x81

	// HID class SET_REPORT request, feature report type in the high
	// byte of wValue.
	requestSetReport  = 0x09
	reportTypeFeature = 0x03
)

// Client wraps a libusb connection to the pendant receiver.
type Client struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()
	in   *gousb.InEndpoint
}

func init() {
	transport.Register("usbraw", NewClient)
}

// NewClient creates an unopened libusb transport.
func NewClient() (transport.Transport, error) {
	return &Client{}, nil
}

// Open finds the receiver by the configured VID/PID, detaches any kernel
// HID driver and claims the default interface.
func (c *Client) Open() error {
	if c.dev != nil {
		return nil
	}

	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == config.VendorID && uint16(desc.Product) == config.ProductID
	})
	if err != nil {
		ctx.Close()
		return fmt.Errorf("failed to enumerate USB devices: %w", err)
	}
	if len(devs) == 0 {
		ctx.Close()
		return fmt.Errorf("pendant not found (VID=0x%04X PID=0x%04X)",
			config.VendorID, config.ProductID)
	}

	// Use the first matching device
	dev := devs[0]
	for i := 1; i < len(devs); i++ {
		devs[i].Close()
	}

	// The kernel's generic HID driver owns the interface by default.
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return fmt.Errorf("failed to set auto-detach: %w", err)
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return fmt.Errorf("failed to claim default interface: %w", err)
	}

	in, err := intf.InEndpoint(EndpointIn & 0x0F)
	if err != nil {
		done()
		dev.Close()
		ctx.Close()
		return fmt.Errorf("failed to open interrupt in endpoint: %w", err)
	}

	c.ctx = ctx
	c.dev = dev
	c.intf = intf
	c.done = done
	c.in = in
	return nil
}

// Read waits for one input packet on the interrupt endpoint. A transfer
// cut short by the deadline is mapped to transport.ErrTimeout.
func (c *Client) Read(timeout time.Duration) ([]byte, error) {
	if c.dev == nil {
		return nil, transport.ErrClosed
	}

	readCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	buf := make([]byte, transport.PacketSize)
	n, err := c.in.ReadContext(readCtx, buf)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, gousb.TransferCancelled) {
			return nil, transport.ErrTimeout
		}
		return nil, fmt.Errorf("interrupt read: %w", err)
	}
	if n == 0 {
		return nil, transport.ErrTimeout
	}
	return buf[:n], nil
}

// WriteBlock sends one display transfer block as a SET_REPORT(feature)
// control transfer. The block's first byte is the report id.
func (c *Client) WriteBlock(block []byte) error {
	if c.dev == nil {
		return transport.ErrClosed
	}
	if len(block) != transport.BlockSize {
		return fmt.Errorf("display block must be %d bytes, got %d",
			transport.BlockSize, len(block))
	}

	rType := uint8(gousb.ControlOut | gousb.ControlClass | gousb.ControlInterface)
	wValue := uint16(reportTypeFeature)<<8 | uint16(block[0])
	if _, err := c.dev.Control(rType, requestSetReport, wValue, 0, block); err != nil {
		return fmt.Errorf("set report: %w", err)
	}
	return nil
}

// Close releases the interface, device and libusb context.
func (c *Client) Close() error {
	if c.dev == nil {
		return nil
	}

	c.done()
	err := c.dev.Close()
	c.ctx.Close()

	c.ctx = nil
	c.dev = nil
	c.intf = nil
	c.done = nil
	c.in = nil

	if err != nil {
		return fmt.Errorf("usb close: %w", err)
	}
	return nil
}

// Connected reports whether the transport is open.
func (c *Client) Connected() bool {
	return c.dev != nil
}
