// Package serialbridge implements the pendant transport over a serial
// port, for receivers re-exposed through a UART/CDC bridge. The bridge
// relays the raw 8-byte packet stream unframed in both directions.
package serialbridge

import (
	"fmt"
	"time"

	"pendant/config"
	"pendant/transport"

	"go.bug.st/serial"
)

const baudRate = 115200

// Client wraps a serial port connection to a pendant bridge.
type Client struct {
	port serial.Port
}

func init() {
	transport.Register("serial", NewClient)
}

// NewClient creates an unopened serial-bridge transport.
func NewClient() (transport.Transport, error) {
	return &Client{}, nil
}

// Open opens the configured serial port.
func (c *Client) Open() error {
	if c.port != nil {
		return nil
	}
	if config.SerialPort == "" {
		return fmt.Errorf("serial bridge port not configured")
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
	}
	port, err := serial.Open(config.SerialPort, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", config.SerialPort, err)
	}

	c.port = port
	return nil
}

// Read collects one 8-byte packet. The port read timeout bounds the wait;
// an expired timeout with nothing received maps to transport.ErrTimeout,
// while a packet cut short by the timeout is returned as-is for the
// filter to reject.
func (c *Client) Read(timeout time.Duration) ([]byte, error) {
	if c.port == nil {
		return nil, transport.ErrClosed
	}

	if err := c.port.SetReadTimeout(timeout); err != nil {
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	buf := make([]byte, transport.PacketSize)
	total := 0
	for total < transport.PacketSize {
		n, err := c.port.Read(buf[total:])
		if err != nil {
			return nil, fmt.Errorf("serial read: %w", err)
		}
		if n == 0 {
			// Timeout expired.
			if total == 0 {
				return nil, transport.ErrTimeout
			}
			return buf[:total], nil
		}
		total += n
	}
	return buf, nil
}

// WriteBlock sends one display transfer block.
func (c *Client) WriteBlock(block []byte) error {
	if c.port == nil {
		return transport.ErrClosed
	}
	if len(block) != transport.BlockSize {
		return fmt.Errorf("display block must be %d bytes, got %d",
			transport.BlockSize, len(block))
	}

	n, err := c.port.Write(block)
	if err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	if n != len(block) {
		return fmt.Errorf("short serial write: %d of %d bytes", n, len(block))
	}
	return nil
}

// Close closes the serial port.
func (c *Client) Close() error {
	if c.port == nil {
		return nil
	}

	err := c.port.Close()
	c.port = nil
	if err != nil {
		return fmt.Errorf("serial close: %w", err)
	}
	return nil
}

// Connected reports whether the port is open.
func (c *Client) Connected() bool {
	return c.port != nil
}
