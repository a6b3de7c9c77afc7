// Package transport defines the capability a pendant I/O backend
// presents: bounded reads of 8-byte input packets and writes of 8-byte
// display blocks. Concrete backends (hidapi, raw libusb, serial bridge)
// register themselves here by name.
package transport

import (
	"errors"
	"time"
)

const (
	// PacketSize is the size of one input packet read from the device.
	PacketSize = 8

	// BlockSize is the size of one display transfer block, including
	// the leading report id byte.
	BlockSize = 8
)

var (
	// ErrTimeout is returned by Read when no packet arrived within the
	// timeout. The polling loop treats it as silence, not a failure.
	ErrTimeout = errors.New("read timed out")

	// ErrClosed is returned by any operation on a transport that was
	// never opened or has been closed.
	ErrClosed = errors.New("device not open")
)

// Transport is a connection to a pendant receiver.
//
// Read and WriteBlock target independent pipes and may be called from
// different goroutines, but neither is safe for concurrent use with
// itself.
type Transport interface {
	// Open connects to the device. Opening an already-open transport
	// is a no-op.
	Open() error

	// Read blocks for at most timeout waiting for one input packet.
	// It returns ErrTimeout when nothing arrived and ErrClosed when
	// the transport is not open.
	Read(timeout time.Duration) ([]byte, error)

	// WriteBlock sends one BlockSize-byte display transfer block.
	WriteBlock(block []byte) error

	// Close releases the device. Closing twice is a no-op.
	Close() error

	// Connected reports whether the transport is open.
	Connected() bool
}
