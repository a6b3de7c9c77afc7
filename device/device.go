// Package device ties a pendant transport to the protocol codec: a
// polling loop that turns the raw packet stream into input events, and
// the display output path.
package device

import (
	"log/slog"
	"sync"
	"time"

	"pendant/protocol"
	"pendant/transport"
)

// Default timing used when Options leaves the fields zero.
const (
	DefaultInterval    = 50 * time.Millisecond
	DefaultReadTimeout = 100 * time.Millisecond
)

// state tracks the polling lifecycle. Stopped is terminal; a stopped
// device is never restarted.
type state int

const (
	stateIdle state = iota
	statePolling
	stateStopped
)

// Handler receives one decoded input event per accepted packet.
type Handler func(protocol.InputFrame)

// Options configures a Device. The zero value selects defaults.
type Options struct {
	// Interval is the polling cadence.
	Interval time.Duration

	// ReadTimeout bounds each individual transport read.
	ReadTimeout time.Duration

	// Logger receives swallowed transport errors and subscriber
	// panics. Defaults to slog.Default.
	Logger *slog.Logger

	// Checksum, when set, is installed on the change filter to
	// validate each packet's trailing checksum byte.
	Checksum func(raw []byte) bool
}

// Device owns one pendant transport. The polling goroutine is the sole
// reader of the transport's input pipe and the only writer of the change
// filter's state; display writes are serialized separately and may run
// concurrently with polling.
type Device struct {
	tr     transport.Transport
	log    *slog.Logger
	filter *protocol.ChangeFilter

	interval    time.Duration
	readTimeout time.Duration

	mu      sync.Mutex // guards state, handler, stop, done
	state   state
	handler Handler
	stop    chan struct{}
	done    chan struct{}

	writeMu sync.Mutex // serializes 3-block display updates
}

// New creates a device on an already-constructed transport. The caller
// opens and closes the transport.
func New(tr transport.Transport, opts Options) *Device {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	filter := protocol.NewChangeFilter()
	filter.Checksum = opts.Checksum

	return &Device{
		tr:          tr,
		log:         opts.Logger,
		filter:      filter,
		interval:    opts.Interval,
		readTimeout: opts.ReadTimeout,
	}
}

// Subscribe installs the event handler. The last registered handler
// wins; passing nil silences event delivery. Safe to call while polling.
func (d *Device) Subscribe(fn Handler) {
	d.mu.Lock()
	d.handler = fn
	d.mu.Unlock()
}

// Transport returns the underlying transport, for status queries.
func (d *Device) Transport() transport.Transport {
	return d.tr
}
