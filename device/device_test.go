package device

import (
	"errors"
	"sync"
	"time"

	"pendant/protocol"
	"pendant/transport"
)

// fakeTransport serves a scripted sequence of read results and records
// every block written to it. Once the script is exhausted every read
// times out.
type fakeTransport struct {
	mu        sync.Mutex
	reads     []readResult
	writes    [][]byte
	failWrite int // 1-based write attempt that fails; 0 = never
	attempts  int
	open      bool
}

type readResult struct {
	data []byte
	err  error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{open: true}
}

func (f *fakeTransport) queue(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, readResult{data: data})
}

func (f *fakeTransport) queueErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, readResult{err: err})
}

func (f *fakeTransport) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	return nil
}

func (f *fakeTransport) Read(timeout time.Duration) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return nil, transport.ErrClosed
	}
	if len(f.reads) == 0 {
		return nil, transport.ErrTimeout
	}
	next := f.reads[0]
	f.reads = f.reads[1:]
	return next.data, next.err
}

func (f *fakeTransport) WriteBlock(block []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return transport.ErrClosed
	}
	f.attempts++
	if f.failWrite != 0 && f.attempts == f.failWrite {
		return errors.New("transfer failed")
	}
	f.writes = append(f.writes, append([]byte(nil), block...))
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	return nil
}

func (f *fakeTransport) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *fakeTransport) written() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.writes))
	copy(out, f.writes)
	return out
}

// testOptions polls fast enough for tests to finish promptly.
func testOptions() Options {
	return Options{
		Interval:    time.Millisecond,
		ReadTimeout: time.Millisecond,
	}
}

// jogPacket builds a well-formed packet with the given jog delta.
func jogPacket(delta byte) []byte {
	return []byte{0x04, 0x00, 0x00, 0x00, 0x0D, 0x11, delta, 0x00}
}

// collect subscribes a channel-backed handler and returns the channel.
func collect(d *Device) <-chan protocol.InputFrame {
	events := make(chan protocol.InputFrame, 64)
	d.Subscribe(func(frame protocol.InputFrame) {
		events <- frame
	})
	return events
}
