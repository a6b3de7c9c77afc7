package device

import (
	"errors"
	"time"

	"pendant/protocol"
	"pendant/transport"
)

var (
	// ErrAlreadyPolling is returned by Start on a device that is
	// already polling.
	ErrAlreadyPolling = errors.New("polling already started")

	// ErrStopped is returned by Start on a device that has been
	// stopped; stopped devices are not restarted.
	ErrStopped = errors.New("device stopped")
)

// Start launches the polling goroutine. The transport must be open.
func (d *Device) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case statePolling:
		return ErrAlreadyPolling
	case stateStopped:
		return ErrStopped
	}
	if !d.tr.Connected() {
		return transport.ErrClosed
	}

	d.state = statePolling
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(d.stop, d.done)
	return nil
}

// Stop terminates polling. It is idempotent, safe to call from any
// goroutine, and returns only once the polling goroutine has exited, so
// no subscriber callback fires after it returns. The wait is bounded by
// one read timeout plus the in-flight callback.
func (d *Device) Stop() {
	d.mu.Lock()
	switch d.state {
	case stateIdle:
		d.state = stateStopped
		d.mu.Unlock()
		return
	case statePolling:
		d.state = stateStopped
		close(d.stop)
	}
	done := d.done
	d.mu.Unlock()

	if done != nil {
		<-done
	}
}

// loop runs one tick per interval. Ticks never overlap: a tick's read,
// decode and dispatch all complete before the next tick begins.
func (d *Device) loop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

// tick reads one packet and pushes it through the filter. Read timeouts
// and transport errors become silence (an all-zero buffer the filter
// rejects); they never terminate the loop.
func (d *Device) tick() {
	raw, err := d.tr.Read(d.readTimeout)
	if err != nil {
		if !errors.Is(err, transport.ErrTimeout) {
			d.log.Debug("pendant read failed", "error", err)
		}
		raw = make([]byte, transport.PacketSize)
	}

	if !d.filter.Accept(raw) {
		return
	}

	frame, err := protocol.DecodeInput(raw)
	if err != nil {
		return
	}
	frame.Timestamp = time.Now()

	d.mu.Lock()
	handler := d.handler
	d.mu.Unlock()
	if handler == nil {
		return
	}
	d.dispatch(handler, frame)
}

// dispatch invokes the subscriber, containing any panic so one faulty
// callback cannot kill the polling loop.
func (d *Device) dispatch(handler Handler, frame protocol.InputFrame) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("pendant subscriber panicked", "panic", r)
		}
	}()
	handler(frame)
}
