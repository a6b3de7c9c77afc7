package device

import (
	"fmt"

	"pendant/protocol"
	"pendant/transport"
)

// SendDisplay encodes the frame and writes its three transfer blocks in
// order. Concurrent updates are serialized so blocks from two frames
// never interleave; the first failed block aborts the rest of the update
// and no retry state is carried over.
func (d *Device) SendDisplay(frame protocol.DisplayFrame) error {
	payload, err := protocol.EncodeDisplay(frame)
	if err != nil {
		return err
	}
	blocks, err := protocol.DisplayBlocks(payload)
	if err != nil {
		return err
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if !d.tr.Connected() {
		return transport.ErrClosed
	}
	for i, block := range blocks {
		if err := d.tr.WriteBlock(block); err != nil {
			return fmt.Errorf("display block %d of %d: %w", i+1, len(blocks), err)
		}
	}
	return nil
}

// ClearDisplay blanks the LCD. The hardware needs the zero frame twice
// to clear reliably.
func (d *Device) ClearDisplay() error {
	blank := protocol.DisplayFrame{
		JogMode:    protocol.JogNone,
		Coordinate: protocol.CoordinatePrimary,
	}
	for i := 0; i < 2; i++ {
		if err := d.SendDisplay(blank); err != nil {
			return err
		}
	}
	return nil
}
