package protocol

import (
	"encoding/binary"
	"fmt"

	"pendant/fixedpoint"
)

// JogMode is the jog indicator shown on the pendant LCD. Values are wire
// bit-field constants, not a dense enumeration: JogReset occupies its own
// bit and combines with the coordinate-system bit.
type JogMode byte

const (
	JogContinuous JogMode = 0x00
	JogStep       JogMode = 0x01
	JogNone       JogMode = 0x02
	JogReset      JogMode = 0x40
)

// CoordinateSystem selects which coordinate set the LCD labels its axes
// with. It occupies the top bit of the control byte.
type CoordinateSystem byte

const (
	CoordinatePrimary   CoordinateSystem = 0x00 // X/Y/Z
	CoordinateSecondary CoordinateSystem = 0x80 // X1/Y1/Z1
)

// DisplayFrame is one full display update: three axis coordinates plus
// feed and spindle rates and the mode indicators.
type DisplayFrame struct {
	JogMode     JogMode
	Coordinate  CoordinateSystem
	Axis1       float64
	Axis2       float64
	Axis3       float64
	FeedRate    uint16
	SpindleRate uint16
}

// EncodeDisplay assembles the 21-byte display payload. It is a pure
// function; axis values outside the fixed-point range are the only
// failure mode.
func EncodeDisplay(frame DisplayFrame) ([]byte, error) {
	payload := make([]byte, 0, DisplayPayloadSize)
	payload = append(payload, displayHeaderLo, displayHeaderHi, displaySeed,
		byte(frame.Coordinate)|byte(frame.JogMode))

	for _, axis := range [...]float64{frame.Axis1, frame.Axis2, frame.Axis3} {
		encoded, err := fixedpoint.Encode(axis)
		if err != nil {
			return nil, fmt.Errorf("axis value %v: %w", axis, err)
		}
		payload = append(payload, encoded...)
	}

	payload = binary.LittleEndian.AppendUint16(payload, frame.FeedRate)
	payload = binary.LittleEndian.AppendUint16(payload, frame.SpindleRate)
	payload = append(payload, 0x00)
	return payload, nil
}

// DisplayBlocks splits a 21-byte payload into the three 8-byte transfer
// blocks the hardware expects: a report id byte followed by seven payload
// bytes each. The caller must write the blocks in order and abort on the
// first write failure.
func DisplayBlocks(payload []byte) ([][]byte, error) {
	if len(payload) != DisplayPayloadSize {
		return nil, fmt.Errorf("display payload must be %d bytes, got %d",
			DisplayPayloadSize, len(payload))
	}

	blocks := make([][]byte, 0, DisplayPayloadSize/displayBlockData)
	for off := 0; off < DisplayPayloadSize; off += displayBlockData {
		block := make([]byte, 1, DisplayBlockSize)
		block[0] = DisplayReportID
		block = append(block, payload[off:off+displayBlockData]...)
		blocks = append(blocks, block)
	}
	return blocks, nil
}
