// Package protocol implements the pendant's proprietary HID wire format:
// decoding of 8-byte input packets (keys, selector dials, jog wheel) and
// encoding of 21-byte display payloads (coordinates, feed and spindle
// rates, jog mode), plus the change filter that turns the raw packet
// stream into discrete state transitions.
package protocol

// Input packet layout (8 bytes):
//
//	byte 0: packet header (0x04)
//	byte 1: random seed (ignored)
//	byte 2: first key code
//	byte 3: second key code
//	byte 4: right dial (feed selector) code
//	byte 5: left dial (axis selector) code
//	byte 6: jog wheel delta (signed 8-bit)
//	byte 7: checksum (not validated by default, see ChangeFilter)
const (
	InputPacketSize = 8
	InputHeader     = 0x04

	offFirstKey  = 2
	offSecondKey = 3
	offRightDial = 4
	offLeftDial  = 5
	offJogDelta  = 6
)

// Display payload layout (21 bytes, delivered as three 8-byte transfer
// blocks prefixed with a report id):
//
//	bytes 0-1:   header 0xFDFE, little-endian
//	byte 2:      constant seed byte
//	byte 3:      control byte (coordinate system | jog mode)
//	bytes 4-15:  axis 1..3, fixed-point, 4 bytes each
//	bytes 16-17: feed rate, little-endian
//	bytes 18-19: spindle rate, little-endian
//	byte 20:     padding
const (
	DisplayPayloadSize = 21
	DisplayBlockSize   = 8
	DisplayReportID    = 0x06

	displayHeaderLo = 0xFE
	displayHeaderHi = 0xFD
	displaySeed     = 0xFE

	displayBlockData = DisplayBlockSize - 1
)
