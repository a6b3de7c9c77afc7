package protocol

import (
	"errors"
	"fmt"
	"time"
)

// ErrShortPacket is returned when an input buffer is smaller than one
// packet.
var ErrShortPacket = errors.New("input packet too short")

// InputFrame is one decoded pendant input packet.
type InputFrame struct {
	FirstKey  Key
	SecondKey Key
	RightDial FeedSelector
	LeftDial  AxisSelector
	JogDelta  int8
	Timestamp time.Time
}

// IsValidHeader reports whether raw starts with the pendant packet
// header. It is separate from DecodeInput so a packet with a bad header
// can still be decoded for diagnostics.
func IsValidHeader(raw []byte) bool {
	return len(raw) > 0 && raw[0] == InputHeader
}

// DecodeInput parses an 8-byte input packet. The header, seed and
// checksum bytes are not validated here; key and dial codes outside the
// lookup tables decode to their Unknown values. The caller stamps the
// frame's capture time.
func DecodeInput(raw []byte) (InputFrame, error) {
	if len(raw) < InputPacketSize {
		return InputFrame{}, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(raw))
	}

	return InputFrame{
		FirstKey:  KeyFromRaw(raw[offFirstKey]),
		SecondKey: KeyFromRaw(raw[offSecondKey]),
		RightDial: FeedFromRaw(raw[offRightDial]),
		LeftDial:  AxisFromRaw(raw[offLeftDial]),
		JogDelta:  int8(raw[offJogDelta]),
	}, nil
}

// String formats a frame for event logs.
func (f InputFrame) String() string {
	return fmt.Sprintf("keys=%s/%s feed=%s axis=%s jog=%+d",
		f.FirstKey, f.SecondKey, f.RightDial, f.LeftDial, f.JogDelta)
}
