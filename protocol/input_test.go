package protocol

import (
	"errors"
	"testing"
)

// Verify the full key table, including the non-monotonic tail: 0x0E and
// 0x0F are the MPG and Step buttons while 0x10 is Macro-10.
func TestKeyFromRaw(t *testing.T) {
	testCases := []struct {
		raw      byte
		expected Key
	}{
		{0x00, KeyNone},
		{0x01, KeyReset},
		{0x02, KeyStop},
		{0x03, KeyStartPause},
		{0x04, KeyFeedPlus},
		{0x05, KeyFeedMinus},
		{0x06, KeySpindlePlus},
		{0x07, KeySpindleMinus},
		{0x08, KeyMachineHome},
		{0x09, KeySafeZ},
		{0x0A, KeyWorkpieceHome},
		{0x0B, KeySpindleOnOff},
		{0x0C, KeyFunction},
		{0x0D, KeyProbeZ},
		{0x0E, KeyManualPulse},
		{0x0F, KeyStepContinuous},
		{0x10, KeyMacro10},
		{0x11, KeyUnknown},
		{0x42, KeyUnknown},
		{0xFF, KeyUnknown},
	}

	for _, tc := range testCases {
		if got := KeyFromRaw(tc.raw); got != tc.expected {
			t.Errorf("KeyFromRaw(0x%02X) = %v, expected %v", tc.raw, got, tc.expected)
		}
	}
}

// Macro-10 is the 14th-numbered key even though its raw code 0x10 sits
// above the 15th and 16th keys on the wire.
func TestMacro10Ordering(t *testing.T) {
	if got := KeyFromRaw(0x10); got != KeyMacro10 {
		t.Fatalf("KeyFromRaw(0x10) = %v, expected KeyMacro10", got)
	}
	if KeyMacro10 <= KeyProbeZ || KeyMacro10 >= KeyManualPulse {
		t.Errorf("KeyMacro10 (%d) not ordered between KeyProbeZ (%d) and KeyManualPulse (%d)",
			KeyMacro10, KeyProbeZ, KeyManualPulse)
	}
}

// The dial lookups are total: every byte value resolves to a position or
// Unknown, never to an error.
func TestDialLookupTotality(t *testing.T) {
	knownFeed := map[byte]bool{0x0D: true, 0x0E: true, 0x0F: true, 0x10: true,
		0x1A: true, 0x1B: true, DefaultLeadCode: true}
	knownAxis := map[byte]bool{0x06: true, 0x11: true, 0x12: true, 0x13: true,
		0x14: true, 0x15: true, 0x16: true}

	for code := 0; code <= 0xFF; code++ {
		raw := byte(code)

		feed := FeedFromRaw(raw)
		if knownFeed[raw] && feed == FeedUnknown {
			t.Errorf("FeedFromRaw(0x%02X) = Unknown, expected a position", raw)
		}
		if !knownFeed[raw] && feed != FeedUnknown {
			t.Errorf("FeedFromRaw(0x%02X) = %v, expected Unknown", raw, feed)
		}

		axis := AxisFromRaw(raw)
		if knownAxis[raw] && axis == AxisUnknown {
			t.Errorf("AxisFromRaw(0x%02X) = Unknown, expected a position", raw)
		}
		if !knownAxis[raw] && axis != AxisUnknown {
			t.Errorf("AxisFromRaw(0x%02X) = %v, expected Unknown", raw, axis)
		}
	}
}

// Verify the feed and axis dial code maps position by position.
func TestDialPositions(t *testing.T) {
	feedCases := []struct {
		raw      byte
		expected FeedSelector
	}{
		{0x0D, Feed2},
		{0x0E, Feed5},
		{0x0F, Feed10},
		{0x10, Feed30},
		{0x1A, Feed60},
		{0x1B, Feed100},
		{0x9B, FeedLead},
	}
	for _, tc := range feedCases {
		if got := FeedFromRaw(tc.raw); got != tc.expected {
			t.Errorf("FeedFromRaw(0x%02X) = %v, expected %v", tc.raw, got, tc.expected)
		}
	}

	axisCases := []struct {
		raw      byte
		expected AxisSelector
	}{
		{0x06, AxisOff},
		{0x11, AxisX},
		{0x12, AxisY},
		{0x13, AxisZ},
		{0x14, AxisA},
		{0x15, AxisB},
		{0x16, AxisC},
	}
	for _, tc := range axisCases {
		if got := AxisFromRaw(tc.raw); got != tc.expected {
			t.Errorf("AxisFromRaw(0x%02X) = %v, expected %v", tc.raw, got, tc.expected)
		}
	}
}

// Some firmware revisions report the Lead detent as 0x1C instead of 0x9B.
func TestSetLeadCode(t *testing.T) {
	defer SetLeadCode(DefaultLeadCode)

	SetLeadCode(0x1C)
	if got := FeedFromRaw(0x1C); got != FeedLead {
		t.Errorf("after SetLeadCode(0x1C): FeedFromRaw(0x1C) = %v, expected FeedLead", got)
	}
	if got := FeedFromRaw(DefaultLeadCode); got != FeedUnknown {
		t.Errorf("after SetLeadCode(0x1C): FeedFromRaw(0x9B) = %v, expected Unknown", got)
	}
}

// Decode the packet produced by pressing Start/Pause with the feed dial
// at 5% and the axis dial at Y, while the jog wheel moved +5 detents.
func TestDecodeInputPacket(t *testing.T) {
	raw := []byte{0x04, 0x00, 0x03, 0x00, 0x0E, 0x12, 0x05, 0x00}

	frame, err := DecodeInput(raw)
	if err != nil {
		t.Fatalf("DecodeInput returned error: %v", err)
	}

	if frame.FirstKey != KeyStartPause {
		t.Errorf("FirstKey = %v, expected KeyStartPause", frame.FirstKey)
	}
	if frame.SecondKey != KeyNone {
		t.Errorf("SecondKey = %v, expected KeyNone", frame.SecondKey)
	}
	if frame.RightDial != Feed5 {
		t.Errorf("RightDial = %v, expected Feed5", frame.RightDial)
	}
	if frame.LeftDial != AxisY {
		t.Errorf("LeftDial = %v, expected AxisY", frame.LeftDial)
	}
	if frame.JogDelta != 5 {
		t.Errorf("JogDelta = %d, expected 5", frame.JogDelta)
	}
}

// Jog wheel deltas are signed 8-bit: 128-255 are negative.
func TestDecodeJogDeltaSigned(t *testing.T) {
	testCases := []struct {
		raw      byte
		expected int8
	}{
		{0x00, 0},
		{0x01, 1},
		{0x7F, 127},
		{0x80, -128},
		{0xFF, -1},
		{0xFB, -5},
	}

	for _, tc := range testCases {
		raw := []byte{0x04, 0x00, 0x00, 0x00, 0x0D, 0x06, tc.raw, 0x00}
		frame, err := DecodeInput(raw)
		if err != nil {
			t.Fatalf("DecodeInput returned error: %v", err)
		}
		if frame.JogDelta != tc.expected {
			t.Errorf("JogDelta for raw 0x%02X = %d, expected %d", tc.raw, frame.JogDelta, tc.expected)
		}
	}
}

func TestDecodeShortPacket(t *testing.T) {
	_, err := DecodeInput([]byte{0x04, 0x00, 0x03})
	if !errors.Is(err, ErrShortPacket) {
		t.Errorf("DecodeInput of a short buffer returned %v, expected ErrShortPacket", err)
	}
}

// A packet with an unexpected header still decodes, so callers can
// inspect malformed traffic; IsValidHeader is the strict check.
func TestIsValidHeader(t *testing.T) {
	good := []byte{0x04, 0x00, 0x01, 0x00, 0x0D, 0x06, 0x00, 0x00}
	bad := []byte{0x05, 0x00, 0x01, 0x00, 0x0D, 0x06, 0x00, 0x00}

	if !IsValidHeader(good) {
		t.Error("IsValidHeader rejected a packet with header 0x04")
	}
	if IsValidHeader(bad) {
		t.Error("IsValidHeader accepted a packet with header 0x05")
	}
	if IsValidHeader(nil) {
		t.Error("IsValidHeader accepted an empty buffer")
	}

	if _, err := DecodeInput(bad); err != nil {
		t.Errorf("DecodeInput of a bad-header packet returned error: %v", err)
	}
}
