package protocol

import "bytes"

// ChangeFilter decides which raw input packets represent a meaningful
// state transition. It suppresses packets with a bad header, packets
// captured mid-rotation of a dial, and byte-identical repeats of the last
// accepted packet.
//
// The filter holds no locks; the polling loop is its only caller.
type ChangeFilter struct {
	// Checksum optionally validates the packet's trailing checksum
	// byte. The device is trusted by default, so it is nil unless the
	// caller installs one; packets failing it are dropped like any
	// other malformed packet.
	Checksum func(raw []byte) bool

	lastAccepted []byte
}

// NewChangeFilter returns a filter with no retained packet, so the first
// well-formed packet is always novel.
func NewChangeFilter() *ChangeFilter {
	return &ChangeFilter{}
}

// Accept reports whether raw is a novel, well-formed packet. On
// acceptance the packet becomes the reference for the next novelty
// check; rejected packets leave the retained state untouched.
func (f *ChangeFilter) Accept(raw []byte) bool {
	if len(raw) < InputPacketSize || !IsValidHeader(raw) {
		return false
	}
	if f.Checksum != nil && !f.Checksum(raw) {
		return false
	}
	if isDialTransition(raw) {
		return false
	}
	if bytes.Equal(raw, f.lastAccepted) {
		return false
	}

	f.lastAccepted = append(f.lastAccepted[:0], raw...)
	return true
}

// isDialTransition detects the signature of a packet captured between
// dial detents: both selector codes unmatched while no key is down and
// the jog wheel is still.
func isDialTransition(raw []byte) bool {
	return FeedFromRaw(raw[offRightDial]) == FeedUnknown &&
		AxisFromRaw(raw[offLeftDial]) == AxisUnknown &&
		KeyFromRaw(raw[offFirstKey]) == KeyNone &&
		KeyFromRaw(raw[offSecondKey]) == KeyNone &&
		raw[offJogDelta] == 0
}
