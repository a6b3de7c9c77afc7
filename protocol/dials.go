package protocol

// FeedSelector is a detent position of the right-hand rotary dial, which
// selects the feed override / step size. Positions are ordered as printed
// on the dial face.
type FeedSelector int

const (
	FeedUnknown FeedSelector = iota
	Feed2
	Feed5
	Feed10
	Feed30
	Feed60
	Feed100
	FeedLead
)

// AxisSelector is a detent position of the left-hand rotary dial, which
// selects the axis driven by the jog wheel.
type AxisSelector int

const (
	AxisUnknown AxisSelector = iota
	AxisOff
	AxisX
	AxisY
	AxisZ
	AxisA
	AxisB
	AxisC
)

// DefaultLeadCode is the raw code of the feed dial's "Lead" detent.
// Firmware revisions disagree on this code (0x9B vs 0x1C), so it is
// configurable via SetLeadCode.
const DefaultLeadCode = 0x9B

var feedCodes = map[byte]FeedSelector{
	0x0D:            Feed2,
	0x0E:            Feed5,
	0x0F:            Feed10,
	0x10:            Feed30,
	0x1A:            Feed60,
	0x1B:            Feed100,
	DefaultLeadCode: FeedLead,
}

var axisCodes = map[byte]AxisSelector{
	0x06: AxisOff,
	0x11: AxisX,
	0x12: AxisY,
	0x13: AxisZ,
	0x14: AxisA,
	0x15: AxisB,
	0x16: AxisC,
}

// SetLeadCode remaps the feed dial's "Lead" detent to the given raw code.
// Call once at startup, before any decoding; the tables are not
// synchronized.
func SetLeadCode(code byte) {
	for c, pos := range feedCodes {
		if pos == FeedLead {
			delete(feedCodes, c)
		}
	}
	feedCodes[code] = FeedLead
}

// FeedFromRaw maps a raw right-dial code to a FeedSelector. Codes between
// detents resolve to FeedUnknown, never to an error.
func FeedFromRaw(raw byte) FeedSelector {
	if pos, ok := feedCodes[raw]; ok {
		return pos
	}
	return FeedUnknown
}

// AxisFromRaw maps a raw left-dial code to an AxisSelector. Codes between
// detents resolve to AxisUnknown, never to an error.
func AxisFromRaw(raw byte) AxisSelector {
	if pos, ok := axisCodes[raw]; ok {
		return pos
	}
	return AxisUnknown
}

// String returns the label printed on the feed dial face.
func (f FeedSelector) String() string {
	switch f {
	case Feed2:
		return "2%"
	case Feed5:
		return "5%"
	case Feed10:
		return "10%"
	case Feed30:
		return "30%"
	case Feed60:
		return "60%"
	case Feed100:
		return "100%"
	case FeedLead:
		return "Lead"
	default:
		return "Unknown"
	}
}

// String returns the label printed on the axis dial face.
func (a AxisSelector) String() string {
	switch a {
	case AxisOff:
		return "Off"
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisA:
		return "A"
	case AxisB:
		return "B"
	case AxisC:
		return "C"
	default:
		return "Unknown"
	}
}
