package protocol

// Key identifies one of the pendant's sixteen buttons.
type Key int

const (
	KeyNone Key = iota
	KeyReset
	KeyStop
	KeyStartPause
	KeyFeedPlus
	KeyFeedMinus
	KeySpindlePlus
	KeySpindleMinus
	KeyMachineHome
	KeySafeZ
	KeyWorkpieceHome
	KeySpindleOnOff
	KeyFunction
	KeyProbeZ
	KeyMacro10
	KeyManualPulse
	KeyStepContinuous
	KeyUnknown
)

// keyTable maps raw key codes to keys. The mapping is not monotonic:
// codes 0x0E and 0x0F are the MPG and Step/Continuous buttons while
// 0x10 is Macro-10, which sits between them on the keypad.
var keyTable = [...]Key{
	0x00: KeyNone,
	0x01: KeyReset,
	0x02: KeyStop,
	0x03: KeyStartPause,
	0x04: KeyFeedPlus,
	0x05: KeyFeedMinus,
	0x06: KeySpindlePlus,
	0x07: KeySpindleMinus,
	0x08: KeyMachineHome,
	0x09: KeySafeZ,
	0x0A: KeyWorkpieceHome,
	0x0B: KeySpindleOnOff,
	0x0C: KeyFunction,
	0x0D: KeyProbeZ,
	0x0E: KeyManualPulse,
	0x0F: KeyStepContinuous,
	0x10: KeyMacro10,
}

// KeyFromRaw maps a raw key code to a Key. Codes outside the table
// resolve to KeyUnknown, never to an error.
func KeyFromRaw(raw byte) Key {
	if int(raw) < len(keyTable) {
		return keyTable[raw]
	}
	return KeyUnknown
}

// String returns the label printed on the keypad.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyReset:
		return "Reset"
	case KeyStop:
		return "Stop"
	case KeyStartPause:
		return "Start/Pause"
	case KeyFeedPlus:
		return "Feed+"
	case KeyFeedMinus:
		return "Feed-"
	case KeySpindlePlus:
		return "Spindle+"
	case KeySpindleMinus:
		return "Spindle-"
	case KeyMachineHome:
		return "M-Home"
	case KeySafeZ:
		return "Safe-Z"
	case KeyWorkpieceHome:
		return "W-Home"
	case KeySpindleOnOff:
		return "S-On/Off"
	case KeyFunction:
		return "Fn"
	case KeyProbeZ:
		return "Probe-Z"
	case KeyMacro10:
		return "Macro-10"
	case KeyManualPulse:
		return "MPG"
	case KeyStepContinuous:
		return "Step"
	default:
		return "Unknown"
	}
}
