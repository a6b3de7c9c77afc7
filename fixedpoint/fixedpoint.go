// Package fixedpoint implements the pendant's 32-bit fixed-point number
// format used for axis coordinates on the LCD.
//
// A value is a 16-bit integer part plus exactly four decimal digits of
// fraction, packed into four bytes:
//
//	byte 0: integer part, low byte
//	byte 1: integer part, high byte
//	byte 2: fraction (0-9999), low byte
//	byte 3: fraction, high 7 bits; bit 7 is the sign (1 = negative)
//
// The representable range is [-65535.9999, +65535.9999].
package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// EncodedSize is the wire size of one fixed-point value in bytes.
	EncodedSize = 4

	// MaxMagnitude is the largest absolute value that can be encoded.
	MaxMagnitude = 65535.9999

	fractionScale = 10000
	maxInteger    = 0xFFFF
	signBit       = 0x80
)

// ErrOutOfRange is returned when a value's magnitude exceeds MaxMagnitude.
var ErrOutOfRange = errors.New("fixed-point value out of range")

// Encode converts value to its 4-byte wire representation.
// The fraction is rounded to the nearest ten-thousandth, ties away from
// zero. A fraction that rounds up to 1.0 carries into the integer part.
func Encode(value float64) ([]byte, error) {
	if math.IsNaN(value) || math.Abs(value) > MaxMagnitude {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, value)
	}

	integer, fraction := splitDecimal(math.Abs(value))

	// Rounding the fraction can yield exactly 10000 (e.g. 1.99995);
	// carry into the integer part and re-check the bound.
	if fraction == fractionScale {
		integer++
		fraction = 0
	}
	if integer > maxInteger {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, value)
	}

	buf := []byte{
		byte(integer),
		byte(integer >> 8),
		byte(fraction),
		byte(fraction >> 8),
	}
	if value < 0 {
		buf[3] |= signBit
	}
	return buf, nil
}

// splitDecimal splits abs into its integer part and a four-digit decimal
// fraction, rounding the fraction to the nearest ten-thousandth, ties
// away from zero.
//
// The split works on the value's shortest decimal rendering rather than
// on binary arithmetic: the float64 nearest to 1.99995 sits just below
// it, so scaling the binary remainder would round down to 9999 while the
// decimal spelling rounds up to 10000. Going through the rendering makes
// the carry fire exactly when the decimal rounding carries.
func splitDecimal(abs float64) (uint32, uint32) {
	// abs is finite, non-negative and below 65536 here, so the 'f'
	// rendering is plain digits and both parses are infallible.
	rendered := strconv.FormatFloat(abs, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(rendered, ".")
	integer, _ := strconv.ParseUint(intPart, 10, 32)

	for len(fracPart) < 4 {
		fracPart += "0"
	}
	fraction, _ := strconv.ParseUint(fracPart[:4], 10, 32)
	if fracPart[4:] != "" && fracPart[4] >= '5' {
		fraction++
	}
	return uint32(integer), uint32(fraction)
}

// Decode converts a 4-byte wire representation back to a float64.
// It is the exact inverse of Encode for every encodable value.
func Decode(data []byte) (float64, error) {
	if len(data) < EncodedSize {
		return 0, fmt.Errorf("fixed-point value needs %d bytes, got %d", EncodedSize, len(data))
	}

	integer := uint32(data[0]) | uint32(data[1])<<8
	fraction := uint32(data[2]) | uint32(data[3]&^byte(signBit))<<8

	value := float64(integer) + float64(fraction)/fractionScale
	if data[3]&signBit != 0 {
		value = -value
	}
	return value, nil
}
