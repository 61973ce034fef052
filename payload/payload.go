// Package payload extracts the f64 reading out of a record's payload
// bytes, given the data-field coding resolved by the DIB decoder.
package payload

import (
	"math"

	"github.com/mbus-go/mbus/dib"
	"github.com/mbus-go/mbus/endian"
	"github.com/mbus-go/mbus/errs"
)

// Value is the result of extracting one record's payload: the f64
// reading, the number of bytes consumed, and (for Real32 only) the
// raw IEEE-754 bits, preserved so a caller can distinguish NaN
// payloads bit-for-bit rather than through the widened float64.
type Value struct {
	Number   float64
	ByteSize int
	RawBits  uint32
	IsReal32 bool
	// Text holds the ASCII content of LVAR string payloads; Number is
	// NaN in that case, per the extractor's contract for non-numeric
	// payloads.
	Text string
}

var engine = endian.GetLittleEndianEngine()

// Extract reads the payload for the given coding from the front of
// data and returns its decoded value plus the number of bytes
// consumed.
func Extract(coding dib.Coding, data []byte) (Value, error) {
	switch coding {
	case dib.CodingNoData, dib.CodingSelectionForReadout:
		return Value{Number: 0, ByteSize: 0}, nil
	case dib.CodingInt8:
		return extractInt(data, 1)
	case dib.CodingInt16:
		return extractInt(data, 2)
	case dib.CodingInt24:
		return extractInt(data, 3)
	case dib.CodingInt32:
		return extractInt(data, 4)
	case dib.CodingInt48:
		return extractInt(data, 6)
	case dib.CodingInt64:
		return extractInt(data, 8)
	case dib.CodingReal32:
		return extractReal32(data)
	case dib.CodingBcd2:
		return extractBCD(data, 1)
	case dib.CodingBcd4:
		return extractBCD(data, 2)
	case dib.CodingBcd6:
		return extractBCD(data, 3)
	case dib.CodingBcd8:
		return extractBCD(data, 4)
	case dib.CodingBcd12:
		return extractBCD(data, 6)
	case dib.CodingVariableLength:
		return extractLVAR(data)
	default:
		return Value{}, errs.ErrUnsupportedCoding
	}
}

func extractInt(data []byte, n int) (Value, error) {
	if len(data) < n {
		return Value{}, errs.ErrTruncatedPayload
	}

	var raw int64
	for i := n - 1; i >= 0; i-- {
		raw = raw<<8 | int64(data[i])
	}

	// Sign-extend from n bytes to 64 bits.
	shift := uint(64 - 8*n)
	raw = (raw << shift) >> shift

	return Value{Number: float64(raw), ByteSize: n}, nil
}

func extractReal32(data []byte) (Value, error) {
	if len(data) < 4 {
		return Value{}, errs.ErrTruncatedPayload
	}

	bits := engine.Uint32(data[:4])
	f := math.Float32frombits(bits)

	return Value{Number: float64(f), ByteSize: 4, RawBits: bits, IsReal32: true}, nil
}
