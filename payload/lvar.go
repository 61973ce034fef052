package payload

import (
	"math"

	"github.com/mbus-go/mbus/errs"
)

// extractLVAR decodes the variable-length payload: the first byte
// selects the subrange (ASCII, positive/negative BCD, binary, or
// floating-point array) and, for the numeric subranges, the count of
// following bytes.
func extractLVAR(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, errs.ErrTruncatedPayload
	}

	lvar := data[0]
	rest := data[1:]

	switch {
	case lvar <= 0xBF:
		n := int(lvar)
		if len(rest) < n {
			return Value{}, errs.ErrTruncatedPayload
		}

		return Value{
			Number:   math.NaN(),
			ByteSize: 1 + n,
			Text:     string(rest[:n]),
		}, nil
	case lvar >= 0xC0 && lvar <= 0xCF:
		n := int(lvar & 0x0F)
		v, err := extractBCD(rest, n)
		if err != nil {
			return Value{}, err
		}

		return Value{Number: v.Number, ByteSize: 1 + n}, nil
	case lvar >= 0xD0 && lvar <= 0xDF:
		n := int(lvar & 0x0F)
		if len(rest) < n {
			return Value{}, errs.ErrTruncatedPayload
		}
		v, err := extractBCD(rest, n)
		if err != nil {
			return Value{}, err
		}

		return Value{Number: -v.Number, ByteSize: 1 + n}, nil
	case lvar >= 0xE0 && lvar <= 0xEF:
		n := int(lvar & 0x0F)
		v, err := extractInt(rest, n)
		if err != nil {
			return Value{}, err
		}

		return Value{Number: v.Number, ByteSize: 1 + n}, nil
	case lvar >= 0xF0 && lvar <= 0xFA:
		v, err := extractReal32(rest)
		if err != nil {
			return Value{}, err
		}

		return Value{Number: v.Number, ByteSize: 1 + v.ByteSize, RawBits: v.RawBits, IsReal32: true}, nil
	default:
		return Value{}, errs.ErrUnsupportedCoding
	}
}
