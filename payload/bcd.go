package payload

import "github.com/mbus-go/mbus/errs"

// extractBCD decodes n bytes of packed BCD, low-digit-first, into a
// decimal value. The topmost nibble of the last byte being 0xF marks
// the value negative (per invariant/property 5); any other nibble
// outside 0-9 fails with ErrBcdError.
func extractBCD(data []byte, n int) (Value, error) {
	if len(data) < n {
		return Value{}, errs.ErrTruncatedPayload
	}

	negative := false
	var magnitude float64
	var mul float64 = 1

	for i := 0; i < n; i++ {
		b := data[i]
		lo := b & 0x0F
		hi := b >> 4

		if i == n-1 && hi == 0x0F {
			negative = true
			hi = 0
		}

		if lo > 9 || hi > 9 {
			return Value{}, errs.ErrBcdError
		}

		magnitude += float64(lo) * mul
		mul *= 10
		magnitude += float64(hi) * mul
		mul *= 10
	}

	if negative {
		magnitude = -magnitude
	}

	return Value{Number: magnitude, ByteSize: n}, nil
}
