package archive

import (
	"encoding/binary"
	"math"
)

// encodeTimestamps delta-encodes a column of Unix-microsecond
// timestamps: the first value verbatim, every following value as the
// zigzag-varint delta from its predecessor. Telegrams for a given
// series arrive close together in time, so deltas stay small and the
// compress.Codec layer that wraps this column does the rest of the
// space reduction.
func encodeTimestamps(values []int64) []byte {
	buf := make([]byte, 0, len(values)*2)

	var prev int64
	for i, v := range values {
		delta := v
		if i > 0 {
			delta = v - prev
		}
		buf = binary.AppendVarint(buf, delta)
		prev = v
	}

	return buf
}

// decodeTimestamps reverses encodeTimestamps, reconstructing exactly
// count values from data.
func decodeTimestamps(data []byte, count int) ([]int64, bool) {
	out := make([]int64, 0, count)

	var prev int64
	for i := 0; i < count; i++ {
		delta, n := binary.Varint(data)
		if n <= 0 {
			return nil, false
		}
		data = data[n:]

		v := delta
		if i > 0 {
			v = prev + delta
		}
		out = append(out, v)
		prev = v
	}

	return out, true
}

// encodeValues stores a column of readings as raw little-endian
// IEEE-754 float64 bit patterns, one per reading. Unlike timestamps,
// successive reading values have no reliable delta structure (meters
// report widely varying quantities across a fleet), so this column
// leans entirely on the compress.Codec layer rather than a bespoke
// bit-level scheme.
func encodeValues(values []float64) []byte {
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// decodeValues reverses encodeValues, reconstructing exactly count
// values from data.
func decodeValues(data []byte, count int) ([]float64, bool) {
	if len(data) < count*8 {
		return nil, false
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}

	return out, true
}
