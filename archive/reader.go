package archive

import (
	"fmt"
	"iter"
)

// Reader gives read access to a history blob's decoded readings
// without needing the telegrams it was built from. It is stateless
// and safe for concurrent use once constructed by Open.
type Reader struct {
	key SeriesKey
	ts  []int64
	val []float64
}

// Open validates, decompresses and decodes a history blob produced by
// Writer.Finish.
func Open(blob []byte) (*Reader, error) {
	if len(blob) < blobHeaderSize {
		return nil, fmt.Errorf("archive: blob too short")
	}

	h := getBlobHeader(blob)
	if h.Magic != blobMagic {
		return nil, fmt.Errorf("archive: not a history blob")
	}

	rest := blob[blobHeaderSize:]
	if uint32(len(rest)) < h.TimeLen+h.ValueLen {
		return nil, fmt.Errorf("archive: blob truncated")
	}

	tsCompressed := rest[:h.TimeLen]
	valCompressed := rest[h.TimeLen : h.TimeLen+h.ValueLen]

	codec, err := codecFor(h.Compression)
	if err != nil {
		return nil, err
	}

	tsRaw, err := codec.Decompress(tsCompressed)
	if err != nil {
		return nil, fmt.Errorf("archive: decompress timestamp column: %w", err)
	}

	valRaw, err := codec.Decompress(valCompressed)
	if err != nil {
		return nil, fmt.Errorf("archive: decompress value column: %w", err)
	}

	ts, ok := decodeTimestamps(tsRaw, int(h.Count))
	if !ok {
		return nil, fmt.Errorf("archive: malformed timestamp column")
	}

	val, ok := decodeValues(valRaw, int(h.Count))
	if !ok {
		return nil, fmt.Errorf("archive: malformed value column")
	}

	return &Reader{
		key: SeriesKey(h.Key),
		ts:  ts,
		val: val,
	}, nil
}

// Key returns the series key the blob was written under.
func (r *Reader) Key() SeriesKey { return r.key }

// Len returns the number of readings stored in the blob.
func (r *Reader) Len() int { return len(r.ts) }

// Reading is one (timestamp, value) pair read back from a history blob.
type Reading struct {
	TimestampUnixMicro int64
	Value              float64
}

// All iterates every reading in the blob in storage order.
func (r *Reader) All() iter.Seq[Reading] {
	return func(yield func(Reading) bool) {
		for i := range r.ts {
			if !yield(Reading{TimestampUnixMicro: r.ts[i], Value: r.val[i]}) {
				return
			}
		}
	}
}

// At returns the reading at the given index, or false if index is
// out of range.
func (r *Reader) At(index int) (Reading, bool) {
	if index < 0 || index >= len(r.ts) {
		return Reading{}, false
	}

	return Reading{TimestampUnixMicro: r.ts[index], Value: r.val[index]}, true
}
