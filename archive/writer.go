package archive

import (
	"fmt"

	"github.com/mbus-go/mbus/format"
)

// Writer accumulates readings for a single series and finishes them
// into a self-contained history blob. A Writer is not safe to share
// across goroutines; distinct Writer instances are independent and
// may be used concurrently.
type Writer struct {
	key    SeriesKey
	config *config
	ts     []int64
	val    []float64
	done   bool
}

// NewWriter creates a Writer for the series identified by key.
func NewWriter(key SeriesKey, opts ...Option) (*Writer, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{
		key:    key,
		config: c,
	}, nil
}

// Append adds one reading to the series. timestampUnixMicro is the
// reading's timestamp in microseconds since the Unix epoch.
func (w *Writer) Append(timestampUnixMicro int64, value float64) {
	w.ts = append(w.ts, timestampUnixMicro)
	w.val = append(w.val, value)
}

// Len reports the number of readings appended so far.
func (w *Writer) Len() int { return len(w.ts) }

// Finish compresses and frames the accumulated columns into a
// history blob. A Writer must not be used again after Finish returns.
func (w *Writer) Finish() ([]byte, error) {
	if w.done {
		return nil, fmt.Errorf("archive: writer already finished")
	}
	w.done = true

	codec, err := codecFor(w.config.compression)
	if err != nil {
		return nil, err
	}

	tsRaw := encodeTimestamps(w.ts)
	valRaw := encodeValues(w.val)

	tsCompressed, err := codec.Compress(tsRaw)
	if err != nil {
		return nil, fmt.Errorf("archive: compress timestamp column: %w", err)
	}

	valCompressed, err := codec.Compress(valRaw)
	if err != nil {
		return nil, fmt.Errorf("archive: compress value column: %w", err)
	}

	header := blobHeader{
		Magic:       blobMagic,
		Key:         uint64(w.key),
		Count:       uint32(len(w.ts)),
		Encoding:    format.TypeDelta,
		Compression: w.config.compression,
		TimeLen:     uint32(len(tsCompressed)),
		ValueLen:    uint32(len(valCompressed)),
	}

	blob := make([]byte, blobHeaderSize+len(tsCompressed)+len(valCompressed))
	putBlobHeader(blob, header)
	copy(blob[blobHeaderSize:], tsCompressed)
	copy(blob[blobHeaderSize+len(tsCompressed):], valCompressed)

	return blob, nil
}
