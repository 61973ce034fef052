// Package record assembles DIB, VIB and payload into a DataRecord and
// iterates a record stream to the end of the telegram or a
// manufacturer-specific tail.
package record

import (
	"github.com/mbus-go/mbus/dib"
	"github.com/mbus-go/mbus/errs"
	"github.com/mbus-go/mbus/payload"
	"github.com/mbus-go/mbus/vib"
)

// Option configures the VIB decoder used by each record; it is the
// same option type vib.Parse accepts, re-exported so callers never
// import vib directly just to configure record parsing.
type Option = vib.Option

// DataRecord is one fully resolved entry of a record stream: its
// storage/tariff/sub-device addressing, its unit vector and decimal
// scale/offset, its semantic labels, and its raw extracted value.
//
// Value always holds the raw, unscaled number the payload coding
// produced; ScaleExponent and OffsetExponent are reported alongside
// it rather than folded in, matching the distinct fields the data
// model keeps for them.
type DataRecord struct {
	Function       dib.FunctionField
	StorageNumber  uint64
	Tariff         uint32
	SubDevice      uint32
	Units          vib.UnitVector
	ScaleExponent  int32
	OffsetExponent int32
	Labels         vib.LabelSet
	Quantity       vib.Quantity
	PlainText      []byte
	Value          float64
	Text           string
	RawSize        int
}

// Stream is the result of iterating a record-stream byte region:
// the ordered records decoded, whether a "more records follow"
// sentinel terminated it, and any manufacturer-specific tail bytes
// captured after a terminating DIF.
type Stream struct {
	Records          []DataRecord
	MoreFollows      bool
	ManufacturerTail []byte
}

const (
	difNoMoreRecords = 0x0F
	difMoreFollow    = 0x1F
	difIdleFiller    = 0x2F
)

// Parse iterates data, a record-stream byte region, decoding each
// record in turn until the stream is exhausted or a terminating DIF
// (0x0F / 0x1F) is encountered.
func Parse(data []byte, opts ...Option) (Stream, error) {
	var s Stream

	o := 0
	for o < len(data) {
		switch data[o] {
		case difNoMoreRecords:
			s.ManufacturerTail = data[o+1:]

			return s, nil
		case difMoreFollow:
			s.MoreFollows = true
			s.ManufacturerTail = data[o+1:]

			return s, nil
		case difIdleFiller:
			o++

			continue
		}

		rec, size, err := parseRecord(data[o:], opts...)
		if err != nil {
			return Stream{}, err
		}

		s.Records = append(s.Records, rec)
		o += size
	}

	return s, nil
}

func parseRecord(data []byte, opts ...Option) (DataRecord, int, error) {
	db, err := dib.Parse(data)
	if err != nil {
		return DataRecord{}, 0, err
	}

	if db.Size >= len(data) {
		return DataRecord{}, 0, errs.ErrTruncatedPayload
	}

	vb, err := vib.Parse(data[db.Size:], opts...)
	if err != nil {
		return DataRecord{}, 0, err
	}

	payloadOffset := db.Size + vb.Size
	if payloadOffset > len(data) {
		return DataRecord{}, 0, errs.ErrTruncatedPayload
	}

	val, err := payload.Extract(db.Coding, data[payloadOffset:])
	if err != nil {
		return DataRecord{}, 0, err
	}

	rawSize := payloadOffset + val.ByteSize
	if rawSize > len(data) {
		return DataRecord{}, 0, errs.ErrTruncatedPayload
	}
	if rawSize < 2 {
		return DataRecord{}, 0, errs.ErrTruncatedPayload
	}

	rec := DataRecord{
		Function:       db.Function,
		StorageNumber:  db.StorageNumber,
		Tariff:         db.Tariff,
		SubDevice:      db.SubDevice,
		Units:          vb.Units,
		ScaleExponent:  vb.ScaleExponent,
		OffsetExponent: vb.OffsetExponent,
		Labels:         vb.Labels,
		Quantity:       vb.Quantity,
		PlainText:      append([]byte(nil), vb.PlainText[:vb.PlainTextLen]...),
		Value:          val.Number,
		Text:           val.Text,
		RawSize:        rawSize,
	}

	return rec, rawSize, nil
}
