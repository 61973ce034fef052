package archive

import (
	"github.com/mbus-go/mbus/record"
	"github.com/mbus-go/mbus/userdata"
)

// SeriesKeyOf derives the series key a decoded reading belongs to,
// from the fixed header it was read under and the record itself.
func SeriesKeyOf(header userdata.FixedHeader, rec record.DataRecord) SeriesKey {
	return NewSeriesKey(header.Identification, rec.StorageNumber, rec.Tariff, rec.Units)
}

// AppendRecord appends a decoded reading to the writer, reading its
// value straight off the record. The caller supplies the timestamp
// since records carry no wall-clock time of their own.
func (w *Writer) AppendRecord(timestampUnixMicro int64, rec record.DataRecord) {
	w.Append(timestampUnixMicro, rec.Value)
}
