// Package archive is the opt-in history store for decoded M-Bus
// readings. It sits entirely outside the decode fast path: callers
// feed it already-decoded record.DataRecord values and it appends
// them to a compact, columnar, optionally compressed binary blob,
// keyed by a structural hash of the reading's series identity
// (meter identification, storage number, tariff, VIF signature).
package archive

import (
	"fmt"
	"strconv"

	"github.com/mbus-go/mbus/internal/hash"
	"github.com/mbus-go/mbus/vib"
)

// SeriesKey identifies one time series within an archive: one meter's
// one storage/tariff slot for one set of unit names. The sub-device
// number is not part of the key. Two readings with the same SeriesKey
// belong in the same column pair.
type SeriesKey uint64

// NewSeriesKey computes the series key for a reading, hashing the
// tuple that makes two readings comparable over time: the meter's
// identification number, its storage number and tariff, and the unit
// vector's signature (the names of its unit atoms, in order). Unit
// exponents and the record's decimal scale are not part of the key.
func NewSeriesKey(identification uint32, storageNumber uint64, tariff uint32, units vib.UnitVector) SeriesKey {
	var sig [10]byte

	n := units.Len()
	for i := range n {
		sig[i] = byte(units.At(i).Name)
	}

	key := strconv.FormatUint(uint64(identification), 10) + "|" +
		strconv.FormatUint(storageNumber, 10) + "|" +
		strconv.FormatUint(uint64(tariff), 10) + "|" +
		string(sig[:n])

	return SeriesKey(hash.ID(key))
}

func (k SeriesKey) String() string {
	return fmt.Sprintf("%016x", uint64(k))
}
