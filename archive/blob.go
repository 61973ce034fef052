package archive

import (
	"encoding/binary"

	"github.com/mbus-go/mbus/compress"
	"github.com/mbus-go/mbus/format"
)

// blobMagic tags a history blob so Open can fail fast on foreign or
// truncated input instead of misreading garbage as a column count.
const blobMagic = 0x4D425842 // "MBXB"

// blobHeader is the fixed-size prefix of a history blob. It is
// written and read in little-endian, matching the rest of this
// module's wire conventions.
type blobHeader struct {
	Magic       uint32
	Key         uint64
	Count       uint32
	Encoding    format.EncodingType
	Compression format.CompressionType
	TimeLen     uint32 // length of the (possibly compressed) timestamp column
	ValueLen    uint32 // length of the (possibly compressed) value column
}

const blobHeaderSize = 4 + 8 + 4 + 1 + 1 + 4 + 4

func putBlobHeader(dst []byte, h blobHeader) {
	binary.LittleEndian.PutUint32(dst[0:4], h.Magic)
	binary.LittleEndian.PutUint64(dst[4:12], h.Key)
	binary.LittleEndian.PutUint32(dst[12:16], h.Count)
	dst[16] = byte(h.Encoding)
	dst[17] = byte(h.Compression)
	binary.LittleEndian.PutUint32(dst[18:22], h.TimeLen)
	binary.LittleEndian.PutUint32(dst[22:26], h.ValueLen)
}

func getBlobHeader(src []byte) blobHeader {
	return blobHeader{
		Magic:       binary.LittleEndian.Uint32(src[0:4]),
		Key:         binary.LittleEndian.Uint64(src[4:12]),
		Count:       binary.LittleEndian.Uint32(src[12:16]),
		Encoding:    format.EncodingType(src[16]),
		Compression: format.CompressionType(src[17]),
		TimeLen:     binary.LittleEndian.Uint32(src[18:22]),
		ValueLen:    binary.LittleEndian.Uint32(src[22:26]),
	}
}

func codecFor(compression format.CompressionType) (compress.Codec, error) {
	if compression == 0 {
		compression = format.CompressionNone
	}

	return compress.GetCodec(compression)
}
