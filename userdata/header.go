// Package userdata decodes the M-Bus application-layer user-data
// block: the control-information dispatch, the 12-byte fixed header
// carried by long-header variable-data responses, and the
// application-abort control information field.
package userdata

import (
	"github.com/mbus-go/mbus/errs"
)

const fixedHeaderLen = 12

// FixedHeader is the 12-byte header preceding the record stream in a
// long-header variable-data response (CI 0x72). For the short-header
// variant (CI 0x76) only AccessNumber, Status and Signature are
// filled. Fixed-data responses (CI 0x73/0x7B) are not decoded into a
// FixedHeader.
type FixedHeader struct {
	Identification uint32 // 8-digit BCD decoded to decimal
	Manufacturer   string // 3 uppercase ASCII letters
	Version        byte
	Medium         Medium
	AccessNumber   byte
	Status         Status
	Signature      uint16
}

// ParseFixedHeader parses the 12-byte fixed header starting at the
// beginning of data. It does not consume or validate any bytes beyond
// the 12 it needs.
func ParseFixedHeader(data []byte) (FixedHeader, error) {
	if len(data) < fixedHeaderLen {
		return FixedHeader{}, errs.ErrBufferTooShort
	}

	id, err := decodeBCDUint32LE(data[0:4])
	if err != nil {
		return FixedHeader{}, err
	}

	manufacturer := decodeManufacturer(data[4], data[5])

	return FixedHeader{
		Identification: id,
		Manufacturer:   manufacturer,
		Version:        data[6],
		Medium:         Medium(data[7]),
		AccessNumber:   data[8],
		Status:         Status(data[9]),
		Signature:      uint16(data[10]) | uint16(data[11])<<8,
	}, nil
}

// decodeBCDUint32LE decodes a little-endian packed-BCD byte sequence
// (low nibble = least-significant decimal digit) into a decimal
// value. Used for the identification number, which carries no sign
// nibble (unlike payload BCD).
func decodeBCDUint32LE(data []byte) (uint32, error) {
	var value uint32
	var mul uint32 = 1
	for _, b := range data {
		lo := b & 0x0F
		hi := b >> 4
		if lo > 9 || hi > 9 {
			return 0, errs.ErrBcdError
		}
		value += uint32(lo) * mul
		mul *= 10
		value += uint32(hi) * mul
		mul *= 10
	}

	return value, nil
}

// decodeManufacturer unpacks the two-byte little-endian manufacturer
// code into its three base-32 letters, per the wire format noted in
// the protocol's external interfaces: m = id - ('A' - 1) per letter,
// three 5-bit groups packed into the low 15 bits.
func decodeManufacturer(lo, hi byte) string {
	v := uint16(lo) | uint16(hi)<<8
	c1 := byte((v>>10)&0x1F) + 'A' - 1
	c2 := byte((v>>5)&0x1F) + 'A' - 1
	c3 := byte(v&0x1F) + 'A' - 1

	return string([]byte{c1, c2, c3})
}
