// Package dib decodes the Data Information Block: one DIF byte plus
// up to 10 DIFE extension bytes, chained by each byte's high-bit
// "more follows" flag, into storage number, tariff, sub-device,
// function field and data-field coding.
package dib

import "github.com/mbus-go/mbus/errs"

const maxDIFE = 10

// FunctionField classifies what kind of reading a record carries.
type FunctionField uint8

const (
	FunctionInstantaneousValue FunctionField = iota
	FunctionMaximumValue
	FunctionMinimumValue
	FunctionValueDuringErrorState
)

func (f FunctionField) String() string {
	switch f {
	case FunctionInstantaneousValue:
		return "InstantaneousValue"
	case FunctionMaximumValue:
		return "MaximumValue"
	case FunctionMinimumValue:
		return "MinimumValue"
	case FunctionValueDuringErrorState:
		return "ValueDuringErrorState"
	default:
		return "Unknown"
	}
}

// Coding is the data-field coding selected by the low nibble of DIF.
type Coding uint8

const (
	CodingNoData Coding = iota
	CodingInt8
	CodingInt16
	CodingInt24
	CodingInt32
	CodingReal32
	CodingInt48
	CodingInt64
	CodingSelectionForReadout
	CodingBcd2
	CodingBcd4
	CodingBcd6
	CodingBcd8
	CodingVariableLength
	CodingBcd12
	CodingSpecialFunction
)

var codingNames = [...]string{
	"NoData", "Int8", "Int16", "Int24", "Int32", "Real32", "Int48", "Int64",
	"SelectionForReadout", "Bcd2", "Bcd4", "Bcd6", "Bcd8", "VariableLength",
	"Bcd12", "SpecialFunction",
}

func (c Coding) String() string {
	if int(c) < len(codingNames) {
		return codingNames[c]
	}

	return "Unknown"
}

// Block is the resolved Data Information Block for one record.
type Block struct {
	StorageNumber uint64
	Tariff        uint32
	SubDevice     uint32
	Function      FunctionField
	Coding        Coding
	// Size is the number of bytes this block consumed (1 + len(DIFE)).
	Size int
}

// Parse decodes a DIB starting at data[0]. It never inspects the
// full-byte special markers (0x0F/0x1F/0x2F) — the record assembler
// handles those before calling Parse.
func Parse(data []byte) (Block, error) {
	if len(data) == 0 {
		return Block{}, errs.ErrBufferTooShort
	}

	dif := data[0]
	b := Block{
		Function: FunctionField((dif >> 4) & 0b11),
		Coding:   Coding(dif & 0x0F),
	}

	storageBits := uint64((dif >> 6) & 0b1)
	storageShift := uint(1)

	size := 1
	cont := dif&0x80 != 0
	n := 0

	for cont {
		if n >= maxDIFE {
			return Block{}, errs.ErrDifeChainTooLong
		}
		if size >= len(data) {
			return Block{}, errs.ErrBufferTooShort
		}

		e := data[size]
		storageBits |= uint64(e&0x0F) << storageShift
		storageShift += 4

		b.Tariff |= uint32(e>>4&0b11) << (2 * uint(n))
		b.SubDevice |= uint32(e>>6&0b1) << uint(n)

		size++
		n++
		cont = e&0x80 != 0
	}

	b.StorageNumber = storageBits
	b.Size = size

	return b, nil
}
