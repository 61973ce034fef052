// Package frame decodes the M-Bus link-layer frame: single-character
// acknowledgements, short/control frames, and long frames carrying a
// user-data payload. It validates the duplicated length field and the
// modulo-256 checksum before handing the user-data slice to the next
// layer.
package frame

import (
	"github.com/mbus-go/mbus/errs"
)

// Kind discriminates the four frame shapes defined by EN 13757-2.
type Kind uint8

const (
	KindSingleCharacter Kind = iota
	KindShort
	KindControl
	KindLong
)

func (k Kind) String() string {
	switch k {
	case KindSingleCharacter:
		return "SingleCharacter"
	case KindShort:
		return "Short"
	case KindControl:
		return "Control"
	case KindLong:
		return "Long"
	default:
		return "Unknown"
	}
}

const (
	startShort = 0x10
	startLong  = 0x68
	stopByte   = 0x16
	ackByte    = 0xE5
)

// Frame is the decoded link-layer protocol data unit. Fields not
// relevant to Kind are zero. For KindLong, UserData is the slice of
// wire bytes starting at CI (the byte immediately following address)
// through the last user-data byte, exclusive of the checksum.
type Frame struct {
	Kind     Kind
	Function Function
	Address  Address
	Checksum byte
	UserData []byte
}

// Parse classifies and validates one complete frame starting at
// data[0]. A single-character frame must be the only byte; for short
// and long frames, bytes after the stop byte are not examined.
// Callers are responsible for delimiting frames before calling Parse.
func Parse(data []byte) (Frame, error) {
	if len(data) == 0 {
		return Frame{}, errs.ErrBufferTooShort
	}

	switch data[0] {
	case ackByte:
		if len(data) != 1 {
			return Frame{}, errs.ErrBufferTooShort
		}

		return Frame{Kind: KindSingleCharacter}, nil
	case startShort:
		return parseShort(data)
	case startLong:
		return parseLong(data)
	default:
		return Frame{}, errs.ErrInvalidStartByte
	}
}

func parseShort(data []byte) (Frame, error) {
	const shortLen = 5
	if len(data) < shortLen {
		return Frame{}, errs.ErrBufferTooShort
	}
	if data[shortLen-1] != stopByte {
		return Frame{}, errs.ErrMissingStopByte
	}

	c, a, cs := data[1], data[2], data[3]
	if byte(c+a) != cs {
		return Frame{}, errs.ErrChecksumError
	}

	function, err := decodeFunction(c)
	if err != nil {
		return Frame{}, err
	}

	kind := KindShort
	if function.Kind == FuncSndNke {
		kind = KindControl
	}

	return Frame{
		Kind:     kind,
		Function: function,
		Address:  Address(a),
		Checksum: cs,
	}, nil
}

func parseLong(data []byte) (Frame, error) {
	const headerLen = 4 // 0x68 L L 0x68
	if len(data) < headerLen {
		return Frame{}, errs.ErrBufferTooShort
	}

	l1, l2 := data[1], data[2]
	if l1 != l2 {
		return Frame{}, errs.ErrLengthMismatch
	}
	if data[3] != startLong {
		return Frame{}, errs.ErrInvalidStartByte
	}

	totalLen := int(l1) + 6
	if len(data) < totalLen {
		return Frame{}, errs.ErrBufferTooShort
	}
	if data[totalLen-1] != stopByte {
		return Frame{}, errs.ErrMissingStopByte
	}

	// bytes[4:4+L] are C, A, user-data..., i.e. L bytes total,
	// followed by the checksum byte and the stop byte.
	body := data[4 : 4+int(l1)]
	cs := data[4+int(l1)]

	var sum byte
	for _, b := range body {
		sum += b
	}
	if sum != cs {
		return Frame{}, errs.ErrChecksumError
	}

	if len(body) < 2 {
		return Frame{}, errs.ErrBufferTooShort
	}

	c, a := body[0], body[1]
	function, err := decodeFunction(c)
	if err != nil {
		return Frame{}, err
	}

	userData := body[2:]

	kind := KindLong
	if function.Kind == FuncSndNke {
		kind = KindControl
	}

	return Frame{
		Kind:     kind,
		Function: function,
		Address:  Address(a),
		Checksum: cs,
		UserData: userData,
	}, nil
}
