package vib

import "github.com/mbus-go/mbus/errs"

const maxVIFE = 10

type tableMode uint8

const (
	tableNone tableMode = iota
	tableA
	tableB
)

// Parse decodes a VIB starting at data[0]. For plain-text VIFs
// (0x7C/0xFC) it also consumes the length byte and ASCII name, per
// the configured wire layout (see Option).
func Parse(data []byte, opts ...Option) (Block, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Block{}, err
	}

	if len(data) == 0 {
		return Block{}, errs.ErrBufferTooShort
	}

	vif := data[0]

	if vif == 0x7C || vif == 0xFC {
		return parsePlainText(data, cfg)
	}

	var b Block
	mode := tableNone

	switch {
	case vif == 0x7E || vif == 0xFE:
		b.Quantity = QuantityManufacturerSpecific
	case vif == 0x7F || vif == 0xFF:
		b.Quantity = QuantityManufacturerSpecific
	case vif == 0xFB:
		mode = tableA
	case vif == 0xFD:
		mode = tableB
	case vif == 0x7B || vif == 0xEF:
		// reserved primary / reserved alternate extension slots;
		// carry no unit/quantity.
	default:
		units, nUnits, quantity, scaleExp, ok := decodePrimary(vif)
		if !ok {
			return Block{}, errs.ErrUnsupportedVif
		}
		for i := 0; i < nUnits; i++ {
			b.Units.push(units[i])
		}
		b.Quantity = quantity
		b.ScaleExponent = scaleExp
	}

	size := 1
	hasMore := vif&0x80 != 0
	n := 0

	for hasMore {
		if n >= maxVIFE {
			return Block{}, errs.ErrVifeChainTooLong
		}
		if size >= len(data) {
			return Block{}, errs.ErrBufferTooShort
		}

		vife := data[size]

		switch mode {
		case tableA:
			if r, ok := decodeTableA(vife); ok {
				applyExtended(r, &b)
			}
		case tableB:
			if r, ok := decodeTableB(vife); ok {
				applyExtended(r, &b)
			}
		default:
			applyOrthogonal(vife, &b)
		}

		size++
		n++
		hasMore = vife&0x80 != 0
	}

	b.Size = size

	return b, nil
}

// parsePlainText handles VIF 0x7C/0xFC: the ASCII unit-name escape.
// The wire carries the name reversed (invariant 4); PlainText stores
// it already un-reversed into natural reading order.
func parsePlainText(data []byte, cfg *config) (Block, error) {
	var b Block
	b.Quantity = QuantityPlainText

	if cfg.normConformPlainText {
		return parsePlainTextNormConform(data, b)
	}

	return parsePlainTextCommon(data, b)
}

// parsePlainTextCommon implements the non-norm-conform layout this
// module defaults to: VIF, LEN, ASCII…, VIFE…
func parsePlainTextCommon(data []byte, b Block) (Block, error) {
	if len(data) < 2 {
		return Block{}, errs.ErrBufferTooShort
	}

	length := int(data[1])
	if length > maxUnits {
		return Block{}, errs.ErrInvalidValueInformation
	}

	nameStart := 2
	nameEnd := nameStart + length
	if nameEnd > len(data) {
		return Block{}, errs.ErrBufferTooShort
	}

	reversePlainText(data[nameStart:nameEnd], &b)

	size := nameEnd
	hasMore := data[0]&0x80 != 0
	n := 0

	for hasMore {
		if size >= len(data) {
			break
		}
		if n >= maxVIFE {
			return Block{}, errs.ErrVifeChainTooLong
		}

		vife := data[size]
		applyOrthogonal(vife, &b)
		size++
		n++
		hasMore = vife&0x80 != 0
	}

	b.Size = size

	return b, nil
}

// parsePlainTextNormConform implements the norm-conform layout:
// VIF, VIFE…, LEN, ASCII…
func parsePlainTextNormConform(data []byte, b Block) (Block, error) {
	size := 1
	hasMore := data[0]&0x80 != 0
	n := 0

	for hasMore {
		if size >= len(data) {
			return Block{}, errs.ErrBufferTooShort
		}
		if n >= maxVIFE {
			return Block{}, errs.ErrVifeChainTooLong
		}

		vife := data[size]
		applyOrthogonal(vife, &b)
		size++
		n++
		hasMore = vife&0x80 != 0
	}

	if size >= len(data) {
		return Block{}, errs.ErrBufferTooShort
	}

	length := int(data[size])
	if length > maxUnits {
		return Block{}, errs.ErrInvalidValueInformation
	}
	size++

	nameEnd := size + length
	if nameEnd > len(data) {
		return Block{}, errs.ErrBufferTooShort
	}

	reversePlainText(data[size:nameEnd], &b)
	b.Size = nameEnd

	return b, nil
}

func reversePlainText(name []byte, b *Block) {
	n := len(name)
	for i := 0; i < n; i++ {
		b.PlainText[i] = name[n-1-i]
	}
	b.PlainTextLen = n
}
