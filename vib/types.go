// Package vib decodes the Value Information Block: one VIF byte plus
// up to 10 VIFE extension bytes, into a unit vector, a decimal scale
// exponent, a decimal offset exponent, and a set of semantic labels.
package vib

// UnitName enumerates the physical-unit atoms this module composes
// into a record's unit vector.
type UnitName uint8

const (
	UnitNone UnitName = iota
	UnitWattHour
	UnitJoule
	UnitMetre
	UnitCubicMeter
	UnitKilogram
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWatt
	UnitKelvin
	UnitCelsius
	UnitBar
	UnitVolt
	UnitAmpere
	UnitLitre
	UnitWeek
	UnitMonth
	UnitYear
	UnitRevolution
	UnitPulse
)

func (u UnitName) String() string {
	switch u {
	case UnitNone:
		return ""
	case UnitWattHour:
		return "Wh"
	case UnitJoule:
		return "J"
	case UnitMetre:
		return "m"
	case UnitCubicMeter:
		return "m3"
	case UnitKilogram:
		return "kg"
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "min"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	case UnitWatt:
		return "W"
	case UnitKelvin:
		return "K"
	case UnitCelsius:
		return "C"
	case UnitBar:
		return "bar"
	case UnitVolt:
		return "V"
	case UnitAmpere:
		return "A"
	case UnitLitre:
		return "L"
	case UnitWeek:
		return "wk"
	case UnitMonth:
		return "mo"
	case UnitYear:
		return "yr"
	case UnitRevolution:
		return "rev"
	case UnitPulse:
		return "pulse"
	default:
		return "?"
	}
}

// Unit is one atom of a record's unit vector: a name raised to an
// integer exponent (e.g. Hour^-1 for a per-hour rate).
type Unit struct {
	Name     UnitName
	Exponent int32
}

const maxUnits = 10

// UnitVector is a fixed-capacity, allocation-free sequence of Unit,
// in wire order (VIF first, then each VIFE append), matching the
// no-heap-on-the-fast-path requirement.
type UnitVector struct {
	items [maxUnits]Unit
	n     int
}

func (v *UnitVector) push(u Unit) bool {
	if v.n >= maxUnits {
		return false
	}
	v.items[v.n] = u
	v.n++

	return true
}

func (v UnitVector) Len() int { return v.n }

func (v UnitVector) At(i int) Unit { return v.items[i] }

func (v UnitVector) Slice() []Unit { return v.items[:v.n] }

// Quantity classifies the physical quantity a record measures,
// derived from its primary VIF range.
type Quantity uint8

const (
	QuantityUnknown Quantity = iota
	QuantityEnergy
	QuantityVolume
	QuantityMass
	QuantityDuration
	QuantityPower
	QuantityVolumeFlow
	QuantityMassFlow
	QuantityTemperature
	QuantityPressure
	QuantityTimePoint
	QuantityIdentificationNumber
	QuantityPlainText
	QuantityBinaryDigitalInput
	QuantityManufacturerSpecific
)

func (q Quantity) String() string {
	switch q {
	case QuantityEnergy:
		return "Energy"
	case QuantityVolume:
		return "Volume"
	case QuantityMass:
		return "Mass"
	case QuantityDuration:
		return "Duration"
	case QuantityPower:
		return "Power"
	case QuantityVolumeFlow:
		return "VolumeFlow"
	case QuantityMassFlow:
		return "MassFlow"
	case QuantityTemperature:
		return "Temperature"
	case QuantityPressure:
		return "Pressure"
	case QuantityTimePoint:
		return "TimePoint"
	case QuantityIdentificationNumber:
		return "IdentificationNumber"
	case QuantityPlainText:
		return "PlainText"
	case QuantityBinaryDigitalInput:
		return "BinaryDigitalInput"
	case QuantityManufacturerSpecific:
		return "ManufacturerSpecific"
	default:
		return "Unknown"
	}
}

// ValueLabel enumerates the semantic annotations the orthogonal VIFE
// table can attach to a record, on top of its unit and scale.
type ValueLabel uint8

const (
	LabelAveraged ValueLabel = iota
	LabelInverseCompactProfile
	LabelRelativeDeviation
	LabelRecordErrorCodes
	LabelStartDateOf
	LabelUncorrectedValue
	LabelAccumulationOnlyPositive
	LabelAccumulationOnlyNegative
	LabelNonMetricUnits
	LabelValueAtBaseConditions
	LabelOBIS
	LabelMultiplicativeCorrection103
	LabelFutureValue
	LabelUpperLimit
	LabelLowerLimit
	labelCount
)

// LabelSet is a bitset over ValueLabel, avoiding heap allocation for
// what would otherwise be a set<ValueLabel>.
type LabelSet uint64

func (s LabelSet) Has(l ValueLabel) bool { return s&(1<<uint(l)) != 0 }

func (s *LabelSet) add(l ValueLabel) { *s |= LabelSet(1 << uint(l)) }

// Block is the resolved Value Information Block for one record.
type Block struct {
	Units          UnitVector
	ScaleExponent  int32
	OffsetExponent int32
	Labels         LabelSet
	Quantity       Quantity
	// PlainText holds the ASCII unit name for VIF 0x7C/0xFC records,
	// reversed from wire order into reading order (see invariant 4).
	PlainText    [maxUnits]byte
	PlainTextLen int
	// Size is the number of bytes this block consumed from the
	// stream, including any plain-text length byte and name bytes.
	Size int
}
