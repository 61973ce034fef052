package vib

// applyOrthogonal folds one combinable orthogonal VIFE byte into the
// block being assembled, per the representative rule table in the
// component design. Unmapped ranges (object-action and most
// compact-profile bytes) are recognised and consumed but contribute
// no unit/label change, matching the design note that only the
// tabulated subset need be completed precisely.
func applyOrthogonal(v byte, b *Block) {
	low := v & 0x7F

	switch {
	case low == 0x12:
		b.Labels.add(LabelAveraged)
	case low == 0x13:
		b.Labels.add(LabelInverseCompactProfile)
	case low == 0x14:
		b.Labels.add(LabelRelativeDeviation)
	case low >= 0x15 && low <= 0x1C:
		b.Labels.add(LabelRecordErrorCodes)
	case low >= 0x20 && low <= 0x27:
		names := [8]UnitName{
			UnitSecond, UnitMinute, UnitHour, UnitDay,
			UnitWeek, UnitMonth, UnitYear, UnitRevolution,
		}
		b.Units.push(Unit{Name: names[low-0x20], Exponent: -1})
	case low >= 0x28 && low <= 0x2B:
		b.Units.push(Unit{Name: UnitPulse, Exponent: -1})
	case low == 0x2C:
		b.Units.push(Unit{Name: UnitLitre, Exponent: 1})
	case low == 0x2D:
		b.Units.push(Unit{Name: UnitMetre, Exponent: -3})
	case low == 0x2E:
		b.Units.push(Unit{Name: UnitKilogram, Exponent: -1})
	case low == 0x2F:
		b.Units.push(Unit{Name: UnitKelvin, Exponent: -1})
	case low == 0x30:
		b.Units.push(Unit{Name: UnitWattHour, Exponent: -1})
		b.ScaleExponent += -3
	case low == 0x31:
		b.Units.push(Unit{Name: UnitJoule, Exponent: -1})
		b.ScaleExponent += -9
	case low == 0x32:
		b.Units.push(Unit{Name: UnitWatt, Exponent: -1})
		b.ScaleExponent += -3
	case low == 0x33:
		b.Units.push(Unit{Name: UnitKelvin, Exponent: -1})
		b.Units.push(Unit{Name: UnitLitre, Exponent: -1})
	case low == 0x34:
		b.Units.push(Unit{Name: UnitVolt, Exponent: -1})
	case low == 0x35:
		b.Units.push(Unit{Name: UnitAmpere, Exponent: -1})
	case low == 0x36:
		b.Units.push(Unit{Name: UnitSecond, Exponent: 1})
	case low == 0x37:
		b.Units.push(Unit{Name: UnitSecond, Exponent: 1})
		b.Units.push(Unit{Name: UnitVolt, Exponent: -1})
	case low == 0x38:
		b.Units.push(Unit{Name: UnitSecond, Exponent: 1})
		b.Units.push(Unit{Name: UnitAmpere, Exponent: -1})
	case low == 0x39:
		b.Labels.add(LabelStartDateOf)
	case low == 0x3A:
		b.Labels.add(LabelUncorrectedValue)
	case low == 0x3B:
		b.Labels.add(LabelAccumulationOnlyPositive)
	case low == 0x3C:
		b.Labels.add(LabelAccumulationOnlyNegative)
	case low == 0x3D:
		b.Labels.add(LabelNonMetricUnits)
	case low == 0x3E:
		b.Labels.add(LabelValueAtBaseConditions)
	case low == 0x3F:
		b.Labels.add(LabelOBIS)
	case low >= 0x40 && low <= 0x57:
		b.Labels.add(LabelUpperLimit)
	case low >= 0x58 && low <= 0x6F:
		b.Labels.add(LabelLowerLimit)
	case low >= 0x70 && low <= 0x77:
		b.ScaleExponent += int32(low&0b111) - 6
	case low >= 0x78 && low <= 0x7B:
		b.OffsetExponent += int32(low&0b11) - 3
	case low == 0x7D:
		b.Labels.add(LabelMultiplicativeCorrection103)
	case low == 0x7E:
		b.Labels.add(LabelFutureValue)
	default:
		// reserved / object-action / manufacturer-specific tail: no
		// semantic change, byte is still consumed by the chain walk.
	}
}
