package vib

// decodePrimary resolves the primary-unit table (VIF low 7 bits,
// 0x00-0x7A) into its unit vector, quantity and scale exponent,
// per the table in the component design. Ranges not covered here
// (0x6E-0x73, 0x79-0x7A) return ok=false, which the caller reports as
// errs.ErrUnsupportedVif; 0x7B never reaches this function, since the
// caller treats it as a reserved slot.
func decodePrimary(n byte) (units [2]Unit, nUnits int, quantity Quantity, scaleExp int32, ok bool) {
	low := n & 0x7F

	switch {
	case low <= 0x07:
		return [2]Unit{{UnitWattHour, 1}}, 1, QuantityEnergy, int32(low&0b111) - 3, true
	case low <= 0x0F:
		return [2]Unit{{UnitJoule, 1}}, 1, QuantityEnergy, int32(low & 0b111), true
	case low <= 0x17:
		return [2]Unit{{UnitCubicMeter, 1}}, 1, QuantityVolume, int32(low&0b111) - 6, true
	case low <= 0x1F:
		return [2]Unit{{UnitKilogram, 1}}, 1, QuantityMass, int32(low&0b111) - 3, true
	case low == 0x20 || low == 0x24:
		return [2]Unit{{UnitSecond, 1}}, 1, QuantityDuration, 0, true
	case low == 0x21 || low == 0x25:
		return [2]Unit{{UnitMinute, 1}}, 1, QuantityDuration, 0, true
	case low == 0x22 || low == 0x26:
		return [2]Unit{{UnitHour, 1}}, 1, QuantityDuration, 0, true
	case low == 0x23 || low == 0x27:
		return [2]Unit{{UnitDay, 1}}, 1, QuantityDuration, 0, true
	case low <= 0x2F:
		return [2]Unit{{UnitWatt, 1}}, 1, QuantityPower, int32(low&0b111) - 3, true
	case low <= 0x37:
		return [2]Unit{{UnitJoule, 1}, {UnitHour, -1}}, 2, QuantityPower, int32(low & 0b111), true
	case low <= 0x3F:
		return [2]Unit{{UnitCubicMeter, 1}, {UnitHour, -1}}, 2, QuantityVolumeFlow, int32(low&0b111) - 6, true
	case low <= 0x47:
		return [2]Unit{{UnitCubicMeter, 1}, {UnitMinute, -1}}, 2, QuantityVolumeFlow, int32(low&0b111) - 7, true
	case low <= 0x4F:
		return [2]Unit{{UnitCubicMeter, 1}, {UnitSecond, -1}}, 2, QuantityVolumeFlow, int32(low&0b111) - 9, true
	case low <= 0x57:
		return [2]Unit{{UnitKilogram, 1}, {UnitHour, -1}}, 2, QuantityMassFlow, int32(low&0b111) - 3, true
	case low <= 0x5F:
		return [2]Unit{{UnitCelsius, 1}}, 1, QuantityTemperature, int32(low&0b11) - 3, true
	case low <= 0x63:
		return [2]Unit{{UnitKelvin, 1}}, 1, QuantityTemperature, int32(low&0b11) - 3, true
	case low <= 0x67:
		return [2]Unit{{UnitCelsius, 1}}, 1, QuantityTemperature, int32(low&0b11) - 3, true
	case low <= 0x6B:
		return [2]Unit{{UnitBar, 1}}, 1, QuantityPressure, int32(low&0b11) - 3, true
	case low <= 0x6D:
		return [2]Unit{}, 0, QuantityTimePoint, 0, true
	case low >= 0x74 && low <= 0x77:
		return [2]Unit{}, 0, QuantityDuration, 0, true
	case low == 0x78:
		return [2]Unit{}, 0, QuantityIdentificationNumber, 0, true
	default:
		return [2]Unit{}, 0, QuantityUnknown, 0, false
	}
}
