package userdata

// Medium enumerates the EN 13757-3 device/medium codes carried in the
// fixed header.
type Medium byte

const (
	MediumOther                Medium = 0x00
	MediumOil                  Medium = 0x01
	MediumElectricity          Medium = 0x02
	MediumGas                  Medium = 0x03
	MediumHeatOutlet           Medium = 0x04
	MediumSteam                Medium = 0x05
	MediumHotWater             Medium = 0x06
	MediumWater                Medium = 0x07
	MediumHeatCostAllocator    Medium = 0x08
	MediumCompressedAir        Medium = 0x09
	MediumCoolingLoadInlet     Medium = 0x0A
	MediumCoolingLoadOutlet    Medium = 0x0B
	MediumHeatInlet            Medium = 0x0C
	MediumHeatCoolingLoad      Medium = 0x0D
	MediumBus                  Medium = 0x0E
	MediumUnknown              Medium = 0x0F
	MediumIrrigation           Medium = 0x10
	MediumWaterDataLogger      Medium = 0x11
	MediumGasDataLogger        Medium = 0x12
	MediumGasConverter         Medium = 0x13
	MediumThermalSolar         Medium = 0x14
	MediumHotWaterDHW          Medium = 0x15
	MediumColdWater            Medium = 0x16
	MediumDualWater            Medium = 0x17
	MediumPressure             Medium = 0x18
	MediumADConverter          Medium = 0x19
)

func (m Medium) String() string {
	switch m {
	case MediumOther:
		return "Other"
	case MediumOil:
		return "Oil"
	case MediumElectricity:
		return "Electricity"
	case MediumGas:
		return "Gas"
	case MediumHeatOutlet:
		return "HeatOutlet"
	case MediumSteam:
		return "Steam"
	case MediumHotWater:
		return "HotWater"
	case MediumWater:
		return "Water"
	case MediumHeatCostAllocator:
		return "HeatCostAllocator"
	case MediumCompressedAir:
		return "CompressedAir"
	case MediumCoolingLoadInlet:
		return "CoolingLoadInlet"
	case MediumCoolingLoadOutlet:
		return "CoolingLoadOutlet"
	case MediumHeatInlet:
		return "HeatInlet"
	case MediumHeatCoolingLoad:
		return "HeatCoolingLoad"
	case MediumBus:
		return "Bus"
	case MediumUnknown:
		return "Unknown"
	case MediumIrrigation:
		return "Irrigation"
	case MediumWaterDataLogger:
		return "WaterDataLogger"
	case MediumGasDataLogger:
		return "GasDataLogger"
	case MediumGasConverter:
		return "GasConverter"
	case MediumThermalSolar:
		return "ThermalSolar"
	case MediumHotWaterDHW:
		return "HotWaterDHW"
	case MediumColdWater:
		return "ColdWater"
	case MediumDualWater:
		return "DualWater"
	case MediumPressure:
		return "Pressure"
	case MediumADConverter:
		return "ADConverter"
	default:
		return "Reserved"
	}
}
