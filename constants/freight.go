package constants

import "github.com/shopspring/decimal"

// VolumetricDivisor converts cubic meters to an equivalent billable weight in
// kilograms (and back). 167 kg/m3 is the standard air-freight divisor used by
// the carrier formats we parse.
var VolumetricDivisor = decimal.NewFromInt(167)

// Freight mode labels as they appear in the summary sheet.
const (
	FreightModeAir  = "Air"
	FreightModeSea  = "Sea"
	FreightModeRoad = "Road"
)
