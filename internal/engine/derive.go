package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Tonyvalayil97/KN/constants"
)

// deriveVolume converts a volume-weight figure in kilograms to cubic meters.
func deriveVolume(volumeWeightKg decimal.Decimal) decimal.Decimal {
	return volumeWeightKg.Div(constants.VolumetricDivisor)
}

// deriveChargeableKg applies the freight-billing rule: the greater of actual
// weight and the volumetric-equivalent weight governs. Returns nil when
// neither input is available.
func deriveChargeableKg(weightKg, volumeM3 *decimal.Decimal) *decimal.Decimal {
	var volumetric *decimal.Decimal
	if volumeM3 != nil {
		v := volumeM3.Mul(constants.VolumetricDivisor)
		volumetric = &v
	}

	switch {
	case weightKg == nil && volumetric == nil:
		return nil
	case weightKg == nil:
		return volumetric
	case volumetric == nil:
		w := *weightKg
		return &w
	case volumetric.GreaterThan(*weightKg):
		return volumetric
	default:
		w := *weightKg
		return &w
	}
}
