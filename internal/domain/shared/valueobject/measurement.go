package valueobject

import (
	"github.com/shopspring/decimal"
)

// Mass-density-volume conversion for material lots. Density is expressed in
// kg/L, so mass in kg and volume in liters convert directly.
//
// Both functions are pure and total: a non-positive density makes a volume
// undefined, and the conversion yields zero rather than an error. Stock
// screens treat such lots as "unconvertible" and show an empty volume.

// VolumeFromMass returns massKg / density, or zero when density <= 0.
func VolumeFromMass(massKg, density decimal.Decimal) decimal.Decimal {
	if density.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return massKg.Div(density)
}

// MassFromVolume returns volumeLiters * density.
func MassFromVolume(volumeLiters, density decimal.Decimal) decimal.Decimal {
	return volumeLiters.Mul(density)
}

// BlendedDensity returns totalMass / totalVolume, or zero when totalVolume <= 0.
// It is the weighted average density of a mixture of lots.
func BlendedDensity(totalMassKg, totalVolumeLiters decimal.Decimal) decimal.Decimal {
	if totalVolumeLiters.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalMassKg.Div(totalVolumeLiters)
}
