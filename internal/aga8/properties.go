package aga8

import "math"

// Physical constants used by the derived-property calculators.
const (
	gasConstantJKmolK  = 8314.0 // J/(kmol K)
	airMolecularWeight = 28.964 // g/mol
	barToPa            = 1e5

	// Constant-ratio approximation for natural gas; the speed of sound is
	// not derived from residual thermodynamics.
	heatCapacityRatio = 1.3
)

// Uncertainty model constants, relative percent.
const (
	baseUncertaintyPct      = 0.1
	highPressureFactor      = 1.2
	offRangeTempFactor      = 1.5
	highPressureBara        = 12.0
	uncertaintyTempLowK     = 250.0
	uncertaintyTempHighK    = 350.0
	mwUncertaintyPct        = 0.02
	heatingValueUncertainty = 0.5
)

// Density returns gas density in kg/m3 via rho = P*MW / (Z*R*T) with P in
// Pa and R = 8314 J/(kmol K).
func Density(pressureBara, temperatureK, molecularWeight, z float64) float64 {
	pressurePa := pressureBara * barToPa
	return pressurePa * molecularWeight / (z * gasConstantJKmolK * temperatureK)
}

// HeatingValues sums the tabulated component heating values weighted by mole
// fraction, MJ/m3 at standard conditions. Components without tabulated
// values contribute zero.
func HeatingValues(comp Composition) (hhv, lhv float64) {
	for name, pct := range comp {
		h, l, ok := HeatingValue(name)
		if !ok {
			continue
		}
		xi := pct / 100
		hhv += xi * h
		lhv += xi * l
	}
	return hhv, lhv
}

// SpecificGravity is the mixture molecular weight relative to air.
func SpecificGravity(molecularWeight float64) float64 {
	return molecularWeight / airMolecularWeight
}

// WobbeIndex normalizes the higher heating value by the square root of
// specific gravity, MJ/m3.
func WobbeIndex(hhv, specificGravity float64) float64 {
	return hhv / math.Sqrt(specificGravity)
}

// SpeedOfSound uses the fixed-gamma ideal relation c = sqrt(gamma*P/rho).
func SpeedOfSound(pressureBara, density float64) float64 {
	return math.Sqrt(heatCapacityRatio * pressureBara * barToPa / density)
}

// ZUncertaintyPct estimates the relative uncertainty of the computed Z (and
// of the density derived from it): a base figure widened outside the
// pressure and temperature ranges the correlation was fitted on.
func ZUncertaintyPct(pressureBara, temperatureK float64) float64 {
	u := baseUncertaintyPct
	if pressureBara > highPressureBara {
		u *= highPressureFactor
	}
	if temperatureK < uncertaintyTempLowK || temperatureK > uncertaintyTempHighK {
		u *= offRangeTempFactor
	}
	return u
}

// MWUncertaintyPct and HeatingValueUncertaintyPct are fixed by the quality
// of the underlying component tables.
func MWUncertaintyPct() float64           { return mwUncertaintyPct }
func HeatingValueUncertaintyPct() float64 { return heatingValueUncertainty }
