// Package aga8 implements a simplified variant of the AGA8-92DC equation of
// state for natural-gas mixtures: composition handling, mixing rules, the
// compressibility-factor solver and the derived-property calculators.
//
// Everything in this package is a pure function over the immutable component
// tables below; calls are re-entrant and safe to run concurrently.
package aga8

// CriticalData holds per-component critical properties plus the AGA8
// characterization parameters (energy Ei, size Ki, orientation Gi).
type CriticalData struct {
	Tc    float64 // critical temperature, K
	Pc    float64 // critical pressure, MPa
	RhoC  float64 // critical density, kg/m3
	Omega float64 // acentric factor
	Ei    float64 // AGA8 energy parameter, K
	Ki    float64 // AGA8 size parameter, (m3/kmol)^(1/3)
	Gi    float64 // AGA8 orientation parameter
}

// molecularWeights covers every component the engine accepts, g/mol.
var molecularWeights = map[string]float64{
	"methane":          16.043,
	"ethane":           30.070,
	"propane":          44.097,
	"n-butane":         58.123,
	"i-butane":         58.123,
	"n-pentane":        72.150,
	"i-pentane":        72.150,
	"hexane":           86.177,
	"heptane":          100.204,
	"octane":           114.231,
	"nonane":           128.258,
	"decane":           142.285,
	"nitrogen":         28.014,
	"carbon_dioxide":   44.010,
	"hydrogen_sulfide": 34.082,
	"water":            18.015,
	"helium":           4.003,
	"argon":            39.948,
	"hydrogen":         2.016,
	"carbon_monoxide":  28.010,
	"oxygen":           31.999,
}

// criticalData covers the key components only; everything else contributes
// nothing to the mixture critical properties.
var criticalData = map[string]CriticalData{
	"methane":        {Tc: 190.564, Pc: 4.5992, RhoC: 162.66, Omega: 0.0115, Ei: 151.3183, Ki: 0.4619255, Gi: 0.0},
	"ethane":         {Tc: 305.322, Pc: 4.8722, RhoC: 206.18, Omega: 0.0995, Ei: 244.1667, Ki: 0.5279209, Gi: 0.0793},
	"propane":        {Tc: 369.825, Pc: 4.2512, RhoC: 220.48, Omega: 0.1523, Ei: 298.1183, Ki: 0.5837490, Gi: 0.141239},
	"n-butane":       {Tc: 425.125, Pc: 3.7960, RhoC: 227.96, Omega: 0.2002, Ei: 324.0689, Ki: 0.6341423, Gi: 0.281835},
	"nitrogen":       {Tc: 126.192, Pc: 3.3958, RhoC: 313.30, Omega: 0.0372, Ei: 99.73778, Ki: 0.4479153, Gi: 0.027815},
	"carbon_dioxide": {Tc: 304.128, Pc: 7.3773, RhoC: 467.60, Omega: 0.2276, Ei: 241.9606, Ki: 0.4557489, Gi: 0.189065},
}

// Heating values at standard conditions, MJ/m3. Inert components are absent
// and contribute zero.
var higherHeatingValues = map[string]float64{
	"methane":         39.82,
	"ethane":          70.36,
	"propane":         101.27,
	"n-butane":        133.86,
	"i-butane":        132.86,
	"n-pentane":       166.04,
	"i-pentane":       164.43,
	"hexane":          198.67,
	"heptane":         230.49,
	"octane":          262.77,
	"hydrogen":        12.75,
	"carbon_monoxide": 12.63,
}

var lowerHeatingValues = map[string]float64{
	"methane":         35.89,
	"ethane":          64.36,
	"propane":         93.15,
	"n-butane":        123.64,
	"i-butane":        122.77,
	"n-pentane":       153.28,
	"i-pentane":       151.83,
	"hexane":          183.52,
	"heptane":         213.50,
	"octane":          243.58,
	"hydrogen":        10.79,
	"carbon_monoxide": 12.63,
}

// binaryInteraction holds the non-zero kij entries for the key component
// pairs; every unlisted pair is zero. The linear mixing path currently does
// not consume these (see BinaryInteraction).
var binaryInteraction = map[[2]string]float64{
	{"methane", "nitrogen"}:       -0.0085,
	{"methane", "carbon_dioxide"}: 0.0919,
	{"ethane", "nitrogen"}:        0.0407,
}

// KnownComponent reports whether name is in the component table.
func KnownComponent(name string) bool {
	_, ok := molecularWeights[name]
	return ok
}

// MolecularWeight returns the molecular weight of a single component, g/mol.
func MolecularWeight(name string) (float64, bool) {
	mw, ok := molecularWeights[name]
	return mw, ok
}

// Critical returns the critical data of a single component, if available.
func Critical(name string) (CriticalData, bool) {
	cd, ok := criticalData[name]
	return cd, ok
}

// HeatingValue returns the higher and lower heating values of a component,
// MJ/m3 at standard conditions. Components without a tabulated value burn
// nothing and return (0, 0, false).
func HeatingValue(name string) (hhv, lhv float64, ok bool) {
	hhv, hok := higherHeatingValues[name]
	lhv, lok := lowerHeatingValues[name]
	return hhv, lhv, hok || lok
}

// BinaryInteraction returns the kij coefficient for an unordered component
// pair; the table is symmetric. These coefficients are tabulated but not yet
// applied by the linear mixing rule.
func BinaryInteraction(a, b string) float64 {
	if k, ok := binaryInteraction[[2]string{a, b}]; ok {
		return k
	}
	return binaryInteraction[[2]string{b, a}]
}
