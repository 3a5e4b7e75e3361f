// Package units converts between the field units metering engineers work
// in. Linear quantities go through a base unit per quantity kind;
// temperature pairs are handled explicitly.
package units

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind           = errors.New("unit kind not supported")
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrUnsupportedConversion = errors.New("conversion not implemented")
)

// Factors are expressed as target-units-per-base-unit.
var linearTables = map[string]map[string]float64{
	"flow": { // base: gallons per minute
		"gpm": 1.0,
		"lpm": 3.78541,
		"cfm": 0.133681,
		"m3h": 0.227125,
		"bpd": 34.2857,
	},
	"pressure": { // base: psi
		"psi":  1.0,
		"bar":  0.0689476,
		"kpa":  6.89476,
		"mpa":  0.00689476,
		"mmhg": 51.7149,
	},
	"length": { // base: feet
		"ft": 1.0,
		"m":  0.3048,
		"in": 12.0,
		"cm": 30.48,
		"mm": 304.8,
	},
}

// Convert converts value between two units of the given kind
// ("flow", "pressure", "temperature", "length").
func Convert(value float64, from, to, kind string) (float64, error) {
	if kind == "temperature" {
		return convertTemperature(value, from, to)
	}
	table, ok := linearTables[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	fromFactor, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q for kind %q", ErrUnknownUnit, from, kind)
	}
	toFactor, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q for kind %q", ErrUnknownUnit, to, kind)
	}
	return value / fromFactor * toFactor, nil
}

// Only the pairs the tool has always supported; anything else is an
// explicit ErrUnsupportedConversion, not a silent identity.
func convertTemperature(value float64, from, to string) (float64, error) {
	switch {
	case from == "c" && to == "f":
		return value*9/5 + 32, nil
	case from == "f" && to == "c":
		return (value - 32) * 5 / 9, nil
	case from == "c" && to == "k":
		return value + 273.15, nil
	case from == "k" && to == "c":
		return value - 273.15, nil
	}
	return 0, fmt.Errorf("%w: temperature %s -> %s", ErrUnsupportedConversion, from, to)
}
