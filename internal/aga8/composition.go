package aga8

import (
	"errors"
	"fmt"
)

// Composition maps component name to mole percent.
type Composition map[string]float64

// Validation errors surfaced by the engine. All of them abort report
// generation; none are retried internally.
var (
	ErrEmptyComposition     = errors.New("composition has no entries")
	ErrZeroTotalComposition = errors.New("total composition cannot be zero")
	ErrUnknownComponent     = errors.New("unknown component")
	ErrOutOfValidityRange   = errors.New("composition outside method validity range")
	ErrInvalidPressure      = errors.New("pressure cannot be negative")
	ErrInvalidTemperature   = errors.New("temperature cannot be below absolute zero")
)

// Method domain-of-validity bounds, mol%. These are the declared limits of
// the simplified correlation, not physical limits.
const (
	minMethanePct  = 45.0
	maxCO2Pct      = 30.0
	maxNitrogenPct = 50.0
)

// Normalize rescales the composition so its values sum to 100 mol%.
// Normalizing an already-normalized composition is a no-op within floating
// tolerance.
func Normalize(raw Composition) (Composition, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyComposition
	}
	var total float64
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		return nil, ErrZeroTotalComposition
	}
	out := make(Composition, len(raw))
	for comp, v := range raw {
		out[comp] = v / total * 100
	}
	return out, nil
}

// Validate checks a normalized composition against the component table and
// the method validity bounds.
func Validate(comp Composition) error {
	for name := range comp {
		if !KnownComponent(name) {
			return fmt.Errorf("%w: %s", ErrUnknownComponent, name)
		}
	}
	if ch4 := comp["methane"]; ch4 < minMethanePct {
		return fmt.Errorf("%w: methane %.2f%% below %.0f%%", ErrOutOfValidityRange, ch4, minMethanePct)
	}
	if co2 := comp["carbon_dioxide"]; co2 > maxCO2Pct {
		return fmt.Errorf("%w: carbon_dioxide %.2f%% above %.0f%%", ErrOutOfValidityRange, co2, maxCO2Pct)
	}
	if n2 := comp["nitrogen"]; n2 > maxNitrogenPct {
		return fmt.Errorf("%w: nitrogen %.2f%% above %.0f%%", ErrOutOfValidityRange, n2, maxNitrogenPct)
	}
	return nil
}
