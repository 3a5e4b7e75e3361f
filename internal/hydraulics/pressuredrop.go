package hydraulics

import (
	"errors"
	"math"
)

var ErrInvalidLength = errors.New("pipe length must be positive")

// Water at 20 degC; the tool has always assumed a water-filled line for
// pressure-drop estimates.
const (
	kinematicViscosity = 1.004e-6 // m2/s
	waterDensity       = 1000.0   // kg/m3

	laminarReynoldsLimit = 2300.0
	gpmToM3s             = 0.00006309
	defaultRoughnessMM   = 0.045
)

// PressureDropResult is the Darcy-Weisbach output for a straight pipe run.
type PressureDropResult struct {
	PressureDropPa  float64 `json:"pressure_drop_pa"`
	PressureDropPSI float64 `json:"pressure_drop_psi"`
	PressureDropBar float64 `json:"pressure_drop_bar"`
	VelocityMS      float64 `json:"velocity_ms"`
	ReynoldsNumber  float64 `json:"reynolds_number"`
	FrictionFactor  float64 `json:"friction_factor"`
}

// PressureDrop estimates head loss over a pipe of the given length using
// Darcy-Weisbach: laminar 64/Re below the transition Reynolds number, the
// Swamee-Jain explicit approximation above it. Roughness is in mm; zero
// selects the commercial-steel default.
func PressureDrop(flowRate, diameter, length, roughness float64) (PressureDropResult, error) {
	if diameter <= 0 {
		return PressureDropResult{}, ErrInvalidDiameter
	}
	if length <= 0 {
		return PressureDropResult{}, ErrInvalidLength
	}
	if roughness <= 0 {
		roughness = defaultRoughnessMM
	}

	d := normalizeDiameter(diameter)

	// Flow heuristic mirrors the flow calculator: >100 means GPM.
	var q float64
	if flowRate > 100 {
		q = flowRate * gpmToM3s
	} else {
		q = flowRate / 3600
	}

	area := math.Pi * (d / 2) * (d / 2)
	velocity := q / area
	reynolds := velocity * d / kinematicViscosity

	var friction float64
	if reynolds < laminarReynoldsLimit {
		friction = 64 / reynolds
	} else {
		friction = 0.25 / math.Pow(math.Log10(roughness/(3.7*d)+5.74/math.Pow(reynolds, 0.9)), 2)
	}

	dropPa := friction * (length / d) * waterDensity * velocity * velocity / 2
	return PressureDropResult{
		PressureDropPa:  dropPa,
		PressureDropPSI: dropPa * 0.000145038,
		PressureDropBar: dropPa / 1e5,
		VelocityMS:      velocity,
		ReynoldsNumber:  reynolds,
		FrictionFactor:  friction,
	}, nil
}
