// Package hydraulics holds the pipe-flow and pressure-drop calculators from
// the metering tool suite. Pure functions; all results in SI with customary
// conversions included.
package hydraulics

import (
	"errors"
	"math"
)

var (
	ErrInvalidDiameter = errors.New("pipe diameter must be positive")
	ErrMissingInput    = errors.New("either velocity or flow rate is required")
)

const (
	m3hPerGPM = 1.0 / 4.40287
	inchToM   = 0.0254
)

// FlowResult reports both directions of the flow/velocity relation for a
// circular pipe.
type FlowResult struct {
	DiameterM   float64 `json:"diameter_m"`
	PipeAreaM2  float64 `json:"pipe_area_m2"`
	FlowRateM3H float64 `json:"flow_rate_m3h"`
	FlowRateGPM float64 `json:"flow_rate_gpm"`
	VelocityMS  float64 `json:"velocity_ms"`
}

// normalizeDiameter applies the tool's historical heuristics: values above
// 10 are millimetres, values above 1 are inches, everything else metres.
func normalizeDiameter(d float64) float64 {
	switch {
	case d > 10:
		return d / 1000
	case d > 1:
		return d * inchToM
	default:
		return d
	}
}

// FlowFromVelocity computes the volumetric flow through a pipe of the given
// diameter at the given velocity (m/s).
func FlowFromVelocity(diameter, velocity float64) (FlowResult, error) {
	if diameter <= 0 {
		return FlowResult{}, ErrInvalidDiameter
	}
	d := normalizeDiameter(diameter)
	area := math.Pi * (d / 2) * (d / 2)
	m3h := area * velocity * 3600
	return FlowResult{
		DiameterM:   d,
		PipeAreaM2:  area,
		FlowRateM3H: m3h,
		FlowRateGPM: m3h / m3hPerGPM,
		VelocityMS:  velocity,
	}, nil
}

// VelocityFromFlow computes velocity from a volumetric flow rate. Rates
// above 100 are taken as GPM, otherwise m3/h (tool heuristic).
func VelocityFromFlow(diameter, flowRate float64) (FlowResult, error) {
	if diameter <= 0 {
		return FlowResult{}, ErrInvalidDiameter
	}
	d := normalizeDiameter(diameter)
	if flowRate > 100 {
		flowRate *= m3hPerGPM
	}
	area := math.Pi * (d / 2) * (d / 2)
	velocity := flowRate / (area * 3600)
	return FlowResult{
		DiameterM:   d,
		PipeAreaM2:  area,
		FlowRateM3H: flowRate,
		FlowRateGPM: flowRate / m3hPerGPM,
		VelocityMS:  velocity,
	}, nil
}
