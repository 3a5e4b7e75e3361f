package aga8

import (
	"fmt"

	"gasmeter"
)

// Unit offsets and the standard reference state (15 degC, 1.01325 bara).
const (
	atmosphericBara = 1.01325
	celsiusOffsetK  = 273.15

	stdPressureBara = 1.01325
	stdTemperatureK = 288.15
)

const methodName = "AGA8-92DC (simplified)"

// Request is one calculation request: raw composition in mol%, gauge
// pressure and Celsius temperature as supplied by the caller.
type Request struct {
	Composition     Composition
	PressureBarg    float64
	TemperatureDegC float64
	Strategy        Strategy
}

// strategy resolves the request strategy, defaulting to the cubic solver.
func (r Request) strategy() Strategy {
	if r.Strategy == "" {
		return StrategyCubic
	}
	return r.Strategy
}

func (r Request) validateConditions() error {
	if r.PressureBarg < 0 {
		return fmt.Errorf("%w: %.3f barg", ErrInvalidPressure, r.PressureBarg)
	}
	if r.TemperatureDegC < -celsiusOffsetK {
		return fmt.Errorf("%w: %.2f degC", ErrInvalidTemperature, r.TemperatureDegC)
	}
	return nil
}

// prepare normalizes and validates the request and returns the normalized
// composition plus the absolute operating point.
func (r Request) prepare() (Composition, float64, float64, error) {
	if err := r.validateConditions(); err != nil {
		return nil, 0, 0, err
	}
	norm, err := Normalize(r.Composition)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := Validate(norm); err != nil {
		return nil, 0, 0, err
	}
	return norm, r.PressureBarg + atmosphericBara, r.TemperatureDegC + celsiusOffsetK, nil
}

// GenerateReport runs the full pipeline at the supplied conditions and again
// at standard conditions, and assembles one immutable report. Any validation
// failure aborts before anything is computed; no partial report is returned.
func GenerateReport(req Request) (gasmeter.Report, error) {
	norm, pBara, tK, err := req.prepare()
	if err != nil {
		return gasmeter.Report{}, err
	}
	strat := req.strategy()

	params, err := MixtureParameters(norm)
	if err != nil {
		return gasmeter.Report{}, err
	}

	z, err := CompressibilityFactor(strat, pBara, tK, norm)
	if err != nil {
		return gasmeter.Report{}, err
	}
	zStd, err := CompressibilityFactor(strat, stdPressureBara, stdTemperatureK, norm)
	if err != nil {
		return gasmeter.Report{}, err
	}

	density := Density(pBara, tK, params.MWMix, z.Z)
	densityStd := Density(stdPressureBara, stdTemperatureK, params.MWMix, zStd.Z)
	hhv, lhv := HeatingValues(norm)
	sg := SpecificGravity(params.MWMix)
	zUnc := ZUncertaintyPct(pBara, tK)

	return gasmeter.Report{
		InputConditions: gasmeter.InputConditions{
			PressureBarg:    req.PressureBarg,
			PressureBara:    pBara,
			TemperatureDegC: req.TemperatureDegC,
			TemperatureK:    tK,
			Composition:     norm,
		},
		BasicProperties: gasmeter.BasicProperties{
			MolecularWeight:       params.MWMix,
			SpecificGravity:       sg,
			CompressibilityFactor: z.Z,
			DensityKgM3:           density,
			DensityStdKgM3:        densityStd,
		},
		StandardConditions: gasmeter.StandardConditions{
			PressureBara:          stdPressureBara,
			TemperatureK:          stdTemperatureK,
			CompressibilityFactor: zStd.Z,
			DensityKgM3:           densityStd,
		},
		HeatingValues: gasmeter.HeatingValues{
			HigherHeatingValueMJM3: hhv,
			LowerHeatingValueMJM3:  lhv,
			WobbeIndexMJM3:         WobbeIndex(hhv, sg),
		},
		CriticalProperties: gasmeter.CriticalProperties{
			CriticalTemperatureK: params.TcMix,
			CriticalPressureMPa:  params.PcMix,
			CriticalDensityKgM3:  params.RhoCMix,
		},
		Thermodynamics: gasmeter.ThermodynamicProperties{
			SpeedOfSoundMS: SpeedOfSound(pBara, density),
			CpCvRatio:      heatCapacityRatio,
			// Placeholders until a residual-Helmholtz model exists.
			JouleThomsonKPerBar: 0,
			EnthalpyKJKg:        0,
			EntropyKJKgK:        0,
		},
		Uncertainties: gasmeter.Uncertainties{
			CompressibilityPct: zUnc,
			DensityPct:         zUnc,
			MolecularWeightPct: MWUncertaintyPct(),
			HeatingValuePct:    HeatingValueUncertaintyPct(),
		},
		Additional: gasmeter.AdditionalProperties{
			VolumeFactor:       1 / z.Z,
			ReducedTemperature: tK / params.TcMix,
			ReducedPressure:    pBara / params.PcMix,
		},
		Compliance: gasmeter.Compliance{
			Method:             methodName,
			Strategy:           string(strat),
			StandardConditions: "15 degC, 1.01325 bara",
			FullDetailMethod:   false,
		},
	}, nil
}

// ZEvaluation is the standalone solver output for callers that want Z
// without a full report.
type ZEvaluation struct {
	ZResult
	Strategy           Strategy `json:"strategy"`
	ReducedTemperature float64  `json:"reduced_temperature"`
	ReducedPressure    float64  `json:"reduced_pressure"`
	ReducedDensity     float64  `json:"reduced_density"`
}

// EvaluateZ validates and normalizes the request, then runs only the
// Z-factor stage of the pipeline.
func EvaluateZ(req Request) (ZEvaluation, error) {
	norm, pBara, tK, err := req.prepare()
	if err != nil {
		return ZEvaluation{}, err
	}
	strat := req.strategy()
	tc, pc, _ := MixtureCriticalProperties(norm)
	z, err := CompressibilityFactor(strat, pBara, tK, norm)
	if err != nil {
		return ZEvaluation{}, err
	}
	tr := tK / tc
	pr := pBara / pc
	return ZEvaluation{
		ZResult:            z,
		Strategy:           strat,
		ReducedTemperature: tr,
		ReducedPressure:    pr,
		ReducedDensity:     ReducedDensity(z.Z, tr, pr),
	}, nil
}
