package aga8

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownStrategy rejects strategy strings outside the two supported
// solvers.
var ErrUnknownStrategy = errors.New("unknown z-factor strategy")

// Strategy selects one of the two coexisting Z-factor algorithms. Both are
// pure functions of pressure, temperature and mixture parameters.
type Strategy string

const (
	// StrategyCubic builds Peng-Robinson parameters from the mixture
	// critical properties and refines the cubic root with Newton-Raphson.
	StrategyCubic Strategy = "cubic"
	// StrategyEmpirical applies a bounded reduced-state correction to the
	// ideal-gas value. Cheap, and always inside [0.88, 0.98].
	StrategyEmpirical Strategy = "empirical"
)

// ParseStrategy maps the request-level strategy string; empty selects the
// cubic solver.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyCubic, nil
	case StrategyCubic:
		return StrategyCubic, nil
	case StrategyEmpirical:
		return StrategyEmpirical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// ZResult distinguishes a root that converged within tolerance from the
// best-effort value left after the iteration budget ran out.
type ZResult struct {
	Z          float64 `json:"z"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

const (
	rGas = 8.314 // kJ/(kmol K), Peng-Robinson parameter scale

	newtonMaxIter = 10
	newtonStepTol = 1e-8
	derivGuard    = 1e-10
	zFloor        = 0.1

	empiricalZMin = 0.88
	empiricalZMax = 0.98
)

// CompressibilityFactor computes Z at the given absolute operating point for
// a normalized composition, using the selected strategy. The mixture
// parameters are recomputed here rather than passed in, so both strategies
// stay self-contained.
func CompressibilityFactor(s Strategy, pressureBara, temperatureK float64, comp Composition) (ZResult, error) {
	tc, pc, _ := MixtureCriticalProperties(comp)
	switch s {
	case StrategyCubic:
		return cubicZ(pressureBara, temperatureK, tc, pc, MixtureAcentricFactor(comp)), nil
	case StrategyEmpirical:
		return empiricalZ(pressureBara, temperatureK, tc, pc), nil
	}
	return ZResult{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// cubicZ solves z^3 - (1-B)z^2 + A z - AB = 0 by Newton-Raphson from the
// ideal-gas starting point. The iteration budget is fixed; if the step never
// drops below tolerance the last iterate is returned unconverged. Roots are
// floored at 0.1 to keep non-physical values out of the density formula.
func cubicZ(p, t, tcMix, pcMix, omegaMix float64) ZResult {
	tr := t / tcMix

	kappa := 0.37464 + 1.54226*omegaMix - 0.26992*omegaMix*omegaMix
	alpha := math.Pow(1+kappa*(1-math.Sqrt(tr)), 2)

	a := 0.45724 * rGas * rGas * tcMix * tcMix / pcMix * alpha
	b := 0.07780 * rGas * tcMix / pcMix

	rt := rGas * t
	bigB := b * p / rt
	bigA := a * p / (rt * rt)
	bigAB := a * b * p * p / (rt * rt * rt)

	var res ZResult
	z := 1.0
	for i := 0; i < newtonMaxIter; i++ {
		res.Iterations = i + 1

		f := z*z*z - (1-bigB)*z*z + bigA*z - bigAB
		df := 3*z*z - 2*(1-bigB)*z + bigA
		if math.Abs(df) <= derivGuard {
			continue
		}
		next := z - f/df
		if math.Abs(next-z) < newtonStepTol {
			res.Converged = true
			break
		}
		z = next
	}
	res.Z = math.Max(z, zFloor)
	return res
}

// empiricalZ is the detail-variant correlation: a small negative correction
// growing with reduced pressure, clamped to the band the method was fitted
// on. The clamp means the returned value always counts as converged.
func empiricalZ(p, t, tcMix, pcMix float64) ZResult {
	tr := t / tcMix
	pr := p / pcMix

	var correction float64
	if pr > 1 {
		correction = -0.015*pr - 0.005*pr*pr/tr
	} else {
		correction = -0.003 * pr
	}

	z := 1 + correction
	if z < empiricalZMin {
		z = empiricalZMin
	}
	if z > empiricalZMax {
		z = empiricalZMax
	}
	return ZResult{Z: z, Converged: true}
}

// ReducedDensity back-derives the reduced density implied by a Z value at
// the given reduced state. Used as an internal consistency check on the
// empirical strategy, not as a primary output.
func ReducedDensity(z, reducedT, reducedP float64) float64 {
	if z == 0 || reducedT == 0 {
		return 0
	}
	return reducedP / (z * reducedT)
}
