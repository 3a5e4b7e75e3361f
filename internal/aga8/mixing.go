package aga8

import "fmt"

// MixtureParams are the mixture-level scalars the solver and derived
// property calculators consume. Recomputed per request, never cached.
type MixtureParams struct {
	TcMix   float64 // K
	PcMix   float64 // MPa
	RhoCMix float64 // kg/m3
	MWMix   float64 // g/mol
}

// MixtureMolecularWeight sums mole-fraction-weighted component weights.
// Unlike the critical-property rule it rejects unknown components, because a
// missing weight would silently bias every downstream property.
func MixtureMolecularWeight(comp Composition) (float64, error) {
	var mw float64
	for name, pct := range comp {
		w, ok := MolecularWeight(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, name)
		}
		mw += pct / 100 * w
	}
	return mw, nil
}

// MixtureCriticalProperties applies the linear mole-fraction mixing rule for
// Tc, Pc and rhoc. Components without tabulated critical data are skipped.
//
// No binary-interaction cross terms are applied here; the tabulated kij
// coefficients are intentionally left out of this path.
func MixtureCriticalProperties(comp Composition) (tc, pc, rhoc float64) {
	for name, pct := range comp {
		cd, ok := Critical(name)
		if !ok {
			continue
		}
		xi := pct / 100
		tc += xi * cd.Tc
		pc += xi * cd.Pc
		rhoc += xi * cd.RhoC
	}
	return tc, pc, rhoc
}

// MixtureAcentricFactor mixes the acentric factor with the same linear rule;
// used by the cubic equation-of-state path.
func MixtureAcentricFactor(comp Composition) float64 {
	var omega float64
	for name, pct := range comp {
		cd, ok := Critical(name)
		if !ok {
			continue
		}
		omega += pct / 100 * cd.Omega
	}
	return omega
}

// MixtureParameters bundles the full mixture record for a composition.
func MixtureParameters(comp Composition) (MixtureParams, error) {
	mw, err := MixtureMolecularWeight(comp)
	if err != nil {
		return MixtureParams{}, err
	}
	tc, pc, rhoc := MixtureCriticalProperties(comp)
	return MixtureParams{TcMix: tc, PcMix: pc, RhoCMix: rhoc, MWMix: mw}, nil
}
