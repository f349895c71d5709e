package evapiso

import (
	"fmt"
	"math"
)

// Equilibrium liquid-vapor fractionation, Horita and Wesolowski (1994).
//
// 1000 ln(alpha) fit coefficients for 2H (valid 0..374.1 degC):
//
//	1158.8 (T^3/10^9) - 1620.1 (T^2/10^6) + 794.84 (T/10^3)
//	  - 161.04 + 2.9992 (10^9/T^3)
const (
	hwD_T3    = 1158.8
	hwD_T2    = 1620.1
	hwD_T1    = 794.84
	hwD_C     = 161.04
	hwD_invT3 = 2.9992
)

// 1000 ln(alpha) fit coefficients for 18O (valid 0..350 degC):
//
//	-7.685 + 6.7123 (10^3/T) - 1.6664 (10^6/T^2) + 0.35041 (10^9/T^3)
const (
	hwO_C     = 7.685
	hwO_invT1 = 6.7123
	hwO_invT2 = 1.6664
	hwO_invT3 = 0.35041
)

// Per-species fractionation state at one climate condition.
type Factors struct {
	Alpha float64 // equilibrium fractionation factor alpha (liquid/vapor), dimensionless
	EpsEq float64 // equilibrium enrichment eps = (alpha-1)*1000, ‰
	EpsK  float64 // kinetic enrichment, ‰
}

// EquilibriumAlpha returns the equilibrium liquid-vapor fractionation factor
// for the species at absolute temperature TK [K].
func EquilibriumAlpha(s Species, TK float64) (float64, error) {
	if TK <= 0 {
		return 0, fmt.Errorf("%w: absolute temperature %g K", ErrInvalidParameter, TK)
	}

	var lnAlpha1000 float64
	switch s {
	case H2:
		lnAlpha1000 = hwD_T3*(TK*TK*TK/1e9) -
			hwD_T2*(TK*TK/1e6) +
			hwD_T1*(TK/1e3) -
			hwD_C +
			hwD_invT3*(1e9/(TK*TK*TK))
	case O18:
		lnAlpha1000 = -hwO_C +
			hwO_invT1*(1e3/TK) -
			hwO_invT2*(1e6/(TK*TK)) +
			hwO_invT3*(1e9/(TK*TK*TK))
	}

	return math.Exp(lnAlpha1000 / 1000), nil
}

// EquilibriumEpsilon converts a fractionation factor alpha to the equilibrium
// enrichment eps [‰].
func EquilibriumEpsilon(alpha float64) float64 {
	return (alpha - 1) * 1000
}

// KineticEpsilon returns the kinetic (diffusive) enrichment [‰] for the
// species under relative humidity h [0,1] and aerodynamic regime parameter n
// (n=0.5 turbulent .. n=1 static air layer).
func KineticEpsilon(s Species, n float64, h float64) (float64, error) {
	if h < 0 || h > 1 {
		return 0, fmt.Errorf("%w: relative humidity %g", ErrInvalidParameter, h)
	}
	return n * (1 - h) * (1 - s.DiffusivityRatio()) * 1000, nil
}

// FactorsFor bundles the equilibrium and kinetic fractionation of the species
// at air temperature tempC [degC], relative humidity h [0,1] and aerodynamic
// parameter n.
func FactorsFor(s Species, tempC float64, h float64, n float64) (Factors, error) {
	alpha, err := EquilibriumAlpha(s, tempC+273.15)
	if err != nil {
		return Factors{}, err
	}
	epsK, err := KineticEpsilon(s, n, h)
	if err != nil {
		return Factors{}, err
	}
	return Factors{
		Alpha: alpha,
		EpsEq: EquilibriumEpsilon(alpha),
		EpsK:  epsK,
	}, nil
}
