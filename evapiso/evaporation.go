package evapiso

import (
	"fmt"
	"math"
)

// Evaporation parameters of one species at one climate condition.
type EvapParams struct {
	M     float64 // enrichment slope (exponent of the residual-liquid power law)
	DStar float64 // limiting composition d* [‰], the fully-desiccated asymptote
}

// EnrichmentSlope returns the exponent m governing the enrichment of the
// residual liquid with increasing evaporated fraction:
//
//	m = (h - 1e-3*(epsK + epsEq/alpha)) / (1 - h + 1e-3*epsK)
func EnrichmentSlope(h float64, f Factors) float64 {
	return (h - 1e-3*(f.EpsK+f.EpsEq/f.Alpha)) / (1 - h + 1e-3*f.EpsK)
}

// LimitingDelta returns the limiting composition d* [‰] the residual liquid
// approaches on full desiccation:
//
//	d* = (h*da + epsK + epsEq/alpha) / (h - 1e-3*(epsK + epsEq/alpha))
func LimitingDelta(h float64, da float64, f Factors) float64 {
	return (h*da + f.EpsK + f.EpsEq/f.Alpha) / (h - 1e-3*(f.EpsK+f.EpsEq/f.Alpha))
}

// NewEvapParams derives both evaporation parameters of a species from the
// humidity h, the atmospheric vapor composition da [‰] and the fractionation
// factors.
func NewEvapParams(h float64, da float64, f Factors) EvapParams {
	return EvapParams{
		M:     EnrichmentSlope(h, f),
		DStar: LimitingDelta(h, da, f),
	}
}

// ResidualDelta returns the composition [‰] of the residual liquid after the
// fraction x of the initial volume evaporated:
//
//	d = (dp - d*)*(1-x)^m + d*
//
// x must lie in [0,1). x >= 1 is only meaningful when m is a non-negative
// integer (fractional powers of a non-positive base are undefined); x = 1 is
// accepted in that case and returns d* for m > 0.
func ResidualDelta(dp float64, p EvapParams, x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: evaporated fraction x=%g negative", ErrInvalidParameter, x)
	}
	if x >= 1 {
		if x > 1 || p.M < 0 || p.M != math.Trunc(p.M) {
			return 0, fmt.Errorf("%w: evaporated fraction x=%g with non-integer exponent m=%g", ErrInvalidParameter, x, p.M)
		}
	}
	return (dp-p.DStar)*math.Pow(1-x, p.M) + p.DStar, nil
}

// VaporDelta returns the Craig-Gordon composition [‰] of the evaporation flux
// leaving a liquid of composition dl [‰]:
//
//	dE = ((dl - epsEq)/alpha - h*da - epsK) / (1 - h + 1e-3*epsK)
func VaporDelta(dl float64, h float64, da float64, f Factors) float64 {
	return ((dl-f.EpsEq)/f.Alpha - h*da - f.EpsK) / (1 - h + 1e-3*f.EpsK)
}

// ApproxEvaporationSlope returns the approximate slope of the evaporation
// line in dual-isotope space, the ratio of the total enrichment ranges:
//
//	S = (d*_2H - dp_2H) / (d*_18O - dp_18O)
func ApproxEvaporationSlope(dstarH, dpH, dstarO, dpO float64) (float64, error) {
	if dstarO == dpO {
		return 0, fmt.Errorf("%w: zero 18O enrichment range (d* = dp = %g ‰)", ErrDegenerateGeometry, dpO)
	}
	return (dstarH - dpH) / (dstarO - dpO), nil
}
