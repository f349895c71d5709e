package evapiso

import "fmt"

// AtmosphereDelta derives the isotopic composition [‰] of atmospheric vapor
// from the local precipitation (source) composition, assuming a fraction k of
// isotopic equilibrium between vapor and precipitation:
//
//	da = (source - k*epsEq) / (1 + k*epsEq/1000)
//
// With k=1 this equals (source - epsEq)/alpha exactly.
func AtmosphereDelta(source float64, epsEq float64, k float64) (float64, error) {
	if k < 0 || k > 1 {
		return 0, fmt.Errorf("%w: seasonality factor k=%g outside [0,1]", ErrInvalidParameter, k)
	}
	return (source - k*epsEq) / (1 + k*epsEq/1000), nil
}
