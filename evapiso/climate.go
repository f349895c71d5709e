package evapiso

import (
	"fmt"
	"math"
)

// Climate condition driving one evaporation computation.
type ClimateInput struct {
	TempC       float64 // air temperature [degC]
	RelHumidity float64 // relative humidity, fraction [0,1]
	SourceH2    float64 // source (input) water delta-2H [‰]
	SourceO18   float64 // source (input) water delta-18O [‰]
}

// Validate rejects physically impossible climate inputs before any
// computation runs.
func (c ClimateInput) Validate() error {
	if c.TempC <= -273.15 {
		return fmt.Errorf("%w: temperature %g degC at or below absolute zero", ErrInvalidParameter, c.TempC)
	}
	if c.RelHumidity < 0 || c.RelHumidity > 1 {
		return fmt.Errorf("%w: relative humidity %g outside [0,1]", ErrInvalidParameter, c.RelHumidity)
	}
	return nil
}

// SaturationVaporPressure returns the saturation vapor pressure [hPa] over
// water at tempC [degC], Tetens formula.
func SaturationVaporPressure(tempC float64) float64 {
	return 6.11 * math.Pow(10, 7.5*tempC/(237.3+tempC))
}

// HumidityFromVaporPressure derives relative humidity [0,1] from the vapor
// pressure pw [hPa] at air temperature tempC [degC].
func HumidityFromVaporPressure(pw float64, tempC float64) (float64, error) {
	h := pw / SaturationVaporPressure(tempC)
	if h < 0 || h > 1 {
		return 0, fmt.Errorf("%w: vapor pressure %g hPa gives humidity %g at %g degC", ErrInvalidParameter, pw, h, tempC)
	}
	return h, nil
}
