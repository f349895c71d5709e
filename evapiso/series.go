package evapiso

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Monthly climate record of the seasonal mode. Humidity is derived from the
// monthly vapor pressure against the Tetens saturation pressure.
type MonthlyClimate struct {
	TempC         float64 // monthly mean air temperature [degC]
	VaporPressure float64 // monthly mean vapor pressure [hPa]
	PrecipH2      float64 // precipitation delta-2H [‰]
	PrecipO18     float64 // precipitation delta-18O [‰]
}

// Seasonal series of twelve independent single-step evaporations.
type SeasonalResult struct {
	Month []int //1.month index 1..12

	H []float64 //2.relative humidity derived from vapor pressure, [0,1]
	X []float64 //3.evaporated fraction applied to the month

	AtmosH2  []float64 //4.atmospheric vapor delta-2H [‰]
	AtmosO18 []float64 //5.atmospheric vapor delta-18O [‰]

	LiquidH2  []float64 //6.residual liquid delta-2H [‰]
	LiquidO18 []float64 //7.residual liquid delta-18O [‰]
}

// EvaporationRatios generates a twelve-month evaporated-fraction series as a
// sinusoid around xmean:
//
//	x_i = xmean - xmean*fampl*cos(2*pi*(i/12 - shift/12)),  i = 0..11
//
// fampl in [0,1] scales the seasonal amplitude, shift moves the minimum month.
// Every generated ratio must land in [0,1).
func EvaporationRatios(xmean float64, fampl float64, shift float64) ([]float64, error) {
	if fampl < 0 || fampl > 1 {
		return nil, fmt.Errorf("%w: amplitude factor fampl=%g outside [0,1]", ErrInvalidParameter, fampl)
	}
	xs := make([]float64, 12)
	for i := range xs {
		xs[i] = xmean - xmean*fampl*math.Cos(2*math.Pi*(float64(i)/12-shift/12))
		if xs[i] < 0 || xs[i] >= 1 {
			return nil, fmt.Errorf("%w: month %d evaporated fraction %g outside [0,1)", ErrInvalidParameter, i+1, xs[i])
		}
	}
	return xs, nil
}

// Seasonal runs twelve independent single-step evaporations, one per monthly
// climate record with its matching evaporated fraction. Each month starts
// fresh from its own precipitation input; no residual water carries over
// between months. This approximates seasonally-resolved single-stage
// evaporation events, not a continuously mixing reservoir.
func Seasonal(months []MonthlyClimate, xs []float64, cfg Config) (*SeasonalResult, error) {
	if len(months) != 12 || len(xs) != 12 {
		return nil, fmt.Errorf("%w: seasonal mode needs 12 months and 12 ratios, got %d and %d", ErrInvalidParameter, len(months), len(xs))
	}

	res := SeasonalResult{
		Month:     make([]int, 12),
		H:         make([]float64, 12),
		X:         append([]float64{}, xs...),
		AtmosH2:   make([]float64, 12),
		AtmosO18:  make([]float64, 12),
		LiquidH2:  make([]float64, 12),
		LiquidO18: make([]float64, 12),
	}

	for i := 0; i < 12; i++ {
		m := months[i]

		h, err := HumidityFromVaporPressure(m.VaporPressure, m.TempC)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}

		d, err := Evaluate(ClimateInput{
			TempC:       m.TempC,
			RelHumidity: h,
			SourceH2:    m.PrecipH2,
			SourceO18:   m.PrecipO18,
		}, cfg)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}

		dlH, dlO, err := d.Residual(xs[i])
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}

		res.Month[i] = i + 1
		res.H[i] = h
		res.AtmosH2[i] = d.AtmosH2
		res.AtmosO18[i] = d.AtmosO18
		res.LiquidH2[i] = dlH
		res.LiquidO18[i] = dlO
	}

	return &res, nil
}

// MeanEvaporatedFraction returns the mean of the applied monthly ratios.
func (r *SeasonalResult) MeanEvaporatedFraction() float64 {
	return floats.Sum(r.X) / float64(len(r.X))
}
