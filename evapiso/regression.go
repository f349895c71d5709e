package evapiso

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Line in dual-isotope space, delta-2H = Slope*delta-18O + Intercept [‰].
type Line struct {
	Slope     float64
	Intercept float64
}

// GlobalMeteoricWaterLine is the Craig (1961) global precipitation line
// d2H = 8*d18O + 10.
var GlobalMeteoricWaterLine = Line{Slope: 8, Intercept: 10}

// FitLine fits y = slope*x + intercept by ordinary least squares. The input
// needs at least two distinct x values.
func FitLine(xs []float64, ys []float64) (slope float64, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("%w: %d x values vs %d y values", ErrDegenerateRegression, len(xs), len(ys))
	}
	distinct := 0
	for i := range xs {
		if i == 0 || xs[i] != xs[0] {
			distinct++
		}
	}
	if len(xs) < 2 || distinct < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 distinct x values", ErrDegenerateRegression)
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, nil
}

// Intersection solves a.Slope*x + a.Intercept = b.Slope*x + b.Intercept.
// Parallel lines have no intersection.
func Intersection(a Line, b Line) (x float64, y float64, err error) {
	if a.Slope == b.Slope {
		return 0, 0, fmt.Errorf("%w: parallel lines with slope %g", ErrDegenerateGeometry, a.Slope)
	}
	x = (b.Intercept - a.Intercept) / (a.Slope - b.Slope)
	y = a.Slope*x + a.Intercept
	return x, y, nil
}

// EvaporationLine fits the empirical evaporation line through the monthly
// residual-liquid compositions, delta-2H against delta-18O.
func (r *SeasonalResult) EvaporationLine() (Line, error) {
	slope, intercept, err := FitLine(r.LiquidO18, r.LiquidH2)
	if err != nil {
		return Line{}, err
	}
	return Line{Slope: slope, Intercept: intercept}, nil
}
