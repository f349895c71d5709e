package evapiso

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// OLS on a perfectly linear dataset recovers the line
func Test_FitLine(t *testing.T) {
	xs := []float64{-2, 0, 1, 3, 7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x + 7
	}

	slope, intercept, err := FitLine(xs, ys)
	assert.NoError(t, err)
	assert.True(t, math.Abs(slope-3) < 1.0e-6)
	assert.True(t, math.Abs(intercept-7) < 1.0e-6)
}

func Test_FitLine_Degenerate(t *testing.T) {
	_, _, err := FitLine([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, ErrDegenerateRegression)

	// many points, single distinct x
	_, _, err = FitLine([]float64{4, 4, 4}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerateRegression)

	_, _, err = FitLine([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerateRegression)
}

func Test_Intersection(t *testing.T) {
	// GMWL against a typical evaporation line
	x, y, err := Intersection(Line{Slope: 5, Intercept: -20}, GlobalMeteoricWaterLine)
	assert.NoError(t, err)
	assert.True(t, math.Abs(x-(-10)) < 1.0e-9)
	assert.True(t, math.Abs(y-(-70)) < 1.0e-9)

	_, _, err = Intersection(Line{Slope: 8, Intercept: 0}, GlobalMeteoricWaterLine)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

// the fitted evaporation line runs much shallower than the meteoric line
func Test_EvaporationLine(t *testing.T) {
	months := testMonths()
	xs, err := EvaporationRatios(0.25, 0.5, 6.0)
	assert.NoError(t, err)

	res, err := Seasonal(months, xs, Config{N: 0.75, K: 1.0})
	assert.NoError(t, err)

	line, err := res.EvaporationLine()
	assert.NoError(t, err)
	assert.True(t, line.Slope > 2.0)
	assert.True(t, line.Slope < GlobalMeteoricWaterLine.Slope)

	// it must cross the GMWL below the mean precipitation input
	x, y, err := Intersection(line, GlobalMeteoricWaterLine)
	assert.NoError(t, err)
	assert.True(t, x < res.LiquidO18[0])
	assert.True(t, math.Abs(y-(8*x+10)) < 1.0e-9)
}
