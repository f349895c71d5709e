package evapiso

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Gonfiantini (1986) worked example: dp = -38/-6 ‰, 20 degC, h = 0.75,
// n = 0.75. Factors at these conditions:
func gonfiantiniFactors(t *testing.T) (fH, fO Factors) {
	t.Helper()
	fH, err := FactorsFor(H2, 20.0, 0.75, 0.75)
	assert.NoError(t, err)
	fO, err = FactorsFor(O18, 20.0, 0.75, 0.75)
	assert.NoError(t, err)
	return fH, fO
}

// Figure 3.1 scenario with the paper's measured atmosphere fed in directly
// (da = -86/-12 ‰), bypassing the atmosphere model.
func Test_LimitingDelta_GonfiantiniFigure31(t *testing.T) {
	fH, fO := gonfiantiniFactors(t)

	pH := NewEvapParams(0.75, -86.0, fH)
	pO := NewEvapParams(0.75, -12.0, fO)

	// within 1% of the figure values
	assert.True(t, math.Abs(pH.DStar-26.7922) < 0.01*26.7922)
	assert.True(t, math.Abs(pO.DStar-7.9947) < 0.01*7.9947)

	slope, err := ApproxEvaporationSlope(pH.DStar, -38.0, pO.DStar, -6.0)
	assert.NoError(t, err)
	assert.True(t, math.Abs(slope-4.6298) < 0.01*4.6298)
}

// Same example with the atmosphere derived from precipitation (k=1). The
// derived atmosphere (-112.8/-15.6 ‰) is lighter than the paper's measured
// -86/-12 ‰, which lowers the slope from the reported ~4.6 to ~3.36.
func Test_ApproxEvaporationSlope_DerivedAtmosphere(t *testing.T) {
	d, err := Evaluate(ClimateInput{
		TempC:       20.0,
		RelHumidity: 0.75,
		SourceH2:    -38.0,
		SourceO18:   -6.0,
	}, Config{N: 0.75, K: 1.0})
	assert.NoError(t, err)

	assert.True(t, math.Abs(d.ParamsH2.DStar-(-3.3566)) < 1.0e-3)
	assert.True(t, math.Abs(d.ParamsO18.DStar-4.2961) < 1.0e-3)

	slope, err := d.Slope()
	assert.NoError(t, err)
	assert.True(t, math.Abs(slope-3.3647) < 1.0e-3)
}

func Test_EnrichmentSlope(t *testing.T) {
	fH, fO := gonfiantiniFactors(t)
	assert.True(t, math.Abs(EnrichmentSlope(0.75, fH)-2.6222686) < 1.0e-6)
	assert.True(t, math.Abs(EnrichmentSlope(0.75, fO)-2.8806462) < 1.0e-6)
}

// x=0 must return the source composition exactly
func Test_ResidualDelta_NoEvaporation(t *testing.T) {
	p := EvapParams{M: 2.6222686, DStar: -3.3566}
	d, err := ResidualDelta(-38.0, p, 0.0)
	assert.NoError(t, err)
	assert.Equal(t, -38.0, d)
}

// the residual liquid approaches d* monotonically as x -> 1 for m > 0
func Test_ResidualDelta_ApproachesLimit(t *testing.T) {
	p := EvapParams{M: 2.6222686, DStar: -3.3566}

	d99, err := ResidualDelta(-38.0, p, 0.99)
	assert.NoError(t, err)
	d999, err := ResidualDelta(-38.0, p, 0.999)
	assert.NoError(t, err)

	assert.True(t, math.Abs(d999-p.DStar) < math.Abs(d99-p.DStar))
	assert.True(t, math.Abs(d999-p.DStar) < 1.0e-4*math.Abs(-38.0-p.DStar))
}

func Test_ResidualDelta_MidSweep(t *testing.T) {
	d, err := Evaluate(ClimateInput{
		TempC:       20.0,
		RelHumidity: 0.75,
		SourceH2:    -38.0,
		SourceO18:   -6.0,
	}, Config{N: 0.75, K: 1.0})
	assert.NoError(t, err)

	dlH, err := ResidualDelta(-38.0, d.ParamsH2, 0.5)
	assert.NoError(t, err)
	assert.True(t, math.Abs(dlH-(-8.9830732)) < 1.0e-4)
}

func Test_ResidualDelta_InvalidFraction(t *testing.T) {
	p := EvapParams{M: 2.6222686, DStar: -3.3566}

	_, err := ResidualDelta(-38.0, p, -0.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	// x=1 with a non-integer exponent: (1-x)^m undefined beyond this point
	_, err = ResidualDelta(-38.0, p, 1.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = ResidualDelta(-38.0, p, 1.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	// integer exponent: x=1 is the exact desiccation limit
	d, err := ResidualDelta(-38.0, EvapParams{M: 3.0, DStar: -3.3566}, 1.0)
	assert.NoError(t, err)
	assert.Equal(t, -3.3566, d)
}

// the flux leaving an un-evaporated liquid, Gonfiantini conditions with
// derived atmosphere
func Test_VaporDelta(t *testing.T) {
	d, err := Evaluate(ClimateInput{
		TempC:       20.0,
		RelHumidity: 0.75,
		SourceH2:    -38.0,
		SourceO18:   -6.0,
	}, Config{N: 0.75, K: 1.0})
	assert.NoError(t, err)

	deH, _ := d.Vapor(-38.0, -6.0)
	assert.True(t, math.Abs(deH-(-128.8444106)) < 1.0e-4)
}

func Test_ApproxEvaporationSlope_Degenerate(t *testing.T) {
	_, err := ApproxEvaporationSlope(20.0, -38.0, -6.0, -6.0)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}
