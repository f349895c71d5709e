package evapiso

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDataset(t *testing.T) {
	raw := []byte(`
n: 0.75
k: 1.0
single:
  temperature: 20.0
  humidity: 0.75
  source_2h: -38.0
  source_18o: -6.0
sweep:
  steps: 100
  xmax: 0.99
seasonal:
  xmean: 0.25
  fampl: 0.5
  shift: 6
  months:
    - {temperature: 2.0, vapor_pressure: 4.6, precip_2h: -94.0, precip_18o: -13.0}
    - {temperature: 4.7, vapor_pressure: 5.5, precip_2h: -90.0, precip_18o: -12.5}
`)

	ds, err := ParseDataset(raw)
	assert.NoError(t, err)

	assert.Equal(t, Config{N: 0.75, K: 1.0}, ds.Config())
	assert.Equal(t, ClimateInput{
		TempC:       20.0,
		RelHumidity: 0.75,
		SourceH2:    -38.0,
		SourceO18:   -6.0,
	}, ds.SingleClimate())

	assert.Equal(t, 100, ds.Sweep.Steps)
	assert.Equal(t, 0.99, ds.Sweep.Xmax)
	assert.Equal(t, 6.0, ds.Seasonal.Shift)

	months := ds.MonthlyClimates()
	assert.Equal(t, 2, len(months))
	assert.Equal(t, MonthlyClimate{
		TempC:         2.0,
		VaporPressure: 4.6,
		PrecipH2:      -94.0,
		PrecipO18:     -13.0,
	}, months[0])
}

func Test_ParseDataset_Invalid(t *testing.T) {
	_, err := ParseDataset([]byte("n: [not, a, number"))
	assert.Error(t, err)
}
