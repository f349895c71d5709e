package evapiso

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset is the YAML input consumed by the CLI layer. It carries the climate
// literals and configuration scalars; the core only ever sees the plain
// records built from it.
type Dataset struct {
	N float64 `yaml:"n"` // aerodynamic regime parameter
	K float64 `yaml:"k"` // atmosphere-precipitation equilibrium fraction

	Single struct {
		Temperature float64 `yaml:"temperature"` // [degC]
		Humidity    float64 `yaml:"humidity"`    // fraction [0,1]
		SourceH2    float64 `yaml:"source_2h"`   // [‰]
		SourceO18   float64 `yaml:"source_18o"`  // [‰]
	} `yaml:"single"`

	Sweep struct {
		Steps int     `yaml:"steps"`
		Xmax  float64 `yaml:"xmax"`
	} `yaml:"sweep"`

	Seasonal struct {
		Xmean float64 `yaml:"xmean"`
		Fampl float64 `yaml:"fampl"`
		Shift float64 `yaml:"shift"`

		Months []struct {
			Temperature   float64 `yaml:"temperature"`    // [degC]
			VaporPressure float64 `yaml:"vapor_pressure"` // [hPa]
			PrecipH2      float64 `yaml:"precip_2h"`      // [‰]
			PrecipO18     float64 `yaml:"precip_18o"`     // [‰]
		} `yaml:"months"`
	} `yaml:"seasonal"`
}

// LoadDataset reads and parses a YAML dataset file.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(raw)
}

// ParseDataset parses YAML dataset bytes.
func ParseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return &ds, nil
}

// Config returns the model configuration scalars of the dataset.
func (ds *Dataset) Config() Config {
	return Config{N: ds.N, K: ds.K}
}

// SingleClimate returns the single-volume climate record of the dataset.
func (ds *Dataset) SingleClimate() ClimateInput {
	return ClimateInput{
		TempC:       ds.Single.Temperature,
		RelHumidity: ds.Single.Humidity,
		SourceH2:    ds.Single.SourceH2,
		SourceO18:   ds.Single.SourceO18,
	}
}

// MonthlyClimates returns the monthly climate records of the dataset.
func (ds *Dataset) MonthlyClimates() []MonthlyClimate {
	months := make([]MonthlyClimate, len(ds.Seasonal.Months))
	for i, m := range ds.Seasonal.Months {
		months[i] = MonthlyClimate{
			TempC:         m.Temperature,
			VaporPressure: m.VaporPressure,
			PrecipH2:      m.PrecipH2,
			PrecipO18:     m.PrecipO18,
		}
	}
	return months
}
