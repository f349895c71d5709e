package evapiso

import "fmt"

// Model configuration shared by both computation modes.
type Config struct {
	N float64 // aerodynamic regime parameter n, 0.5 (turbulent) .. 1 (static)
	K float64 // assumed equilibrium fraction between atmosphere and precipitation, [0,1]
}

// Validate rejects configuration outside the model's domain.
func (c Config) Validate() error {
	if c.N <= 0 || c.N > 1 {
		return fmt.Errorf("%w: aerodynamic parameter n=%g outside (0,1]", ErrInvalidParameter, c.N)
	}
	if c.K < 0 || c.K > 1 {
		return fmt.Errorf("%w: seasonality factor k=%g outside [0,1]", ErrInvalidParameter, c.K)
	}
	return nil
}

// Derived is the full set of quantities the model derives from one climate
// condition, for both species. All fields are pure functions of the inputs.
type Derived struct {
	Climate ClimateInput

	FactorsH2  Factors
	FactorsO18 Factors

	AtmosH2  float64 // atmospheric vapor delta-2H [‰]
	AtmosO18 float64 // atmospheric vapor delta-18O [‰]

	ParamsH2  EvapParams
	ParamsO18 EvapParams
}

// Evaluate derives fractionation factors, atmospheric vapor composition and
// evaporation parameters for both species from one climate condition.
func Evaluate(climate ClimateInput, cfg Config) (*Derived, error) {
	if err := climate.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := climate.RelHumidity

	fH, err := FactorsFor(H2, climate.TempC, h, cfg.N)
	if err != nil {
		return nil, err
	}
	fO, err := FactorsFor(O18, climate.TempC, h, cfg.N)
	if err != nil {
		return nil, err
	}

	daH, err := AtmosphereDelta(climate.SourceH2, fH.EpsEq, cfg.K)
	if err != nil {
		return nil, err
	}
	daO, err := AtmosphereDelta(climate.SourceO18, fO.EpsEq, cfg.K)
	if err != nil {
		return nil, err
	}

	return &Derived{
		Climate:    climate,
		FactorsH2:  fH,
		FactorsO18: fO,
		AtmosH2:    daH,
		AtmosO18:   daO,
		ParamsH2:   NewEvapParams(h, daH, fH),
		ParamsO18:  NewEvapParams(h, daO, fO),
	}, nil
}

// Residual returns the residual-liquid composition of both species after the
// fraction x evaporated.
func (d *Derived) Residual(x float64) (dlH, dlO float64, err error) {
	dlH, err = ResidualDelta(d.Climate.SourceH2, d.ParamsH2, x)
	if err != nil {
		return 0, 0, err
	}
	dlO, err = ResidualDelta(d.Climate.SourceO18, d.ParamsO18, x)
	if err != nil {
		return 0, 0, err
	}
	return dlH, dlO, nil
}

// Vapor returns the Craig-Gordon flux composition of both species for a
// residual liquid of composition (dlH, dlO).
func (d *Derived) Vapor(dlH, dlO float64) (deH, deO float64) {
	h := d.Climate.RelHumidity
	deH = VaporDelta(dlH, h, d.AtmosH2, d.FactorsH2)
	deO = VaporDelta(dlO, h, d.AtmosO18, d.FactorsO18)
	return deH, deO
}

// Slope returns the approximate evaporation-line slope of the climate
// condition, from the limiting compositions and the source water.
func (d *Derived) Slope() (float64, error) {
	return ApproxEvaporationSlope(
		d.ParamsH2.DStar, d.Climate.SourceH2,
		d.ParamsO18.DStar, d.Climate.SourceO18)
}
