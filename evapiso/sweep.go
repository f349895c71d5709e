package evapiso

import "fmt"

// Single-volume enrichment curve over a sweep of evaporated fractions.
type SweepResult struct {
	X []float64 //1.evaporated fraction of the initial volume

	LiquidH2  []float64 //2.residual liquid delta-2H [‰]
	LiquidO18 []float64 //3.residual liquid delta-18O [‰]
	VaporH2   []float64 //4.evaporation flux delta-2H [‰]
	VaporO18  []float64 //5.evaporation flux delta-18O [‰]

	Derived *Derived //derived quantities of the climate condition
}

// XRange returns steps+1 evenly spaced evaporated fractions from 0 to xmax.
// xmax must stay strictly below 1 (the power law is undefined at full
// desiccation for non-integer exponents).
func XRange(steps int, xmax float64) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: sweep needs at least 1 step, got %d", ErrInvalidParameter, steps)
	}
	if xmax < 0 || xmax >= 1 {
		return nil, fmt.Errorf("%w: xmax=%g outside [0,1)", ErrInvalidParameter, xmax)
	}
	xs := make([]float64, steps+1)
	for i := range xs {
		xs[i] = xmax * float64(i) / float64(steps)
	}
	return xs, nil
}

// Sweep evaluates the climate condition once and maps the residual-liquid and
// flux-vapor compositions over the ordered sequence of evaporated fractions.
// Each x is evaluated by the same pure per-x function; the sweep only collects
// results.
func Sweep(climate ClimateInput, cfg Config, xs []float64) (*SweepResult, error) {
	d, err := Evaluate(climate, cfg)
	if err != nil {
		return nil, err
	}

	res := SweepResult{
		X:         append([]float64{}, xs...),
		LiquidH2:  make([]float64, len(xs)),
		LiquidO18: make([]float64, len(xs)),
		VaporH2:   make([]float64, len(xs)),
		VaporO18:  make([]float64, len(xs)),
		Derived:   d,
	}

	for i, x := range xs {
		dlH, dlO, err := d.Residual(x)
		if err != nil {
			return nil, err
		}
		deH, deO := d.Vapor(dlH, dlO)

		res.LiquidH2[i] = dlH
		res.LiquidO18[i] = dlO
		res.VaporH2[i] = deH
		res.VaporO18[i] = deO
	}

	return &res, nil
}
