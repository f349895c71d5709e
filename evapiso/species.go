// Package evapiso computes the stable-isotope (2H, 18O) enrichment of an
// evaporating water body with the Craig-Gordon model as formalized by
// Gonfiantini (1986) and Gibson et al. (2016).
//
// All delta values are per-mil (‰) vs VSMOW, fractionation factors alpha are
// dimensionless ratios, epsilon values are per-mil, and humidities are
// fractions in [0,1].
package evapiso

// Isotope species of the water molecule.
type Species int

const (
	H2  Species = iota // deuterium, 2H/1H
	O18                // oxygen-18, 18O/16O
)

// Molecular diffusivity ratios D_i/D of the heavy isotopologue in air,
// Merlivat (1978).
const (
	diffusivityRatioH2  = 0.9755
	diffusivityRatioO18 = 0.9723
)

func (s Species) String() string {
	if s == H2 {
		return "2H"
	}
	return "18O"
}

// DiffusivityRatio returns the molecular diffusivity ratio for the species.
func (s Species) DiffusivityRatio() float64 {
	if s == H2 {
		return diffusivityRatioH2
	}
	return diffusivityRatioO18
}
