package evapiso

import "errors"

// Error conditions of the model. All are reported before any partial result
// is produced; the package never returns silent NaN/Inf for these cases.
var (
	// ErrInvalidParameter indicates an input outside its physical domain
	// (humidity outside [0,1], temperature at or below absolute zero,
	// evaporated fraction outside the valid range for the exponent).
	ErrInvalidParameter = errors.New("evapiso: parameter out of valid range")

	// ErrDegenerateGeometry indicates a zero denominator in a slope or a
	// line intersection with equal slopes (parallel lines).
	ErrDegenerateGeometry = errors.New("evapiso: degenerate geometry")

	// ErrDegenerateRegression indicates a regression input with fewer than
	// two distinct x values.
	ErrDegenerateRegression = errors.New("evapiso: degenerate regression input")
)
