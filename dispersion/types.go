// Package dispersion defines the coefficient tuple for the wave-vector
// Taylor expansion used across pulsim.
package dispersion

// Coefficients holds up to four Taylor terms of the wave-vector law
// k(ν) = K0 + K1·Δω + K2·Δω² + K3·Δω³ with Δω = 2π(ν − ν_center).
//
// The zero value means k(ν) = 0 for all ν.  Unset trailing terms are zero,
// matching the "missing coefficients default to zero" convention.
//
// Coefficients is a small value type: copy it freely, never share a pointer.
type Coefficients struct {
	// K0 is the constant phase term.
	K0 float64
	// K1 is dk/dω, the inverse group velocity.
	K1 float64
	// K2 is d²k/dω², the group-velocity dispersion.
	K2 float64
	// K3 is d³k/dω³, the third-order dispersion.
	K3 float64
}

// Default returns the conventional demo coefficients {K0:1, K1:5}: unit
// constant phase, moderate group delay, no higher-order dispersion.
// A fresh value is constructed on every call, so callers can mutate their
// copy without affecting anyone else.
func Default() Coefficients {
	return Coefficients{K0: 1, K1: 5}
}

// FromSlice builds Coefficients from the first (up to) four values of ks.
// Missing trailing values default to zero; extra values are ignored.
func FromSlice(ks []float64) Coefficients {
	var c Coefficients
	dst := []*float64{&c.K0, &c.K1, &c.K2, &c.K3}
	for i := 0; i < len(ks) && i < len(dst); i++ {
		*dst[i] = ks[i]
	}
	return c
}
