package dispersion

import "math"

// twoPi converts frequency ν to angular frequency ω = 2πν.
const twoPi = 2 * math.Pi

// WaveVector evaluates the Taylor-expanded wave vector at frequency nu
// around center frequency nuCenter:
//
//	k(ν) = K0 + K1·Δω + K2·Δω² + K3·Δω³,  Δω = 2π(ν − ν_center)
//
// Pure function: no state, no error conditions.  At ν = ν_center the result
// is exactly K0, regardless of the higher-order terms.
//
// Complexity: O(1).
func WaveVector(nu, nuCenter float64, c Coefficients) float64 {
	dw := twoPi * (nu - nuCenter)
	// Horner form keeps the evaluation to three multiply-adds.
	return c.K0 + dw*(c.K1+dw*(c.K2+dw*c.K3))
}

// WaveVectorSeries evaluates the wave vector elementwise over nus and
// returns a freshly allocated slice of the same length.
//
// Complexity: O(len(nus)).
func WaveVectorSeries(nus []float64, nuCenter float64, c Coefficients) []float64 {
	ks := make([]float64, len(nus))
	for i, nu := range nus {
		ks[i] = WaveVector(nu, nuCenter, c)
	}
	return ks
}
