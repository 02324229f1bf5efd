package spectral_test

import "math"

// sinWave evaluates a single traveling-wave contribution
// sin(2πν·t − k·z) for closed-form comparisons.
func sinWave(nu, t, k, z float64) float64 {
	return math.Sin(2*math.Pi*nu*t - k*z)
}
