// Package dispersion evaluates frequency-dependent wave vectors k(ν) via a
// Taylor expansion around a center frequency.
//
// 🚀 What is a dispersion law?
//
//	In a dispersive medium the wave vector depends on frequency.  Around a
//	center frequency ν₀ the dependence is captured by a Taylor series in the
//	angular-frequency deviation Δω = 2π(ν − ν₀):
//
//	  k(ν) = k₀ + k₁·Δω + k₂·Δω² + k₃·Δω³
//
//	The successive orders carry the textbook physics:
//	  • k₁ — inverse group velocity (how fast the envelope travels)
//	  • k₂ — group-velocity dispersion (pulse stretching / chirp)
//	  • k₃ — third-order dispersion (asymmetric pulse distortion)
//
// ✨ Key features:
//   - pure functions, no state, no error paths
//   - scalar and elementwise slice evaluation
//   - immutable value-typed Coefficients with per-call defaults
//
// ⚙️ Usage:
//
//	import "github.com/lightforge/pulsim/dispersion"
//
//	co := dispersion.Coefficients{K0: 1, K1: 3, K2: 2}
//	k := dispersion.WaveVector(0.15, 0.15, co) // at center: exactly K0
//
// Performance: O(1) per frequency, O(n) for a slice.
package dispersion
