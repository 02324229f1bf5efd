// Package spectral synthesizes optical pulses as Gaussian-weighted sums of
// sinusoidal spectral components with frequency-dependent wave vectors.
//
// 🚀 What is spectral synthesis?
//
//	A short light pulse is a superposition of many monochromatic waves that
//	interfere constructively only near the pulse center.  For each frequency
//	ν on a uniform grid, the contribution along the propagation axis z is
//
//	  E_ν(z, t) = S(ν) · sin(2πν·t − k(ν)·z)
//
//	where S(ν) is a Gaussian spectral envelope and k(ν) the dispersion law
//	from package dispersion.  Summing all contributions yields the field
//	snapshot; repeating over a time grid yields the full space-time series.
//
// ✨ Key features:
//   - uniform frequency grid from ν_min to 2·ν_center (gonum/floats)
//   - scipy-compatible symmetric Gaussian envelope
//   - O(N·M) flat-accumulation kernel, no per-element allocation
//   - time-series builder with optional progress observer
//   - FFT power spectrum of synthesized snapshots (go-dsp)
//
// ⚙️ Usage:
//
//	import "github.com/lightforge/pulsim/spectral"
//
//	z := make([]float64, 500)
//	floats.Span(z, 0, 100)
//
//	opts := spectral.DefaultOptions()
//	pulses, err := spectral.Pulses(z, 0, 10, 5, opts, nil)
//	if err != nil {
//	  // handle ErrEmptyAxis, ErrNonMonotonicAxis, ...
//	}
//	// pulses has shape (5, 500); pulses[0] equals spectral.Field(z, 0, opts)
//
// Performance:
//
//   - Field:  O(N·M) time, O(M) extra memory
//   - Pulses: O(nSteps·N·M) time — the dominant cost center of pulsim;
//     precompute once and hand the result to plotting or anim.
package spectral
