// Package plotting renders static figures of synthesized pulses: multi-time
// overlays, spectral-component decompositions and the spectral envelope.
//
// 🚀 What does it draw?
//
//   - Pulses: one field snapshot per requested time, overlaid on a single
//     figure — the classic "pulse walking to the right" picture.
//   - SpectralComponents: a sub-range of the individual sinusoidal
//     components (every 10th frequency between N/5 and 4N/5), the resulting
//     summed pulse, and the Gaussian envelope over the frequency grid.
//
// All figures are gonum/plot plots; save them with Save to any format
// gonum/plot understands (.png, .pdf, .svg, ...).  Requesting an unknown
// extension fails with gonum/plot's unsupported-format error.
//
// ⚙️ Usage:
//
//	p, err := plotting.Pulses(z, []float64{0, 5, 10}, specOpts, plotting.DefaultOptions())
//	if err != nil { ... }
//	err = plotting.Save(p, "pulses.png", plotting.DefaultOptions())
//
// Presentation glue only: every number in a figure comes from package
// spectral; nothing here feeds back into the synthesis.
package plotting
