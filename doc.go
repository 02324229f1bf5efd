// Package pulsim is your in-memory playground for synthesizing, exploring,
// and animating optical pulses — from dispersion laws to resonator modes.
//
// 🚀 What is pulsim?
//
//	A batch numeric library that models light pulses as weighted sums of
//	spectral components with frequency-dependent wave vectors:
//		• Dispersion: Taylor-expanded wave vector k(ν) up to third order
//		• Spectral synthesis: Gaussian-weighted plane-wave superposition
//		• Pulse propagation: space-time field arrays over a uniform time grid
//		• Resonator modes: harmonic standing-wave decomposition of a cavity
//		• Plotting & animation: static figures and GIF export of pulse motion
//
// ✨ Why choose pulsim?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – explicit options, injected randomness, no hidden state
//   - Batch-oriented – precompute once, render and export afterwards
//   - Extensible – attach a progress observer to any long-running build
//
// Under the hood, everything is organized under focused subpackages:
//
//	dispersion/ — wave-vector Taylor expansion around a center frequency
//	spectral/   — frequency grid, Gaussian envelope, field synthesizer & pulse builder
//	resonator/  — cavity eigenmode decomposition (harmonic series, optional random phases)
//	progress/   — optional per-step observer for long batch computations
//	plotting/   — static pulse, component and spectrum figures (gonum/plot)
//	anim/       — frame-by-frame GIF animation of precomputed pulse series
//	imgutil/    — rounded-corner post-processing for exported figures
//
// Quick ASCII example:
//
//	   E ▲        ╭╮
//	     │   ╭╮  ╭╯╰╮  ╭╮
//	     │╶─╯╰──╯    ╰──╯╰─╴
//	     └──────────────────▶ z
//
//	a short pulse: many sinusoids, in phase only near the pulse center.
//
// Dive into README.md for full examples and the examples/ directory for
// runnable demos of all dispersion orders and resonator mode-locking.
//
//	go get github.com/lightforge/pulsim
package pulsim
