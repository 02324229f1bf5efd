// Package spectral defines options and sentinel errors for the pulse
// synthesis engine of github.com/lightforge/pulsim.
package spectral

import (
	"errors"

	"github.com/lightforge/pulsim/dispersion"
)

// Sentinel errors for spectral operations.
var (
	// ErrEmptyAxis indicates the spatial axis has no samples.
	ErrEmptyAxis = errors.New("spectral: spatial axis must be non-empty")
	// ErrNonMonotonicAxis indicates the spatial axis is not strictly increasing.
	ErrNonMonotonicAxis = errors.New("spectral: spatial axis must be strictly increasing")
	// ErrNoFrequencies indicates a non-positive frequency-sample count.
	ErrNoFrequencies = errors.New("spectral: NFrequencies must be at least 1")
	// ErrBadFrequencyRange indicates ν_min does not lie below 2·ν_center,
	// so no strictly increasing grid exists.
	ErrBadFrequencyRange = errors.New("spectral: NuMin must be smaller than 2·NuCenter")
	// ErrBadWidth indicates a non-positive spectral width.
	ErrBadWidth = errors.New("spectral: SpecWidth must be positive")
	// ErrBadStepCount indicates a non-positive time-step count.
	ErrBadStepCount = errors.New("spectral: nSteps must be at least 1")
)

// Options configures the spectral synthesizer.
//
// Fields:
//   - NuCenter     — center frequency of the spectrum.
//   - NuMin        — lowest frequency on the grid; the grid spans
//     [NuMin, 2·NuCenter] with NFrequencies uniform samples.
//   - NFrequencies — number of spectral components N.
//   - SpecWidth    — standard deviation (in grid indices) of the Gaussian
//     spectral envelope.
//   - Coeffs       — dispersion coefficients for the wave-vector law.
//
// The zero value is invalid; start from DefaultOptions and adjust.
type Options struct {
	NuCenter     float64
	NuMin        float64
	NFrequencies int
	SpecWidth    float64
	Coeffs       dispersion.Coefficients
}

// DefaultOptions returns the conventional synthesis configuration:
// ν_center=1, ν_min=0.001, N=4000 components, envelope σ=200 and the
// demo dispersion coefficients {1, 5, 0, 0}.  A fresh value is constructed
// per call; nothing is shared between callers.
func DefaultOptions() Options {
	return Options{
		NuCenter:     1.0,
		NuMin:        0.001,
		NFrequencies: 4000,
		SpecWidth:    200.0,
		Coeffs:       dispersion.Default(),
	}
}

// Decomposition carries a full per-frequency breakdown of one field
// snapshot, as consumed by decomposition plots.
type Decomposition struct {
	// Frequencies is the uniform grid of N spectral frequencies.
	Frequencies []float64
	// Envelope is the Gaussian weight per frequency, same length as Frequencies.
	Envelope []float64
	// Components holds one spatial row per frequency, shape (N, M).
	Components [][]float64
	// Field is the elementwise sum of all components, length M.
	Field []float64
}
