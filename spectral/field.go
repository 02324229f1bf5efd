package spectral

import (
	"math"

	"github.com/lightforge/pulsim/dispersion"
)

const twoPi = 2 * math.Pi

// Field — Spectral Field Synthesizer
//
// Description:
//
//	Computes the electric field along the spatial axis z at time t as the
//	sum of N Gaussian-weighted plane waves.
//
// Algorithm Outline:
//  1. Build the frequency grid: N points from NuMin to 2·NuCenter.
//  2. Build the Gaussian envelope S over the grid (σ = SpecWidth).
//  3. For each frequency ν_i: phase φ_i(z) = k(ν_i)·z with k from the
//     dispersion law; contribution = S[i]·sin(2π·ν_i·t − φ_i(z)).
//  4. Accumulate all contributions elementwise into the result.
//
// The kernel is a flat O(N·M) accumulation over a single preallocated
// output row — the dominant cost center of the whole library.
//
// Errors:
//   - ErrEmptyAxis / ErrNonMonotonicAxis — malformed spatial axis.
//   - ErrNoFrequencies / ErrBadFrequencyRange / ErrBadWidth — bad Options.
//
// Complexity: O(N·M) time, O(M) extra memory.
func Field(z []float64, t float64, opts Options) ([]float64, error) {
	if err := validateAxis(z); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	freqs := FrequencyGrid(opts.NuMin, opts.NuCenter, opts.NFrequencies)
	envelope := GaussianEnvelope(len(freqs), opts.SpecWidth)

	field := make([]float64, len(z))
	for i, nu := range freqs {
		k := dispersion.WaveVector(nu, opts.NuCenter, opts.Coeffs)
		omegaT := twoPi * nu * t
		weight := envelope[i]
		for j, zj := range z {
			field[j] += weight * math.Sin(omegaT-k*zj)
		}
	}
	return field, nil
}

// Components computes the same snapshot as Field but keeps every
// per-frequency row, for decomposition plots and spectrum inspection.
//
// The returned Decomposition holds the frequency grid, the envelope, the
// (N, M) component matrix and the summed field.
//
// Complexity: O(N·M) time and memory — prefer Field unless the individual
// components are actually needed.
func Components(z []float64, t float64, opts Options) (*Decomposition, error) {
	if err := validateAxis(z); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	freqs := FrequencyGrid(opts.NuMin, opts.NuCenter, opts.NFrequencies)
	envelope := GaussianEnvelope(len(freqs), opts.SpecWidth)

	components := make([][]float64, len(freqs))
	field := make([]float64, len(z))
	for i, nu := range freqs {
		k := dispersion.WaveVector(nu, opts.NuCenter, opts.Coeffs)
		omegaT := twoPi * nu * t
		weight := envelope[i]
		row := make([]float64, len(z))
		for j, zj := range z {
			v := weight * math.Sin(omegaT-k*zj)
			row[j] = v
			field[j] += v
		}
		components[i] = row
	}

	return &Decomposition{
		Frequencies: freqs,
		Envelope:    envelope,
		Components:  components,
		Field:       field,
	}, nil
}
