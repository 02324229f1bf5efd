package resonator

import (
	"math"
	"math/rand"

	"github.com/lightforge/pulsim/progress"
)

// Modes — Resonator Mode Engine
//
// Description:
//
//	Computes the standing-wave eigenmodes of an idealized cavity spanning
//	the given axis, at one instant t.
//
// Algorithm Outline:
//  1. Cavity length L = z[last] − z[0]; fundamental spacing Δν = C/(2L).
//  2. Mode frequencies ν_i = Δν·i for i = 1..NModes.
//  3. Phases: zero, or uniform [0, 200) per mode when RandomPhases.
//  4. Mode field: E_i(z) = sin(2·ω_i·t − φ_i)·sin(k_i·z) with ω_i = 2πν_i,
//     k_i = ω_i/C.  Unit spectral weight per mode.
//
// Reproducibility: with RandomPhases=false two calls with identical inputs
// are bit-identical; with RandomPhases=true reproducibility is the caller's
// job via Options.Rand.
//
// Errors:
//   - ErrEmptyAxis / ErrNonMonotonicAxis — malformed cavity axis (a
//     non-increasing axis also has no positive length L).
//   - ErrBadModeCount — NModes < 1.
//
// Complexity: O(NModes·M) time and memory.
func Modes(t float64, z []float64, opts Options) ([][]float64, error) {
	if err := validateAxis(z); err != nil {
		return nil, err
	}
	if opts.NModes < 1 {
		return nil, ErrBadModeCount
	}

	length := z[len(z)-1] - z[0]
	if length <= 0 {
		return nil, ErrZeroLength
	}
	deltaNu := C / (2 * length)
	phases := modePhases(opts)

	modes := make([][]float64, opts.NModes)
	for i := range modes {
		nu := deltaNu * float64(i+1)
		omega := 2 * math.Pi * nu
		k := omega / C
		temporal := math.Sin(2*omega*t - phases[i])

		row := make([]float64, len(z))
		for j, zj := range z {
			row[j] = temporal * math.Sin(k*zj)
		}
		modes[i] = row
	}
	return modes, nil
}

// Sum collapses a mode set into a single snapshot by elementwise addition.
// Returns nil for an empty set.
func Sum(modes [][]float64) []float64 {
	if len(modes) == 0 {
		return nil
	}
	total := make([]float64, len(modes[0]))
	for _, row := range modes {
		for j, v := range row {
			total[j] += v
		}
	}
	return total
}

// Series evaluates the summed mode field at every time point, producing a
// (len(times), M) series ready for animation.  The observer, when non-nil,
// is notified once per completed time point.
//
// Complexity: O(len(times)·NModes·M).
func Series(z, times []float64, opts Options, obs progress.Observer) ([][]float64, error) {
	series := make([][]float64, len(times))
	for i, t := range times {
		modes, err := Modes(t, z, opts)
		if err != nil {
			return nil, err
		}
		series[i] = Sum(modes)
		if obs != nil {
			obs.Step()
		}
	}
	return series, nil
}

// modePhases returns one phase per mode: zeros by default, or independent
// uniform draws from [0, phaseSpread) when RandomPhases is set.
func modePhases(opts Options) []float64 {
	phases := make([]float64, opts.NModes)
	if !opts.RandomPhases {
		return phases
	}
	src := opts.Rand
	for i := range phases {
		if src != nil {
			phases[i] = src.Float64() * phaseSpread
		} else {
			phases[i] = rand.Float64() * phaseSpread
		}
	}
	return phases
}

// validateAxis checks the cavity axis: non-empty and strictly increasing,
// which also guarantees a positive cavity length.
func validateAxis(z []float64) error {
	if len(z) == 0 {
		return ErrEmptyAxis
	}
	for i := 1; i < len(z); i++ {
		if z[i] <= z[i-1] {
			return ErrNonMonotonicAxis
		}
	}
	return nil
}
