package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FrequencyGrid returns n frequencies uniformly spaced from nuMin up to
// 2·nuCenter, both endpoints inclusive.  For n == 1 the grid collapses to
// just nuMin.  The result is strictly increasing whenever nuMin < 2·nuCenter.
//
// Complexity: O(n).
func FrequencyGrid(nuMin, nuCenter float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{nuMin}
	}
	return floats.Span(make([]float64, n), nuMin, 2*nuCenter)
}

// GaussianEnvelope returns an n-point symmetric Gaussian window with
// standard deviation std (measured in grid indices):
//
//	w[i] = exp(−½·((i − (n−1)/2) / std)²)
//
// The window peaks at the center and falls off symmetrically, matching the
// conventional window-function definition.  No further normalization is
// applied; callers scale amplitudes externally if needed.
//
// Complexity: O(n).
func GaussianEnvelope(n int, std float64) []float64 {
	if n < 1 {
		return nil
	}
	center := float64(n-1) / 2
	w := make([]float64, n)
	for i := range w {
		x := (float64(i) - center) / std
		w[i] = math.Exp(-0.5 * x * x)
	}
	return w
}

// timeGrid returns nSteps uniform samples from tStart to tEnd, inclusive.
// nSteps must be validated by the caller; nSteps == 1 yields just tStart.
func timeGrid(tStart, tEnd float64, nSteps int) []float64 {
	if nSteps == 1 {
		return []float64{tStart}
	}
	return floats.Span(make([]float64, nSteps), tStart, tEnd)
}

// validateAxis checks the shared read-only spatial axis: it must be
// non-empty and strictly increasing.
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

// validateOptions checks the spectral configuration invariants.
func validateOptions(opts Options) error {
	if opts.NFrequencies < 1 {
		return ErrNoFrequencies
	}
	if opts.NFrequencies > 1 && opts.NuMin >= 2*opts.NuCenter {
		return ErrBadFrequencyRange
	}
	if opts.SpecWidth <= 0 {
		return ErrBadWidth
	}
	return nil
}
