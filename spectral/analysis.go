package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the discrete Fourier transform of
// a real-valued field snapshot, up to and including the Nyquist bin
// (length len(field)/2 + 1).  Useful to inspect which spatial frequencies a
// synthesized snapshot actually contains.
//
// Returns nil for an empty snapshot.
//
// Complexity: O(M·log M).
func PowerSpectrum(field []float64) []float64 {
	if len(field) == 0 {
		return nil
	}
	spec := fft.FFTReal(field)
	half := len(spec)/2 + 1
	mags := make([]float64, half)
	for i := 0; i < half; i++ {
		mags[i] = cmplx.Abs(spec[i])
	}
	return mags
}
