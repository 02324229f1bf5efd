package dispersion_test

import (
	"testing"

	"github.com/lightforge/pulsim/dispersion"
)

// benchmarkSeries is a helper that evaluates the wave vector over a grid of
// n frequencies per iteration.
func benchmarkSeries(b *testing.B, n int) {
	nus := make([]float64, n)
	for i := range nus {
		nus[i] = 0.001 + float64(i)*0.0005 // spread around the center
	}
	c := dispersion.Coefficients{K0: 1, K1: 3, K2: 2, K3: 6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dispersion.WaveVectorSeries(nus, 1.0, c)
	}
}

// BenchmarkWaveVectorSeries_1k evaluates a 1000-point frequency grid.
func BenchmarkWaveVectorSeries_1k(b *testing.B) { benchmarkSeries(b, 1000) }

// BenchmarkWaveVectorSeries_4k evaluates the default 4000-point grid.
func BenchmarkWaveVectorSeries_4k(b *testing.B) { benchmarkSeries(b, 4000) }
