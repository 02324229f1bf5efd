package spectral_test

import (
	"math"
	"testing"

	"github.com/lightforge/pulsim/spectral"
	"github.com/stretchr/testify/assert"
)

// TestFrequencyGrid_EndpointsAndOrder verifies endpoints, length and the
// strictly-increasing invariant.
func TestFrequencyGrid_EndpointsAndOrder(t *testing.T) {
	grid := spectral.FrequencyGrid(0.001, 1.0, 100)

	assert.Len(t, grid, 100)
	assert.Equal(t, 0.001, grid[0], "grid must start at NuMin")
	assert.InDelta(t, 2.0, grid[99], 1e-12, "grid must end at 2·NuCenter")
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1], "grid must be strictly increasing")
	}
}

// TestFrequencyGrid_Degenerate covers the n=1 and n<1 edges.
func TestFrequencyGrid_Degenerate(t *testing.T) {
	assert.Equal(t, []float64{0.25}, spectral.FrequencyGrid(0.25, 1.0, 1))
	assert.Nil(t, spectral.FrequencyGrid(0.25, 1.0, 0))
}

// TestGaussianEnvelope_ClosedForm pins the window against its definition
// w[i] = exp(−½((i−(n−1)/2)/σ)²).
func TestGaussianEnvelope_ClosedForm(t *testing.T) {
	const n, std = 7, 2.0
	w := spectral.GaussianEnvelope(n, std)

	assert.Len(t, w, n)
	for i := 0; i < n; i++ {
		x := (float64(i) - 3) / std
		assert.InDelta(t, math.Exp(-0.5*x*x), w[i], 1e-12)
	}
	assert.Equal(t, 1.0, w[3], "odd-length window peaks at exactly 1 in the middle")
}

// TestGaussianEnvelope_Symmetry verifies the conventional window semantics:
// peak at the center, symmetric falloff, even for even lengths.
func TestGaussianEnvelope_Symmetry(t *testing.T) {
	w := spectral.GaussianEnvelope(10, 3.0)

	for i := 0; i < len(w); i++ {
		assert.InDelta(t, w[len(w)-1-i], w[i], 1e-12, "window must be symmetric")
	}
	for i := 1; i <= len(w)/2; i++ {
		assert.GreaterOrEqual(t, w[i], w[i-1], "window must rise toward the center")
	}
}
