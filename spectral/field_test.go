package spectral_test

import (
	"testing"

	"github.com/lightforge/pulsim/dispersion"
	"github.com/lightforge/pulsim/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// shortAxis returns a small strictly increasing spatial axis for tests.
func shortAxis(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 10)
}

// smallOptions returns a configuration cheap enough for unit tests.
func smallOptions() spectral.Options {
	opts := spectral.DefaultOptions()
	opts.NFrequencies = 100
	return opts
}

// TestField_OutputLength verifies the snapshot has the same length as the
// spatial axis for any valid configuration.
func TestField_OutputLength(t *testing.T) {
	z := shortAxis(37)
	field, err := spectral.Field(z, 0, smallOptions())
	require.NoError(t, err)
	assert.Len(t, field, len(z))
}

// TestField_AxisValidation covers the malformed-axis error paths.
func TestField_AxisValidation(t *testing.T) {
	opts := smallOptions()

	_, err := spectral.Field(nil, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrEmptyAxis)

	_, err = spectral.Field([]float64{0, 1, 1}, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrNonMonotonicAxis, "repeated position must fail")

	_, err = spectral.Field([]float64{0, 2, 1}, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrNonMonotonicAxis, "descending position must fail")
}

// TestField_OptionValidation covers the malformed-configuration error paths.
func TestField_OptionValidation(t *testing.T) {
	z := shortAxis(10)

	opts := smallOptions()
	opts.NFrequencies = 0
	_, err := spectral.Field(z, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrNoFrequencies)

	opts = smallOptions()
	opts.NuMin = 3.0 // above 2·NuCenter=2
	_, err = spectral.Field(z, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrBadFrequencyRange)

	opts = smallOptions()
	opts.SpecWidth = 0
	_, err = spectral.Field(z, 0, opts)
	assert.ErrorIs(t, err, spectral.ErrBadWidth)
}

// TestField_TimeDependence verifies snapshots at different times differ.
func TestField_TimeDependence(t *testing.T) {
	z := shortAxis(50)
	opts := smallOptions()

	f0, err := spectral.Field(z, 0, opts)
	require.NoError(t, err)
	f1, err := spectral.Field(z, 10, opts)
	require.NoError(t, err)

	assert.NotEqual(t, f0, f1, "field must evolve in time")
}

// TestField_DispersionDependence verifies that changing the dispersion
// coefficients changes the output at t>0.
func TestField_DispersionDependence(t *testing.T) {
	z := shortAxis(50)

	opts1 := smallOptions()
	opts1.Coeffs = dispersion.Coefficients{K0: 1, K1: 5}
	opts2 := smallOptions()
	opts2.Coeffs = dispersion.Coefficients{K0: 1, K1: 10}

	f1, err := spectral.Field(z, 5, opts1)
	require.NoError(t, err)
	f2, err := spectral.Field(z, 5, opts2)
	require.NoError(t, err)

	assert.NotEqual(t, f1, f2, "dispersion coefficients must affect the field")
}

// TestField_SingleFrequencyClosedForm pins the kernel against the direct
// closed form for N=1: E(z) = w₀·sin(2πν·t − k·z).
func TestField_SingleFrequencyClosedForm(t *testing.T) {
	z := shortAxis(20)
	opts := spectral.Options{
		NuCenter:     1.0,
		NuMin:        0.5,
		NFrequencies: 1,
		SpecWidth:    10,
		Coeffs:       dispersion.Coefficients{K0: 2},
	}

	field, err := spectral.Field(z, 1.5, opts)
	require.NoError(t, err)

	env := spectral.GaussianEnvelope(1, opts.SpecWidth)
	want := make([]float64, len(z))
	for j, zj := range z {
		want[j] = env[0] * sinWave(opts.NuMin, 1.5, 2, zj)
	}
	for j := range want {
		assert.InDelta(t, want[j], field[j], 1e-12)
	}
}

// TestComponents_ShapeAndSum verifies the decomposition exposes an (N, M)
// matrix whose column sums reproduce the plain Field snapshot.
func TestComponents_ShapeAndSum(t *testing.T) {
	z := shortAxis(25)
	opts := smallOptions()

	dec, err := spectral.Components(z, 2, opts)
	require.NoError(t, err)

	require.Len(t, dec.Components, opts.NFrequencies)
	require.Len(t, dec.Frequencies, opts.NFrequencies)
	require.Len(t, dec.Envelope, opts.NFrequencies)
	require.Len(t, dec.Field, len(z))
	for _, row := range dec.Components {
		require.Len(t, row, len(z))
	}

	direct, err := spectral.Field(z, 2, opts)
	require.NoError(t, err)
	for j := range direct {
		sum := 0.0
		for i := range dec.Components {
			sum += dec.Components[i][j]
		}
		assert.InDelta(t, direct[j], sum, 1e-9, "component sum must match Field")
		assert.InDelta(t, direct[j], dec.Field[j], 1e-9)
	}
}
