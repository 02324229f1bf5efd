package plotting_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lightforge/pulsim/plotting"
	"github.com/lightforge/pulsim/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// testAxis returns a small spatial axis for figure tests.
func testAxis() []float64 {
	return floats.Span(make([]float64, 80), 0, 100)
}

// testSpecOptions returns a cheap synthesis configuration.
func testSpecOptions() spectral.Options {
	opts := spectral.DefaultOptions()
	opts.NFrequencies = 200
	return opts
}

// TestPulses_BuildAndSave renders a three-snapshot overlay and saves it as
// a PNG.
func TestPulses_BuildAndSave(t *testing.T) {
	opts := plotting.DefaultOptions()
	opts.Colors = []color.Color{
		color.RGBA{R: 70, G: 130, B: 180, A: 255},
		color.RGBA{R: 255, G: 165, B: 0, A: 255},
		color.RGBA{R: 34, G: 139, B: 34, A: 255},
	}

	p, err := plotting.Pulses(testAxis(), []float64{0, 5, 10}, testSpecOptions(), opts)
	require.NoError(t, err)
	require.NotNil(t, p)

	path := filepath.Join(t.TempDir(), "pulses.png")
	require.NoError(t, plotting.Save(p, path, opts))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "saved figure must not be empty")
}

// TestPulses_PropagatesSynthesisErrors verifies a malformed axis surfaces
// the spectral sentinel instead of a broken figure.
func TestPulses_PropagatesSynthesisErrors(t *testing.T) {
	_, err := plotting.Pulses(nil, []float64{0}, testSpecOptions(), plotting.DefaultOptions())
	assert.ErrorIs(t, err, spectral.ErrEmptyAxis)
}

// TestSave_UnsupportedFormat verifies an unknown extension fails.
func TestSave_UnsupportedFormat(t *testing.T) {
	p, err := plotting.Pulses(testAxis(), []float64{0}, testSpecOptions(), plotting.DefaultOptions())
	require.NoError(t, err)

	err = plotting.Save(p, filepath.Join(t.TempDir(), "pulses.webp"), plotting.DefaultOptions())
	assert.Error(t, err)
}

// TestSpectralComponents_SavesThreeFigures verifies the decomposition plot
// trio is built and written into the target directory.
func TestSpectralComponents_SavesThreeFigures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "decomposition")

	comp, pulse, spec, err := plotting.SpectralComponents(
		testAxis(), 0, testSpecOptions(), plotting.DefaultOptions(), dir)
	require.NoError(t, err)
	require.NotNil(t, comp)
	require.NotNil(t, pulse)
	require.NotNil(t, spec)

	for _, name := range []string{"spectral_components.png", "resulting_pulse.png", "spectrum.png"} {
		info, serr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, serr, name)
		assert.Positive(t, info.Size(), name)
	}
}

// TestSpectralComponents_NoDirSkipsSaving verifies dir="" builds figures
// without touching the filesystem.
func TestSpectralComponents_NoDirSkipsSaving(t *testing.T) {
	comp, pulse, spec, err := plotting.SpectralComponents(
		testAxis(), 0, testSpecOptions(), plotting.DefaultOptions(), "")
	require.NoError(t, err)
	assert.NotNil(t, comp)
	assert.NotNil(t, pulse)
	assert.NotNil(t, spec)
}
