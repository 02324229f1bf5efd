package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lightforge/pulsim/spectral"
)

// Component sub-range for decomposition plots: every spacing-th frequency
// between N/5 and 4N/5, where the envelope still carries visible weight.
const componentSpacing = 10

// Pulses draws one synthesized snapshot per entry of times, overlaid on a
// single figure.  The vertical range follows the first snapshot (±10%), so
// later, dispersion-stretched pulses stay in frame at the original scale.
//
// Errors: everything spectral.Field can return, plus plotter failures.
func Pulses(z, times []float64, specOpts spectral.Options, opts Options) (*plot.Plot, error) {
	if len(z) == 0 {
		return nil, spectral.ErrEmptyAxis
	}

	p := plot.New()
	p.X.Label.Text = "position z [a.u.]"
	p.Y.Label.Text = "electric field E [a.u.]"

	for i, t := range times {
		field, err := spectral.Field(z, t, specOpts)
		if err != nil {
			return nil, err
		}

		line, err := plotter.NewLine(xyPairs(z, field))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = opts.colorAt(i)
		p.Add(line)

		if i == 0 {
			p.Y.Min, p.Y.Max = 1.1*floats.Min(field), 1.1*floats.Max(field)
		}
	}

	p.X.Min, p.X.Max = z[0], z[len(z)-1]
	if opts.NoAxes {
		p.HideAxes()
	}
	return p, nil
}

// SpectralComponents draws the per-frequency decomposition of one snapshot:
// a sub-range of individual components, the resulting summed pulse, and the
// Gaussian envelope over the frequency grid.  When dir is non-empty the
// three figures are also saved there as PNGs.
//
// Returned in order: components, pulse, envelope.
func SpectralComponents(z []float64, t float64, specOpts spectral.Options, opts Options, dir string) (*plot.Plot, *plot.Plot, *plot.Plot, error) {
	dec, err := spectral.Components(z, t, specOpts)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(dec.Components)
	compPlot := plot.New()
	compPlot.X.Min, compPlot.X.Max = z[0], z[len(z)-1]
	compPlot.HideAxes()
	for i := n / 5; i < 4*n/5; i += componentSpacing {
		line, lerr := plotter.NewLine(xyPairs(z, dec.Components[i]))
		if lerr != nil {
			return nil, nil, nil, lerr
		}
		compPlot.Add(line)
	}

	pulsePlot := plot.New()
	pulsePlot.X.Min, pulsePlot.X.Max = z[0], z[len(z)-1]
	pulsePlot.HideAxes()
	line, err := plotter.NewLine(xyPairs(z, dec.Field))
	if err != nil {
		return nil, nil, nil, err
	}
	line.LineStyle.Color = steelBlue
	pulsePlot.Add(line)

	specPlot := plot.New()
	specPlot.X.Label.Text = "frequency ν"
	specPlot.Y.Label.Text = "spectral amplitude S(ν)"
	line, err = plotter.NewLine(xyPairs(dec.Frequencies, dec.Envelope))
	if err != nil {
		return nil, nil, nil, err
	}
	line.LineStyle.Color = steelBlue
	specPlot.Add(line)

	if dir != "" {
		if err = saveAll(dir, opts, map[string]*plot.Plot{
			"spectral_components.png": compPlot,
			"resulting_pulse.png":     pulsePlot,
			"spectrum.png":            specPlot,
		}); err != nil {
			return nil, nil, nil, err
		}
	}
	return compPlot, pulsePlot, specPlot, nil
}

// Save writes a figure using the geometry from opts.  The format follows
// the file extension; unknown extensions fail with gonum/plot's
// unsupported-format error.
func Save(p *plot.Plot, path string, opts Options) error {
	return p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path)
}

// saveAll writes every named figure into dir, creating it if needed.
func saveAll(dir string, opts Options, figures map[string]*plot.Plot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("plotting: create %s: %w", dir, err)
	}
	for name, p := range figures {
		if err := Save(p, filepath.Join(dir, name), opts); err != nil {
			return err
		}
	}
	return nil
}

// xyPairs zips two equal-length slices into plotter coordinates.
func xyPairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
