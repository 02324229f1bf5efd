package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	idraw "image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Animate renders a pulse time series into a GIF: one frame per series row,
// drawn at fixed axis limits (±20% of the global field extrema) so the
// pulse visibly propagates.
//
// Output dispatch:
//   - path == ""      → the assembled *gif.GIF is returned, nothing is written.
//   - path == "*.gif" → the GIF is written to path; the returned GIF is nil.
//   - anything else   → ErrUnsupportedFormat.
//
// Errors: ErrEmptySeries, ErrShapeMismatch, ErrUnsupportedFormat, plus
// renderer and file-system failures.
//
// Complexity: O(nFrames·M) plus rasterization cost per frame.
func Animate(z []float64, pulses [][]float64, opts Options, path string) (*gif.GIF, error) {
	if err := validateSeries(z, pulses); err != nil {
		return nil, err
	}
	if err := checkFormat(path); err != nil {
		return nil, err
	}

	ymin, ymax := seriesRange(pulses)
	g := &gif.GIF{}
	for _, row := range pulses {
		frame, err := renderFrame(z, row, 1.2*ymin, 1.2*ymax, opts)
		if err != nil {
			return nil, err
		}
		g.Image = append(g.Image, quantize(frame))
		g.Delay = append(g.Delay, opts.frameDelay())
		if opts.Progress != nil {
			opts.Progress.Step()
		}
	}

	if path == "" {
		return g, nil
	}
	return nil, writeGIF(g, path)
}

// renderFrame draws one snapshot at fixed limits and rasterizes it.
func renderFrame(z, row []float64, ymin, ymax float64, opts Options) (image.Image, error) {
	p := plot.New()
	p.X.Min, p.X.Max = z[0], z[len(z)-1]
	p.Y.Min, p.Y.Max = ymin, ymax
	p.X.Label.Text = "position z [a.u.]"
	p.Y.Label.Text = "electric field E [a.u.]"

	line, err := plotter.NewLine(xyPairs(z, row))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = opts.lineColor()
	p.Add(line)

	return rasterize(p, opts), nil
}

// rasterize draws a single plot onto a fresh raster canvas.
func rasterize(p *plot.Plot, opts Options) image.Image {
	c := newCanvas(opts)
	p.Draw(draw.New(c))
	return c.Image()
}

// newCanvas allocates a raster canvas with the configured geometry.
func newCanvas(opts Options) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
}

// quantize converts a rendered frame to the GIF palette.
func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	pm := image.NewPaletted(b, palette.Plan9)
	idraw.Draw(pm, b, img, b.Min, idraw.Src)
	return pm
}

// checkFormat validates the output path extension up front, before any
// frame is rendered.
func checkFormat(path string) error {
	if path == "" {
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".gif" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return nil
}

// writeGIF encodes the assembled animation to disk.
func writeGIF(g *gif.GIF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("anim: create %s: %w", path, err)
	}
	if err = gif.EncodeAll(f, g); err != nil {
		f.Close()
		return fmt.Errorf("anim: encode %s: %w", path, err)
	}
	return f.Close()
}

// validateSeries checks the axis/series shape contract.
func validateSeries(z []float64, pulses [][]float64) error {
	if len(z) == 0 || len(pulses) == 0 {
		return ErrEmptySeries
	}
	for _, row := range pulses {
		if len(row) != len(z) {
			return ErrShapeMismatch
		}
	}
	return nil
}

// seriesRange returns the global extrema across all rows.
func seriesRange(pulses [][]float64) (float64, float64) {
	lo, hi := pulses[0][0], pulses[0][0]
	for _, row := range pulses {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
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
