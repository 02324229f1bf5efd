package anim

import (
	"image"
	"image/color"
	"image/gif"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AnimateWithTime renders a pulse series as a stacked multi-panel
// animation: the top panel shows the pulse along z, the panels below show
// the field history at one or two fixed observation points.
//
// fixedZ1 and fixedZ2 are indices into z; pass fixedZ2 < 0 for the
// two-panel, single-observation layout.  The series is normalized by its
// global maximum so all panels share one vertical scale.
//
// Output dispatch and errors follow Animate, plus ErrBadIndex for
// observation indices outside the axis.
func AnimateWithTime(z []float64, pulses [][]float64, fixedZ1, fixedZ2 int, opts Options, path string) (*gif.GIF, error) {
	if err := validateSeries(z, pulses); err != nil {
		return nil, err
	}
	if fixedZ1 < 0 || fixedZ1 >= len(z) {
		return nil, ErrBadIndex
	}
	singlePoint := fixedZ2 < 0
	if !singlePoint && fixedZ2 >= len(z) {
		return nil, ErrBadIndex
	}
	if err := checkFormat(path); err != nil {
		return nil, err
	}

	norm := normalize(pulses)
	ymin, ymax := seriesRange(norm)
	ymin, ymax = 1.2*ymin, 1.2*ymax

	panels := 3
	if singlePoint {
		panels = 2
	}

	g := &gif.GIF{}
	for frame := range norm {
		plots := make([]*plot.Plot, 0, panels)

		spatial, err := spatialPanel(z, norm[frame], fixedZ1, fixedZ2, ymin, ymax, opts)
		if err != nil {
			return nil, err
		}
		plots = append(plots, spatial)

		trace1, err := tracePanel(norm, frame, fixedZ1, ymin, ymax, forestGreen)
		if err != nil {
			return nil, err
		}
		plots = append(plots, trace1)

		if !singlePoint {
			trace2, terr := tracePanel(norm, frame, fixedZ2, ymin, ymax, darkRed)
			if terr != nil {
				return nil, terr
			}
			plots = append(plots, trace2)
		}

		g.Image = append(g.Image, quantize(stackPanels(plots, opts)))
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

// spatialPanel draws the propagating pulse with vertical markers at the
// observation points.
func spatialPanel(z, row []float64, z1, z2 int, ymin, ymax float64, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "pulse propagation along the z-axis"
	p.X.Min, p.X.Max = z[0], z[len(z)-1]
	p.Y.Min, p.Y.Max = ymin, ymax
	p.X.Label.Text = "position z [a.u.]"

	line, err := plotter.NewLine(xyPairs(z, row))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = opts.lineColor()
	p.Add(line)

	if err = addMarker(p, z[z1], ymin, ymax, forestGreen); err != nil {
		return nil, err
	}
	if z2 >= 0 {
		if err = addMarker(p, z[z2], ymin, ymax, darkRed); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// tracePanel draws the field history at one observation point up to the
// current frame.
func tracePanel(norm [][]float64, frame, zIdx int, ymin, ymax float64, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "electric field at a fixed position"
	p.X.Min, p.X.Max = 0, float64(len(norm))
	p.Y.Min, p.Y.Max = ymin, ymax
	p.X.Label.Text = "time step"

	pts := make(plotter.XYs, frame)
	for i := 0; i < frame; i++ {
		pts[i].X = float64(i)
		pts[i].Y = norm[i][zIdx]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	p.Add(line)
	return p, nil
}

// addMarker draws a thick vertical line at position x.
func addMarker(p *plot.Plot, x, ymin, ymax float64, c color.Color) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(3)
	p.Add(line)
	return nil
}

// stackPanels draws the plots top-to-bottom onto one canvas.
func stackPanels(plots []*plot.Plot, opts Options) image.Image {
	c := newCanvas(opts)
	dc := draw.New(c)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1}
	for i, p := range plots {
		p.Draw(tiles.At(dc, 0, i))
	}
	return c.Image()
}

// normalize scales the whole series by its global maximum so the panels
// share one dimensionless vertical scale.  A non-positive series is
// returned unchanged.
func normalize(pulses [][]float64) [][]float64 {
	max := 0.0
	for _, row := range pulses {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	if max == 0 {
		return pulses
	}
	norm := make([][]float64, len(pulses))
	for i, row := range pulses {
		norm[i] = make([]float64, len(row))
		for j, v := range row {
			norm[i][j] = v / max
		}
	}
	return norm
}
