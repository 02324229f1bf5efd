// Package plotting defines figure options for the static pulse renderers
// of github.com/lightforge/pulsim.
package plotting

import "image/color"

// steelBlue is the default line color, matching the conventional figure style.
var steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// Options configures figure geometry and styling.
//
// Fields:
//   - Width, Height — figure size in inches.
//   - DPI           — raster resolution for saved figures.
//   - NoAxes        — hide axes, ticks and labels (poster-style figures).
//   - Colors        — per-snapshot line colors; cycled when shorter than the
//     number of snapshots.  Empty means steel blue for everything.
type Options struct {
	Width  float64
	Height float64
	DPI    int
	NoAxes bool
	Colors []color.Color
}

// DefaultOptions returns the conventional 11×4 inch, 100 DPI figure setup.
func DefaultOptions() Options {
	return Options{
		Width:  11,
		Height: 4,
		DPI:    100,
	}
}

// colorAt returns the line color for snapshot i, cycling Colors.
func (o Options) colorAt(i int) color.Color {
	if len(o.Colors) == 0 {
		return steelBlue
	}
	return o.Colors[i%len(o.Colors)]
}
