// Package anim defines options and sentinel errors for the animation
// exporters of github.com/lightforge/pulsim.
package anim

import (
	"errors"
	"image/color"

	"github.com/lightforge/pulsim/progress"
)

// Sentinel errors for animation export.
var (
	// ErrEmptySeries indicates a series with no frames or an empty axis.
	ErrEmptySeries = errors.New("anim: pulse series must have at least one frame over a non-empty axis")
	// ErrShapeMismatch indicates a series row whose length differs from the axis.
	ErrShapeMismatch = errors.New("anim: every series row must match the spatial axis length")
	// ErrBadIndex indicates an observation-point index outside the axis.
	ErrBadIndex = errors.New("anim: observation index out of range")
	// ErrUnsupportedFormat indicates an output extension other than .gif.
	ErrUnsupportedFormat = errors.New("anim: unsupported output format")
)

// tabBlue is the default line color for propagation panels.
var tabBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// forestGreen marks the first observation point and resonator animations.
var forestGreen = color.RGBA{R: 34, G: 139, B: 34, A: 255}

// darkRed marks the second observation point.
var darkRed = color.RGBA{R: 139, G: 0, B: 0, A: 255}

// Options configures animation rendering.
//
// Fields:
//   - FPS           — playback frame rate.
//   - Width, Height — figure size in inches.
//   - DPI           — raster resolution; lower values shrink the file.
//   - Color         — line color; nil means the conventional blue.
//   - Progress      — optional observer, notified once per rendered frame
//     (and, for AnimateResonator, once per computed snapshot).
type Options struct {
	FPS      int
	Width    float64
	Height   float64
	DPI      int
	Color    color.Color
	Progress progress.Observer
}

// DefaultOptions returns the conventional 30 fps, 11×4 inch, 72 DPI setup.
func DefaultOptions() Options {
	return Options{
		FPS:    30,
		Width:  11,
		Height: 4,
		DPI:    72,
	}
}

// lineColor resolves the configured line color.
func (o Options) lineColor() color.Color {
	if o.Color == nil {
		return tabBlue
	}
	return o.Color
}

// frameDelay returns the GIF inter-frame delay in hundredths of a second.
func (o Options) frameDelay() int {
	fps := o.FPS
	if fps < 1 {
		fps = 30
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return delay
}
