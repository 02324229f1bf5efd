package anim

import (
	"image/gif"

	"github.com/lightforge/pulsim/resonator"
)

// AnimateResonator animates the superposition of cavity eigenmodes over the
// given time grid: one frame per time point, each showing the summed mode
// field across the cavity.
//
// The observer in opts, when set, is notified twice per time point — once
// while computing the snapshot and once while rendering its frame.
//
// Output dispatch and errors follow Animate, plus everything
// resonator.Modes can return.  The line defaults to forest green unless
// opts.Color overrides it.
func AnimateResonator(z, times []float64, ropts resonator.Options, opts Options, path string) (*gif.GIF, error) {
	series, err := resonator.Series(z, times, ropts, opts.Progress)
	if err != nil {
		return nil, err
	}
	if opts.Color == nil {
		opts.Color = forestGreen
	}
	return Animate(z, series, opts, path)
}
