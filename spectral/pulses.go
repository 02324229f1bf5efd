package spectral

import (
	"github.com/lightforge/pulsim/progress"
)

// Pulses — Pulse Time-Series Builder
//
// Description:
//
//	Builds a uniform time grid of nSteps points from tStart to tEnd
//	(inclusive) and synthesizes one field snapshot per time point.  Row i of
//	the result corresponds to time grid point i, so the series preserves
//	time ordering and row 0 equals a direct Field call at tStart.
//
// The observer, when non-nil, is notified once per completed step.  It is
// purely observational and never changes numeric results.
//
// This is a batch precompute step: for large nSteps·N·M expect it to run
// long.  There is no streaming mode and no mid-run cancellation; a failed
// step aborts the whole batch with no partial results.
//
// Errors:
//   - ErrBadStepCount — nSteps < 1.
//   - everything Field can return.
//
// Complexity: O(nSteps·N·M) time, O(nSteps·M) memory.
func Pulses(z []float64, tStart, tEnd float64, nSteps int, opts Options, obs progress.Observer) ([][]float64, error) {
	if nSteps < 1 {
		return nil, ErrBadStepCount
	}

	times := timeGrid(tStart, tEnd, nSteps)
	pulses := make([][]float64, nSteps)
	for i, t := range times {
		row, err := Field(z, t, opts)
		if err != nil {
			return nil, err
		}
		pulses[i] = row
		if obs != nil {
			obs.Step()
		}
	}
	return pulses, nil
}
