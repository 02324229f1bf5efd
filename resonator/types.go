// Package resonator defines options and sentinel errors for the cavity
// eigenmode engine of github.com/lightforge/pulsim.
package resonator

import (
	"errors"
	"math/rand"
)

// C is the normalized speed of light used for mode spacing and wave
// numbers.  An explicit constant, not process-wide mutable state.
const C = 1.0

// phaseSpread is the upper bound of the uniform random-phase draw.
// Inherited convention: the range [0, 200) is not radians-normalized.
// Preserved as documented behavior; see the package comment.
const phaseSpread = 200.0

// Sentinel errors for resonator operations.
var (
	// ErrEmptyAxis indicates the cavity axis has no samples.
	ErrEmptyAxis = errors.New("resonator: spatial axis must be non-empty")
	// ErrNonMonotonicAxis indicates the cavity axis is not strictly increasing.
	ErrNonMonotonicAxis = errors.New("resonator: spatial axis must be strictly increasing")
	// ErrZeroLength indicates a single-point axis: the cavity has no extent,
	// so no fundamental frequency exists.
	ErrZeroLength = errors.New("resonator: cavity length must be positive")
	// ErrBadModeCount indicates a non-positive number of modes.
	ErrBadModeCount = errors.New("resonator: NModes must be at least 1")
)

// Options configures the mode engine.
//
// Fields:
//   - NModes       — number of harmonic modes (1..NModes of the fundamental).
//   - RandomPhases — draw each mode's phase uniformly from [0, 200) instead
//     of using zero phases.
//   - Rand         — randomness source for RandomPhases.  Nil falls back to
//     the process-global source; inject rand.New(rand.NewSource(seed)) for
//     reproducible draws, mirroring the deterministic-by-seed policy used
//     throughout pulsim.
type Options struct {
	NModes       int
	RandomPhases bool
	Rand         *rand.Rand
}

// DefaultOptions returns the conventional configuration: three modes,
// zero phases.  A fresh value per call, nothing shared.
func DefaultOptions() Options {
	return Options{NModes: 3}
}
