// Package anim turns precomputed pulse time series into frame-by-frame
// animations: GIF files on disk, or in-memory GIFs for embedding.
//
// 🚀 How it works:
//
//	Every row of a (nSteps, M) series becomes one frame.  Frames are
//	rendered with gonum/plot at fixed axis limits (so the pulse visibly
//	moves), rasterized, palette-quantized and assembled into a GIF with the
//	requested frame rate.
//
// ✨ Key features:
//   - Animate: single-panel pulse propagation along z
//   - AnimateWithTime: multi-panel view with field-vs-time traces at one or
//     two fixed observation points
//   - AnimateResonator: cavity mode superposition over a time grid
//   - empty output path ⇒ the assembled *gif.GIF is returned instead of saved
//   - optional progress observer, notified once per rendered frame
//
// ⚙️ Usage:
//
//	pulses, _ := spectral.Pulses(z, 0, 100, 50, specOpts, nil)
//	_, err := anim.Animate(z, pulses, anim.DefaultOptions(), "pulse.gif")
//
// Format support is deliberately narrow: ".gif" or in-memory.  Anything
// else (".mp4", ".webm", ...) fails with ErrUnsupportedFormat — there is no
// dependable pure-Go video encoder, and batch GIF export covers the
// documentation and notebook use cases this library serves.
package anim
