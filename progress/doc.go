// Package progress defines the optional per-step observer used by pulsim's
// long-running batch builders.
//
// 🚀 What is it for?
//
//	Building a pulse time series or a resonator animation can take thousands
//	of O(N·M) synthesizer calls.  An Observer is notified once per completed
//	step so a caller can surface progress without the numeric code knowing
//	anything about terminals or UIs.
//
// ✨ Guarantees:
//   - purely observational: an Observer never affects numeric results
//   - nil-safe: every pulsim builder accepts a nil Observer and skips it
//   - pluggable: bring your own sink, or use the bundled terminal bar
//
// ⚙️ Usage:
//
//	bar := progress.NewBar(nSteps)
//	pulses, err := spectral.Pulses(z, 0, 100, nSteps, opts, bar)
package progress
