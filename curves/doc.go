// Package curves evaluates full media response curves: adstock followed by
// Hill saturation, across channels and across hyperparameter grids.
//
// The transform engines in the adstock and saturation packages operate on
// one series with one parameter set. Model fitting and diagnostics need
// the combinations: every channel under every candidate parameterization,
// and kernel or saturation sweeps over synthetic inputs for curve
// inspection. This package produces that data; rendering it is the
// caller's concern.
//
// # Grid Evaluation
//
// EvaluateGrid fans the channel x spec combinations out over a bounded
// number of goroutines. The transforms are pure functions, so evaluations
// run without coordination and the result order is deterministic
// regardless of scheduling: channel-major, spec-minor.
//
// # Channel Identity
//
// Channels are identified by the 64-bit xxHash64 of their name, computed
// by ChannelID. Hashing is stable across runs and platforms, so responses
// can be keyed and compared without carrying name strings through
// downstream pipelines.
package curves
