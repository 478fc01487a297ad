// Package adstock implements the time-decay transforms applied to media
// spend series in marketing-mix models.
//
// Advertising effect carries over past the period the spend occurred in.
// The transforms here spread each period's input across the following
// periods according to a decay kernel, so downstream regression sees the
// carried-over effect instead of the raw spend.
//
// # Engines
//
// Two engines cover the usual modeling needs:
//
//   - Geometric: a single-parameter exponential decay. Each period retains
//     a fixed fraction theta of the previous period's accumulated effect.
//     Cheap, interpretable, and sufficient for most channels.
//   - Weibull: a two-parameter (shape, scale) decay. The CDF kernel uses
//     the Weibull survival function and decays from full strength at the
//     spend period, like geometric but with a flexible curve. The PDF
//     kernel uses the normalized Weibull density and can peak periods
//     after the spend, modeling delayed (lagged) effects.
//
// The scale parameter is a quantile fraction in [0, 1] rather than an
// absolute period count: it is translated onto the series' own time axis
// before the kernel is built, so the same scale value means the same
// relative position regardless of series length.
//
// # Choosing an Engine
//
// Use Geometric when a channel's effect is strongest immediately and a
// single decay rate is enough. Use the Weibull CDF kernel when the decay
// curve needs more flexibility but still starts at full strength. Use the
// Weibull PDF kernel when the effect builds up before it decays, e.g. TV
// or sponsorship channels with delayed response.
//
// Transform dispatches to the engine named in a Params value, which is the
// convenient entry point when hyperparameters arrive as data rather than
// as code.
//
// All engines are pure functions: no shared state, safe for concurrent use
// from any number of goroutines.
package adstock
