// Package saturation implements the diminishing-returns transforms applied
// to adstocked media series in marketing-mix models.
//
// Response to media spend is not linear: the first unit of exposure buys
// more effect than the thousandth. A saturation transform maps raw (or
// adstocked) input onto a bounded response curve so the model can learn
// where additional spend stops paying off.
//
// # Curves
//
//   - Hill: a two-parameter sigmoid, y = v^alpha / (v^alpha + i^alpha).
//     alpha controls whether the curve is S-shaped (alpha > 1) or
//     C-shaped (alpha <= 1); the inflexion i is where the curve crosses
//     half of its maximum. Callers give the inflexion as a quantile
//     fraction gamma of the input range, which keeps hyperparameters
//     comparable across channels with very different spend levels.
//   - Michaelis-Menten: the classic one-bend curve y = vmax*x/(km + x),
//     with an exact reverse mapping from response back to spend. Used
//     when responses must be converted to equivalent spend, e.g. for
//     budget reallocation.
//
// Hill output lives in [0, 1) for non-negative input, so it composes
// directly with regression coefficients that carry the scale.
//
// All functions are pure and safe for concurrent use.
package saturation
