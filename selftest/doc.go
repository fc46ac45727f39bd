// Package selftest runs the worked 3-D Gaussian example end to end: build a
// known covariance Σ, define f(x) = exp(−½ (x−μ)ᵀ Σ⁻¹ (x−μ)), estimate the
// covariance at the mode μ and compare it with Σ entry by entry.
//
// The Report carries the three matrices ("true cov", "meas cov",
// "frac diff") and can be printed as text, encoded as JSON, YAML or TOML,
// or saved as an XLSX workbook. It also keeps the Hessian and the residual
// max |H·cov + I| so a poor inversion shows up next to the frac diff.
package selftest
