// Package hessian estimates the Hessian matrix of a scalar multivariate
// function by central finite differences.
//
// 🚀 What is it for?
//
//	Given f: ℝᴺ → ℝ, a point x and step sizes h, Estimate returns the N×N
//	matrix of second partials ∂²f/∂xᵢ∂xⱼ at x. Typical callers evaluate a
//	log-probability at its mode and feed the result to the covariance
//	package (Laplace approximation, cov = −H⁻¹).
//
// ✨ Stencils:
//   - diagonal:     (f(x+hᵢeᵢ) − 2f(x) + f(x−hᵢeᵢ)) / hᵢ²          3 evaluations
//   - off-diagonal: (f(++) − f(+−) − f(−+) + f(−−)) / (4·hᵢ·hⱼ)     4 evaluations
//
// Only the upper triangle is computed; every (i,j) is mirrored to (j,i), so
// the result is exactly symmetric. f(x) is re-evaluated for every diagonal
// entry unless WithMemo is given.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hesscov/hessian"
//
//	f := hessian.Pure(func(x []float64) float64 { return -x[0]*x[0] - x[0]*x[1] - 3*x[1]*x[1] })
//	H, err := hessian.Estimate(f, []float64{0, 0}, hessian.Uniform(1e-3))
//
// Step sizes are an explicit union: Uniform(h) broadcasts one step to every
// axis, PerAxis(h1, …, hN) gives one per axis and must match len(x).
//
// Cost:
//
//   - Evaluations: 3N + 4·N(N−1)/2 (N−1 fewer with WithMemo)
//   - Memory:      O(N²) for the result, O(N) scratch
//
// The estimator is synchronous and keeps no state between calls; it is safe
// for concurrent use whenever f is.
package hessian
