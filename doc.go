// Package hesscov estimates Hessians of scalar multivariate functions by
// central finite differences and turns them into covariance matrices under
// the Laplace approximation, cov = −H⁻¹.
//
// 🚀 What is inside?
//
//	matrix/      — Dense storage, validators, LU/Inverse, Eigen, Correlation
//	hessian/     — step normalisation and the finite-difference estimator
//	covariance/  — −H⁻¹ through a pluggable Inverter (gonum or Doolittle)
//	selftest/    — the worked 3-D Gaussian example and its report
//	cmd/covcheck — command-line runner for the self-test
//
// ⚙️ Usage:
//
//	logp := hessian.Pure(func(x []float64) float64 { ... })
//	cov, err := covariance.Estimate(logp, mode, hessian.Uniform(1e-3))
//
// Every call is synchronous and stateless; nothing is cached across calls.
package hesscov
