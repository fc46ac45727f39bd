// Package covariance derives a covariance matrix from a log-probability
// function under the Laplace (local Gaussian) approximation:
//
//	cov = −H⁻¹,  H = ∇² ln p(x)
//
// evaluated at, or near, the mode x. The Hessian comes from package hessian;
// the inversion is delegated to an Inverter:
//
//   - GonumInverter (default): gonum/mat LU with partial pivoting and a
//     condition estimate. Ill-conditioned input fails with ErrSingular and
//     the mat.Condition stays reachable through errors.As.
//   - DoolittleInverter: the in-tree matrix.Inverse, no pivoting. Fails with
//     ErrSingular on any exact zero pivot, including invertible matrices
//     whose leading entry is zero.
//
// No regularisation or pseudo-inverse is attempted. A flat or indefinite
// objective yields an error or a matrix that is not positive definite; the
// caller decides what to do with it.
package covariance
