// Package matrix provides the dense linear-algebra primitives behind the
// Hessian and covariance estimators.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     per-instance numeric policy (finite-only writes by default).
//   - Validators shared by every kernel (nil, shape, symmetry, finiteness).
//   - Kernels: Scale/Negate, Mul, MatVec, LU and Inverse (Doolittle, no
//     pivoting), Eigen (Jacobi, symmetric input).
//   - Statistics: Correlation (σ and Pearson ρ from a covariance matrix).
//   - Comparison helpers: AllClose, FracDiff, MaxAbs; ToRows for encoders.
//
// Errors are package sentinels (ErrSingular, ErrNaNInf, ...) wrapped with an
// operation tag; match them with errors.Is.
package matrix
