// SPDX-License-Identifier: MIT

// Package matrix: the Matrix abstraction consumed by every kernel.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Implementations must bounds-check At/Set and return ErrOutOfRange rather
// than panic. *Dense is the only implementation shipped here; kernels keep a
// generic At/Set fallback so wrappers and custom layouts still work.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange on invalid indices and may
	// return ErrNaNInf when the implementation enforces a finite-only policy.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
