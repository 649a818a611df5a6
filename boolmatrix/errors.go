// SPDX-License-Identifier: MIT
package boolmatrix

import "errors"

// Sentinel errors for boolmatrix operations.
var (
	// ErrDimensionMismatch indicates two matrices have incompatible shapes
	// for the requested operation.
	ErrDimensionMismatch = errors.New("boolmatrix: dimension mismatch")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("boolmatrix: index out of bounds")

	// ErrInvalidDimensions indicates negative rows/cols were requested.
	ErrInvalidDimensions = errors.New("boolmatrix: dimensions must be >= 0")
)
