// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every message is prefixed with "ndarray: ..." for grep-ability; callers
// match with errors.Is.

package ndarray

import "errors"

var (
	// ErrBadView is returned when a shape/strides pair does not fit the
	// backing slice (negative strides, zero extents, or out-of-bounds reach).
	ErrBadView = errors.New("ndarray: invalid view")

	// ErrIndexOutOfRange indicates a zero-based index outside [0, extent).
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates that two arrays (or a literal) disagree on shape.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllCloseTo.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")
)
