// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with a
// call-site tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smallmat/device"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Specialised mismatches (shape, layout, non-square) wrap ErrDimensionMismatch,
// so errors.Is(err, ErrDimensionMismatch) holds for every one of them.
//
// ERROR PRIORITY (enforced in tests):
// nil -> invalid argument -> dimension/layout mismatch -> index range.

var (
	// ErrIndexOutOfRange indicates that a row, column or vector index is outside
	// [S, S+extent-1]. Public indexers MUST return this, never clamp or wrap.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands or
	// between a literal and the layout it is scattered into.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidArgument indicates an unrecognized token or out-of-domain value
	// (storage order, starting index, tolerance).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions indicates that requested layout dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil *SmallMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required by the
	// numeric policy (tolerances, guarded Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

var (
	// ErrShapeMismatch signals that a literal or external view does not match R×C,
	// or that operand extents differ. Wraps ErrDimensionMismatch.
	ErrShapeMismatch = fmt.Errorf("matrix: shape mismatch: %w", ErrDimensionMismatch)

	// ErrLayoutMismatch signals operands with equal extents but different storage
	// order or starting index. Wraps ErrDimensionMismatch.
	ErrLayoutMismatch = fmt.Errorf("matrix: layout mismatch: %w", ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required. Wraps ErrDimensionMismatch.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)
)

// ErrDependencyUnavailable is returned by device exports when no device array
// backend is active. It is the device package sentinel, re-exported.
var ErrDependencyUnavailable = device.ErrDependencyUnavailable
