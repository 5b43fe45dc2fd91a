// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/layout checks here.
//   - Return sentinels wrapped with the validator tag so call sites can wrap
//     again with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → Layout).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *SmallMatrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal extents. Assumes non-nil.
//
// Returns: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape[T Element](a, b *SmallMatrix[T]) error {
	if a.layout.Rows != b.layout.Rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.layout.Cols != b.layout.Cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSameLayout ensures a and b share storage order and starting index.
// Assumes non-nil. Mixing orders requires ConvertOrder.
//
// Returns: nil or wrapped ErrLayoutMismatch.
// Complexity: O(1).
func ValidateSameLayout[T Element](a, b *SmallMatrix[T]) error {
	if a.layout.Order != b.layout.Order {
		return validatorErrorf("ValidateSameLayout: Order", ErrLayoutMismatch)
	}
	if a.layout.StartIndex != b.layout.StartIndex {
		return validatorErrorf("ValidateSameLayout: StartIndex", ErrLayoutMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape → SameLayout.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Element](a, b *SmallMatrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameLayout(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, equal starting indices and
// non-nil inputs. Storage orders may differ: Mul reads each operand through
// its own offsets (a RowMajor matrix times a ColMajor vector is legal).
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *SmallMatrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.layout.Cols != b.layout.Rows {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}
	if a.layout.StartIndex != b.layout.StartIndex {
		return validatorErrorf("ValidateMulCompatible: StartIndex", ErrLayoutMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T Element](m *SmallMatrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.layout.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVector checks that m is non-nil and has an Rx1 or 1xC shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVector[T Element](m *SmallMatrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if !m.layout.IsVector() {
		return validatorErrorf("ValidateVector", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTolerances rejects NaN/±Inf tolerances and normalizes negatives to |x|.
//
// Errors: ErrNaNInf.
// Complexity: O(1).
func ValidateTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, validatorErrorf("ValidateTolerances", ErrNaNInf)
	}

	return math.Abs(rtol), math.Abs(atol), nil
}
