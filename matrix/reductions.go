// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reductions (Sum, Prod, Trace) and numeric comparison (AllClose,
//     AlmostEqual in units of machine epsilon).
//
// Determinism & Performance:
//   - Reductions walk the flat buffer 0..n-1 and accumulate in the element type T.
//     Summation order therefore follows storage order; for exactly representable
//     values (integers below 2^53 for float64) the result is order-independent.
//   - No special-casing: Prod of a matrix containing a zero is zero.

package matrix

import (
	"math"
	"unsafe"
)

// Sum returns the total of all elements. A nil receiver sums to 0.
// Complexity: Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) Sum() T {
	var acc T
	if m == nil {
		return acc
	}
	for _, v := range m.data {
		acc += v
	}

	return acc
}

// Prod returns the product of all elements. A nil receiver yields 0.
// Complexity: Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) Prod() T {
	if m == nil {
		return 0
	}
	var acc T = 1
	for _, v := range m.data {
		acc *= v
	}

	return acc
}

// Trace returns Σ M[i,i] over the valid index range of a square matrix.
//
// Errors:
//   - ErrNilMatrix; ErrNonSquare when Rows != Cols.
//
// Complexity: Time O(n), Space O(1).
func (m *SmallMatrix[T]) Trace() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var acc T
	for k := 0; k < m.layout.Rows; k++ {
		acc += m.data[m.layout.offset(k, k)]
	}

	return acc, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical layouts.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/±Inf tolerances fail with ErrNaNInf.
//   - NaN elements never compare close.
//
// Errors:
//   - ErrNaNInf, ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
//
// Complexity: Time O(r*c), Space O(1). Early exit on the first violation.
func (m *SmallMatrix[T]) AllClose(b *SmallMatrix[T], rtol, atol float64) (bool, error) {
	rtol, atol, err := ValidateTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(m, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range m.data {
		av, bv = float64(m.data[idx]), float64(b.data[idx])
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseTo checks every element against the scalar v with the AllClose
// relation |x-v| <= atol + rtol*|v|. NaN elements never compare close.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (tolerances).
//
// Complexity: Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) AllCloseTo(v T, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opAllCloseTo, err)
	}
	rtol, atol, err := ValidateTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllCloseTo, err)
	}
	raw, err := m.rawView()
	if err != nil {
		return false, matrixErrorf(opAllCloseTo, err)
	}

	return raw.AllCloseTo(v, rtol, atol)
}

// Equalish is AllClose with the receiver's tolerances (WithTolerances,
// default DefaultRTol/DefaultATol). Any validation error reports false.
func (m *SmallMatrix[T]) Equalish(b *SmallMatrix[T]) bool {
	if m == nil {
		return false
	}
	ok, err := m.AllClose(b, m.rtol, m.atol)

	return err == nil && ok
}

// DefaultULP is the customary AlmostEqual tolerance.
const DefaultULP = 2

// AlmostEqual reports whether x and y agree to within ulp units of machine
// epsilon of T, scaled by |x+y|. Differences below the smallest normal
// number of T always compare equal. NaN and ±Inf never compare equal.
func AlmostEqual[T Element](x, y T, ulp int) bool {
	eps, tiny := math.Nextafter(1, 2)-1, 0x1p-1022
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		eps, tiny = float64(math.Nextafter32(1, 2)-1), 0x1p-126
	}
	diff := math.Abs(float64(x) - float64(y))

	return diff <= eps*math.Abs(float64(x)+float64(y))*float64(ulp) || diff < tiny
}

// AlmostEqualULP applies AlmostEqual element-wise to m and b.
//
// Errors:
//   - ErrInvalidArgument (ulp < 0), ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
func (m *SmallMatrix[T]) AlmostEqualULP(b *SmallMatrix[T], ulp int) (bool, error) {
	if ulp < 0 {
		return false, matrixErrorf(opAlmostEqual, ErrInvalidArgument)
	}
	if err := ValidateBinarySameShape(m, b); err != nil {
		return false, matrixErrorf(opAlmostEqual, err)
	}
	for idx := range m.data {
		if !AlmostEqual(m.data[idx], b.data[idx], ulp) {
			return false, nil
		}
	}

	return true, nil
}
