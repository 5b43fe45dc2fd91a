// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// Sum returns the total of all elements (element-type accumulation).
func (a *Array[T]) Sum() T {
	var s T
	a.each(func(v T) { s += v })
	return s
}

// Prod returns the product of all elements.
func (a *Array[T]) Prod() T {
	var p T = 1
	a.each(func(v T) { p *= v })
	return p
}

// Trace sums a[i,i] for i < min(rows, cols), like numpy.ndarray.trace.
func (a *Array[T]) Trace() T {
	n := min(a.shape[0], a.shape[1])
	var s T
	for i := 0; i < n; i++ {
		s += a.data[i*(a.strides[0]+a.strides[1])]
	}

	return s
}

// AllCloseTo reports |a[i,j]-v| <= atol + rtol*|v| for every element.
// Tolerances are abs-ed; NaN/Inf tolerances return ErrNaNInf. NaN elements
// are never close.
// Complexity: O(rows*cols), early exit on the first violation.
func (a *Array[T]) AllCloseTo(v T, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("AllCloseTo: %w", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	bound := atol + rtol*math.Abs(float64(v))
	ok := true
	a.each(func(x T) {
		if ok && !(math.Abs(float64(x)-float64(v)) <= bound) {
			ok = false
		}
	})

	return ok, nil
}

// each visits every element in logical row-major order.
func (a *Array[T]) each(f func(v T)) {
	var i, j, base int
	for i = 0; i < a.shape[0]; i++ {
		base = i * a.strides[0]
		for j = 0; j < a.shape[1]; j++ {
			f(a.data[base+j*a.strides[1]])
		}
	}
}
