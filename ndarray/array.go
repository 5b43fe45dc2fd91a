// SPDX-License-Identifier: MIT

// Package ndarray - strided 2-D views over flat Go slices.
//
// Purpose:
//   - Present a SmallMatrix buffer to array consumers without copying.
//   - Keep the (shape, strides) bookkeeping explicit so transposes are O(1).
//   - Report C/F contiguity exactly like NumPy does for the same strides.
//
// AI-Hints:
//   - Views alias their source; use Clone when an independent lifetime is needed.
//   - Strides are in ELEMENTS here; ArrayInterface converts them to bytes.

package ndarray

import (
	"fmt"
	"strings"
)

// Element is the set of element types an Array (and a SmallMatrix) may hold.
type Element interface {
	~float32 | ~float64
}

// ArrayLike is the common surface of host and device array views.
// Host *Array values and device.Array handles both satisfy it.
type ArrayLike interface {
	// Shape returns (rows, cols) of the view.
	Shape() [2]int
	// Strides returns the per-axis step in elements.
	Strides() [2]int
	// IsCContiguous reports row-major contiguity (NumPy C_CONTIGUOUS).
	IsCContiguous() bool
	// IsFContiguous reports column-major contiguity (NumPy F_CONTIGUOUS).
	IsFContiguous() bool
	// ArrayInterface returns the v3 array-interface descriptor.
	ArrayInterface() ArrayInterface
}

// ---------- error context tags ----------

const (
	ctxView = "View"
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRows = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array is a non-owning strided 2-D view.
//   - data is the backing slice (possibly shared with a SmallMatrix).
//   - shape holds (rows, cols); both >= 1.
//   - strides holds the element step for each axis; both >= 0.
type Array[T Element] struct {
	data    []T    // backing storage, aliased
	shape   [2]int // (rows, cols)
	strides [2]int // element strides per axis
}

// Compile-time assertion: *Array satisfies ArrayLike.
var _ ArrayLike = (*Array[float64])(nil)

// View creates a strided view over data.
// MAIN DESCRIPTION:
//   - Validate that every (i,j) in shape maps inside data with the given strides.
//
// Implementation:
//   - Stage 1: reject non-positive extents and negative strides.
//   - Stage 2: compute the furthest reachable offset and compare with len(data).
//
// Returns:
//   - *Array aliasing data, or ErrBadView.
//
// Complexity:
//   - Time O(1), Space O(1).
func View[T Element](data []T, shape, strides [2]int) (*Array[T], error) {
	if shape[0] <= 0 || shape[1] <= 0 || strides[0] < 0 || strides[1] < 0 {
		return nil, fmt.Errorf("%s(shape=%v, strides=%v): %w", ctxView, shape, strides, ErrBadView)
	}
	// Furthest element reachable by the view.
	last := (shape[0]-1)*strides[0] + (shape[1]-1)*strides[1]
	if last >= len(data) {
		return nil, fmt.Errorf("%s(shape=%v, strides=%v, len=%d): %w", ctxView, shape, strides, len(data), ErrBadView)
	}

	return &Array[T]{data: data, shape: shape, strides: strides}, nil
}

// Zeros allocates a contiguous rows×cols array; fortran selects F layout.
// Complexity: O(rows*cols).
func Zeros[T Element](rows, cols int, fortran bool) (*Array[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrBadView)
	}
	strides := [2]int{cols, 1}
	if fortran {
		strides = [2]int{1, rows}
	}

	return &Array[T]{data: make([]T, rows*cols), shape: [2]int{rows, cols}, strides: strides}, nil
}

// FromRows builds a C-contiguous array from a rectangular nested literal.
// Ragged or empty input returns ErrShapeMismatch.
func FromRows[T Element](rows [][]T) (*Array[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: empty literal: %w", ctxRows, ErrShapeMismatch)
	}
	r, c := len(rows), len(rows[0])
	out := &Array[T]{data: make([]T, 0, r*c), shape: [2]int{r, c}, strides: [2]int{c, 1}}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), c, ErrShapeMismatch)
		}
		out.data = append(out.data, row...)
	}

	return out, nil
}

// Shape returns (rows, cols). O(1).
func (a *Array[T]) Shape() [2]int { return a.shape }

// Strides returns element strides. O(1).
func (a *Array[T]) Strides() [2]int { return a.strides }

// Size returns rows*cols.
func (a *Array[T]) Size() int { return a.shape[0] * a.shape[1] }

// ItemSize returns the element width in bytes.
func (a *Array[T]) ItemSize() int { return itemSize[T]() }

// Data returns the backing slice. Writes through it are visible to every
// view (and SmallMatrix) sharing the same storage.
func (a *Array[T]) Data() []T { return a.data }

// offset maps zero-based (i,j) to a flat offset or returns ErrIndexOutOfRange.
func (a *Array[T]) offset(i, j int) (int, error) {
	if i < 0 || i >= a.shape[0] || j < 0 || j >= a.shape[1] {
		return 0, ErrIndexOutOfRange
	}

	return i*a.strides[0] + j*a.strides[1], nil
}

// At returns element (i,j), zero-based, or ErrIndexOutOfRange.
func (a *Array[T]) At(i, j int) (T, error) {
	off, err := a.offset(i, j)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Array.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return a.data[off], nil
}

// Set writes element (i,j), zero-based, through to the backing storage.
func (a *Array[T]) Set(i, j int, v T) error {
	off, err := a.offset(i, j)
	if err != nil {
		return fmt.Errorf("Array.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	a.data[off] = v

	return nil
}

// T returns the transposed view: shape and strides swapped, data shared.
// MAIN DESCRIPTION:
//   - Logical transpose of a view; the zero-copy path of column-major export.
//
// Behavior highlights:
//   - No allocation of element storage; mutations through either view are
//     visible to the other.
//   - C-contiguous input yields an F-contiguous result and vice versa.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) T() *Array[T] {
	return &Array[T]{
		data:    a.data,
		shape:   [2]int{a.shape[1], a.shape[0]},
		strides: [2]int{a.strides[1], a.strides[0]},
	}
}

// Clone returns an independent C-contiguous copy with the same shape.
// Complexity: O(rows*cols).
func (a *Array[T]) Clone() *Array[T] {
	r, c := a.shape[0], a.shape[1]
	out := &Array[T]{data: make([]T, r*c), shape: a.shape, strides: [2]int{c, 1}}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = a.data[i*a.strides[0]+j*a.strides[1]]
		}
	}

	return out
}

// Rows materializes the view as a nested row-major literal (copy).
func (a *Array[T]) Rows() [][]T {
	out := make([][]T, a.shape[0])
	for i := range out {
		out[i] = make([]T, a.shape[1])
		for j := range out[i] {
			out[i][j] = a.data[i*a.strides[0]+j*a.strides[1]]
		}
	}

	return out
}

// IsCContiguous reports NumPy C_CONTIGUOUS for this view.
func (a *Array[T]) IsCContiguous() bool {
	c, _ := contiguity(a.shape, a.strides, 1)
	return c
}

// IsFContiguous reports NumPy F_CONTIGUOUS for this view.
func (a *Array[T]) IsFContiguous() bool {
	_, f := contiguity(a.shape, a.strides, 1)
	return f
}

// contiguity evaluates C and F contiguity of (shape, strides) for an element
// width of unit (1 for element strides, itemsize for byte strides).
// Axes of extent 1 never break contiguity.
func contiguity(shape, strides [2]int, unit int) (cContig, fContig bool) {
	// C order: last axis fastest.
	cContig = true
	expect := unit
	for ax := 1; ax >= 0; ax-- {
		if shape[ax] != 1 && strides[ax] != expect {
			cContig = false
			break
		}
		expect *= shape[ax]
	}
	// F order: first axis fastest.
	fContig = true
	expect = unit
	for ax := 0; ax <= 1; ax++ {
		if shape[ax] != 1 && strides[ax] != expect {
			fContig = false
			break
		}
		expect *= shape[ax]
	}

	return cContig, fContig
}

// String renders rows as "[a, b]\n" lines, matching matrix.SmallMatrix.String.
func (a *Array[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < a.shape[0]; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < a.shape[1]; j++ {
			b.WriteString(fmt.Sprintf("%g", a.data[i*a.strides[0]+j*a.strides[1]]))
			if j+1 < a.shape[1] {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
