// SPDX-License-Identifier: MIT

// Package matrix - SmallMatrix storage (ColMajor or RowMajor) & safe accessors.
//
// Purpose:
//   - Provide a fixed-extent dense buffer whose offset formula is fixed by its Layout.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Indices are in the layout's base: 1-based by default, 0-based with WithZeroBased.
//   - Element-wise operations never mix layouts; ConvertOrder first when orders differ.
//   - Do/Apply visit logical (i,j) in row-major order regardless of storage order.
//
// Complexity quicksheet:
//   - New/Zero/Identity: O(r*c); At/Set: O(1); Clone/ConvertOrder: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // vector read
	ctxSetIndex = "SetIndex" // vector write
	ctxSetVal   = "SetVal"   // fill
	ctxApply    = "Apply"    // in-place map
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtTypeName = "SmallMatrix_%dx%d_%s_SI%d_%T"
)

// smallErrorf wraps an error with a uniform SmallMatrix context and callsite indices.
// Coordinates are reported in the caller's base (as passed to At/Set).
func smallErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SmallMatrix.%s(%d,%d): %w", method, row, col, err)
}

// SmallMatrix is a fixed-extent dense matrix or vector of T.
//   - layout fixes extents, storage order and starting index for the lifetime of the value.
//   - data is a flat buffer of length Rows*Cols addressed by layout.offset.
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
//
// The zero value is not usable; build instances with New, Zero, Identity,
// FromRows, FromVector or FromArray.
type SmallMatrix[T Element] struct {
	layout         Layout  // immutable except via TransposeInPlace
	data           []T     // contiguous storage (len == Rows*Cols)
	validateNaNInf bool    // numeric guard on writes
	rtol, atol     float64 // Equalish tolerances
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SmallMatrix[float64])(nil)

// New creates a zero-filled matrix with layout l.
// MAIN DESCRIPTION:
//   - Public constructor with strict layout validation and numeric policy options.
//
// Implementation:
//   - Stage 1: validate l (extents ≥1, known order, start index 0/1).
//   - Stage 2: allocate a zero-filled buffer and resolve policy options.
//
// Inputs:
//   - l: layout (see NewLayout / MustLayout).
//   - opts: policy options (WithValidateNaNInf, WithTolerances).
//
// Returns:
//   - *SmallMatrix[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidArgument (layout contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](l Layout, opts ...Option) (*SmallMatrix[T], error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &SmallMatrix[T]{
		layout:         l,
		data:           make([]T, l.Size()),
		validateNaNInf: o.validateNaNInf,
		rtol:           o.rtol,
		atol:           o.atol,
	}, nil
}

// Zero is a static factory equivalent to New, provided for readability.
func Zero[T Element](l Layout, opts ...Option) (*SmallMatrix[T], error) {
	return New[T](l, opts...)
}

// Identity returns a square matrix with ones on the diagonal.
//
// Errors:
//   - Layout errors from New; ErrNonSquare when l.Rows != l.Cols.
//
// Complexity: Time O(n²), Space O(n²).
func Identity[T Element](l Layout, opts ...Option) (*SmallMatrix[T], error) {
	if err := l.Validate(); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if !l.IsSquare() {
		return nil, matrixErrorf(opIdentity, ErrNonSquare)
	}
	m, err := New[T](l, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for k := 0; k < l.Rows; k++ {
		m.data[l.offset(k, k)] = 1
	}

	return m, nil
}

// FromRows builds a matrix from a nested literal of R sequences of C values,
// row-major in literal order, scattered into the layout's storage order.
// At(i,j) then returns rows[i-S][j-S].
//
// Errors:
//   - Layout errors; ErrShapeMismatch when len(rows) != R or any len(row) != C;
//     ErrNaNInf for non-finite values under WithValidateNaNInf.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows[T Element](l Layout, rows [][]T, opts ...Option) (*SmallMatrix[T], error) {
	m, err := New[T](l, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if len(rows) != l.Rows {
		return nil, matrixErrorf(opFromRows, fmt.Errorf("rows=%d want %d: %w", len(rows), l.Rows, ErrShapeMismatch))
	}

	var i, j int
	for i = 0; i < l.Rows; i++ {
		if len(rows[i]) != l.Cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values want %d: %w", i, len(rows[i]), l.Cols, ErrShapeMismatch))
		}
		for j = 0; j < l.Cols; j++ {
			if err = m.checkValue(ctxSet, i+l.StartIndex, j+l.StartIndex, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
			m.data[l.offset(i, j)] = rows[i][j]
		}
	}

	return m, nil
}

// FromVector builds an Rx1 or 1xC vector from a flat literal of Size() values.
//
// Errors:
//   - Layout errors; ErrDimensionMismatch for non-vector layouts;
//     ErrShapeMismatch when len(values) != Size(); ErrNaNInf under the guard.
func FromVector[T Element](l Layout, values []T, opts ...Option) (*SmallMatrix[T], error) {
	m, err := New[T](l, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromVector, err)
	}
	if !l.IsVector() {
		return nil, matrixErrorf(opFromVector, ErrDimensionMismatch)
	}
	if len(values) != l.Size() {
		return nil, matrixErrorf(opFromVector, fmt.Errorf("len=%d want %d: %w", len(values), l.Size(), ErrShapeMismatch))
	}
	for k, v := range values {
		if err = m.checkValue(ctxSetIndex, k+l.StartIndex, 0, v); err != nil {
			return nil, matrixErrorf(opFromVector, err)
		}
	}
	// For Rx1 and 1xC both storage orders place vector element k at offset k.
	copy(m.data, values)

	return m, nil
}

// Clone returns a deep copy with identical layout and policy.
// Complexity: Time O(r*c), Space O(r*c).
func (m *SmallMatrix[T]) Clone() *SmallMatrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &SmallMatrix[T]{
		layout:         m.layout,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		rtol:           m.rtol,
		atol:           m.atol,
	}
}

// derive allocates a zero matrix of layout l carrying m's policy.
func (m *SmallMatrix[T]) derive(l Layout) *SmallMatrix[T] {
	return &SmallMatrix[T]{
		layout:         l,
		data:           make([]T, l.Size()),
		validateNaNInf: m.validateNaNInf,
		rtol:           m.rtol,
		atol:           m.atol,
	}
}

// Layout returns the layout descriptor.
func (m *SmallMatrix[T]) Layout() Layout { return m.layout }

// Rows returns the row extent (row_size).
func (m *SmallMatrix[T]) Rows() int { return m.layout.Rows }

// Cols returns the column extent (column_size).
func (m *SmallMatrix[T]) Cols() int { return m.layout.Cols }

// Size returns Rows*Cols.
func (m *SmallMatrix[T]) Size() int { return m.layout.Size() }

// Order returns the storage order.
func (m *SmallMatrix[T]) Order() Order { return m.layout.Order }

// StartIndex returns the first valid index on every axis.
func (m *SmallMatrix[T]) StartIndex() int { return m.layout.StartIndex }

// IsVector reports an Rx1 or 1xC shape.
func (m *SmallMatrix[T]) IsVector() bool { return m.layout.IsVector() }

// IsSquare reports Rows == Cols.
func (m *SmallMatrix[T]) IsSquare() bool { return m.layout.IsSquare() }

// TypeName renders the binding-style type name, e.g. SmallMatrix_6x6_F_SI1_float64.
func (m *SmallMatrix[T]) TypeName() string {
	var zero T
	l := m.layout

	return fmt.Sprintf(_fmtTypeName, l.Rows, l.Cols, l.Order, l.StartIndex, zero)
}

// indexOf bounds-checks (i,j) in the layout base and returns the buffer offset.
// MAIN DESCRIPTION:
//   - Each axis is checked independently against [S, S+extent-1].
//
// Errors:
//   - ErrIndexOutOfRange, wrapped with the caller's method tag and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *SmallMatrix[T]) indexOf(method string, i, j int) (int, error) {
	l := m.layout
	r, c := i-l.StartIndex, j-l.StartIndex
	if r < 0 || r >= l.Rows {
		return 0, smallErrorf(method, i, j, ErrIndexOutOfRange)
	}
	if c < 0 || c >= l.Cols {
		return 0, smallErrorf(method, i, j, ErrIndexOutOfRange)
	}

	return l.offset(r, c), nil
}

// At returns the element at (i,j) in the layout base.
//
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrIndexOutOfRange on either axis.
//
// Complexity: O(1).
func (m *SmallMatrix[T]) At(i, j int) (T, error) {
	if m == nil {
		return 0, smallErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	idx, err := m.indexOf(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i,j) in the layout base.
//
// Errors:
//   - ErrNilMatrix; ErrIndexOutOfRange on either axis; ErrNaNInf under the guard.
//
// Complexity: O(1).
func (m *SmallMatrix[T]) Set(i, j int, v T) error {
	if m == nil {
		return smallErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	idx, err := m.indexOf(ctxSet, i, j)
	if err != nil {
		return err
	}
	if err = m.checkValue(ctxSet, i, j, v); err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// vectorOffset validates a single index for a vector shape.
func (m *SmallMatrix[T]) vectorOffset(method string, i int) (int, error) {
	if err := ValidateVector(m); err != nil {
		return 0, smallErrorf(method, i, 0, err)
	}
	k := i - m.layout.StartIndex
	if k < 0 || k >= len(m.data) {
		return 0, smallErrorf(method, i, 0, ErrIndexOutOfRange)
	}

	return k, nil
}

// AtIndex returns element i of a row or column vector (layout base).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch for non-vector shapes; ErrIndexOutOfRange.
func (m *SmallMatrix[T]) AtIndex(i int) (T, error) {
	k, err := m.vectorOffset(ctxAtIndex, i)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// SetIndex assigns element i of a row or column vector (layout base).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch; ErrIndexOutOfRange; ErrNaNInf under the guard.
func (m *SmallMatrix[T]) SetIndex(i int, v T) error {
	k, err := m.vectorOffset(ctxSetIndex, i)
	if err != nil {
		return err
	}
	if err = m.checkValue(ctxSetIndex, i, 0, v); err != nil {
		return err
	}
	m.data[k] = v

	return nil
}

// SetVal sets every element to v.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf under the guard (nothing is written).
func (m *SmallMatrix[T]) SetVal(v T) error {
	if m == nil {
		return matrixErrorf(ctxSetVal, ErrNilMatrix)
	}
	if err := m.checkValue(ctxSetVal, m.layout.StartIndex, m.layout.StartIndex, v); err != nil {
		return err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return nil
}

// Do visits each element in logical row-major order and calls f(i,j,v) with
// indices in the layout base. Stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order independent of storage order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) Do(f func(i, j int, v T) bool) {
	l := m.layout
	var r, c int
	for r = 0; r < l.Rows; r++ {
		for c = 0; c < l.Cols; c++ {
			if !f(r+l.StartIndex, c+l.StartIndex, m.data[l.offset(r, c)]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, visiting logical
// row-major order with indices in the layout base.
//
// Behavior highlights:
//   - Respects the NaN/Inf guard; the first rejected value aborts and
//     elements written before it remain updated.
//
// Errors:
//   - ErrNaNInf (guard enabled).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) Apply(f func(i, j int, v T) T) error {
	l := m.layout
	var r, c, idx int
	var nv T
	for r = 0; r < l.Rows; r++ {
		for c = 0; c < l.Cols; c++ {
			idx = l.offset(r, c)
			nv = f(r+l.StartIndex, c+l.StartIndex, m.data[idx])
			if err := m.checkValue(ctxApply, r+l.StartIndex, c+l.StartIndex, nv); err != nil {
				return err
			}
			m.data[idx] = nv
		}
	}

	return nil
}

// ToRows returns the logical contents as a row-major nested literal,
// the inverse of FromRows.
func (m *SmallMatrix[T]) ToRows() [][]T {
	l := m.layout
	out := make([][]T, l.Rows)
	for r := 0; r < l.Rows; r++ {
		out[r] = make([]T, l.Cols)
		for c := 0; c < l.Cols; c++ {
			out[r][c] = m.data[l.offset(r, c)]
		}
	}

	return out
}

// ConvertOrder returns a copy stored in order o with identical logical values.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument for an unknown order.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *SmallMatrix[T]) ConvertOrder(o Order) (*SmallMatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvertOrder, err)
	}
	if !o.Valid() {
		return nil, matrixErrorf(opConvertOrder, fmt.Errorf("order %d: %w", int(o), ErrInvalidArgument))
	}

	src := m.layout
	out := m.derive(src.WithOrder(o))
	var r, c int
	for r = 0; r < src.Rows; r++ {
		for c = 0; c < src.Cols; c++ {
			out.data[out.layout.offset(r, c)] = m.data[src.offset(r, c)]
		}
	}

	return out, nil
}

// Equal reports identical layouts and bitwise-equal values (NaN != NaN).
// Two nil matrices are equal; nil and non-nil are not.
func (m *SmallMatrix[T]) Equal(b *SmallMatrix[T]) bool {
	if m == nil || b == nil {
		return m == nil && b == nil
	}
	if m.layout != b.layout {
		return false
	}
	for k := range m.data {
		if m.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String renders logical rows as "[a, b]\n" lines using %g.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *SmallMatrix[T]) String() string {
	l := m.layout
	var b strings.Builder
	var r, c int
	for r = 0; r < l.Rows; r++ {
		b.WriteString(_fmtRowOpen)
		for c = 0; c < l.Cols; c++ {
			fmt.Fprintf(&b, "%g", m.data[l.offset(r, c)])
			if c+1 < l.Cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// checkValue enforces the NaN/Inf guard for a write at (i,j).
func (m *SmallMatrix[T]) checkValue(method string, i, j int, v T) error {
	if !m.validateNaNInf {
		return nil
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return smallErrorf(method, i, j, ErrNaNInf)
	}

	return nil
}
