// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by SmallMatrix and its exports.
// This file contains ONLY layout-facing types (element constraint, storage
// order, layout descriptor) and their pure helpers.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/smallmat/ndarray"
)

// Element constrains SmallMatrix element types (float / double).
type Element = ndarray.Element

// Order is the storage order of a SmallMatrix buffer.
// The zero value is ColMajor, the native Fortran convention.
type Order int

const (
	// ColMajor ("F" order) stores consecutive elements down a column.
	ColMajor Order = iota
	// RowMajor ("C" order) stores consecutive elements along a row.
	RowMajor
)

// Order tokens accepted by ParseOrder (case-sensitive).
const (
	tokenColMajor = "F"
	tokenRowMajor = "C"
)

// DefaultExportOrder is the order used by host/device exports unless overridden.
const DefaultExportOrder = ColMajor

// ParseOrder maps "F" → ColMajor and "C" → RowMajor.
// Any other token (including lowercase) fails with ErrInvalidArgument.
func ParseOrder(s string) (Order, error) {
	switch s {
	case tokenColMajor:
		return ColMajor, nil
	case tokenRowMajor:
		return RowMajor, nil
	default:
		return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrInvalidArgument)
	}
}

// Valid reports whether o is ColMajor or RowMajor.
func (o Order) Valid() bool { return o == ColMajor || o == RowMajor }

// String returns "F" or "C".
func (o Order) String() string {
	switch o {
	case ColMajor:
		return tokenColMajor
	case RowMajor:
		return tokenRowMajor
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Layout is the immutable shape descriptor of a SmallMatrix: extents, storage
// order and starting index. It stands in for compile-time dimension parameters.
//
// Offsets:
//   - ColMajor: (i-S) + (j-S)*Rows
//   - RowMajor: (i-S)*Cols + (j-S)
type Layout struct {
	Rows       int   // row extent (≥1)
	Cols       int   // column extent (≥1)
	Order      Order // storage order
	StartIndex int   // first valid index on every axis (0 or 1)
}

// Validate checks extents, order and starting index.
//
// Errors:
//   - ErrInvalidDimensions when Rows<1 or Cols<1.
//   - ErrInvalidArgument for an unknown Order or StartIndex ∉ {0,1}.
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("Layout(%dx%d): %w", l.Rows, l.Cols, ErrInvalidDimensions)
	}
	if !l.Order.Valid() {
		return fmt.Errorf("Layout.Order(%d): %w", int(l.Order), ErrInvalidArgument)
	}
	if l.StartIndex != 0 && l.StartIndex != 1 {
		return fmt.Errorf("Layout.StartIndex(%d): %w", l.StartIndex, ErrInvalidArgument)
	}

	return nil
}

// Size returns Rows*Cols.
func (l Layout) Size() int { return l.Rows * l.Cols }

// IsVector reports an Rx1 or 1xC shape.
func (l Layout) IsVector() bool { return l.Rows == 1 || l.Cols == 1 }

// IsSquare reports Rows == Cols.
func (l Layout) IsSquare() bool { return l.Rows == l.Cols }

// Transposed returns the layout with extents swapped; order and start index are kept.
func (l Layout) Transposed() Layout {
	l.Rows, l.Cols = l.Cols, l.Rows
	return l
}

// WithOrder returns a copy of l using order o.
func (l Layout) WithOrder(o Order) Layout {
	l.Order = o
	return l
}

// offset maps zero-based logical (r,c) to a buffer offset. No bounds checks.
func (l Layout) offset(r, c int) int {
	if l.Order == RowMajor {
		return r*l.Cols + c
	}

	return r + c*l.Rows
}

// String renders "RxC/F/SI1".
func (l Layout) String() string {
	return fmt.Sprintf("%dx%d/%s/SI%d", l.Rows, l.Cols, l.Order, l.StartIndex)
}
