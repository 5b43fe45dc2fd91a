// SPDX-License-Identifier: MIT

// Package ndarray provides the host-side 2-D array views that SmallMatrix
// exports into, plus the array-interface descriptor shared with device
// backends.
//
// What & Why:
//
//	An Array is a (data, shape, strides) triple over a flat Go slice, the same
//	model NumPy uses for its buffer protocol. Views never own their memory:
//	Array.T() swaps shape and strides without touching data, so a transposed
//	view of a column-major buffer is still zero-copy. Contiguity flags follow
//	NumPy's rules (axes of extent 1 are ignored).
//
// Interop:
//
//   - ArrayInterface mirrors the array interface v3 dictionary (data pointer,
//     shape, byte strides, typestr, version). Device backends consume it.
//   - Gonum wraps a float64 Array as a gonum mat.Matrix without copying when
//     the strides allow it.
//
// Complexity:
//
//	View, T, Shape, Strides and the contiguity flags are O(1).
//	Clone, Sum, Prod and AllCloseTo are O(rows*cols).
package ndarray
