// SPDX-License-Identifier: MIT

// Package matrix provides SmallMatrix, a fixed-extent dense matrix/vector
// value type with configurable storage order and starting index.
//
// What & Why:
//
//	A SmallMatrix owns exactly Rows*Cols elements laid out ColMajor ("F") or
//	RowMajor ("C") and indexed from a configurable base (1 by default). Its
//	Layout never changes except through TransposeInPlace. Element-wise
//	operations refuse to mix layouts, so offsets of two operands always
//	coincide; Mul only needs a shared starting index. Exports hand the buffer
//	to array consumers without copying: ToHost returns an ndarray view,
//	ToDevice uploads through the active device backend, and ToArray picks
//	between them from config.HaveGPU.
//
//	Values compare exactly (Equal), within tolerances (AllClose, Equalish) or
//	within units of machine epsilon (AlmostEqual, AlmostEqualULP).
//	Factorizations live in matrix/ops.
//
// Quick start:
//
//	l := matrix.MustLayout(2, 3)                      // 2x3, ColMajor, 1-based
//	a, _ := matrix.FromRows(l, [][]float64{{1, 2, 3}, {4, 5, 6}})
//	v, _ := a.At(2, 3)                                // 6
//	at, _ := a.Transpose()                            // 3x2
//	p, _ := a.Mul(at)                                 // 2x2
//	view, _ := a.ToHost(false, matrix.ColMajor)       // aliases a, F-contiguous
//
// Errors:
//
//	Every failure wraps one of the sentinels in errors.go; match them with
//	errors.Is. ErrShapeMismatch, ErrLayoutMismatch and ErrNonSquare all wrap
//	ErrDimensionMismatch.
//
// Complexity:
//
//	At/Set are O(1); element-wise operations and reductions are O(r*c);
//	Mul is O(r*n*c). Nothing blocks and nothing spawns goroutines.
package matrix
