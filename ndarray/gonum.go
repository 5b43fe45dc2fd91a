// SPDX-License-Identifier: MIT

package ndarray

import "gonum.org/v1/gonum/mat"

// Gonum exposes a float64 view as a gonum mat.Matrix.
// MAIN DESCRIPTION:
//   - Zero-copy bridge into the gonum ecosystem when the strides allow it.
//
// Implementation:
//   - Stage 1: row-major strides (cols, 1) → mat.NewDense over the same slice.
//   - Stage 2: column-major strides (1, rows) → Dense over the transposed
//     extent, returned through mat.Transpose (still aliasing).
//   - Stage 3: any other strides → copied Dense.
//
// Returns:
//   - mat.Matrix; aliased reports whether it shares storage with a.
//
// Complexity:
//   - O(1) on the aliasing paths, O(rows*cols) on the copy path.
//
// AI-Hints:
//   - To mutate through gonum, type-assert to *mat.Dense (row-major path) or
//     unwrap mat.Transpose.Matrix (column-major path).
func Gonum(a *Array[float64]) (m mat.Matrix, aliased bool) {
	r, c := a.shape[0], a.shape[1]
	n := r * c
	switch {
	case a.strides == [2]int{c, 1} && len(a.data) >= n:
		return mat.NewDense(r, c, a.data[:n]), true
	case a.strides == [2]int{1, r} && len(a.data) >= n:
		return mat.NewDense(c, r, a.data[:n]).T(), true
	}

	return mat.NewDense(r, c, a.Clone().data), false
}

// FromGonum copies any gonum matrix into a new C-contiguous Array.
// Complexity: O(rows*cols).
func FromGonum(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	out := &Array[float64]{data: make([]float64, r*c), shape: [2]int{r, c}, strides: [2]int{c, 1}}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out
}
