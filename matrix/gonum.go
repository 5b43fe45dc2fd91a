// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/smallmat/ndarray"
)

// Gonum returns a gonum view of m. The view aliases m's buffer for both
// storage orders (ColMajor goes through mat.Transpose); writes through a
// *mat.Dense obtained from it land in m.
//
// Errors:
//   - ErrNilMatrix.
func Gonum(m *SmallMatrix[float64]) (mat.Matrix, error) {
	view, err := m.LogicalView()
	if err != nil {
		return nil, err
	}
	g, _ := ndarray.Gonum(view)

	return g, nil
}

// FromGonum copies a gonum matrix into a new SmallMatrix with layout l.
// The gonum dimensions must equal (l.Rows, l.Cols).
//
// Errors:
//   - Layout errors; ErrShapeMismatch.
func FromGonum(l Layout, g mat.Matrix, opts ...Option) (*SmallMatrix[float64], error) {
	if g == nil {
		return nil, matrixErrorf(opFromArray, ErrNilMatrix)
	}

	return FromArray(l, ndarray.FromGonum(g), opts...)
}
