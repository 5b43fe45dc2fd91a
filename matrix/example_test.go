// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/smallmat/matrix"
)

// ExampleSmallMatrix_Mul multiplies a 2x3 matrix by its transpose.
func ExampleSmallMatrix_Mul() {
	l := matrix.MustLayout(2, 3)
	a, _ := matrix.FromRows(l, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, _ := a.Transpose()
	p, _ := a.Mul(at)
	fmt.Print(p)
	tr, _ := p.Trace()
	fmt.Println("trace:", tr)

	// Output:
	// [14, 32]
	// [32, 77]
	// trace: 91
}

// ExampleSmallMatrix_ToHost shows the zero-copy export and its contiguity.
func ExampleSmallMatrix_ToHost() {
	id, _ := matrix.Identity[float64](matrix.MustLayout(3, 3))
	view, _ := id.ToHost(false, matrix.ColMajor)
	fmt.Println(view.Shape(), view.IsFContiguous(), view.IsCContiguous())

	_ = view.Set(0, 2, 5) // writes through to id
	v, _ := id.At(1, 3)
	fmt.Println(v, id.TypeName())

	// Output:
	// [3 3] true false
	// 5 SmallMatrix_3x3_F_SI1_float64
}

// ExampleSmallMatrix_AtIndex reads a 1-based column vector.
func ExampleSmallMatrix_AtIndex() {
	v, _ := matrix.FromVector(matrix.MustLayout(3, 1), []float32{10, 8, 6})
	x, _ := v.AtIndex(3)
	_, err := v.AtIndex(0)
	fmt.Println(x, err)

	// Output:
	// 6 SmallMatrix.AtIndex(0,0): matrix: index out of range
}
