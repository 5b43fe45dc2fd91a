// SPDX-License-Identifier: MIT

// Package ops provides factorizations on square SmallMatrix values: LU with
// partial pivoting, and the determinant, linear solve and inverse built on it.
//
// Results keep the layout (order and starting index) of the operand they
// were derived from.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smallmat/matrix"
)

// ErrSingular is returned when a zero pivot is met while solving.
var ErrSingular = errors.New("ops: matrix is singular")

// Decomposition holds P·A = L·U for a square A.
type Decomposition[T matrix.Element] struct {
	// L is unit lower triangular.
	L *matrix.SmallMatrix[T]
	// U is upper triangular; a zero on its diagonal marks A as singular.
	U *matrix.SmallMatrix[T]
	// Perm maps factor row k to source row Perm[k] (zero-based).
	Perm []int
	// Sign is the parity of Perm: +1 or -1.
	Sign int
}

func abs[T matrix.Element](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// LU factors the square matrix m with Doolittle elimination and row pivoting
// on the largest magnitude in each column. Singular input is not an error
// here; it surfaces as a zero on U's diagonal.
//
// Blueprint:
//
//	Stage 1 (Validate): m non-nil and square.
//	Stage 2 (Prepare): copy m into a row-major working literal.
//	Stage 3 (Execute): for each column pick the pivot row, swap, eliminate below.
//	Stage 4 (Finalize): split the working literal into L and U with m's layout.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func LU[T matrix.Element](m *matrix.SmallMatrix[T]) (*Decomposition[T], error) {
	// Stage 1: Validate
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 2: Prepare
	n := m.Rows()
	a := m.ToRows()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1

	// Stage 3: Execute
	var i, j, k, p int
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if abs(a[i][k]) > abs(a[p][k]) {
				p = i
			}
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		if a[k][k] == 0 {
			continue // every entry below is zero as well
		}
		for i = k + 1; i < n; i++ {
			a[i][k] /= a[k][k]
			for j = k + 1; j < n; j++ {
				a[i][j] -= a[i][k] * a[k][j]
			}
		}
	}

	// Stage 4: Finalize
	lower := make([][]T, n)
	upper := make([][]T, n)
	for i = 0; i < n; i++ {
		lower[i] = make([]T, n)
		upper[i] = make([]T, n)
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				lower[i][j] = a[i][j]
			case j == i:
				lower[i][j] = 1
				upper[i][j] = a[i][j]
			default:
				upper[i][j] = a[i][j]
			}
		}
	}
	L, err := matrix.FromRows(m.Layout(), lower)
	if err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.FromRows(m.Layout(), upper)
	if err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}

	return &Decomposition[T]{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Det returns det(A) = Sign · Π U[k,k].
func (d *Decomposition[T]) Det() T {
	det := T(d.Sign)
	s := d.U.StartIndex()
	for k := 0; k < d.U.Rows(); k++ {
		v, _ := d.U.At(s+k, s+k)
		det *= v
	}

	return det
}

// Det returns the determinant of the square matrix m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Det[T matrix.Element](m *matrix.SmallMatrix[T]) (T, error) {
	d, err := LU(m)
	if err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}

	return d.Det(), nil
}
