// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/smallmat/matrix"
)

// Solve returns X with A·X = B for the factored A. B may hold several
// right-hand sides as columns; X takes B's layout.
//
// Blueprint:
//
//	Stage 1 (Validate): B non-nil, B.Rows == n, shared starting index.
//	Stage 2 (Execute): per column, permute, solve L·y = P·b then U·x = y.
//	Stage 3 (Finalize): assemble the columns into X.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch, matrix.ErrLayoutMismatch;
//     ErrSingular on a zero pivot.
//
// Complexity: O(n²·k) time for k right-hand sides.
func (d *Decomposition[T]) Solve(b *matrix.SmallMatrix[T]) (*matrix.SmallMatrix[T], error) {
	// Stage 1: Validate
	if err := matrix.ValidateMulCompatible(d.U, b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := d.U.Rows()
	lower, upper, rhs := d.L.ToRows(), d.U.ToRows(), b.ToRows()

	// Stage 2: Execute
	out := make([][]T, n)
	for i := range out {
		out[i] = make([]T, b.Cols())
	}
	y := make([]T, n)
	var (
		col, i, k int
		sum       T
	)
	for col = 0; col < b.Cols(); col++ {
		// Forward substitution: L·y = P·b (unit diagonal)
		for i = 0; i < n; i++ {
			sum = rhs[d.Perm[i]][col]
			for k = 0; k < i; k++ {
				sum -= lower[i][k] * y[k]
			}
			y[i] = sum
		}
		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= upper[i][k] * out[k][col]
			}
			if upper[i][i] == 0 {
				return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i+b.StartIndex(), ErrSingular)
			}
			out[i][col] = sum / upper[i][i]
		}
	}

	// Stage 3: Finalize
	x, err := matrix.FromRows(b.Layout(), out)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return x, nil
}

// Solve factors a and returns X with a·X = b.
func Solve[T matrix.Element](a, b *matrix.SmallMatrix[T]) (*matrix.SmallMatrix[T], error) {
	d, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return d.Solve(b)
}

// Inverse returns A⁻¹ with m's layout by solving A·X = I.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T matrix.Element](m *matrix.SmallMatrix[T]) (*matrix.SmallMatrix[T], error) {
	d, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	id, err := matrix.Identity[T](m.Layout())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	inv, err := d.Solve(id)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return inv, nil
}
