// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallmat/matrix"
)

func zeros(t *testing.T, r, c int, opts ...matrix.Option) *matrix.SmallMatrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](matrix.MustLayout(r, c, opts...))
	require.NoError(t, err)
	return m
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched extents and layouts.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.SmallMatrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrShapeMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrShapeMismatch},
		{"order mismatch", zeros(t, 2, 3), zeros(t, 2, 3, matrix.WithRowMajor()), matrix.ErrLayoutMismatch},
		{"start mismatch", zeros(t, 2, 3), zeros(t, 2, 3, matrix.WithZeroBased()), matrix.ErrLayoutMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible allows mixed orders but not mixed start indices.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 4)))
	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3, matrix.WithRowMajor()), zeros(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 3)), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 3, matrix.WithZeroBased())), matrix.ErrLayoutMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, zeros(t, 3, 3)), matrix.ErrNilMatrix)
}

func TestValidateSquareAndVector(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(zeros(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(zeros(t, 3, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare[float64](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVector(zeros(t, 4, 1)))
	require.NoError(t, matrix.ValidateVector(zeros(t, 1, 4)))
	require.ErrorIs(t, matrix.ValidateVector(zeros(t, 2, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateTolerances(t *testing.T) {
	t.Parallel()

	r, a, err := matrix.ValidateTolerances(-1e-3, -2)
	require.NoError(t, err)
	require.Equal(t, 1e-3, r)
	require.Equal(t, 2.0, a)

	for _, bad := range [][2]float64{{math.NaN(), 0}, {0, math.NaN()}, {math.Inf(-1), 0}, {0, math.Inf(1)}} {
		_, _, err = matrix.ValidateTolerances(bad[0], bad[1])
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	}
}

// TestErrorHierarchy pins the wrapping of specialised mismatches.
func TestErrorHierarchy(t *testing.T) {
	for _, e := range []error{matrix.ErrShapeMismatch, matrix.ErrLayoutMismatch, matrix.ErrNonSquare} {
		require.ErrorIs(t, e, matrix.ErrDimensionMismatch)
	}
	require.NotErrorIs(t, matrix.ErrIndexOutOfRange, matrix.ErrDimensionMismatch)
}
