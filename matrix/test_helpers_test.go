// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (the 6x6 A/B pair and vector C).
//   • Keep all data exactly representable so reductions compare with ==.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/smallmat/matrix"
)

// N is the extent of the square fixtures.
const N = 6

// rowsA and rowsB are row-major literals of the 6x6 fixtures.
var (
	rowsA = [][]float64{
		{1, 0, 1, 0, 1, 0},
		{2, 1, 1, 1, 1, 2},
		{0, 1, 1, 1, 1, 0},
		{1, 1, 2, 2, 1, 1},
		{2, 1, 2, 2, 1, 2},
		{0, 1, 1, 1, 1, 0},
	}
	rowsB = [][]float64{
		{1, 2, 2, 2, 1, 1},
		{2, 3, 1, 1, 1, 3},
		{4, 2, 2, 2, 2, 0},
		{1, 4, 3, 2, 0, 1},
		{2, 3, 1, 0, 0, 2},
		{0, 1, 1, 1, 4, 0},
	}
	// valsC is the column vector C.
	valsC = []float64{10, 8, 6, 4, 2, 0}
)

// MustFromRows builds a matrix from a row-major literal or fails the test.
func MustFromRows(t *testing.T, l matrix.Layout, rows [][]float64, opts ...matrix.Option) *matrix.SmallMatrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(l, rows, opts...)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", l, err)
	}

	return m
}

// MustVector builds an Rx1 column vector (or 1xC with row=true) or fails the test.
func MustVector(t *testing.T, vals []float64, row bool, opts ...matrix.Option) *matrix.SmallMatrix[float64] {
	t.Helper()
	l := matrix.MustLayout(len(vals), 1, opts...)
	if row {
		l = matrix.MustLayout(1, len(vals), opts...)
	}
	m, err := matrix.FromVector(l, vals)
	if err != nil {
		t.Fatalf("FromVector(%v): %v", l, err)
	}

	return m
}

// MustFilled returns an r×c matrix holding 1..r*c in row-major literal order.
func MustFilled(t *testing.T, l matrix.Layout) *matrix.SmallMatrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](l)
	if err != nil {
		t.Fatalf("New(%v): %v", l, err)
	}
	err = m.Apply(func(i, j int, _ float64) float64 {
		s := l.StartIndex
		return float64((i-s)*l.Cols + (j - s) + 1)
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.SmallMatrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDims asserts the extents of m.
func MustDims(t *testing.T, m *matrix.SmallMatrix[float64], r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("dims = %dx%d, want %dx%d", m.Rows(), m.Cols(), r, c)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want errors.Is(..., %v)", err, target)
	}
}

// fixtures returns A, B and C for the given layout options.
func fixtures(t *testing.T, opts ...matrix.Option) (a, b, c *matrix.SmallMatrix[float64]) {
	t.Helper()
	l := matrix.MustLayout(N, N, opts...)

	return MustFromRows(t, l, rowsA), MustFromRows(t, l, rowsB), MustVector(t, valsC, false, opts...)
}

// column flattens an Rx1 result into a slice (row-major literal order).
func column(m *matrix.SmallMatrix[float64]) []float64 {
	out := make([]float64, 0, m.Size())
	m.Do(func(_, _ int, v float64) bool {
		out = append(out, v)
		return true
	})

	return out
}
