// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallmat/ndarray"
)

// TestViewRejectsBadStrides ensures View refuses views reaching past the slice.
func TestViewRejectsBadStrides(t *testing.T) {
	data := make([]float64, 6)

	_, err := ndarray.View(data, [2]int{2, 3}, [2]int{3, 1})
	require.NoError(t, err)

	_, err = ndarray.View(data, [2]int{3, 3}, [2]int{3, 1}) // needs 9 elements
	require.ErrorIs(t, err, ndarray.ErrBadView)

	_, err = ndarray.View(data, [2]int{0, 3}, [2]int{3, 1})
	require.ErrorIs(t, err, ndarray.ErrBadView)

	_, err = ndarray.View(data, [2]int{2, 3}, [2]int{-3, 1})
	require.ErrorIs(t, err, ndarray.ErrBadView)
}

// TestTransposeIsZeroCopy verifies T() shares storage and flips contiguity.
func TestTransposeIsZeroCopy(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.True(t, a.IsCContiguous())
	require.False(t, a.IsFContiguous())

	at := a.T()
	require.Equal(t, [2]int{3, 2}, at.Shape())
	require.Equal(t, [2]int{1, 3}, at.Strides())
	require.False(t, at.IsCContiguous())
	require.True(t, at.IsFContiguous())

	v, err := at.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// write through the transposed view, observe in the original
	require.NoError(t, at.Set(0, 1, 40))
	v, err = a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 40.0, v)
}

// TestCloneIndependence ensures Clone detaches storage and normalizes to C order.
func TestCloneIndependence(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := a.T().Clone()
	require.True(t, c.IsCContiguous())
	require.NoError(t, c.Set(0, 0, 100))

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	if diff := cmp.Diff([][]float64{{100, 3}, {2, 4}}, c.Rows()); diff != "" {
		t.Fatalf("Clone rows mismatch (-want +got):\n%s", diff)
	}
}

// TestFromRowsRagged rejects ragged literals.
func TestFromRowsRagged(t *testing.T) {
	_, err := ndarray.FromRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.FromRows[float32](nil)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestAtOutOfRange checks zero-based bounds on both axes.
func TestAtOutOfRange(t *testing.T) {
	a, err := ndarray.Zeros[float64](2, 3, false)
	require.NoError(t, err)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}} {
		_, err = a.At(ij[0], ij[1])
		require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange, "At(%d,%d)", ij[0], ij[1])
		require.ErrorIs(t, a.Set(ij[0], ij[1], 1), ndarray.ErrIndexOutOfRange)
	}
}

// TestContiguityUnitAxes follows NumPy: axes of extent 1 never break contiguity.
func TestContiguityUnitAxes(t *testing.T) {
	data := make([]float64, 6)
	row, err := ndarray.View(data, [2]int{1, 6}, [2]int{6, 1})
	require.NoError(t, err)
	require.True(t, row.IsCContiguous())
	require.True(t, row.IsFContiguous())

	col := row.T()
	require.True(t, col.IsCContiguous())
	require.True(t, col.IsFContiguous())
}

// TestReductions covers Sum, Prod, Trace and AllCloseTo.
func TestReductions(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.Equal(t, 21.0, a.Sum())
	require.Equal(t, 720.0, a.Prod())
	require.Equal(t, 6.0, a.Trace())      // 1 + 5
	require.Equal(t, 6.0, a.T().Trace()) // same diagonal through the view

	z, err := ndarray.Zeros[float64](3, 3, true)
	require.NoError(t, err)
	ok, err := z.AllCloseTo(0, 1e-9, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.AllCloseTo(0, 1e-9, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	n, err := ndarray.FromRows([][]float64{{math.NaN(), 0}})
	require.NoError(t, err)
	ok, err = n.AllCloseTo(0, 0, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never close")

	_, err = z.AllCloseTo(0, math.Inf(1), 0)
	require.ErrorIs(t, err, ndarray.ErrNaNInf)
}

// TestStringOutput checks String() formatting.
func TestStringOutput(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
	require.Equal(t, "[1, 3]\n[2, 4]\n", a.T().String())
}
