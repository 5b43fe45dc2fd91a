// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/smallmat/ndarray"
)

// TestArrayInterfaceDescriptor checks byte strides, typestr and version.
func TestArrayInterfaceDescriptor(t *testing.T) {
	a, err := ndarray.Zeros[float64](2, 3, false)
	require.NoError(t, err)

	ai := a.ArrayInterface()
	require.Equal(t, [2]int{2, 3}, ai.Shape)
	require.Equal(t, [2]int{24, 8}, ai.Strides)
	require.Equal(t, 3, ai.Version)
	require.Equal(t, 8, ai.ItemSize())
	require.Contains(t, []string{"<f8", ">f8"}, ai.TypeStr)
	require.False(t, ai.ReadOnly)
	require.Nil(t, ai.Stream)
	require.NotZero(t, ai.Data)
	require.True(t, ai.IsCContiguous())

	at := ai.T()
	require.Equal(t, [2]int{3, 2}, at.Shape)
	require.Equal(t, [2]int{8, 24}, at.Strides)
	require.True(t, at.IsFContiguous())
	require.Equal(t, ai.Data, at.Data)
	require.Equal(t, at, a.T().ArrayInterface())

	f, err := ndarray.Zeros[float32](2, 2, true)
	require.NoError(t, err)
	require.Equal(t, 4, f.ArrayInterface().ItemSize())
	require.Equal(t, [2]int{4, 8}, f.ArrayInterface().Strides)
	require.Len(t, f.Bytes(), 16)
}

// TestGonumAliasing verifies zero-copy bridging for C and F strides.
func TestGonumAliasing(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	g, aliased := ndarray.Gonum(a)
	require.True(t, aliased)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// writes through gonum land in the array
	g.(*mat.Dense).Set(0, 0, -1)
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	// column-major view goes through mat.Transpose without copying
	gt, aliased := ndarray.Gonum(a.T())
	require.True(t, aliased)
	require.Equal(t, 6.0, gt.At(2, 1))
	require.NoError(t, a.Set(1, 2, 60))
	require.Equal(t, 60.0, gt.At(2, 1))

	// strided views fall back to a copy
	s, err := ndarray.View(a.Data(), [2]int{2, 2}, [2]int{3, 2})
	require.NoError(t, err)
	gs, aliased := ndarray.Gonum(s)
	require.False(t, aliased)
	require.Equal(t, 60.0, gs.At(1, 1))
}

// TestFromGonumOracle cross-checks reductions against gonum.
func TestFromGonumOracle(t *testing.T) {
	d := mat.NewDense(3, 3, []float64{2, 0, 1, 0, 3, 0, 1, 0, 4})
	a := ndarray.FromGonum(d)

	require.Equal(t, mat.Trace(d), a.Trace())
	require.Equal(t, mat.Sum(d), a.Sum())
	require.True(t, a.IsCContiguous())
	require.False(t, math.IsNaN(a.Prod()))
}
