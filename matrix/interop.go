// SPDX-License-Identifier: MIT

// Package matrix - array interoperability: zero-copy host views, device
// uploads and the array-interface descriptor.
//
// Raw view of the backing store (always C-contiguous over the buffer):
//   - ColMajor storage: shape (Cols, Rows), element strides (Rows, 1).
//   - RowMajor storage: shape (Rows, Cols), element strides (Cols, 1).
//
// Export rule for order o:
//   - o == ColMajor: raw.T(). For ColMajor storage this is the logical
//     (Rows, Cols) view, F-contiguous.
//   - o == RowMajor: raw as is (axes swapped relative to the logical shape for
//     ColMajor storage; the logical view for RowMajor storage).
//
// AI-Hints:
//   - copy=false views alias the matrix buffer: writes through either side are
//     visible to the other. The GC keeps the buffer alive, but TransposeInPlace
//     reorders it under any live view.
//   - LogicalView always returns the (Rows, Cols) orientation regardless of storage.

package matrix

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/config"
	"github.com/katalvlaran/smallmat/device"
	"github.com/katalvlaran/smallmat/ndarray"
)

const (
	opToHost      = "ToHost"
	opToDevice    = "ToDevice"
	opToArray     = "ToArray"
	opLogicalView = "LogicalView"
)

// rawView returns the C-contiguous view of the backing buffer described above.
func (m *SmallMatrix[T]) rawView() (*ndarray.Array[T], error) {
	l := m.layout
	if l.Order == RowMajor {
		return ndarray.View(m.data, [2]int{l.Rows, l.Cols}, [2]int{l.Cols, 1})
	}

	return ndarray.View(m.data, [2]int{l.Cols, l.Rows}, [2]int{l.Rows, 1})
}

// exportView applies the order rule to the raw view, copying first when asked.
// Copying the raw view (C-contiguous) before the transpose keeps contiguity
// flags identical between the copy and view paths.
func (m *SmallMatrix[T]) exportView(op string, copy bool, order Order) (*ndarray.Array[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if !order.Valid() {
		return nil, matrixErrorf(op, fmt.Errorf("order %d: %w", int(order), ErrInvalidArgument))
	}
	raw, err := m.rawView()
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	if copy {
		raw = raw.Clone()
	}
	if order == ColMajor {
		return raw.T(), nil
	}

	return raw, nil
}

// ToHost exports the matrix as a host array view.
// MAIN DESCRIPTION:
//   - Zero-copy (copy=false) or decoupled (copy=true) 2-D view following the
//     order rule of this file.
//
// Inputs:
//   - copy: force a fresh allocation decoupled from the matrix.
//   - order: ColMajor (DefaultExportOrder) or RowMajor.
//
// Returns:
//   - *ndarray.Array[T]: the view; Shape/Strides/IsFContiguous/IsCContiguous
//     describe it exactly.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument for an unknown order.
//
// Complexity:
//   - Time O(1) for views, O(r*c) for copies.
func (m *SmallMatrix[T]) ToHost(copy bool, order Order) (*ndarray.Array[T], error) {
	view, err := m.exportView(opToHost, copy, order)
	if err != nil {
		return nil, err
	}
	logger().Debug(opToHost,
		layoutField(m.layout),
		zap.Stringer("order", order),
		zap.Bool("copy", copy),
		zap.Bool("f_contiguous", view.IsFContiguous()),
	)

	return view, nil
}

// ToDevice exports the matrix through the active device backend with the
// same descriptor semantics as ToHost.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidArgument; ErrDependencyUnavailable when no
//     device backend is registered; backend upload errors.
func (m *SmallMatrix[T]) ToDevice(copy bool, order Order) (device.Array, error) {
	// The host view is never copied here: the backend decides between
	// aliasing and snapshotting from the copy flag.
	view, err := m.exportView(opToDevice, false, order)
	if err != nil {
		return nil, err
	}
	arr, err := device.Upload(device.HostBuffer{Bytes: view.Bytes(), Interface: view.ArrayInterface()}, copy)
	if err != nil {
		return nil, matrixErrorf(opToDevice, err)
	}
	logger().Debug(opToDevice,
		layoutField(m.layout),
		zap.Stringer("order", order),
		zap.Bool("copy", copy),
		zap.String("device", arr.Device()),
	)

	return arr, nil
}

// ToArray dispatches to ToDevice when the process is configured for GPU
// execution (config.HaveGPU) and to ToHost otherwise. It reads the
// process-wide flag and never probes hardware.
func (m *SmallMatrix[T]) ToArray(copy bool, order Order) (ndarray.ArrayLike, error) {
	if config.HaveGPU() {
		arr, err := m.ToDevice(copy, order)
		if err != nil {
			return nil, matrixErrorf(opToArray, err)
		}
		return arr, nil
	}

	arr, err := m.ToHost(copy, order)
	if err != nil {
		return nil, matrixErrorf(opToArray, err)
	}

	return arr, nil
}

// ArrayInterface returns the array-interface (v3) descriptor of the raw view:
// buffer address, shape, byte strides, typestr and version. The address is
// valid while the matrix is reachable.
func (m *SmallMatrix[T]) ArrayInterface() (ndarray.ArrayInterface, error) {
	if err := ValidateNotNil(m); err != nil {
		return ndarray.ArrayInterface{}, matrixErrorf("ArrayInterface", err)
	}
	raw, err := m.rawView()
	if err != nil {
		return ndarray.ArrayInterface{}, matrixErrorf("ArrayInterface", err)
	}

	return raw.ArrayInterface(), nil
}

// LogicalView returns a zero-copy (Rows, Cols) host view whatever the
// storage order: ColMajor storage exports ColMajor, RowMajor storage exports RowMajor.
func (m *SmallMatrix[T]) LogicalView() (*ndarray.Array[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLogicalView, err)
	}

	return m.exportView(opLogicalView, false, m.layout.Order)
}

// FromArray copies an external 2-D view of shape exactly (Rows, Cols) into a
// new matrix with layout l, reading logical (i,j) so any strides are accepted.
//
// Errors:
//   - Layout errors; ErrNilMatrix for a nil view; ErrShapeMismatch;
//     ErrNaNInf under the guard.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromArray[T Element](l Layout, a *ndarray.Array[T], opts ...Option) (*SmallMatrix[T], error) {
	m, err := New[T](l, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromArray, err)
	}
	if a == nil {
		return nil, matrixErrorf(opFromArray, ErrNilMatrix)
	}
	if sh := a.Shape(); sh != [2]int{l.Rows, l.Cols} {
		return nil, matrixErrorf(opFromArray, fmt.Errorf("shape %v want [%d %d]: %w", sh, l.Rows, l.Cols, ErrShapeMismatch))
	}

	var r, c int
	var v T
	for r = 0; r < l.Rows; r++ {
		for c = 0; c < l.Cols; c++ {
			if v, err = a.At(r, c); err != nil {
				return nil, matrixErrorf(opFromArray, err)
			}
			if err = m.checkValue(ctxSet, r+l.StartIndex, c+l.StartIndex, v); err != nil {
				return nil, matrixErrorf(opFromArray, err)
			}
			m.data[l.offset(r, c)] = v
		}
	}

	return m, nil
}
