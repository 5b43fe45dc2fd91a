// SPDX-License-Identifier: MIT

// Package ndarray - array interface v3 descriptor.
//
// Purpose:
//   - Describe a view as (data address, shape, byte strides, typestr) so that
//     consumers outside the Go type system (device backends, FFI) agree on the
//     exact memory offset of every element.
//
// Notes:
//   - Shape and strides are given in C index order (axis 0 = slowest in a
//     C-contiguous view), as NumPy's __array_interface__ protocol defines them.

package ndarray

import (
	"strconv"
	"unsafe"
)

// ArrayInterfaceVersion is the protocol version reported in descriptors.
const ArrayInterfaceVersion = 3

// ArrayInterface is the Go rendition of the array interface v3 dictionary.
// Device descriptors additionally carry Stream (nil = no synchronization).
type ArrayInterface struct {
	Data     uintptr // address of element (0,0) of the underlying buffer
	ReadOnly bool    // always false for SmallMatrix exports
	Shape    [2]int  // (rows, cols)
	Strides  [2]int  // byte strides per axis
	TypeStr  string  // e.g. "<f8"
	Version  int     // ArrayInterfaceVersion
	Stream   *int    // device only; nil means no stream synchronization
}

// ItemSize returns the element width encoded in TypeStr (0 if malformed).
func (ai ArrayInterface) ItemSize() int {
	if len(ai.TypeStr) < 3 {
		return 0
	}
	n, err := strconv.Atoi(ai.TypeStr[2:])
	if err != nil {
		return 0
	}

	return n
}

// T returns the descriptor of the transposed view (no data movement).
func (ai ArrayInterface) T() ArrayInterface {
	out := ai
	out.Shape = [2]int{ai.Shape[1], ai.Shape[0]}
	out.Strides = [2]int{ai.Strides[1], ai.Strides[0]}
	return out
}

// IsCContiguous reports C contiguity of the described view.
func (ai ArrayInterface) IsCContiguous() bool {
	c, _ := contiguity(ai.Shape, ai.Strides, ai.ItemSize())
	return c
}

// IsFContiguous reports F contiguity of the described view.
func (ai ArrayInterface) IsFContiguous() bool {
	_, f := contiguity(ai.Shape, ai.Strides, ai.ItemSize())
	return f
}

// ArrayInterface describes the view. Data is the address of data[0]; the
// descriptor stays valid while the backing slice is reachable.
func (a *Array[T]) ArrayInterface() ArrayInterface {
	item := itemSize[T]()
	return ArrayInterface{
		Data:     uintptr(unsafe.Pointer(&a.data[0])),
		ReadOnly: false,
		Shape:    a.shape,
		Strides:  [2]int{a.strides[0] * item, a.strides[1] * item},
		TypeStr:  TypeStr[T](),
		Version:  ArrayInterfaceVersion,
	}
}

// Bytes returns the backing storage reinterpreted as bytes (aliasing).
// Device backends use it to upload or alias host memory.
func (a *Array[T]) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.data[0])), len(a.data)*itemSize[T]())
}

// TypeStr returns the typestr of T: byte order, kind 'f', item size.
func TypeStr[T Element]() string {
	return string(byteOrderMark()) + "f" + strconv.Itoa(itemSize[T]())
}

func itemSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// byteOrderMark returns '<' on little-endian hosts and '>' otherwise.
func byteOrderMark() byte {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return '<'
	}

	return '>'
}
