// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/katalvlaran/smallmat/ndarray"
)

// Common device errors.
var (
	// ErrDependencyUnavailable is returned when a device array is requested but
	// no device backend is active (or the named backend is unknown).
	ErrDependencyUnavailable = errors.New("device: array backend unavailable")

	// ErrNilBackend is returned by Register for a nil backend.
	ErrNilBackend = errors.New("device: backend must not be nil")

	// ErrReleased is returned when a released device array is used.
	ErrReleased = errors.New("device: array released")

	// ErrBadBuffer is returned when a host buffer does not cover its descriptor.
	ErrBadBuffer = errors.New("device: host buffer does not match descriptor")
)

// HostBuffer is a host-resident view handed to a backend for upload.
// Interface already describes the requested orientation (shape/strides), so
// backends never transpose.
type HostBuffer struct {
	Bytes     []byte                 // aliasing byte view of the host storage
	Interface ndarray.ArrayInterface // descriptor of the view within Bytes
}

// Validate checks that every element reachable by Interface lies in Bytes.
func (b HostBuffer) Validate() error {
	item := b.Interface.ItemSize()
	if item <= 0 || len(b.Bytes) == 0 {
		return fmt.Errorf("Validate: %w", ErrBadBuffer)
	}
	sh, st := b.Interface.Shape, b.Interface.Strides
	if sh[0] <= 0 || sh[1] <= 0 || st[0] < 0 || st[1] < 0 {
		return fmt.Errorf("Validate(shape=%v, strides=%v): %w", sh, st, ErrBadBuffer)
	}
	last := (sh[0]-1)*st[0] + (sh[1]-1)*st[1] + item
	if last > len(b.Bytes) {
		return fmt.Errorf("Validate(reach=%d, len=%d): %w", last, len(b.Bytes), ErrBadBuffer)
	}

	return nil
}

// Backend is the interface for device array backends.
// Implementations must be safe for concurrent Upload calls.
type Backend interface {
	// Name returns the backend identifier (e.g. "emulated").
	Name() string

	// Init acquires backend resources. Called once by Register.
	Init() error

	// Close releases backend resources. The backend is not used afterwards.
	Close()

	// Upload creates a device array for buf. With copy=false the backend may
	// alias host memory (unified addressing); backends that cannot alias must
	// copy and report Aliased()==false.
	Upload(buf HostBuffer, copy bool) (Array, error)
}

// Array is a device-resident 2-D array handle.
type Array interface {
	ndarray.ArrayLike

	// Device names the backend that owns the array.
	Device() string

	// Aliased reports whether the array shares memory with the host buffer.
	Aliased() bool

	// NBytes returns the size of the device allocation in bytes, 0 once released.
	NBytes() int

	// Download copies the whole device allocation into dst (len(dst)==NBytes()).
	Download(dst []byte) error

	// Release frees the device allocation; later calls fail with ErrReleased.
	Release()
}

// ReadAll downloads a device array into a fresh []T of NBytes()/sizeof(T)
// elements. Element (i,j) lives at offset i*Strides()[0] + j*Strides()[1].
func ReadAll[T ndarray.Element](a Array) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	out := make([]T, a.NBytes()/size)
	if len(out) == 0 {
		// Surfaces ErrReleased from released handles.
		if err := a.Download(nil); err != nil {
			return nil, err
		}
		return out, nil
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(out)*size)
	if err := a.Download(dst); err != nil {
		return nil, err
	}

	return out, nil
}

// ElementAt downloads a device array and returns its zero-based (i,j) element.
func ElementAt[T ndarray.Element](a Array, i, j int) (T, error) {
	var zero T
	sh, st := a.Shape(), a.Strides()
	if i < 0 || i >= sh[0] || j < 0 || j >= sh[1] {
		return zero, fmt.Errorf("ElementAt(%d,%d): %w", i, j, ndarray.ErrIndexOutOfRange)
	}
	all, err := ReadAll[T](a)
	if err != nil {
		return zero, err
	}
	off := i*st[0] + j*st[1]
	if off < 0 || off >= len(all) {
		return zero, fmt.Errorf("ElementAt(%d,%d): offset %d of %d: %w", i, j, off, len(all), ErrBadBuffer)
	}

	return all[off], nil
}
