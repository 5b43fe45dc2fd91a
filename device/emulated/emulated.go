// SPDX-License-Identifier: MIT

// Package emulated provides a host-memory device backend.
//
// It models a unified-memory accelerator: copy=false uploads alias the host
// buffer (writes on either side are visible to the other) and copy=true
// uploads snapshot the bytes into a backend-owned allocation. Importing the
// package registers its factory under Name; call device.Use(emulated.Name)
// to activate it.
package emulated

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/device"
	"github.com/katalvlaran/smallmat/internal/logging"
	"github.com/katalvlaran/smallmat/ndarray"
)

// Name is the backend identifier used with device.Use.
const Name = "emulated"

// ErrNotInitialized is returned by Upload before Init or after Close.
var ErrNotInitialized = errors.New("emulated: backend not initialized")

func init() {
	device.RegisterFactory(Name, func() device.Backend { return New() })
}

// Backend is the emulated device backend.
type Backend struct {
	mu    sync.Mutex
	ready bool
	live  int64 // bytes held by copy=true allocations
	log   *zap.Logger
}

var _ device.Backend = (*Backend)(nil)

// New returns an uninitialized backend.
func New() *Backend {
	return &Backend{}
}

// Name returns "emulated".
func (b *Backend) Name() string { return Name }

// Init marks the backend ready.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = true
	b.log = logging.Named("device." + Name)

	return nil
}

// Close marks the backend closed. Arrays already handed out stay readable.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = false
}

// LiveBytes reports bytes currently held by copied (non-aliased) arrays.
func (b *Backend) LiveBytes() int64 {
	return atomic.LoadInt64(&b.live)
}

// Upload implements device.Backend.
func (b *Backend) Upload(buf device.HostBuffer, copy bool) (device.Array, error) {
	b.mu.Lock()
	ready, log := b.ready, b.log
	b.mu.Unlock()
	if !ready {
		return nil, ErrNotInitialized
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	mem := buf.Bytes
	if copy {
		mem = append([]byte(nil), buf.Bytes...)
		atomic.AddInt64(&b.live, int64(len(mem)))
	}

	ai := buf.Interface
	ai.Data = uintptr(unsafe.Pointer(&mem[0]))
	ai.ReadOnly = false
	ai.Stream = nil

	a := &Array{owner: b, mem: mem, ai: ai, aliased: !copy}
	if log != nil {
		log.Debug("allocated", zap.Int("bytes", len(mem)), zap.Bool("aliased", a.aliased))
	}

	return a, nil
}

// Array is a device array held in host memory.
type Array struct {
	owner    *Backend
	mem      []byte
	ai       ndarray.ArrayInterface
	aliased  bool
	released atomic.Bool
}

var _ device.Array = (*Array)(nil)

// Shape returns the logical (rows, cols).
func (a *Array) Shape() [2]int { return a.ai.Shape }

// Strides returns element strides.
func (a *Array) Strides() [2]int {
	item := a.ai.ItemSize()
	return [2]int{a.ai.Strides[0] / item, a.ai.Strides[1] / item}
}

// IsCContiguous reports row-major contiguity.
func (a *Array) IsCContiguous() bool { return a.ai.IsCContiguous() }

// IsFContiguous reports column-major contiguity.
func (a *Array) IsFContiguous() bool { return a.ai.IsFContiguous() }

// ArrayInterface returns the device descriptor.
func (a *Array) ArrayInterface() ndarray.ArrayInterface { return a.ai }

// Device returns "emulated".
func (a *Array) Device() string { return Name }

// Aliased reports whether the array shares the host buffer.
func (a *Array) Aliased() bool { return a.aliased }

// NBytes returns the allocation size, 0 once released.
func (a *Array) NBytes() int {
	if a.released.Load() {
		return 0
	}

	return len(a.mem)
}

// Download copies the allocation into dst.
func (a *Array) Download(dst []byte) error {
	if a.released.Load() {
		return device.ErrReleased
	}
	if len(dst) != len(a.mem) {
		return fmt.Errorf("Download(len=%d, want %d): %w", len(dst), len(a.mem), device.ErrBadBuffer)
	}
	copy(dst, a.mem)

	return nil
}

// Release drops the allocation. Safe to call more than once and concurrently
// with Download: mem is never written after Upload, only the released flag.
func (a *Array) Release() {
	if a.released.Swap(true) {
		return
	}
	if !a.aliased {
		atomic.AddInt64(&a.owner.live, -int64(len(a.mem)))
	}
}
