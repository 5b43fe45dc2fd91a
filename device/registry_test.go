// SPDX-License-Identifier: MIT

package device_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallmat/device"
	"github.com/katalvlaran/smallmat/device/emulated"
	"github.com/katalvlaran/smallmat/ndarray"
)

// stubBackend records lifecycle calls and optionally fails Init.
type stubBackend struct {
	name    string
	initErr error
	inits   int
	closes  int
}

func (s *stubBackend) Name() string { return s.name }
func (s *stubBackend) Close()       { s.closes++ }

func (s *stubBackend) Init() error {
	s.inits++
	return s.initErr
}

func (s *stubBackend) Upload(device.HostBuffer, bool) (device.Array, error) {
	return nil, errors.New("stub: no uploads")
}

func hostBuffer(t *testing.T) device.HostBuffer {
	t.Helper()
	a, err := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	return device.HostBuffer{Bytes: a.Bytes(), Interface: a.ArrayInterface()}
}

func TestUploadWithoutBackend(t *testing.T) {
	device.Unregister()
	require.Nil(t, device.Current())

	_, err := device.Upload(hostBuffer(t), false)
	require.ErrorIs(t, err, device.ErrDependencyUnavailable)
}

func TestRegisterLifecycle(t *testing.T) {
	t.Cleanup(device.Unregister)

	require.ErrorIs(t, device.Register(nil), device.ErrNilBackend)

	bad := &stubBackend{name: "bad", initErr: errors.New("no adapter")}
	require.Error(t, device.Register(bad))
	require.Equal(t, 1, bad.inits)
	require.Nil(t, device.Current())

	first := &stubBackend{name: "first"}
	second := &stubBackend{name: "second"}
	require.NoError(t, device.Register(first))
	require.Equal(t, "first", device.Current().Name())

	// swapping closes the previous backend
	require.NoError(t, device.Register(second))
	require.Equal(t, 1, first.closes)
	require.Equal(t, "second", device.Current().Name())

	device.Unregister()
	require.Equal(t, 1, second.closes)
	require.Nil(t, device.Current())
}

func TestUseByName(t *testing.T) {
	t.Cleanup(device.Unregister)

	require.Contains(t, device.Available(), emulated.Name)
	require.ErrorIs(t, device.Use("cuda"), device.ErrDependencyUnavailable)

	require.NoError(t, device.Use(emulated.Name))
	require.Equal(t, emulated.Name, device.Current().Name())
}

func TestHostBufferValidate(t *testing.T) {
	buf := hostBuffer(t)
	require.NoError(t, buf.Validate())

	short := buf
	short.Bytes = buf.Bytes[:40]
	require.ErrorIs(t, short.Validate(), device.ErrBadBuffer)

	require.ErrorIs(t, device.HostBuffer{}.Validate(), device.ErrBadBuffer)
}

func TestUploadReadBack(t *testing.T) {
	t.Cleanup(device.Unregister)
	require.NoError(t, device.Use(emulated.Name))

	buf := hostBuffer(t)
	arr, err := device.Upload(buf, true)
	require.NoError(t, err)
	require.Equal(t, [2]int{2, 3}, arr.Shape())
	require.True(t, arr.IsCContiguous())

	all, err := device.ReadAll[float64](arr)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, all)

	v, err := device.ElementAt[float64](arr, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = device.ElementAt[float64](arr, 2, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

func TestReadAfterRelease(t *testing.T) {
	t.Cleanup(device.Unregister)
	require.NoError(t, device.Use(emulated.Name))

	for _, cp := range []bool{true, false} {
		arr, err := device.Upload(hostBuffer(t), cp)
		require.NoError(t, err)
		arr.Release()

		all, err := device.ReadAll[float64](arr)
		require.ErrorIs(t, err, device.ErrReleased, "copy=%v", cp)
		require.Nil(t, all)

		_, err = device.ElementAt[float64](arr, 0, 0)
		require.ErrorIs(t, err, device.ErrReleased, "copy=%v", cp)
	}
}

// shortArray reports a descriptor larger than the memory it downloads.
type shortArray struct {
	device.Array
}

func (s shortArray) NBytes() int { return 8 }

func (s shortArray) Download(dst []byte) error {
	clear(dst)
	return nil
}

func TestElementAtOutsideAllocation(t *testing.T) {
	t.Cleanup(device.Unregister)
	require.NoError(t, device.Use(emulated.Name))

	arr, err := device.Upload(hostBuffer(t), true)
	require.NoError(t, err)

	v, err := device.ElementAt[float64](shortArray{arr}, 0, 0)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = device.ElementAt[float64](shortArray{arr}, 1, 2)
	require.ErrorIs(t, err, device.ErrBadBuffer)
}
