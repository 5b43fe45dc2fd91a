// SPDX-License-Identifier: MIT

package emulated

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallmat/device"
	"github.com/katalvlaran/smallmat/ndarray"
)

func readyBackend(t *testing.T) *Backend {
	t.Helper()
	b := New()
	require.NoError(t, b.Init())
	t.Cleanup(b.Close)

	return b
}

func TestUploadBeforeInit(t *testing.T) {
	a, err := ndarray.Zeros[float64](2, 2, true)
	require.NoError(t, err)

	_, err = New().Upload(device.HostBuffer{Bytes: a.Bytes(), Interface: a.ArrayInterface()}, false)
	require.ErrorIs(t, err, ErrNotInitialized)
}

// TestAliasingUpload checks that copy=false shares memory in both directions.
func TestAliasingUpload(t *testing.T) {
	b := readyBackend(t)
	host, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	arr, err := b.Upload(device.HostBuffer{Bytes: host.Bytes(), Interface: host.ArrayInterface()}, false)
	require.NoError(t, err)
	require.True(t, arr.Aliased())
	require.Equal(t, host.ArrayInterface().Data, arr.ArrayInterface().Data)
	require.Zero(t, b.LiveBytes())

	require.NoError(t, host.Set(0, 1, 20))
	v, err := device.ElementAt[float64](arr, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 20.0, v)
}

// TestCopyUpload checks that copy=true snapshots and tracks allocations.
func TestCopyUpload(t *testing.T) {
	b := readyBackend(t)
	host, err := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	view := host.T()
	arr, err := b.Upload(device.HostBuffer{Bytes: view.Bytes(), Interface: view.ArrayInterface()}, true)
	require.NoError(t, err)
	require.False(t, arr.Aliased())
	require.NotEqual(t, host.ArrayInterface().Data, arr.ArrayInterface().Data)
	require.Equal(t, int64(32), b.LiveBytes())

	// transposed descriptor survives the upload
	require.True(t, arr.IsFContiguous())
	require.False(t, arr.IsCContiguous())
	require.Equal(t, [2]int{1, 2}, arr.Strides())
	v, err := device.ElementAt[float64](arr, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	require.NoError(t, host.Set(1, 0, 30))
	v, err = device.ElementAt[float64](arr, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	arr.Release()
	arr.Release()
	require.Zero(t, b.LiveBytes())
	require.ErrorIs(t, arr.Download(make([]byte, 32)), device.ErrReleased)
	require.Zero(t, arr.NBytes())
	_, err = device.ElementAt[float64](arr, 0, 1)
	require.ErrorIs(t, err, device.ErrReleased)
}

func TestReleaseConcurrentWithDownload(t *testing.T) {
	b := readyBackend(t)
	host, err := ndarray.Zeros[float64](4, 4, false)
	require.NoError(t, err)
	arr, err := b.Upload(device.HostBuffer{Bytes: host.Bytes(), Interface: host.ArrayInterface()}, true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- arr.Download(make([]byte, 128))
		}()
	}
	arr.Release()
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, device.ErrReleased)
		}
	}
	require.Zero(t, b.LiveBytes())
}

func TestDownloadLengthMismatch(t *testing.T) {
	b := readyBackend(t)
	host, err := ndarray.Zeros[float32](1, 3, false)
	require.NoError(t, err)

	arr, err := b.Upload(device.HostBuffer{Bytes: host.Bytes(), Interface: host.ArrayInterface()}, false)
	require.NoError(t, err)
	require.Equal(t, 12, arr.NBytes())
	require.Equal(t, Name, arr.Device())
	require.ErrorIs(t, arr.Download(make([]byte, 4)), device.ErrBadBuffer)
}
