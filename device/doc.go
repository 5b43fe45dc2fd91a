// SPDX-License-Identifier: MIT

// Package device hosts the device-array backend registry used by
// SmallMatrix.ToDevice and SmallMatrix.ToArray.
//
// Exactly one backend is active per process. Backends announce themselves
// with RegisterFactory (usually from init via a blank import) and become
// active through Use or Register:
//
//	import _ "github.com/katalvlaran/smallmat/device/emulated"
//
//	if err := device.Use(emulated.Name); err != nil { ... }
//
// When no backend is active every device request fails with
// ErrDependencyUnavailable; nothing probes hardware.
package device
