// SPDX-License-Identifier: MIT

package device

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/internal/logging"
)

// Factory constructs a fresh, uninitialized backend.
type Factory func() Backend

var (
	mu        sync.RWMutex
	active    Backend
	factories = map[string]Factory{}
)

// RegisterFactory makes a backend constructor available under name for Use.
// Registering the same name twice replaces the earlier factory.
func RegisterFactory(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	mu.Lock()
	factories[name] = f
	mu.Unlock()
}

// Available returns the sorted names of registered factories.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Use constructs the backend registered under name and makes it active.
// An unknown name yields ErrDependencyUnavailable.
func Use(name string) error {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("Use(%q): %w", name, ErrDependencyUnavailable)
	}

	return Register(f())
}

// Register initializes b and makes it the active backend.
//
// Only one backend is active; a previously active backend is closed after
// the swap. If Init fails, b is not registered and the error is returned.
func Register(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("Register(%s): %w", b.Name(), err)
	}

	mu.Lock()
	old := active
	active = b
	mu.Unlock()

	if old != nil {
		old.Close()
	}
	logging.Named("device").Debug("backend registered", zap.String("backend", b.Name()))

	return nil
}

// Unregister closes and removes the active backend, if any.
func Unregister() {
	mu.Lock()
	old := active
	active = nil
	mu.Unlock()

	if old != nil {
		old.Close()
		logging.Named("device").Debug("backend unregistered", zap.String("backend", old.Name()))
	}
}

// Current returns the active backend, or nil when none is registered.
func Current() Backend {
	mu.RLock()
	defer mu.RUnlock()

	return active
}

// Upload validates buf and hands it to the active backend.
func Upload(buf HostBuffer, copy bool) (Array, error) {
	b := Current()
	if b == nil {
		return nil, fmt.Errorf("Upload: %w", ErrDependencyUnavailable)
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	arr, err := b.Upload(buf, copy)
	if err != nil {
		return nil, fmt.Errorf("Upload(%s): %w", b.Name(), err)
	}
	sh := arr.Shape()
	logging.Named("device").Debug("uploaded",
		zap.String("backend", b.Name()),
		zap.Ints("shape", sh[:]),
		zap.Bool("copy", copy),
		zap.Bool("aliased", arr.Aliased()),
	)

	return arr, nil
}
