// SPDX-License-Identifier: MIT

// Package logging holds the process-wide zap logger shared by smallmat
// packages. By default nothing is logged; callers opt in with Set (exposed
// publicly as matrix.SetLogger) or build one from configuration with New.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerPtr stores the active logger. Accessed atomically so Set can race
// with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Set installs l as the process-wide logger. nil restores the silent default.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// L returns the current logger. Safe for concurrent use.
func L() *zap.Logger {
	return loggerPtr.Load()
}

// Named returns a child of the current logger for one subsystem.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// New builds a zap logger for the given level ("debug", "info", "warn",
// "error") and format ("json" or "console").
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
