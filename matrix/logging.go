// SPDX-License-Identifier: MIT

package matrix

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/internal/logging"
)

// SetLogger installs the zap logger used by smallmat packages. Library code
// logs only at debug level (export path taken, in-place transposes, device
// backend changes). Pass nil to restore the silent default.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// logger returns the package child logger.
func logger() *zap.Logger {
	return logging.Named("matrix")
}

// layoutField renders a layout as a structured log field.
func layoutField(l Layout) zap.Field {
	return zap.Stringer("layout", l)
}
