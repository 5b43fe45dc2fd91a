// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot and the offset formula.
//
// Purpose:
//   - Expose resolved Options and Layout.offset to matrix_test without
//     widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the internal Options fields.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Order          Order
	StartIndex     int
	ValidateNaNInf bool
	RTol, ATol     float64
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Order:          o.order,
		StartIndex:     o.startIndex,
		ValidateNaNInf: o.validateNaNInf,
		RTol:           o.rtol,
		ATol:           o.atol,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// ExportedOffset exposes Layout.offset (zero-based r, c).
var ExportedOffset = Layout.offset
