// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and the internal options snapshot to matrix_test ONLY.
//   - Compiled only with the package tests; invisible in production builds.

var (
	// ExportedParseEntry exposes parseEntry for white-box tests.
	ExportedParseEntry = parseEntry
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicFieldWidthInvalid_TestOnly = panicFieldWidthInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Keep in sync with the Options layout.
type OptionsSnapshot struct {
	StrictBounds bool
	FieldWidth   int
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal resolution.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		StrictBounds: o.strictBounds,
		FieldWidth:   o.fieldWidth,
	}
}
