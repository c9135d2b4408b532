// Package matrix offers a sparse integer matrix and its arithmetic.
//
// The matrix package provides:
//
//   - Sparse, a dictionary-of-keys matrix that stores only non-zero entries
//     (absence of a coordinate means 0; writing 0 deletes it).
//   - Text ingestion from the rows=/cols=/(row, col, value) format via
//     FromFile, Parse and ParseString.
//   - Pure kernels Add, Sub, Mul, Transpose and Scale that always allocate a
//     fresh result and never mutate their operands.
//   - Fixed-width rendering (Format, String, Print).
//
// Bounds are permissive by default: reads outside the shape return 0 and
// writes are stored. WithStrictBounds turns out-of-range writes into
// ErrOutOfRange.
//
// All errors are sentinels (or structured types matching them) checked with
// errors.Is: ErrFormat, ErrIO, ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix.
package matrix
