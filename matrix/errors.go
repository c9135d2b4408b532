// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the two structured error types.
// All operations return these sentinels (directly or wrapped) and tests check
// them via errors.Is / errors.As. No operation panics on user-triggered error
// conditions; panics are reserved for nonsensical Option arguments.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "matrix: ..." so it is easy to grep
// in logs. Call sites add context with matrixErrorf("<Op>", err); callers keep
// matching with errors.Is.

var (
	// ErrFormat is returned when a matrix file has a malformed header or data line.
	ErrFormat = errors.New("matrix: invalid file format")

	// ErrIO marks an underlying file-system failure while loading a matrix.
	// The original *fs.PathError stays reachable through errors.As.
	ErrIO = errors.New("matrix: i/o failure")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a (row, col) outside [0,rows)×[0,cols).
	// Only returned when the matrix was built WithStrictBounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Sparse operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Human-readable descriptions carried by FormatError.
const (
	msgHeaderNotFound = "rows or cols not found"
	msgWrongFormat    = "Input file has wrong format"
	msgBadInteger     = "integer out of range"
)

// FormatError describes what the parser expected and where it failed.
// Line is 1-based; zero means the failure is not tied to a single line.
type FormatError struct {
	Line int
	Msg  string
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrFormat.Error(), e.Line, e.Msg)
	}

	return fmt.Sprintf("%s: %s", ErrFormat.Error(), e.Msg)
}

// Is reports true for ErrFormat so errors.Is(err, ErrFormat) holds.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// DimensionError records the operation and both operand shapes of a failed
// arithmetic call. errors.Is(err, ErrDimensionMismatch) holds for it.
type DimensionError struct {
	Op    string // opAdd, opSub or opMul
	Left  Shape  // receiver / left operand
	Right Shape  // argument / right operand
}

// Error implements error. The reason mirrors the operation kind.
func (e *DimensionError) Error() string {
	reason := "matrices must have the same dimensions"
	if e.Op == opMul {
		reason = "number of columns in the first matrix must equal the number of rows in the second"
	}

	return fmt.Sprintf("%s: %s (%s vs %s)", ErrDimensionMismatch.Error(), reason, e.Left, e.Right)
}

// Is reports true for ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }
