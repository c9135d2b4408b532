// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and the parser.
// This file intentionally contains ONLY small value types (coordinates,
// entries, shapes); the Sparse container lives in impl_sparse.go.
package matrix

import "fmt"

// Coord is a (row, col) pair used as the map key of sparse storage.
// Using two ints keeps the key compact and hash-friendly; no string
// concatenation is involved.
type Coord struct {
	Row int
	Col int
}

// Entry is a single stored non-zero value together with its coordinate.
// Entries() returns them in row-major order.
type Entry struct {
	Row   int
	Col   int
	Value int
}

// Shape packs a row and column count.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
