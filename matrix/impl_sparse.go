// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) & accessors.
//
// Purpose:
//   - Store only non-zero integer entries keyed by Coord{Row, Col}.
//   - Guarantee the zero-free invariant at a single write site (Set).
//   - Keep iteration deterministic where it is observable (Entries, Do, String).
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) expected; Clone: O(nnz); Entries/Do: O(nnz log nnz).

package matrix

import (
	"fmt"
	"sort"
)

// ---------- error context tags ----------

const (
	ctxSet = "Set" // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is an integer matrix that stores non-zero entries only.
//   - r,c hold dimensions (rows, cols), fixed at construction.
//   - entries never contains a zero value; absence means 0.
//   - opts is the resolved configuration (bounds policy, width, logger).
type Sparse struct {
	r, c    int
	entries map[Coord]int
	opts    Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// New creates an empty rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor; never fails.
//
// Behavior highlights:
//   - Negative dimensions are accepted as-is (permissive policy). Under
//     WithStrictBounds such a matrix rejects every write with ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func New(rows, cols int, opts ...Option) *Sparse {
	return newWithOptions(rows, cols, gatherOptions(opts...))
}

// newWithOptions is the internal constructor used by kernels so results
// inherit an already-resolved configuration.
func newWithOptions(rows, cols int, o Options) *Sparse {
	return &Sparse{
		r:       rows,
		c:       cols,
		entries: make(map[Coord]int),
		opts:    o,
	}
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Sparse) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// NNZ returns the number of stored (non-zero) entries.
func (m *Sparse) NNZ() int { return len(m.entries) }

// Options returns the resolved configuration of m.
func (m *Sparse) Options() Options { return m.opts }

// inBounds reports whether (row, col) lies inside the declared shape.
func (m *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value stored at (row, col), or 0 when absent.
// Total function: out-of-range coordinates simply read 0.
// Complexity: O(1) expected.
func (m *Sparse) At(row, col int) int {
	return m.entries[Coord{Row: row, Col: col}]
}

// Set stores v at (row, col); a zero v deletes any existing entry.
// MAIN DESCRIPTION:
//   - Single write site that maintains the zero-free invariant.
//
// Errors:
//   - ErrOutOfRange only when built WithStrictBounds and (row, col) is outside the shape.
//
// Complexity:
//   - Time O(1) expected, Space O(1).
func (m *Sparse) Set(row, col, v int) error {
	if m.opts.strictBounds && !m.inBounds(row, col) {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	key := Coord{Row: row, Col: col}
	if v == 0 {
		delete(m.entries, key)

		return nil
	}
	m.entries[key] = v

	return nil
}

// GetElement is an alias for At.
func (m *Sparse) GetElement(row, col int) int { return m.At(row, col) }

// SetElement is an alias for Set.
func (m *Sparse) SetElement(row, col, v int) error { return m.Set(row, col, v) }

// Has reports whether a non-zero entry is stored at (row, col).
func (m *Sparse) Has(row, col int) bool {
	_, ok := m.entries[Coord{Row: row, Col: col}]

	return ok
}

// Clone returns a deep copy with the same shape, entries and options.
// Mutations of the clone never affect m.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	cp := make(map[Coord]int, len(m.entries))
	for k, v := range m.entries {
		cp[k] = v
	}

	return &Sparse{r: m.r, c: m.c, entries: cp, opts: m.opts}
}

// Equal reports whether m and other have the same shape and the same stored entries.
// Options are not compared. A nil receiver equals only a nil argument.
func (m *Sparse) Equal(other *Sparse) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		if other.entries[k] != v {
			return false
		}
	}

	return true
}

// Entries returns a snapshot of the stored entries in row-major order.
// The slice is freshly allocated; callers may keep or modify it.
// Complexity: O(nnz log nnz).
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Do visits each stored entry in row-major order and calls f(row, col, v).
// Stops early when f returns false. f must not mutate m.
func (m *Sparse) Do(f func(row, col, v int) bool) {
	for _, e := range m.Entries() {
		if !f(e.Row, e.Col, e.Value) {
			return
		}
	}
}
