// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// Policy:
//   - Facades never change the semantics of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns an empty rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) *Sparse { return New(rows, cols, opts...) }

// NewIdentity returns I_n (ones on the diagonal).
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) *Sparse {
	I := New(n, n, opts...)
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1) // in bounds by construction
	}

	return I
}

// FromEntries builds a rows×cols matrix from explicit entries, applied in
// order through Set (later duplicates overwrite earlier ones; zeros delete).
// Errors: ErrOutOfRange under WithStrictBounds.
func FromEntries(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	m := New(rows, cols, opts...)
	for _, e := range entries {
		if err := m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ZerosLike returns an empty matrix with the same shape and options as m.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newWithOptions(m.r, m.c, m.opts), nil
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Sparse) (*Sparse, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: alpha*m.
func ScaleBy(m *Sparse, alpha int) (*Sparse, error) { return Scale(m, alpha) }
