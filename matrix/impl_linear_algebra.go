// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Sparse matrices:
// element-wise addition and subtraction, matrix multiplication, transpose
// and scalar scaling. All functions validate fail-fast and return clear
// errors on dimension mismatches.
//
// Purpose:
//   - Define canonical kernels and their operation tags.
//   - Every kernel is pure: operands are never mutated and the result is a
//     freshly allocated *Sparse that inherits the left operand's options.
//
// Notes:
//   - Results are populated through Set, so the zero-free invariant holds for
//     every result without extra pruning passes.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the union walk.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape. Allocate an empty result.
//   - Stage 2: For every key of a, write a[k] + sign*b[k].
//   - Stage 3: For every key of b missing from a, write sign*b[k].
//
// Behavior highlights:
//   - Visits the union of non-zero coordinates exactly once.
//   - Zero sums are dropped by Set.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Sparse, sign int, opTag string) (*Sparse, error) {
	if err := ValidateBinarySameShape(opTag, a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newWithOptions(a.r, a.c, a.opts)
	var err error
	for k, av := range a.entries {
		if err = res.Set(k.Row, k.Col, av+sign*b.entries[k]); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}
	for k, bv := range b.entries {
		if _, seen := a.entries[k]; seen {
			continue
		}
		if err = res.Set(k.Row, k.Col, sign*bv); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}
	a.opts.logger.V(2).Info("sparse op", "op", opTag,
		"shape", res.Shape().String(), "nnz", res.NNZ())

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (*DimensionError) on shape mismatch.
//
// Complexity:
//   - Time O(nnz(A)+nnz(B)).
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (*DimensionError) on shape mismatch.
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, opSub) }

// Mul performs the sparse matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Index B's entries by row once.
//   - Stage 3: For each (r1,c1,v1) in A, join against row c1 of B and
//     accumulate v1*v2 into a scratch map at (r1,c2).
//   - Stage 4: Store the accumulated values through Set.
//
// Behavior highlights:
//   - Intermediate sums may pass through zero; only the final value decides
//     whether a coordinate is stored.
//   - Same values as the exhaustive nnz(A)×nnz(B) scan, without visiting
//     non-matching pairs.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (*DimensionError) when A.Cols != B.Rows.
//
// Complexity:
//   - Time O(nnz(B) + Σ_{(r,k)∈A} nnz(B[k,:])), Space O(nnz(B) + nnz(C)).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	type colVal struct{ col, val int }
	byRow := make(map[int][]colVal, b.r)
	for k, v := range b.entries {
		byRow[k.Row] = append(byRow[k.Row], colVal{col: k.Col, val: v})
	}

	acc := make(map[Coord]int)
	var key Coord
	for ka, av := range a.entries {
		for _, cv := range byRow[ka.Col] {
			key = Coord{Row: ka.Row, Col: cv.col}
			acc[key] += av * cv.val
		}
	}

	res := newWithOptions(a.r, b.c, a.opts)
	var err error
	for k, v := range acc {
		if err = res.Set(k.Row, k.Col, v); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}
	a.opts.logger.V(2).Info("sparse op", "op", opMul,
		"shape", res.Shape().String(), "nnz", res.NNZ(), "pairs", len(acc))

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(nnz).
func Transpose(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newWithOptions(m.c, m.r, m.opts)
	var err error
	for k, v := range m.entries {
		if err = res.Set(k.Col, k.Row, v); err != nil {
			return nil, matrixErrorf(opTranspose, err)
		}
	}

	return res, nil
}

// Scale returns alpha*m. alpha == 0 yields an empty matrix of the same shape.
// Errors: ErrNilMatrix. Complexity: O(nnz).
func Scale(m *Sparse, alpha int) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newWithOptions(m.r, m.c, m.opts)
	var err error
	for k, v := range m.entries {
		if err = res.Set(k.Row, k.Col, alpha*v); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	return res, nil
}

// Add returns m + other. See the package-level Add.
func (m *Sparse) Add(other *Sparse) (*Sparse, error) { return Add(m, other) }

// Subtract returns m - other. See the package-level Sub.
func (m *Sparse) Subtract(other *Sparse) (*Sparse, error) { return Sub(m, other) }

// Multiply returns m × other. See the package-level Mul.
func (m *Sparse) Multiply(other *Sparse) (*Sparse, error) { return Mul(m, other) }
