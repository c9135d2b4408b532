// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and the parser.

package matrix_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

// MustSparse BUILDS an r×c *Sparse from explicit entries or fails the test.
// Entries are applied in order through Set.
func MustSparse(t testing.TB, r, c int, entries ...matrix.Entry) *matrix.Sparse {
	t.Helper()
	m, err := matrix.FromEntries(r, c, entries)
	require.NoError(t, err)

	return m
}

// NewFilledSparse BUILDS r×c *Sparse from a row-major flat slice (zeros skipped by Set).
func NewFilledSparse(t testing.TB, r, c int, vals []int) *matrix.Sparse {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledSparse: want %d values", r*c)
	m := matrix.New(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, vals[i*c+j]))
		}
	}

	return m
}

// RandomSparse FILLS an r×c matrix with roughly density*r*c non-zero values
// in [-9, 9], deterministic for a fixed seed.
func RandomSparse(t testing.TB, r, c int, density float64, seed int64) *matrix.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, rng.Intn(19)-9))
			}
		}
	}

	return m
}

// denseMul is the textbook O(r*n*c) product over At, used as an oracle.
func denseMul(a, b *matrix.Sparse) *matrix.Sparse {
	res := matrix.New(a.Rows(), b.Cols())
	var i, j, k, sum int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			sum = 0
			for k = 0; k < a.Cols(); k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			_ = res.Set(i, j, sum)
		}
	}

	return res
}

// RequireNoZeros asserts the zero-free storage invariant.
func RequireNoZeros(t testing.TB, m *matrix.Sparse) {
	t.Helper()
	for _, e := range m.Entries() {
		require.NotZero(t, e.Value, "stored zero at (%d,%d)", e.Row, e.Col)
	}
}

// WriteTemp writes content into a fresh file under t.TempDir and returns its path.
func WriteTemp(t testing.TB, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}
