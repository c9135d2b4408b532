// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format writes rows lines of cols cells each. Every cell is the value
// followed by one space, right-aligned to the configured field width
// (DefaultFieldWidth = 8). Longer cells are written unpadded, never truncated.
// Zeros are rendered explicitly. Complexity: O(rows*cols).
func (m *Sparse) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	width := m.opts.fieldWidth
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if _, err := fmt.Fprintf(bw, "%*s", width, strconv.Itoa(m.At(i, j))+" "); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders the grid produced by Format.
func (m *Sparse) String() string {
	var b strings.Builder
	_ = m.Format(&b) // strings.Builder never fails

	return b.String()
}

// Print writes "Matrix (RxC):" followed by the grid to stdout.
func (m *Sparse) Print() error { return m.Fprint(os.Stdout) }

// Fprint writes the Print output to w.
func (m *Sparse) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Matrix (%s):\n", m.Shape()); err != nil {
		return err
	}

	return m.Format(w)
}
