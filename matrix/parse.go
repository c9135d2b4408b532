// SPDX-License-Identifier: MIT

// Package matrix - text ingestion for Sparse.
//
// File layout (line oriented):
//
//	rows=<n>
//	cols=<n>
//	(<row>, <col>, <value>)
//	...
//
// Parsing is all-or-nothing: either the whole input is accepted or an error
// is returned and no matrix is produced.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const loadPrefix = "Error loading matrix from file"

var (
	rowsHeaderRe = regexp.MustCompile(`rows=(\d+)`)
	colsHeaderRe = regexp.MustCompile(`cols=(\d+)`)
	entryRe      = regexp.MustCompile(`\((\d+),\s*(\d+),\s*(-?\d+)\)`)
)

// FromFile loads a matrix from path.
// MAIN DESCRIPTION:
//   - One blocking read of the whole file, then Parse.
//
// Errors (always prefixed "Error loading matrix from file: "):
//   - ErrIO wrapping the *fs.PathError on open/read failure.
//   - ErrFormat (*FormatError) on a malformed header or data line.
//   - ErrOutOfRange when WithStrictBounds is set and an entry lies outside the shape.
func FromFile(path string, opts ...Option) (*Sparse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loadPrefix, fmt.Errorf("%w: %w", ErrIO, err))
	}
	m, err := ParseString(string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loadPrefix, err)
	}
	m.opts.logger.V(1).Info("loaded matrix", "path", path,
		"rows", m.r, "cols", m.c, "nnz", m.NNZ())

	return m, nil
}

// ParseString parses s with the same contract as Parse.
func ParseString(s string, opts ...Option) (*Sparse, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a matrix in the text format from r.
// Implementation:
//   - Stage 1: line 1 must contain rows=<n>, line 2 cols=<n>.
//   - Stage 2: every later line is trimmed; blank lines are skipped, the
//     rest must contain (<row>, <col>, <value>).
//   - Stage 3: entries are written through Set (zeros are never stored).
//
// Errors:
//   - ErrFormat (*FormatError) for any malformed line; ErrIO on read failure.
func Parse(r io.Reader, opts ...Option) (*Sparse, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var header [2]string
	lines := 0
	for lines < len(header) && sc.Scan() {
		header[lines] = sc.Text()
		lines++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	rm := rowsHeaderRe.FindStringSubmatch(header[0])
	cm := colsHeaderRe.FindStringSubmatch(header[1])
	if rm == nil || cm == nil {
		return nil, &FormatError{Msg: msgHeaderNotFound}
	}
	rows, err := strconv.Atoi(rm[1])
	if err != nil {
		return nil, &FormatError{Line: 1, Msg: msgBadInteger}
	}
	cols, err := strconv.Atoi(cm[1])
	if err != nil {
		return nil, &FormatError{Line: 2, Msg: msgBadInteger}
	}

	m := New(rows, cols, opts...)
	var line string
	var row, col, val int
	for sc.Scan() {
		lines++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row, col, val, err = parseEntry(line)
		if err != nil {
			return nil, &FormatError{Line: lines, Msg: msgWrongFormat}
		}
		if err = m.Set(row, col, val); err != nil {
			return nil, fmt.Errorf("line %d: %w", lines, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return m, nil
}

var errNoEntry = errors.New("no entry")

// parseEntry extracts (row, col, value) from a trimmed data line.
func parseEntry(line string) (row, col, val int, err error) {
	sm := entryRe.FindStringSubmatch(line)
	if sm == nil {
		return 0, 0, 0, errNoEntry
	}
	if row, err = strconv.Atoi(sm[1]); err != nil {
		return 0, 0, 0, err
	}
	if col, err = strconv.Atoi(sm[2]); err != nil {
		return 0, 0, 0, err
	}
	if val, err = strconv.Atoi(sm[3]); err != nil {
		return 0, 0, 0, err
	}

	return row, col, val, nil
}
