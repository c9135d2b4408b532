package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestRunAllOperations(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
	b := writeFile(t, dir, "b.txt", "rows=2\ncols=2\n(0, 0, 3)\n(1, 1, 4)\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", a, "-b", b}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "Loading matrices...")
	require.Contains(t, out, "Matrix 1 (from "+a+"):\nMatrix (2x2):\n      1       0 \n      0       2 \n")
	require.Contains(t, out, "Addition Result (Matrix 1 + Matrix 2):\nMatrix (2x2):\n      4       0 \n      0       6 \n")
	require.Contains(t, out, "Subtraction Result (Matrix 1 - Matrix 2):\nMatrix (2x2):\n     -2       0 \n      0      -2 \n")
	require.Contains(t, out, "Multiplication Result (Matrix 1 * Matrix 2):\nMatrix (2x2):\n      3       0 \n      0       8 \n")
}

func TestRunContinuesPastFailedOperation(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "rows=2\ncols=3\n(0, 2, 1)\n")
	b := writeFile(t, dir, "b.txt", "rows=2\ncols=3\n(1, 0, 5)\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", a, "-b", b}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "Addition Result")
	require.Contains(t, stdout.String(), "Subtraction Result")
	require.Contains(t, stdout.String(), "Multiplication Result")
	require.Contains(t, stderr.String(), "Multiplication Error: Mul: matrix: dimension mismatch")
	require.NotContains(t, stderr.String(), "Addition Error")
	require.Equal(t, 1, strings.Count(stderr.String(), " Error: "))
}

func TestRunLoadFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "rows=2\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", a, "-b", filepath.Join(dir, "missing.txt")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Error: Error loading matrix from file: matrix: invalid file format: rows or cols not found")
	require.NotContains(t, stdout.String(), "Performing matrix operations")
}

func TestRunStrictAndWidth(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "rows=1\ncols=1\n(3, 3, 1)\n")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"-strict", "-a", a, "-b", a}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "index out of range")

	stdout.Reset()
	stderr.Reset()
	b := writeFile(t, dir, "b.txt", "rows=1\ncols=2\n(0, 1, 9)\n")
	require.Equal(t, 0, run([]string{"-width", "3", "-a", b, "-b", b}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "Matrix (1x2):\n 0  9 \n")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"-width", "0"}, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
