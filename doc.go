// Package lvsparse is a small toolkit for sparse integer matrices: a
// dictionary-of-keys container that stores only non-zero entries, a text
// loader, and pure addition, subtraction and multiplication kernels.
//
// Layout:
//
//	matrix/        Sparse type, parser, kernels, rendering, options, sentinel errors
//	cmd/lvsparse/  CLI: load two files, print them and their sum, difference, product
//	internal/      build metadata for the CLI
//
// Quick example of the file format:
//
//	rows=2
//	cols=2
//	(0, 0, 5)
//	(1, 1, -3)
//
//	go install github.com/katalvlaran/lvsparse/cmd/lvsparse@latest
package lvsparse
