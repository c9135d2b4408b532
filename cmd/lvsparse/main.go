// Command lvsparse loads two sparse matrices from text files, prints them,
// and prints their sum, difference and product. A failing operation is
// reported on stderr and the remaining operations still run.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvsparse/internal/buildinfo"
	"github.com/katalvlaran/lvsparse/matrix"
)

var (
	version    = "dev"
	commitHash = "n/a"
	buildDate  = "<unknown>"
)

const (
	defaultFirstPath  = "sample_inputs/matrixfile1.txt"
	defaultSecondPath = "sample_inputs/matrixfile3.txt"
)

type operation struct {
	title  string // "Addition"
	symbol string // "+"
	apply  func(a, b *matrix.Sparse) (*matrix.Sparse, error)
}

var operations = []operation{
	{title: "Addition", symbol: "+", apply: matrix.Add},
	{title: "Subtraction", symbol: "-", apply: matrix.Sub},
	{title: "Multiplication", symbol: "*", apply: matrix.Mul},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests.
// Exit codes: 0 success (even if single operations fail), 1 load failure, 2 usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvsparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	firstPath := fs.String("a", defaultFirstPath, "Path of the first matrix file.")
	secondPath := fs.String("b", defaultSecondPath, "Path of the second matrix file.")
	strict := fs.Bool("strict", false, "Reject entries outside the declared rows/cols.")
	width := fs.Int("width", matrix.DefaultFieldWidth, "Cell width used when printing matrices.")
	verbosity := fs.Int("v", 0, "Log verbosity (0 = errors and info only).")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *width < 1 {
		fmt.Fprintln(stderr, "Error: -width must be >= 1")
		return 2
	}

	zl := newZapLogger(stderr, *verbosity)
	defer func() { _ = zl.Sync() }()
	log := zapr.NewLogger(zl).WithName("lvsparse")

	buildInfo := buildinfo.BuildInfo{Version: version, CommitHash: commitHash, BuildDate: buildDate}
	log.V(1).Info(fmt.Sprintf("starting lvsparse %s", buildInfo.String()))

	opts := []matrix.Option{matrix.WithLogger(log), matrix.WithFieldWidth(*width)}
	if *strict {
		opts = append(opts, matrix.WithStrictBounds())
	}

	fmt.Fprintln(stdout, "Loading matrices...")
	m1, err := matrix.FromFile(*firstPath, opts...)
	if err != nil {
		return loadFailed(log, stderr, *firstPath, err)
	}
	m2, err := matrix.FromFile(*secondPath, opts...)
	if err != nil {
		return loadFailed(log, stderr, *secondPath, err)
	}

	if err = printMatrix(stdout, fmt.Sprintf("Matrix 1 (from %s)", *firstPath), m1); err != nil {
		return loadFailed(log, stderr, *firstPath, err)
	}
	if err = printMatrix(stdout, fmt.Sprintf("Matrix 2 (from %s)", *secondPath), m2); err != nil {
		return loadFailed(log, stderr, *secondPath, err)
	}

	fmt.Fprintln(stdout, "\nPerforming matrix operations...")
	failed := runOperations(log, stdout, stderr, m1, m2)
	log.V(1).Info("done", "failed-operations", failed)

	return 0
}

// runOperations applies every operation independently and returns how many failed.
func runOperations(log logr.Logger, stdout, stderr io.Writer, a, b *matrix.Sparse) int {
	failed := 0
	for _, op := range operations {
		fmt.Fprintf(stdout, "\n%s Result (Matrix 1 %s Matrix 2):\n", op.title, op.symbol)
		res, err := op.apply(a, b)
		if err != nil {
			failed++
			log.V(1).Info("operation failed", "op", op.title, "error", err.Error())
			fmt.Fprintf(stderr, "%s Error: %v\n", op.title, err)
			continue
		}
		if err = res.Fprint(stdout); err != nil {
			failed++
			fmt.Fprintf(stderr, "%s Error: %v\n", op.title, err)
		}
	}

	return failed
}

func printMatrix(w io.Writer, title string, m *matrix.Sparse) error {
	if _, err := fmt.Fprintf(w, "\n%s:\n", title); err != nil {
		return err
	}

	return m.Fprint(w)
}

func loadFailed(log logr.Logger, stderr io.Writer, path string, err error) int {
	log.Error(err, "unable to load matrix", "path", path)
	fmt.Fprintf(stderr, "Error: %v\n", err)

	return 1
}

// newZapLogger builds a development-style console logger on w. zapr maps
// logr V(n) to zap level -n, so verbosity v enables V(0)..V(v).
func newZapLogger(w io.Writer, verbosity int) *zap.Logger {
	if verbosity < 0 {
		verbosity = 0
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)

	return zap.New(core, zap.AddStacktrace(zapcore.DPanicLevel))
}
