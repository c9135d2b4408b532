package matrix_test

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	got := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.OptionsSnapshot{
		StrictBounds: matrix.DefaultStrictBounds,
		FieldWidth:   matrix.DefaultFieldWidth,
	}, got)

	o := matrix.NewMatrixOptions()
	require.False(t, o.StrictBounds())
	require.Equal(t, 8, o.FieldWidth())
}

func TestOptionsLastWriterWins(t *testing.T) {
	got := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithStrictBounds(),
		matrix.WithFieldWidth(3),
		matrix.WithPermissiveBounds(),
		matrix.WithFieldWidth(12),
		nil,
	)
	require.False(t, got.StrictBounds)
	require.Equal(t, 12, got.FieldWidth)
}

func TestWithFieldWidthPanics(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicFieldWidthInvalid_TestOnly, func() {
		_ = matrix.WithFieldWidth(0)
	})
}

// TestWithLogger checks that loading and arithmetic emit records at the
// documented verbosity levels.
func TestWithLogger(t *testing.T) {
	var msgs []string
	l := funcr.New(func(prefix, args string) {
		msgs = append(msgs, args)
	}, funcr.Options{Verbosity: 2})

	p := WriteTemp(t, "m.txt", "rows=2\ncols=2\n(0, 0, 1)\n")
	m, err := matrix.FromFile(p, matrix.WithLogger(l))
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0], `"msg"="loaded matrix"`)
	require.Contains(t, msgs[0], `"nnz"=1`)

	_, err = m.Multiply(m)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[1], `"op"="Mul"`)
}
