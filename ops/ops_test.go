package ops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmproc/fsutil"
	"pgmproc/raster"
	"pgmproc/transform"
)

func testGrid(t *testing.T) *raster.Grid {
	t.Helper()
	g, err := raster.FromRows(255, [][]uint8{
		{10, 200, 30, 40},
		{50, 150, 70, 80},
		{90, 100, 110, 120},
	})
	require.NoError(t, err)
	return g
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	want := []string{
		Rotate, Sobel, Translate, Threshold, Magnify, Histogram,
		Contrast, Brightness, Blur, Negate, Pixelate,
	}
	assert.Equal(t, want, Names())

	for _, name := range want {
		op, err := Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, op.Apply, name)
		assert.NotEmpty(t, op.Title, name)
	}

	_, err := Lookup("sharpen")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestDefaultOutputs(t *testing.T) {
	t.Parallel()

	out := DefaultOutputs("result")
	assert.Len(t, out, len(Names()))

	tests := []struct {
		name string
		p    Params
		want string
	}{
		{Sobel, Params{}, "result/sobel.pgm"},
		{Threshold, Params{Cutoff: 3}, "result/seuillage.pgm"},
		{Blur, Params{}, "result/flooter.pgm"},
		{Rotate, Params{Angle: 45.9, Clockwise: true}, "result/rotation_45_degrees_in_clockwise.pgm"},
		{Rotate, Params{Angle: -30.2}, "result/rotation_-30_degrees_not_in_clockwise.pgm"},
		{Rotate, Params{Angle: -0.5}, "result/rotation_0_degrees_not_in_clockwise.pgm"},
		{Rotate, Params{Angle: 1e19}, "result/rotation_10000000000000000000_degrees_not_in_clockwise.pgm"},
		{Rotate, Params{Angle: math.Inf(-1)}, "result/rotation_-Inf_degrees_not_in_clockwise.pgm"},
		{Rotate, Params{Angle: math.NaN()}, "result/rotation_NaN_degrees_not_in_clockwise.pgm"},
	}
	for _, tt := range tests {
		got, err := out.Path(tt.name, tt.p)
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash(tt.want), got)
	}

	_, err := Outputs{}.Path(Sobel, Params{})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestOutputsMerge(t *testing.T) {
	t.Parallel()

	base := DefaultOutputs("result")
	merged, err := base.Merge(map[string]string{Negate: "elsewhere/neg.pgm"})
	require.NoError(t, err)
	assert.Equal(t, "elsewhere/neg.pgm", merged[Negate])
	assert.Equal(t, filepath.Join("result", "negatif.pgm"), base[Negate])

	_, err = base.Merge(map[string]string{"sharpen": "x.pgm"})
	assert.ErrorIs(t, err, ErrUnknownOperation)
	_, err = base.Merge(map[string]string{Negate: ""})
	assert.Error(t, err)
}

func newRunner(t *testing.T) (*Runner, *fsutil.MemoryFileSystem, *bytes.Buffer) {
	t.Helper()
	mfs := fsutil.NewMemoryFileSystem()
	logs := &bytes.Buffer{}
	return &Runner{
		FS:      mfs,
		Outputs: DefaultOutputs("result"),
		Logger:  slog.New(slog.NewTextHandler(logs, nil)),
	}, mfs, logs
}

func TestRunner_AllOperationsLeaveSourceUntouched(t *testing.T) {
	t.Parallel()

	r, mfs, _ := newRunner(t)
	src := testGrid(t)
	orig := src.Clone()

	p := Params{Shift: 1, Cutoff: 100, Angle: 90, Clockwise: true, Delta: 20, Block: 2}
	for _, name := range Names() {
		out, path, err := r.Apply(src, name, p)
		require.NoError(t, err, name)
		assert.True(t, orig.Equal(src), "%s modified its source", name)

		saved, err := raster.Load(mfs, path)
		require.NoError(t, err, name)
		assert.Equal(t, out.Pix, saved.Pix, name)
	}

	assert.Len(t, mfs.Files(), len(Names()))
}

func TestRunner_Threshold(t *testing.T) {
	t.Parallel()

	r, mfs, _ := newRunner(t)
	src, err := raster.FromRows(255, [][]uint8{{10, 200}, {50, 150}})
	require.NoError(t, err)

	_, path, err := r.Apply(src, Threshold, Params{Cutoff: 100})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("result", "seuillage.pgm"), path)

	data, err := mfs.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff("P5\n2 2\n255\n\x00\xff\x00\xff", string(data)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_Errors(t *testing.T) {
	t.Parallel()

	r, mfs, _ := newRunner(t)

	_, _, err := r.Apply(testGrid(t), Pixelate, Params{Block: 0})
	assert.ErrorIs(t, err, transform.ErrInvalidParameter)
	assert.Equal(t, KindParameter, Kind(err))

	_, _, err = r.Apply(nil, Negate, Params{})
	assert.ErrorIs(t, err, transform.ErrUnallocated)

	_, _, err = r.Apply(testGrid(t), "sharpen", Params{})
	assert.ErrorIs(t, err, ErrUnknownOperation)

	assert.Empty(t, mfs.Files())
}

func TestRunner_Exec(t *testing.T) {
	t.Parallel()

	r, mfs, logs := newRunner(t)

	r.Exec(testGrid(t), Pixelate, Params{Block: -3})
	assert.Contains(t, logs.String(), "operation failed")
	assert.Contains(t, logs.String(), "kind=parameter")
	assert.Empty(t, mfs.Files())

	logs.Reset()
	r.Exec(testGrid(t), Negate, Params{})
	assert.Contains(t, logs.String(), "saved")
	assert.True(t, mfs.Exists(filepath.Join("result", "negatif.pgm")))
}

type failingFS struct{ fsutil.FileSystem }

func (failingFS) Create(name string) (io.WriteCloser, error) {
	return nil, fmt.Errorf("create %s: %w", name, errors.ErrUnsupported)
}

func TestRunner_SaveFailure(t *testing.T) {
	t.Parallel()

	r, _, logs := newRunner(t)
	r.FS = failingFS{fsutil.NewMemoryFileSystem()}

	_, _, err := r.Apply(testGrid(t), Blur, Params{})
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	r.Exec(testGrid(t), Blur, Params{})
	assert.Contains(t, logs.String(), "operation failed")
}

func TestKind(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	_, err := raster.Load(mfs, "missing.pgm")
	assert.Equal(t, KindIO, Kind(err))

	mfs.WriteFile("bad.pgm", []byte("P6\n1 1\n255\n\x00\x00\x00"))
	_, err = raster.Load(mfs, "bad.pgm")
	assert.Equal(t, KindFormat, Kind(err))

	mfs.WriteFile("zero-max.pgm", []byte("P5\n1 1\n0\n\x00"))
	_, err = raster.Load(mfs, "zero-max.pgm")
	assert.Equal(t, KindFormat, Kind(err))

	_, err = raster.New(0, 0, 255)
	assert.Equal(t, KindAllocation, Kind(err))

	assert.Equal(t, KindUnknown, Kind(nil))
	assert.Equal(t, KindUnknown, Kind(errors.New("boom")))
	assert.Equal(t, "format", KindFormat.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	g, err := raster.FromRows(255, [][]uint8{{0, 10, 20, 30}})
	require.NoError(t, err)
	attrs := Summary(g)
	assert.Equal(t, []any{"width", 4, "height", 1, "max", 255}, attrs[:6])
	assert.InDelta(t, 15, attrs[7], 1e-9)
}
