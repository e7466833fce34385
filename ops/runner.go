package ops

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"pgmproc/fsutil"
	"pgmproc/raster"
	"pgmproc/transform"
)

// ErrorKind classifies why an operation failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindIO
	KindFormat
	KindAllocation
	KindParameter
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindFormat:
		return "format"
	case KindAllocation:
		return "allocation"
	case KindParameter:
		return "parameter"
	}
	return "unknown"
}

// Kind reports the ErrorKind of err.
func Kind(err error) ErrorKind {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, transform.ErrInvalidParameter),
		errors.Is(err, transform.ErrUnallocated),
		errors.Is(err, transform.ErrEmptyHistogram),
		errors.Is(err, ErrUnknownOperation):
		return KindParameter
	case errors.Is(err, raster.ErrInvalidDimensions):
		return KindAllocation
	case errors.Is(err, raster.ErrUnknownFormat),
		errors.Is(err, raster.ErrFormat),
		errors.Is(err, raster.ErrTruncated),
		errors.Is(err, raster.ErrUnsupported):
		return KindFormat
	case errors.As(err, &pathErr):
		return KindIO
	}
	return KindUnknown
}

// Runner applies operations to working copies of a source grid and writes
// each result to its configured output.
type Runner struct {
	FS      fsutil.FileSystem
	Outputs Outputs
	Logger  *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Apply runs the named operation on a copy of src and saves the result. src
// is never modified.
func (r *Runner) Apply(src *raster.Grid, name string, p Params) (*raster.Grid, string, error) {
	op, err := Lookup(name)
	if err != nil {
		return nil, "", err
	}

	path, err := r.Outputs.Path(name, p)
	if err != nil {
		return nil, "", err
	}

	if !src.Allocated() {
		return nil, "", fmt.Errorf("could not apply %s: %w", name, transform.ErrUnallocated)
	}

	out, err := op.Apply(src.Clone(), p)
	if err != nil {
		return nil, "", fmt.Errorf("could not apply %s: %w", name, err)
	}

	if err = raster.Save(r.FS, out, path); err != nil {
		return nil, "", err
	}
	return out, path, nil
}

// Exec is Apply for callers that only want the side effect: failures are
// logged and otherwise dropped.
func (r *Runner) Exec(src *raster.Grid, name string, p Params) {
	logger := r.logger().With("op", name)

	out, path, err := r.Apply(src, name, p)
	if err != nil {
		logger.Error("operation failed", "kind", Kind(err), "error", err)
		return
	}
	logger.Info("saved", "path", path, "width", out.Width, "height", out.Height)
}

// Summary returns log attributes describing g.
func Summary(g *raster.Grid) []any {
	h, err := transform.ComputeHistogram(g)
	if err != nil {
		return []any{"error", err}
	}
	mean, stddev := h.Stats()
	return []any{
		"width", g.Width,
		"height", g.Height,
		"max", g.MaxValue,
		"mean", mean,
		"stddev", stddev,
	}
}
