// Package transform implements the grayscale image operations: pointwise
// remapping, 3x3 convolution filters, geometric resampling and histograms.
//
// Pointwise operations rewrite their input grid and return it. Every other
// operation allocates and returns a new grid and leaves its input untouched.
package transform

import (
	"errors"
	"fmt"

	"pgmproc/raster"
)

var (
	ErrUnallocated      = errors.New("grid is not allocated")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyHistogram   = errors.New("histogram has no samples")
)

func checkGrid(g *raster.Grid) error {
	if !g.Allocated() {
		return ErrUnallocated
	}
	return nil
}

// newLike allocates a zero grid with the extent and max value of g.
func newLike(g *raster.Grid, width, height int) (*raster.Grid, error) {
	out, err := raster.New(width, height, g.MaxValue)
	if err != nil {
		return nil, fmt.Errorf("could not allocate %dx%d grid: %w", width, height, err)
	}
	return out, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
