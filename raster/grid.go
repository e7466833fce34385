// Package raster holds the single-channel pixel grid and its binary PGM codec.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
)

var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a dense single-channel image. Extent never changes after creation;
// transformations that change extent return a new Grid.
type Grid struct {
	Width    int
	Height   int
	MaxValue int
	// Pix holds the samples in row-major order. The sample at (x, y) is
	// Pix[x + y*Width].
	Pix []uint8
}

// New returns a zero-filled grid.
func New(width, height, maxValue int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if maxValue < 1 || maxValue > 255 {
		return nil, fmt.Errorf("%w: max value %d", ErrInvalidDimensions, maxValue)
	}

	return &Grid{
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Pix:      make([]uint8, width*height),
	}, nil
}

// Allocated reports whether g has a buffer matching its extent.
func (g *Grid) Allocated() bool {
	return g != nil && g.Width > 0 && g.Height > 0 && len(g.Pix) == g.Width*g.Height
}

func (g *Grid) Offset(x, y int) int {
	return x + y*g.Width
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *Grid) At(x, y int) uint8 {
	return g.Pix[x+y*g.Width]
}

func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[x+y*g.Width] = v
}

// Clone returns a working copy that shares nothing with g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.Pix = bytes.Clone(g.Pix)
	return &c
}

// Equal compares extent, max value and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.Width == o.Width && g.Height == o.Height && g.MaxValue == o.MaxValue &&
		bytes.Equal(g.Pix, o.Pix)
}

// Gray returns an *image.Gray view sharing g's buffer.
func (g *Grid) Gray() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

// Rows returns the samples as one slice per row, sharing g's buffer.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.Height)
	for y := range rows {
		rows[y] = g.Pix[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
	}
	return rows
}

// FromRows builds a grid from equally sized rows, mostly for tests and fixtures.
// Samples above maxValue are refused with ErrFormat.
func FromRows(maxValue int, rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := New(len(rows[0]), len(rows), maxValue)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrInvalidDimensions, y, len(row), g.Width)
		}
		for x, v := range row {
			if int(v) > maxValue {
				return nil, fmt.Errorf("%w: sample %d at (%d,%d) exceeds max value %d", ErrFormat, v, x, y, maxValue)
			}
		}
		copy(g.Pix[y*g.Width:], row)
	}
	return g, nil
}
