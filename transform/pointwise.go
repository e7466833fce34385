package transform

import (
	"fmt"
	"math"

	"pgmproc/raster"
)

// Negate replaces every sample v with MaxValue - v.
func Negate(g *raster.Grid) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	for i, v := range g.Pix {
		g.Pix[i] = uint8(g.MaxValue - int(v))
	}
	return g, nil
}

// Threshold sets samples above cutoff to MaxValue and the rest to 0. Any
// cutoff is accepted; out of range values give a uniform result.
func Threshold(g *raster.Grid, cutoff int) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	hi := uint8(g.MaxValue)
	for i, v := range g.Pix {
		if int(v) > cutoff {
			g.Pix[i] = hi
		} else {
			g.Pix[i] = 0
		}
	}
	return g, nil
}

// Brightness adds delta, truncated to an integer, to every sample and clamps
// the result to [0, MaxValue].
func Brightness(g *raster.Grid, delta float64) (*raster.Grid, error) {
	return shift(g, delta)
}

// Contrast behaves exactly like Brightness. It is kept as its own operation
// with its own output.
func Contrast(g *raster.Grid, delta float64) (*raster.Grid, error) {
	return shift(g, delta)
}

func shift(g *raster.Grid, delta float64) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	// NaN leaves the grid unchanged; huge deltas saturate
	limit := float64(g.MaxValue)
	d := 0
	if !math.IsNaN(delta) {
		d = int(max(min(delta, limit), -limit))
	}
	for i, v := range g.Pix {
		g.Pix[i] = uint8(clamp(int(v)+d, 0, g.MaxValue))
	}
	return g, nil
}

// Pixelate replaces each block x block tile with its truncated mean. Tiles on
// the right and bottom edges are clipped to the grid.
func Pixelate(g *raster.Grid, block int) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	if block < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidParameter, block)
	}

	for y0 := 0; y0 < g.Height; y0 += block {
		y1 := min(y0+block, g.Height)
		for x0 := 0; x0 < g.Width; x0 += block {
			x1 := min(x0+block, g.Width)

			sum := 0
			for y := y0; y < y1; y++ {
				for _, v := range g.Pix[g.Offset(x0, y):g.Offset(x1, y)] {
					sum += int(v)
				}
			}
			mean := uint8(sum / ((x1 - x0) * (y1 - y0)))

			for y := y0; y < y1; y++ {
				row := g.Pix[g.Offset(x0, y):g.Offset(x1, y)]
				for i := range row {
					row[i] = mean
				}
			}
		}
	}
	return g, nil
}
