package transform

import (
	"math"

	"golang.org/x/image/draw"

	"pgmproc/raster"
)

// MagnifyFactor is the upscale applied by Magnify on both axes.
const MagnifyFactor = 2

// Translate shifts every row right by shift samples, wrapping around the
// right edge. Negative shifts move left. Rows keep their vertical position.
func Translate(g *raster.Grid, shift int) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	out, err := newLike(g, g.Width, g.Height)
	if err != nil {
		return nil, err
	}

	s := mod(shift, g.Width)
	for y := range g.Height {
		src := g.Pix[g.Offset(0, y):g.Offset(g.Width, y)]
		dst := out.Pix[out.Offset(0, y):out.Offset(out.Width, y)]
		copy(dst[s:], src[:g.Width-s])
		copy(dst[:s], src[g.Width-s:])
	}
	return out, nil
}

// Rotate resamples g rotated by degrees using nearest-neighbour inverse
// mapping. A clockwise rotation swaps width and height of the result; a
// counter-clockwise one keeps the extent. Destination samples whose source
// falls outside g are 0.
//
// Coordinates are measured from pixel centres relative to the centre of each
// grid, so Rotate(g, 90, true) is an exact quarter turn and Rotate(g, 180,
// false) an exact half turn.
func Rotate(g *raster.Grid, degrees float64, clockwise bool) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	width, height := g.Width, g.Height
	if clockwise {
		width, height = g.Height, g.Width
	}
	out, err := newLike(g, width, height)
	if err != nil {
		return nil, err
	}

	sin, cos := math.Sincos(degrees * math.Pi / 180)
	srcCX, srcCY := float64(g.Width)/2, float64(g.Height)/2
	dstCX, dstCY := float64(width)/2, float64(height)/2

	for j := range height {
		y := float64(j) + 0.5 - dstCY
		for i := range width {
			x := float64(i) + 0.5 - dstCX

			var sx, sy float64
			if clockwise {
				sx = srcCX + x*cos + y*sin
				sy = srcCY - x*sin + y*cos
			} else {
				sx = srcCX + x*cos - y*sin
				sy = srcCY + x*sin + y*cos
			}

			// floor, not int(): -0.5 must land outside the grid
			ox, oy := int(math.Floor(sx)), int(math.Floor(sy))
			if g.InBounds(ox, oy) {
				out.Set(i, j, g.At(ox, oy))
			}
		}
	}
	return out, nil
}

// Magnify scales g up by MagnifyFactor, replicating each sample into a
// MagnifyFactor x MagnifyFactor block.
func Magnify(g *raster.Grid) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	out, err := newLike(g, g.Width*MagnifyFactor, g.Height*MagnifyFactor)
	if err != nil {
		return nil, err
	}

	dst := out.Gray()
	src := g.Gray()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return out, nil
}

// mod is the mathematical modulo; the result is always in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
