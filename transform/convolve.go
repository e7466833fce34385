package transform

import (
	"pgmproc/raster"
)

// Kernel is a 3x3 coefficient matrix indexed [row][column], so the weight for
// the neighbour at offset (dx, dy) is k[dy+1][dx+1].
type Kernel [3][3]int

var (
	// SobelX is the horizontal gradient; it responds to vertical edges.
	SobelX = Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	// SobelY is the vertical gradient; it responds to horizontal edges.
	SobelY = Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
	BoxKernel = Kernel{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
)

// Apply returns the kernel response centred on the interior sample (x, y).
func (k *Kernel) Apply(g *raster.Grid, x, y int) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		row := g.Pix[g.Offset(x-1, y+dy):]
		for dx := -1; dx <= 1; dx++ {
			sum += k[dy+1][dx+1] * int(row[dx+1])
		}
	}
	return sum
}

// convolve allocates a grid of the same extent and fills its interior with
// fn(x, y). The one-sample border stays 0.
func convolve(g *raster.Grid, maxValue int, fn func(x, y int) uint8) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}

	out, err := raster.New(g.Width, g.Height, maxValue)
	if err != nil {
		return nil, err
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			out.Set(x, y, fn(x, y))
		}
	}
	return out, nil
}

// Sobel computes the edge magnitude |Gx| + |Gy|, capped at 255. The result
// always has a max value of 255.
func Sobel(g *raster.Grid) (*raster.Grid, error) {
	return convolve(g, 255, func(x, y int) uint8 {
		gx := SobelX.Apply(g, x, y)
		gy := SobelY.Apply(g, x, y)
		return uint8(min(abs(gx)+abs(gy), 255))
	})
}

// Blur is a 3x3 box blur; the mean is truncated.
func Blur(g *raster.Grid) (*raster.Grid, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	return convolve(g, g.MaxValue, func(x, y int) uint8 {
		return uint8(BoxKernel.Apply(g, x, y) / 9)
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
