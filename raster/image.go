package raster

import (
	"image"
	"image/color"

	"pgmproc/okcolor"
)

// FromImage converts img to a grid with max value 255. Gray images are copied
// as is; anything else is reduced to its Oklab lightness.
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy(), 255)
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.Gray); ok {
		for y := range g.Height {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], src.Pix[i:i+g.Width])
		}
		return g, nil
	}

	for y := range g.Height {
		for x := range g.Width {
			c := okcolor.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.Set(x, y, c.Y)
		}
	}
	return g, nil
}
