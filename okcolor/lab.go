// based on:
// https://bottosson.github.io/posts/oklab/

// Package okcolor converts colors to Oklab so color pictures can be reduced
// to a single perceived-lightness channel.
package okcolor

import (
	"image/color"
	"math"
)

type lab struct {
	L float64 // perceived lightness
	A float64 // how green/red the color is
	B float64 // how blue/yellow the color is
}

func toLab(c color.Color) lab {
	col := toLinearRGB(c)

	l := math.Cbrt(0.4122214708*col.R + 0.5363325363*col.G + 0.0514459929*col.B)
	m := math.Cbrt(0.2119034982*col.R + 0.6806995451*col.G + 0.1073969566*col.B)
	s := math.Cbrt(0.0883024619*col.R + 0.2817188376*col.G + 0.6299787005*col.B)

	return lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// Lightness returns the Oklab L of c, 0 for black and 1 for white.
func Lightness(c color.Color) float64 {
	return toLab(c).L
}

// GrayModel maps a color to the sRGB gray with the same Oklab lightness.
// Alpha is ignored.
var GrayModel = color.ModelFunc(grayConvert)

func grayConvert(c color.Color) color.Color {
	if g, ok := c.(color.Gray); ok {
		return g
	}

	L := Lightness(c)
	y := fromLinear(clamp01(L * L * L))
	return color.Gray{Y: uint8(math.Round(y * 255))}
}
