package okcolor

import (
	"image/color"
	"math"
)

// linearRGB holds linear-light channels in [0, 1].
type linearRGB struct {
	R, G, B float64
}

func toLinearRGB(c color.Color) linearRGB {
	rgba := color.RGBA64Model.Convert(c).(color.RGBA64)
	return linearRGB{
		R: toLinear(float64(rgba.R) / 65535),
		G: toLinear(float64(rgba.G) / 65535),
		B: toLinear(float64(rgba.B) / 65535),
	}
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

const pow float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	}
	return x * 12.92
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
