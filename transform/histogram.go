package transform

import (
	"gonum.org/v1/gonum/stat"

	"pgmproc/raster"
)

// BarWidth is the width in samples of one histogram bar.
const BarWidth = 20

// Histogram counts samples per intensity.
type Histogram struct {
	Counts   [256]int
	MaxCount int // largest single count
	Total    int
}

// ComputeHistogram counts the samples of g.
func ComputeHistogram(g *raster.Grid) (Histogram, error) {
	var h Histogram
	if err := checkGrid(g); err != nil {
		return h, err
	}

	for _, v := range g.Pix {
		h.Counts[v]++
		h.MaxCount = max(h.MaxCount, h.Counts[v])
	}
	h.Total = len(g.Pix)
	return h, nil
}

// Stats returns the mean and standard deviation of the counted samples.
func (h *Histogram) Stats() (mean, stddev float64) {
	if h.Total == 0 {
		return 0, 0
	}

	values := make([]float64, len(h.Counts))
	weights := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		values[i] = float64(i)
		weights[i] = float64(c)
	}
	return stat.MeanStdDev(values, weights)
}

// Render draws one white bar per intensity, BarWidth samples wide and as tall
// as its count, standing on the bottom row. The image is MaxCount rows high;
// an empty histogram is refused with ErrEmptyHistogram.
func (h *Histogram) Render() (*raster.Grid, error) {
	if h.MaxCount == 0 {
		return nil, ErrEmptyHistogram
	}

	out, err := raster.New(len(h.Counts)*BarWidth, h.MaxCount, 255)
	if err != nil {
		return nil, err
	}

	for i, c := range h.Counts {
		for y := h.MaxCount - c; y < h.MaxCount; y++ {
			bar := out.Pix[out.Offset(i*BarWidth, y):out.Offset((i+1)*BarWidth, y)]
			for k := range bar {
				bar[k] = 255
			}
		}
	}
	return out, nil
}

// HistogramImage renders the histogram of g.
func HistogramImage(g *raster.Grid) (*raster.Grid, error) {
	h, err := ComputeHistogram(g)
	if err != nil {
		return nil, err
	}
	return h.Render()
}
