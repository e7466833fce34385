// Package ops binds the transformations to names, parameters and output
// paths, and runs them against a working copy of a source grid.
package ops

import (
	"errors"
	"fmt"

	"pgmproc/raster"
	"pgmproc/transform"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Params carries the already parsed arguments an operation may need.
type Params struct {
	Shift     int     // translate
	Cutoff    int     // threshold
	Angle     float64 // rotate, degrees
	Clockwise bool    // rotate
	Delta     float64 // brightness, contrast
	Block     int     // pixelate
}

// Operation is one entry of the menu.
type Operation struct {
	Name  string
	Title string
	// Needs lists the Params fields the operation reads, for prompting.
	Needs []string
	Apply func(*raster.Grid, Params) (*raster.Grid, error)
}

const (
	Rotate     = "rotate"
	Sobel      = "sobel"
	Translate  = "translate"
	Threshold  = "threshold"
	Magnify    = "magnify"
	Histogram  = "histogram"
	Contrast   = "contrast"
	Brightness = "brightness"
	Blur       = "blur"
	Negate     = "negate"
	Pixelate   = "pixelate"
)

// Parameter names used in Operation.Needs.
const (
	ParamAngle     = "angle"
	ParamClockwise = "clockwise"
	ParamShift     = "shift"
	ParamCutoff    = "cutoff"
	ParamDelta     = "delta"
	ParamBlock     = "block"
)

var operations = []Operation{
	{
		Name: Rotate, Title: "Rotation",
		Needs: []string{ParamAngle, ParamClockwise},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Rotate(g, p.Angle, p.Clockwise)
		},
	},
	{
		Name: Sobel, Title: "Sobel filter",
		Apply: func(g *raster.Grid, _ Params) (*raster.Grid, error) { return transform.Sobel(g) },
	},
	{
		Name: Translate, Title: "Translation",
		Needs: []string{ParamShift},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Translate(g, p.Shift)
		},
	},
	{
		Name: Threshold, Title: "Threshold",
		Needs: []string{ParamCutoff},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Threshold(g, p.Cutoff)
		},
	},
	{
		Name: Magnify, Title: "Resize",
		Apply: func(g *raster.Grid, _ Params) (*raster.Grid, error) { return transform.Magnify(g) },
	},
	{
		Name: Histogram, Title: "Histogram",
		Apply: func(g *raster.Grid, _ Params) (*raster.Grid, error) { return transform.HistogramImage(g) },
	},
	{
		Name: Contrast, Title: "Contrast",
		Needs: []string{ParamDelta},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Contrast(g, p.Delta)
		},
	},
	{
		Name: Brightness, Title: "Brightness",
		Needs: []string{ParamDelta},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Brightness(g, p.Delta)
		},
	},
	{
		Name: Blur, Title: "Blur",
		Apply: func(g *raster.Grid, _ Params) (*raster.Grid, error) { return transform.Blur(g) },
	},
	{
		Name: Negate, Title: "Negative",
		Apply: func(g *raster.Grid, _ Params) (*raster.Grid, error) { return transform.Negate(g) },
	},
	{
		Name: Pixelate, Title: "Pixelate",
		Needs: []string{ParamBlock},
		Apply: func(g *raster.Grid, p Params) (*raster.Grid, error) {
			return transform.Pixelate(g, p.Block)
		},
	},
}

// All returns the operations in menu order.
func All() []Operation {
	return operations
}

// Names returns the operation names in menu order.
func Names() []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.Name
	}
	return names
}

func Lookup(name string) (Operation, error) {
	for _, op := range operations {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
