// Package apply runs a single operation from the command line.
package apply

import (
	"log/slog"

	"pgmproc/ops"
	"pgmproc/raster"
)

// Flags are the operation parameters shared by the apply and batch commands.
type Flags struct {
	Angle     float64 `help:"Rotation angle in degrees" group:"rotate"`
	Clockwise bool    `help:"Rotate clockwise" default:"false" group:"rotate"`
	Shift     int     `help:"Horizontal translation, wraps around" group:"translate"`
	Cutoff    int     `help:"Threshold level" default:"127" group:"threshold"`
	Delta     float64 `help:"Brightness or contrast adjustment" group:"brightness"`
	Block     int     `help:"Pixelate block size" default:"8" group:"pixelate"`
}

func (f *Flags) Params() ops.Params {
	return ops.Params{
		Shift:     f.Shift,
		Cutoff:    f.Cutoff,
		Angle:     f.Angle,
		Clockwise: f.Clockwise,
		Delta:     f.Delta,
		Block:     f.Block,
	}
}

type CLICmd struct {
	Op    string `arg:"" help:"Operation to apply" enum:"rotate,sobel,translate,threshold,magnify,histogram,contrast,brightness,blur,negate,pixelate"`
	Input string `help:"Source PGM image" default:"input.pgm" type:"path"`
	Flags
}

func (c *CLICmd) Run(runner *ops.Runner) error {
	src, err := raster.Load(runner.FS, c.Input)
	if err != nil {
		return err
	}

	out, path, err := runner.Apply(src, c.Op, c.Params())
	if err != nil {
		return err
	}
	slog.Info("saved", append([]any{"op", c.Op, "path", path}, ops.Summary(out)...)...)
	return nil
}
